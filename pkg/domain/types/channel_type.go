package types

// ChannelType classifies a Slack conversation kind
type ChannelType string

const (
	ChannelTypePublic  ChannelType = "public_channel"
	ChannelTypePrivate ChannelType = "private_channel"
	ChannelTypeGroupDM ChannelType = "mpim"
	ChannelTypeDM      ChannelType = "im"
)

// String returns the string representation of ChannelType
func (t ChannelType) String() string {
	return string(t)
}

// IsDirect reports whether the conversation is a direct or group DM
func (t ChannelType) IsDirect() bool {
	return t == ChannelTypeDM || t == ChannelTypeGroupDM
}

// AllChannelTypes lists every conversation kind the sync engine covers
func AllChannelTypes() []ChannelType {
	return []ChannelType{
		ChannelTypePublic,
		ChannelTypePrivate,
		ChannelTypeGroupDM,
		ChannelTypeDM,
	}
}
