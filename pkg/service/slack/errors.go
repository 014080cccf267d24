package slack

import (
	"strings"
)

// channel-level errors that are normal churn (bot removed, channel
// deleted or archived) rather than operational failures
var goneErrors = []string{
	"channel_not_found",
	"not_in_channel",
	"is_archived",
}

// IsChannelGone reports whether the error means the channel is no longer
// accessible to the identity. Such errors are expected during normal
// operation and are logged at low severity.
func IsChannelGone(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, e := range goneErrors {
		if strings.Contains(msg, e) {
			return true
		}
	}
	return false
}
