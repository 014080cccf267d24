package slack

import (
	"net/url"
	"strings"

	"github.com/cybergrind/slack-assistant/pkg/domain/types"
)

// BuildMessageLink builds a web permalink of the form
// https://<workspace>/archives/<channel_id>/p<digits>, where <digits> is
// the message timestamp with the decimal point removed. A thread_ts
// query parameter is appended when the message belongs to a thread other
// than itself.
func BuildMessageLink(baseURL string, channelID types.ChannelID, ts, threadTS types.MessageTS) string {
	link := strings.TrimSuffix(baseURL, "/") +
		"/archives/" + channelID.String() +
		"/p" + strings.Replace(ts.String(), ".", "", 1)

	if threadTS != "" && threadTS != ts {
		link += "?thread_ts=" + strings.Replace(threadTS.String(), ".", "", 1)
	}
	return link
}

// ParseMessageLink recovers (channel_id, ts) from a permalink. Two
// formats are accepted: the web archives URL produced by
// BuildMessageLink and the slack://channel?id=<cid>&message=<ts> scheme.
// Returns ok=false for anything unparseable; never errors.
func ParseMessageLink(link string) (types.ChannelID, types.MessageTS, bool) {
	parsed, err := url.Parse(link)
	if err != nil {
		return "", "", false
	}

	if parsed.Scheme == "slack" {
		q := parsed.Query()
		channelID := q.Get("id")
		ts := q.Get("message")
		if channelID == "" || ts == "" {
			return "", "", false
		}
		return types.ChannelID(channelID), types.MessageTS(ts), true
	}

	parts := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if len(parts) < 3 || parts[0] != "archives" {
		return "", "", false
	}

	channelID := parts[1]
	tsPart := parts[2]
	// p<digits>: the last 6 digits are the fractional part
	if !strings.HasPrefix(tsPart, "p") || len(tsPart) <= 7 {
		return "", "", false
	}
	digits := tsPart[1:]
	ts := digits[:len(digits)-6] + "." + digits[len(digits)-6:]

	return types.ChannelID(channelID), types.MessageTS(ts), true
}
