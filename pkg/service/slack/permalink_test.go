package slack_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/cybergrind/slack-assistant/pkg/domain/types"
	"github.com/cybergrind/slack-assistant/pkg/service/slack"
)

func TestBuildMessageLink(t *testing.T) {
	link := slack.BuildMessageLink("https://acme.slack.com/", "C123", "1700000000.000100", "")
	gt.Value(t, link).Equal("https://acme.slack.com/archives/C123/p1700000000000100")

	// thread member carries its root
	link = slack.BuildMessageLink("https://acme.slack.com", "C123", "1700000000.000200", "1700000000.000100")
	gt.Value(t, link).Equal("https://acme.slack.com/archives/C123/p1700000000000200?thread_ts=1700000000000100")

	// a thread parent links plainly
	link = slack.BuildMessageLink("https://acme.slack.com", "C123", "1700000000.000100", "1700000000.000100")
	gt.Value(t, link).Equal("https://acme.slack.com/archives/C123/p1700000000000100")
}

func TestParseMessageLink(t *testing.T) {
	t.Run("archives format", func(t *testing.T) {
		channelID, ts, ok := slack.ParseMessageLink("https://acme.slack.com/archives/C123/p1700000000000100")
		gt.Bool(t, ok).True()
		gt.Value(t, channelID).Equal(types.ChannelID("C123"))
		gt.Value(t, ts).Equal(types.MessageTS("1700000000.000100"))
	})

	t.Run("archives format with thread suffix", func(t *testing.T) {
		channelID, ts, ok := slack.ParseMessageLink("https://acme.slack.com/archives/C123/p1700000000000200?thread_ts=1700000000000100")
		gt.Bool(t, ok).True()
		gt.Value(t, channelID).Equal(types.ChannelID("C123"))
		gt.Value(t, ts).Equal(types.MessageTS("1700000000.000200"))
	})

	t.Run("slack scheme", func(t *testing.T) {
		channelID, ts, ok := slack.ParseMessageLink("slack://channel?id=C123&message=1700000000.000100")
		gt.Bool(t, ok).True()
		gt.Value(t, channelID).Equal(types.ChannelID("C123"))
		gt.Value(t, ts).Equal(types.MessageTS("1700000000.000100"))
	})

	t.Run("roundtrip", func(t *testing.T) {
		link := slack.BuildMessageLink("https://acme.slack.com", "C42", "1699999999.123456", "")
		channelID, ts, ok := slack.ParseMessageLink(link)
		gt.Bool(t, ok).True()
		gt.Value(t, channelID).Equal(types.ChannelID("C42"))
		gt.Value(t, ts).Equal(types.MessageTS("1699999999.123456"))
	})

	t.Run("rejects garbage", func(t *testing.T) {
		for _, link := range []string{
			"",
			"not a url at all ::",
			"https://acme.slack.com/files/C123/p1700000000000100",
			"https://acme.slack.com/archives/C123/1700000000000100",
			"https://acme.slack.com/archives/C123/p123",
			"slack://channel?id=C123",
		} {
			_, _, ok := slack.ParseMessageLink(link)
			gt.Bool(t, ok).False()
		}
	})
}
