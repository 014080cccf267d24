package types_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/cybergrind/slack-assistant/pkg/domain/types"
)

func TestMessageTSValidate(t *testing.T) {
	gt.NoError(t, types.MessageTS("1700000000.000100").Validate())

	for _, ts := range []types.MessageTS{"", "1700000000", "abc.def", "1700000000.", ".000100"} {
		gt.Value(t, ts.Validate()).NotNil()
	}
}

func TestMessageTSTime(t *testing.T) {
	ts := types.MessageTS("1700000000.000000")
	gt.Value(t, ts.Time().Unix()).Equal(int64(1700000000))

	gt.Bool(t, types.MessageTS("garbage").Time().Equal(time.Time{})).True()
}

func TestMessageTSAfter(t *testing.T) {
	gt.Bool(t, types.MessageTS("100.000002").After("100.000001")).True()
	gt.Bool(t, types.MessageTS("100.000001").After("100.000001")).False()
	gt.Bool(t, types.MessageTS("100.000001").After("100.000002")).False()
	// empty cursor means everything is new
	gt.Bool(t, types.MessageTS("100.000001").After("")).True()
}
