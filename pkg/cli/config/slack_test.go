package config_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/cybergrind/slack-assistant/pkg/cli/config"
)

func TestSlackValidate(t *testing.T) {
	t.Run("accepts user token", func(t *testing.T) {
		cfg := config.NewSlackForTest("xoxp-1234-5678")
		gt.NoError(t, cfg.Validate())
	})

	t.Run("rejects empty token", func(t *testing.T) {
		cfg := config.NewSlackForTest("")
		gt.Value(t, cfg.Validate()).NotNil()
	})

	t.Run("rejects bot token", func(t *testing.T) {
		cfg := config.NewSlackForTest("xoxb-1234-5678")
		gt.Value(t, cfg.Validate()).NotNil()
	})
}
