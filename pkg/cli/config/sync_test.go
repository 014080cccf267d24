package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/cybergrind/slack-assistant/pkg/cli/config"
)

func TestSyncValidate(t *testing.T) {
	t.Run("accepts default-ish interval", func(t *testing.T) {
		cfg := config.NewSyncForTest(60*time.Second, 10, "")
		gt.NoError(t, cfg.Validate())
	})

	t.Run("rejects interval below floor", func(t *testing.T) {
		cfg := config.NewSyncForTest(5*time.Second, 10, "")
		gt.Value(t, cfg.Validate()).NotNil()
	})

	t.Run("rejects zero discovery cadence", func(t *testing.T) {
		cfg := config.NewSyncForTest(60*time.Second, 0, "")
		gt.Value(t, cfg.Validate()).NotNil()
	})
}

func TestSyncTuningFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.toml")
	body := []byte("fetch_limit = 500\nchannel_pause_ms = 50\nstatus_limit = 25\n")
	gt.NoError(t, os.WriteFile(path, body, 0644)).Required()

	cfg := config.NewSyncForTest(60*time.Second, 10, path)
	gt.NoError(t, cfg.Load()).Required()
	gt.Array(t, cfg.UseCaseOptions()).Length(3)

	t.Run("missing file fails", func(t *testing.T) {
		cfg := config.NewSyncForTest(60*time.Second, 10, filepath.Join(t.TempDir(), "nope.toml"))
		gt.Value(t, cfg.Load()).NotNil()
	})

	t.Run("no file configured is fine", func(t *testing.T) {
		cfg := config.NewSyncForTest(60*time.Second, 10, "")
		gt.NoError(t, cfg.Load())
		gt.Array(t, cfg.UseCaseOptions()).Length(0)
	})
}
