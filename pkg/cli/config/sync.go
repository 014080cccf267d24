package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	"github.com/cybergrind/slack-assistant/pkg/service/worker"
	"github.com/cybergrind/slack-assistant/pkg/usecase"
)

// MinPollInterval is the floor for the poll interval. Anything tighter
// burns the Web API rate budget without making the data fresher.
const MinPollInterval = 10 * time.Second

// Sync holds CLI flags for the sync loop configuration
type Sync struct {
	interval       time.Duration
	discoveryEvery int
	tuningPath     string

	tuning Tuning
}

// Tuning is the optional TOML tuning file. Zero values fall back to the
// usecase defaults.
type Tuning struct {
	FetchLimit     int `toml:"fetch_limit"`
	ChannelPauseMS int `toml:"channel_pause_ms"`
	StatusLimit    int `toml:"status_limit"`
	RetryPauseSec  int `toml:"retry_pause_sec"`
}

// Flags returns CLI flags for sync configuration
func (x *Sync) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.DurationFlag{
			Name:        "poll-interval",
			Usage:       "Interval between sync cycles",
			Category:    "Sync",
			Value:       60 * time.Second,
			Sources:     cli.EnvVars("SLACK_ASSISTANT_POLL_INTERVAL"),
			Destination: &x.interval,
		},
		&cli.IntFlag{
			Name:        "discovery-every",
			Usage:       "Re-run channel discovery every Nth cycle",
			Category:    "Sync",
			Value:       worker.DefaultDiscoveryEvery,
			Sources:     cli.EnvVars("SLACK_ASSISTANT_DISCOVERY_EVERY"),
			Destination: &x.discoveryEvery,
		},
		&cli.StringFlag{
			Name:        "tuning-file",
			Usage:       "TOML file with sync tuning parameters",
			Category:    "Sync",
			Sources:     cli.EnvVars("SLACK_ASSISTANT_TUNING_FILE"),
			Destination: &x.tuningPath,
		},
	}
}

// LogValue returns the sync configuration for startup logging
func (x Sync) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("interval", x.interval.String()),
		slog.Int("discovery_every", x.discoveryEvery),
		slog.String("tuning_file", x.tuningPath),
	)
}

// Validate enforces the poll interval floor
func (x *Sync) Validate() error {
	if x.interval < MinPollInterval {
		return goerr.New("poll-interval below minimum",
			goerr.V("interval", x.interval), goerr.V("min", MinPollInterval))
	}
	if x.discoveryEvery < 1 {
		return goerr.New("discovery-every must be at least 1",
			goerr.V("discovery_every", x.discoveryEvery))
	}
	return nil
}

// Load reads the tuning file when one is configured
func (x *Sync) Load() error {
	if x.tuningPath == "" {
		return nil
	}
	raw, err := os.ReadFile(x.tuningPath)
	if err != nil {
		return goerr.Wrap(err, "failed to read tuning file", goerr.V("path", x.tuningPath))
	}
	if err := toml.Unmarshal(raw, &x.tuning); err != nil {
		return goerr.Wrap(err, "failed to parse tuning file", goerr.V("path", x.tuningPath))
	}
	return nil
}

// Interval returns the poll interval
func (x *Sync) Interval() time.Duration {
	return x.interval
}

// UseCaseOptions translates the tuning into usecase options
func (x *Sync) UseCaseOptions() []usecase.Option {
	var opts []usecase.Option
	if x.tuning.FetchLimit > 0 {
		opts = append(opts, usecase.WithFetchLimit(x.tuning.FetchLimit))
	}
	if x.tuning.ChannelPauseMS > 0 {
		opts = append(opts, usecase.WithChannelPause(time.Duration(x.tuning.ChannelPauseMS)*time.Millisecond))
	}
	if x.tuning.StatusLimit > 0 {
		opts = append(opts, usecase.WithStatusLimit(x.tuning.StatusLimit))
	}
	return opts
}

// PollerOptions translates the configuration into poller options
func (x *Sync) PollerOptions() []worker.PollerOption {
	opts := []worker.PollerOption{
		worker.WithDiscoveryEvery(x.discoveryEvery),
	}
	if x.tuning.RetryPauseSec > 0 {
		opts = append(opts, worker.WithRetryPause(time.Duration(x.tuning.RetryPauseSec)*time.Second))
	}
	return opts
}
