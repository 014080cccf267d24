package worker

import (
	"context"
	"time"

	"github.com/cybergrind/slack-assistant/pkg/usecase"
	"github.com/cybergrind/slack-assistant/pkg/utils/logging"
)

const (
	// DefaultDiscoveryEvery re-runs channel discovery every Nth cycle
	DefaultDiscoveryEvery = 10

	// DefaultRetryPause is slept after a failed cycle before the ticker
	// resumes normal cadence
	DefaultRetryPause = 5 * time.Second
)

// Poller runs the sync loop in the background.
//
// Architecture assumptions:
// - Single process instance (no distributed locking)
// - One sequential loop; channels are never synced in parallel
type Poller struct {
	uc             *usecase.UseCases
	interval       time.Duration
	discoveryEvery int
	retryPause     time.Duration
	stopCh         chan struct{}
	doneCh         chan struct{}
}

// PollerOption is a functional option for Poller configuration
type PollerOption func(*Poller)

// WithDiscoveryEvery sets how many cycles pass between channel discoveries
func WithDiscoveryEvery(n int) PollerOption {
	return func(p *Poller) {
		p.discoveryEvery = n
	}
}

// WithRetryPause sets the pause after a failed cycle
func WithRetryPause(d time.Duration) PollerOption {
	return func(p *Poller) {
		p.retryPause = d
	}
}

// NewPoller creates the background sync poller
func NewPoller(uc *usecase.UseCases, interval time.Duration, opts ...PollerOption) *Poller {
	p := &Poller{
		uc:             uc,
		interval:       interval,
		discoveryEvery: DefaultDiscoveryEvery,
		retryPause:     DefaultRetryPause,
		stopCh:         make(chan struct{}),
		doneCh:         make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Start begins the background sync loop. The initial cycle runs in the
// goroutine too, so startup is never blocked.
func (p *Poller) Start(ctx context.Context) error {
	logging.Default().Info("sync poller starting",
		"interval", p.interval.String(),
		"discovery_every", p.discoveryEvery)

	go p.run(ctx)

	return nil
}

// Stop signals the poller to stop and waits for the loop to finish
func (p *Poller) Stop() {
	logging.Default().Info("sync poller stopping")
	close(p.stopCh)
	<-p.doneCh
	logging.Default().Info("sync poller stopped")
}

func (p *Poller) run(ctx context.Context) {
	defer close(p.doneCh)

	// cycle 0 always discovers, so a fresh database fills immediately
	cycle := 0
	if err := p.cycle(ctx, true); err != nil {
		logging.Default().Error("initial sync cycle failed", "error", err)
		if !p.pause(ctx) {
			return
		}
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			cycle++
			discover := p.discoveryEvery > 0 && cycle%p.discoveryEvery == 0
			if err := p.cycle(ctx, discover); err != nil {
				logging.Default().Error("sync cycle failed", "error", err)
				if !p.pause(ctx) {
					return
				}
			}

		case <-p.stopCh:
			logging.Default().Info("sync poller received stop signal")
			return

		case <-ctx.Done():
			logging.Default().Info("sync poller context cancelled")
			return
		}
	}
}

// cycle performs one sync pass: optional channel discovery followed by
// message sync over all active channels
func (p *Poller) cycle(ctx context.Context, discover bool) error {
	if discover {
		if _, err := p.uc.Sync.SyncChannels(ctx); err != nil {
			return err
		}
	}

	_, err := p.uc.Sync.SyncAllMessages(ctx)
	return err
}

// pause sleeps the retry pause, returning false when the poller should
// shut down instead of retrying
func (p *Poller) pause(ctx context.Context) bool {
	timer := time.NewTimer(p.retryPause)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-p.stopCh:
		return false
	case <-ctx.Done():
		return false
	}
}
