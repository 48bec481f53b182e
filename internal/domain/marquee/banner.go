package marquee

import (
	"context"
	"sync"
	"time"
)

type State string

const (
	Hidden       State = "hidden"
	PendingDelay State = "pending_delay"
	Visible      State = "visible"
)

// Banner is the live banner for one surface: Hidden -> PendingDelay on an
// eligible load, PendingDelay -> Visible after the display delay, Visible ->
// Hidden on dismissal. While visible it cycles through the active messages
// on a fixed interval, wrapping; the index is never persisted.
//
// Both timers stop when the surrounding context is cancelled or Stop is
// called, so nothing fires against a torn-down surface.
type Banner struct {
	policy    *Policy
	deviceKey string
	version   string

	mu     sync.Mutex
	state  State
	index  int
	active []Message

	cancel context.CancelFunc
	done   chan struct{}
}

// StartBanner evaluates eligibility and, when eligible, starts the display
// delay. The returned banner is Hidden for good when nothing may show.
func (p *Policy) StartBanner(ctx context.Context, deviceKey string, s Settings) *Banner {
	b := &Banner{
		policy:    p,
		deviceKey: deviceKey,
		version:   s.Version,
		state:     Hidden,
		done:      make(chan struct{}),
	}

	ok, active := p.Eligible(ctx, deviceKey, s)
	if !ok {
		close(b.done)
		return b
	}

	b.active = active
	b.state = PendingDelay

	ctx, b.cancel = context.WithCancel(ctx)
	go b.run(ctx)
	return b
}

func (b *Banner) run(ctx context.Context) {
	defer close(b.done)

	delay := time.NewTimer(b.policy.showDelay())
	defer delay.Stop()

	select {
	case <-ctx.Done():
		return
	case <-delay.C:
	}

	b.mu.Lock()
	b.state = Visible
	b.mu.Unlock()

	rotate := time.NewTicker(b.policy.rotateEvery())
	defer rotate.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-rotate.C:
			b.mu.Lock()
			if b.state == Visible && len(b.active) > 0 {
				b.index = (b.index + 1) % len(b.active)
			}
			b.mu.Unlock()
		}
	}
}

func (b *Banner) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Current returns the message on display. ok is false unless Visible.
func (b *Banner) Current() (Message, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state != Visible || len(b.active) == 0 {
		return Message{}, false
	}
	return b.active[b.index], true
}

// Dismiss hides the banner and records the dismissal. The write is
// best-effort: a failed record means one extra showing, not a failed
// dismissal.
func (b *Banner) Dismiss(ctx context.Context) {
	b.mu.Lock()
	b.state = Hidden
	b.mu.Unlock()

	b.stop()
	_ = b.policy.RecordDismissal(ctx, b.deviceKey, b.version)
}

// Stop cancels pending timers without recording anything. Call on surface
// teardown.
func (b *Banner) Stop() {
	b.stop()
}

func (b *Banner) stop() {
	if b.cancel != nil {
		b.cancel()
	}
	<-b.done
}
