package ads

import (
	"context"
	"sync"
	"time"
)

// Outcome is the single terminal result of one rewarded-ad show.
type Outcome string

const (
	// OutcomeEarned: the user earned the reward.
	OutcomeEarned Outcome = "earned"
	// OutcomeError: the ad failed to load or render.
	OutcomeError Outcome = "error"
	// OutcomeClosed: the user closed the ad before earning the reward.
	OutcomeClosed Outcome = "closed"
	// OutcomeTimeout: no terminal callback arrived in time.
	OutcomeTimeout Outcome = "timeout"
)

// Controller owns the one rewarded ad that may be in flight at a time and
// turns the SDK's callback soup into a single outcome. The SDK may fire
// several terminal callbacks, or none at all; only the first one counts and
// a timer covers the silent case.
type Controller struct {
	provider Provider
	timeout  time.Duration

	mu      sync.Mutex
	showing bool
}

const DefaultLoadTimeout = 10 * time.Second

func NewController(provider Provider, timeout time.Duration) *Controller {
	if timeout <= 0 {
		timeout = DefaultLoadTimeout
	}
	return &Controller{provider: provider, timeout: timeout}
}

// ShowAndWait runs one rewarded ad to its terminal event and returns the
// outcome. Returns ErrAdBusy if a show is already in flight.
func (c *Controller) ShowAndWait(ctx context.Context, adUnitID string) (Outcome, error) {
	c.mu.Lock()
	if c.showing {
		c.mu.Unlock()
		return "", ErrAdBusy
	}
	c.showing = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.showing = false
		c.mu.Unlock()
	}()

	// Buffered so a late second callback never blocks the SDK thread.
	results := make(chan Outcome, 1)

	// fired guards against double-handling: exactly one terminal event is
	// honored per show.
	var fireMu sync.Mutex
	fired := false
	settle := func(outcome Outcome) {
		fireMu.Lock()
		defer fireMu.Unlock()
		if fired {
			return
		}
		fired = true
		results <- outcome
	}

	c.provider.Show(adUnitID, Callbacks{
		OnEarned: func() { settle(OutcomeEarned) },
		OnError:  func(error) { settle(OutcomeError) },
		OnClosed: func(earned bool) {
			// Close after the reward was granted is not a rejection.
			if earned {
				settle(OutcomeEarned)
			} else {
				settle(OutcomeClosed)
			}
		},
	})

	timer := time.NewTimer(c.timeout)
	defer timer.Stop()

	select {
	case outcome := <-results:
		return outcome, nil
	case <-timer.C:
		// A hung ad load must not block the user; the caller fails open.
		settle(OutcomeTimeout)
		return <-results, nil
	case <-ctx.Done():
		settle(OutcomeError)
		return "", ctx.Err()
	}
}
