package ads

import (
	"errors"
)

// --- Error Definitions ---
var (
	ErrAdBusy        = errors.New("another rewarded ad is already in flight")
	ErrAdUnavailable = errors.New("rewarded ads are not available on this host")
)

// Callbacks receives the terminal events of a rewarded-ad show. The SDK may
// misbehave and fire more than one; the controller honors only the first.
type Callbacks struct {
	// OnEarned fires when the user watched enough of the ad to earn the
	// reward.
	OnEarned func()
	// OnError fires when the ad failed to load or render.
	OnError func(err error)
	// OnClosed fires when the user dismissed the ad. earned reports
	// whether the reward had already been granted at close time.
	OnClosed func(earned bool)
}

// Provider abstracts the platform ad SDK. Hosts without an SDK (tests,
// simulators, web builds) plug in a stub.
type Provider interface {
	// Show starts a rewarded ad. It returns immediately; outcome arrives
	// via the callbacks.
	Show(adUnitID string, cb Callbacks)
}

// StubProvider is the no-SDK host implementation: every show fails
// immediately, which the gate treats as a degraded (fail-open) path.
type StubProvider struct{}

func NewStubProvider() *StubProvider { return &StubProvider{} }

func (s *StubProvider) Show(_ string, cb Callbacks) {
	if cb.OnError != nil {
		cb.OnError(ErrAdUnavailable)
	}
}
