package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/FaisalHanif12/PrimeForm-sub002/internal/ads"
	"github.com/FaisalHanif12/PrimeForm-sub002/internal/domain"
	"github.com/FaisalHanif12/PrimeForm-sub002/internal/identity"
	"github.com/FaisalHanif12/PrimeForm-sub002/internal/localstore"
)

// --- Error Definitions ---
var (
	// ErrLimitExceeded: the daily message cap is reached. Not retryable
	// until the next calendar day.
	ErrLimitExceeded = errors.New("daily AI trainer message limit reached")
	// ErrAdNotCompleted: the user closed the rewarded ad without earning
	// the reward. The action did not run; the user may retry.
	ErrAdNotCompleted = errors.New("rewarded ad closed before the reward was earned")
)

const (
	usageCountKeyBase = "trainer_daily_usage"
	adWatchedKeyBase  = "trainer_ad_watched"

	// DefaultDailyMessageLimit caps gated AI-trainer sends per user per day.
	DefaultDailyMessageLimit = 3
)

// ConversationStore is the AI-trainer backend the gate dispatches to.
type ConversationStore interface {
	CreateNewConversation(ctx context.Context) (string, error)
	SendMessage(ctx context.Context, conversationID, text, locale string) (*domain.ChatMessage, error)
}

// UsageGate enforces the per-user, per-calendar-day quota on AI-trainer
// messages, gated once per day behind a rewarded ad.
//
// Ordering is load-bearing: the counter is checked strictly before any ad
// shows (at the cap, no ad is ever shown), and it is incremented and
// persisted strictly before the gated send dispatches, which closes the
// window where two rapid taps could both observe "under cap". The counter
// records attempts, not successes: a failed send does not refund it.
type UsageGate struct {
	store         localstore.Store
	identity      identity.Provider
	conversations ConversationStore
	adController  *ads.Controller
	adUnitID      string
	adsEnabled    bool
	limit         int
	now           func() time.Time

	// currentConversationID is the screen-scoped conversation; created
	// lazily on the first successful gate pass.
	currentConversationID string
}

func NewUsageGate(
	store localstore.Store,
	ident identity.Provider,
	conversations ConversationStore,
	adController *ads.Controller,
	adUnitID string,
	adsEnabled bool,
	limit int,
) *UsageGate {
	if limit <= 0 {
		limit = DefaultDailyMessageLimit
	}
	return &UsageGate{
		store:         store,
		identity:      ident,
		conversations: conversations,
		adController:  adController,
		adUnitID:      adUnitID,
		adsEnabled:    adsEnabled,
		limit:         limit,
		now:           time.Now,
	}
}

// Remaining returns how many gated sends the user has left today.
func (g *UsageGate) Remaining(ctx context.Context) (int, error) {
	userID, err := g.identity.CurrentUserID(ctx)
	if err != nil {
		return 0, err
	}
	count, err := g.usageCount(ctx, userID)
	if err != nil {
		return 0, err
	}
	remaining := g.limit - count
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

// SendMessage runs the full gate and, if it passes, dispatches the message.
//
// Flow: check the counter → show the rewarded ad unless one was already
// watched today → re-validate the counter, increment and persist it →
// ensure a conversation exists → send. Ad errors and timeouts degrade to
// allowing the action (fail open); only an explicit close-without-reward
// rejects.
func (g *UsageGate) SendMessage(ctx context.Context, text, locale string) (*domain.ChatMessage, error) {
	userID, err := g.identity.CurrentUserID(ctx)
	if err != nil {
		return nil, err
	}

	today := g.today()

	// 1. Quota check, strictly before any ad.
	count, err := g.usageCount(ctx, userID)
	if err != nil {
		return nil, err
	}
	if count >= g.limit {
		return nil, ErrLimitExceeded
	}

	// 2. Rewarded ad, once per day.
	if g.adsEnabled && !g.adWatchedToday(ctx, userID, today) {
		outcome, err := g.adController.ShowAndWait(ctx, g.adUnitID)
		if err != nil {
			if errors.Is(err, ads.ErrAdBusy) {
				return nil, err
			}
			// Context cancellation: the user left the screen.
			return nil, err
		}
		switch outcome {
		case ads.OutcomeEarned:
			g.markAdWatched(ctx, userID, today)
		case ads.OutcomeClosed:
			// No side effects yet; the user may simply retry.
			return nil, ErrAdNotCompleted
		case ads.OutcomeError, ads.OutcomeTimeout:
			// A broken or hung ad host must not lock the user out.
			log.Printf("usage gate: ad unavailable (%s), proceeding without reward", outcome)
		}
	}

	// 3. Proceeding: defensive re-check against races, then count the
	// attempt before dispatching.
	count, err = g.usageCount(ctx, userID)
	if err != nil {
		return nil, err
	}
	if count >= g.limit {
		return nil, ErrLimitExceeded
	}
	if err := g.setUsageCount(ctx, userID, today, count+1); err != nil {
		return nil, fmt.Errorf("persist usage counter: %w", err)
	}

	// 4. Ensure a current conversation exists.
	if g.currentConversationID == "" {
		conversationID, err := g.conversations.CreateNewConversation(ctx)
		if err != nil {
			return nil, fmt.Errorf("create conversation: %w", err)
		}
		g.currentConversationID = conversationID
	}

	// 5. Dispatch. The counter is not rolled back on failure: it counts
	// attempts, not successes.
	return g.conversations.SendMessage(ctx, g.currentConversationID, text, locale)
}

// SetConversation pins the gate to an existing conversation (e.g. resumed
// from chat history).
func (g *UsageGate) SetConversation(conversationID string) {
	g.currentConversationID = conversationID
}

func (g *UsageGate) today() string {
	return g.now().Format("2006-01-02")
}

func (g *UsageGate) usageCount(ctx context.Context, userID string) (int, error) {
	raw, ok, err := g.store.GetItem(ctx, localstore.DailyKey(usageCountKeyBase, userID, g.today()))
	if err != nil {
		return 0, err
	}
	if !ok {
		// A new day has no entry yet; the counter starts at zero.
		return 0, nil
	}
	count, err := strconv.Atoi(raw)
	if err != nil || count < 0 {
		return 0, nil
	}
	return count, nil
}

func (g *UsageGate) setUsageCount(ctx context.Context, userID, today string, count int) error {
	return g.store.SetItem(ctx, localstore.DailyKey(usageCountKeyBase, userID, today), strconv.Itoa(count))
}

func (g *UsageGate) adWatchedToday(ctx context.Context, userID, today string) bool {
	raw, ok, err := g.store.GetItem(ctx, localstore.DailyKey(adWatchedKeyBase, userID, today))
	return err == nil && ok && raw == "true"
}

func (g *UsageGate) markAdWatched(ctx context.Context, userID, today string) {
	if err := g.store.SetItem(ctx, localstore.DailyKey(adWatchedKeyBase, userID, today), "true"); err != nil {
		// Worst case the user watches another ad tomorrow's worth today.
		log.Printf("usage gate: persist ad-watched flag failed: %v", err)
	}
}
