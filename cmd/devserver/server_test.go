package main

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/FaisalHanif12/PrimeForm-sub002/internal/apiclient"
	"github.com/FaisalHanif12/PrimeForm-sub002/internal/config"
	"github.com/FaisalHanif12/PrimeForm-sub002/internal/domain"
	"github.com/FaisalHanif12/PrimeForm-sub002/internal/identity"
	"github.com/FaisalHanif12/PrimeForm-sub002/internal/localstore"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testHarness wires the real API client against an in-process dev server,
// the same client path the app itself uses.
type testHarness struct {
	client   *apiclient.Client
	identity *identity.Manager
	store    localstore.Store
}

func newHarness(t *testing.T) *testHarness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.Expiration = time.Hour

	router := gin.New()
	newDevServer(cfg, nil).registerRoutes(router)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	store := localstore.NewMemoryStore()
	ident := identity.NewManager(store)
	client := apiclient.NewClient(config.APIConfig{
		BaseURL: srv.URL + "/api/v1",
		Timeout: 5 * time.Second,
	}, ident)
	return &testHarness{client: client, identity: ident, store: store}
}

func (h *testHarness) register(t *testing.T, email string) string {
	t.Helper()
	ctx := context.Background()
	token, err := apiclient.NewAuthAPI(h.client).Register(ctx, "Test User", email, "secret123")
	require.NoError(t, err)
	require.NoError(t, h.identity.SetToken(ctx, token))
	userID, err := h.identity.CurrentUserID(ctx)
	require.NoError(t, err)
	return userID
}

func TestRegisterLoginRoundTrip(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	userID := h.register(t, "a@primeform.test")
	assert.NotEmpty(t, userID)

	// Duplicate registration is rejected.
	_, err := apiclient.NewAuthAPI(h.client).Register(ctx, "Test User", "a@primeform.test", "secret123")
	assert.Error(t, err)

	// Login with the same credentials issues a token for the same user.
	token, err := apiclient.NewAuthAPI(h.client).Login(ctx, "a@primeform.test", "secret123")
	require.NoError(t, err)
	require.NoError(t, h.identity.SetToken(ctx, token))
	loginUserID, err := h.identity.CurrentUserID(ctx)
	require.NoError(t, err)
	assert.Equal(t, userID, loginUserID)

	_, err = apiclient.NewAuthAPI(h.client).Login(ctx, "a@primeform.test", "wrong-pass")
	assert.Error(t, err)
}

func TestUnauthenticatedRequestsAreRejected(t *testing.T) {
	h := newHarness(t)
	_, err := apiclient.NewProfileAPI(h.client, h.store).GetUserProfile(context.Background())
	require.Error(t, err)
	apiErr, ok := err.(*apiclient.APIError)
	require.True(t, ok)
	assert.Equal(t, 401, apiErr.Status)
}

func TestProfileLifecycle(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	userID := h.register(t, "p@primeform.test")
	profiles := apiclient.NewProfileAPI(h.client, h.store)

	// No profile yet: confirmed absent, not an error.
	profile, err := profiles.GetUserProfile(ctx)
	require.NoError(t, err)
	assert.Nil(t, profile)

	require.NoError(t, profiles.CreateOrUpdateProfile(ctx, &domain.UserProfile{
		Gender:   domain.GenderFemale,
		Age:      28,
		HeightCm: 168,
		WeightKg: 62,
		Goal:     domain.GoalMuscleGain,
	}))

	profile, err = profiles.GetUserProfile(ctx)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, userID, profile.UserID)
	assert.Equal(t, domain.GoalMuscleGain, profile.Goal)

	// The device-local copy was refreshed along the way.
	cached, err := profiles.GetCachedProfile(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, profile.Goal, cached.Goal)
}

func TestDietPlanLifecycle(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.register(t, "d@primeform.test")
	plans := apiclient.NewDietPlanAPI(h.client)

	plan, err := plans.LoadFromDatabase(ctx, false)
	require.NoError(t, err)
	assert.Nil(t, plan, "no plan yet is a confirmed-absent result")

	generated, err := plans.GeneratePlan(ctx, &domain.UserProfile{Goal: domain.GoalWeightLoss})
	require.NoError(t, err)
	require.NotNil(t, generated)
	assert.Len(t, generated.WeeklyPlan, 7)
	assert.True(t, generated.WellFormed())

	plan, err = plans.LoadFromDatabase(ctx, true)
	require.NoError(t, err)
	require.NotNil(t, plan)
	assert.Equal(t, generated.ID, plan.ID)

	require.NoError(t, plans.ClearFromDatabase(ctx))
	plan, err = plans.LoadFromDatabase(ctx, false)
	require.NoError(t, err)
	assert.Nil(t, plan, "deletion leaves the confirmed-absent state")
}

func TestWorkoutPlanHasRestDays(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.register(t, "w@primeform.test")

	plan, err := apiclient.NewWorkoutPlanAPI(h.client).GeneratePlan(ctx, &domain.UserProfile{Goal: domain.GoalMuscleGain})
	require.NoError(t, err)
	require.Len(t, plan.WeeklyPlan, 7)

	restDays := 0
	for _, day := range plan.WeeklyPlan {
		if day.Rest {
			restDays++
			assert.Empty(t, day.Exercises, "rest days carry no exercises")
		} else {
			assert.NotEmpty(t, day.Exercises)
		}
	}
	assert.Equal(t, 2, restDays)
}

func TestTrainerConversationFlow(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.register(t, "t@primeform.test")
	trainer := apiclient.NewTrainerAPI(h.client)

	history, err := trainer.GetChatHistory(ctx)
	require.NoError(t, err)
	assert.Empty(t, history)

	conversationID, err := trainer.CreateNewConversation(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, conversationID)

	reply, err := trainer.SendMessage(ctx, conversationID, "What should my meals look like?", "en")
	require.NoError(t, err)
	require.NotNil(t, reply)
	assert.Equal(t, domain.RoleTrainer, reply.Role)
	assert.Equal(t, "nutrition", reply.Category)
	assert.NotEmpty(t, reply.Text)

	// Unknown conversation is a 404.
	_, err = trainer.SendMessage(ctx, "missing-conversation", "hello", "en")
	require.Error(t, err)
	assert.True(t, apiclient.IsNotFound(err))

	history, err = trainer.GetChatHistory(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Len(t, history[0].Messages, 2, "user message plus trainer reply")
	assert.Equal(t, "What should my meals look like?", history[0].Title)
}

func TestTrainerRepliesInUrdu(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.register(t, "u@primeform.test")
	trainer := apiclient.NewTrainerAPI(h.client)

	conversationID, err := trainer.CreateNewConversation(ctx)
	require.NoError(t, err)

	reply, err := trainer.SendMessage(ctx, conversationID, "workout tips", "ur")
	require.NoError(t, err)
	assert.Equal(t, "ur", reply.Locale)
	assert.NotEmpty(t, reply.Text)
}

func TestProgressEndpoints(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.register(t, "pr@primeform.test")
	progress := apiclient.NewProgressAPI(h.client)

	require.NoError(t, progress.MarkExerciseCompleted(ctx, "2026-08-31", "Squats"))
	require.NoError(t, progress.MarkDayCompleted(ctx, "2026-08-30"))
	require.NoError(t, progress.SyncSnapshot(ctx, &domain.ProgressSnapshot{
		CompletedExercises: []string{"2026-08-29|Rows"},
		CompletedDays:      []string{"2026-08-29"},
	}))

	summary, err := progress.GetSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.ExercisesComplete)
	assert.Equal(t, 2, summary.DaysCompleted)
	assert.Equal(t, 1, summary.CurrentWeek)
}

func TestNotificationInbox(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.register(t, "n@primeform.test")
	notifications := apiclient.NewNotificationAPI(h.client)

	// Registration seeds a welcome notification.
	count, err := notifications.GetUnreadCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	inbox, err := notifications.List(ctx)
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.False(t, inbox[0].Read)

	require.NoError(t, notifications.MarkAllRead(ctx))
	count, err = notifications.GetUnreadCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestPhotoEndpointsWithoutStorage(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.register(t, "ph@primeform.test")

	// No photo storage configured: the endpoint degrades with 503.
	_, err := apiclient.NewPhotoAPI(h.client).RequestUploadSlot(ctx, "image/jpeg", "2026-08-31")
	require.Error(t, err)
	apiErr, ok := err.(*apiclient.APIError)
	require.True(t, ok)
	assert.Equal(t, 503, apiErr.Status)
}
