// Package app assembles the client core: storage, identity, API wrappers
// and the screen-facing controllers. Screens take their collaborators from
// an App instance instead of constructing them ad hoc.
package app

import (
	"fmt"

	"github.com/FaisalHanif12/PrimeForm-sub002/internal/ads"
	"github.com/FaisalHanif12/PrimeForm-sub002/internal/apiclient"
	"github.com/FaisalHanif12/PrimeForm-sub002/internal/config"
	"github.com/FaisalHanif12/PrimeForm-sub002/internal/domain"
	"github.com/FaisalHanif12/PrimeForm-sub002/internal/identity"
	"github.com/FaisalHanif12/PrimeForm-sub002/internal/localstore"
	"github.com/FaisalHanif12/PrimeForm-sub002/internal/service"
)

// App owns the long-lived client-side objects for one session.
type App struct {
	Store    localstore.Store
	Identity *identity.Manager

	Auth          *apiclient.AuthAPI
	Profile       *apiclient.ProfileAPI
	DietPlans     *apiclient.DietPlanAPI
	WorkoutPlans  *apiclient.WorkoutPlanAPI
	Trainer       *apiclient.TrainerAPI
	Progress      *apiclient.ProgressAPI
	Notifications *apiclient.NotificationAPI
	Photos        *apiclient.PhotoAPI

	DietResolver    *service.PlanResolver[*domain.DietPlan]
	WorkoutResolver *service.PlanResolver[*domain.WorkoutPlan]
	TrainerGate     *service.UsageGate
	Badge           *service.Badge
	Locale          *service.LocalePrefs

	closer func() error
}

// New wires the client core from configuration. The ad provider is injected
// because it is host-specific; pass ads.NewStubProvider() on hosts without
// an ad SDK.
func New(cfg config.Config, adProvider ads.Provider) (*App, error) {
	store, err := localstore.NewSQLStore(cfg.Cache.URL)
	if err != nil {
		return nil, fmt.Errorf("open device store: %w", err)
	}
	a := build(cfg, store, adProvider)
	a.closer = store.Close
	return a, nil
}

// NewWithStore wires the client core onto an existing store. Used by tests
// and by hosts that manage storage themselves.
func NewWithStore(cfg config.Config, store localstore.Store, adProvider ads.Provider) *App {
	return build(cfg, store, adProvider)
}

func build(cfg config.Config, store localstore.Store, adProvider ads.Provider) *App {
	ident := identity.NewManager(store)
	client := apiclient.NewClient(cfg.API, ident)

	dietAPI := apiclient.NewDietPlanAPI(client)
	workoutAPI := apiclient.NewWorkoutPlanAPI(client)
	trainerAPI := apiclient.NewTrainerAPI(client)
	progressAPI := apiclient.NewProgressAPI(client)
	notificationAPI := apiclient.NewNotificationAPI(client)

	adController := ads.NewController(adProvider, cfg.Ads.LoadTimeout)

	return &App{
		Store:    store,
		Identity: ident,

		Auth:          apiclient.NewAuthAPI(client),
		Profile:       apiclient.NewProfileAPI(client, store),
		DietPlans:     dietAPI,
		WorkoutPlans:  workoutAPI,
		Trainer:       trainerAPI,
		Progress:      progressAPI,
		Notifications: notificationAPI,
		Photos:        apiclient.NewPhotoAPI(client),

		DietResolver:    service.NewPlanResolver("diet_plan", service.DietPlanBackend(dietAPI), store, ident, cfg.Cache.MaxPlanAge),
		WorkoutResolver: service.NewPlanResolver("workout_plan", service.WorkoutPlanBackend(workoutAPI), store, ident, cfg.Cache.MaxPlanAge),
		TrainerGate:     service.NewUsageGate(store, ident, trainerAPI, adController, cfg.Ads.UnitID, cfg.Ads.Enabled, cfg.Trainer.DailyMessageLimit),
		Badge:           service.NewBadge(store, ident, notificationAPI),
		Locale:          service.NewLocalePrefs(store, ident),
	}
}

// Close releases the device store and waits for background work.
func (a *App) Close() error {
	a.DietResolver.Flush()
	a.WorkoutResolver.Flush()
	if a.closer != nil {
		return a.closer()
	}
	return nil
}
