package apiclient

import (
	"context"
	"net/http"

	"github.com/FaisalHanif12/PrimeForm-sub002/internal/domain"
)

// DietPlanAPI wraps the diet-plan endpoints. It implements the resolver's
// backend contract: a 404 means "confirmed no plan" and maps to (nil, nil);
// any other failure is a load error.
type DietPlanAPI struct {
	client *Client
}

func NewDietPlanAPI(client *Client) *DietPlanAPI {
	return &DietPlanAPI{client: client}
}

// LoadFromDatabase fetches the user's current diet plan. forceRefresh asks
// the backend to bypass any server-side caching of the generated plan.
func (a *DietPlanAPI) LoadFromDatabase(ctx context.Context, forceRefresh bool) (*domain.DietPlan, error) {
	path := "/diet-plan"
	if forceRefresh {
		path += "?refresh=true"
	}
	var plan domain.DietPlan
	err := a.client.do(ctx, http.MethodGet, path, nil, &plan)
	if IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// ClearFromDatabase deletes the user's current diet plan.
func (a *DietPlanAPI) ClearFromDatabase(ctx context.Context) error {
	return a.client.do(ctx, http.MethodDelete, "/diet-plan", nil, nil)
}

// GeneratePlan asks the backend to generate a fresh diet plan from the
// profile.
func (a *DietPlanAPI) GeneratePlan(ctx context.Context, profile *domain.UserProfile) (*domain.DietPlan, error) {
	var plan domain.DietPlan
	if err := a.client.do(ctx, http.MethodPost, "/diet-plan/generate", profile, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// WorkoutPlanAPI wraps the workout-plan endpoints with the same contract as
// DietPlanAPI.
type WorkoutPlanAPI struct {
	client *Client
}

func NewWorkoutPlanAPI(client *Client) *WorkoutPlanAPI {
	return &WorkoutPlanAPI{client: client}
}

func (a *WorkoutPlanAPI) LoadFromDatabase(ctx context.Context, forceRefresh bool) (*domain.WorkoutPlan, error) {
	path := "/workout-plan"
	if forceRefresh {
		path += "?refresh=true"
	}
	var plan domain.WorkoutPlan
	err := a.client.do(ctx, http.MethodGet, path, nil, &plan)
	if IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (a *WorkoutPlanAPI) ClearFromDatabase(ctx context.Context) error {
	return a.client.do(ctx, http.MethodDelete, "/workout-plan", nil, nil)
}

func (a *WorkoutPlanAPI) GeneratePlan(ctx context.Context, profile *domain.UserProfile) (*domain.WorkoutPlan, error) {
	var plan domain.WorkoutPlan
	if err := a.client.do(ctx, http.MethodPost, "/workout-plan/generate", profile, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}
