package service

import (
	"context"

	"github.com/FaisalHanif12/PrimeForm-sub002/internal/apiclient"
	"github.com/FaisalHanif12/PrimeForm-sub002/internal/domain"
)

// DietPlanBackend adapts the diet-plan API wrapper to the resolver's
// backend contract: a nil plan with a nil error is "confirmed absent".
func DietPlanBackend(api *apiclient.DietPlanAPI) PlanBackend[*domain.DietPlan] {
	return PlanBackendFunc[*domain.DietPlan](func(ctx context.Context, forceRefresh bool) (*domain.DietPlan, bool, error) {
		plan, err := api.LoadFromDatabase(ctx, forceRefresh)
		if err != nil {
			return nil, false, err
		}
		return plan, plan != nil, nil
	})
}

// WorkoutPlanBackend adapts the workout-plan API wrapper likewise.
func WorkoutPlanBackend(api *apiclient.WorkoutPlanAPI) PlanBackend[*domain.WorkoutPlan] {
	return PlanBackendFunc[*domain.WorkoutPlan](func(ctx context.Context, forceRefresh bool) (*domain.WorkoutPlan, bool, error) {
		plan, err := api.LoadFromDatabase(ctx, forceRefresh)
		if err != nil {
			return nil, false, err
		}
		return plan, plan != nil, nil
	})
}
