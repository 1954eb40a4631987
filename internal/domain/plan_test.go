package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDietPlanCacheContract(t *testing.T) {
	var nilPlan *DietPlan
	assert.Equal(t, "", nilPlan.OwnerID())
	assert.False(t, nilPlan.WellFormed())
	_, has := nilPlan.FreshnessTime()
	assert.False(t, has)

	empty := &DietPlan{UserID: "u1"}
	assert.Equal(t, "u1", empty.OwnerID())
	assert.False(t, empty.WellFormed(), "a plan without days is not presentable")

	plan := &DietPlan{UserID: "u1", WeeklyPlan: []DietDay{{Day: 1}}}
	assert.True(t, plan.WellFormed())
}

func TestFreshnessTimePrefersUpdatedAt(t *testing.T) {
	created := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	updated := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	plan := &WorkoutPlan{UserID: "u1", CreatedAt: &created, UpdatedAt: &updated}
	got, has := plan.FreshnessTime()
	assert.True(t, has)
	assert.Equal(t, updated, got)

	plan.UpdatedAt = nil
	got, has = plan.FreshnessTime()
	assert.True(t, has)
	assert.Equal(t, created, got)

	plan.CreatedAt = nil
	_, has = plan.FreshnessTime()
	assert.False(t, has, "no timestamp means permanently fresh")
}

func TestExerciseNamesPreserveOrder(t *testing.T) {
	day := WorkoutDay{Exercises: []PlanExercise{
		{Name: "Deadlift"}, {Name: "Rows"}, {Name: "Pull Ups"},
	}}
	assert.Equal(t, []string{"Deadlift", "Rows", "Pull Ups"}, day.ExerciseNames())

	rest := WorkoutDay{Rest: true}
	assert.Empty(t, rest.ExerciseNames())
}

func TestProgressKeys(t *testing.T) {
	assert.Equal(t, "2026-08-31|Squats", ExerciseKey("2026-08-31", "Squats"))
	assert.Equal(t, "2026-08-31", DayKey("2026-08-31"))
}
