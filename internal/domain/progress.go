package domain

import (
	"fmt"
	"time"
)

// ExerciseKey builds the composite completion key for a single exercise on
// a given date. Keys are date-scoped so the same exercise name on different
// days tracks independently.
func ExerciseKey(date, exerciseName string) string {
	return fmt.Sprintf("%s|%s", date, exerciseName)
}

// DayKey is the completion key for a whole day.
func DayKey(date string) string {
	return date
}

// ProgressSnapshot is the aggregate pushed to the progress backend during
// best-effort sync.
type ProgressSnapshot struct {
	UserID             string    `json:"userId"`
	CompletedExercises []string  `json:"completedExercises"` // composite keys, sorted
	CompletedDays      []string  `json:"completedDays"`      // dates, sorted
	SyncedAt           time.Time `json:"syncedAt"`
}

// ProgressSummary is what the progress dashboard renders.
type ProgressSummary struct {
	UserID            string  `json:"userId"`
	CurrentWeek       int     `json:"currentWeek"`
	DaysCompleted     int     `json:"daysCompleted"`
	ExercisesComplete int     `json:"exercisesComplete"`
	StreakDays        int     `json:"streakDays"`
	WeightKg          float64 `json:"weightKg,omitempty"`
	WaterLitersToday  float64 `json:"waterLitersToday,omitempty"`
}
