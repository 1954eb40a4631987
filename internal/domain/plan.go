package domain

import (
	"time"
)

// DayStatus classifies a plan day relative to today and to local completion.
type DayStatus string

const (
	DayStatusCompleted  DayStatus = "completed"
	DayStatusRest       DayStatus = "rest"
	DayStatusUpcoming   DayStatus = "upcoming"
	DayStatusMissed     DayStatus = "missed"
	DayStatusInProgress DayStatus = "in_progress"
)

// CacheablePlan is implemented by plan types that can live in the device
// cache. The resolver relies on it to validate ownership and staleness
// without caring whether it holds a diet or a workout plan.
type CacheablePlan interface {
	// OwnerID returns the identity marker embedded in the plan. A cache
	// entry is only presented when this matches the authenticated user.
	OwnerID() string
	// WellFormed reports whether the plan carries a non-empty ordered
	// day sequence.
	WellFormed() bool
	// FreshnessTime returns the timestamp used for staleness decisions
	// (updatedAt, falling back to createdAt) and whether one exists at
	// all. Plans without any timestamp are treated as permanently fresh.
	FreshnessTime() (time.Time, bool)
}

// Meal is a single meal entry within a diet day.
type Meal struct {
	Name        string   `json:"name"`
	Time        string   `json:"time,omitempty"` // e.g. "08:00"
	Items       []string `json:"items"`
	Calories    int      `json:"calories,omitempty"`
	ProteinGr   float64  `json:"proteinGr,omitempty"`
	CarbsGr     float64  `json:"carbsGr,omitempty"`
	FatGr       float64  `json:"fatGr,omitempty"`
	Description string   `json:"description,omitempty"`
}

// DietDay is one day of a weekly diet plan.
type DietDay struct {
	Day           int    `json:"day"` // 1-based position within the week
	Date          string `json:"date,omitempty"` // "2006-01-02"
	Meals         []Meal `json:"meals"`
	TotalCalories int    `json:"totalCalories,omitempty"`
	WaterLiters   float64 `json:"waterLiters,omitempty"`
}

// DietPlan is the weekly diet schedule generated for a user.
type DietPlan struct {
	ID         string     `json:"id,omitempty"`
	UserID     string     `json:"userId"`
	Goal       string     `json:"goal,omitempty"` // e.g. "weight_loss"
	WeeklyPlan []DietDay  `json:"weeklyPlan"`
	StartDate  time.Time  `json:"startDate"`
	EndDate    *time.Time `json:"endDate,omitempty"`
	TotalWeeks int        `json:"totalWeeks,omitempty"`
	CreatedAt  *time.Time `json:"createdAt,omitempty"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty"`
}

func (p *DietPlan) OwnerID() string {
	if p == nil {
		return ""
	}
	return p.UserID
}

func (p *DietPlan) WellFormed() bool { return p != nil && len(p.WeeklyPlan) > 0 }

func (p *DietPlan) FreshnessTime() (time.Time, bool) {
	if p == nil {
		return time.Time{}, false
	}
	return freshnessTime(p.UpdatedAt, p.CreatedAt)
}

// PlanExercise is a single exercise entry within a workout day.
type PlanExercise struct {
	Name        string `json:"name"`
	Sets        int    `json:"sets,omitempty"`
	Reps        string `json:"reps,omitempty"` // "8-12", "30s", ...
	RestSeconds int    `json:"restSeconds,omitempty"`
	Muscle      string `json:"muscle,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// WorkoutDay is one day of a weekly workout plan. Rest days carry no
// exercises.
type WorkoutDay struct {
	Day       int            `json:"day"` // 1-based position within the week
	Date      string         `json:"date,omitempty"` // "2006-01-02"
	Focus     string         `json:"focus,omitempty"` // e.g. "Upper Body"
	Rest      bool           `json:"rest,omitempty"`
	Exercises []PlanExercise `json:"exercises,omitempty"`
}

// WorkoutPlan is the weekly workout schedule generated for a user.
type WorkoutPlan struct {
	ID         string       `json:"id,omitempty"`
	UserID     string       `json:"userId"`
	Goal       string       `json:"goal,omitempty"`
	WeeklyPlan []WorkoutDay `json:"weeklyPlan"`
	StartDate  time.Time    `json:"startDate"`
	EndDate    *time.Time   `json:"endDate,omitempty"`
	TotalWeeks int          `json:"totalWeeks,omitempty"`
	CreatedAt  *time.Time   `json:"createdAt,omitempty"`
	UpdatedAt  *time.Time   `json:"updatedAt,omitempty"`
}

func (p *WorkoutPlan) OwnerID() string {
	if p == nil {
		return ""
	}
	return p.UserID
}

func (p *WorkoutPlan) WellFormed() bool { return p != nil && len(p.WeeklyPlan) > 0 }

func (p *WorkoutPlan) FreshnessTime() (time.Time, bool) {
	if p == nil {
		return time.Time{}, false
	}
	return freshnessTime(p.UpdatedAt, p.CreatedAt)
}

// ExerciseNames returns the names of all non-rest exercises for the day,
// in plan order.
func (d WorkoutDay) ExerciseNames() []string {
	names := make([]string, 0, len(d.Exercises))
	for _, ex := range d.Exercises {
		names = append(names, ex.Name)
	}
	return names
}

func freshnessTime(updated, created *time.Time) (time.Time, bool) {
	if updated != nil && !updated.IsZero() {
		return *updated, true
	}
	if created != nil && !created.IsZero() {
		return *created, true
	}
	return time.Time{}, false
}
