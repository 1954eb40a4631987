package main

import (
	"fmt"
	"time"

	"github.com/FaisalHanif12/PrimeForm-sub002/internal/domain"

	"github.com/google/uuid"
)

// Canned generation content. The real backend runs an LLM pipeline here;
// the stub only needs structurally faithful plans.

var mealRotation = []domain.Meal{
	{Name: "Anda Paratha", Time: "08:00", Items: []string{"2 eggs", "1 whole-wheat paratha", "green tea"}, Calories: 420},
	{Name: "Chicken Chapli Salad", Time: "13:00", Items: []string{"chapli kebab", "salad", "raita"}, Calories: 520},
	{Name: "Daal Chawal", Time: "20:00", Items: []string{"masoor daal", "brown rice", "cucumber"}, Calories: 610},
	{Name: "Fruit Chaat", Time: "17:00", Items: []string{"seasonal fruit", "chaat masala"}, Calories: 180},
}

var workoutRotation = []struct {
	focus     string
	exercises []domain.PlanExercise
}{
	{"Upper Body", []domain.PlanExercise{
		{Name: "Push Ups", Sets: 3, Reps: "10-15", RestSeconds: 60, Muscle: "chest"},
		{Name: "Dumbbell Rows", Sets: 3, Reps: "8-12", RestSeconds: 90, Muscle: "back"},
		{Name: "Shoulder Press", Sets: 3, Reps: "8-12", RestSeconds: 90, Muscle: "shoulders"},
	}},
	{"Lower Body", []domain.PlanExercise{
		{Name: "Squats", Sets: 4, Reps: "8-12", RestSeconds: 120, Muscle: "quads"},
		{Name: "Lunges", Sets: 3, Reps: "10 each leg", RestSeconds: 90, Muscle: "glutes"},
		{Name: "Calf Raises", Sets: 3, Reps: "15-20", RestSeconds: 60, Muscle: "calves"},
	}},
	{"Core & Cardio", []domain.PlanExercise{
		{Name: "Plank", Sets: 3, Reps: "45s", RestSeconds: 60, Muscle: "core"},
		{Name: "Mountain Climbers", Sets: 3, Reps: "30s", RestSeconds: 45, Muscle: "core"},
		{Name: "Jumping Jacks", Sets: 3, Reps: "60s", RestSeconds: 45, Muscle: "full body"},
	}},
}

func generateDietPlan(userID string, profile *domain.UserProfile) *domain.DietPlan {
	now := time.Now().UTC()
	start := truncateToDay(now)
	end := start.AddDate(0, 0, 27)

	goal := domain.GoalMaintenance
	if profile != nil && profile.Goal != "" {
		goal = profile.Goal
	}

	days := make([]domain.DietDay, 0, 7)
	for i := 0; i < 7; i++ {
		meals := []domain.Meal{
			mealRotation[i%len(mealRotation)],
			mealRotation[(i+1)%len(mealRotation)],
			mealRotation[(i+2)%len(mealRotation)],
		}
		total := 0
		for _, m := range meals {
			total += m.Calories
		}
		days = append(days, domain.DietDay{
			Day:           i + 1,
			Date:          start.AddDate(0, 0, i).Format("2006-01-02"),
			Meals:         meals,
			TotalCalories: total,
			WaterLiters:   2.5,
		})
	}

	return &domain.DietPlan{
		ID:         uuid.NewString(),
		UserID:     userID,
		Goal:       string(goal),
		WeeklyPlan: days,
		StartDate:  start,
		EndDate:    &end,
		TotalWeeks: 4,
		CreatedAt:  &now,
		UpdatedAt:  &now,
	}
}

func generateWorkoutPlan(userID string, profile *domain.UserProfile) *domain.WorkoutPlan {
	now := time.Now().UTC()
	start := truncateToDay(now)
	end := start.AddDate(0, 0, 27)

	goal := domain.GoalMaintenance
	if profile != nil && profile.Goal != "" {
		goal = profile.Goal
	}

	days := make([]domain.WorkoutDay, 0, 7)
	for i := 0; i < 7; i++ {
		day := domain.WorkoutDay{
			Day:  i + 1,
			Date: start.AddDate(0, 0, i).Format("2006-01-02"),
		}
		// Two rest days per week.
		if i == 3 || i == 6 {
			day.Rest = true
			day.Focus = "Rest"
		} else {
			rotation := workoutRotation[i%len(workoutRotation)]
			day.Focus = rotation.focus
			day.Exercises = rotation.exercises
		}
		days = append(days, day)
	}

	return &domain.WorkoutPlan{
		ID:         uuid.NewString(),
		UserID:     userID,
		Goal:       string(goal),
		WeeklyPlan: days,
		StartDate:  start,
		EndDate:    &end,
		TotalWeeks: 4,
		CreatedAt:  &now,
		UpdatedAt:  &now,
	}
}

// trainerReply returns a canned reply in the requested locale, categorized
// by crude keyword matching the way the real pipeline tags replies.
func trainerReply(text, locale string) (reply, category string) {
	category = "general"
	for keyword, cat := range map[string]string{
		"diet": "nutrition", "meal": "nutrition", "food": "nutrition",
		"workout": "training", "exercise": "training", "gym": "training",
		"weight": "progress", "progress": "progress",
	} {
		if containsFold(text, keyword) {
			category = cat
			break
		}
	}

	if locale == "ur" {
		return fmt.Sprintf("شاباش! آپ کے سوال (%s) کا جواب: مستقل مزاجی کامیابی کی کنجی ہے۔", category), category
	}
	return fmt.Sprintf("Good question! On %s: consistency beats intensity, so stick to the plan and log every day.", category), category
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
