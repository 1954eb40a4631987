package domain

import (
	"time"
)

// Gender of the app user, as collected during onboarding.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// FitnessGoal the user selected during onboarding; drives plan generation.
type FitnessGoal string

const (
	GoalWeightLoss  FitnessGoal = "weight_loss"
	GoalMuscleGain  FitnessGoal = "muscle_gain"
	GoalMaintenance FitnessGoal = "maintenance"
	GoalEndurance   FitnessGoal = "endurance"
)

// UserProfile is the onboarding/profile data the backend uses to generate
// diet and workout plans.
type UserProfile struct {
	UserID          string      `json:"userId"`
	Name            string      `json:"name,omitempty"`
	Email           string      `json:"email,omitempty"`
	Gender          Gender      `json:"gender,omitempty"`
	Age             int         `json:"age,omitempty"`
	HeightCm        float64     `json:"heightCm,omitempty"`
	WeightKg        float64     `json:"weightKg,omitempty"`
	TargetWeightKg  float64     `json:"targetWeightKg,omitempty"`
	Goal            FitnessGoal `json:"goal,omitempty"`
	ActivityLevel   string      `json:"activityLevel,omitempty"` // sedentary..very_active
	DietPreference  string      `json:"dietPreference,omitempty"` // e.g. "halal", "vegetarian"
	MedicalNotes    string      `json:"medicalNotes,omitempty"`
	PreferredLocale string      `json:"preferredLocale,omitempty"` // "en" or "ur"
	CreatedAt       time.Time   `json:"createdAt,omitempty"`
	UpdatedAt       time.Time   `json:"updatedAt,omitempty"`
}

// Complete reports whether the profile carries enough data for plan
// generation.
func (p *UserProfile) Complete() bool {
	return p != nil && p.UserID != "" && p.Age > 0 && p.HeightCm > 0 && p.WeightKg > 0 && p.Goal != ""
}
