package entity

import (
	"time"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type DietPhase string

const (
	DietPhaseLoss        DietPhase = "loss"
	DietPhaseMaintenance DietPhase = "maintenance"
)

type DietType string

const (
	DietTypeStrict  DietType = "strict"
	DietTypeGeneral DietType = "general"
)

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// MealTypes lists meal types in display order
var MealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}

type ExerciseType string

const (
	ExerciseCardio   ExerciseType = "cardio"
	ExerciseStrength ExerciseType = "strength"
	ExerciseStretch  ExerciseType = "stretch"
	ExerciseOther    ExerciseType = "other"
)

type Profile struct {
	Name                string    `json:"name"`
	Height              float64   `json:"height"`
	TargetWeight        float64   `json:"targetWeight"`
	Gender              Gender    `json:"gender"`
	BirthDate           string    `json:"birthDate"`
	DietPhase           DietPhase `json:"dietPhase"`
	DietType            DietType  `json:"dietType"`
	MedicationStartDate string    `json:"medicationStartDate,omitempty"`
}

type FoodItem struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Calories  float64   `json:"calories"`
	Protein   float64   `json:"protein"`
	Carbs     float64   `json:"carbs"`
	Fat       float64   `json:"fat"`
	MealType  MealType  `json:"mealType"`
	Timestamp time.Time `json:"timestamp"`
}

type ExerciseItem struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	DurationMinutes float64      `json:"durationMinutes"`
	Reps            *int         `json:"reps,omitempty"`
	Completed       bool         `json:"completed"`
	Type            ExerciseType `json:"type"`
	Timestamp       time.Time    `json:"timestamp"`
}

type SkinCareRoutine struct {
	MorningWash   bool   `json:"morningWash"`
	MorningHair   bool   `json:"morningHair"`
	EveningShower bool   `json:"eveningShower"`
	EveningWash   bool   `json:"eveningWash"`
	EveningHair   bool   `json:"eveningHair"`
	Notes         string `json:"notes"`
}

type DailyLog struct {
	Date           string          `json:"date"`
	Weight         float64         `json:"weight"`
	SleepHours     float64         `json:"sleepHours"`
	Foods          []FoodItem      `json:"foods"`
	Exercises      []ExerciseItem  `json:"exercises"`
	SkinCare       SkinCareRoutine `json:"skinCare"`
	BodyCheckImage string          `json:"bodyCheckImage,omitempty"`
	MedicationDose float64         `json:"medicationDose,omitempty"`
}

// Document is the whole persisted unit: profile plus logs keyed by YYYY-MM-DD
type Document struct {
	Profile Profile             `json:"profile"`
	Logs    map[string]DailyLog `json:"logs"`
}

// Patches carry partial updates. A nil field leaves the target value unchanged.

type SkinCarePatch struct {
	MorningWash   *bool   `json:"morningWash,omitempty"`
	MorningHair   *bool   `json:"morningHair,omitempty"`
	EveningShower *bool   `json:"eveningShower,omitempty"`
	EveningWash   *bool   `json:"eveningWash,omitempty"`
	EveningHair   *bool   `json:"eveningHair,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

// SkinCare replaces the whole routine and is applied before SkinCareFields.
// MedicationTaken is applied after MedicationDose: true sets the default dose, false clears it.
type DailyLogPatch struct {
	Weight          *float64         `json:"weight,omitempty"`
	SleepHours      *float64         `json:"sleepHours,omitempty"`
	SkinCare        *SkinCareRoutine `json:"skinCare,omitempty"`
	SkinCareFields  *SkinCarePatch   `json:"skinCareFields,omitempty"`
	BodyCheckImage  *string          `json:"bodyCheckImage,omitempty"`
	MedicationDose  *float64         `json:"medicationDose,omitempty"`
	MedicationTaken *bool            `json:"medicationTaken,omitempty"`
}

type ProfilePatch struct {
	Name                *string    `json:"name,omitempty"`
	Height              *float64   `json:"height,omitempty"`
	TargetWeight        *float64   `json:"targetWeight,omitempty"`
	Gender              *Gender    `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	BirthDate           *string    `json:"birthDate,omitempty" validate:"omitempty,datekey"`
	DietPhase           *DietPhase `json:"dietPhase,omitempty" validate:"omitempty,oneof=loss maintenance"`
	DietType            *DietType  `json:"dietType,omitempty" validate:"omitempty,oneof=strict general"`
	MedicationStartDate *string    `json:"medicationStartDate,omitempty" validate:"omitempty,datekey"`
}

// Records coming back from the suggestion service. Loosely trusted, validated before use.

type FoodEstimate struct {
	Name     string  `json:"name" validate:"required,max=200"`
	Calories float64 `json:"calories" validate:"gte=0"`
	Protein  float64 `json:"protein" validate:"gte=0"`
	Carbs    float64 `json:"carbs" validate:"gte=0"`
	Fat      float64 `json:"fat" validate:"gte=0"`
}

type ExerciseSuggestion struct {
	Name            string       `json:"name" validate:"required,max=200"`
	DurationMinutes float64      `json:"durationMinutes" validate:"gt=0"`
	Type            ExerciseType `json:"type" validate:"oneof=cardio strength stretch other" jsonschema:"enum=cardio,enum=strength,enum=stretch,enum=other"`
	Description     string       `json:"description"`
}

// SkinCareQuery is the context of a skincare tip request
type SkinCareQuery struct {
	Age      int
	SkinType string
	Concerns string
	Weather  string
}

// DietQuery is the context of a next-meal suggestion
type DietQuery struct {
	Age           int
	DietPhase     DietPhase
	DietType      DietType
	TargetWeight  float64
	CaloriesToday float64
}
