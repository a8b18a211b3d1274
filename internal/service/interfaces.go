package service

import (
	"context"

	"github.com/limbo/glowlog/internal/journal"
	"github.com/limbo/glowlog/pkg/entity"
)

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks github.com/limbo/glowlog/internal/service AdvisorI,ImageStoreI,JournalServiceI,SuggestionServiceI

// NewFoodRequest is a user-entered item. Numbers are taken as given.
type NewFoodRequest struct {
	Name     string          `json:"name" validate:"required,max=200"`
	Calories float64         `json:"calories"`
	Protein  float64         `json:"protein"`
	Carbs    float64         `json:"carbs"`
	Fat      float64         `json:"fat"`
	MealType entity.MealType `json:"mealType" validate:"omitempty,oneof=breakfast lunch dinner snack"`
}

type NewExerciseRequest struct {
	Name            string              `json:"name" validate:"required,max=200"`
	DurationMinutes float64             `json:"durationMinutes"`
	Reps            *int                `json:"reps,omitempty"`
	Type            entity.ExerciseType `json:"type" validate:"omitempty,oneof=cardio strength stretch other"`
}

type FoodSuggestionRequest struct {
	Date     string          `validate:"required"`
	Input    string          `validate:"required,max=2000"`
	MealType entity.MealType `validate:"omitempty,oneof=breakfast lunch dinner snack"`
}

type ExerciseSuggestionRequest struct {
	Date    string `validate:"required"`
	Request string `validate:"required,max=2000"`
}

type SkinCareTipRequest struct {
	SkinType string `validate:"max=200"`
	Concerns string `validate:"max=1000"`
	Weather  string `validate:"max=200"`
}

// SuggestionResult reports what came back from the advisor. Fallback is set when
// the advisor failed or returned nothing usable.
type SuggestionResult struct {
	Foods     []entity.FoodItem     `json:"foods,omitempty"`
	Exercises []entity.ExerciseItem `json:"exercises,omitempty"`
	Text      string                `json:"text,omitempty"`
	Fallback  bool                  `json:"fallback"`
	Log       *entity.DailyLog      `json:"log,omitempty"`
}

type JournalServiceI interface {
	// Reads the stored document. Must be called once before anything else
	Init(ctx context.Context) error
	Profile() entity.Profile
	// Returns a copy of all logs keyed by date
	Logs() map[string]entity.DailyLog
	// Returns the stored log of date or an empty template. Never writes
	DayLog(date string) (entity.DailyLog, error)
	UpdateProfile(ctx context.Context, patch entity.ProfilePatch) (entity.Profile, error)
	UpdateDayLog(ctx context.Context, date string, patch entity.DailyLogPatch) (entity.DailyLog, error)
	// Validates every request, then appends the foods in order with fresh ids and timestamps
	AddFood(ctx context.Context, date string, reqs []NewFoodRequest) (entity.DailyLog, error)
	RemoveFood(ctx context.Context, date, foodID string) (entity.DailyLog, error)
	AddExercises(ctx context.Context, date string, reqs []NewExerciseRequest) (entity.DailyLog, error)
	ToggleExercise(ctx context.Context, date, exerciseID string) (entity.DailyLog, error)
	// Appends default routines when the day has no exercises yet
	SeedDefaultRoutines(ctx context.Context, date string) (entity.DailyLog, error)
	// Stores the image through the image store and records the reference on the day
	SetBodyCheck(ctx context.Context, date, dataURL string) (entity.DailyLog, error)
	SelectedDate() string
	SelectDate(date string) error
	ShiftDate(days int) string
	WeightTrend(days int) []journal.WeightPoint
	BMI(date string) (journal.BMI, error)
	MedicationCourse() (journal.MedicationCourse, bool)
}

type SuggestionServiceI interface {
	// Estimates nutrition of free text and appends the foods to the day
	SuggestFoods(ctx context.Context, req *FoodSuggestionRequest) (*SuggestionResult, error)
	// Asks for exercises fitting the request and appends them to the day
	SuggestExercises(ctx context.Context, req *ExerciseSuggestionRequest) (*SuggestionResult, error)
	SkinCareTip(ctx context.Context, req *SkinCareTipRequest) (*SuggestionResult, error)
	// Suggests the next meal given what was eaten on date
	DietSuggestion(ctx context.Context, date string) (*SuggestionResult, error)
}

type AdvisorI interface {
	AnalyzeFood(ctx context.Context, input string) ([]entity.FoodEstimate, error)
	SuggestExercises(ctx context.Context, request string, age int) ([]entity.ExerciseSuggestion, error)
	SkinCareTip(ctx context.Context, q entity.SkinCareQuery) (string, error)
	DietSuggestion(ctx context.Context, q entity.DietQuery) (string, error)
}

type ImageStoreI interface {
	// Returns the reference to keep in the log: the data URL itself or a remote URL
	Store(ctx context.Context, date, dataURL string) (string, error)
}
