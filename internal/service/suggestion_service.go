package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"time"

	errorvalues "github.com/limbo/glowlog/internal/error_values"
	"github.com/limbo/glowlog/internal/journal"
	"github.com/limbo/glowlog/pkg/entity"
)

const (
	SkinCareFallback = "Stay hydrated and don't forget sunscreen!"
	DietFallback     = "Could not load a meal suggestion."
)

// SuggestionService asks the advisor outside the journal lock and merges
// structured results through the journal afterwards. Advisor failures never
// surface as errors, they turn into fallback results.
type SuggestionService struct {
	journal JournalServiceI
	advisor AdvisorI
	now     func() time.Time
}

func NewSuggestionService(journalService JournalServiceI, advisor AdvisorI) *SuggestionService {
	if journalService == nil {
		log.Fatal("provided nil journal service")
	}
	if advisor == nil {
		log.Fatal("provided nil advisor")
	}
	return &SuggestionService{
		journal: journalService,
		advisor: advisor,
		now:     time.Now,
	}
}

func (ss *SuggestionService) WithClock(now func() time.Time) *SuggestionService {
	ss.now = now
	return ss
}

func (ss *SuggestionService) age() int {
	return journal.AgeOn(ss.journal.Profile().BirthDate, ss.now())
}

func (ss *SuggestionService) SuggestFoods(ctx context.Context, req *FoodSuggestionRequest) (*SuggestionResult, error) {
	if err := checkDate(req.Date); err != nil {
		return nil, err
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	estimates, err := ss.advisor.AnalyzeFood(ctx, req.Input)
	if err != nil {
		slog.Warn("food analysis failed", slog.String("error", err.Error()))
		return &SuggestionResult{Foods: []entity.FoodItem{}, Fallback: true}, nil
	}
	estimates = sanitizeFoods(estimates)
	if len(estimates) == 0 {
		return &SuggestionResult{Foods: []entity.FoodItem{}, Fallback: true}, nil
	}
	reqs := make([]NewFoodRequest, 0, len(estimates))
	for _, e := range estimates {
		reqs = append(reqs, NewFoodRequest{
			Name:     e.Name,
			Calories: e.Calories,
			Protein:  e.Protein,
			Carbs:    e.Carbs,
			Fat:      e.Fat,
			MealType: req.MealType,
		})
	}
	day, err := ss.journal.AddFood(ctx, req.Date, reqs)
	if err != nil && !errors.Is(err, errorvalues.ErrPersistFailed) {
		return nil, err
	}
	result := &SuggestionResult{
		Foods: lastN(day.Foods, len(reqs)),
		Log:   &day,
	}
	return result, err
}

func (ss *SuggestionService) SuggestExercises(ctx context.Context, req *ExerciseSuggestionRequest) (*SuggestionResult, error) {
	if err := checkDate(req.Date); err != nil {
		return nil, err
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	suggestions, err := ss.advisor.SuggestExercises(ctx, req.Request, ss.age())
	if err != nil {
		slog.Warn("exercise suggestion failed", slog.String("error", err.Error()))
		return &SuggestionResult{Exercises: []entity.ExerciseItem{}, Fallback: true}, nil
	}
	suggestions = sanitizeExercises(suggestions)
	if len(suggestions) == 0 {
		return &SuggestionResult{Exercises: []entity.ExerciseItem{}, Fallback: true}, nil
	}
	reqs := make([]NewExerciseRequest, 0, len(suggestions))
	for _, s := range suggestions {
		reqs = append(reqs, NewExerciseRequest{
			Name:            s.Name,
			DurationMinutes: s.DurationMinutes,
			Type:            s.Type,
		})
	}
	day, err := ss.journal.AddExercises(ctx, req.Date, reqs)
	if err != nil && !errors.Is(err, errorvalues.ErrPersistFailed) {
		return nil, err
	}
	result := &SuggestionResult{
		Exercises: lastN(day.Exercises, len(reqs)),
		Log:       &day,
	}
	return result, err
}

func (ss *SuggestionService) SkinCareTip(ctx context.Context, req *SkinCareTipRequest) (*SuggestionResult, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	tip, err := ss.advisor.SkinCareTip(ctx, entity.SkinCareQuery{
		Age:      ss.age(),
		SkinType: req.SkinType,
		Concerns: req.Concerns,
		Weather:  req.Weather,
	})
	if err != nil {
		slog.Warn("skincare tip failed", slog.String("error", err.Error()))
		return &SuggestionResult{Text: SkinCareFallback, Fallback: true}, nil
	}
	return &SuggestionResult{Text: tip}, nil
}

func (ss *SuggestionService) DietSuggestion(ctx context.Context, date string) (*SuggestionResult, error) {
	day, err := ss.journal.DayLog(date)
	if err != nil {
		return nil, err
	}
	profile := ss.journal.Profile()
	text, err := ss.advisor.DietSuggestion(ctx, entity.DietQuery{
		Age:           journal.AgeOn(profile.BirthDate, ss.now()),
		DietPhase:     profile.DietPhase,
		DietType:      profile.DietType,
		TargetWeight:  profile.TargetWeight,
		CaloriesToday: journal.Summarize(day).TotalCalories,
	})
	if err != nil {
		slog.Warn("diet suggestion failed", slog.String("error", err.Error()))
		return &SuggestionResult{Text: DietFallback, Fallback: true}, nil
	}
	return &SuggestionResult{Text: text}, nil
}

// lastN returns the items appended by the latest merge
func lastN[T any](items []T, n int) []T {
	if n > len(items) {
		n = len(items)
	}
	return items[len(items)-n:]
}
