package service

import (
	"context"
	"errors"
	"log"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/glowlog/internal/error_values"
	"github.com/limbo/glowlog/internal/journal"
	"github.com/limbo/glowlog/pkg/datekey"
	"github.com/limbo/glowlog/pkg/entity"
)

// DefaultRoutines are added to a day that has no exercises on request
var DefaultRoutines = []NewExerciseRequest{
	{Name: "Morning wake-up stretch", DurationMinutes: 10, Type: entity.ExerciseStretch},
	{Name: "Evening relax stretch", DurationMinutes: 15, Type: entity.ExerciseStretch},
	{Name: "Back strengthening (McKenzie)", DurationMinutes: 10, Type: entity.ExerciseStrength},
}

// JournalService owns the in-memory document. Every event runs under mu, and
// every mutation writes the full document back before returning.
type JournalService struct {
	mu     sync.Mutex
	store  *DocumentStore
	images ImageStoreI
	doc    entity.Document
	cursor *journal.Cursor
	now    func() time.Time
}

func NewJournalService(store *DocumentStore, images ImageStoreI) *JournalService {
	if store == nil {
		log.Fatal("provided nil document store")
	}
	if images == nil {
		log.Fatal("provided nil image store")
	}
	return &JournalService{
		store:  store,
		images: images,
		doc:    journal.NewDocument(),
		cursor: journal.NewCursor(time.Now()),
		now:    time.Now,
	}
}

// WithClock replaces the time source. Used by tests
func (js *JournalService) WithClock(now func() time.Time) *JournalService {
	js.mu.Lock()
	defer js.mu.Unlock()
	js.now = now
	js.cursor = journal.NewCursor(now())
	return js
}

func (js *JournalService) Init(ctx context.Context) error {
	doc, err := js.store.Load(ctx)
	if err != nil {
		return err
	}
	js.mu.Lock()
	defer js.mu.Unlock()
	js.doc = doc
	return nil
}

// commit replaces the document, then persists it. The new document stays in memory on failure.
func (js *JournalService) commit(ctx context.Context, doc entity.Document) error {
	js.doc = doc
	err := js.store.Save(ctx, doc)
	if err != nil {
		return errors.Join(errorvalues.ErrPersistFailed, err)
	}
	return nil
}

func (js *JournalService) Profile() entity.Profile {
	js.mu.Lock()
	defer js.mu.Unlock()
	return js.doc.Profile
}

func (js *JournalService) Logs() map[string]entity.DailyLog {
	js.mu.Lock()
	defer js.mu.Unlock()
	return maps.Clone(js.doc.Logs)
}

func (js *JournalService) DayLog(date string) (entity.DailyLog, error) {
	if err := checkDate(date); err != nil {
		return entity.DailyLog{}, err
	}
	js.mu.Lock()
	defer js.mu.Unlock()
	return journal.Resolve(js.doc, date), nil
}

func (js *JournalService) UpdateProfile(ctx context.Context, patch entity.ProfilePatch) (entity.Profile, error) {
	if err := validateStruct(patch); err != nil {
		return entity.Profile{}, err
	}
	js.mu.Lock()
	defer js.mu.Unlock()
	doc := journal.UpdateProfile(js.doc, patch)
	err := js.commit(ctx, doc)
	return doc.Profile, err
}

func (js *JournalService) UpdateDayLog(ctx context.Context, date string, patch entity.DailyLogPatch) (entity.DailyLog, error) {
	if err := checkDate(date); err != nil {
		return entity.DailyLog{}, err
	}
	js.mu.Lock()
	defer js.mu.Unlock()
	return js.mutateDay(ctx, date, func(doc entity.Document) entity.Document {
		return journal.UpdateDayLog(doc, date, patch)
	})
}

func (js *JournalService) AddFood(ctx context.Context, date string, reqs []NewFoodRequest) (entity.DailyLog, error) {
	if err := checkDate(date); err != nil {
		return entity.DailyLog{}, err
	}
	reqs = slices.Clone(reqs)
	for i := range reqs {
		reqs[i].Name = strings.TrimSpace(reqs[i].Name)
		if err := validateStruct(reqs[i]); err != nil {
			return entity.DailyLog{}, err
		}
	}
	js.mu.Lock()
	defer js.mu.Unlock()
	items := make([]entity.FoodItem, 0, len(reqs))
	for _, req := range reqs {
		items = append(items, NewFoodItem(req, js.now()))
	}
	return js.mutateDay(ctx, date, func(doc entity.Document) entity.Document {
		return journal.AddFood(doc, date, items)
	})
}

func (js *JournalService) RemoveFood(ctx context.Context, date, foodID string) (entity.DailyLog, error) {
	if err := checkDate(date); err != nil {
		return entity.DailyLog{}, err
	}
	js.mu.Lock()
	defer js.mu.Unlock()
	return js.mutateDay(ctx, date, func(doc entity.Document) entity.Document {
		return journal.RemoveFood(doc, date, foodID)
	})
}

func (js *JournalService) AddExercises(ctx context.Context, date string, reqs []NewExerciseRequest) (entity.DailyLog, error) {
	if err := checkDate(date); err != nil {
		return entity.DailyLog{}, err
	}
	reqs = slices.Clone(reqs)
	for i := range reqs {
		reqs[i].Name = strings.TrimSpace(reqs[i].Name)
		if err := validateStruct(reqs[i]); err != nil {
			return entity.DailyLog{}, err
		}
	}
	js.mu.Lock()
	defer js.mu.Unlock()
	return js.addExercises(ctx, date, reqs)
}

func (js *JournalService) addExercises(ctx context.Context, date string, reqs []NewExerciseRequest) (entity.DailyLog, error) {
	return js.mutateDay(ctx, date, func(doc entity.Document) entity.Document {
		for _, req := range reqs {
			doc = journal.AddExercise(doc, date, NewExerciseItem(req, js.now()))
		}
		return doc
	})
}

func (js *JournalService) ToggleExercise(ctx context.Context, date, exerciseID string) (entity.DailyLog, error) {
	if err := checkDate(date); err != nil {
		return entity.DailyLog{}, err
	}
	js.mu.Lock()
	defer js.mu.Unlock()
	return js.mutateDay(ctx, date, func(doc entity.Document) entity.Document {
		return journal.ToggleExercise(doc, date, exerciseID)
	})
}

func (js *JournalService) SeedDefaultRoutines(ctx context.Context, date string) (entity.DailyLog, error) {
	if err := checkDate(date); err != nil {
		return entity.DailyLog{}, err
	}
	js.mu.Lock()
	defer js.mu.Unlock()
	current := journal.Resolve(js.doc, date)
	if len(current.Exercises) > 0 {
		return current, nil
	}
	return js.addExercises(ctx, date, DefaultRoutines)
}

func (js *JournalService) SetBodyCheck(ctx context.Context, date, dataURL string) (entity.DailyLog, error) {
	if err := checkDate(date); err != nil {
		return entity.DailyLog{}, err
	}
	ref, err := js.images.Store(ctx, date, dataURL)
	if err != nil {
		return entity.DailyLog{}, err
	}
	js.mu.Lock()
	defer js.mu.Unlock()
	return js.mutateDay(ctx, date, func(doc entity.Document) entity.Document {
		return journal.UpdateDayLog(doc, date, entity.DailyLogPatch{BodyCheckImage: &ref})
	})
}

// mutateDay must be called with mu held
func (js *JournalService) mutateDay(ctx context.Context, date string, mutate func(entity.Document) entity.Document) (entity.DailyLog, error) {
	doc := mutate(js.doc)
	err := js.commit(ctx, doc)
	return journal.Resolve(doc, date), err
}

func (js *JournalService) SelectedDate() string {
	js.mu.Lock()
	defer js.mu.Unlock()
	return js.cursor.Selected()
}

func (js *JournalService) SelectDate(date string) error {
	js.mu.Lock()
	defer js.mu.Unlock()
	return js.cursor.Set(date)
}

func (js *JournalService) ShiftDate(days int) string {
	js.mu.Lock()
	defer js.mu.Unlock()
	return js.cursor.Shift(days)
}

func (js *JournalService) WeightTrend(days int) []journal.WeightPoint {
	js.mu.Lock()
	defer js.mu.Unlock()
	return journal.WeightTrend(js.doc, days)
}

// BMI uses the weight logged on date and the profile height
func (js *JournalService) BMI(date string) (journal.BMI, error) {
	if err := checkDate(date); err != nil {
		return journal.BMI{}, err
	}
	js.mu.Lock()
	defer js.mu.Unlock()
	day := journal.Resolve(js.doc, date)
	return journal.ComputeBMI(day.Weight, js.doc.Profile.Height), nil
}

func (js *JournalService) MedicationCourse() (journal.MedicationCourse, bool) {
	js.mu.Lock()
	defer js.mu.Unlock()
	return journal.CourseFor(js.doc.Profile, datekey.Today(js.now()))
}

func NewFoodItem(req NewFoodRequest, now time.Time) entity.FoodItem {
	return entity.FoodItem{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Calories:  req.Calories,
		Protein:   req.Protein,
		Carbs:     req.Carbs,
		Fat:       req.Fat,
		MealType:  req.MealType,
		Timestamp: now.UTC(),
	}
}

func NewExerciseItem(req NewExerciseRequest, now time.Time) entity.ExerciseItem {
	exType := req.Type
	if exType == "" {
		exType = entity.ExerciseOther
	}
	var reps *int
	if req.Reps != nil {
		r := *req.Reps
		reps = &r
	}
	return entity.ExerciseItem{
		ID:              uuid.NewString(),
		Name:            req.Name,
		DurationMinutes: req.DurationMinutes,
		Reps:            reps,
		Type:            exType,
		Timestamp:       now.UTC(),
	}
}
