package journal_test

import (
	"testing"
	"time"

	"github.com/limbo/glowlog/internal/journal"
	"github.com/limbo/glowlog/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	ts = time.Date(2024, 2, 1, 8, 30, 0, 0, time.UTC)
)

func ptr[T any](v T) *T {
	return &v
}

func food(id, name string, cal float64) entity.FoodItem {
	return entity.FoodItem{
		ID:        id,
		Name:      name,
		Calories:  cal,
		MealType:  entity.MealLunch,
		Timestamp: ts,
	}
}

func exercise(id string) entity.ExerciseItem {
	return entity.ExerciseItem{
		ID:              id,
		Name:            "walk",
		DurationMinutes: 30,
		Type:            entity.ExerciseCardio,
		Timestamp:       ts,
	}
}

func TestResolve(t *testing.T) {
	doc := journal.NewDocument()
	t.Run("template for unknown date", func(t *testing.T) {
		first := journal.Resolve(doc, "2024-03-01")
		second := journal.Resolve(doc, "2024-03-01")
		assert.Equal(t, first, second)
		assert.Equal(t, "2024-03-01", first.Date)
		assert.Zero(t, first.Weight)
		assert.Zero(t, first.SleepHours)
		assert.Zero(t, first.MedicationDose)
		assert.Empty(t, first.Foods)
		assert.Empty(t, first.Exercises)
		assert.Equal(t, entity.SkinCareRoutine{}, first.SkinCare)
		assert.Empty(t, doc.Logs)
	})
	t.Run("stored log", func(t *testing.T) {
		w := 61.5
		stored := journal.UpdateDayLog(doc, "2024-03-01", entity.DailyLogPatch{Weight: &w})
		log := journal.Resolve(stored, "2024-03-01")
		assert.Equal(t, 61.5, log.Weight)
	})
}

func TestUpdateDayLogSeeding(t *testing.T) {
	doc := journal.NewDocument()
	doc = journal.UpdateProfile(doc, entity.ProfilePatch{TargetWeight: ptr(60.0)})

	doc = journal.UpdateDayLog(doc, "2024-01-05", entity.DailyLogPatch{})
	assert.Equal(t, 60.0, doc.Logs["2024-01-05"].Weight)

	doc = journal.UpdateDayLog(doc, "2024-01-05", entity.DailyLogPatch{Weight: ptr(58.0)})
	doc = journal.UpdateDayLog(doc, "2024-01-10", entity.DailyLogPatch{})
	assert.Equal(t, 58.0, doc.Logs["2024-01-10"].Weight)

	t.Run("later dates are not used", func(t *testing.T) {
		next := journal.UpdateDayLog(doc, "2024-01-01", entity.DailyLogPatch{})
		assert.Equal(t, 60.0, next.Logs["2024-01-01"].Weight)
	})
	t.Run("zero weight on the latest earlier day falls back to target", func(t *testing.T) {
		next := journal.UpdateDayLog(doc, "2024-01-12", entity.DailyLogPatch{Weight: ptr(0.0)})
		next = journal.UpdateDayLog(next, "2024-01-15", entity.DailyLogPatch{})
		assert.Equal(t, 60.0, next.Logs["2024-01-15"].Weight)
	})
	t.Run("food-only day in between falls back to target", func(t *testing.T) {
		next := journal.UpdateDayLog(journal.NewDocument(), "2024-01-01", entity.DailyLogPatch{Weight: ptr(58.0)})
		next = journal.AddFood(next, "2024-01-03", []entity.FoodItem{food("f1", "rice", 300)})
		next = journal.UpdateDayLog(next, "2024-01-05", entity.DailyLogPatch{})
		assert.Equal(t, 60.0, next.Logs["2024-01-05"].Weight)
	})
	t.Run("existing log is not reseeded", func(t *testing.T) {
		next := journal.UpdateDayLog(doc, "2024-01-05", entity.DailyLogPatch{SleepHours: ptr(7.5)})
		assert.Equal(t, 58.0, next.Logs["2024-01-05"].Weight)
		assert.Equal(t, 7.5, next.Logs["2024-01-05"].SleepHours)
	})
}

func TestUpdateDayLogPatch(t *testing.T) {
	doc := journal.UpdateDayLog(journal.NewDocument(), "2024-04-01", entity.DailyLogPatch{
		SkinCare: &entity.SkinCareRoutine{MorningWash: true, Notes: "dry"},
	})
	doc = journal.UpdateDayLog(doc, "2024-04-01", entity.DailyLogPatch{
		SkinCareFields: &entity.SkinCarePatch{EveningWash: ptr(true)},
		MedicationDose: ptr(2.5),
		BodyCheckImage: ptr("data:image/jpeg;base64,AAAA"),
	})
	log := doc.Logs["2024-04-01"]
	assert.Equal(t, entity.SkinCareRoutine{MorningWash: true, EveningWash: true, Notes: "dry"}, log.SkinCare)
	assert.Equal(t, 2.5, log.MedicationDose)
	assert.Equal(t, "data:image/jpeg;base64,AAAA", log.BodyCheckImage)
	assert.Equal(t, "2024-04-01", log.Date)
	assert.Equal(t, 60.0, log.Weight)
}

func TestMedicationTaken(t *testing.T) {
	doc := journal.UpdateDayLog(journal.NewDocument(), "2024-04-01", entity.DailyLogPatch{MedicationTaken: ptr(true)})
	assert.Equal(t, journal.DefaultMedicationDose, doc.Logs["2024-04-01"].MedicationDose)

	doc = journal.UpdateDayLog(doc, "2024-04-01", entity.DailyLogPatch{MedicationTaken: ptr(false)})
	assert.Zero(t, doc.Logs["2024-04-01"].MedicationDose)

	doc = journal.UpdateDayLog(doc, "2024-04-01", entity.DailyLogPatch{MedicationDose: ptr(5.0)})
	assert.Equal(t, 5.0, doc.Logs["2024-04-01"].MedicationDose, "explicit dose is kept without the flag")
}

func TestAddFood(t *testing.T) {
	doc := journal.NewDocument()
	item, item2 := food("f1", "rice", 300), food("f2", "egg", 80)
	doc = journal.AddFood(doc, "2024-02-01", []entity.FoodItem{item})
	doc = journal.AddFood(doc, "2024-02-01", []entity.FoodItem{item2})
	assert.Equal(t, []entity.FoodItem{item, item2}, doc.Logs["2024-02-01"].Foods)
	// food logs are not weight-seeded
	assert.Zero(t, doc.Logs["2024-02-01"].Weight)
}

func TestNumbersTakenAsGiven(t *testing.T) {
	doc := journal.AddFood(journal.NewDocument(), "2024-02-01", []entity.FoodItem{food("f1", "correction", -150)})
	doc = journal.UpdateDayLog(doc, "2024-02-01", entity.DailyLogPatch{Weight: ptr(-1.0), SleepHours: ptr(30.0)})
	log := doc.Logs["2024-02-01"]
	assert.Equal(t, -150.0, log.Foods[0].Calories)
	assert.Equal(t, -1.0, log.Weight)
	assert.Equal(t, 30.0, log.SleepHours)
}

func TestAddFoodIDCollision(t *testing.T) {
	doc := journal.AddFood(journal.NewDocument(), "2024-02-01", []entity.FoodItem{food("f1", "rice", 300)})
	doc = journal.AddFood(doc, "2024-02-01", []entity.FoodItem{food("f1", "soup", 120), food("", "tea", 0), food("", "juice", 90)})
	foods := doc.Logs["2024-02-01"].Foods
	require.Len(t, foods, 4)
	assert.Equal(t, "f1", foods[0].ID)
	assert.Equal(t, "rice", foods[0].Name)
	assert.Equal(t, "soup", foods[1].Name)
	seen := map[string]bool{}
	for _, f := range foods {
		assert.NotEmpty(t, f.ID)
		assert.False(t, seen[f.ID], "duplicate id %s", f.ID)
		seen[f.ID] = true
	}
}

func TestRemoveFood(t *testing.T) {
	doc := journal.AddFood(journal.NewDocument(), "2024-02-01", []entity.FoodItem{
		food("f1", "rice", 300), food("f2", "egg", 80),
	})
	once := journal.RemoveFood(doc, "2024-02-01", "f1")
	twice := journal.RemoveFood(once, "2024-02-01", "f1")
	assert.Equal(t, once, twice)
	assert.Equal(t, []entity.FoodItem{food("f2", "egg", 80)}, twice.Logs["2024-02-01"].Foods)

	t.Run("unknown day", func(t *testing.T) {
		same := journal.RemoveFood(doc, "2030-01-01", "f1")
		assert.Equal(t, doc, same)
		assert.NotContains(t, same.Logs, "2030-01-01")
	})
	t.Run("unknown id", func(t *testing.T) {
		same := journal.RemoveFood(doc, "2024-02-01", "nope")
		assert.Len(t, same.Logs["2024-02-01"].Foods, 2)
	})
}

func TestToggleExercise(t *testing.T) {
	doc := journal.AddExercise(journal.NewDocument(), "2024-02-01", exercise("e1"))
	doc = journal.AddExercise(doc, "2024-02-01", exercise("e2"))

	toggled := journal.ToggleExercise(doc, "2024-02-01", "e1")
	assert.True(t, toggled.Logs["2024-02-01"].Exercises[0].Completed)
	assert.False(t, toggled.Logs["2024-02-01"].Exercises[1].Completed)

	back := journal.ToggleExercise(toggled, "2024-02-01", "e1")
	assert.Equal(t, doc.Logs["2024-02-01"], back.Logs["2024-02-01"])

	t.Run("unknown day", func(t *testing.T) {
		same := journal.ToggleExercise(doc, "2030-01-01", "e1")
		assert.NotContains(t, same.Logs, "2030-01-01")
	})
	t.Run("unknown id", func(t *testing.T) {
		same := journal.ToggleExercise(doc, "2024-02-01", "nope")
		assert.Equal(t, doc.Logs["2024-02-01"], same.Logs["2024-02-01"])
	})
}

func TestAddExerciseIDCollision(t *testing.T) {
	doc := journal.AddExercise(journal.NewDocument(), "2024-02-01", exercise("e1"))
	doc = journal.AddExercise(doc, "2024-02-01", exercise("e1"))
	doc = journal.AddExercise(doc, "2024-02-01", exercise(""))
	exs := doc.Logs["2024-02-01"].Exercises
	require.Len(t, exs, 3)
	assert.Equal(t, "e1", exs[0].ID)
	assert.NotEmpty(t, exs[1].ID)
	assert.NotEmpty(t, exs[2].ID)
	assert.NotEqual(t, "e1", exs[1].ID)
	assert.NotEqual(t, exs[1].ID, exs[2].ID)
}

func TestUpdateProfile(t *testing.T) {
	doc := journal.NewDocument()
	phase := entity.DietPhaseMaintenance
	next := journal.UpdateProfile(doc, entity.ProfilePatch{
		Name:                ptr("Mina"),
		DietPhase:           &phase,
		MedicationStartDate: ptr("2024-01-01"),
	})
	assert.Equal(t, "Mina", next.Profile.Name)
	assert.Equal(t, entity.DietPhaseMaintenance, next.Profile.DietPhase)
	assert.Equal(t, "2024-01-01", next.Profile.MedicationStartDate)
	assert.Equal(t, 170.0, next.Profile.Height)
	assert.Equal(t, journal.DefaultProfile(), doc.Profile)
}

func TestMutationsLeaveInputUntouched(t *testing.T) {
	rep := 12
	ex := exercise("e1")
	ex.Reps = &rep
	base := journal.AddFood(journal.NewDocument(), "2024-02-01", []entity.FoodItem{food("f1", "rice", 300)})
	base = journal.AddExercise(base, "2024-02-01", ex)
	snapshot := journal.CloneLog(base.Logs["2024-02-01"])

	journal.AddFood(base, "2024-02-01", []entity.FoodItem{food("f2", "egg", 80)})
	journal.RemoveFood(base, "2024-02-01", "f1")
	journal.ToggleExercise(base, "2024-02-01", "e1")
	journal.UpdateDayLog(base, "2024-02-01", entity.DailyLogPatch{Weight: ptr(70.0)})
	journal.UpdateDayLog(base, "2024-02-02", entity.DailyLogPatch{})

	assert.Equal(t, snapshot, base.Logs["2024-02-01"])
	assert.Len(t, base.Logs, 1)
}
