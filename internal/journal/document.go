// Package journal holds the document model operations: the day-log resolver,
// pure mutations, the persisted codec, the date cursor and derived insights.
//
// Mutations never modify their input. Each returns a new document whose changed
// containers (log map, log, item slices) are fresh copies; untouched logs are shared.
package journal

import (
	"sort"

	"github.com/limbo/glowlog/pkg/entity"
)

// DefaultProfile is the profile of a fresh document
func DefaultProfile() entity.Profile {
	return entity.Profile{
		Name:         "User",
		Height:       170,
		TargetWeight: 60,
		Gender:       entity.GenderOther,
		BirthDate:    "1990-01-01",
		DietPhase:    entity.DietPhaseLoss,
		DietType:     entity.DietTypeStrict,
	}
}

func NewDocument() entity.Document {
	return entity.Document{
		Profile: DefaultProfile(),
		Logs:    map[string]entity.DailyLog{},
	}
}

// EmptyLog is the synthesized template for a date nothing was recorded for
func EmptyLog(date string) entity.DailyLog {
	return entity.DailyLog{
		Date:      date,
		Foods:     []entity.FoodItem{},
		Exercises: []entity.ExerciseItem{},
	}
}

// Resolve returns the stored log for date or an unpersisted template.
// The document is never written.
func Resolve(doc entity.Document, date string) entity.DailyLog {
	if log, ok := doc.Logs[date]; ok {
		return log
	}
	return EmptyLog(date)
}

// SortedDates returns log keys in calendar order
func SortedDates(doc entity.Document) []string {
	dates := make([]string, 0, len(doc.Logs))
	for date := range doc.Logs {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

// seedWeight takes the weight of the latest log before date. A zero weight there,
// or no earlier log at all, falls back to the target weight.
func seedWeight(doc entity.Document, date string) float64 {
	var lastDate string
	for d := range doc.Logs {
		if d < date && d > lastDate {
			lastDate = d
		}
	}
	if w := doc.Logs[lastDate].Weight; lastDate != "" && w != 0 {
		return w
	}
	return doc.Profile.TargetWeight
}

// withLog copies the log map and stores log under its date
func withLog(doc entity.Document, log entity.DailyLog) entity.Document {
	logs := make(map[string]entity.DailyLog, len(doc.Logs)+1)
	for k, v := range doc.Logs {
		logs[k] = v
	}
	logs[log.Date] = log
	return entity.Document{
		Profile: doc.Profile,
		Logs:    logs,
	}
}

// CloneLog deep-copies the item slices of a log
func CloneLog(log entity.DailyLog) entity.DailyLog {
	out := log
	out.Foods = append(make([]entity.FoodItem, 0, len(log.Foods)), log.Foods...)
	out.Exercises = make([]entity.ExerciseItem, 0, len(log.Exercises))
	for _, ex := range log.Exercises {
		if ex.Reps != nil {
			reps := *ex.Reps
			ex.Reps = &reps
		}
		out.Exercises = append(out.Exercises, ex)
	}
	return out
}
