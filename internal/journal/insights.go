package journal

import (
	"math"
	"time"

	"github.com/limbo/glowlog/pkg/datekey"
	"github.com/limbo/glowlog/pkg/entity"
)

const (
	TrendTwoWeeks  = 14
	TrendFourWeeks = 28

	// Planned length of a medication course, in months
	medicationCourseMonths = 2

	// DefaultMedicationDose is recorded when a dose is marked taken without an amount, mg
	DefaultMedicationDose = 2.5
)

type DaySummary struct {
	Date                     string  `json:"date"`
	Weight                   float64 `json:"weight"`
	SleepHours               float64 `json:"sleepHours"`
	TotalCalories            float64 `json:"totalCalories"`
	TotalProtein             float64 `json:"totalProtein"`
	TotalCarbs               float64 `json:"totalCarbs"`
	TotalFat                 float64 `json:"totalFat"`
	CompletedExerciseMinutes float64 `json:"completedExerciseMinutes"`
	MedicationTaken          bool    `json:"medicationTaken"`
	MedicationDose           float64 `json:"medicationDose"`
	SkinCareComplete         bool    `json:"skinCareComplete"`
}

func Summarize(log entity.DailyLog) DaySummary {
	s := DaySummary{
		Date:             log.Date,
		Weight:           log.Weight,
		SleepHours:       log.SleepHours,
		MedicationTaken:  log.MedicationDose > 0,
		MedicationDose:   log.MedicationDose,
		SkinCareComplete: log.SkinCare.MorningWash && log.SkinCare.EveningWash,
	}
	for _, f := range log.Foods {
		s.TotalCalories += f.Calories
		s.TotalProtein += f.Protein
		s.TotalCarbs += f.Carbs
		s.TotalFat += f.Fat
	}
	for _, ex := range log.Exercises {
		if ex.Completed {
			s.CompletedExerciseMinutes += ex.DurationMinutes
		}
	}
	return s
}

type MealGroup struct {
	MealType entity.MealType   `json:"mealType"`
	Foods    []entity.FoodItem `json:"foods"`
	Calories float64           `json:"calories"`
}

// MealBreakdown groups foods by meal. Items without a meal type count as breakfast.
func MealBreakdown(log entity.DailyLog) []MealGroup {
	groups := make([]MealGroup, 0, len(entity.MealTypes))
	for _, mt := range entity.MealTypes {
		g := MealGroup{MealType: mt, Foods: []entity.FoodItem{}}
		for _, f := range log.Foods {
			meal := f.MealType
			if meal == "" {
				meal = entity.MealBreakfast
			}
			if meal == mt {
				g.Foods = append(g.Foods, f)
				g.Calories += f.Calories
			}
		}
		groups = append(groups, g)
	}
	return groups
}

// WeightPoint is one trend sample. Weight is nil when unrecorded, DoseMarker
// repeats the weight on days a dose was taken.
type WeightPoint struct {
	Date       string   `json:"date"`
	Weight     *float64 `json:"weight"`
	DoseMarker *float64 `json:"doseMarker"`
}

// WeightTrend returns the last days logged dates in calendar order
func WeightTrend(doc entity.Document, days int) []WeightPoint {
	dates := SortedDates(doc)
	if days > 0 && len(dates) > days {
		dates = dates[len(dates)-days:]
	}
	points := make([]WeightPoint, 0, len(dates))
	for _, d := range dates {
		log := doc.Logs[d]
		p := WeightPoint{Date: d}
		if log.Weight != 0 {
			w := log.Weight
			p.Weight = &w
		}
		if log.MedicationDose > 0 {
			w := log.Weight
			p.DoseMarker = &w
		}
		points = append(points, p)
	}
	return points
}

type BMICategory string

const (
	BMIUnknown     BMICategory = "unknown"
	BMIUnderweight BMICategory = "underweight"
	BMINormal      BMICategory = "normal"
	BMIOverweight  BMICategory = "overweight"
	BMIObese       BMICategory = "obese"
)

type BMI struct {
	Value    float64     `json:"value"`
	Category BMICategory `json:"category"`
}

// ComputeBMI uses Asia-Pacific cut-offs
func ComputeBMI(weightKg, heightCm float64) BMI {
	if weightKg <= 0 || heightCm <= 0 {
		return BMI{Category: BMIUnknown}
	}
	m := heightCm / 100
	v := math.Round(weightKg/(m*m)*10) / 10
	switch {
	case v < 18.5:
		return BMI{Value: v, Category: BMIUnderweight}
	case v < 23:
		return BMI{Value: v, Category: BMINormal}
	case v < 25:
		return BMI{Value: v, Category: BMIOverweight}
	default:
		return BMI{Value: v, Category: BMIObese}
	}
}

type MedicationCourse struct {
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	DaysElapsed int    `json:"daysElapsed"`
	Active      bool   `json:"active"`
}

// CourseFor reports progress of the medication course. ok is false when no valid start date is set.
func CourseFor(profile entity.Profile, today string) (course MedicationCourse, ok bool) {
	start, err := datekey.Parse(profile.MedicationStartDate)
	if err != nil {
		return MedicationCourse{}, false
	}
	now, err := datekey.Parse(today)
	if err != nil {
		return MedicationCourse{}, false
	}
	end := start.AddDate(0, medicationCourseMonths, 0)
	course = MedicationCourse{
		StartDate:   datekey.Format(start),
		EndDate:     datekey.Format(end),
		DaysElapsed: int(now.Sub(start).Hours() / 24),
		Active:      !now.Before(start) && now.Before(end),
	}
	return course, true
}

// AgeOn returns full years between birthDate and today, 0 if birthDate is unusable
func AgeOn(birthDate string, today time.Time) int {
	birth, err := datekey.Parse(birthDate)
	if err != nil {
		return 0
	}
	age := today.Year() - birth.Year()
	if today.Month() < birth.Month() || (today.Month() == birth.Month() && today.Day() < birth.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}
