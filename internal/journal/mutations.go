package journal

import (
	"github.com/google/uuid"
	"github.com/limbo/glowlog/pkg/entity"
)

// UpdateDayLog applies patch to the log of date. A log created here gets the weight
// of the latest earlier log, or the target weight when that one is zero or missing.
func UpdateDayLog(doc entity.Document, date string, patch entity.DailyLogPatch) entity.Document {
	log, ok := doc.Logs[date]
	if ok {
		log = CloneLog(log)
	} else {
		log = EmptyLog(date)
		log.Weight = seedWeight(doc, date)
	}
	applyLogPatch(&log, patch)
	return withLog(doc, log)
}

func AddFood(doc entity.Document, date string, items []entity.FoodItem) entity.Document {
	log := CloneLog(Resolve(doc, date))
	taken := make(map[string]struct{}, len(log.Foods)+len(items))
	for _, f := range log.Foods {
		taken[f.ID] = struct{}{}
	}
	for _, item := range items {
		item.ID = uniqueID(item.ID, taken)
		log.Foods = append(log.Foods, item)
	}
	return withLog(doc, log)
}

// RemoveFood is a no-op when the day or the item doesn't exist
func RemoveFood(doc entity.Document, date, foodID string) entity.Document {
	log, ok := doc.Logs[date]
	if !ok {
		return doc
	}
	log = CloneLog(log)
	foods := make([]entity.FoodItem, 0, len(log.Foods))
	for _, f := range log.Foods {
		if f.ID != foodID {
			foods = append(foods, f)
		}
	}
	log.Foods = foods
	return withLog(doc, log)
}

func AddExercise(doc entity.Document, date string, item entity.ExerciseItem) entity.Document {
	log := CloneLog(Resolve(doc, date))
	taken := make(map[string]struct{}, len(log.Exercises)+1)
	for _, ex := range log.Exercises {
		taken[ex.ID] = struct{}{}
	}
	item.ID = uniqueID(item.ID, taken)
	log.Exercises = append(log.Exercises, item)
	return withLog(doc, log)
}

// ToggleExercise flips the completion flag of the matching item. Unknown day is a no-op,
// unknown id leaves the list as it was.
func ToggleExercise(doc entity.Document, date, exerciseID string) entity.Document {
	log, ok := doc.Logs[date]
	if !ok {
		return doc
	}
	log = CloneLog(log)
	for i := range log.Exercises {
		if log.Exercises[i].ID == exerciseID {
			log.Exercises[i].Completed = !log.Exercises[i].Completed
		}
	}
	return withLog(doc, log)
}

func UpdateProfile(doc entity.Document, patch entity.ProfilePatch) entity.Document {
	profile := doc.Profile
	if patch.Name != nil {
		profile.Name = *patch.Name
	}
	if patch.Height != nil {
		profile.Height = *patch.Height
	}
	if patch.TargetWeight != nil {
		profile.TargetWeight = *patch.TargetWeight
	}
	if patch.Gender != nil {
		profile.Gender = *patch.Gender
	}
	if patch.BirthDate != nil {
		profile.BirthDate = *patch.BirthDate
	}
	if patch.DietPhase != nil {
		profile.DietPhase = *patch.DietPhase
	}
	if patch.DietType != nil {
		profile.DietType = *patch.DietType
	}
	if patch.MedicationStartDate != nil {
		profile.MedicationStartDate = *patch.MedicationStartDate
	}
	return entity.Document{
		Profile: profile,
		Logs:    doc.Logs,
	}
}

func applyLogPatch(log *entity.DailyLog, patch entity.DailyLogPatch) {
	if patch.Weight != nil {
		log.Weight = *patch.Weight
	}
	if patch.SleepHours != nil {
		log.SleepHours = *patch.SleepHours
	}
	if patch.SkinCare != nil {
		log.SkinCare = *patch.SkinCare
	}
	if p := patch.SkinCareFields; p != nil {
		if p.MorningWash != nil {
			log.SkinCare.MorningWash = *p.MorningWash
		}
		if p.MorningHair != nil {
			log.SkinCare.MorningHair = *p.MorningHair
		}
		if p.EveningShower != nil {
			log.SkinCare.EveningShower = *p.EveningShower
		}
		if p.EveningWash != nil {
			log.SkinCare.EveningWash = *p.EveningWash
		}
		if p.EveningHair != nil {
			log.SkinCare.EveningHair = *p.EveningHair
		}
		if p.Notes != nil {
			log.SkinCare.Notes = *p.Notes
		}
	}
	if patch.BodyCheckImage != nil {
		log.BodyCheckImage = *patch.BodyCheckImage
	}
	if patch.MedicationDose != nil {
		log.MedicationDose = *patch.MedicationDose
	}
	if patch.MedicationTaken != nil {
		log.MedicationDose = 0
		if *patch.MedicationTaken {
			log.MedicationDose = DefaultMedicationDose
		}
	}
}

// uniqueID keeps id unless it's empty or taken, then a fresh uuid is used. The result is marked as taken.
func uniqueID(id string, taken map[string]struct{}) string {
	_, dup := taken[id]
	for id == "" || dup {
		id = uuid.NewString()
		_, dup = taken[id]
	}
	taken[id] = struct{}{}
	return id
}
