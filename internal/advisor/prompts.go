package advisor

import (
	"fmt"

	"github.com/limbo/glowlog/pkg/entity"
)

func foodPrompt(input string) string {
	return fmt.Sprintf(`Analyze the following food input and estimate the nutritional values. `+
		`If the quantity is not specified, assume a standard serving size. Input: %q`, input)
}

func exercisePrompt(request string, age int) string {
	return fmt.Sprintf(`Suggest 3 exercises based on this user request: %q.
User is %d years old.
Focus on health, posture, or weight loss suitable for this age group.`, request, age)
}

func skinCarePrompt(q entity.SkinCareQuery) string {
	return fmt.Sprintf(`You are a professional dermatologist and esthetician. Provide a brief, daily skincare tip.
User Profile: Age %d, Skin Type: %s, Concerns: %s.
Current Context: Weather is %s.
Consider the user's age group for specific anti-aging or maintenance advice.
Keep it under 3 sentences and encouraging.`, q.Age, q.SkinType, q.Concerns, q.Weather)
}

func dietPrompt(q entity.DietQuery) string {
	phase := "Maintenance Phase"
	if q.DietPhase == entity.DietPhaseLoss {
		phase = "Weight Loss Phase"
	}
	meal := "Regular Meal"
	if q.DietType == entity.DietTypeStrict {
		meal = "Diet Meal"
	}
	return fmt.Sprintf(`User Profile:
- Age: %d
- Goal: %s
- Meal Type Preference: %s
- Target Weight: %gkg
- Calories eaten today so far: %gkcal

Task: Suggest a specific meal menu for the next meal (e.g. Lunch or Dinner).
Include rough calories. Explain why this fits their current phase/type and age group (e.g. metabolism, digestion).
If on Mounjaro medication, mention hydration or light protein if relevant.
Keep it concise.`, q.Age, phase, meal, q.TargetWeight, q.CaloriesToday)
}
