package service

import (
	"errors"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/glowlog/internal/error_values"
	"github.com/limbo/glowlog/pkg/datekey"
	"github.com/limbo/glowlog/pkg/entity"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("datekey", func(fl validator.FieldLevel) bool {
			return datekey.Valid(fl.Field().String())
		})
	})
}

// validateStruct reports every failed field joined under ErrInvalidRequest
func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		errs := []error{errorvalues.ErrInvalidRequest}
		for _, fieldErr := range validationErrors {
			errs = append(errs, fieldErr)
		}
		return errors.Join(errs...)
	}
	return errors.New("validation unexpected error: " + err.Error())
}

func checkDate(date string) error {
	if !datekey.Valid(date) {
		return errorvalues.ErrInvalidDate
	}
	return nil
}

// sanitizeFoods trims names and drops estimates that don't pass validation
func sanitizeFoods(items []entity.FoodEstimate) []entity.FoodEstimate {
	out := make([]entity.FoodEstimate, 0, len(items))
	for _, item := range items {
		item.Name = strings.TrimSpace(item.Name)
		if validate.Struct(item) != nil {
			continue
		}
		out = append(out, item)
	}
	return out
}

// sanitizeExercises trims names, coerces unknown types to other and drops invalid entries
func sanitizeExercises(items []entity.ExerciseSuggestion) []entity.ExerciseSuggestion {
	out := make([]entity.ExerciseSuggestion, 0, len(items))
	for _, item := range items {
		item.Name = strings.TrimSpace(item.Name)
		item.Type = entity.ExerciseType(strings.ToLower(strings.TrimSpace(string(item.Type))))
		if validate.Var(item.Type, "oneof=cardio strength stretch other") != nil {
			item.Type = entity.ExerciseOther
		}
		if validate.Struct(item) != nil {
			continue
		}
		out = append(out, item)
	}
	return out
}
