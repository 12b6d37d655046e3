package validator

import (
	"github.com/go-playground/validator/v10"

	"servora_backend/internal/models"
)

// RegisterCustomRules регистрирует доменные правила валидации.
func RegisterCustomRules(v *validator.Validate) error {
	// clock: время стены "HH:MM" (начало и конец смены/мероприятия)
	if err := v.RegisterValidation("clock", validateClock); err != nil {
		return err
	}
	return nil
}

func validateClock(fl validator.FieldLevel) bool {
	_, err := models.ParseClock(fl.Field().String())
	return err == nil
}
