package validator

import (
	"log"

	"portfolio_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует все кастомные функции валидации в
// переданном экземпляре валидатора.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Ошибка регистрации правила - ошибка времени запуска приложения
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'is-user-role': роль пользователя из statuses.go
	mustRegister("is-user-role", validateUserRole)

	// 'is-media-type': тип медиа-элемента проекта
	mustRegister("is-media-type", validateMediaType)
}

// --- Функции валидации ---

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // Пустые значения проверяет 'required'
	}
	for _, role := range models.ValidUserRoles {
		if value == string(role) {
			return true
		}
	}
	return false
}

func validateMediaType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	for _, mt := range models.ValidMediaTypes {
		if value == string(mt) {
			return true
		}
	}
	return false
}
