package validator

import (
	"github.com/go-playground/validator/v10"

	"jobboard/internal/models"
)

// registerCustomRules installs the domain enum validators. Empty values are
// accepted so the rules compose with omitempty on optional fields.
func registerCustomRules(v *validator.Validate) {
	mustRegister(v, "is-user-role", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" {
			return true
		}
		// Admins are seeded, never self-registered.
		role := models.UserRole(s)
		return role.Valid() && role != models.UserRoleAdmin
	})

	mustRegister(v, "is-job-type", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || models.JobType(s).Valid()
	})

	mustRegister(v, "is-location-type", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || models.LocationType(s).Valid()
	})

	mustRegister(v, "is-experience-level", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || models.ExperienceLevel(s).Valid()
	})

	mustRegister(v, "is-application-status", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || models.ApplicationStatus(s).Valid()
	})

	mustRegister(v, "is-currency", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || models.Currency(s).Valid()
	})

	mustRegister(v, "is-visibility", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || models.Visibility(s).Valid()
	})
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic("validator: failed to register rule " + tag + ": " + err.Error())
	}
}
