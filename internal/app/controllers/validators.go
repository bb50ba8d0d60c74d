package controllers

import (
	"regexp"

	"pms-app-service/internal/domain/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// loose E.164-style check, optional leading + and 7 to 15 digits
var phonePattern = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

// RegisterValidators installs the custom binding rules used by the
// request structs. Call once at startup.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})

	v.RegisterValidation("orgrole", func(fl validator.FieldLevel) bool {
		return models.OrganizationRole(fl.Field().String()).Valid()
	})
}
