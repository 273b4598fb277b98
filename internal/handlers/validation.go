package handlers

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// newValidator builds the validator shared by the handlers, with a custom
// "timeofday" rule for ISO time-of-day values ("19:30" or "19:30:00").
// Calendar dates use the built-in datetime rule with the 2006-01-02 layout.
func newValidator() *validator.Validate {
	validate := validator.New()
	_ = validate.RegisterValidation("timeofday", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if _, err := time.Parse("15:04", value); err == nil {
			return true
		}
		_, err := time.Parse("15:04:05", value)
		return err == nil
	})
	return validate
}

// validationErrors flattens validator failures into a field -> reason map so
// clients get structured detail instead of a single opaque message.
func validationErrors(err error) map[string]string {
	errorMessages := make(map[string]string)
	if fieldErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range fieldErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
	}
	return errorMessages
}
