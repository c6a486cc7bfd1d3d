package utils

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var Validate = validator.New()

// FormatValidationErrors maps each failing field to "Invalid <tag>".
func FormatValidationErrors(err error) map[string]string {
	errs := make(map[string]string)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs["_"] = err.Error()
		return errs
	}
	for _, e := range verrs {
		errs[e.Field()] = "Invalid " + e.Tag()
	}
	return errs
}
