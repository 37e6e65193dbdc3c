package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/lekzzicon/portfolio-backend/errs"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report json field names instead of Go struct names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// never errors for a non-nil func
	_ = v.RegisterValidation("projectcategory", func(fl validator.FieldLevel) bool {
		return IsValidCategory(fl.Field().String())
	})

	return v
}

// Validate checks the project against the schema rules and returns a
// field-level validation error for the first violation.
func (p *Project) Validate() error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return errs.NewValidationError("", err.Error())
	}

	fe := verrs[0]
	return errs.NewValidationError(fe.Field(), validationReason(fe))
}

func validationReason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "min":
		if fe.Field() == "technologies" {
			return "At least one technology must be specified"
		}
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s cannot exceed %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s cannot have more than %s entries", fe.Field(), fe.Param())
	case "http_url":
		return "Please provide a valid URL"
	case "projectcategory":
		return fmt.Sprintf("Category must be one of: %s", strings.Join(Categories, ", "))
	case "datetime":
		return "Date must be in YYYY-MM-DD format"
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
