package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/storefront/settlements.api/dao"
	"github.com/storefront/settlements.api/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateInput checks the struct tags of an input and reports the first
// failing field as a ValidationError.
func validateInput(input interface{}) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return fmt.Errorf("error validating input: [%w]", err)
	}

	fieldError := fieldErrors[0]
	switch fieldError.Tag() {
	case "required":
		return models.NewValidationError(fmt.Sprintf("%s is required", fieldError.Field()))
	case "gt":
		return models.NewValidationError(fmt.Sprintf("%s must be greater than %s", fieldError.Field(), fieldError.Param()))
	case "email":
		return models.NewValidationError(fmt.Sprintf("%s must be a valid email address", fieldError.Field()))
	}
	return models.NewValidationError(fmt.Sprintf("%s is invalid", fieldError.Field()))
}

// responseTypeFor maps an error raised while running an operation to the
// ResponseType reported to the caller.
func responseTypeFor(err error) ResponseType {
	var validationErr *models.ValidationError
	var transitionErr *models.TransitionError

	switch {
	case errors.As(err, &validationErr):
		return InvalidData
	case errors.As(err, &transitionErr):
		return Conflict
	case errors.Is(err, dao.ErrVersionConflict),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return Retry
	}
	return Error
}
