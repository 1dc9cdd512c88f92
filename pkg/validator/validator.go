package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func ValidateStruct(s interface{}) error {
	return describe(validate.Struct(s))
}

// ValidateVar checks a single value against a tag list, e.g. "required,max=32".
func ValidateVar(field interface{}, tag string) error {
	return describe(validate.Var(field, tag))
}

func describe(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validation failed: %w", err)
	}

	errMsgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		field := e.Field()
		if field == "" {
			field = "value"
		}
		errMsgs = append(errMsgs, fmt.Sprintf("Field: %s, Tag: %s, Param: %s", field, e.Tag(), e.Param()))
	}
	return fmt.Errorf("validation failed: %s", strings.Join(errMsgs, "; "))
}
