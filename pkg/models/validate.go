package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance returns the shared validator used for settings and content
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("width_unit", func(fl validator.FieldLevel) bool {
			return IsValidWidthUnit(WidthUnit(fl.Field().String()))
		})

		validateInst = v
	})

	return validateInst
}

// ValidateSettings checks every enumerated and numeric field of s
func ValidateSettings(s Settings) error {
	return convertValidationError(validatorInstance().Struct(s))
}

// ValidateContent checks that content entries carry their required names
func ValidateContent(c *Content) error {
	if c == nil {
		return nil
	}
	return convertValidationError(validatorInstance().Struct(c))
}

// ValidateWidthValue checks a single width value as the settings validator would
func ValidateWidthValue(field, value string) error {
	if err := validatorInstance().Var(value, "required,numeric"); err != nil {
		return NewValidationError(field, fmt.Sprintf("%q is not a number", value), err)
	}
	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		field := fieldPath(fe)
		msg := fmt.Sprintf("%q failed validation for tag '%s'", fmt.Sprint(fe.Value()), fe.Tag())
		return NewValidationError(field, msg, err)
	}

	return NewValidationError("", err.Error(), err)
}

// fieldPath drops the root struct name from the namespace
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
