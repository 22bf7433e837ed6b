package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/alexisbeaulieu97/designvars/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// Validator returns the shared validator instance with the color and font unit tags registered.
func Validator() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			for _, tag := range []string{"json", "yaml"} {
				name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
				if name != "" && name != "-" {
					return name
				}
			}
			return field.Name
		})

		_ = v.RegisterValidation("csscolor", func(fl validator.FieldLevel) bool {
			return IsValidColor(fl.Field().String())
		})

		_ = v.RegisterValidation("fontunit", func(fl validator.FieldLevel) bool {
			return IsFontUnit(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Struct validates s and converts the first failure into a ValidationError.
func Struct(s any) error {
	return ConvertError(Validator().Struct(s))
}

// ConvertError maps validator output onto the package error types.
func ConvertError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		return apperrors.NewValidationError(ve.Field(), describe(ve), err)
	}

	return apperrors.NewValidationError("", err.Error(), err)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "value is required"
	case "csscolor":
		return "invalid color format, use hex (#RRGGBB) or HSL (hsl(H, S%, L%))"
	case "fontunit":
		return fmt.Sprintf("unit must be one of %s", strings.Join(fontUnits, ", "))
	case "oneof":
		return fmt.Sprintf("must be one of %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}
