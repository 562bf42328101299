package req

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	v10 "github.com/go-playground/validator/v10"
)

// appIDPattern matches the slug an app is installed under, e.g., "google-meet".
var appIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

type validator struct {
	valid *v10.Validate
}

// newValidator constructs a validator, naming fields by their "schema" or "json" tags.
//
// Beyond the rules validator/v10 provides, "appid" requires an app slug.
func newValidator() validator {
	v := v10.New()
	v.RegisterValidation("appid", func(fl v10.FieldLevel) bool {
		return appIDPattern.MatchString(fl.Field().String())
	})

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"schema", "json"} {
			name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}

		return ""
	})

	return validator{v}
}

// validate checks the fields on structPtr match the rules set by "validate" struct tags.
// On success, validate returns no error.
// On failure, validate translates each issue to a ValidationError,
// returning them all as ValidationErrors.
func (v validator) validate(structPtr any) error {
	err := v.valid.Struct(structPtr)
	if err == nil {
		return nil
	}

	var errs v10.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}

	var validateErrs ValidationErrors
	for _, ve := range errs {
		field := ve.Namespace()

		ns := strings.SplitN(field, ".", 2)
		if len(ns) == 2 {
			field = ns[1]
		}

		rule := ve.Tag()
		if ve.Param() != "" {
			rule += "=" + ve.Param()
		}
		rule += "; " + ve.Type().String()

		validateErrs = append(validateErrs, ValidationError{
			Field: field,
			Got:   ve.Value(),
			Rule:  rule,
		})
	}

	return validateErrs
}
