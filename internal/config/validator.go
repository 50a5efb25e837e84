package config

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/vsalert/internal/alert"
	alerterrors "github.com/alexisbeaulieu97/vsalert/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("color", func(fl validator.FieldLevel) bool {
			return IsColor(fl.Field().String())
		})

		_ = v.RegisterValidation("alert_style", func(fl validator.FieldLevel) bool {
			_, err := alert.ParseStyle(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("action_kind", func(fl validator.FieldLevel) bool {
			_, err := alert.ParseKind(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// IsColor reports whether s is a hex color (#rgb or #rrggbb) or an ANSI
// color index between 0 and 255.
func IsColor(s string) bool {
	if hexColorPattern.MatchString(s) {
		return true
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0 && n <= 255
}

// ValidateConfig checks the whole configuration document.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return alerterrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}
	return nil
}

// convertValidationError turns the first validator failure into a
// ValidationError keyed by its YAML path.
func convertValidationError(err error) error {
	if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
		fe := ves[0]
		field := yamlFieldPath(fe)
		return alerterrors.NewValidationError(field, describe(fe), err)
	}

	return alerterrors.NewValidationError("config", err.Error(), err)
}

func yamlFieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "color":
		return fmt.Sprintf("%q is not a hex or ANSI color", fe.Value())
	case "alert_style":
		return fmt.Sprintf("%q must be one of alert walkthrough action_sheet", fe.Value())
	case "action_kind":
		return fmt.Sprintf("%q must be one of default destructive cancel", fe.Value())
	case "min", "max":
		return fmt.Sprintf("must be %s %s", map[string]string{"min": "at least", "max": "at most"}[fe.Tag()], fe.Param())
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}
