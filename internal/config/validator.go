package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/statedemo/internal/domain/appstate"
	apperrors "github.com/alexisbeaulieu97/statedemo/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	pages = map[string]struct{}{PageHome: {}, PageContext: {}, PageStore: {}}

	metricNameRegex = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)
)

// validatorInstance configures and returns the shared validator instance.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("operation", func(fl validator.FieldLevel) bool {
			_, err := appstate.ParseOperation(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("theme", func(fl validator.FieldLevel) bool {
			_, err := appstate.ParseTheme(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("metricname", func(fl validator.FieldLevel) bool {
			return metricNameRegex.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("page", func(fl validator.FieldLevel) bool {
			_, ok := pages[strings.ToLower(fl.Field().String())]
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig performs schema validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return apperrors.NewValidationError("config", "configuration is nil", nil)
	}
	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}
	return nil
}

// ValidateScript performs schema validation on a replay script.
func ValidateScript(script *Script) error {
	if script == nil {
		return apperrors.NewValidationError("script", "script is nil", nil)
	}
	if err := validatorInstance().Struct(script); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Param() != "" {
			msg = fmt.Sprintf("%s (%s)", msg, ve.Param())
		}
		return apperrors.NewValidationError(field, msg, err)
	}

	return apperrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName turns "Config.UI.StartPage" into "ui.start_page".
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, snakeCase(part))
	}
	return strings.Join(lowered, ".")
}

func snakeCase(name string) string {
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		upper := r >= 'A' && r <= 'Z'
		if upper && i > 0 {
			prevLower := runes[i-1] >= 'a' && runes[i-1] <= 'z'
			nextLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'
			if prevLower || nextLower {
				b.WriteByte('_')
			}
		}
		if upper {
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
