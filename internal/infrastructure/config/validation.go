package config

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var metricNamePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Validator wraps go-playground/validator with the craftchain rules
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a validator that reports fields by their config key
// and knows the metric_name and url_path rules
func NewValidator() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})

	_ = v.RegisterValidation("metric_name", func(fl validator.FieldLevel) bool {
		return metricNamePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("url_path", func(fl validator.FieldLevel) bool {
		path := fl.Field().String()
		return strings.HasPrefix(path, "/") && !strings.ContainsAny(path, " ?#")
	})

	return &Validator{
		validate: v,
	}
}

// Validate validates a struct using validation tags
func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return v.formatValidationError(err)
	}
	return nil
}

// formatValidationError converts validator errors into messages naming the config key,
// for example "logging.file_path"
func (v *Validator) formatValidationError(err error) error {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, e := range validationErrs {
			messages = append(messages, fmt.Sprintf(
				"%s failed validation: %s (value: '%v')",
				configKey(e.Namespace()),
				e.Tag(),
				e.Value(),
			))
		}
		return fmt.Errorf("validation failed:\n  %s", strings.Join(messages, "\n  "))
	}
	return err
}

// configKey drops the root struct name from a validator namespace
func configKey(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

// ValidateConfig validates the entire configuration
func ValidateConfig(cfg *Config) error {
	v := NewValidator()
	return v.Validate(cfg)
}
