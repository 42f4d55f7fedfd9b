package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator names fields by their koanf key so problems are reported
// the way they are spelled in the YAML files.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("koanf"), ",")
		if name == "" || name == "-" {
			return strings.ToLower(f.Name)
		}

		return name
	})

	v.RegisterStructValidation(validateDatabase, DatabaseConfig{})

	return v
}

// validateDatabase rejects pool settings that can never be satisfied.
func validateDatabase(sl validator.StructLevel) {
	db, _ := sl.Current().Interface().(DatabaseConfig)

	if db.MaxOpenConns > 0 && db.MaxIdleConns > db.MaxOpenConns {
		sl.ReportError(db.MaxIdleConns, "max_idle_conns", "MaxIdleConns", "lte_open", "")
	}
}

// Validate reports every problem at once, one per line.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	problems := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, errors.New(describe(fe)))
	}

	return errors.Join(problems...)
}

func describe(fe validator.FieldError) string {
	key := formatFieldPath(fe.Namespace())
	param := fe.Param()

	switch fe.Tag() {
	case "required":
		return key + " is required"
	case "required_if":
		return fmt.Sprintf("%s is required when %s", key, param)
	case "min":
		return fmt.Sprintf("%s must be at least %s", key, param)
	case "max":
		return fmt.Sprintf("%s must be at most %s", key, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", key, param)
	case "http_url":
		return key + " must be an http or https URL"
	case "timezone":
		return key + " must be an IANA time zone name"
	case "lte_open":
		return key + " must not exceed max_open_conns"
	default:
		return fmt.Sprintf("%s failed %q", key, fe.Tag())
	}
}

// formatFieldPath drops the root type: "Config.server.port" is "server.port".
func formatFieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}

	return strings.ToLower(namespace)
}
