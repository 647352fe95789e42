package app

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidConfig wraps every configuration validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// validate is shared; validator.Validate caches struct metadata and is safe
// for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ModelPath string `validate:"required"`
	Report    string `validate:"required"`
	Split     bool
	OutDir    string `validate:"required"`
	Format    string `validate:"oneof=dot svg png pdf yaml"`
	ViewsPath string
	DotBinary string

	MetricsFile string

	LogFormat string `validate:"oneof=text json"`
	LogLevel  string `validate:"oneof=debug info warn error"`

	Neo4jURI      string `validate:"omitempty,uri"`
	Neo4jUser     string `validate:"required_with=Neo4jURI"`
	Neo4jPassword string
	Neo4jDatabase string
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, formatValidationError(err))
	}
	return &cfg, nil
}

// formatValidationError turns the first validator failure into a readable error.
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return err
	}

	e := validationErrs[0]
	field, param := e.Field(), e.Param()
	switch e.Tag() {
	case "required":
		return fmt.Errorf("%s: field is required", field)
	case "required_with":
		return fmt.Errorf("%s: field is required when %s is set", field, param)
	case "oneof":
		return fmt.Errorf("%s: %q is not one of [%s]", field, e.Value(), param)
	case "uri":
		return fmt.Errorf("%s: %q is not a valid URI", field, e.Value())
	default:
		return fmt.Errorf("%s: validation failed (%s)", field, e.Tag())
	}
}
