package rocket

import (
	"errors"
	"fmt"
)

// ErrConfiguration is matched by every configuration error.
var ErrConfiguration = errors.New("invalid configuration")

// ConfigurationError is returned when a simulation or a motor is built from invalid parameters.
type ConfigurationError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s=%v %s", ErrConfiguration, e.Field, e.Value, e.Reason)
}

// Unwrap allows errors.Is(err, ErrConfiguration).
func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}

// validator collects the configuration errors of a structure.
type validator []error

func (v *validator) check(ok bool, field string, value float64, reason string) {
	if !ok {
		*v = append(*v, &ConfigurationError{field, value, reason})
	}
}

func (v validator) err() error {
	return errors.Join(v...)
}
