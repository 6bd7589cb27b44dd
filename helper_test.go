package rocket

import (
	"errors"
	"testing"
)

// assertConfigError fails unless err is a configuration error on the provided field.
func assertConfigError(t *testing.T, err error, field string) {
	t.Helper()
	if !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected a configuration error on %s, got %v", field, err)
	}
	var confErr *ConfigurationError
	if !errors.As(err, &confErr) {
		t.Fatalf("%v is not a *ConfigurationError", err)
	}
	if confErr.Field != field {
		t.Fatalf("configuration error on %s instead of %s: %s", confErr.Field, field, err)
	}
}
