package config

import (
	"fmt"
	"strings"
)

// MissingError lists required environment variables that are not set.
type MissingError struct {
	Keys []string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("required environment variables not set: %s", strings.Join(e.Keys, ", "))
}

// InvalidError reports an environment variable that could not be parsed.
type InvalidError struct {
	Key   string
	Value string
}

func (e *InvalidError) Error() string {
	return fmt.Sprintf("invalid value %q for %s", e.Value, e.Key)
}
