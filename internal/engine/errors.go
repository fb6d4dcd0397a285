package engine

import (
	"fmt"
	"strings"
)

// ValidationError reports malformed caller input. Every violated field is
// listed, not just the first, so callers can surface the full set at once.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid preferences: %s", strings.Join(e.Errors, "; "))
}

// ConfigurationError reports missing required external configuration, such
// as an absent equipment-settings record. It is fatal to the current
// operation and never retried by the engine.
type ConfigurationError struct {
	Missing string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("missing required configuration: %s", e.Missing)
}
