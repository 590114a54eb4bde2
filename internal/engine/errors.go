package engine

import "fmt"

// InvalidInputError reports a caller-supplied input that cannot be scored.
// It is returned synchronously and never retried internally: retrying a
// malformed input cannot succeed.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Field, e.Reason)
}

// ConfigurationError reports an instrument registry or taxonomy that failed
// its integrity checks. Raised at startup; the engine must not serve
// requests with an invalid registry.
type ConfigurationError struct {
	Detail string
}

func (e *ConfigurationError) Error() string {
	return "engine configuration: " + e.Detail
}
