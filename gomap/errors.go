package gomap

import "fmt"

// MarshalError represents an error during mapping.
type MarshalError struct {
	FieldPath string // field path (e.g. "person.address.street")
	Message   string
	Err       error
}

func (e *MarshalError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("map error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("map error: %s", e.Message)
}

func (e *MarshalError) Unwrap() error {
	return e.Err
}

// ConfigError represents an error loading or applying declarative
// mapper configuration.
type ConfigError struct {
	Type    string
	Field   string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	switch {
	case e.Type != "" && e.Field != "":
		return fmt.Sprintf("config error for %s.%s: %s", e.Type, e.Field, e.Message)
	case e.Type != "":
		return fmt.Sprintf("config error for %s: %s", e.Type, e.Message)
	default:
		return fmt.Sprintf("config error: %s", e.Message)
	}
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
