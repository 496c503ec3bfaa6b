package config

import "fmt"

type ErrorKind string

const (
	ErrUnreadable   ErrorKind = "unreadable"
	ErrMalformed    ErrorKind = "malformed"
	ErrWrongKind    ErrorKind = "wrong_kind"
	ErrMissingField ErrorKind = "missing_field"
)

// ConfigError is a fatal configuration failure. The message always
// names the source file so the operator can act on it directly.
type ConfigError struct {
	Kind  ErrorKind
	Path  string
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	switch e.Kind {
	case ErrUnreadable:
		return fmt.Sprintf("cannot read config file %s: %v", e.Path, e.Err)
	case ErrMalformed:
		return fmt.Sprintf("malformed YAML in %s: %v", e.Path, e.Err)
	case ErrWrongKind:
		return fmt.Sprintf("%s: unexpected kind %q (expected %q)", e.Path, e.Field, MasterConfigKind)
	case ErrMissingField:
		return fmt.Sprintf("%s: missing required field %q", e.Path, e.Field)
	default:
		return fmt.Sprintf("config error in %s: %v", e.Path, e.Err)
	}
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
