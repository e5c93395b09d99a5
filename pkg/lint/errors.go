package lint

import "fmt"

// ConfigError reports an invalid rule configuration. It is fatal: the
// registry refuses to build a partial rule set, so nothing runs until the
// configuration is repaired.
type ConfigError struct {
	// Module is the configured module name the error belongs to.
	Module string

	// Property is the offending property name, when known.
	Property string

	// Reason describes what is wrong.
	Reason string

	// Err is the underlying error, when one exists.
	Err error
}

func (e *ConfigError) Error() string {
	msg := "config error"
	if e.Module != "" {
		msg += ": module " + e.Module
	}
	if e.Property != "" {
		msg += ", property " + e.Property
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
