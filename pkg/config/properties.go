// Package config defines configuration types and formats for javalint.
// These types are pure data structures; discovery and merging live in
// internal/configloader.
package config

import (
	"fmt"
	"regexp"
	"strconv"
)

// Properties is the string key/value property bag attached to a configured
// module, as written in checkstyle.xml. Typed getters convert values on
// demand; a malformed value is reported against its key so the loader can
// surface it as a configuration error.
type Properties map[string]string

// Has reports whether the key is present.
func (p Properties) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// GetString returns the value for key, or def if absent.
func (p Properties) GetString(key, def string) string {
	if v, ok := p[key]; ok {
		return v
	}
	return def
}

// GetInt returns the integer value for key, or def if absent.
func (p Properties) GetInt(key string, def int) (int, error) {
	v, ok := p[key]
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("property %q: %q is not an integer", key, v)
	}
	return n, nil
}

// GetBool returns the boolean value for key, or def if absent.
// Accepted spellings follow strconv.ParseBool ("true", "false", "1", "0").
func (p Properties) GetBool(key string, def bool) (bool, error) {
	v, ok := p[key]
	if !ok {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("property %q: %q is not a boolean", key, v)
	}
	return b, nil
}

// GetRegexp compiles the value for key as a regular expression, or returns
// def if absent. def may be nil.
func (p Properties) GetRegexp(key string, def *regexp.Regexp) (*regexp.Regexp, error) {
	v, ok := p[key]
	if !ok {
		return def, nil
	}
	re, err := regexp.Compile(v)
	if err != nil {
		return nil, fmt.Errorf("property %q: invalid pattern: %w", key, err)
	}
	return re, nil
}
