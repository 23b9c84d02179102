package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// EmailPattern accepts a local@domain.tld shape with a TLD of two or more
	// characters. Whitespace covers the Unicode space separators and BOM as well as \s.
	EmailPattern = `^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]{2,}$`

	// ObjectIDPattern matches stored entity identifiers
	ObjectIDPattern = `^[0-9a-fA-F]{24}$`

	PasswordMinLength = 8
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email    *regexp.Regexp
	ObjectID *regexp.Regexp
}{
	Email:    regexp.MustCompile(EmailPattern),
	ObjectID: regexp.MustCompile(ObjectIDPattern),
}

// StringValidation checks a required string value against a set of rules
type StringValidation struct {
	Value   string
	MinLen  int
	Pattern *regexp.Regexp
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{Value: value}
}

// WithMinLength sets minimum length in UTF-16 code units, so a character outside
// the Basic Multilingual Plane counts twice.
func (v *StringValidation) WithMinLength(min int) *StringValidation {
	v.MinLen = min
	return v
}

// WithPattern sets regex pattern
func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

// Validate performs validation
func (v *StringValidation) Validate() bool {
	if v.Value == "" {
		return false
	}

	if v.MinLen > 0 && utf16Len(v.Value) < v.MinLen {
		return false
	}

	if v.Pattern != nil && !v.Pattern.MatchString(v.Value) {
		return false
	}

	return true
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		if r > 0xFFFF {
			n += 2
		} else {
			n++
		}
	}
	return n
}

// IsValidEmail reports whether email has the local@domain.tld shape
func IsValidEmail(email string) bool {
	return NewStringValidation(email).WithPattern(CompiledPatterns.Email).Validate()
}

// IsValidPassword reports whether password satisfies the minimum length
func IsValidPassword(password string) bool {
	return NewStringValidation(password).WithMinLength(PasswordMinLength).Validate()
}

// NormalizeEmail trims and lower-cases an e-mail address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
