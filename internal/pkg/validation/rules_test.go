package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{"jane@school.edu", "a.b+c@x.io", "x@y.co"}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}

	invalid := []string{"", "plain", "no-at.example.com", "a@b", "a@b.c", "a b@c.com", "a@@b.com"}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestIsValidPasswordBoundary(t *testing.T) {
	assert.False(t, IsValidPassword(strings.Repeat("x", 7)))
	assert.True(t, IsValidPassword(strings.Repeat("x", 8)))
	assert.False(t, IsValidPassword(""))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "jane@school.edu", NormalizeEmail("  Jane@School.EDU "))
}

func TestStringValidation(t *testing.T) {
	assert.False(t, NewStringValidation("").WithMinLength(3).Validate())
	assert.False(t, NewStringValidation("ab").WithMinLength(3).Validate())
	assert.True(t, NewStringValidation("abc").WithMinLength(3).Validate())
	assert.True(t, NewStringValidation("507f1f77bcf86cd799439011").WithPattern(CompiledPatterns.ObjectID).Validate())
	assert.False(t, NewStringValidation("507f1f77bcf86cd79943901z").WithPattern(CompiledPatterns.ObjectID).Validate())
}

func TestIsValidPasswordCountsUTF16Units(t *testing.T) {
	// four astral-plane characters are eight UTF-16 units
	assert.True(t, IsValidPassword("\U0001F600\U0001F600\U0001F600\U0001F600"))
	assert.False(t, IsValidPassword("\U0001F600\U0001F600\U0001F600x"))
	assert.False(t, IsValidPassword("ééééééé"))
	assert.True(t, IsValidPassword("éééééééé"))
}

func TestIsValidEmailRejectsUnicodeWhitespace(t *testing.T) {
	for _, email := range []string{"a\u00a0b@c.com", "ab@c\u2003d.com", "ab@cd.c\u3000m", "\ufeffab@c.com", "a\vb@c.com"} {
		assert.False(t, IsValidEmail(email), "%q", email)
	}
	assert.True(t, IsValidEmail("élève@école.fr"))
}
