package objectid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsValid(t *testing.T) {
	id := New()
	assert.Len(t, id, 24)
	assert.True(t, IsValid(id))
	assert.NotEqual(t, id, New())
}

func TestIsValid(t *testing.T) {
	cases := map[string]bool{
		"abc":                        false,
		"":                           false,
		"507f1f77bcf86cd799439011":   true,
		"507F1F77BCF86CD799439011":   true,
		"507f1f77bcf86cd79943901z":   false,
		"507f1f77bcf86cd7994390111":  false,
		"507f1f77bcf86cd79943901":    false,
	}
	for input, want := range cases {
		assert.Equal(t, want, IsValid(input), input)
	}
}

func TestAllValid(t *testing.T) {
	assert.True(t, AllValid(nil))
	assert.True(t, AllValid([]string{New(), New()}))
	assert.False(t, AllValid([]string{New(), "nope"}))
}
