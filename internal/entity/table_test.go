package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableCoreFive(t *testing.T) {
	tests := map[string]string{
		"quot": "\"",
		"amp":  "&",
		"apos": "'",
		"lt":   "<",
		"gt":   ">",
	}
	for name, want := range tests {
		got, ok := Table[name]
		assert.True(t, ok, "missing entry %q", name)
		assert.Equal(t, want, got)
	}
}

func TestTableIsCaseSensitive(t *testing.T) {
	amp, ok := Table["amp"]
	assert.True(t, ok)
	AMP, ok := Table["AMP"]
	assert.True(t, ok)
	assert.Equal(t, amp, AMP)

	_, ok = Table["Amp"]
	assert.False(t, ok, "Amp is not a recognized named reference")
}

func TestTableValuesAreNonEmpty(t *testing.T) {
	for name, v := range Table {
		assert.NotEmpty(t, v, "entry %q has an empty expansion", name)
	}
}
