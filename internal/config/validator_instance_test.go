package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetValidator(t *testing.T) {
	t.Parallel()
	assert.Same(t, GetValidator(), GetValidator())
}

func TestSemverValidation(t *testing.T) {
	t.Parallel()
	v := GetValidator()

	tests := []struct {
		value    string
		expected bool
	}{
		{"1.0", true},
		{"1.0.0", true},
		{"2.1.3-beta.1", true},
		{"1", false},
		{"beta", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()
			err := v.Var(tt.value, "semver")
			assert.Equal(t, tt.expected, err == nil)
		})
	}
}

func TestStepLabelValidation(t *testing.T) {
	t.Parallel()
	v := GetValidator()

	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{"plain", "Shipping address", true},
		{"unicode", "Paiement ✓", true},
		{"empty", "", false},
		{"whitespace", " \t ", false},
		{"multi-line", "Ship\nping", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := v.Var(tt.value, "step_label")
			assert.Equal(t, tt.expected, err == nil)
		})
	}
}
