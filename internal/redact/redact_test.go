package redact

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "email_address",
			input:    "duplicate email alice@example.com",
			expected: "duplicate email " + EmailPlaceholder,
		},
		{
			name:     "credential",
			input:    "password=hunter2 rejected",
			expected: "password=" + CredentialPlaceholder + " rejected",
		},
		{
			name:     "plain_text_untouched",
			input:    "item 3 not found",
			expected: "item 3 not found",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, String(tc.input))
		})
	}
}

func TestError(t *testing.T) {
	assert.Empty(t, Error(nil))
	assert.Equal(t,
		"user "+EmailPlaceholder+" already exists",
		Error(errors.New("user bob@example.com already exists")))
}
