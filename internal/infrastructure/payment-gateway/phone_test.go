package paymentgateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPhoneNumber(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "already canonical",
			input:    "254712345678",
			expected: "254712345678",
		},
		{
			name:     "local format with leading zero",
			input:    "0712345678",
			expected: "254712345678",
		},
		{
			name:     "bare subscriber number starting with 7",
			input:    "712345678",
			expected: "254712345678",
		},
		{
			name:     "bare subscriber number starting with 1",
			input:    "110345678",
			expected: "254110345678",
		},
		{
			name:     "international prefix with plus",
			input:    "+254712345678",
			expected: "254712345678",
		},
		{
			name:     "spaces and dashes stripped",
			input:    "0712 345-678",
			expected: "254712345678",
		},
		{
			name:     "unrecognized shape passes through",
			input:    "12345",
			expected: "12345",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatPhoneNumber(tc.input))
		})
	}
}

func TestFormatPhoneNumberIdempotent(t *testing.T) {
	inputs := []string{"0712345678", "254712345678", "+254712345678", "712345678"}

	for _, input := range inputs {
		once := FormatPhoneNumber(input)
		assert.Equal(t, once, FormatPhoneNumber(once))
	}
}

func TestValidPhoneNumber(t *testing.T) {
	assert.True(t, ValidPhoneNumber("254712345678"))
	assert.False(t, ValidPhoneNumber("0712345678"))
	assert.False(t, ValidPhoneNumber("25471234567"))
	assert.False(t, ValidPhoneNumber("2547123456789"))
	assert.False(t, ValidPhoneNumber(""))
}
