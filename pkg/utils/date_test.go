package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatMpesaTimestamp(t *testing.T) {
	at := time.Date(2024, 6, 15, 13, 45, 5, 0, time.UTC)
	assert.Equal(t, "20240615134505", FormatMpesaTimestamp(at))
}

func TestParseMpesaTimestamp(t *testing.T) {
	ts, err := ParseMpesaTimestamp("20240615134505")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 15, 13, 45, 5, 0, time.UTC).Unix(), ts)
}

func TestParseMpesaTimestampInvalid(t *testing.T) {
	_, err := ParseMpesaTimestamp("2024-06-15T13:45:05Z")
	assert.Error(t, err)

	_, err = ParseMpesaTimestamp("")
	assert.Error(t, err)
}
