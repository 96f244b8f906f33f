package utils

import (
	"time"
)

const mpesaTimestampLayout = "20060102150405"

// FormatMpesaTimestamp renders a time in the YYYYMMDDHHMMSS form the Daraja
// API expects in signed requests.
func FormatMpesaTimestamp(t time.Time) string {
	return t.Format(mpesaTimestampLayout)
}

// ParseMpesaTimestamp parses the transaction date the gateway reports in
// callback metadata. Returns an error on any other shape.
func ParseMpesaTimestamp(value string) (int64, error) {
	t, err := time.Parse(mpesaTimestampLayout, value)
	if err != nil {
		return 0, err
	}

	return t.Unix(), nil
}
