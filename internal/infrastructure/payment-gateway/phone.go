package paymentgateway

import "strings"

// FormatPhoneNumber rewrites a phone number into the canonical 254XXXXXXXXX
// form the Daraja API requires. Unrecognized shapes pass through unchanged and
// are rejected by ValidPhoneNumber downstream.
func FormatPhoneNumber(phoneNumber string) string {
	var digits strings.Builder
	for _, r := range phoneNumber {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	phoneNumber = digits.String()

	switch {
	case strings.HasPrefix(phoneNumber, "254") && len(phoneNumber) == 12:
		return phoneNumber
	case strings.HasPrefix(phoneNumber, "0") && len(phoneNumber) == 10:
		return "254" + phoneNumber[1:]
	case (strings.HasPrefix(phoneNumber, "7") || strings.HasPrefix(phoneNumber, "1")) && len(phoneNumber) == 9:
		return "254" + phoneNumber
	}

	return phoneNumber
}

func ValidPhoneNumber(phoneNumber string) bool {
	return strings.HasPrefix(phoneNumber, "254") && len(phoneNumber) == 12
}
