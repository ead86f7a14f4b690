package utils

import (
	"fmt"
	"strings"
)

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValidPhoneNumber accepts North American numbers with or without the
// leading country code, ignoring punctuation.
func IsValidPhoneNumber(phone string) bool {
	n := len(digitsOnly(phone))
	return n == 10 || n == 11
}

// FormatPhoneNumber renders a ten digit number as "(555) 123-4567" and
// returns anything else unchanged.
func FormatPhoneNumber(phone string) string {
	d := digitsOnly(phone)
	if len(d) != 10 {
		return phone
	}
	return fmt.Sprintf("(%s) %s-%s", d[:3], d[3:6], d[6:])
}
