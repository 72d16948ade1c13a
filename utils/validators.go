// File: /utils/validators.go
package utils

import (
	"regexp"
	"strings"
)

func IsValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

func IsValidPassword(password string) bool {
	return len(password) >= 6
}

var validDays = map[string]bool{
	"MONDAY": true, "TUESDAY": true, "WEDNESDAY": true, "THURSDAY": true,
	"FRIDAY": true, "SATURDAY": true, "SUNDAY": true,
}

func IsValidDayOfWeek(day string) bool {
	return validDays[strings.ToUpper(day)]
}

// IsValidClockTime accepts zero-padded 24h "HH:MM" strings, the format
// availability slots are stored and compared in.
func IsValidClockTime(value string) bool {
	clockRegex := regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
	return clockRegex.MatchString(value)
}
