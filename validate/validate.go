// Package validate holds pure format checks for candidate-supplied
// field values. Validation is independent of extraction: these
// functions answer "is this string well formed", nothing more, and
// never touch the network.
package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	emailPattern      = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	phoneSeparators   = regexp.MustCompile(`[\s\-()]`)
	digitsOnly        = regexp.MustCompile(`^[0-9]+$`)
	experiencePattern = regexp.MustCompile(`^([0-9]+(?:\.[0-9]+)?)\s*(?:years?|yrs?)?$`)
)

// Email reports whether s looks like local-part@domain.tld with a TLD
// of at least two alphabetic characters.
func Email(s string) bool {
	return emailPattern.MatchString(strings.TrimSpace(s))
}

// Phone strips common separators (spaces, dashes, parentheses and a
// leading +) and accepts any remainder of ten or more digits, so
// international formats pass without a country-code table.
func Phone(s string) bool {
	cleaned := phoneSeparators.ReplaceAllString(strings.TrimSpace(s), "")
	cleaned = strings.TrimPrefix(cleaned, "+")
	return len(cleaned) >= 10 && digitsOnly.MatchString(cleaned)
}

// Experience parses a non-negative decimal number of years, optionally
// suffixed with "years"/"yrs". It returns the parsed value and whether
// the input was well formed.
func Experience(s string) (float64, bool) {
	m := experiencePattern.FindStringSubmatch(strings.ToLower(strings.TrimSpace(s)))
	if m == nil {
		return 0, false
	}
	years, err := strconv.ParseFloat(m[1], 64)
	if err != nil || years < 0 {
		return 0, false
	}
	return years, true
}
