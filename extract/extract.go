// Package extract derives candidate field values from free-form
// utterances. Strict fields (email, phone, experience) are tried as a
// full-utterance match first, then as an embedded token anywhere in
// the text, so "my email is a@b.com" is captured the same as a bare
// address. Free-text fields accept any non-blank answer verbatim.
package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/talentscout/screener/validate"
)

// Field identifies one collectable profile field.
type Field string

const (
	FieldName       Field = "name"
	FieldEmail      Field = "email"
	FieldPhone      Field = "phone"
	FieldExperience Field = "experience"
	FieldPosition   Field = "position"
	FieldLocation   Field = "location"
	FieldTechStack  Field = "tech_stack"
)

// ValidationError reports that an utterance yielded no well-formed
// value for a field. It is always recovered by re-asking, never fatal.
type ValidationError struct {
	Field  Field
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("no valid %s: %s", e.Field, e.Reason)
}

var (
	embeddedEmail = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	embeddedPhone = regexp.MustCompile(`(\+?[0-9]{1,3}[-.\s]?)?\(?[0-9]{3}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4,}`)
	embeddedExp   = []*regexp.Regexp{
		regexp.MustCompile(`([0-9]+(?:\.[0-9]+)?)\s*(?:years?|yrs?)(?:\s+of)?(?:\s+(?:experience|exp))?`),
		regexp.MustCompile(`(?:experience|exp)(?:\s+of)?\s+([0-9]+(?:\.[0-9]+)?)\s*(?:years?|yrs?)`),
	}
	stackSplitter = regexp.MustCompile(`\s*(?:,|\band\b|&)\s*`)
)

// Value extracts a validated value for field from text. For strict
// fields the first well-formed match wins, left to right. The returned
// string is normalized for storage (experience is reduced to its
// numeric part).
func Value(field Field, text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	switch field {
	case FieldEmail:
		return email(trimmed)
	case FieldPhone:
		return phone(trimmed)
	case FieldExperience:
		return experience(trimmed)
	default:
		if trimmed == "" {
			return "", &ValidationError{Field: field, Reason: "empty answer"}
		}
		return trimmed, nil
	}
}

// Experience extracts the years-of-experience figure as a number.
func Experience(text string) (float64, error) {
	raw, err := Value(FieldExperience, text)
	if err != nil {
		return 0, err
	}
	years, _ := validate.Experience(raw)
	return years, nil
}

func email(text string) (string, error) {
	if validate.Email(text) {
		return text, nil
	}
	for _, m := range embeddedEmail.FindAllString(text, -1) {
		if validate.Email(m) {
			return m, nil
		}
	}
	return "", &ValidationError{Field: FieldEmail, Reason: "that doesn't look like a valid email address"}
}

func phone(text string) (string, error) {
	if validate.Phone(text) {
		return text, nil
	}
	for _, m := range embeddedPhone.FindAllString(text, -1) {
		if validate.Phone(m) {
			return strings.TrimSpace(m), nil
		}
	}
	return "", &ValidationError{Field: FieldPhone, Reason: "that doesn't look like a valid phone number (need at least 10 digits)"}
}

func experience(text string) (string, error) {
	if years, ok := validate.Experience(text); ok {
		return trimFloat(years), nil
	}
	lower := strings.ToLower(text)
	for _, pattern := range embeddedExp {
		if m := pattern.FindStringSubmatch(lower); m != nil {
			if years, ok := validate.Experience(m[1]); ok {
				return trimFloat(years), nil
			}
		}
	}
	return "", &ValidationError{Field: FieldExperience, Reason: "please give your experience as a number of years"}
}

func trimFloat(f float64) string {
	s := strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", f), "0"), ".")
	if s == "" {
		return "0"
	}
	return s
}

// TechStack splits a comma/"and"-separated list of technologies into
// normalized tokens: trimmed, lowercased, duplicates collapsed with
// insertion order preserved.
func TechStack(text string) ([]string, error) {
	seen := make(map[string]struct{})
	var stack []string
	for _, token := range stackSplitter.Split(strings.ToLower(text), -1) {
		token = strings.Trim(token, " .")
		if token == "" {
			continue
		}
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		stack = append(stack, token)
	}
	if len(stack) == 0 {
		return nil, &ValidationError{Field: FieldTechStack, Reason: "please list at least one technology"}
	}
	return stack, nil
}
