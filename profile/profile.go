// Package profile holds the per-session candidate record. Fields fill
// monotonically as the interview advances: a validated value is set at
// most once and never regresses to unset. All mutations are expressed
// as RFC 6902 operations and applied through json-patch, so every
// write goes through one code path with a set-once guard in front.
package profile

import (
	"errors"
	"fmt"
)

// Sentinel errors for illegal mutations. Callers treat both as logic
// bugs, not user-recoverable conditions.
var (
	ErrFinalized       = errors.New("profile: already finalized")
	ErrFieldAlreadySet = errors.New("profile: field already set")
)

// Profile is the mutable record of collected candidate fields.
// The zero value is not usable; call New.
type Profile struct {
	Name             string         `json:"name,omitempty"`
	Email            string         `json:"email,omitempty"`
	Phone            string         `json:"phone,omitempty"`
	ExperienceYears  *float64       `json:"experience_years,omitempty"`
	DesiredPositions []string       `json:"desired_positions,omitempty"`
	Location         string         `json:"location,omitempty"`
	TechStack        []string       `json:"tech_stack,omitempty"`
	Questions        []string       `json:"questions,omitempty"`
	Answers          map[int]string `json:"answers,omitempty"`

	finalized bool
}

func New() *Profile {
	return &Profile{}
}

// SetName records the candidate's full name, once.
func (p *Profile) SetName(name string) error {
	if p.Name != "" {
		return fmt.Errorf("%w: name", ErrFieldAlreadySet)
	}
	return p.apply(op{Op: "add", Path: "/name", Value: name})
}

// SetEmail records a validated email address, once.
func (p *Profile) SetEmail(email string) error {
	if p.Email != "" {
		return fmt.Errorf("%w: email", ErrFieldAlreadySet)
	}
	return p.apply(op{Op: "add", Path: "/email", Value: email})
}

// SetPhone records a validated phone number, once.
func (p *Profile) SetPhone(phone string) error {
	if p.Phone != "" {
		return fmt.Errorf("%w: phone", ErrFieldAlreadySet)
	}
	return p.apply(op{Op: "add", Path: "/phone", Value: phone})
}

// SetExperience records years of experience, once. Zero is a valid
// value, so presence is tracked with a pointer rather than a sentinel.
func (p *Profile) SetExperience(years float64) error {
	if p.ExperienceYears != nil {
		return fmt.Errorf("%w: experience", ErrFieldAlreadySet)
	}
	return p.apply(op{Op: "add", Path: "/experience_years", Value: years})
}

// AddPosition appends a desired position.
func (p *Profile) AddPosition(position string) error {
	return p.apply(op{Op: "add", Path: "/desired_positions/-", Value: position})
}

// SetLocation records the candidate's location, once.
func (p *Profile) SetLocation(location string) error {
	if p.Location != "" {
		return fmt.Errorf("%w: location", ErrFieldAlreadySet)
	}
	return p.apply(op{Op: "add", Path: "/location", Value: location})
}

// AddSkills merges normalized technologies into the stack. Duplicates
// are silently ignored; insertion order of new skills is preserved.
func (p *Profile) AddSkills(skills ...string) error {
	known := make(map[string]struct{}, len(p.TechStack))
	for _, s := range p.TechStack {
		known[s] = struct{}{}
	}
	var ops []op
	for _, s := range skills {
		if _, ok := known[s]; ok {
			continue
		}
		known[s] = struct{}{}
		ops = append(ops, op{Op: "add", Path: "/tech_stack/-", Value: s})
	}
	return p.apply(ops...)
}

// SetQuestions stores the generated technical question list, once.
func (p *Profile) SetQuestions(questions []string) error {
	if len(p.Questions) > 0 {
		return fmt.Errorf("%w: questions", ErrFieldAlreadySet)
	}
	return p.apply(op{Op: "add", Path: "/questions", Value: questions})
}

// SetAnswer records the verbatim answer for a question index.
func (p *Profile) SetAnswer(index int, answer string) error {
	if index < 0 || index >= len(p.Questions) {
		return fmt.Errorf("profile: answer index %d out of range", index)
	}
	return p.apply(op{Op: "add", Path: fmt.Sprintf("/answers/%d", index), Value: answer})
}

// Complete reports whether every collected field up to the tech stack
// is present.
func (p *Profile) Complete() bool {
	return p.Name != "" && p.Email != "" && p.Phone != "" &&
		p.ExperienceYears != nil && len(p.DesiredPositions) > 0 &&
		p.Location != "" && len(p.TechStack) > 0
}

// Answered reports whether every generated question has an answer.
func (p *Profile) Answered() bool {
	if len(p.Questions) == 0 {
		return false
	}
	for i := range p.Questions {
		if _, ok := p.Answers[i]; !ok {
			return false
		}
	}
	return true
}

// Finalize freezes the record. Further mutations fail with
// ErrFinalized. Finalizing twice is a no-op.
func (p *Profile) Finalize() {
	p.finalized = true
}

// Finalized reports whether the record has been frozen.
func (p *Profile) Finalized() bool {
	return p.finalized
}
