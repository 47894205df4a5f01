package extract

import (
	"errors"
	"testing"
)

func TestEmailExtraction(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   string
		want string
	}{
		{"john@example.com", "john@example.com"},
		{"my email is john@example.com", "john@example.com"},
		{"reach me at a@b.com or later at c@d.org", "a@b.com"},
		{"  john.doe+rec@sub.example.co  ", "john.doe+rec@sub.example.co"},
	}
	for _, c := range cases {
		got, err := Value(FieldEmail, c.in)
		if err != nil {
			t.Fatalf("Value(email, %q) error: %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("Value(email, %q) = %q, want %q", c.in, got, c.want)
		}
	}

	_, err := Value(FieldEmail, "not an email")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if verr.Field != FieldEmail {
		t.Errorf("validation error field = %s, want %s", verr.Field, FieldEmail)
	}
}

func TestPhoneExtraction(t *testing.T) {
	t.Parallel()
	got, err := Value(FieldPhone, "you can call me on +1 (555) 123-4567 after 5pm")
	if err != nil {
		t.Fatalf("embedded phone not found: %v", err)
	}
	if got != "+1 (555) 123-4567" {
		t.Errorf("extracted %q", got)
	}

	if _, err := Value(FieldPhone, "12345"); err == nil {
		t.Error("short number should fail validation")
	}
}

func TestExperienceExtraction(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   string
		want string
	}{
		{"5", "5"},
		{"5 years", "5"},
		{"I have 7 years of experience", "7"},
		{"about 2.5 yrs working with Go", "2.5"},
	}
	for _, c := range cases {
		got, err := Value(FieldExperience, c.in)
		if err != nil {
			t.Fatalf("Value(experience, %q) error: %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("Value(experience, %q) = %q, want %q", c.in, got, c.want)
		}
	}

	if _, err := Value(FieldExperience, "a long time"); err == nil {
		t.Error("non-numeric experience should fail")
	}

	years, err := Experience("I have 7 years of experience")
	if err != nil || years != 7 {
		t.Errorf("Experience() = (%v, %v), want (7, nil)", years, err)
	}
}

func TestFreeTextFields(t *testing.T) {
	t.Parallel()
	got, err := Value(FieldName, "  Jane Doe  ")
	if err != nil || got != "Jane Doe" {
		t.Errorf("Value(name) = (%q, %v)", got, err)
	}
	if _, err := Value(FieldLocation, "   "); err == nil {
		t.Error("blank free-text answer should fail")
	}
}

func TestTechStack(t *testing.T) {
	t.Parallel()
	a, err := TechStack("Python, React, python")
	if err != nil {
		t.Fatal(err)
	}
	b, err := TechStack("react, PYTHON")
	if err != nil {
		t.Fatal(err)
	}

	asSet := func(list []string) map[string]bool {
		m := make(map[string]bool, len(list))
		for _, s := range list {
			m[s] = true
		}
		return m
	}
	wantSet := map[string]bool{"python": true, "react": true}
	for name, got := range map[string][]string{"a": a, "b": b} {
		set := asSet(got)
		if len(set) != len(wantSet) {
			t.Fatalf("%s: set = %v, want %v", name, set, wantSet)
		}
		for k := range wantSet {
			if !set[k] {
				t.Errorf("%s: missing %q", name, k)
			}
		}
	}

	// Insertion order is preserved for display.
	if a[0] != "python" || a[1] != "react" {
		t.Errorf("order not preserved: %v", a)
	}

	mixed, err := TechStack("Go and Postgres, Redis & Kafka")
	if err != nil {
		t.Fatal(err)
	}
	if len(mixed) != 4 {
		t.Errorf("mixed separators: %v", mixed)
	}

	if _, err := TechStack(" , ,, "); err == nil {
		t.Error("empty list should fail")
	}
}
