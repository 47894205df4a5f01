package validate

import "testing"

func TestEmail(t *testing.T) {
	t.Parallel()
	valid := []string{
		"john@example.com",
		"john.doe+rec@sub.example.co",
		"test@test.co.uk",
		"  padded@example.com  ",
	}
	for _, s := range valid {
		if !Email(s) {
			t.Errorf("Email(%q) = false, want true", s)
		}
	}
	invalid := []string{
		"john@example",
		"invalid.email",
		"@example.com",
		"john@.com",
		"john@example.c",
		"",
	}
	for _, s := range invalid {
		if Email(s) {
			t.Errorf("Email(%q) = true, want false", s)
		}
	}
}

func TestPhone(t *testing.T) {
	t.Parallel()
	valid := []string{
		"1234567890",
		"+1 (555) 123-4567",
		"(123) 456-7890",
		"+44 20 7946 0958",
	}
	for _, s := range valid {
		if !Phone(s) {
			t.Errorf("Phone(%q) = false, want true", s)
		}
	}
	invalid := []string{
		"12345",
		"123",
		"555-CALL-NOW",
		"++15551234567",
		"",
	}
	for _, s := range invalid {
		if Phone(s) {
			t.Errorf("Phone(%q) = true, want false", s)
		}
	}
}

func TestExperience(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in    string
		years float64
		ok    bool
	}{
		{"5", 5, true},
		{"5 years", 5, true},
		{"2.5 yrs", 2.5, true},
		{"0", 0, true},
		{"10 Years", 10, true},
		{"-3", 0, false},
		{"five years", 0, false},
		{"", 0, false},
		{"years", 0, false},
	}
	for _, c := range cases {
		years, ok := Experience(c.in)
		if ok != c.ok || years != c.years {
			t.Errorf("Experience(%q) = (%v, %v), want (%v, %v)", c.in, years, ok, c.years, c.ok)
		}
	}
}
