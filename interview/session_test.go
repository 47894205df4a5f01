package interview

import (
	"context"
	"strings"
	"testing"

	"github.com/bytedance/sonic"

	"github.com/talentscout/screener/sentiment"
)

func TestSessionIDIsTimestampDerived(t *testing.T) {
	t.Parallel()
	a, b := NewSession(), NewSession()
	if a.ID() == "" || a.ID() == b.ID() {
		t.Errorf("ids not unique: %q vs %q", a.ID(), b.ID())
	}
	if len(strings.Split(a.ID(), "_")) != 3 {
		t.Errorf("id format: %q", a.ID())
	}
}

func TestSessionJSONRoundTrip(t *testing.T) {
	t.Parallel()
	f := NewFlow(nil)
	s := NewSession()
	if _, err := f.Begin(context.Background(), s); err != nil {
		t.Fatal(err)
	}
	turnOK(t, f, s, "Jane Doe")
	turnOK(t, f, s, "I'm excited! jane@example.com")

	data, err := sonic.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	restored := &Session{}
	if err := sonic.Unmarshal(data, restored); err != nil {
		t.Fatal(err)
	}

	if restored.ID() != s.ID() || restored.Stage() != s.Stage() {
		t.Errorf("restored id/stage = %q/%s", restored.ID(), restored.Stage())
	}
	if restored.Profile().Name != "Jane Doe" || restored.Profile().Email != "jane@example.com" {
		t.Errorf("restored profile = %+v", restored.Profile())
	}
	if len(restored.Turns()) != len(s.Turns()) {
		t.Errorf("restored %d turns, want %d", len(restored.Turns()), len(s.Turns()))
	}

	// The restored session keeps working where it left off.
	resp := turnOK(t, f, restored, "+1 555 123 4567")
	if resp.Stage != StageExperience {
		t.Errorf("restored session stage = %s", resp.Stage)
	}
}

func TestBuildContext(t *testing.T) {
	t.Parallel()
	f := NewFlow(nil)
	s := NewSession()
	if _, err := f.Begin(context.Background(), s); err != nil {
		t.Fatal(err)
	}
	turnOK(t, f, s, "Jane Doe")
	turnOK(t, f, s, "I'm nervous and a bit anxious, it's jane@example.com")

	s.mu.Lock()
	c := buildContext(s, 2)
	s.mu.Unlock()

	if c.Stage != StagePhone {
		t.Errorf("context stage = %s", c.Stage)
	}
	if c.Profile.Email != "jane@example.com" {
		t.Errorf("snapshot email = %q", c.Profile.Email)
	}
	if len(c.Recent) != 2 {
		t.Errorf("recent turns = %d, want capped at 2", len(c.Recent))
	}
	if c.Trend.Label != sentiment.Negative || c.Note == "" {
		t.Errorf("negative trend should set a tone note: %+v", c.Trend)
	}
	// Unset fields are listed as missing, in collection order.
	if len(c.Missing) == 0 || c.Missing[0] != "phone" {
		t.Errorf("missing = %v", c.Missing)
	}

	prompt, err := c.Prompt()
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"phone", "jane@example.com", "negative", "Phone number"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestMemoryCacheRouting(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	cache := NewMemoryCache[*Session]()
	agent := NewAgent("screener", "screening interview agent", NewFlow(nil), cache)

	a, err := agent.Session(WithSessionKey(ctx, "candidate-a"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := agent.Session(WithSessionKey(ctx, "candidate-b"))
	if err != nil {
		t.Fatal(err)
	}
	if a.ID() == b.ID() {
		t.Error("sessions shared across candidates")
	}

	again, err := agent.Session(WithSessionKey(ctx, "candidate-a"))
	if err != nil {
		t.Fatal(err)
	}
	if again.ID() != a.ID() {
		t.Error("routing key did not return the same session")
	}
}
