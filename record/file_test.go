package record

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/talentscout/screener/interview"
	"github.com/talentscout/screener/profile"
)

func outcome(t *testing.T, id string, endedAt time.Time, years float64, positions, stack []string) *interview.Outcome {
	t.Helper()
	p := profile.New()
	if err := p.SetExperience(years); err != nil {
		t.Fatal(err)
	}
	for _, pos := range positions {
		if err := p.AddPosition(pos); err != nil {
			t.Fatal(err)
		}
	}
	if err := p.AddSkills(stack...); err != nil {
		t.Fatal(err)
	}
	return &interview.Outcome{
		SessionID: id,
		StartedAt: endedAt.Add(-10 * time.Minute),
		EndedAt:   endedAt,
		Profile:   p,
		Completed: true,
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewFileStore(t.TempDir())

	saved := outcome(t, "20250101_090000_abcd1234", time.Now(), 5, []string{"Backend Engineer"}, []string{"go"})
	if err := store.Save(ctx, saved); err != nil {
		t.Fatal(err)
	}

	loaded, err := store.Load(ctx, saved.SessionID)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.SessionID != saved.SessionID {
		t.Errorf("session id = %q", loaded.SessionID)
	}
	if loaded.Profile == nil || loaded.Profile.ExperienceYears == nil || *loaded.Profile.ExperienceYears != 5 {
		t.Errorf("profile did not round trip: %+v", loaded.Profile)
	}

	if _, err := store.Load(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing record error = %v, want ErrNotFound", err)
	}
}

func TestListNewestFirst(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewFileStore(t.TempDir())

	base := time.Now()
	for i, id := range []string{"a", "b", "c"} {
		rec := outcome(t, id, base.Add(time.Duration(i)*time.Hour), float64(i), nil, []string{"go"})
		if err := store.Save(ctx, rec); err != nil {
			t.Fatal(err)
		}
	}

	outcomes, err := store.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(outcomes) != 3 {
		t.Fatalf("listed %d records", len(outcomes))
	}
	if outcomes[0].SessionID != "c" || outcomes[2].SessionID != "a" {
		t.Errorf("not newest-first: %s, %s, %s", outcomes[0].SessionID, outcomes[1].SessionID, outcomes[2].SessionID)
	}
}

func TestListEmptyDir(t *testing.T) {
	t.Parallel()
	store := NewFileStore(t.TempDir() + "/does-not-exist")
	outcomes, err := store.List(context.Background())
	if err != nil || outcomes != nil {
		t.Errorf("List on missing dir = (%v, %v)", outcomes, err)
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()
	outcomes := []*interview.Outcome{
		outcome(t, "a", time.Now(), 2, []string{"Backend Engineer"}, []string{"go", "postgres"}),
		outcome(t, "b", time.Now(), 6, []string{"backend engineer"}, []string{"go", "react"}),
	}
	stats := Summarize(outcomes)
	if stats.Total != 2 || stats.Completed != 2 {
		t.Errorf("total/completed = %d/%d", stats.Total, stats.Completed)
	}
	if stats.AverageExperience != 4 {
		t.Errorf("average experience = %v", stats.AverageExperience)
	}
	if len(stats.Positions) != 1 || stats.Positions[0].Label != "backend engineer" || stats.Positions[0].N != 2 {
		t.Errorf("positions = %+v", stats.Positions)
	}
	if len(stats.TopTechnologies) == 0 || stats.TopTechnologies[0].Label != "go" || stats.TopTechnologies[0].N != 2 {
		t.Errorf("technologies = %+v", stats.TopTechnologies)
	}

	empty := Summarize(nil)
	if empty.Total != 0 || empty.AverageSentiment != 0 {
		t.Errorf("empty stats = %+v", empty)
	}
}
