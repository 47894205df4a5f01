package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/talentscout/screener/record"
)

// A hand-edited record with a null profile must still render in every
// view instead of crashing the tool.
func TestNullProfileRecordRenders(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	raw := `{
  "session_id": "20260829_120000_deadbeef",
  "started_at": "2026-08-29T12:00:00Z",
  "ended_at": "2026-08-29T12:05:00Z",
  "profile": null,
  "turns": [],
  "average_sentiment": 0,
  "completed": false
}`
	path := filepath.Join(dir, "candidate_20260829_120000_deadbeef.json")
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	store := record.NewFileStore(dir)
	if err := showList(ctx, store); err != nil {
		t.Fatalf("showList: %v", err)
	}
	if err := showDetail(ctx, store, "20260829_120000_deadbeef"); err != nil {
		t.Fatalf("showDetail: %v", err)
	}
	if err := showStats(ctx, store); err != nil {
		t.Fatalf("showStats: %v", err)
	}
}
