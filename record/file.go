// Package record durably stores finalized interview outcomes and
// offers read-only access over the stored corpus for the viewer. The
// engine calls Save exactly once per session, at closing, and never
// reads its own output back.
package record

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/talentscout/screener/interview"
)

// ErrNotFound is returned when no record exists for a session id.
var ErrNotFound = errors.New("record: not found")

const filePrefix = "candidate_"

// FileStore keeps one JSON file per finalized session under a data
// directory, keyed by the timestamp-derived session identifier.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Save implements interview.Recorder.
func (s *FileStore) Save(ctx context.Context, outcome *interview.Outcome) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	data, err := sonic.ConfigDefault.MarshalIndent(outcome, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal outcome: %w", err)
	}
	path := s.path(outcome.SessionID)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Load reads one stored outcome by session id.
func (s *FileStore) Load(ctx context.Context, sessionID string) (*interview.Outcome, error) {
	data, err := os.ReadFile(s.path(sessionID))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, sessionID)
		}
		return nil, err
	}
	var outcome interview.Outcome
	if err := sonic.Unmarshal(data, &outcome); err != nil {
		return nil, fmt.Errorf("decode %s: %w", sessionID, err)
	}
	return &outcome, nil
}

// List loads every stored outcome, most recent first. Unreadable files
// are skipped rather than failing the whole listing.
func (s *FileStore) List(ctx context.Context) ([]*interview.Outcome, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var outcomes []*interview.Outcome
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, ".json") {
			continue
		}
		sessionID := strings.TrimSuffix(strings.TrimPrefix(name, filePrefix), ".json")
		outcome, err := s.Load(ctx, sessionID)
		if err != nil {
			continue
		}
		outcomes = append(outcomes, outcome)
	}
	sort.Slice(outcomes, func(i, j int) bool {
		return outcomes[i].EndedAt.After(outcomes[j].EndedAt)
	})
	return outcomes, nil
}

func (s *FileStore) path(sessionID string) string {
	return filepath.Join(s.dir, filePrefix+sessionID+".json")
}

var _ interview.Recorder = (*FileStore)(nil)
