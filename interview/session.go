package interview

import (
	"fmt"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	"github.com/talentscout/screener/profile"
	"github.com/talentscout/screener/sentiment"
)

// Role tags who authored a turn.
type Role string

const (
	RoleCandidate Role = "candidate"
	RoleAssistant Role = "assistant"
)

// Turn is one utterance in the conversation, immutable once appended.
// Sentiment is present only for candidate turns.
type Turn struct {
	Role      Role      `json:"role"`
	Text      string    `json:"text"`
	Sentiment *int      `json:"sentiment,omitempty"`
	At        time.Time `json:"at"`
}

// Session owns one candidate's interview: the profile being filled,
// the current stage, the append-only turn history and the rolling
// sentiment trend. A session is processed by one logical worker at a
// time; the mutex enforces strictly sequential turns, since stage
// transitions are not commutative. Sessions are independent of each
// other and share no state.
type Session struct {
	mu sync.Mutex

	id            string
	stage         Stage
	profile       *profile.Profile
	turns         []Turn
	trend         *sentiment.Trend
	questionIndex int
	startedAt     time.Time
	recorded      bool
}

// NewSession creates an empty session at StageGreeting. The identifier
// is timestamp-derived with a short random suffix for uniqueness.
func NewSession() *Session {
	now := time.Now()
	return &Session{
		id:        fmt.Sprintf("%s_%s", now.Format("20060102_150405"), uuid.NewString()[:8]),
		stage:     StageGreeting,
		profile:   profile.New(),
		trend:     sentiment.NewTrend(sentiment.DefaultWindow),
		startedAt: now,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id
}

// Stage returns the current stage.
func (s *Session) Stage() Stage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stage
}

// Profile returns the session's candidate profile.
func (s *Session) Profile() *profile.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// Turns returns a copy of the full turn history.
func (s *Session) Turns() []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

// recent returns up to k most recent turns, oldest first. Caller holds
// the lock.
func (s *Session) recent(k int) []Turn {
	if k <= 0 || len(s.turns) <= k {
		out := make([]Turn, len(s.turns))
		copy(out, s.turns)
		return out
	}
	out := make([]Turn, k)
	copy(out, s.turns[len(s.turns)-k:])
	return out
}

func (s *Session) appendCandidate(text string, score int) {
	s.turns = append(s.turns, Turn{Role: RoleCandidate, Text: text, Sentiment: &score, At: time.Now()})
}

func (s *Session) appendAssistant(text string) {
	s.turns = append(s.turns, Turn{Role: RoleAssistant, Text: text, At: time.Now()})
}

// sessionState is the serializable snapshot behind Session's JSON
// round trip, used by cache backends that live outside the process.
type sessionState struct {
	ID            string           `json:"id"`
	Stage         Stage            `json:"stage"`
	Profile       *profile.Profile `json:"profile"`
	Turns         []Turn           `json:"turns"`
	Scores        []int            `json:"scores"`
	QuestionIndex int              `json:"question_index"`
	StartedAt     time.Time        `json:"started_at"`
	Recorded      bool             `json:"recorded"`
}

func (s *Session) MarshalJSON() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sonic.Marshal(sessionState{
		ID:            s.id,
		Stage:         s.stage,
		Profile:       s.profile,
		Turns:         s.turns,
		Scores:        s.trend.Scores(),
		QuestionIndex: s.questionIndex,
		StartedAt:     s.startedAt,
		Recorded:      s.recorded,
	})
}

func (s *Session) UnmarshalJSON(data []byte) error {
	var state sessionState
	if err := sonic.Unmarshal(data, &state); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.id = state.ID
	s.stage = state.Stage
	s.profile = state.Profile
	if s.profile == nil {
		s.profile = profile.New()
	}
	s.turns = state.Turns
	s.trend = sentiment.NewTrend(sentiment.DefaultWindow)
	for _, score := range state.Scores {
		s.trend.Push(score)
	}
	s.questionIndex = state.QuestionIndex
	s.startedAt = state.StartedAt
	s.recorded = state.Recorded
	if s.stage == StageClosing {
		s.profile.Finalize()
	}
	return nil
}
