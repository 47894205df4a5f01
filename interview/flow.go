package interview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cloudwego/eino/schema"

	"github.com/talentscout/screener/extract"
	"github.com/talentscout/screener/generate"
	"github.com/talentscout/screener/profile"
	"github.com/talentscout/screener/sentiment"
)

const (
	defaultGenerateTimeout = 15 * time.Second
	questionCountMin       = 3
	questionCountMax       = 5
)

// ErrSessionBegun is returned by Begin on a session past greeting.
var ErrSessionBegun = errors.New("interview: session already begun")

// Outcome is the finalized result handed to the persistence
// collaborator exactly once, when the session reaches closing.
type Outcome struct {
	SessionID        string           `json:"session_id"`
	StartedAt        time.Time        `json:"started_at"`
	EndedAt          time.Time        `json:"ended_at"`
	Profile          *profile.Profile `json:"profile"`
	Turns            []Turn           `json:"turns"`
	AverageSentiment float64          `json:"average_sentiment"`
	Completed        bool             `json:"completed"`
}

// Recorder durably stores a finalized interview outcome.
type Recorder interface {
	Save(ctx context.Context, outcome *Outcome) error
}

// Flow drives a session through the interview stages. One Flow is
// shared by any number of independent sessions.
type Flow struct {
	gen         generate.Generator
	recorder    Recorder
	timeout     time.Duration
	recentTurns int
}

type flowOptions struct {
	recorder    Recorder
	timeout     time.Duration
	recentTurns int
}

type FlowOption func(*flowOptions)

// WithRecorder sets the persistence collaborator invoked at closing.
func WithRecorder(recorder Recorder) FlowOption {
	return func(o *flowOptions) {
		o.recorder = recorder
	}
}

// WithGenerateTimeout bounds each generation call. On timeout the flow
// falls back to the deterministic stage prompt instead of stalling.
func WithGenerateTimeout(timeout time.Duration) FlowOption {
	return func(o *flowOptions) {
		o.timeout = timeout
	}
}

// WithRecentTurns sets how many verbatim turns the generator context
// carries.
func WithRecentTurns(k int) FlowOption {
	return func(o *flowOptions) {
		o.recentTurns = k
	}
}

// NewFlow creates a flow around the given generator. A nil generator
// degrades to the deterministic prompts everywhere.
func NewFlow(gen generate.Generator, opts ...FlowOption) *Flow {
	options := flowOptions{
		timeout:     defaultGenerateTimeout,
		recentTurns: DefaultRecentTurns,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}
	return &Flow{
		gen:         gen,
		recorder:    options.recorder,
		timeout:     options.timeout,
		recentTurns: options.recentTurns,
	}
}

// Response is the flow's answer to one candidate turn.
type Response struct {
	Message string
	Stage   Stage
	Done    bool
}

// Begin appends the assistant-authored opening turn and moves the
// session from greeting to name collection. It must run before the
// first candidate turn; Turn calls it implicitly if the host did not.
func (f *Flow) Begin(ctx context.Context, s *Session) (*Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stage != StageGreeting {
		return nil, ErrSessionBegun
	}
	f.begin(s)
	return &Response{Message: OpeningMessage, Stage: s.stage}, nil
}

// begin advances greeting to name. Caller holds the lock.
func (f *Flow) begin(s *Session) {
	s.appendAssistant(OpeningMessage)
	s.stage = StageName
}

// Turn processes one candidate utterance: scores sentiment, extracts
// the pending field, transitions the stage and produces the next
// assistant message. It never returns an error for malformed input;
// those are recovered with a re-ask.
func (f *Flow) Turn(ctx context.Context, s *Session, input string) (*Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stage == StageGreeting {
		f.begin(s)
	}

	if s.stage == StageClosing {
		s.appendCandidate(input, sentiment.Score(input))
		s.appendAssistant(ClosingAcknowledgment)
		return &Response{Message: ClosingAcknowledgment, Stage: StageClosing, Done: true}, nil
	}

	score := sentiment.Score(input)
	s.trend.Push(score)
	s.appendCandidate(input, score)

	if IsTermination(input) {
		return f.close(ctx, s), nil
	}

	if s.stage == StageTechQuestions {
		return f.answerTurn(ctx, s, input)
	}
	return f.collectTurn(ctx, s, input)
}

// collectTurn runs the extractor for the stage's pending field. On
// failure the stage holds and the response echoes the reason; retries
// are unbounded.
func (f *Flow) collectTurn(ctx context.Context, s *Session, input string) (*Response, error) {
	field, ok := s.stage.Field()
	if !ok {
		return nil, fmt.Errorf("interview: stage %s expects no field", s.stage)
	}

	var err error
	switch field {
	case extract.FieldTechStack:
		var skills []string
		if skills, err = extract.TechStack(input); err == nil {
			err = s.profile.AddSkills(skills...)
		}
	case extract.FieldExperience:
		var years float64
		if years, err = extract.Experience(input); err == nil {
			err = s.profile.SetExperience(years)
		}
	default:
		var value string
		if value, err = extract.Value(field, input); err == nil {
			err = f.store(s, field, value)
		}
	}

	var verr *extract.ValidationError
	if errors.As(err, &verr) {
		message := fmt.Sprintf("Sorry, %s. %s", verr.Reason, s.stage.Prompt())
		s.appendAssistant(message)
		return &Response{Message: message, Stage: s.stage}, nil
	}
	if err != nil {
		return nil, err
	}

	if field == extract.FieldTechStack {
		return f.enterQuestions(ctx, s)
	}

	s.stage = s.stage.next()
	message := f.nextMessage(ctx, s)
	s.appendAssistant(message)
	return &Response{Message: message, Stage: s.stage}, nil
}

func (f *Flow) store(s *Session, field extract.Field, value string) error {
	switch field {
	case extract.FieldName:
		return s.profile.SetName(value)
	case extract.FieldEmail:
		return s.profile.SetEmail(value)
	case extract.FieldPhone:
		return s.profile.SetPhone(value)
	case extract.FieldPosition:
		return s.profile.AddPosition(value)
	case extract.FieldLocation:
		return s.profile.SetLocation(value)
	default:
		return fmt.Errorf("interview: no setter for field %s", field)
	}
}

// enterQuestions requests the technical question set and starts the
// answer sub-loop.
func (f *Flow) enterQuestions(ctx context.Context, s *Session) (*Response, error) {
	questions := f.generateQuestions(ctx, s)
	if err := s.profile.SetQuestions(questions); err != nil {
		return nil, err
	}
	s.stage = StageTechQuestions
	s.questionIndex = 0
	message := fmt.Sprintf(
		"Great, thanks! Based on your stack I have %d technical questions for you.\n\nQuestion 1 of %d: %s",
		len(questions), len(questions), questions[0],
	)
	s.appendAssistant(message)
	return &Response{Message: message, Stage: s.stage}, nil
}

// answerTurn records the utterance verbatim as the answer for the
// current question. Every input is accepted; there is no re-ask here.
func (f *Flow) answerTurn(ctx context.Context, s *Session, input string) (*Response, error) {
	if err := s.profile.SetAnswer(s.questionIndex, input); err != nil {
		return nil, err
	}
	s.questionIndex++

	if s.profile.Answered() {
		return f.close(ctx, s), nil
	}

	total := len(s.profile.Questions)
	message := fmt.Sprintf("Question %d of %d: %s", s.questionIndex+1, total, s.profile.Questions[s.questionIndex])
	s.appendAssistant(message)
	return &Response{Message: message, Stage: s.stage}, nil
}

// close finalizes the profile, hands the outcome to the recorder
// exactly once and parks the session in the terminal stage. Recorder
// failures are logged, never fatal: the session still ends cleanly.
func (f *Flow) close(ctx context.Context, s *Session) *Response {
	s.stage = StageClosing
	s.profile.Finalize()

	message := FarewellIncomplete
	if s.profile.Complete() {
		message = FarewellComplete
	}

	if f.recorder != nil && !s.recorded {
		s.recorded = true
		outcome := &Outcome{
			SessionID:        s.id,
			StartedAt:        s.startedAt,
			EndedAt:          time.Now(),
			Profile:          s.profile,
			Turns:            append([]Turn(nil), s.turns...),
			AverageSentiment: averageSentiment(s.turns),
			Completed:        s.profile.Complete(),
		}
		if err := f.recorder.Save(ctx, outcome); err != nil {
			slog.Warn("failed to record interview outcome", "session", s.id, "error", err)
		}
	}

	s.appendAssistant(message)
	return &Response{Message: message, Stage: StageClosing, Done: true}
}

// nextMessage asks the generator to phrase the next question, bounded
// by the flow timeout, and falls back to the deterministic stage
// prompt on any failure. Caller holds the lock.
func (f *Flow) nextMessage(ctx context.Context, s *Session) string {
	fallback := s.stage.Prompt()
	if f.gen == nil {
		return fallback
	}

	ictx := buildContext(s, f.recentTurns)
	system, err := ictx.Prompt()
	if err != nil {
		slog.Warn("failed to render interview context", "session", s.id, "error", err)
		return fallback
	}
	req := &generate.Request{
		System:   system,
		History:  historyMessages(ictx.Recent),
		Fallback: fallback,
	}

	gctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()
	message, err := f.gen.NextMessage(gctx, req)
	if err != nil || message == "" {
		slog.Debug("dialogue generation failed, using fallback", "session", s.id, "stage", s.stage, "error", err)
		return fallback
	}
	return message
}

// generateQuestions asks for 3-5 technical questions, retries once on
// a malformed or failed response, then falls back to the fixed default
// list so the interview can proceed.
func (f *Flow) generateQuestions(ctx context.Context, s *Session) []string {
	req := &generate.QuestionRequest{
		TechStack: append([]string(nil), s.profile.TechStack...),
		Min:       questionCountMin,
		Max:       questionCountMax,
	}
	if s.profile.ExperienceYears != nil {
		req.ExperienceYears = *s.profile.ExperienceYears
	}
	if f.gen == nil {
		return generate.DefaultQuestions(req.TechStack)
	}

	for attempt := 1; attempt <= 2; attempt++ {
		gctx, cancel := context.WithTimeout(ctx, f.timeout)
		questions, err := f.gen.Questions(gctx, req)
		cancel()
		if err == nil && len(questions) < req.Min {
			// An under-sized success is as unusable as an error.
			err = generate.ErrNoQuestions
		}
		if err == nil {
			return questions
		}
		slog.Debug("question generation failed", "session", s.id, "attempt", attempt, "error", err)
	}
	return generate.DefaultQuestions(req.TechStack)
}

func historyMessages(turns []Turn) []*schema.Message {
	out := make([]*schema.Message, 0, len(turns))
	for _, turn := range turns {
		if turn.Role == RoleAssistant {
			out = append(out, schema.AssistantMessage(turn.Text, nil))
		} else {
			out = append(out, schema.UserMessage(turn.Text))
		}
	}
	return out
}

func averageSentiment(turns []Turn) float64 {
	sum, n := 0, 0
	for _, turn := range turns {
		if turn.Sentiment != nil {
			sum += *turn.Sentiment
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}
