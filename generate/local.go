package generate

import (
	"context"
	"fmt"
)

// GenericFallback is emitted when a request carries no stage-specific
// fallback prompt.
const GenericFallback = "Let's continue — could you repeat that?"

// Local is the deterministic generator used when no model is reachable
// or a call timed out. It never errors.
type Local struct{}

func (Local) NextMessage(ctx context.Context, req *Request) (string, error) {
	if req.Fallback != "" {
		return req.Fallback, nil
	}
	return GenericFallback, nil
}

func (Local) Questions(ctx context.Context, req *QuestionRequest) ([]string, error) {
	return DefaultQuestions(req.TechStack), nil
}

// DefaultQuestions is the fixed question list used when the
// collaborator keeps failing, so the interview can proceed. The first
// declared technology is woven in where it helps.
func DefaultQuestions(stack []string) []string {
	subject := "your primary technology"
	if len(stack) > 0 {
		subject = stack[0]
	}
	return []string{
		fmt.Sprintf("Describe a project where you used %s. What was your role and what did you build?", subject),
		fmt.Sprintf("What do you consider the most common pitfalls when working with %s, and how do you avoid them?", subject),
		"Walk me through how you debug a production issue you have never seen before.",
		"How do you decide what to test, and what does a good test suite look like to you?",
	}
}

// Failover tries each generator in order and returns the first
// success.
type Failover struct {
	generators []Generator
}

func NewFailover(generators ...Generator) *Failover {
	return &Failover{generators: generators}
}

func (f *Failover) NextMessage(ctx context.Context, req *Request) (string, error) {
	var lastErr error
	for _, g := range f.generators {
		message, err := g.NextMessage(ctx, req)
		if err == nil {
			return message, nil
		}
		lastErr = err
	}
	return "", fmt.Errorf("all generators failed: %w", lastErr)
}

func (f *Failover) Questions(ctx context.Context, req *QuestionRequest) ([]string, error) {
	var lastErr error
	for _, g := range f.generators {
		questions, err := g.Questions(ctx, req)
		if err == nil {
			return questions, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("all generators failed: %w", lastErr)
}

var (
	_ Generator = Local{}
	_ Generator = (*Failover)(nil)
)
