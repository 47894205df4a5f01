// Package generate is the boundary to the external text-generation
// collaborator. The interview engine treats it as a black box: it
// hands over a rendered context and recent turns, gets free text back,
// and never parses replies except through the structured question
// request it issues itself. Callers bound every call with a context
// timeout and substitute deterministic fallback text on failure.
package generate

import (
	"context"
	"errors"

	"github.com/cloudwego/eino/schema"
)

// ErrNoQuestions reports that the collaborator returned no usable
// technical questions. Callers retry once, then fall back to
// DefaultQuestions.
var ErrNoQuestions = errors.New("generate: no usable questions returned")

// Request carries everything the collaborator needs to phrase the next
// assistant message.
type Request struct {
	// System is the rendered interview context: stage, profile
	// snapshot, sentiment trend.
	System string
	// History holds the verbatim recent turns, oldest first.
	History []*schema.Message
	// Fallback is the deterministic prompt for the pending stage,
	// used by the local generator when no model is reachable.
	Fallback string
}

// QuestionRequest asks for technical screening questions seeded with
// the candidate's stack and experience level.
type QuestionRequest struct {
	TechStack       []string
	ExperienceYears float64
	Min, Max        int
}

// Generator produces assistant text. Implementations must be safe for
// concurrent use across sessions.
type Generator interface {
	// NextMessage continues the dialogue with one assistant turn.
	NextMessage(ctx context.Context, req *Request) (string, error)
	// Questions returns between req.Min and req.Max technical
	// questions, or ErrNoQuestions.
	Questions(ctx context.Context, req *QuestionRequest) ([]string, error)
}
