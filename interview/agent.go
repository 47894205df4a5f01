package interview

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/adk"
	"github.com/cloudwego/eino/schema"
)

var _ adk.Agent = (*Agent)(nil)

// Agent exposes a Flow as an eino adk.Agent. Sessions are routed by
// the key set with WithSessionKey; unknown keys start a fresh
// interview.
type Agent struct {
	name        string
	description string
	flow        *Flow
	sessions    Cache[*Session]
}

func NewAgent(name, description string, flow *Flow, sessions Cache[*Session]) *Agent {
	if sessions == nil {
		sessions = NewMemoryCache[*Session]()
	}
	return &Agent{
		name:        name,
		description: description,
		flow:        flow,
		sessions:    sessions,
	}
}

func (a *Agent) Name(ctx context.Context) string {
	return a.name
}

func (a *Agent) Description(ctx context.Context) string {
	return a.description
}

// Session returns the live session for the context's routing key,
// creating and opening one if needed.
func (a *Agent) Session(ctx context.Context) (*Session, error) {
	key := sessionKeyOrDefault(ctx)
	sess, ok, err := a.sessions.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if ok && sess != nil {
		return sess, nil
	}
	sess = NewSession()
	if err := a.sessions.Set(ctx, key, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (a *Agent) Run(ctx context.Context, input *adk.AgentInput, options ...adk.AgentRunOption) *adk.AsyncIterator[*adk.AgentEvent] {
	iter, gen := adk.NewAsyncIteratorPair[*adk.AgentEvent]()
	go func() {
		defer func() {
			if e := recover(); e != nil {
				gen.Send(&adk.AgentEvent{
					Err: fmt.Errorf("recover from panic: %v", e),
				})
			}
			gen.Close()
		}()
		if len(input.Messages) == 0 {
			gen.Send(&adk.AgentEvent{
				Err: fmt.Errorf("no messages in input"),
			})
			return
		}
		sess, err := a.Session(ctx)
		if err != nil {
			gen.Send(&adk.AgentEvent{
				Err: fmt.Errorf("load session failed: %w", err),
			})
			return
		}
		resp, err := a.flow.Turn(ctx, sess, input.Messages[len(input.Messages)-1].Content)
		if err != nil {
			gen.Send(&adk.AgentEvent{
				Err: fmt.Errorf("interview turn failed: %w", err),
			})
			return
		}
		// Write back so out-of-process caches see the new state.
		if err := a.sessions.Set(ctx, sessionKeyOrDefault(ctx), sess); err != nil {
			gen.Send(&adk.AgentEvent{
				Err: fmt.Errorf("save session failed: %w", err),
			})
			return
		}
		gen.Send(&adk.AgentEvent{
			Output: &adk.AgentOutput{
				MessageOutput: &adk.MessageVariant{
					IsStreaming: false,
					Message: &schema.Message{
						Role:    schema.Assistant,
						Content: resp.Message,
					},
					Role: schema.Assistant,
				},
			},
		})
	}()
	return iter
}
