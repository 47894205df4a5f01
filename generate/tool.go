package generate

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/talentscout/screener/structured"
)

// DefaultSystemPrompt frames the chat model as the screening
// interviewer. The rendered interview context is appended per call.
const DefaultSystemPrompt = `You are a professional hiring assistant conducting an initial candidate screening interview for technology positions.

Guidelines:
- Ask for information one piece at a time to keep the conversation natural.
- Acknowledge what the candidate already provided before asking the next question.
- Validate gently: if something looked wrong, the context below says so.
- Stay focused on the screening process; politely redirect off-topic chat.
- Be professional, friendly and encouraging throughout.`

const (
	questionsToolName = "submit_technical_questions"
	questionsToolDesc = "Submit the generated technical screening questions."
)

type questionSet struct {
	Questions []string `json:"questions" jsonschema:"required,description=Technical screening questions tailored to the candidate's stack and experience"`
}

// ToolBased delegates both dialogue and question generation to a
// tool-calling chat model.
type ToolBased struct {
	systemPrompt string
	chatModel    model.ToolCallingChatModel
	questions    *structured.Chain[*QuestionRequest, questionSet]
}

type toolOptions struct {
	systemPrompt string
}

type ToolOption func(*toolOptions)

// WithSystemPrompt overrides the interviewer framing prompt.
func WithSystemPrompt(prompt string) ToolOption {
	return func(o *toolOptions) {
		o.systemPrompt = prompt
	}
}

func NewToolBased(chatModel model.ToolCallingChatModel, opts ...ToolOption) (*ToolBased, error) {
	options := toolOptions{systemPrompt: DefaultSystemPrompt}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}
	chain, err := structured.NewChain[*QuestionRequest, questionSet](
		chatModel,
		buildQuestionsPrompt,
		questionsToolName,
		questionsToolDesc,
	)
	if err != nil {
		return nil, fmt.Errorf("create questions chain: %w", err)
	}
	return &ToolBased{
		systemPrompt: options.systemPrompt,
		chatModel:    chatModel,
		questions:    chain,
	}, nil
}

func (g *ToolBased) NextMessage(ctx context.Context, req *Request) (string, error) {
	messages := make([]*schema.Message, 0, len(req.History)+1)
	messages = append(messages, schema.SystemMessage(g.systemPrompt+"\n\n"+req.System))
	messages = append(messages, req.History...)

	response, err := g.chatModel.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("LLM call failed: %w", err)
	}
	return response.Content, nil
}

func (g *ToolBased) Questions(ctx context.Context, req *QuestionRequest) ([]string, error) {
	result, err := g.questions.Invoke(ctx, req)
	if err != nil {
		return nil, err
	}
	questions := cleanQuestions(result.Questions)
	if len(questions) < req.Min {
		return nil, fmt.Errorf("%w: got %d, want at least %d", ErrNoQuestions, len(questions), req.Min)
	}
	if req.Max > 0 && len(questions) > req.Max {
		questions = questions[:req.Max]
	}
	return questions, nil
}

func buildQuestionsPrompt(ctx context.Context, req *QuestionRequest) ([]*schema.Message, error) {
	systemPrompt := fmt.Sprintf(`You generate technical screening questions for a recruitment interview.

Produce between %d and %d practical questions assessing proficiency in the candidate's declared tech stack, calibrated to their experience level. One question per technology where possible, no trivia.

Call the '%s' tool with the result.`, req.Min, req.Max, questionsToolName)

	userPrompt := fmt.Sprintf("Tech stack: %s\nYears of experience: %.1f",
		strings.Join(req.TechStack, ", "), req.ExperienceYears)

	return []*schema.Message{
		schema.SystemMessage(systemPrompt),
		schema.UserMessage(userPrompt),
	}, nil
}

func cleanQuestions(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, q := range raw {
		q = strings.TrimSpace(q)
		if q != "" {
			out = append(out, q)
		}
	}
	return out
}

var _ Generator = (*ToolBased)(nil)
