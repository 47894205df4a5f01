package generate

import (
	"context"
	"os"
	"testing"

	"github.com/cloudwego/eino-ext/components/model/openai"
)

// initChatModel builds a real chat model for live tests. They only run
// with SCREENER_RUN_LIVE_TESTS=1 and an OPENAI_API_KEY set.
func initChatModel(t *testing.T) *openai.ChatModel {
	t.Helper()
	if os.Getenv("SCREENER_RUN_LIVE_TESTS") != "1" {
		t.Skip("set SCREENER_RUN_LIVE_TESTS=1 to run live LLM tests")
		return nil
	}
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("OPENAI_API_KEY is empty")
		return nil
	}
	chatModel, err := openai.NewChatModel(context.Background(), &openai.ChatModelConfig{
		APIKey:  apiKey,
		Model:   os.Getenv("OPENAI_MODEL"),
		BaseURL: os.Getenv("OPENAI_BASE_URL"),
	})
	if err != nil {
		t.Fatalf("failed to init chat model: %v", err)
	}
	return chatModel
}

func TestToolBasedQuestionsLive(t *testing.T) {
	t.Parallel()
	chatModel := initChatModel(t)
	if chatModel == nil {
		return
	}
	gen, err := NewToolBased(chatModel)
	if err != nil {
		t.Fatal(err)
	}

	questions, err := gen.Questions(context.Background(), &QuestionRequest{
		TechStack:       []string{"go", "postgres"},
		ExperienceYears: 5,
		Min:             3,
		Max:             5,
	})
	if err != nil {
		t.Fatalf("Questions: %v", err)
	}
	if len(questions) < 3 || len(questions) > 5 {
		t.Fatalf("got %d questions, want 3-5", len(questions))
	}
	for i, q := range questions {
		t.Logf("question %d: %s", i+1, q)
	}
}

func TestToolBasedDialogueLive(t *testing.T) {
	t.Parallel()
	chatModel := initChatModel(t)
	if chatModel == nil {
		return
	}
	gen, err := NewToolBased(chatModel)
	if err != nil {
		t.Fatal(err)
	}

	message, err := gen.NextMessage(context.Background(), &Request{
		System:   "# Interview stage:\nemail\n\n# Candidate profile collected so far:\n```json\n{\"name\":\"Jane Doe\"}\n```",
		Fallback: "What email address can we reach you at?",
	})
	if err != nil {
		t.Fatalf("NextMessage: %v", err)
	}
	if message == "" {
		t.Fatal("empty assistant message")
	}
	t.Logf("assistant: %s", message)
}
