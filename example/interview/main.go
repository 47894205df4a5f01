package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/adk"
	"github.com/cloudwego/eino/schema"

	"github.com/talentscout/screener/generate"
	"github.com/talentscout/screener/interview"
	"github.com/talentscout/screener/record"
)

func main() {
	conf := flag.String("config", "config.json", "path to config file")
	flag.Parse()
	config, err := loadConfig(*conf)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := run(context.Background(), config); err != nil {
		log.Fatalf("run: %v", err)
	}
}

func run(ctx context.Context, config *Config) error {
	slog.SetLogLoggerLevel(slog.LevelInfo)

	var gen generate.Generator = generate.Local{}
	if config.APIKey != "" {
		cm, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
			APIKey:  config.APIKey,
			Model:   config.Model,
			BaseURL: config.BaseURL,
		})
		if err != nil {
			return err
		}
		toolBased, err := generate.NewToolBased(cm)
		if err != nil {
			return err
		}
		gen = generate.NewFailover(toolBased, generate.Local{})
	}

	flow := interview.NewFlow(gen,
		interview.WithRecorder(record.NewFileStore(config.DataDir)),
	)
	sessions := interview.NewMemoryCache[*interview.Session]()
	agent := interview.NewAgent(
		"TalentScoutScreener",
		"Conducts initial candidate screening interviews for technology positions",
		flow,
		sessions,
	)
	runner := adk.NewRunner(ctx, adk.RunnerConfig{
		Agent: agent,
	})

	chatCtx := interview.WithSessionKey(ctx, "local")
	sess, err := agent.Session(chatCtx)
	if err != nil {
		return err
	}
	opening, err := flow.Begin(chatCtx, sess)
	if err != nil {
		return err
	}
	fmt.Printf("assistant: %s\n", opening.Message)

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("you: ")
		input, rErr := reader.ReadString('\n')
		if rErr != nil {
			fmt.Println("input closed, exiting.")
			return nil
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		iter := runner.Run(chatCtx, []*schema.Message{schema.UserMessage(input)})
		for {
			event, ok := iter.Next()
			if !ok {
				break
			}
			if event.Err != nil {
				return event.Err
			}
			msg, mErr := event.Output.MessageOutput.GetMessage()
			if mErr != nil {
				return mErr
			}
			fmt.Printf("assistant: %s\n", msg.Content)
		}
		if sess.Stage() == interview.StageClosing {
			fmt.Printf("session %s recorded, goodbye.\n", sess.ID())
			return nil
		}
	}
}
