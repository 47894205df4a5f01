package main

import (
	"os"

	"github.com/bytedance/sonic"
	"github.com/joho/godotenv"
)

type Config struct {
	APIKey  string `json:"api_key"`
	BaseURL string `json:"base_url"`
	Model   string `json:"model"`
	DataDir string `json:"data_dir"`
}

// loadConfig reads config.json and lets environment variables
// (optionally from a .env file) override the API key.
func loadConfig(path string) (*Config, error) {
	_ = godotenv.Load()

	conf := &Config{DataDir: "candidate_data"}
	file, err := os.ReadFile(path)
	if err == nil {
		if err := sonic.Unmarshal(file, conf); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		conf.APIKey = key
	}
	if base := os.Getenv("OPENAI_BASE_URL"); base != "" {
		conf.BaseURL = base
	}
	if model := os.Getenv("OPENAI_MODEL"); model != "" {
		conf.Model = model
	}
	return conf, nil
}
