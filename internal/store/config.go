package store

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Symbols struct {
		ETF  string `yaml:"etf"`
		FX   string `yaml:"fx"`
		Gold string `yaml:"gold"`
	} `yaml:"symbols"`
	HistoryFile    string `yaml:"history_file"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	LLM            struct {
		Model       string  `yaml:"model"`
		Temperature float32 `yaml:"temperature"`
		MaxTokens   int     `yaml:"max_tokens"`
	} `yaml:"llm"`
	Chart struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"chart"`
}

// LoadConfig reads the yaml config at path. A missing file is not an error:
// the defaults reproduce the original deployment (ACE KRX gold spot ETF
// against USD/KRW and COMEX gold futures).
func LoadConfig(path string) (*Config, error) {
	var c Config
	b, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	} else if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if c.Symbols.ETF == "" {
		c.Symbols.ETF = "411060.KS"
	}
	if c.Symbols.FX == "" {
		c.Symbols.FX = "USDKRW=X"
	}
	if c.Symbols.Gold == "" {
		c.Symbols.Gold = "GC=F"
	}
	if c.HistoryFile == "" {
		c.HistoryFile = "gold_premium_history.json"
	}
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = 10
	}
	if c.LLM.Model == "" {
		c.LLM.Model = "gpt-4o-mini"
	}
	if c.LLM.Temperature == 0 {
		c.LLM.Temperature = 0.6
	}
	if c.LLM.MaxTokens == 0 {
		c.LLM.MaxTokens = 400
	}
	if c.Chart.Width == 0 {
		c.Chart.Width = 600
	}
	if c.Chart.Height == 0 {
		c.Chart.Height = 300
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c.TimeoutSeconds < 0 {
		return errors.New("timeout_seconds must not be negative")
	}
	if c.Chart.Width <= 0 || c.Chart.Height <= 0 {
		return errors.New("chart dimensions must be positive")
	}
	return nil
}
