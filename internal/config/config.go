package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Paths       PathsConfig       `yaml:"paths"`
	Analysis    AnalysisConfig    `yaml:"analysis"`
	Transcriber TranscriberConfig `yaml:"transcriber"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type PathsConfig struct {
	Inbox    string `yaml:"inbox" validate:"required"`
	Output   string `yaml:"output" validate:"required"`
	Archived string `yaml:"archived"`
	Temp     string `yaml:"temp"`
}

// AnalysisConfig holds the engine thresholds. Zero values mean "use default".
type AnalysisConfig struct {
	GapThreshold       float64 `yaml:"gap_threshold"`
	MinChapterLength   float64 `yaml:"min_chapter_length"`
	ChapterFlushFloor  float64 `yaml:"chapter_flush_floor"`
	TurnRatio          float64 `yaml:"turn_ratio"`
	SummarySentences   int     `yaml:"summary_sentences"`
	HighlightSentences int     `yaml:"highlight_sentences"`
	KeywordCount       int     `yaml:"keyword_count"`
}

// TranscriberConfig describes the optional external speech-to-text command.
// Args may contain the placeholders {input} and {output}; {output} is a file
// prefix to which the command is expected to append .txt and optionally .srt.
type TranscriberConfig struct {
	Binary string   `yaml:"binary"`
	Args   []string `yaml:"args"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Load reads and validates a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("required fields: %w", err)
	}

	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Analysis.GapThreshold == 0 {
		c.Analysis.GapThreshold = 7
	}
	if c.Analysis.MinChapterLength == 0 {
		c.Analysis.MinChapterLength = 30
	}
	if c.Analysis.ChapterFlushFloor == 0 {
		c.Analysis.ChapterFlushFloor = 1.0
	}
	if c.Analysis.TurnRatio == 0 {
		c.Analysis.TurnRatio = 1.6
	}
	if c.Analysis.SummarySentences == 0 {
		c.Analysis.SummarySentences = 6
	}
	if c.Analysis.HighlightSentences == 0 {
		c.Analysis.HighlightSentences = 3
	}
	if c.Analysis.KeywordCount == 0 {
		c.Analysis.KeywordCount = 12
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}
