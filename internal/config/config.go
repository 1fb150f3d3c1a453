package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Project struct {
		ID       string `yaml:"id"`
		Location string `yaml:"location"`
	} `yaml:"project"`
	AI struct {
		Model  string `yaml:"model"`
		APIKey string `yaml:"api_key"`
	} `yaml:"ai"`
	Generator struct {
		SourceDir     string   `yaml:"source_dir"`
		OutDir        string   `yaml:"out_dir"`
		Layout        string   `yaml:"layout"` // "mirror" or "package"
		DelayMs       int      `yaml:"delay_ms"`
		SkipGlobs     []string `yaml:"skip_globs"`
		ScaffoldMocks bool     `yaml:"scaffold_mocks"`
		CompileCheck  bool     `yaml:"compile_check"`
		JavacPath     string   `yaml:"javac_path"`
	} `yaml:"generator"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	var cfg Config
	cfg.Project.Location = "us-central1"
	cfg.AI.Model = "gemini-2.5-flash"
	cfg.Generator.OutDir = "generated-tests"
	cfg.Generator.Layout = "mirror"
	cfg.Generator.DelayMs = 1000
	cfg.Generator.SkipGlobs = []string{"*Test.java", "*Tests.java", "*Application.java"}
	cfg.Generator.JavacPath = "javac"
	return &cfg
}

// LoadConfig reads the YAML config file, falling back to Default when the
// file does not exist. A .env file is honored, and environment variables
// win over both.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	cfg := Default()

	// 2. Load YAML config
	file, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	// 3. Override with Environment Variables if present
	if apiKey := os.Getenv("TESTSMITH_API_KEY"); apiKey != "" {
		cfg.AI.APIKey = apiKey
	} else if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		cfg.AI.APIKey = apiKey
	}
	if project := os.Getenv("TESTSMITH_PROJECT_ID"); project != "" {
		cfg.Project.ID = project
	}
	if model := os.Getenv("TESTSMITH_MODEL"); model != "" {
		cfg.AI.Model = model
	}

	return cfg, nil
}

// Delay converts the configured inter-call delay to a duration.
func (c *Config) Delay() time.Duration {
	return time.Duration(c.Generator.DelayMs) * time.Millisecond
}
