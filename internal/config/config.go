// Package config loads and validates the application configuration.
//
// Configuration lives in a YAML file resolved in this order: an explicit
// --config path, ./config.yaml in the working directory, then
// ~/.maai/config.yaml. When no file exists the built-in defaults apply,
// so a bare checkout works without any setup beyond an API key.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// FileName is the config file looked up in the working directory.
	FileName = "config.yaml"
	// UserDir is the per-user directory under $HOME holding the fallback
	// config file.
	UserDir = ".maai"
	// HistoryFileName is the run-history database kept next to the user
	// config.
	HistoryFileName = "history.db"
)

// --- Providers ---

// Provider identifies a generation-service endpoint family. Every provider
// speaks the same chat-completion wire format; they differ only in base URL
// and API-key environment variable.
type Provider string

const (
	ProviderGrok       Provider = "grok"
	ProviderGroq       Provider = "groq"
	ProviderOpenRouter Provider = "openrouter"
)

var validProviders = map[Provider]bool{
	ProviderGrok:       true,
	ProviderGroq:       true,
	ProviderOpenRouter: true,
}

// ValidateProvider checks if a provider is recognized.
func ValidateProvider(p Provider) error {
	if !validProviders[p] {
		return fmt.Errorf("invalid provider: %q (valid: grok, groq, openrouter)", p)
	}
	return nil
}

// Preset carries the endpoint defaults for one provider.
type Preset struct {
	BaseURL   string
	APIKeyEnv string
}

var presets = map[Provider]Preset{
	ProviderGrok:       {BaseURL: "https://api.x.ai/v1", APIKeyEnv: "XAI_API_KEY"},
	ProviderGroq:       {BaseURL: "https://api.groq.com/openai/v1", APIKeyEnv: "GROQ_API_KEY"},
	ProviderOpenRouter: {BaseURL: "https://openrouter.ai/api/v1", APIKeyEnv: "OPENROUTER_API_KEY"},
}

// --- Reasoning Effort ---

// Effort is the reasoning-effort hint passed to models that support it.
// EffortNone omits the field from requests entirely.
type Effort string

const (
	EffortNone   Effort = "none"
	EffortLow    Effort = "low"
	EffortMedium Effort = "medium"
	EffortHigh   Effort = "high"
)

var validEfforts = map[Effort]bool{
	EffortNone:   true,
	EffortLow:    true,
	EffortMedium: true,
	EffortHigh:   true,
}

// ValidateEffort checks if a reasoning effort is recognized.
func ValidateEffort(e Effort) error {
	if !validEfforts[e] {
		return fmt.Errorf("invalid reasoning effort: %q (valid: none, low, medium, high)", e)
	}
	return nil
}

// --- Config ---

// LLMConfig selects the model and generation parameters.
type LLMConfig struct {
	Provider        Provider `yaml:"provider"`
	Model           string   `yaml:"model"`
	Temperature     float64  `yaml:"temperature"`
	ReasoningEffort Effort   `yaml:"reasoning_effort"`
	BaseURL         string   `yaml:"base_url,omitempty"`    // overrides the provider preset
	APIKeyEnv       string   `yaml:"api_key_env,omitempty"` // overrides the provider preset
}

// Config is the full application configuration.
type Config struct {
	LLM         LLMConfig `yaml:"llm"`
	ProjectsDir string    `yaml:"projects_dir"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{
		LLM: LLMConfig{
			Provider:        ProviderGrok,
			Model:           "grok-code-fast-1",
			Temperature:     0.7,
			ReasoningEffort: EffortNone,
		},
		ProjectsDir: "projects",
	}
}

// Validate checks every enum and range in the configuration.
func (c Config) Validate() error {
	if err := ValidateProvider(c.LLM.Provider); err != nil {
		return err
	}
	if err := ValidateEffort(c.LLM.ReasoningEffort); err != nil {
		return err
	}
	if c.LLM.Model == "" {
		return fmt.Errorf("model must not be empty")
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return fmt.Errorf("temperature %v out of range [0, 2]", c.LLM.Temperature)
	}
	if c.ProjectsDir == "" {
		return fmt.Errorf("projects_dir must not be empty")
	}
	return nil
}

// BaseURL returns the endpoint to call: the explicit override when set,
// otherwise the provider preset.
func (c Config) BaseURL() string {
	if c.LLM.BaseURL != "" {
		return c.LLM.BaseURL
	}
	return presets[c.LLM.Provider].BaseURL
}

// APIKeyEnv returns the environment variable holding the API key.
func (c Config) APIKeyEnv() string {
	if c.LLM.APIKeyEnv != "" {
		return c.LLM.APIKeyEnv
	}
	return presets[c.LLM.Provider].APIKeyEnv
}

// APIKey reads the API key from the environment. Empty when unset.
func (c Config) APIKey() string {
	return os.Getenv(c.APIKeyEnv())
}

// --- Loading ---

// Load resolves and parses the configuration. An explicit path must exist;
// otherwise the search order is ./config.yaml, then ~/.maai/config.yaml,
// then built-in defaults. File values are merged over the defaults, so a
// partial file only overrides what it names.
func Load(explicitPath string) (Config, error) {
	cfg := Default()

	path, err := resolvePath(explicitPath)
	if err != nil {
		return cfg, err
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

// UserPath returns ~/.maai/config.yaml.
func UserPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, UserDir, FileName), nil
}

// HistoryPath returns ~/.maai/history.db.
func HistoryPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, UserDir, HistoryFileName), nil
}

func resolvePath(explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("config %s: %w", explicitPath, err)
		}
		return explicitPath, nil
	}
	if _, err := os.Stat(FileName); err == nil {
		return FileName, nil
	}
	userPath, err := UserPath()
	if err != nil {
		return "", nil
	}
	if _, err := os.Stat(userPath); err == nil {
		return userPath, nil
	}
	return "", nil
}
