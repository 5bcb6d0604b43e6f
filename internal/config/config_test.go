package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir failed: %v", err)
	}
	t.Cleanup(func() { os.Chdir(old) })
}

// isolate points HOME and the working directory at empty temp dirs so no
// real config file can leak into a test.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())
}

// --- Defaults and Validation ---

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
	if cfg.LLM.Provider != ProviderGrok {
		t.Errorf("Provider = %s, want grok", cfg.LLM.Provider)
	}
	if cfg.ProjectsDir != "projects" {
		t.Errorf("ProjectsDir = %s, want projects", cfg.ProjectsDir)
	}
}

func TestValidateProvider(t *testing.T) {
	for _, p := range []Provider{ProviderGrok, ProviderGroq, ProviderOpenRouter} {
		if err := ValidateProvider(p); err != nil {
			t.Errorf("ValidateProvider(%s) = %v, want nil", p, err)
		}
	}
	if err := ValidateProvider(Provider("openai")); err == nil {
		t.Error("ValidateProvider should reject unknown providers")
	}
}

func TestValidateEffort(t *testing.T) {
	for _, e := range []Effort{EffortNone, EffortLow, EffortMedium, EffortHigh} {
		if err := ValidateEffort(e); err != nil {
			t.Errorf("ValidateEffort(%s) = %v, want nil", e, err)
		}
	}
	if err := ValidateEffort(Effort("max")); err == nil {
		t.Error("ValidateEffort should reject unknown efforts")
	}
}

func TestValidate_TemperatureRange(t *testing.T) {
	cfg := Default()

	cfg.LLM.Temperature = 2.0
	if err := cfg.Validate(); err != nil {
		t.Errorf("temperature 2.0 should be valid: %v", err)
	}

	cfg.LLM.Temperature = 2.5
	if err := cfg.Validate(); err == nil {
		t.Error("temperature 2.5 should be rejected")
	}

	cfg.LLM.Temperature = -0.1
	if err := cfg.Validate(); err == nil {
		t.Error("negative temperature should be rejected")
	}
}

// --- Provider Resolution ---

func TestBaseURL_Presets(t *testing.T) {
	tests := []struct {
		provider Provider
		want     string
	}{
		{ProviderGrok, "https://api.x.ai/v1"},
		{ProviderGroq, "https://api.groq.com/openai/v1"},
		{ProviderOpenRouter, "https://openrouter.ai/api/v1"},
	}

	for _, tt := range tests {
		cfg := Default()
		cfg.LLM.Provider = tt.provider
		if got := cfg.BaseURL(); got != tt.want {
			t.Errorf("BaseURL(%s) = %s, want %s", tt.provider, got, tt.want)
		}
	}
}

func TestBaseURL_OverrideWins(t *testing.T) {
	cfg := Default()
	cfg.LLM.BaseURL = "http://localhost:8080/v1"
	if got := cfg.BaseURL(); got != "http://localhost:8080/v1" {
		t.Errorf("BaseURL = %s, want the override", got)
	}
}

func TestAPIKeyEnv_Presets(t *testing.T) {
	tests := []struct {
		provider Provider
		want     string
	}{
		{ProviderGrok, "XAI_API_KEY"},
		{ProviderGroq, "GROQ_API_KEY"},
		{ProviderOpenRouter, "OPENROUTER_API_KEY"},
	}

	for _, tt := range tests {
		cfg := Default()
		cfg.LLM.Provider = tt.provider
		if got := cfg.APIKeyEnv(); got != tt.want {
			t.Errorf("APIKeyEnv(%s) = %s, want %s", tt.provider, got, tt.want)
		}
	}
}

func TestAPIKey_ReadsEnvironment(t *testing.T) {
	cfg := Default()
	cfg.LLM.APIKeyEnv = "MAAI_TEST_KEY"
	t.Setenv("MAAI_TEST_KEY", "sk-test-123")

	if got := cfg.APIKey(); got != "sk-test-123" {
		t.Errorf("APIKey = %s, want sk-test-123", got)
	}
}

// --- Load ---

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.LLM.Model != "grok-code-fast-1" {
		t.Errorf("Model = %s, want the default", cfg.LLM.Model)
	}
}

func TestLoad_ExplicitPath(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := "llm:\n  provider: groq\n  model: llama-3.3-70b\n  temperature: 0.2\n  reasoning_effort: low\nprojects_dir: workspaces\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.LLM.Provider != ProviderGroq {
		t.Errorf("Provider = %s, want groq", cfg.LLM.Provider)
	}
	if cfg.LLM.Model != "llama-3.3-70b" {
		t.Errorf("Model = %s, want llama-3.3-70b", cfg.LLM.Model)
	}
	if cfg.ProjectsDir != "workspaces" {
		t.Errorf("ProjectsDir = %s, want workspaces", cfg.ProjectsDir)
	}
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load should fail when the explicit path does not exist")
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	isolate(t)

	if err := os.WriteFile(FileName, []byte("llm:\n  model: custom-model\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.LLM.Model != "custom-model" {
		t.Errorf("Model = %s, want custom-model", cfg.LLM.Model)
	}
	if cfg.LLM.Provider != ProviderGrok {
		t.Errorf("Provider = %s, defaults should survive a partial file", cfg.LLM.Provider)
	}
	if cfg.ProjectsDir != "projects" {
		t.Errorf("ProjectsDir = %s, defaults should survive a partial file", cfg.ProjectsDir)
	}
}

func TestLoad_UserFileFallback(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, t.TempDir())

	userPath := filepath.Join(home, UserDir, FileName)
	if err := os.MkdirAll(filepath.Dir(userPath), 0o755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := os.WriteFile(userPath, []byte("llm:\n  provider: openrouter\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.LLM.Provider != ProviderOpenRouter {
		t.Errorf("Provider = %s, want openrouter from the user file", cfg.LLM.Provider)
	}
}

func TestLoad_WorkingDirBeatsUserFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	userPath := filepath.Join(home, UserDir, FileName)
	if err := os.MkdirAll(filepath.Dir(userPath), 0o755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := os.WriteFile(userPath, []byte("llm:\n  model: from-home\n"), 0o644); err != nil {
		t.Fatalf("writing user config: %v", err)
	}

	work := t.TempDir()
	if err := os.WriteFile(filepath.Join(work, FileName), []byte("llm:\n  model: from-cwd\n"), 0o644); err != nil {
		t.Fatalf("writing local config: %v", err)
	}
	chdir(t, work)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.LLM.Model != "from-cwd" {
		t.Errorf("Model = %s, working-directory config should win", cfg.LLM.Model)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	isolate(t)

	if err := os.WriteFile(FileName, []byte("llm: [not: valid"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	_, err := Load("")
	if err == nil {
		t.Fatal("Load should fail on malformed YAML")
	}
	if !strings.Contains(err.Error(), "parsing config") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoad_InvalidValuesRejected(t *testing.T) {
	isolate(t)

	if err := os.WriteFile(FileName, []byte("llm:\n  provider: openai\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	_, err := Load("")
	if err == nil {
		t.Fatal("Load should reject an unknown provider")
	}
	if !strings.Contains(err.Error(), "invalid provider") {
		t.Errorf("unexpected error: %v", err)
	}
}

// --- Save ---

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	original := Default()
	original.LLM.Model = "saved-model"
	original.LLM.Temperature = 1.1

	if err := Save(path, original); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.LLM.Model != "saved-model" {
		t.Errorf("Model = %s, want saved-model", loaded.LLM.Model)
	}
	if loaded.LLM.Temperature != 1.1 {
		t.Errorf("Temperature = %v, want 1.1", loaded.LLM.Temperature)
	}
}
