package llm

import "testing"

func TestNewOpenRouterProvider(t *testing.T) {
	if _, err := NewOpenRouterProvider(OpenRouterConfig{}); err == nil {
		t.Error("missing API key must be rejected")
	}

	p, err := NewOpenRouterProvider(OpenRouterConfig{
		APIKey: "test-key",
		Model:  "anthropic/claude-3.5-haiku",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Vendor-prefixed model IDs bypass the friendly-name table.
	if got := p.ModelID(); got != "anthropic/claude-3.5-haiku" {
		t.Errorf("ModelID() = %q, want passthrough", got)
	}
}

func TestConfigFromEnv_OpenRouter(t *testing.T) {
	t.Setenv("CODEROOM_LLM_PROVIDER", "openrouter")
	t.Setenv("CODEROOM_OPENROUTER_API_KEY", "env-key")
	t.Setenv("CODEROOM_OPENROUTER_MODEL", "meta-llama/llama-3.3-70b-instruct")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openrouter" {
		t.Fatalf("Provider = %q", cfg.Provider)
	}
	if cfg.OpenRouter.APIKey != "env-key" {
		t.Errorf("APIKey = %q", cfg.OpenRouter.APIKey)
	}
	if cfg.OpenRouter.Model != "meta-llama/llama-3.3-70b-instruct" {
		t.Errorf("Model = %q", cfg.OpenRouter.Model)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}

	cfg.OpenRouter.APIKey = ""
	if err := cfg.Validate(); err == nil {
		t.Error("openrouter without a key must fail validation")
	}
}
