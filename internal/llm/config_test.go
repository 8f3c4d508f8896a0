package llm

import "testing"

func TestGetModel_ConfiguredTier(t *testing.T) {
	config := DefaultGeminiConfig()
	if model := config.GetModel(TierStandard); model != "gemini-2.5-flash" {
		t.Errorf("GetModel(TierStandard) = %q, want gemini-2.5-flash", model)
	}
}

func TestGetModel_FallbackChain(t *testing.T) {
	config := &Config{
		Provider: ProviderGemini,
		Models:   map[ModelTier]string{TierLite: "lite-model"},
	}
	if model := config.GetModel(TierAdvanced); model != "lite-model" {
		t.Errorf("GetModel(TierAdvanced) = %q, want fallback lite-model", model)
	}
}

func TestGetModel_NoModels(t *testing.T) {
	config := &Config{Provider: ProviderGemini, Models: map[ModelTier]string{}}
	if model := config.GetModel(TierStandard); model != "" {
		t.Errorf("GetModel() = %q, want empty string", model)
	}
}

func TestWithModel_DoesNotMutateOriginal(t *testing.T) {
	original := DefaultGeminiConfig()
	derived := original.WithModel(TierStandard, "custom-model")

	if derived.GetModel(TierStandard) != "custom-model" {
		t.Errorf("derived config missing override")
	}
	if original.GetModel(TierStandard) != "gemini-2.5-flash" {
		t.Errorf("WithModel mutated the original config")
	}
}

func TestNewGeminiClient_RequiresAPIKey(t *testing.T) {
	if _, err := NewGeminiClient(t.Context(), DefaultConfig(), ""); err == nil {
		t.Error("expected error when API key is empty")
	}
}
