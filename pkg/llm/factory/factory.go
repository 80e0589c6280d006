package factory

import (
	"fmt"

	"hr-assistant-be/pkg/llm"
	"hr-assistant-be/pkg/llm/gemini"
	"hr-assistant-be/pkg/llm/ollama"
)

func NewProvider(providerType, modelName, baseURL, geminiKey string) (llm.Provider, error) {
	switch providerType {
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	case "gemini":
		if geminiKey == "" {
			return nil, fmt.Errorf("gemini provider requires an API key")
		}
		return gemini.NewGeminiProvider(geminiKey, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
