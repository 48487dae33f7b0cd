package factory

import (
	"fmt"

	"ai-counseling-be/pkg/llm"
	"ai-counseling-be/pkg/llm/gemini"
)

func NewLLMProvider(providerType, modelName, apiKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "gemini":
		if apiKey == "" {
			return nil, fmt.Errorf("gemini provider requires an API key")
		}
		return gemini.NewProvider(apiKey, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
