package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"hr-assistant-be/pkg/llm"
)

const defaultEndpoint = "https://generativelanguage.googleapis.com/v1/models"

type GeminiProvider struct {
	APIKey    string
	ModelName string
	Endpoint  string
	Client    *http.Client
}

var _ llm.Provider = &GeminiProvider{}

func NewGeminiProvider(apiKey, modelName string) *GeminiProvider {
	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}
	return &GeminiProvider{
		APIKey:    apiKey,
		ModelName: modelName,
		Endpoint:  defaultEndpoint,
		Client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type geminiRequest struct {
	Contents          []geminiContent         `json:"contents"`
	SystemInstruction *geminiContent          `json:"systemInstruction,omitempty"`
	GenerationConfig  *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiCandidate struct {
	Content *geminiContent `json:"content"`
}

type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}

func (g *GeminiProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := &llm.Options{}
	for _, opt := range opts {
		opt(options)
	}

	payload := geminiRequest{}
	for _, msg := range history {
		switch msg.Role {
		case llm.RoleSystem:
			payload.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: msg.Content}}}
		case llm.RoleAssistant, "model":
			payload.Contents = append(payload.Contents, geminiContent{
				Role:  "model",
				Parts: []geminiPart{{Text: msg.Content}},
			})
		default:
			payload.Contents = append(payload.Contents, geminiContent{
				Role:  "user",
				Parts: []geminiPart{{Text: msg.Content}},
			})
		}
	}

	if options.Temperature > 0 || options.MaxTokens > 0 {
		payload.GenerationConfig = &geminiGenerationConfig{
			Temperature:     options.Temperature,
			MaxOutputTokens: options.MaxTokens,
		}
	}

	model := g.ModelName
	if options.Model != "" {
		model = options.Model
	}

	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent", g.Endpoint, model)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payloadJson))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("x-goog-api-key", g.APIKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := g.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: gemini request failed: %v", llm.ErrUpstream, err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read response: %v", llm.ErrUpstream, err)
	}

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: gemini status %d, body: %s", llm.ErrUpstream, res.StatusCode, string(resBody))
	}

	var geminiRes geminiResponse
	if err := json.Unmarshal(resBody, &geminiRes); err != nil {
		return "", fmt.Errorf("%w: unmarshal response: %v", llm.ErrUpstream, err)
	}

	if len(geminiRes.Candidates) == 0 || geminiRes.Candidates[0].Content == nil || len(geminiRes.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: gemini returned no candidates", llm.ErrUpstream)
	}

	return geminiRes.Candidates[0].Content.Parts[0].Text, nil
}

func (g *GeminiProvider) Complete(ctx context.Context, systemPrompt, userPrompt string, opts ...llm.Option) (string, error) {
	history := []llm.Message{
		{Role: llm.RoleSystem, Content: systemPrompt},
		{Role: llm.RoleUser, Content: userPrompt},
	}
	return g.Chat(ctx, history, opts...)
}
