package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"ai-counseling-be/pkg/llm"
)

type chatPart struct {
	Text string `json:"text"`
}

type chatContent struct {
	Parts []chatPart `json:"parts"`
	Role  string     `json:"role,omitempty"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type chatRequest struct {
	SystemInstruction *chatContent      `json:"system_instruction,omitempty"`
	Contents          []chatContent     `json:"contents"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type chatCandidate struct {
	Content *chatContent `json:"content"`
}

type chatResponse struct {
	Candidates []chatCandidate `json:"candidates"`
}

// Provider calls the Gemini generateContent REST API.
type Provider struct {
	apiKey string
	model  string
	client *http.Client
}

func NewProvider(apiKey, model string) *Provider {
	if model == "" {
		model = "gemini-2.0-flash-exp"
	}
	return &Provider{
		apiKey: apiKey,
		model:  model,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (p *Provider) Chat(ctx context.Context, system string, history []llm.Message, options ...llm.Option) (string, error) {
	opts := &llm.Options{}
	for _, o := range options {
		o(opts)
	}

	contents := make([]chatContent, 0, len(history))
	for _, msg := range history {
		contents = append(contents, chatContent{
			Parts: []chatPart{{Text: msg.Content}},
			Role:  msg.Role,
		})
	}

	payload := chatRequest{
		Contents: contents,
	}
	if system != "" {
		payload.SystemInstruction = &chatContent{Parts: []chatPart{{Text: system}}}
	}
	if opts.Temperature > 0 || opts.MaxTokens > 0 {
		payload.GenerationConfig = &generationConfig{
			Temperature:     opts.Temperature,
			MaxOutputTokens: opts.MaxTokens,
		}
	}

	model := p.model
	if opts.Model != "" {
		model = opts.Model
	}

	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent", model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(payloadJson))
	if err != nil {
		return "", err
	}

	req.Header.Set("x-goog-api-key", p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf(
			"status error, got status %d. with response body %s",
			res.StatusCode,
			string(resBody),
		)
	}

	var geminiRes chatResponse
	if err := json.Unmarshal(resBody, &geminiRes); err != nil {
		return "", err
	}

	if len(geminiRes.Candidates) == 0 ||
		geminiRes.Candidates[0].Content == nil ||
		len(geminiRes.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	return geminiRes.Candidates[0].Content.Parts[0].Text, nil
}

func (p *Provider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return p.Chat(ctx, "", []llm.Message{{Role: llm.RoleUser, Content: prompt}}, options...)
}
