package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiClient habla con la API GenerateContent nativa de Gemini.
type GeminiClient struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
	log     *logrus.Logger
}

func NewGeminiClient(apiKey, model string, log *logrus.Logger) *GeminiClient {
	return &GeminiClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
		log: log,
	}
}

// --------- Formato de la API ---------

type geminiRequest struct {
	Contents          []geminiContent    `json:"contents"`
	GenerationConfig  *generationConfig  `json:"generationConfig,omitempty"`
	SystemInstruction *systemInstruction `json:"systemInstruction,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type systemInstruction struct {
	Parts []geminiPart `json:"parts"`
}

type generationConfig struct {
	ResponseMIMEType string `json:"responseMimeType,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
}

// --------- Llamadas ---------

func (g *GeminiClient) GenerateText(ctx context.Context, system, prompt string) (string, error) {
	req := geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: &generationConfig{ResponseMIMEType: "application/json"},
	}
	if system != "" {
		req.SystemInstruction = &systemInstruction{
			Parts: []geminiPart{{Text: system}},
		}
	}

	return g.generate(ctx, req)
}

func (g *GeminiClient) GenerateVision(ctx context.Context, mimeType, imageB64, prompt string) (string, error) {
	req := geminiRequest{
		Contents: []geminiContent{
			{
				Role: "user",
				Parts: []geminiPart{
					{InlineData: &inlineData{MimeType: mimeType, Data: imageB64}},
					{Text: prompt},
				},
			},
		},
		GenerationConfig: &generationConfig{ResponseMIMEType: "application/json"},
	}

	return g.generate(ctx, req)
}

func (g *GeminiClient) generate(ctx context.Context, reqBody geminiRequest) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("gemini API key not configured")
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		g.log.WithFields(logrus.Fields{
			"status_code": resp.StatusCode,
			"model":       g.model,
		}).Error("error de la API de Gemini")
		return "", fmt.Errorf("gemini API error %d: %s", resp.StatusCode, string(body))
	}

	var parsed geminiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if len(parsed.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	var content string
	for _, part := range parsed.Candidates[0].Content.Parts {
		content += part.Text
	}
	if content == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return content, nil
}

// Compile-time interface check
var _ Generator = (*GeminiClient)(nil)
