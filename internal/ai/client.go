package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mastersolis/marketing-api/internal/config"
)

// Fallback is returned whenever the generation call fails for any reason.
// Callers never see an error; dependent features degrade to this string.
const Fallback = "Content generation temporarily unavailable."

// Generator produces text for a prompt within a token budget
type Generator interface {
	Generate(ctx context.Context, prompt string, maxTokens int) string
}

// Client calls the HuggingFace text-generation inference API
type Client struct {
	url        string
	apiKey     string
	httpClient *http.Client
	log        zerolog.Logger
}

// Verify interface compliance
var _ Generator = (*Client)(nil)

// NewClient creates a new generation client for the configured model
func NewClient(cfg *config.AIConfig, log zerolog.Logger) *Client {
	return &Client{
		url:        cfg.InferenceURL(),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        log.With().Str("component", "ai").Logger(),
	}
}

type generationRequest struct {
	Inputs     string               `json:"inputs"`
	Parameters generationParameters `json:"parameters"`
}

type generationParameters struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	Temperature    float64 `json:"temperature"`
	TopP           float64 `json:"top_p"`
	ReturnFullText bool    `json:"return_full_text"`
}

type generationResult struct {
	GeneratedText string `json:"generated_text"`
}

// Generate performs one inference call and returns the generated text.
// Any transport, HTTP, or decode failure yields the fixed Fallback string.
func (c *Client) Generate(ctx context.Context, prompt string, maxTokens int) string {
	text, err := c.generate(ctx, prompt, maxTokens)
	if err != nil {
		c.log.Error().Err(err).Msg("AI generation failed")
		return Fallback
	}
	return text
}

func (c *Client) generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	body, err := json.Marshal(generationRequest{
		Inputs: prompt,
		Parameters: generationParameters{
			MaxNewTokens:   maxTokens,
			Temperature:    0.7,
			TopP:           0.9,
			ReturnFullText: false,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("inference request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("inference API returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var results []generationResult
	if err := json.Unmarshal(respBody, &results); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(results) == 0 {
		return "", fmt.Errorf("inference API returned no results")
	}

	return strings.TrimSpace(results[0].GeneratedText), nil
}
