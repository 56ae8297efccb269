package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/moverank/leadgen/internal/entity"
)

// Fallback values returned whenever scoring cannot produce a usable result.
// Lead intake must always come back with some score.
const (
	FallbackScore     = 50
	FallbackReasoning = "AI scoring failed. Manual review recommended."
)

// Client talks to an OpenAI-compatible chat-completions API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	logger     zerolog.Logger
}

func NewClient(baseURL, apiKey, model string, logger zerolog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		logger:     logger,
	}
}

// ScoreLead rates a lead's quality between 0 and 100 with a short reasoning.
// It never fails: any transport error, non-2xx status, malformed JSON or
// out-of-range score degrades to the fixed fallback.
func (c *Client) ScoreLead(ctx context.Context, lead *entity.Lead) (int, string) {
	score, reasoning, err := c.scoreLead(ctx, lead)
	if err != nil {
		c.logger.Error().Err(err).Str("lead_email", lead.Email).Msg("ai scoring failed, using fallback")
		return FallbackScore, FallbackReasoning
	}
	return score, reasoning
}

func (c *Client) scoreLead(ctx context.Context, lead *entity.Lead) (int, string, error) {
	payload := chatRequest{
		Model:          c.model,
		Messages:       []message{{Role: "user", Content: buildPrompt(lead)}},
		Temperature:    0.2,
		ResponseFormat: &responseFormat{Type: "json_object"},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return 0, "", fmt.Errorf("marshal chat request: %w", err)
	}

	url := c.baseURL + "/v1/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, "", fmt.Errorf("create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, "", fmt.Errorf("chat request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		return 0, "", fmt.Errorf("chat completions: status %d: %s", resp.StatusCode, string(respBody))
	}

	var chat chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chat); err != nil {
		return 0, "", fmt.Errorf("decode chat response: %w", err)
	}
	if len(chat.Choices) == 0 {
		return 0, "", fmt.Errorf("chat response has no choices")
	}

	var result scoreResult
	if err := json.Unmarshal([]byte(chat.Choices[0].Message.Content), &result); err != nil {
		return 0, "", fmt.Errorf("parse score json: %w", err)
	}
	if result.Score == nil {
		return 0, "", fmt.Errorf("score missing from model response")
	}
	if *result.Score < 0 || *result.Score > 100 {
		return 0, "", fmt.Errorf("score %d out of range", *result.Score)
	}

	reasoning := result.Reasoning
	if reasoning == "" {
		reasoning = "No reasoning provided."
	}
	return *result.Score, reasoning, nil
}

func buildPrompt(lead *entity.Lead) string {
	return fmt.Sprintf(`You are an expert AI lead scorer for the moving industry.
Analyze the following lead and assign a score between 0 and 100 based on the likelihood of booking and potential value.
Provide a brief reasoning for the score.

Lead Details:
- Name: %s
- Move Date: %s
- Origin: %s
- Destination: %s
- Home Size: %s
- Budget: %s
- Urgency: %s

Return your response in strictly valid JSON format like this:
{
    "score": 85,
    "reasoning": "High value move (4BR) with immediate urgency, though budget is tight."
}`,
		lead.FullName,
		lead.MoveDate,
		lead.OriginZip,
		lead.DestinationZip,
		lead.HomeSize,
		lead.Budget,
		lead.Urgency,
	)
}
