// Package insight is the best-effort façade over a natural-language model.
// Replies are opaque classifications: any transport, status, or parse
// failure degrades to ErrNoInsight and never alters the deterministic
// scoring outputs.
package insight

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/floodhub/wardwatch/internal/ward"
	"github.com/floodhub/wardwatch/internal/weather"
)

// ErrNoInsight means the model reply was missing or malformed.
var ErrNoInsight = errors.New("no insight available")

// Insight is one actionable mitigation suggestion for a ward.
type Insight struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Severity string `json:"severity"`
}

type InsightSet struct {
	Insights []Insight `json:"insights"`
}

// RainRisk is the model's free-form rain safety classification.
type RainRisk struct {
	Risk    string   `json:"risk"`
	Summary string   `json:"summary"`
	Actions []string `json:"actions"`
	Advice  string   `json:"advice"`
}

type Client interface {
	WardInsights(ctx context.Context, district ward.DistrictRecord, zones []ward.HazardZone) (*InsightSet, error)
	RainRisk(ctx context.Context, snapshot *weather.Snapshot) (*RainRisk, error)
}

type HTTPClient struct {
	baseURL    string
	key        string
	model      string
	httpClient *http.Client
}

func NewHTTPClient(baseURL, key, model string) *HTTPClient {
	return &HTTPClient{
		baseURL:    baseURL,
		key:        key,
		model:      model,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

const insightsPrompt = `You are an expert urban flood risk analyst.

Generate 4 to 6 actionable insights for flood/waterlogging risk mitigation.
Return ONLY JSON in this format:

{
  "insights": [
    { "title": "...", "subtitle": "...", "severity": "LOW|MEDIUM|HIGH|CRITICAL" }
  ]
}

Ward Data:
%s

Nearby flood zones (if any):
%s
`

const rainRiskPrompt = `You are a rain safety assistant.

Classify the rain risk as SAFE, NORMAL, CRUCIAL, or DANGEROUS and suggest
precautions. Return ONLY JSON in this format:

{
  "risk": "SAFE|NORMAL|CRUCIAL|DANGEROUS",
  "summary": "...",
  "actions": ["..."],
  "advice": "..."
}

Weather:
%s
`

func (c *HTTPClient) WardInsights(ctx context.Context, district ward.DistrictRecord, zones []ward.HazardZone) (*InsightSet, error) {
	wardJSON, _ := json.MarshalIndent(district, "", "  ")
	zonesJSON, _ := json.MarshalIndent(zones, "", "  ")

	content, err := c.complete(ctx, fmt.Sprintf(insightsPrompt, wardJSON, zonesJSON))
	if err != nil {
		return nil, err
	}

	var set InsightSet
	if err := json.Unmarshal([]byte(content), &set); err != nil {
		return nil, fmt.Errorf("%w: unparseable reply", ErrNoInsight)
	}
	return &set, nil
}

func (c *HTTPClient) RainRisk(ctx context.Context, snapshot *weather.Snapshot) (*RainRisk, error) {
	weatherJSON, _ := json.MarshalIndent(snapshot, "", "  ")

	content, err := c.complete(ctx, fmt.Sprintf(rainRiskPrompt, weatherJSON))
	if err != nil {
		return nil, err
	}

	var rr RainRisk
	if err := json.Unmarshal([]byte(content), &rr); err != nil {
		return nil, fmt.Errorf("%w: unparseable reply", ErrNoInsight)
	}
	return &rr, nil
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// complete runs one chat completion and returns the first choice's content.
func (c *HTTPClient) complete(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: "Return ONLY valid JSON. No markdown. No extra text."},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.4,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoInsight, err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/v1/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoInsight, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.key != "" {
		req.Header.Set("Authorization", "Bearer "+c.key)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoInsight, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoInsight, err)
	}
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("%w: model status %d", ErrNoInsight, resp.StatusCode)
	}

	var cr chatResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoInsight, err)
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("%w: empty reply", ErrNoInsight)
	}
	return cr.Choices[0].Message.Content, nil
}
