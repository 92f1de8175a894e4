// Package recommendation asks an external model for candidate venues.
package recommendation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rachmurali02/social-app/internal/domain"
)

const (
	defaultBaseURL   = "https://api.anthropic.com"
	defaultModel     = "claude-sonnet-4-20250514"
	defaultMaxTokens = 1000
	apiVersion       = "2023-06-01"
	batchSize        = 2
)

type Config struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

// Client talks to the Anthropic Messages API with the web search tool
// enabled and expects a bare JSON array of options back.
type Client struct {
	cfg  Config
	http *http.Client
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = defaultMaxTokens
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Client{cfg: cfg, http: &http.Client{Timeout: cfg.Timeout}}
}

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
	Tools     []tool    `json:"tools"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type tool struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// Recommend returns the parsed batch. Every failure, including a missing
// API key, is reported as domain.ErrUpstreamFailure.
func (c *Client) Recommend(ctx context.Context, q domain.RecommendationQuery) ([]domain.Option, error) {
	if c.cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: api key not configured", domain.ErrUpstreamFailure)
	}

	body, err := json.Marshal(messagesRequest{
		Model:     c.cfg.Model,
		MaxTokens: c.cfg.MaxTokens,
		Messages:  []message{{Role: "user", Content: Prompt(q)}},
		Tools:     []tool{{Type: "web_search_20250305", Name: "web_search"}},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(c.cfg.BaseURL, "/")+"/v1/messages", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", domain.ErrUpstreamFailure, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.cfg.APIKey)
	req.Header.Set("anthropic-version", apiVersion)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamFailure, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", domain.ErrUpstreamFailure, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", domain.ErrUpstreamFailure, resp.StatusCode)
	}

	var decoded messagesResponse
	if err = json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrUpstreamFailure, err)
	}

	var text []string
	for _, block := range decoded.Content {
		if block.Type == "text" {
			text = append(text, block.Text)
		}
	}

	return ParseOptions(strings.Join(text, "\n"))
}

// ParseOptions extracts the JSON array from model output, tolerating code
// fences and prose around it.
func ParseOptions(text string) ([]domain.Option, error) {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	text = strings.TrimSpace(text)

	start, end := strings.Index(text, "["), strings.LastIndex(text, "]")
	if start < 0 || end < start {
		return nil, fmt.Errorf("%w: no JSON array in response", domain.ErrUpstreamFailure)
	}

	var opts []domain.Option
	if err := json.Unmarshal([]byte(text[start:end+1]), &opts); err != nil {
		return nil, fmt.Errorf("%w: parse options: %v", domain.ErrUpstreamFailure, err)
	}

	out := opts[:0]
	for _, o := range opts {
		if strings.TrimSpace(o.Name) != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: empty options", domain.ErrUpstreamFailure)
	}
	return out, nil
}

func Prompt(q domain.RecommendationQuery) string {
	exclude := "none"
	if len(q.Exclude) > 0 {
		exclude = strings.Join(q.Exclude, ", ")
	}

	var b strings.Builder
	if len(q.Exclude) > 0 {
		fmt.Fprintf(&b, "Find %d FRESH/NEW places (different from before):\n", batchSize)
	} else {
		fmt.Fprintf(&b, "Find %d places for this activity:\n", batchSize)
	}
	fmt.Fprintf(&b, "Location: %s\n", q.Preferences.Location)
	fmt.Fprintf(&b, "Radius: %gkm\n", q.Preferences.Radius)
	fmt.Fprintf(&b, "Time: %s\n", q.Preferences.Time)
	fmt.Fprintf(&b, "Activity: %s\n", q.Preferences.Activity)
	fmt.Fprintf(&b, "Exclude: %s\n", exclude)
	b.WriteString(`Return ONLY valid JSON (no markdown):
[{
  "name": "Place Name",
  "address": "Full Address",
  "rating": 4.5,
  "popularity": "80% of users pick this",
  "reason": "Why this place",
  "mapUrl": "https://maps.google.com/?q=Place+Name+Address",
  "isRecommended": true
}]`)
	return b.String()
}
