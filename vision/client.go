// Package vision asks an OpenAI-compatible vision endpoint to predict
// visual attention points for an image. It is thin request/response glue
// around the overlay renderer's upstream collaborator; the returned point
// data is passed through as-is, data quality included.
package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shikhamishra379/Amazon-HeatMap-Studio/attention"
)

// ErrNoPoints is returned when the model answers with an empty point list.
var ErrNoPoints = errors.New("vision: model returned no attention points")

// prompt instructs the model to return strict JSON the client can parse.
const prompt = `You are a visual attention model. Given the product image, predict where a
first-time viewer's attention lands, in order. Respond with strict JSON only:
{"points":[{"order":1,"x":50.0,"y":50.0,"intensity":0.9,"label":"short description"}]}
where x and y are percentages of image width and height (origin top-left) and
intensity is in [0,1]. Return between 3 and 8 points.`

// Config holds the endpoint settings for the vision client.
type Config struct {
	BaseURL string
	Model   string
	APIKey  string
	Timeout time.Duration
}

// Client calls the chat completions endpoint. Safe for concurrent use.
type Client struct {
	cfg  Config
	http *http.Client
}

// NewClient creates a vision client for the configured endpoint.
func NewClient(cfg Config) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

// Predict sends the image and returns the model's attention points.
// The context bounds the whole call; transport, status and parse failures
// are returned as wrapped errors. Point values are passed through as
// delivered; out-of-range data is the model's data-quality problem, not a
// client fault.
func (c *Client) Predict(ctx context.Context, img []byte, contentType string) (attention.Set, error) {
	reqBody := chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{{
			Role: "user",
			Content: []contentPart{
				{Type: "text", Text: prompt},
				{Type: "image_url", ImageURL: &imageURL{URL: dataURL(img, contentType)}},
			},
		}},
		Temperature: 0.2,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("vision: encoding request: %w", err)
	}

	url := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("vision: building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("vision: calling %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("vision: reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("vision: endpoint returned %s: %s", resp.Status, snippet(body))
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("vision: decoding response: %w", err)
	}
	if parsed.Error != nil {
		return nil, fmt.Errorf("vision: endpoint error: %s", parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return nil, errors.New("vision: response contained no choices")
	}

	return parsePoints(parsed.Choices[0].Message.Content)
}

// parsePoints extracts the point list from the model's answer, tolerating a
// fenced ```json block around the payload.
func parsePoints(content string) (attention.Set, error) {
	var payload pointsPayload
	if err := json.Unmarshal([]byte(stripFence(content)), &payload); err != nil {
		return nil, fmt.Errorf("vision: parsing model answer: %w", err)
	}
	if len(payload.Points) == 0 {
		return nil, ErrNoPoints
	}
	return payload.Points, nil
}

// stripFence removes a surrounding markdown code fence, if present.
func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// dataURL encodes the image bytes as a base64 data URL.
func dataURL(img []byte, contentType string) string {
	if contentType == "" {
		contentType = "image/png"
	}
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(img)
}

// snippet truncates a response body for error messages.
func snippet(body []byte) string {
	const max = 200
	s := strings.TrimSpace(string(body))
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
