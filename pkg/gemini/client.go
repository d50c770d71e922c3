// Package gemini wraps the Gemini generateContent API with web-search
// grounding for the storefront assistant.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	pkgerrors "github.com/nexlyn/storefront-backend/pkg/errors"
	"github.com/nexlyn/storefront-backend/pkg/types"
)

const (
	defaultBaseURL             = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel               = "gemini-3-flash-preview"
	responseBodyReadLimit int64 = 1024

	// idleText is returned when the model answers with no text parts at all.
	idleText = "Connection stable, awaiting next transmission."
)

const systemInstruction = `You are the Nexlyn AI Master Architect. Expertise: MikroTik hardware, RouterOS v7, global distribution, and high-density networking.
You assist customers with technical specifications, deployment advice, and regional availability.
Maintain a premium, helpful, and professional persona.`

var errAPIKeyRequired = errors.New("gemini api key is required")

// Client calls the Gemini API on behalf of the chat assistant.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBaseURL overrides the configured Gemini base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		trimmed := strings.TrimSpace(baseURL)
		if trimmed != "" {
			c.baseURL = trimmed
		}
	}
}

// WithModel overrides the model used for assistant turns.
func WithModel(model string) Option {
	return func(c *Client) {
		trimmed := strings.TrimSpace(model)
		if trimmed != "" {
			c.model = trimmed
		}
	}
}

// NewClient builds the Gemini client given an API key.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	trimmedKey := strings.TrimSpace(apiKey)
	if trimmedKey == "" {
		return nil, errAPIKeyRequired
	}

	client := &Client{
		apiKey:     trimmedKey,
		baseURL:    defaultBaseURL,
		model:      defaultModel,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	return client, nil
}

// Answer is a grounded assistant reply.
type Answer struct {
	Text    string
	Sources []types.Source
}

// SearchTech asks the model a single question with Google Search grounding
// enabled and returns the answer text plus any web sources the model cited.
func (c *Client) SearchTech(ctx context.Context, prompt string) (*Answer, error) {
	if c == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "gemini client not configured")
	}
	if strings.TrimSpace(prompt) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "prompt is required")
	}

	body := generateContentRequest{
		Contents: []content{{
			Role:  "user",
			Parts: []part{{Text: prompt}},
		}},
		SystemInstruction: &content{
			Parts: []part{{Text: systemInstruction}},
		},
		Tools: []tool{{GoogleSearch: map[string]any{}}},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "marshal generate request")
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?%s",
		strings.TrimRight(c.baseURL, "/"),
		url.PathEscape(c.model),
		url.Values{"key": {c.apiKey}}.Encode())

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build generate request")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "execute generate request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, responseBodyReadLimit))
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg))), "generate request failed")
	}

	var apiResp generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode generate response")
	}

	return mapAnswer(apiResp), nil
}

type generateContentRequest struct {
	Contents          []content `json:"contents"`
	SystemInstruction *content  `json:"systemInstruction,omitempty"`
	Tools             []tool    `json:"tools,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text,omitempty"`
}

type tool struct {
	GoogleSearch map[string]any `json:"google_search,omitempty"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
		GroundingMetadata struct {
			GroundingChunks []struct {
				Web *struct {
					URI   string `json:"uri"`
					Title string `json:"title"`
				} `json:"web"`
			} `json:"groundingChunks"`
		} `json:"groundingMetadata"`
	} `json:"candidates"`
}

func mapAnswer(resp generateContentResponse) *Answer {
	answer := &Answer{Sources: []types.Source{}}

	if len(resp.Candidates) == 0 {
		answer.Text = idleText
		return answer
	}

	candidate := resp.Candidates[0]

	var builder strings.Builder
	for _, p := range candidate.Content.Parts {
		builder.WriteString(p.Text)
	}
	answer.Text = builder.String()
	if answer.Text == "" {
		answer.Text = idleText
	}

	for _, chunk := range candidate.GroundingMetadata.GroundingChunks {
		if chunk.Web == nil {
			continue
		}
		title := chunk.Web.Title
		if title == "" {
			title = "Source"
		}
		answer.Sources = append(answer.Sources, types.Source{
			Title: title,
			URI:   chunk.Web.URI,
		})
	}

	return answer
}
