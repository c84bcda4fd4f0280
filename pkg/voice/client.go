package voice

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client provisions conversational-agent sessions for the voice interview.
// The provider returns a signed WebSocket URL the browser connects to
// directly; the backend never proxies audio.
type Client struct {
	baseURL    string
	apiKey     string
	agentID    string
	httpClient *http.Client
}

// AgentSession is the provisioned voice session handed to the frontend
type AgentSession struct {
	SignedURL string `json:"signed_url"`
	AgentID   string `json:"agent_id"`
	ExpiresAt int64  `json:"expires_at"`
}

func NewClient(baseURL, apiKey, agentID string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		agentID: agentID,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// IsConfigured reports whether the voice provider is set up
func (c *Client) IsConfigured() bool {
	return c.baseURL != "" && c.agentID != ""
}

// StartSession requests a signed conversation URL for the agent
func (c *Client) StartSession(ctx context.Context) (*AgentSession, error) {
	if !c.IsConfigured() {
		return nil, fmt.Errorf("voice: provider not configured")
	}

	url := fmt.Sprintf("%s/v1/convai/conversation/get_signed_url?agent_id=%s", c.baseURL, c.agentID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("voice: build request: %w", err)
	}
	req.Header.Set("xi-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("voice: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("voice: unexpected status %d", resp.StatusCode)
	}

	var session AgentSession
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("voice: decode response: %w", err)
	}
	session.AgentID = c.agentID
	return &session, nil
}
