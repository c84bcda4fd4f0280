package docverify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client calls the external document-verification service for ID OCR and
// selfie face matching. Failures are expected to be treated as non-fatal
// by callers; submissions fall back to manual review.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// FaceMatchRequest compares a selfie against an ID document photo
type FaceMatchRequest struct {
	IDDocumentURL string `json:"id_document_url"`
	SelfieURL     string `json:"selfie_url"`
}

// FaceMatchResult is the verification service's scored response
type FaceMatchResult struct {
	Match      bool    `json:"match"`
	Score      float64 `json:"score"` // 0.0 - 1.0
	DocumentOK bool    `json:"document_ok"`
	Reason     string  `json:"reason,omitempty"`
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// IsConfigured reports whether the service endpoint is set
func (c *Client) IsConfigured() bool {
	return c.baseURL != ""
}

// FaceMatch submits a selfie/document pair for comparison
func (c *Client) FaceMatch(ctx context.Context, req FaceMatchRequest) (*FaceMatchResult, error) {
	if !c.IsConfigured() {
		return nil, fmt.Errorf("docverify: service not configured")
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("docverify: marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/face-match", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("docverify: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("docverify: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("docverify: unexpected status %d", resp.StatusCode)
	}

	var result FaceMatchResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("docverify: decode response: %w", err)
	}
	return &result, nil
}
