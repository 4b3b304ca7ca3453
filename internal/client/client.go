// Package client is the HTTP client for the analyze-scan API, used by the
// CLI in place of the browser page.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/osteovision/osteovision/internal/domain/analysis"
)

// ErrNoAnalysis indicates a success envelope without an analysis payload.
var ErrNoAnalysis = errors.New("no analysis data received")

type Client struct {
	BaseURL string
	httpc   *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		httpc:   &http.Client{Timeout: 120 * time.Second},
	}
}

type analyzeRequest struct {
	ImageBase64 string `json:"imageBase64"`
	ScanType    string `json:"scanType,omitempty"`
}

type analyzeEnvelope struct {
	Analysis json.RawMessage `json:"analysis"`
	Error    string          `json:"error"`
}

// AnalyzeScan posts the scan and decodes the response envelope. Failures of
// any kind come back as a single error; an unparseable-reply payload comes
// back as a soft-failure Outcome, not an error.
func (c *Client) AnalyzeScan(ctx context.Context, imageBase64, scanType string) (analysis.Outcome, error) {
	body, err := json.Marshal(analyzeRequest{ImageBase64: imageBase64, ScanType: scanType})
	if err != nil {
		return analysis.Outcome{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/analyze-scan", bytes.NewReader(body))
	if err != nil {
		return analysis.Outcome{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return analysis.Outcome{}, fmt.Errorf("failed to analyze scan: %w", err)
	}
	defer resp.Body.Close()

	var env analyzeEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return analysis.Outcome{}, fmt.Errorf("bad response from server (status %d): %w", resp.StatusCode, err)
	}
	if env.Error != "" {
		return analysis.Outcome{}, errors.New(env.Error)
	}
	if resp.StatusCode != http.StatusOK {
		return analysis.Outcome{}, fmt.Errorf("server returned status %d", resp.StatusCode)
	}
	if len(env.Analysis) == 0 {
		return analysis.Outcome{}, ErrNoAnalysis
	}

	// An unparseable upstream reply still arrives under HTTP 200, flagged
	// explicitly.
	var probe analysis.RawPayload
	if err := json.Unmarshal(env.Analysis, &probe); err == nil && probe.ParseError {
		return analysis.Outcome{Raw: probe.RawResponse, ParseError: true}, nil
	}

	var rep analysis.Report
	if err := json.Unmarshal(env.Analysis, &rep); err != nil {
		return analysis.Outcome{}, fmt.Errorf("bad analysis payload: %w", err)
	}
	return analysis.Outcome{Report: &rep}, nil
}
