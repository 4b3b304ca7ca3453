package ai

import "context"

// Client is the outbound port to the hosted multimodal model. Analyze submits
// a base64-encoded scan image with an optional scan-type hint and returns the
// assistant's raw text reply.
type Client interface {
	Analyze(ctx context.Context, imageBase64, scanType string) (string, error)
}
