package ai

import "errors"

// ErrRateLimited indicates the gateway returned HTTP 429.
var ErrRateLimited = errors.New("ai rate limit exceeded")

// ErrQuotaExhausted indicates the gateway returned HTTP 402 (credits used up).
var ErrQuotaExhausted = errors.New("ai credits exhausted")

// ErrNotConfigured indicates the gateway credential is missing. Fatal for the
// request, not for the process.
var ErrNotConfigured = errors.New("ai gateway credential not configured")

// ErrTimeout indicates the upstream call exceeded its deadline.
var ErrTimeout = errors.New("ai gateway request timed out")

// ErrEmptyReply indicates the gateway responded without an assistant message.
var ErrEmptyReply = errors.New("no response from AI model")
