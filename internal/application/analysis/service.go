package analysis

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/osteovision/osteovision/internal/domain/ai"
	domain "github.com/osteovision/osteovision/internal/domain/analysis"
	"github.com/osteovision/osteovision/internal/infra/ai/reply"
	"github.com/osteovision/osteovision/internal/logger"
)

// ErrNoImage is returned when a request carries no image payload.
var ErrNoImage = errors.New("no image provided")

// Service implements the analyze-scan use case: one independent round trip
// per call, no state kept between invocations, no retries.
type Service struct {
	Client  ai.Client
	Timeout time.Duration
}

func NewService(client ai.Client, timeout time.Duration) *Service {
	return &Service{Client: client, Timeout: timeout}
}

// Analyze forwards the scan to the gateway and parses the reply. An
// unparseable reply is not an error: the Outcome carries the raw text with
// ParseError set and the caller decides how to present it.
func (s *Service) Analyze(ctx context.Context, imageBase64, scanType string) (domain.Outcome, error) {
	if imageBase64 == "" {
		return domain.Outcome{}, ErrNoImage
	}

	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := s.Client.Analyze(ctx, imageBase64, scanType)
	if err != nil {
		return domain.Outcome{}, err
	}

	out := reply.Parse(text)
	if out.ParseError {
		logger.WithFields(logrus.Fields{
			"duration": time.Since(start).String(),
			"bytes":    len(text),
		}).Warn("AI reply was not parseable JSON, returning raw text")
		return out, nil
	}

	logger.WithFields(logrus.Fields{
		"duration": time.Since(start).String(),
		"severity": out.Report.OverallSeverity,
		"findings": len(out.Report.Findings),
	}).Info("scan analysis completed")
	return out, nil
}
