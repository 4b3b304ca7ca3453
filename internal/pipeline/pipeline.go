// Package pipeline tracks the state of the analyze action on the client
// side: a busy flag and a single result-or-error slot.
package pipeline

import (
	"context"
	"sync"

	"github.com/osteovision/osteovision/internal/domain/analysis"
)

// AnalyzeFunc performs one analysis round trip.
type AnalyzeFunc func(ctx context.Context, imageBase64, scanType string) (analysis.Outcome, error)

// Pipeline owns the transient session state explicitly instead of leaving it
// in ambient globals. Overlapping calls are permitted and race harmlessly:
// the slot is overwritten by whichever completion lands last, and no
// cancellation of an earlier in-flight call is performed.
type Pipeline struct {
	analyze AnalyzeFunc

	mu     sync.Mutex
	busy   bool
	result *analysis.Outcome
	err    error
}

func New(analyze AnalyzeFunc) *Pipeline {
	return &Pipeline{analyze: analyze}
}

// Analyze runs one round trip. It sets the busy flag, clears the prior
// result and error, and on completion sets exactly one of result/error and
// clears busy.
func (p *Pipeline) Analyze(ctx context.Context, imageBase64, scanType string) {
	p.mu.Lock()
	p.busy = true
	p.result = nil
	p.err = nil
	p.mu.Unlock()

	out, err := p.analyze(ctx, imageBase64, scanType)

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		p.result = nil
		p.err = err
	} else {
		p.result = &out
		p.err = nil
	}
	p.busy = false
}

// Reset clears the result and error without touching the busy flag.
func (p *Pipeline) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.result = nil
	p.err = nil
}

// Busy reports whether an analysis is in flight.
func (p *Pipeline) Busy() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.busy
}

// Result returns the last completed outcome, or nil.
func (p *Pipeline) Result() *analysis.Outcome {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.result
}

// Err returns the last failure, or nil.
func (p *Pipeline) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}
