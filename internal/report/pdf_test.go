package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/osteovision/osteovision/internal/domain/analysis"
)

func TestPDFRenderer_ProducesDocument(t *testing.T) {
	r := PDFRenderer{Clock: fixedClock{time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)}}

	var buf bytes.Buffer
	if err := r.Render(&buf, sampleReport()); err != nil {
		t.Fatalf("Render: %v", err)
	}

	out := buf.Bytes()
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Error("output does not start with a PDF header")
	}
	if len(out) < 1000 {
		t.Errorf("suspiciously small document: %d bytes", len(out))
	}
}

func TestPDFRenderer_PaginatesLongReports(t *testing.T) {
	rep := sampleReport()
	long := strings.Repeat("The finding extends along the bone shaft. ", 20)
	for i := 0; i < 30; i++ {
		rep.Findings = append(rep.Findings, analysis.Finding{
			Type:        "Hairline fracture",
			Location:    "Metacarpal",
			Description: long,
			Severity:    "Mild",
			Confidence:  0.5,
		})
	}

	var shortBuf, longBuf bytes.Buffer
	if err := NewPDFRenderer().Render(&shortBuf, sampleReport()); err != nil {
		t.Fatalf("Render short: %v", err)
	}
	if err := NewPDFRenderer().Render(&longBuf, rep); err != nil {
		t.Fatalf("Render long: %v", err)
	}

	// Page object dictionaries appear uncompressed in the output, so the
	// long report must contain more of them than the short one.
	marker := []byte("/Type /Page")
	if lp, sp := bytes.Count(longBuf.Bytes(), marker), bytes.Count(shortBuf.Bytes(), marker); lp <= sp {
		t.Errorf("long report has %d page markers, short has %d; expected pagination", lp, sp)
	}
}

func TestPDFRenderer_ToleratesSparseReport(t *testing.T) {
	var buf bytes.Buffer
	if err := NewPDFRenderer().Render(&buf, &analysis.Report{}); err != nil {
		t.Fatalf("Render on zero-value report: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("output does not start with a PDF header")
	}
}
