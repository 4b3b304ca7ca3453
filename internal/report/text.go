// Package report renders an analysis result as downloadable documents: a
// flattened plain-text transcript and a paginated PDF.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/osteovision/osteovision/internal/domain/analysis"
)

// TextRenderer writes the full report as a plain-text transcript. Every
// field present in the result appears in the output.
type TextRenderer struct {
	Clock Clock
}

func NewTextRenderer() TextRenderer {
	return TextRenderer{Clock: SystemClock{}}
}

func (r TextRenderer) now() time.Time {
	if r.Clock == nil {
		return time.Now()
	}
	return r.Clock.Now()
}

func (r TextRenderer) Render(w io.Writer, rep *analysis.Report) error {
	var b strings.Builder

	b.WriteString("OSTEOVISION - SCAN ANALYSIS REPORT\n")
	b.WriteString(fmt.Sprintf("Generated: %s\n\n", r.now().Format(time.RFC1123)))

	b.WriteString("SCAN INFORMATION\n")
	b.WriteString(fmt.Sprintf("Scan Type: %s\n", rep.ScanAnalysis.ScanType))
	b.WriteString(fmt.Sprintf("Body Region: %s\n", rep.ScanAnalysis.BodyRegion))
	b.WriteString(fmt.Sprintf("Image Quality: %s\n\n", rep.ScanAnalysis.ImageQuality))

	b.WriteString("OVERALL ASSESSMENT\n")
	b.WriteString(fmt.Sprintf("Severity: %s (Score: %d/100)\n\n",
		strings.ToUpper(rep.OverallSeverity), rep.SeverityScore))

	b.WriteString("SUMMARY\n")
	b.WriteString(rep.Summary + "\n\n")

	if len(rep.Findings) > 0 {
		b.WriteString("DETAILED FINDINGS\n")
		for i, f := range rep.Findings {
			b.WriteString(fmt.Sprintf("%d. %s\n", i+1, f.Type))
			b.WriteString(fmt.Sprintf("   Location: %s\n", f.Location))
			b.WriteString(fmt.Sprintf("   Description: %s\n", f.Description))
			b.WriteString(fmt.Sprintf("   Severity: %s | Confidence: %d%%\n",
				f.Severity, int(f.Confidence*100)))
		}
		b.WriteString("\n")
	}

	b.WriteString("SPECIALIST REFERRAL\n")
	b.WriteString(fmt.Sprintf("Recommended: %s\n", rep.Recommendations.SpecialistReferral.Type))
	b.WriteString(fmt.Sprintf("Urgency: %s\n", rep.Recommendations.SpecialistReferral.Urgency))
	b.WriteString(fmt.Sprintf("Reason: %s\n\n", rep.Recommendations.SpecialistReferral.Reason))

	if len(rep.Recommendations.SuggestedMedications) > 0 {
		b.WriteString("SUGGESTED MEDICATIONS\n")
		for _, med := range rep.Recommendations.SuggestedMedications {
			b.WriteString(fmt.Sprintf("- %s - %s\n", med.Name, med.Purpose))
			b.WriteString(fmt.Sprintf("  Note: %s\n", med.Note))
		}
		b.WriteString("\n")
	}

	b.WriteString("IMMEDIATE ACTION REQUIRED\n")
	b.WriteString(rep.Recommendations.ImmediateAction + "\n")
	if len(rep.Recommendations.AdditionalTests) > 0 {
		b.WriteString("Additional Tests Recommended:\n")
		for _, test := range rep.Recommendations.AdditionalTests {
			b.WriteString(fmt.Sprintf("- %s\n", test))
		}
	}
	b.WriteString("\n")

	b.WriteString("DISCLAIMER\n")
	b.WriteString(rep.Disclaimer + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// Filename builds a download name like xray-analysis-report-<unix-ms>.<ext>.
func Filename(ext string, clk Clock) string {
	if clk == nil {
		clk = SystemClock{}
	}
	return fmt.Sprintf("xray-analysis-report-%d.%s", clk.Now().UnixMilli(), ext)
}
