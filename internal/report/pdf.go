package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/osteovision/osteovision/internal/domain/analysis"
)

// Header band and section rule color.
var headerRGB = [3]int{230, 73, 78}

// PDFRenderer produces the paginated report: colored header band, sectioned
// content wrapped to the page width, manual page breaks, and a repeated
// footer disclaimer on every page.
type PDFRenderer struct {
	Clock Clock
}

func NewPDFRenderer() PDFRenderer {
	return PDFRenderer{Clock: SystemClock{}}
}

func (r PDFRenderer) now() time.Time {
	if r.Clock == nil {
		return time.Now()
	}
	return r.Clock.Now()
}

func (r PDFRenderer) Render(w io.Writer, rep *analysis.Report) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AliasNbPages("")

	pageW, _ := pdf.GetPageSize()
	const margin = 20.0
	maxW := pageW - margin*2
	y := 20.0

	pdf.SetFooterFunc(func() {
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.SetXY(0, 287)
		pdf.CellFormat(pageW, 4, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 1, "C", false, 0, "")
		pdf.CellFormat(pageW, 4, "This report is for screening purposes only. Consult a healthcare professional.", "", 0, "C", false, 0, "")
	})

	addWrapped := func(text string, size float64, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, size)
		for _, line := range pdf.SplitText(text, maxW) {
			if y > 270 {
				pdf.AddPage()
				y = 20
			}
			pdf.Text(margin, y, line)
			y += size * 0.5
		}
		y += 2
	}

	addSection := func(title string) {
		if y > 250 {
			pdf.AddPage()
			y = 20
		}
		y += 5
		pdf.SetDrawColor(headerRGB[0], headerRGB[1], headerRGB[2])
		pdf.SetLineWidth(0.5)
		pdf.Line(margin, y, pageW-margin, y)
		y += 7
		addWrapped(title, 12, true)
		y += 2
	}

	pdf.AddPage()

	// Header band
	pdf.SetFillColor(headerRGB[0], headerRGB[1], headerRGB[2])
	pdf.Rect(0, 0, pageW, 35, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 20)
	pdf.Text(margin, 18, "OsteoVision")
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(margin, 26, "X-Ray Fracture Analysis Report")
	pdf.Text(pageW-margin-60, 26, "Generated: "+r.now().Format("2006-01-02 15:04"))

	pdf.SetTextColor(0, 0, 0)
	y = 50

	addSection("SCAN INFORMATION")
	addWrapped("Scan Type: "+rep.ScanAnalysis.ScanType, 10, false)
	addWrapped("Body Region: "+rep.ScanAnalysis.BodyRegion, 10, false)
	addWrapped("Image Quality: "+rep.ScanAnalysis.ImageQuality, 10, false)

	addSection("OVERALL ASSESSMENT")
	sr, sg, sb := analysis.ParseSeverity(rep.OverallSeverity).Color()
	pdf.SetTextColor(sr, sg, sb)
	addWrapped(fmt.Sprintf("Severity: %s (Score: %d/100)",
		strings.ToUpper(rep.OverallSeverity), rep.SeverityScore), 14, true)
	pdf.SetTextColor(0, 0, 0)

	addSection("SUMMARY")
	addWrapped(rep.Summary, 10, false)

	if len(rep.Findings) > 0 {
		addSection("DETAILED FINDINGS")
		for i, f := range rep.Findings {
			addWrapped(fmt.Sprintf("%d. %s", i+1, f.Type), 11, true)
			addWrapped("   Location: "+f.Location, 10, false)
			addWrapped("   Description: "+f.Description, 10, false)
			addWrapped(fmt.Sprintf("   Severity: %s | Confidence: %d%%",
				f.Severity, int(f.Confidence*100)), 10, false)
			y += 3
		}
	}

	addSection("SPECIALIST REFERRAL")
	addWrapped("Recommended: "+rep.Recommendations.SpecialistReferral.Type, 11, true)
	addWrapped("Urgency: "+rep.Recommendations.SpecialistReferral.Urgency, 10, false)
	addWrapped("Reason: "+rep.Recommendations.SpecialistReferral.Reason, 10, false)

	if len(rep.Recommendations.SuggestedMedications) > 0 {
		addSection("SUGGESTED MEDICATIONS")
		for _, med := range rep.Recommendations.SuggestedMedications {
			addWrapped(fmt.Sprintf("- %s - %s", med.Name, med.Purpose), 10, true)
			addWrapped("  Note: "+med.Note, 10, false)
		}
	}

	addSection("IMMEDIATE ACTION REQUIRED")
	addWrapped(rep.Recommendations.ImmediateAction, 10, false)
	if len(rep.Recommendations.AdditionalTests) > 0 {
		y += 3
		addWrapped("Additional Tests Recommended:", 10, true)
		for _, test := range rep.Recommendations.AdditionalTests {
			addWrapped("- "+test, 10, false)
		}
	}

	addSection("DISCLAIMER")
	pdf.SetTextColor(150, 100, 0)
	addWrapped(rep.Disclaimer, 9, false)
	pdf.SetTextColor(0, 0, 0)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}
