package report

import (
	"strings"
	"testing"
	"time"

	"github.com/osteovision/osteovision/internal/domain/analysis"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func sampleReport() *analysis.Report {
	return &analysis.Report{
		ScanAnalysis: analysis.ScanInfo{
			ScanType:     "X-ray",
			BodyRegion:   "Left wrist",
			ImageQuality: "Good",
		},
		Findings: []analysis.Finding{
			{
				Type:        "Transverse fracture",
				Location:    "Distal radius",
				Description: "Clean transverse break with mild displacement",
				Severity:    "Moderate",
				Confidence:  0.92,
			},
			{
				Type:        "Soft tissue swelling",
				Location:    "Dorsal wrist",
				Description: "Localized swelling adjacent to the fracture site",
				Severity:    "Mild",
				Confidence:  0.78,
			},
		},
		OverallSeverity: "Moderate",
		SeverityScore:   45,
		Recommendations: analysis.Recommendations{
			ImmediateAction: "Immobilize the wrist and avoid weight bearing",
			SpecialistReferral: analysis.SpecialistReferral{
				Type:    "Orthopedic Surgeon",
				Urgency: "Urgent",
				Reason:  "Fracture alignment needs assessment",
			},
			SuggestedMedications: []analysis.Medication{
				{Name: "Ibuprofen", Purpose: "Anti-inflammatory", Note: "Must be prescribed by physician"},
			},
			AdditionalTests: []string{"CT scan", "Follow-up X-ray in 2 weeks"},
		},
		Summary:    "Moderate transverse fracture of the distal radius with associated swelling.",
		Disclaimer: "This AI analysis is for screening purposes only.",
	}
}

// Every field of the result must appear in the transcript; nothing is
// silently dropped.
func TestTextRenderer_PreservesEveryField(t *testing.T) {
	rep := sampleReport()
	r := TextRenderer{Clock: fixedClock{time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)}}

	var b strings.Builder
	if err := r.Render(&b, rep); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := b.String()

	wantContent := []string{
		rep.ScanAnalysis.ScanType,
		rep.ScanAnalysis.BodyRegion,
		rep.ScanAnalysis.ImageQuality,
		"MODERATE", "45/100",
		rep.Summary,
		rep.Findings[0].Type, rep.Findings[0].Location, rep.Findings[0].Description,
		"92%",
		rep.Findings[1].Type, rep.Findings[1].Location, rep.Findings[1].Description,
		"78%",
		rep.Recommendations.SpecialistReferral.Type,
		rep.Recommendations.SpecialistReferral.Urgency,
		rep.Recommendations.SpecialistReferral.Reason,
		rep.Recommendations.SuggestedMedications[0].Name,
		rep.Recommendations.SuggestedMedications[0].Purpose,
		rep.Recommendations.SuggestedMedications[0].Note,
		rep.Recommendations.ImmediateAction,
		rep.Recommendations.AdditionalTests[0],
		rep.Recommendations.AdditionalTests[1],
		rep.Disclaimer,
	}
	for _, want := range wantContent {
		if !strings.Contains(out, want) {
			t.Errorf("transcript missing %q", want)
		}
	}
}

func TestTextRenderer_OmitsEmptySections(t *testing.T) {
	rep := sampleReport()
	rep.Findings = nil
	rep.Recommendations.SuggestedMedications = nil
	rep.Recommendations.AdditionalTests = nil

	var b strings.Builder
	if err := NewTextRenderer().Render(&b, rep); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := b.String()

	for _, section := range []string{"DETAILED FINDINGS", "SUGGESTED MEDICATIONS", "Additional Tests"} {
		if strings.Contains(out, section) {
			t.Errorf("empty section %q should be omitted", section)
		}
	}
	// The rest of the report still renders.
	if !strings.Contains(out, "OVERALL ASSESSMENT") || !strings.Contains(out, "DISCLAIMER") {
		t.Error("core sections missing")
	}
}

func TestFilename(t *testing.T) {
	clk := fixedClock{time.UnixMilli(1700000000000)}
	if got := Filename("pdf", clk); got != "xray-analysis-report-1700000000000.pdf" {
		t.Errorf("Filename = %q", got)
	}
}
