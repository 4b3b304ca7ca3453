package reply

import (
	"testing"
)

const sampleJSON = `{
  "scanAnalysis": {"scanType": "X-ray", "bodyRegion": "Left wrist", "imageQuality": "Good"},
  "findings": [
    {"type": "Transverse fracture", "location": "Distal radius", "description": "Clean break", "severity": "Moderate", "confidence": 0.92}
  ],
  "overallSeverity": "Moderate",
  "severityScore": 45,
  "recommendations": {
    "immediateAction": "Immobilize the wrist",
    "specialistReferral": {"type": "Orthopedic Surgeon", "urgency": "Urgent", "reason": "Fracture alignment"},
    "suggestedMedications": [{"name": "Ibuprofen", "purpose": "Anti-inflammatory", "note": "Must be prescribed by physician"}],
    "additionalTests": ["CT scan"]
  },
  "summary": "Moderate fracture of the distal radius.",
  "disclaimer": "Screening purposes only."
}`

func TestParse_FencedAndBare(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"json fence", "```json\n" + sampleJSON + "\n```"},
		{"bare fence", "```\n" + sampleJSON + "\n```"},
		{"no fence", sampleJSON},
		{"fence with prose around", "Here is the analysis:\n```json\n" + sampleJSON + "\n```\nLet me know if you need more."},
		{"leading whitespace", "\n\n  " + sampleJSON + "  \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Parse(tt.text)
			if out.ParseError {
				t.Fatalf("expected parsed report, got parse error (raw=%q)", out.Raw)
			}
			if out.Report == nil {
				t.Fatal("expected non-nil report")
			}
			if got := out.Report.OverallSeverity; got != "Moderate" {
				t.Errorf("overallSeverity = %q, want Moderate", got)
			}
			if got := out.Report.SeverityScore; got != 45 {
				t.Errorf("severityScore = %d, want 45", got)
			}
			if len(out.Report.Findings) != 1 {
				t.Fatalf("findings = %d, want 1", len(out.Report.Findings))
			}
			if got := out.Report.Findings[0].Confidence; got != 0.92 {
				t.Errorf("confidence = %v, want 0.92", got)
			}
		})
	}
}

func TestParse_FenceInteriorOnly(t *testing.T) {
	out := Parse("```json\n" + sampleJSON + "\n```")
	if out.Report == nil {
		t.Fatal("expected parsed report")
	}
	// The parsed object must come from the fence interior, not the literal
	// text including fences.
	if out.Report.Summary != "Moderate fracture of the distal radius." {
		t.Errorf("summary = %q", out.Report.Summary)
	}
}

func TestParse_Unparseable(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"plain prose", "I could not analyze the image, it appears corrupted."},
		{"truncated json", `{"scanAnalysis": {"scanType": "X-ray"`},
		{"fenced prose", "```\nnot json at all\n```"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Parse(tt.text)
			if !out.ParseError {
				t.Fatal("expected parse error")
			}
			if out.Raw != tt.text {
				t.Errorf("raw = %q, want original text %q", out.Raw, tt.text)
			}
			if out.Report != nil {
				t.Error("report should be nil on parse error")
			}
		})
	}
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"json tag wins", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"no fence passthrough", `{"a":1}`, `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Extract(tt.in); got != tt.want {
				t.Errorf("Extract() = %q, want %q", got, tt.want)
			}
		})
	}
}
