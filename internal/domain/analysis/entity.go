package analysis

// ScanInfo describes the scan itself as reported by the model.
type ScanInfo struct {
	ScanType     string `json:"scanType"`
	BodyRegion   string `json:"bodyRegion"`
	ImageQuality string `json:"imageQuality"`
}

// Finding is one detected abnormality within a scan.
type Finding struct {
	Type        string  `json:"type"`
	Location    string  `json:"location"`
	Description string  `json:"description"`
	Severity    string  `json:"severity"`
	Confidence  float64 `json:"confidence"`
}

// SpecialistReferral value object
type SpecialistReferral struct {
	Type    string `json:"type"`
	Urgency string `json:"urgency"`
	Reason  string `json:"reason"`
}

// Medication value object
type Medication struct {
	Name    string `json:"name"`
	Purpose string `json:"purpose"`
	Note    string `json:"note"`
}

// Recommendations groups the actionable part of a report.
type Recommendations struct {
	ImmediateAction      string             `json:"immediateAction"`
	SpecialistReferral   SpecialistReferral `json:"specialistReferral"`
	SuggestedMedications []Medication       `json:"suggestedMedications"`
	AdditionalTests      []string           `json:"additionalTests"`
}

// Report is the structured analysis returned by the AI for a single scan.
// Fields are trusted at face value; none are range- or enum-checked before
// display.
type Report struct {
	ScanAnalysis    ScanInfo        `json:"scanAnalysis"`
	Findings        []Finding       `json:"findings"`
	OverallSeverity string          `json:"overallSeverity"`
	SeverityScore   int             `json:"severityScore"`
	Recommendations Recommendations `json:"recommendations"`
	Summary         string          `json:"summary"`
	Disclaimer      string          `json:"disclaimer"`
}

// Outcome is the tri-state result of running one analysis: a parsed report,
// or the raw reply text when the model's output could not be parsed as JSON.
// An unparseable reply is a soft failure, not an error.
type Outcome struct {
	Report     *Report `json:"-"`
	Raw        string  `json:"-"`
	ParseError bool    `json:"-"`
}

// RawPayload is the wire shape used when the reply could not be parsed.
type RawPayload struct {
	RawResponse string `json:"rawResponse"`
	ParseError  bool   `json:"parseError"`
}

// Payload returns the value serialized under "analysis" in API responses:
// the report itself, or {rawResponse, parseError:true} on a soft failure.
func (o Outcome) Payload() any {
	if o.ParseError {
		return RawPayload{RawResponse: o.Raw, ParseError: true}
	}
	return o.Report
}
