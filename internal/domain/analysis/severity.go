package analysis

import "strings"

// Severity enum, ordered by clinical concern.
type Severity string

const (
	SeverityNormal   Severity = "Normal"
	SeverityMild     Severity = "Mild"
	SeverityModerate Severity = "Moderate"
	SeveritySevere   Severity = "Severe"
	SeverityCritical Severity = "Critical"
)

// Urgency enum for specialist referrals.
type Urgency string

const (
	UrgencyRoutine   Urgency = "Routine"
	UrgencyUrgent    Urgency = "Urgent"
	UrgencyEmergency Urgency = "Emergency"
)

var severityRanks = map[Severity]int{
	SeverityNormal:   0,
	SeverityMild:     1,
	SeverityModerate: 2,
	SeveritySevere:   3,
	SeverityCritical: 4,
}

// ParseSeverity matches a label case-insensitively. Unknown labels map to
// Normal, mirroring the display fallback.
func ParseSeverity(s string) Severity {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mild":
		return SeverityMild
	case "moderate":
		return SeverityModerate
	case "severe":
		return SeveritySevere
	case "critical":
		return SeverityCritical
	default:
		return SeverityNormal
	}
}

// Rank returns the ordinal position of the severity (Normal=0 .. Critical=4).
func (s Severity) Rank() int { return severityRanks[s] }

// Label returns the canonical display label.
func (s Severity) Label() string { return string(s) }

// Color returns the RGB display color for the severity.
func (s Severity) Color() (r, g, b int) {
	switch s {
	case SeverityNormal:
		return 34, 197, 94
	case SeverityMild:
		return 132, 204, 22
	case SeverityModerate:
		return 234, 179, 8
	case SeveritySevere:
		return 249, 115, 22
	case SeverityCritical:
		return 239, 68, 68
	}
	return 0, 0, 0
}
