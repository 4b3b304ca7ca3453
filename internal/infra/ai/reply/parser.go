// Package reply extracts a structured report from the model's free-text
// output. The upstream is uncontracted: the JSON may arrive bare or wrapped
// in a markdown code fence, and sometimes not at all.
package reply

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/osteovision/osteovision/internal/domain/analysis"
)

var (
	fencedJSON = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")
	fenced     = regexp.MustCompile("(?s)```\\s*(.*?)\\s*```")
)

// Extract returns the candidate JSON text: the interior of the first fenced
// code block when one exists, otherwise the whole blob.
func Extract(text string) string {
	if m := fencedJSON.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	if m := fenced.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return text
}

// Parse turns a raw reply into an Outcome. A reply that is not valid JSON in
// any form is a soft failure: the raw text is preserved and ParseError is
// set, leaving the presentation decision to the caller.
func Parse(text string) analysis.Outcome {
	candidate := strings.TrimSpace(Extract(text))

	var rep analysis.Report
	if err := json.Unmarshal([]byte(candidate), &rep); err != nil {
		return analysis.Outcome{Raw: text, ParseError: true}
	}
	return analysis.Outcome{Report: &rep}
}
