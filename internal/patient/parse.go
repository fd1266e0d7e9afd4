// Package patient turns free-form chat text into a structured set of
// vital-sign fields and renders that set into a model prompt.
package patient

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// Record holds the three recognized vital-sign fields as free-text
// strings. Values are stored verbatim; no unit or range validation.
type Record struct {
	BloodPressure string `json:"blood_pressure"`
	BloodGlucose  string `json:"blood_glucose"`
	StressLevel   string `json:"stress_level"`
}

// Empty reports whether no field was extracted, which callers treat as
// "unparseable input".
func (r Record) Empty() bool {
	return r.BloodPressure == "" && r.BloodGlucose == "" && r.StressLevel == ""
}

var (
	bloodPressurePattern = regexp.MustCompile(`(?i)blood\s*pressure\s*:\s*([^\n]+)`)
	bloodGlucosePattern  = regexp.MustCompile(`(?i)blood\s*glucose\s*:\s*([^\n]+)`)
	stressLevelPattern   = regexp.MustCompile(`(?i)stress\s*level\s*:\s*([^\n]+)`)
)

// Parse extracts a Record from raw message text. A successfully decoded
// JSON object wins outright, even when it contains none of the known
// fields — a JSON object of unrelated keys therefore reads as
// unparseable. Anything else falls back to line-oriented pattern
// matching.
func Parse(text string) Record {
	var fields map[string]any
	if err := json.Unmarshal([]byte(text), &fields); err == nil && fields != nil {
		return Record{
			BloodPressure: stringField(fields, "blood_pressure"),
			BloodGlucose:  stringField(fields, "blood_glucose"),
			StressLevel:   stringField(fields, "stress_level"),
		}
	}
	return parsePatterns(text)
}

func parsePatterns(text string) Record {
	var rec Record
	if m := bloodPressurePattern.FindStringSubmatch(text); m != nil {
		rec.BloodPressure = strings.TrimSpace(m[1])
	}
	if m := bloodGlucosePattern.FindStringSubmatch(text); m != nil {
		rec.BloodGlucose = strings.TrimSpace(m[1])
	}
	if m := stressLevelPattern.FindStringSubmatch(text); m != nil {
		rec.StressLevel = strings.TrimSpace(m[1])
	}
	return rec
}

func stringField(fields map[string]any, key string) string {
	switch v := fields[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}
