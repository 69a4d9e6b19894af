// Package status classifies a metric reading against its optimal band.
package status

import (
	"strconv"

	"github.com/zietsense/zietsense/internal/registry"
)

// Status is the outcome of comparing a value with its optimal range.
type Status int

const (
	Optimal Status = iota
	High
	Low
	Unavailable
)

// String returns the label shown on metric cards.
func (s Status) String() string {
	switch s {
	case Optimal:
		return "Optimal"
	case High:
		return "High"
	case Low:
		return "Low"
	default:
		return "N/A"
	}
}

// Alerting reports whether the status is drawn in the alert color.
// Anything other than Optimal alerts, including Unavailable.
func (s Status) Alerting() bool {
	return s != Optimal
}

// MarshalText lets statuses serialize as their labels.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Classify compares value with the optimal band. Only strict inequalities
// leave the band: a value equal to min or max is Optimal.
func Classify(value float64, optimal registry.Range) Status {
	maxVal, ok := optimal.Upper()
	if !ok {
		return Unavailable
	}
	switch {
	case value > maxVal:
		return High
	case value < optimal.Lower():
		return Low
	default:
		return Optimal
	}
}

// ClassifyReading classifies a reading against its own band.
func ClassifyReading(r registry.Reading) Status {
	return Classify(r.Current, r.Optimal)
}

// FormatRange renders a band as "min - max", with min defaulting to 0 and
// an undefined max left blank.
func FormatRange(r registry.Range) string {
	s := formatNumber(r.Lower()) + " - "
	if maxVal, ok := r.Upper(); ok {
		s += formatNumber(maxVal)
	}
	return s
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
