package report

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidMetric marks metrics rejected before rendering.
var ErrInvalidMetric = errors.New("invalid metric")

// Metric is one named comparison between the baseline implementation
// and the candidate port.
type Metric struct {
	Operation   string  `json:"operation"`    // display label, determines x-axis slot by position
	BaselineMs  float64 `json:"baseline_ms"`  // baseline timing in milliseconds
	CandidateMs float64 `json:"candidate_ms"` // candidate timing in milliseconds
}

// Speedup returns the baseline/candidate ratio. Only meaningful when
// HasSpeedup reports true.
func (m Metric) Speedup() float64 {
	return m.BaselineMs / m.CandidateMs
}

// HasSpeedup reports whether the speedup ratio is defined for this metric.
// A zero candidate time means the ratio is skipped, not an error.
func (m Metric) HasSpeedup() bool {
	return m.CandidateMs > 0
}

// ValidateMetrics rejects metrics that cannot be plotted: negative or
// non-finite timings and empty operation labels. Runs before any drawing
// so a bad entry never produces a partial chart.
func ValidateMetrics(metrics []Metric) error {
	for i, m := range metrics {
		if m.Operation == "" {
			return fmt.Errorf("%w: entry %d has an empty operation label", ErrInvalidMetric, i)
		}
		if !validTiming(m.BaselineMs) {
			return fmt.Errorf("%w: %q baseline_ms is %v", ErrInvalidMetric, m.Operation, m.BaselineMs)
		}
		if !validTiming(m.CandidateMs) {
			return fmt.Errorf("%w: %q candidate_ms is %v", ErrInvalidMetric, m.Operation, m.CandidateMs)
		}
	}
	return nil
}

func validTiming(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// DefaultMetrics returns the built-in placeholder dataset. The zero values
// are stand-ins to be replaced by measured timings via --input.
func DefaultMetrics() []Metric {
	return []Metric{
		{Operation: "Parse 1000 files"},
		{Operation: "Type check large project"},
		{Operation: "Incremental compilation"},
		{Operation: "Memory usage (MB)"},
	}
}
