package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// OutcomeStatus classifies a single layer's result inside a run.
type OutcomeStatus string

const (
	OutcomeSuccess OutcomeStatus = "success"
	OutcomeEmpty   OutcomeStatus = "empty"
	OutcomeFailure OutcomeStatus = "failure"
)

// FeatureRecord holds the attributes of one intersecting feature. Geometry
// is never carried; queries run with returnGeometry=false.
type FeatureRecord map[string]interface{}

// IntersectionOutcome is the result of one layer's query. A run produces
// exactly one outcome per selected layer, in selection order.
type IntersectionOutcome struct {
	LayerID    string          `json:"layer_id"`
	LayerTitle string          `json:"layer_title"`
	Status     OutcomeStatus   `json:"status"`
	Count      int             `json:"count,omitempty"`
	Records    []FeatureRecord `json:"records,omitempty"`
	// Reason is a human-readable failure summary, never a raw transport error.
	Reason string `json:"reason,omitempty"`
}

// RunReport is the immutable aggregate over one intersection run. Each run
// replaces the previous report atomically from the consumer's perspective.
type RunReport struct {
	ID         uuid.UUID             `json:"id"`
	Outcomes   []IntersectionOutcome `json:"outcomes"`
	Successes  []IntersectionOutcome `json:"successes"`
	Failures   []IntersectionOutcome `json:"failures"`
	IsEmpty    bool                  `json:"is_empty"`
	Status     string                `json:"status"`
	StartedAt  time.Time             `json:"started_at"`
	FinishedAt time.Time             `json:"finished_at"`
}

// NewRunReport derives the aggregate from ordered per-layer outcomes.
// IsEmpty is true only when every layer came back empty.
func NewRunReport(id uuid.UUID, outcomes []IntersectionOutcome, startedAt, finishedAt time.Time) *RunReport {
	report := &RunReport{
		ID:         id,
		Outcomes:   outcomes,
		Successes:  make([]IntersectionOutcome, 0),
		Failures:   make([]IntersectionOutcome, 0),
		StartedAt:  startedAt,
		FinishedAt: finishedAt,
	}

	for _, o := range outcomes {
		switch o.Status {
		case OutcomeSuccess:
			report.Successes = append(report.Successes, o)
		case OutcomeFailure:
			report.Failures = append(report.Failures, o)
		}
	}

	report.IsEmpty = len(report.Successes) == 0 && len(report.Failures) == 0
	report.Status = report.statusMessage()

	return report
}

// statusMessage derives the single top-level status line. Precedence:
// any query failure > empty-everywhere > success summary.
func (r *RunReport) statusMessage() string {
	if len(r.Failures) > 0 {
		return "Query failed for layer: " + r.Failures[0].LayerTitle
	}
	if r.IsEmpty {
		return "No intersecting features in any selected layer"
	}

	total := 0
	for _, o := range r.Successes {
		total += o.Count
	}
	return fmt.Sprintf("Found %d intersecting features in %d layer(s)", total, len(r.Successes))
}
