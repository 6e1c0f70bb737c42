package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewRunReport(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name           string
		outcomes       []IntersectionOutcome
		expectedEmpty  bool
		expectedStatus string
	}{
		{
			name: "successes are summed into the status line",
			outcomes: []IntersectionOutcome{
				{LayerID: "wetlands", LayerTitle: "Wetlands", Status: OutcomeSuccess, Count: 2},
				{LayerID: "parcels", LayerTitle: "Parcels", Status: OutcomeSuccess, Count: 3},
			},
			expectedEmpty:  false,
			expectedStatus: "Found 5 intersecting features in 2 layer(s)",
		},
		{
			name: "empty layers do not count toward the summary",
			outcomes: []IntersectionOutcome{
				{LayerID: "wetlands", LayerTitle: "Wetlands", Status: OutcomeSuccess, Count: 1},
				{LayerID: "parcels", LayerTitle: "Parcels", Status: OutcomeEmpty},
			},
			expectedEmpty:  false,
			expectedStatus: "Found 1 intersecting features in 1 layer(s)",
		},
		{
			name: "all empty",
			outcomes: []IntersectionOutcome{
				{LayerID: "wetlands", LayerTitle: "Wetlands", Status: OutcomeEmpty},
				{LayerID: "parcels", LayerTitle: "Parcels", Status: OutcomeEmpty},
			},
			expectedEmpty:  true,
			expectedStatus: "No intersecting features in any selected layer",
		},
		{
			name: "failure wins over success and empty",
			outcomes: []IntersectionOutcome{
				{LayerID: "wetlands", LayerTitle: "Wetlands", Status: OutcomeSuccess, Count: 4},
				{LayerID: "parcels", LayerTitle: "Parcels", Status: OutcomeFailure, Reason: "query failed"},
				{LayerID: "schools", LayerTitle: "Schools", Status: OutcomeEmpty},
			},
			expectedEmpty:  false,
			expectedStatus: "Query failed for layer: Parcels",
		},
		{
			name: "first failure names the status line",
			outcomes: []IntersectionOutcome{
				{LayerID: "wetlands", LayerTitle: "Wetlands", Status: OutcomeFailure, Reason: "query timed out"},
				{LayerID: "parcels", LayerTitle: "Parcels", Status: OutcomeFailure, Reason: "query failed"},
			},
			expectedEmpty:  false,
			expectedStatus: "Query failed for layer: Wetlands",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := NewRunReport(uuid.New(), tt.outcomes, now, now.Add(time.Second))

			assert.Equal(t, tt.expectedEmpty, report.IsEmpty)
			assert.Equal(t, tt.expectedStatus, report.Status)
			assert.Len(t, report.Outcomes, len(tt.outcomes))
		})
	}
}

func TestNewRunReport_Partitions(t *testing.T) {
	outcomes := []IntersectionOutcome{
		{LayerID: "a", LayerTitle: "A", Status: OutcomeSuccess, Count: 1},
		{LayerID: "b", LayerTitle: "B", Status: OutcomeFailure, Reason: "query failed"},
		{LayerID: "c", LayerTitle: "C", Status: OutcomeEmpty},
		{LayerID: "d", LayerTitle: "D", Status: OutcomeSuccess, Count: 2},
	}

	report := NewRunReport(uuid.New(), outcomes, time.Now(), time.Now())

	assert.Len(t, report.Successes, 2)
	assert.Len(t, report.Failures, 1)
	assert.Equal(t, "a", report.Successes[0].LayerID)
	assert.Equal(t, "d", report.Successes[1].LayerID)
	assert.Equal(t, "b", report.Failures[0].LayerID)
	assert.False(t, report.IsEmpty)
}
