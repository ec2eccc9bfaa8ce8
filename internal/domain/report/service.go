package report

import "context"

// ReportService defines the interface for report generation
type ReportService interface {
	// Generate builds headcount, leave distribution and summary figures from
	// the current HR data.
	Generate(ctx context.Context) (ReportResponse, error)
}
