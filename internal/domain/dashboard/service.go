package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// Admin computes the organisation overview; independent sections run
	// concurrently over one snapshot.
	Admin(ctx context.Context) (AdminDashboardResponse, error)

	// Employee returns the signed-in employee's landing view.
	Employee(ctx context.Context, employeeID string) (EmployeeDashboardResponse, error)
}
