package report

type DepartmentCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type LeaveTypeCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type ReportResponse struct {
	Departments []DepartmentCount `json:"departments"`
	LeaveTypes  []LeaveTypeCount  `json:"leave_types"`

	TotalEmployees  int `json:"total_employees"`
	PendingLeaves   int `json:"pending_leaves"`
	DepartmentCount int `json:"department_count"`

	// Total annual salary in thousands, e.g. "₹123456K/month".
	SalaryDisplay string `json:"salary_display"`
}
