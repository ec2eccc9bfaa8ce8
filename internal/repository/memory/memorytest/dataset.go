// Package memorytest builds a small, fixed HR store for service and handler
// tests.
package memorytest

import (
	"time"

	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/attendance"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/employee"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/leave"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/pkg/clock"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/pkg/mockdata"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/repository/memory"
)

// Today is the date of Now, a Wednesday.
const Today = "2026-01-14"

// Now is the frozen wall clock of stores built here.
var Now = time.Date(2026, 1, 14, 9, 5, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

// Dataset returns four employees (three active), a few days of attendance and
// four leave requests. Each call returns fresh slices.
func Dataset() mockdata.Dataset {
	return mockdata.Dataset{
		Employees: []employee.Employee{
			{ID: "1", EmployeeID: "EMP0001", Name: "Aarav Sharma", Email: "aarav.sharma@gmail.com", Department: "Engineering", Position: "Software Engineer", JoinDate: "2021-03-01", Salary: 1200000, LeaveBalance: employee.LeaveBalance{Paid: 12, Sick: 8, Unpaid: 3}, Status: employee.StatusActive},
			{ID: "2", EmployeeID: "EMP0002", Name: "Diya Nair", Email: "diya.nair@gmail.com", Department: "Sales", Position: "Sales Executive", JoinDate: "2022-07-18", Salary: 600000, LeaveBalance: employee.LeaveBalance{Paid: 15, Sick: 10, Unpaid: 2}, Status: employee.StatusActive},
			{ID: "3", EmployeeID: "EMP0003", Name: "Rohan Gupta", Email: "rohan.gupta@gmail.com", Department: "Engineering", Position: "Senior Software Engineer", JoinDate: "2020-11-02", Salary: 1800000, LeaveBalance: employee.LeaveBalance{Paid: 5, Sick: 5}, Status: employee.StatusActive},
			{ID: "4", EmployeeID: "EMP0004", Name: "Meera Iyer", Email: "meera.iyer@gmail.com", Department: "Finance", Position: "Accountant", JoinDate: "2023-05-09", Salary: 480000, LeaveBalance: employee.LeaveBalance{Paid: 9, Sick: 6, Unpaid: 1}, Status: employee.StatusInactive},
		},
		Attendance: []attendance.AttendanceRecord{
			{ID: "att-2026-01-14-1", EmployeeID: "EMP0001", Date: "2026-01-14", CheckIn: strPtr("09:00"), Status: attendance.StatusPresent},
			{ID: "att-2026-01-14-3", EmployeeID: "EMP0003", Date: "2026-01-14", CheckIn: strPtr("10:30"), Status: attendance.StatusPresent},
			{ID: "att-2026-01-13-1", EmployeeID: "EMP0001", Date: "2026-01-13", CheckIn: strPtr("09:00"), CheckOut: strPtr("18:15"), Status: attendance.StatusPresent},
			{ID: "att-2026-01-13-2", EmployeeID: "EMP0002", Date: "2026-01-13", Status: attendance.StatusLeave},
			{ID: "att-2026-01-13-3", EmployeeID: "EMP0003", Date: "2026-01-13", CheckIn: strPtr("09:00"), CheckOut: strPtr("13:30"), Status: attendance.StatusHalfDay},
			{ID: "att-2026-01-12-1", EmployeeID: "EMP0001", Date: "2026-01-12", Status: attendance.StatusAbsent},
		},
		LeaveRequests: []leave.LeaveRequest{
			{ID: "leave-1", EmployeeID: "EMP0001", EmployeeName: "Aarav Sharma", Type: leave.TypeSick, StartDate: "2026-02-02", EndDate: "2026-02-04", Reason: "Medical appointment", Status: leave.StatusPending},
			{ID: "leave-2", EmployeeID: "EMP0002", EmployeeName: "Diya Nair", Type: leave.TypePaid, StartDate: "2026-01-20", EndDate: "2026-01-22", Reason: "Family vacation", Status: leave.StatusApproved, ApprovedBy: strPtr("EMP0050"), ApprovedDate: strPtr("2026-01-05"), Comments: strPtr("Approved")},
			{ID: "leave-3", EmployeeID: "EMP0001", EmployeeName: "Aarav Sharma", Type: leave.TypePaid, StartDate: "2026-03-10", EndDate: "2026-03-10", Reason: "Personal work", Status: leave.StatusRejected, ApprovedBy: strPtr("EMP0010"), ApprovedDate: strPtr("2026-01-02"), Comments: strPtr("Insufficient leave balance")},
			{ID: "leave-4", EmployeeID: "EMP0003", EmployeeName: "Rohan Gupta", Type: leave.TypeUnpaid, StartDate: "2026-02-15", EndDate: "2026-02-16", Reason: "Wedding ceremony", Status: leave.StatusPending},
		},
	}
}

// NewStore returns a store over Dataset with a fixed clock at Now.
func NewStore() (*memory.Store, *clock.Fixed) {
	c := &clock.Fixed{T: Now}
	return memory.NewStore(Dataset(), c), c
}
