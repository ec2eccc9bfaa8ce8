package user

type Permission string

const (
	// Self service
	PermissionViewOwnProfile    Permission = "profile.view_own"
	PermissionAttendanceViewOwn Permission = "attendance.view_own"
	PermissionAttendanceCreate  Permission = "attendance.create"
	PermissionLeaveViewOwn      Permission = "leave.view_own"
	PermissionLeaveCreate       Permission = "leave.create"
	PermissionPayrollViewOwn    Permission = "payroll.view_own"

	// Administration
	PermissionEmployeeViewAll   Permission = "employee.view_all"
	PermissionEmployeeManage    Permission = "employee.manage"
	PermissionAttendanceViewAll Permission = "attendance.view_all"
	PermissionLeaveViewAll      Permission = "leave.view_all"
	PermissionLeaveApprove      Permission = "leave.approve"
	PermissionPayrollViewAll    Permission = "payroll.view_all"
	PermissionReportsView       Permission = "reports.view"
)

var selfService = []Permission{
	PermissionViewOwnProfile,
	PermissionAttendanceViewOwn,
	PermissionAttendanceCreate,
	PermissionLeaveViewOwn,
	PermissionLeaveCreate,
	PermissionPayrollViewOwn,
}

var administration = []Permission{
	PermissionEmployeeViewAll,
	PermissionEmployeeManage,
	PermissionAttendanceViewAll,
	PermissionLeaveViewAll,
	PermissionLeaveApprove,
	PermissionPayrollViewAll,
	PermissionReportsView,
}

// RolePermissions maps roles to their permissions. Admin and HR share the
// administrative set.
var RolePermissions = map[Role][]Permission{
	RoleEmployee: selfService,
	RoleAdmin:    append(append([]Permission{}, selfService...), administration...),
	RoleHR:       append(append([]Permission{}, selfService...), administration...),
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
