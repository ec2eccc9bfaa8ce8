package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	tests := []struct {
		role       Role
		permission Permission
		want       bool
	}{
		{RoleEmployee, PermissionLeaveCreate, true},
		{RoleEmployee, PermissionLeaveApprove, false},
		{RoleEmployee, PermissionEmployeeManage, false},
		{RoleAdmin, PermissionLeaveApprove, true},
		{RoleAdmin, PermissionAttendanceCreate, true},
		{RoleHR, PermissionReportsView, true},
		{Role("guest"), PermissionViewOwnProfile, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role)+"/"+string(tt.permission), func(t *testing.T) {
			assert.Equal(t, tt.want, HasPermission(tt.role, tt.permission))
		})
	}
}

func TestUser_IsAdmin(t *testing.T) {
	assert.True(t, (&User{Role: RoleAdmin}).IsAdmin())
	assert.True(t, (&User{Role: RoleHR}).IsAdmin())
	assert.False(t, (&User{Role: RoleEmployee}).IsAdmin())
}
