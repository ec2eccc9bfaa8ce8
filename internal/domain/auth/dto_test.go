package auth

import (
	"testing"

	"github.com/cmlabs-hris/dayflow-hr-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupRequest_Validate(t *testing.T) {
	valid := func() SignupRequest {
		return SignupRequest{
			EmployeeID:      "EMP2001",
			Email:           "jane.roe@gmail.com",
			Password:        "secret1",
			ConfirmPassword: "secret1",
			Role:            "employee",
		}
	}

	tests := []struct {
		name      string
		mutate    func(r *SignupRequest)
		wantField string
	}{
		{"valid", func(r *SignupRequest) {}, ""},
		{"non gmail", func(r *SignupRequest) { r.Email = "jane@company.com" }, "email"},
		{"gmail lookalike", func(r *SignupRequest) { r.Email = "jane@gmail.com.evil" }, "email"},
		{"mismatch", func(r *SignupRequest) { r.ConfirmPassword = "other12" }, "confirm_password"},
		{"short password", func(r *SignupRequest) { r.Password, r.ConfirmPassword = "abc", "abc" }, "password"},
		{"missing employee id", func(r *SignupRequest) { r.EmployeeID = " " }, "employee_id"},
		{"bad role", func(r *SignupRequest) { r.Role = "root" }, "role"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(&req)
			err := req.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.ToMap(), tt.wantField)
		})
	}
}

func TestSignupRequest_DefaultsRole(t *testing.T) {
	req := SignupRequest{EmployeeID: "EMP2001", Email: "a.b@gmail.com", Password: "secret1", ConfirmPassword: "secret1"}
	require.NoError(t, req.Validate())
	assert.Equal(t, "employee", req.Role)
}

func TestLoginRequest_Validate(t *testing.T) {
	req := LoginRequest{Email: "admin@dayflow.com", Password: "password", Role: "admin"}
	assert.NoError(t, req.Validate())

	req.Role = "owner"
	var verrs validator.ValidationErrors
	require.ErrorAs(t, req.Validate(), &verrs)
	assert.Contains(t, verrs.ToMap(), "role")
}
