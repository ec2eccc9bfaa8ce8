package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/attendance"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/auth"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/employee"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/leave"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/payroll"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/user"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid credentials")
	case errors.Is(err, auth.ErrUserAlreadyExists):
		Conflict(w, "User with this email or employee ID already exists")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token has been revoked")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrAdminAccessRequired):
		Forbidden(w, "Admin or HR access required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeIDExists):
		Conflict(w, "Employee ID already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")

	// Missing employee identity on the token
	case errors.Is(err, employee.ErrEmployeeIDRequired),
		errors.Is(err, attendance.ErrEmployeeIDRequired),
		errors.Is(err, leave.ErrEmployeeIDRequired),
		errors.Is(err, payroll.ErrEmployeeIDRequired):
		BadRequest(w, "Employee ID is required", nil)

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
