package user

import "github.com/cmlabs-hris/dayflow-hr-go/internal/domain/employee"

// ProfileResponse is the signed-in user with the matching directory entry,
// when one exists.
type ProfileResponse struct {
	User     User               `json:"user"`
	Employee *employee.Employee `json:"employee"`
}
