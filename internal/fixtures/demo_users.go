// Package fixtures holds the built-in demo accounts.
package fixtures

import (
	"sync"

	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

// DemoPassword is shared by every demo account.
const DemoPassword = "password"

var demoUsers = []user.User{
	{
		ID:         "1",
		EmployeeID: "EMP001",
		Email:      "john.doe@dayflow.com",
		Name:       "John Doe",
		Role:       user.RoleEmployee,
		Department: "Engineering",
		Position:   "Software Engineer",
		JoinDate:   "2023-01-15",
	},
	{
		ID:         "2",
		EmployeeID: "ADM001",
		Email:      "admin@dayflow.com",
		Name:       "Sarah Admin",
		Role:       user.RoleAdmin,
		Department: "Administration",
		Position:   "System Administrator",
		JoinDate:   "2022-06-01",
	},
	{
		ID:         "3",
		EmployeeID: "HR001",
		Email:      "hr@dayflow.com",
		Name:       "Michael HR",
		Role:       user.RoleHR,
		Department: "Human Resources",
		Position:   "HR Manager",
		JoinDate:   "2022-03-10",
	},
}

var (
	demoHashOnce sync.Once
	demoHash     string
)

// DemoUsers returns the demo accounts with a bcrypt hash of DemoPassword.
// The hash is computed on first use.
func DemoUsers() []user.StoredUser {
	demoHashOnce.Do(func() {
		hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
		if err != nil {
			panic("fixtures: failed to hash demo password: " + err.Error())
		}
		demoHash = string(hash)
	})

	users := make([]user.StoredUser, 0, len(demoUsers))
	for _, u := range demoUsers {
		users = append(users, user.StoredUser{User: u, PasswordHash: demoHash})
	}
	return users
}
