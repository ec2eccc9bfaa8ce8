package user

type Role string

const (
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
	RoleHR       Role = "hr"
)

var Roles = []string{string(RoleEmployee), string(RoleAdmin), string(RoleHR)}

func (r Role) IsValid() bool {
	return r == RoleEmployee || r == RoleAdmin || r == RoleHR
}

// User is an authenticated identity. It never carries a password.
type User struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	Email          string  `json:"email"`
	Name           string  `json:"name"`
	Role           Role    `json:"role"`
	Department     string  `json:"department"`
	Position       string  `json:"position"`
	JoinDate       string  `json:"join_date"`
	ProfilePicture *string `json:"profile_picture,omitempty"`
}

// IsAdmin reports whether the user may reach the admin surfaces.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleHR
}

// StoredUser is a registered account as kept in storage.
type StoredUser struct {
	User
	PasswordHash string
}
