package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/auth"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/employee"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/user"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/fixtures"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/pkg/clock"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	signupDepartment = "General"
	signupPosition   = "New Employee"
)

type AuthServiceImpl struct {
	user.UserRepository
	jwt.Service
	employeeRepo employee.EmployeeRepository
	clock        clock.Clock
	demoUsers    func() []user.StoredUser
}

func NewAuthService(userRepository user.UserRepository, employeeRepository employee.EmployeeRepository, jwtService jwt.Service, c clock.Clock) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository: userRepository,
		Service:        jwtService,
		employeeRepo:   employeeRepository,
		clock:          c,
		demoUsers:      fixtures.DemoUsers,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, loginReq auth.LoginRequest) (auth.SessionResponse, error) {
	if err := loginReq.Validate(); err != nil {
		return auth.SessionResponse{}, err
	}

	// Demo accounts take precedence over registered ones.
	candidates := append(a.demoUsers(), a.ListRegistered(ctx)...)
	for _, c := range candidates {
		if c.Email != loginReq.Email || string(c.Role) != loginReq.Role {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(loginReq.Password)) != nil {
			continue
		}
		return a.startSession(ctx, c.User)
	}

	return auth.SessionResponse{}, auth.ErrInvalidCredentials
}

// Signup implements auth.AuthService.
func (a *AuthServiceImpl) Signup(ctx context.Context, signupReq auth.SignupRequest) (auth.SessionResponse, error) {
	if err := signupReq.Validate(); err != nil {
		return auth.SessionResponse{}, err
	}

	for _, existing := range append(a.demoUsers(), a.ListRegistered(ctx)...) {
		if existing.Email == signupReq.Email || existing.EmployeeID == signupReq.EmployeeID {
			return auth.SessionResponse{}, auth.ErrUserAlreadyExists
		}
	}

	hashedPassword, err := a.hashPassword(signupReq.Password)
	if err != nil {
		return auth.SessionResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser := user.User{
		ID:         uuid.NewString(),
		EmployeeID: signupReq.EmployeeID,
		Email:      signupReq.Email,
		Name:       nameFromEmail(signupReq.Email),
		Role:       user.Role(signupReq.Role),
		Department: signupDepartment,
		Position:   signupPosition,
		JoinDate:   clock.Today(a.clock),
	}
	if !a.AppendRegistered(ctx, user.StoredUser{User: newUser, PasswordHash: hashedPassword}) {
		return auth.SessionResponse{}, auth.ErrUserAlreadyExists
	}

	return a.startSession(ctx, newUser)
}

func (a *AuthServiceImpl) startSession(ctx context.Context, u user.User) (auth.SessionResponse, error) {
	token, expiresAt, err := a.GenerateAccessToken(u)
	if err != nil {
		return auth.SessionResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	a.SetCurrentSession(ctx, u)
	return auth.SessionResponse{
		User:                 u,
		AccessToken:          token,
		AccessTokenExpiresIn: expiresAt,
	}, nil
}

// nameFromEmail turns "john.doe@gmail.com" into "John Doe". Only the first dot
// becomes a space; every letter that starts a word is upper-cased.
func nameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	local = strings.Replace(local, ".", " ", 1)

	out := []rune(local)
	prevWord := false
	for i, r := range out {
		isWord := unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
		if isWord && !prevWord {
			out[i] = unicode.ToUpper(r)
		}
		prevWord = isWord
	}
	return string(out)
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	a.ClearCurrentSession(ctx)
	if token != "" {
		a.RevokeToken(token)
	}
	return nil
}

// Session implements auth.AuthService.
func (a *AuthServiceImpl) Session(ctx context.Context) (*user.User, error) {
	return a.CurrentSession(ctx), nil
}

// Profile implements auth.AuthService.
func (a *AuthServiceImpl) Profile(ctx context.Context) (user.ProfileResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return user.ProfileResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return user.ProfileResponse{}, auth.ErrInvalidToken
	}

	u, ok := a.findUser(ctx, userID)
	if !ok {
		return user.ProfileResponse{}, user.ErrUserNotFound
	}

	res := user.ProfileResponse{User: u}
	emp, err := a.employeeRepo.GetByEmployeeID(ctx, u.EmployeeID)
	switch {
	case err == nil:
		res.Employee = &emp
	case !errors.Is(err, employee.ErrEmployeeNotFound):
		return user.ProfileResponse{}, fmt.Errorf("failed to get employee %q: %w", u.EmployeeID, err)
	}
	return res, nil
}

func (a *AuthServiceImpl) findUser(ctx context.Context, id string) (user.User, bool) {
	for _, c := range append(a.demoUsers(), a.ListRegistered(ctx)...) {
		if c.ID == id {
			return c.User, true
		}
	}
	return user.User{}, false
}
