package http

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/user"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/pkg/sse"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/pkg/storage"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/repository/kvstore"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/repository/memory"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/repository/memory/memorytest"
	attendanceService "github.com/cmlabs-hris/dayflow-hr-go/internal/service/attendance"
	authService "github.com/cmlabs-hris/dayflow-hr-go/internal/service/auth"
	dashboardService "github.com/cmlabs-hris/dayflow-hr-go/internal/service/dashboard"
	employeeService "github.com/cmlabs-hris/dayflow-hr-go/internal/service/employee"
	leaveService "github.com/cmlabs-hris/dayflow-hr-go/internal/service/leave"
	payrollService "github.com/cmlabs-hris/dayflow-hr-go/internal/service/payroll"
	reportService "github.com/cmlabs-hris/dayflow-hr-go/internal/service/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const handlerTestSecret = "test-secret-key-for-jwt"

type testServer struct {
	router http.Handler
	jwt    *jwt.JWTService
	hub    *sse.Hub
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	store, c := memorytest.NewStore()
	employeeRepo := memory.NewEmployeeRepository(store)
	attendanceRepo := memory.NewAttendanceRepository(store)
	leaveRepo := memory.NewLeaveRequestRepository(store)
	dashboardRepo := memory.NewDashboardRepository(store)
	userRepo := kvstore.NewUserRepository(storage.NewMemoryStorage())

	jwtService, err := jwt.NewJWTService(handlerTestSecret, "1h")
	require.NoError(t, err)
	hub := sse.NewHub()

	handlers := Handlers{
		Auth:         NewAuthHandler(authService.NewAuthService(userRepo, employeeRepo, jwtService, c)),
		Employee:     NewEmployeeHandler(employeeService.NewEmployeeService(employeeRepo)),
		Attendance:   NewAttendanceHandler(attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, c, hub)),
		Leave:        NewLeaveHandler(leaveService.NewLeaveService(leaveRepo, hub)),
		Payroll:      NewPayrollHandler(payrollService.NewPayrollService(employeeRepo, c)),
		Dashboard:    NewDashboardHandler(dashboardService.NewDashboardService(dashboardRepo, c)),
		Report:       NewReportHandler(reportService.NewReportService(dashboardRepo)),
		Notification: NewNotificationHandler(hub, jwtService),
	}

	router := NewRouter(RouterConfig{
		AllowedOrigins: []string{"http://localhost:3000"},
		Version:        "test",
		Env:            "test",
		LogLevel:       slog.LevelError,
	}, jwtService, handlers)

	return &testServer{router: router, jwt: jwtService, hub: hub}
}

func (s *testServer) token(t *testing.T, employeeID string, role user.Role) string {
	t.Helper()
	tok, _, err := s.jwt.GenerateAccessToken(user.User{
		ID:         "u-" + employeeID,
		EmployeeID: employeeID,
		Email:      strings.ToLower(employeeID) + "@dayflow.com",
		Name:       "Test " + employeeID,
		Role:       role,
	})
	require.NoError(t, err)
	return tok
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
	Meta *struct {
		Page       int `json:"page"`
		Limit      int `json:"limit"`
		TotalItems int `json:"total_items"`
		TotalPages int `json:"total_pages"`
	} `json:"meta"`
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec.Code, env
}

func TestAuth_LoginSessionLogout(t *testing.T) {
	s := newTestServer(t)

	code, env := s.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email": "admin@dayflow.com", "password": "password", "role": "admin",
	})
	require.Equal(t, http.StatusOK, code)
	var session struct {
		User        user.User `json:"user"`
		AccessToken string    `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &session))
	assert.Equal(t, "ADM001", session.User.EmployeeID)
	require.NotEmpty(t, session.AccessToken)

	code, env = s.do(t, http.MethodGet, "/api/v1/auth/session", "", nil)
	require.Equal(t, http.StatusOK, code)
	var current user.User
	require.NoError(t, json.Unmarshal(env.Data, &current))
	assert.Equal(t, "admin@dayflow.com", current.Email)

	code, env = s.do(t, http.MethodGet, "/api/v1/me", session.AccessToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"employee":null`)

	code, _ = s.do(t, http.MethodPost, "/api/v1/auth/logout", session.AccessToken, nil)
	require.Equal(t, http.StatusOK, code)

	code, env = s.do(t, http.MethodGet, "/api/v1/auth/session", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "null", string(env.Data))

	code, env = s.do(t, http.MethodGet, "/api/v1/me", session.AccessToken, nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
}

func TestAuth_LoginFailures(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name     string
		body     map[string]string
		wantCode int
	}{
		{"wrong password", map[string]string{"email": "admin@dayflow.com", "password": "nope", "role": "admin"}, http.StatusUnauthorized},
		{"wrong role", map[string]string{"email": "admin@dayflow.com", "password": "password", "role": "employee"}, http.StatusUnauthorized},
		{"invalid role", map[string]string{"email": "admin@dayflow.com", "password": "password", "role": "root"}, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := s.do(t, http.MethodPost, "/api/v1/auth/login", "", tt.body)
			assert.Equal(t, tt.wantCode, code)
			assert.False(t, env.Success)
		})
	}
}

func TestAuth_Signup(t *testing.T) {
	s := newTestServer(t)
	body := map[string]string{
		"employee_id": "EMP9001", "email": "priya.patel@gmail.com",
		"password": "secret1", "confirm_password": "secret1", "role": "employee",
	}

	code, env := s.do(t, http.MethodPost, "/api/v1/auth/signup", "", body)
	require.Equal(t, http.StatusCreated, code)
	assert.Contains(t, string(env.Data), `"name":"Priya Patel"`)

	code, env = s.do(t, http.MethodPost, "/api/v1/auth/signup", "", body)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "CONFLICT", env.Error.Code)

	body["email"] = "priya@company.com"
	code, env = s.do(t, http.MethodPost, "/api/v1/auth/signup", "", body)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Contains(t, env.Error.Details, "email")
}

func TestRouter_Gating(t *testing.T) {
	s := newTestServer(t)
	employeeToken := s.token(t, "EMP0002", user.RoleEmployee)
	hrToken := s.token(t, "HR001", user.RoleHR)

	tests := []struct {
		name     string
		method   string
		path     string
		token    string
		wantCode int
	}{
		{"no token", http.MethodGet, "/api/v1/employees", "", http.StatusUnauthorized},
		{"garbage token", http.MethodGet, "/api/v1/employees", "not-a-jwt", http.StatusUnauthorized},
		{"employee on admin list", http.MethodGet, "/api/v1/employees", employeeToken, http.StatusForbidden},
		{"employee on admin dashboard", http.MethodGet, "/api/v1/dashboard/admin", employeeToken, http.StatusForbidden},
		{"employee on reports", http.MethodGet, "/api/v1/reports", employeeToken, http.StatusForbidden},
		{"employee approving", http.MethodPost, "/api/v1/leave/requests/leave-1/approve", employeeToken, http.StatusForbidden},
		{"hr on admin list", http.MethodGet, "/api/v1/employees", hrToken, http.StatusOK},
		{"hr on reports", http.MethodGet, "/api/v1/reports", hrToken, http.StatusOK},
		{"employee dashboard", http.MethodGet, "/api/v1/dashboard/employee", employeeToken, http.StatusOK},
		{"unknown route", http.MethodGet, "/api/v1/nope", hrToken, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _ := s.do(t, tt.method, tt.path, tt.token, nil)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func TestRouter_SSETokenIsNotAnAccessToken(t *testing.T) {
	s := newTestServer(t)
	sseToken, _, err := s.jwt.GenerateSSEToken("EMP0001")
	require.NoError(t, err)

	code, _ := s.do(t, http.MethodGet, "/api/v1/attendance/today", sseToken, nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestEmployees_ListCreateUpdate(t *testing.T) {
	s := newTestServer(t)
	admin := s.token(t, "ADM001", user.RoleAdmin)

	code, env := s.do(t, http.MethodGet, "/api/v1/employees?department=Engineering&limit=1", admin, nil)
	require.Equal(t, http.StatusOK, code)
	require.NotNil(t, env.Meta)
	assert.Equal(t, 2, env.Meta.TotalItems)
	assert.Equal(t, 2, env.Meta.TotalPages)

	code, env = s.do(t, http.MethodGet, "/api/v1/employees?limit=500", admin, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Contains(t, env.Error.Details, "limit")

	code, env = s.do(t, http.MethodGet, "/api/v1/employees/departments", admin, nil)
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `["Engineering","Finance","Sales"]`, string(env.Data))

	code, _ = s.do(t, http.MethodPost, "/api/v1/employees", admin, map[string]interface{}{
		"employee_id": "EMP0005", "name": "Kabir Singh", "email": "kabir.singh@gmail.com",
		"department": "Marketing", "position": "Marketing Manager", "join_date": "2025-11-03",
		"salary": 900000, "leave_balance": map[string]int{"paid": 10, "sick": 5, "unpaid": 0},
	})
	require.Equal(t, http.StatusCreated, code)

	code, env = s.do(t, http.MethodPost, "/api/v1/employees", admin, map[string]interface{}{
		"employee_id": "EMP0001", "name": "Dup", "email": "dup@gmail.com",
		"department": "Sales", "position": "Sales Executive", "join_date": "2025-11-03",
	})
	assert.Equal(t, http.StatusConflict, code)

	code, env = s.do(t, http.MethodPatch, "/api/v1/employees/2", admin, map[string]interface{}{"position": "Sales Lead"})
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"position":"Sales Lead"`)

	code, env = s.do(t, http.MethodPatch, "/api/v1/employees/999", admin, map[string]interface{}{"position": "Ghost"})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "null", string(env.Data))

	code, _ = s.do(t, http.MethodGet, "/api/v1/employees/999", admin, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestAttendance_CheckInKeepsFirstTime(t *testing.T) {
	s := newTestServer(t)
	tok := s.token(t, "EMP0002", user.RoleEmployee)

	code, env := s.do(t, http.MethodPost, "/api/v1/attendance/check-in", tok, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"check_in":"09:05"`)

	code, env = s.do(t, http.MethodPost, "/api/v1/attendance/check-in", tok, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"check_in":"09:05"`)

	code, env = s.do(t, http.MethodGet, "/api/v1/attendance/today", tok, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"employee_id":"EMP0002"`)

	other := s.token(t, "EMP0004", user.RoleEmployee)
	code, env = s.do(t, http.MethodPost, "/api/v1/attendance/check-out", other, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "null", string(env.Data))
}

func TestLeave_SubmitAndReview(t *testing.T) {
	s := newTestServer(t)
	employeeToken := s.token(t, "EMP0002", user.RoleEmployee)
	hrToken := s.token(t, "HR001", user.RoleHR)

	code, env := s.do(t, http.MethodPost, "/api/v1/leave/requests", employeeToken, map[string]string{
		"type": "sick", "start_date": "2026-01-19", "end_date": "2026-01-19", "reason": "Fever",
	})
	require.Equal(t, http.StatusCreated, code)
	var submitted struct {
		ID           string `json:"id"`
		EmployeeID   string `json:"employee_id"`
		EmployeeName string `json:"employee_name"`
		Status       string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &submitted))
	assert.Equal(t, "EMP0002", submitted.EmployeeID)
	assert.Equal(t, "Test EMP0002", submitted.EmployeeName)
	assert.Equal(t, "pending", submitted.Status)

	events, cleanup := s.hub.Subscribe("EMP0001")
	defer cleanup()

	code, env = s.do(t, http.MethodPost, "/api/v1/leave/requests/leave-1/approve", hrToken, map[string]string{"comments": "ok"})
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"approved_by":"HR001"`)
	assert.Contains(t, string(env.Data), `"comments":"ok"`)

	select {
	case ev := <-events:
		assert.Equal(t, sse.EventLeaveApproved, ev.Event)
	case <-time.After(time.Second):
		t.Fatal("expected a leave.approved event")
	}

	code, env = s.do(t, http.MethodPost, "/api/v1/leave/requests/leave-4/reject", hrToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"status":"rejected"`)

	code, env = s.do(t, http.MethodPost, "/api/v1/leave/requests/leave-404/approve", hrToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "null", string(env.Data))

	code, env = s.do(t, http.MethodGet, "/api/v1/leave/requests?status=pending", hrToken, nil)
	require.Equal(t, http.StatusOK, code)
	var list struct {
		Pending struct {
			TotalItems int `json:"total_items"`
		} `json:"pending"`
		Processed struct {
			TotalItems int `json:"total_items"`
		} `json:"processed"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Equal(t, 1, list.Pending.TotalItems)
	assert.Equal(t, 0, list.Processed.TotalItems)
}

func TestNotifications_Stream(t *testing.T) {
	s := newTestServer(t)
	srv := httptest.NewServer(s.router)
	defer srv.Close()

	code, _ := s.do(t, http.MethodGet, "/api/v1/notifications/stream", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	tok := s.token(t, "EMP0001", user.RoleEmployee)
	code, env := s.do(t, http.MethodGet, "/api/v1/notifications/sse-token", tok, nil)
	require.Equal(t, http.StatusOK, code)
	var sseToken SSETokenResponse
	require.NoError(t, json.Unmarshal(env.Data, &sseToken))
	assert.Equal(t, int(jwt.SSETokenLifetime.Seconds()), sseToken.ExpiresIn)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/api/v1/notifications/stream?token="+sseToken.Token, nil)
	require.NoError(t, err)
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	line, err := reader.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "event: connected\n", line)

	require.Eventually(t, func() bool { return s.hub.SubscriberCount("EMP0001") == 1 }, time.Second, 10*time.Millisecond)
	s.hub.Publish(sse.Event{EmployeeID: "EMP0001", Event: sse.EventLeaveRejected, Data: map[string]string{"id": "leave-1"}})

	for {
		line, err = reader.ReadString('\n')
		require.NoError(t, err)
		if strings.HasPrefix(line, "event: "+sse.EventLeaveRejected) {
			break
		}
	}
	line, err = reader.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "data: {\"id\":\"leave-1\"}\n", line)
}
