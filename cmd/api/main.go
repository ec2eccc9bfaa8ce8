package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/dayflow-hr-go/internal/config"
	appHTTP "github.com/cmlabs-hris/dayflow-hr-go/internal/handler/http"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/pkg/clock"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/pkg/cron"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/pkg/database"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/pkg/mockdata"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/pkg/sse"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/pkg/storage"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/repository/kvstore"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/repository/memory"
	attendanceService "github.com/cmlabs-hris/dayflow-hr-go/internal/service/attendance"
	serviceAuth "github.com/cmlabs-hris/dayflow-hr-go/internal/service/auth"
	dashboardService "github.com/cmlabs-hris/dayflow-hr-go/internal/service/dashboard"
	employeeService "github.com/cmlabs-hris/dayflow-hr-go/internal/service/employee"
	leaveService "github.com/cmlabs-hris/dayflow-hr-go/internal/service/leave"
	payrollService "github.com/cmlabs-hris/dayflow-hr-go/internal/service/payroll"
	reportService "github.com/cmlabs-hris/dayflow-hr-go/internal/service/report"
)

const version = "v1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})).With(
		slog.String("app", "dayflow-hr"),
		slog.String("version", version),
		slog.String("env", cfg.App.Env),
	))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	c := clock.New(cfg.Location())

	// Seed the HR dataset
	catalog := mockdata.DefaultCatalog()
	if cfg.Seed.CatalogPath != "" {
		loaded, err := mockdata.LoadCatalog(cfg.Seed.CatalogPath)
		if err != nil {
			return err
		}
		catalog = loaded
	}
	generator := mockdata.NewGenerator(mockdata.NewSource(cfg.Seed.RandomSeed), catalog)
	dataset, err := generator.Generate(cfg.Seed.EmployeeCount, c.Now())
	if err != nil {
		return fmt.Errorf("failed to generate dataset: %w", err)
	}
	slog.Info("HR dataset generated",
		"employees", len(dataset.Employees),
		"attendance", len(dataset.Attendance),
		"leave_requests", len(dataset.LeaveRequests),
	)

	store := memory.NewStore(dataset, c)
	employeeRepo := memory.NewEmployeeRepository(store)
	attendanceRepo := memory.NewAttendanceRepository(store)
	leaveRequestRepo := memory.NewLeaveRequestRepository(store)
	dashboardRepo := memory.NewDashboardRepository(store)

	// Account and session persistence
	kv, closeStorage, err := newKeyValueStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStorage()
	userRepo := kvstore.NewUserRepository(kv)

	JWTService, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	if err != nil {
		return fmt.Errorf("invalid JWT configuration: %w", err)
	}
	hub := sse.NewHub()

	authService := serviceAuth.NewAuthService(userRepo, employeeRepo, JWTService, c)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, c, hub)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo, hub)
	payrollSvc := payrollService.NewPayrollService(employeeRepo, c)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, c)
	reportSvc := reportService.NewReportService(dashboardRepo)

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		AllowedOrigins: []string{cfg.App.FrontendURL},
		Version:        version,
		Env:            cfg.App.Env,
		LogLevel:       cfg.SlogLevel(),
	}, JWTService, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authService),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:        appHTTP.NewLeaveHandler(leaveSvc),
		Payroll:      appHTTP.NewPayrollHandler(payrollSvc),
		Dashboard:    appHTTP.NewDashboardHandler(dashboardSvc),
		Report:       appHTTP.NewReportHandler(reportSvc),
		Notification: appHTTP.NewNotificationHandler(hub, JWTService),
	})

	scheduler := cron.NewScheduler()
	cron.NewTokenJobs(JWTService).Register(scheduler)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	// No WriteTimeout: SSE streams stay open.
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server starting", "addr", server.Addr, "storage", cfg.Storage.Type)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("Server stopped gracefully")
	return nil
}

// newKeyValueStorage opens the storage backend named by STORAGE_TYPE. The
// returned func releases it.
func newKeyValueStorage(ctx context.Context, cfg *config.Config) (storage.KeyValueStorage, func(), error) {
	switch cfg.Storage.Type {
	case config.StorageLocal:
		local, err := storage.NewLocalStorage(cfg.Storage.BasePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize local storage: %w", err)
		}
		return local, func() {}, nil
	case config.StoragePostgres:
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.DefaultPoolOptions)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		pg := storage.NewPostgresStorage(db)
		if err := pg.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		return pg, db.Close, nil
	default:
		return storage.NewMemoryStorage(), func() {}, nil
	}
}
