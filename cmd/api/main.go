package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dayflow-hris/workforce-backend-go/internal/config"
	"github.com/dayflow-hris/workforce-backend-go/internal/fixtures"
	appHTTP "github.com/dayflow-hris/workforce-backend-go/internal/handler/http"
	"github.com/dayflow-hris/workforce-backend-go/internal/pkg/clock"
	"github.com/dayflow-hris/workforce-backend-go/internal/pkg/database"
	"github.com/dayflow-hris/workforce-backend-go/internal/pkg/jwt"
	"github.com/dayflow-hris/workforce-backend-go/internal/pkg/kvstore"
	"github.com/dayflow-hris/workforce-backend-go/internal/repository/kv"
	"github.com/dayflow-hris/workforce-backend-go/internal/repository/postgresql"
	"github.com/dayflow-hris/workforce-backend-go/internal/repository/sqlite"
	attendanceService "github.com/dayflow-hris/workforce-backend-go/internal/service/attendance"
	dashboardService "github.com/dayflow-hris/workforce-backend-go/internal/service/dashboard"
	employeeService "github.com/dayflow-hris/workforce-backend-go/internal/service/employee"
	leaveService "github.com/dayflow-hris/workforce-backend-go/internal/service/leave"
	payrollService "github.com/dayflow-hris/workforce-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	logger := appHTTP.NewLogger(cfg.App)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		slog.Error("Failed to open storage", "driver", cfg.Storage.Driver, "error", err)
		os.Exit(1)
	}
	defer closeStore()

	attendanceRepo := kv.NewAttendanceRepository(store)
	leaveRequestRepo := kv.NewLeaveRequestRepository(store)
	salaryRepo := kv.NewSalaryRepository(store)
	registeredRepo := kv.NewRegisteredEmployeeRepository(store)
	profileRepo := kv.NewProfileRepository(store)

	clk := clock.System{Location: cfg.App.Location}
	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	employeeSvc := employeeService.NewEmployeeService(fixtures.SeedEmployees(), registeredRepo, profileRepo, clk)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeSvc, clk, cfg.App.WeekStart)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo, employeeSvc, clk)
	payrollSvc := payrollService.NewPayrollService(salaryRepo, employeeSvc, clk)
	dashboardSvc := dashboardService.NewDashboardService(employeeSvc, attendanceSvc, leaveSvc, payrollSvc, clk)

	if cfg.Storage.SeedDefaultSalaries {
		// Salary reads keep failing until the stored table is repaired.
		if err := payrollSvc.SeedDefaults(ctx, fixtures.DefaultSalaries()); err != nil {
			slog.Error("Failed to seed default salaries", "error", err)
		}
	}

	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc, clk)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		cfg,
		logger,
		JWTService,
		dashboardHandler,
		attendanceHandler,
		leaveHandler,
		employeeHandler,
		payrollHandler,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("Server running", "addr", server.Addr, "storage", cfg.Storage.Driver)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}
}

// openStore connects the configured key-value backend. The returned func
// releases it.
func openStore(ctx context.Context, cfg *config.Config) (kvstore.Store, func(), error) {
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		return kvstore.NewMemory(), func() {}, nil

	case config.StorageSQLite:
		db, err := database.NewSQLiteDB(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		store, err := sqlite.NewKVStore(db)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		return store, func() { db.Close() }, nil

	case config.StoragePostgres:
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{
			MaxConns: cfg.Database.MaxConns,
			MinConns: cfg.Database.MinConns,
		})
		if err != nil {
			return nil, nil, err
		}
		if err := postgresql.MigrateKV(ctx, db); err != nil {
			db.Close()
			return nil, nil, err
		}
		return postgresql.NewKVStore(db), db.Close, nil
	}
	return nil, nil, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
}
