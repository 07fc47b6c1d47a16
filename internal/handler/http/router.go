package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/dayflow-hris/workforce-backend-go/internal/config"
	"github.com/dayflow-hris/workforce-backend-go/internal/handler/http/middleware"
	"github.com/dayflow-hris/workforce-backend-go/internal/handler/http/response"
	"github.com/dayflow-hris/workforce-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// NewLogger builds the JSON logger shared by the request log and the
// application.
func NewLogger(cfg config.AppConfig) *slog.Logger {
	logFormat := httplog.SchemaECS.Concise(cfg.Env == "development")
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.LogLevel,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "dayflow-workforce"),
		slog.String("version", cfg.Version),
		slog.String("env", cfg.Env),
	)
}

func NewRouter(
	cfg *config.Config,
	logger *slog.Logger,
	JWTService jwt.Service,
	dashboardHandler DashboardHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	employeeHandler EmployeeHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{"Location", "Content-Disposition", middleware.RequestIDHeader},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.App.LogLevel,
		Schema: httplog.SchemaECS,
	}))
	r.Use(middleware.RequestID)

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/", dashboardHandler.GetEmployeeDashboard)
				r.Get("/admin", dashboardHandler.GetAdminDashboard)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", attendanceHandler.CheckIn)
				r.Post("/check-out", attendanceHandler.CheckOut)
				r.Get("/today", attendanceHandler.Today)
				r.Get("/history", attendanceHandler.History)
				r.Get("/week", attendanceHandler.Week)
				r.Get("/employees/{employeeID}", attendanceHandler.GetEmployee)
				r.Route("/roll", func(r chi.Router) {
					r.Get("/", attendanceHandler.DailyRoll)
					r.Get("/export", attendanceHandler.ExportDailyRoll)
				})
			})

			r.Route("/leave-requests", func(r chi.Router) {
				r.Post("/", leaveHandler.Submit)
				r.Get("/", leaveHandler.ListAll)
				r.Get("/my", leaveHandler.ListMine)
				r.Get("/pending", leaveHandler.ListPending)
				r.Post("/{id}/decision", leaveHandler.Decide)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Post("/", employeeHandler.Create)
				r.Route("/{employeeID}", func(r chi.Router) {
					r.Get("/", employeeHandler.Get)
					r.Patch("/", employeeHandler.Update)
				})
			})

			r.Post("/onboarding", employeeHandler.CompleteOnboarding)

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/", payrollHandler.List)
				r.Route("/{employeeID}", func(r chi.Router) {
					r.Get("/", payrollHandler.Get)
					r.Put("/", payrollHandler.SetBaseSalary)
					r.Get("/payslip", payrollHandler.Payslip)
				})
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})
	return r
}
