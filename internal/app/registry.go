package app

import (
	"context"
	"database/sql"
	"time"

	"go-hrms/internal/appraisal"
	"go-hrms/internal/attendance"
	"go-hrms/internal/calendar"
	"go-hrms/internal/config"
	"go-hrms/internal/department"
	"go-hrms/internal/designation"
	"go-hrms/internal/employee"
	"go-hrms/internal/leave"
	"go-hrms/internal/location"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/middleware"
	"go-hrms/internal/payroll"
	"go-hrms/internal/performance"
	"go-hrms/internal/rbac"
	"go-hrms/internal/rbac/infra"
	"go-hrms/internal/rbac/rbac_http"
	"go-hrms/internal/reporting"
	"go-hrms/internal/salarystructure"
	"go-hrms/internal/shared/counter"
	"go-hrms/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	appraisalRepo := appraisal.NewRepository(gormDB)
	calendarRepo := calendar.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	designationRepo := designation.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	locationRepo := location.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	payrollRepo := payroll.NewRepository(gormDB)
	performanceRepo := performance.NewRepository(gormDB)
	salaryStructureRepo := salarystructure.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)

	// --- RBAC Core ---
	defaults, err := rbac.DefaultGrants()
	if err != nil {
		return err
	}
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer, defaults)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := rbacService.LoadPolicy(ctx); err != nil {
		return err
	}

	exporter := reporting.NewXLSXExporter(cfg.ExportDir)

	// --- Services ---
	attendanceService := attendance.NewService(db, attendanceRepo, exporter)
	calendarService := calendar.NewService(calendarRepo)
	departmentService := department.NewService(db, departmentRepo)
	designationService := designation.NewService(db, designationRepo, rdb)
	employeeService := employee.NewService(db, employeeRepo, userRepo, counterRepo, outboxRepo, rdb)
	leaveService := leave.NewService(db, leaveRepo, attendanceService, calendarService, outboxRepo)
	locationService := location.NewService(db, locationRepo)
	salaryStructureService := salarystructure.NewService(db, salaryStructureRepo)
	payrollService := payroll.NewService(db, payrollRepo, salaryStructureRepo, payroll.NoHolidays{}, exporter, outboxRepo)
	performanceService := performance.NewService(performanceRepo)
	appraisalService := appraisal.NewService(db, appraisalRepo, performanceRepo, employeeRepo, salaryStructureRepo, outboxRepo)

	// --- Handlers ---
	attendanceHandler := attendance.NewHandler(attendanceService)
	appraisalHandler := appraisal.NewHandler(appraisalService)
	calendarHandler := calendar.NewHandler(calendarService)
	departmentHandler := department.NewHandler(departmentService)
	designationHandler := designation.NewHandler(designationService)
	employeeHandler := employee.NewHandler(employeeService)
	leaveHandler := leave.NewHandler(leaveService)
	locationHandler := location.NewHandler(locationService)
	payrollHandler := payroll.NewHandlerWithRedis(payrollService, rdb)
	performanceHandler := performance.NewHandler(performanceService)
	rbacHandler := rbac.NewHandler(rbacService)
	salaryStructureHandler := salarystructure.NewHandler(salaryStructureService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	api.Use(
		middleware.RequestID(),
		middleware.AuthMiddleware(cfg.JWTSecret),
		middleware.ContextLogger(zap.L()),
	)
	{
		appraisal.RegisterRoutes(api, appraisalHandler, rbacService)
		attendance.RegisterRoutes(api, attendanceHandler, rbacService)
		calendar.RegisterRoutes(api, calendarHandler, rbacService)
		department.RegisterRoutes(api, departmentHandler, rbacService)
		designation.RegisterRoutes(api, designationHandler, rbacService)
		employee.RegisterRoutes(api, employeeHandler, rbacService)
		leave.RegisterRoutes(api, leaveHandler, rbacService)
		location.RegisterRoutes(api, locationHandler, rbacService)
		payroll.RegisterRoutes(api, payrollHandler, rbacService, rdb)
		performance.RegisterRoutes(api, performanceHandler, rbacService)
		salarystructure.RegisterRoutes(api, salaryStructureHandler, rbacService)
		rbac_http.RegisterRoutes(api, rbacHandler, rbacService)
	}

	return nil
}
