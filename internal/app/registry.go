package app

import (
	"database/sql"
	"path/filepath"

	"odyssey-hcm/internal/attendance"
	"odyssey-hcm/internal/auth"
	"odyssey-hcm/internal/department"
	"odyssey-hcm/internal/employee"
	"odyssey-hcm/internal/leave"
	"odyssey-hcm/internal/messaging/kafka"
	"odyssey-hcm/internal/performance"
	"odyssey-hcm/internal/position"
	"odyssey-hcm/internal/rbac"
	"odyssey-hcm/internal/rbac/infra"
	"odyssey-hcm/internal/rbac/rbac_http"
	"odyssey-hcm/internal/recruitment"
	"odyssey-hcm/internal/shared/counter"
	"odyssey-hcm/internal/workflow"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	performanceRepo := performance.NewRepository(gormDB)
	positionRepo := position.NewRepository(gormDB)
	recruitmentRepo := recruitment.NewRepository(gormDB)
	workflowRepo := workflow.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(filepath.Join("internal", "rbac", "infra", "model.conf"))
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer, logger)

	// --- Services ---
	engine := workflow.NewEngine(workflowRepo, logger)
	ledger := leave.NewLedger(leaveRepo, rdb, logger)

	authService := auth.NewService(authRepo, rbacService, employeeRepo)
	attendanceService := attendance.NewService(db, attendanceRepo)
	departmentService := department.NewService(db, departmentRepo)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, counterRepo, outboxRepo, rdb, logger)
	leaveService := leave.NewService(db, leaveRepo, ledger, engine, outboxRepo, logger)
	performanceService := performance.NewService(db, performanceRepo, logger)
	positionService := position.NewService(db, positionRepo, rdb, logger)
	recruitmentService := recruitment.NewService(db, recruitmentRepo, counterRepo, engine, outboxRepo, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, logger)
	attendanceHandler := attendance.NewHandler(attendanceService)
	departmentHandler := department.NewHandler(departmentService)
	employeeHandler := employee.NewHandler(employeeService, logger)
	leaveHandler := leave.NewHandler(leaveService, logger)
	performanceHandler := performance.NewHandler(performanceService, logger)
	positionHandler := position.NewHandler(positionService)
	recruitmentHandler := recruitment.NewHandler(recruitmentService, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)

	// --- Routes ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		attendance.RegisterRoutes(api, attendanceHandler, rbacService)
		department.RegisterRoutes(api, departmentHandler, rbacService)
		employee.RegisterRoutes(api, employeeHandler, rbacService, logger)
		leave.RegisterRoutes(api, leaveHandler, rbacService, rdb)
		performance.RegisterRoutes(api, performanceHandler, rbacService)
		position.RegisterRoutes(api, positionHandler, rbacService)
		recruitment.RegisterRoutes(api, recruitmentHandler, rbacService, rdb)
		rbac_http.RegisterRoutes(api, rbacHandler, rbacService)
	}

	return nil
}
