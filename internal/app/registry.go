package app

import (
	"time"

	"speed-hrm/internal/activitylog"
	"speed-hrm/internal/attendance"
	"speed-hrm/internal/auth"
	"speed-hrm/internal/bonus"
	"speed-hrm/internal/chartofaccount"
	"speed-hrm/internal/config"
	"speed-hrm/internal/contribution"
	"speed-hrm/internal/deduction"
	"speed-hrm/internal/department"
	"speed-hrm/internal/employee"
	"speed-hrm/internal/geography"
	"speed-hrm/internal/masterdata"
	"speed-hrm/internal/middleware"
	"speed-hrm/internal/rbac"
	"speed-hrm/internal/shared/cache"
	"speed-hrm/internal/shared/counter"
	"speed-hrm/internal/taxslab"
	"speed-hrm/internal/user"
	"speed-hrm/internal/workinghours"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg config.Config,
	db *gorm.DB,
	rdb *redis.Client,
	rbacService rbac.Service,
	recorder activitylog.Recorder,
	logger *zap.Logger,
) error {
	lateAfter, err := attendance.ParseClock(cfg.AttendanceLateAfter)
	if err != nil {
		return err
	}
	listCache := cache.NewListCache(rdb, cache.DefaultTTL, logger)

	// --- Repositories ---
	activityRepo := activitylog.NewRepository(db)
	attendanceRepo := attendance.NewRepository(db)
	authRepo := auth.NewRepository(db)
	bonusRepo := bonus.NewRepository(db)
	coaRepo := chartofaccount.NewRepository(db)
	contributionRepo := contribution.NewRepository(db)
	deductionRepo := deduction.NewRepository(db)
	departmentRepo := department.NewRepository(db)
	employeeRepo := employee.NewRepository(db)
	geographyRepo := geography.NewRepository(db)
	masterdataRepo := masterdata.NewRepository(db)
	taxslabRepo := taxslab.NewRepository(db)
	userRepo := user.NewRepository(db)
	workinghoursRepo := workinghours.NewRepository(db)

	// --- Services ---
	activityService := activitylog.NewService(activityRepo, logger)
	attendanceService := attendance.NewService(db, attendanceRepo, recorder, attendance.Options{
		LateAfter: lateAfter,
		Location:  time.Local,
	}, logger)
	authService := auth.NewService(authRepo, cfg.JWTSecret, auth.DefaultTokenTTL, recorder, logger)
	bonusService := bonus.NewService(db, bonusRepo, recorder, logger)
	coaService := chartofaccount.NewService(db, coaRepo, recorder, logger)
	contributionService := contribution.NewService(db, contributionRepo, recorder, logger)
	deductionService := deduction.NewService(db, deductionRepo, recorder, logger)
	departmentService := department.NewService(db, departmentRepo, recorder, listCache, logger)
	employeeService := employee.NewService(db, employeeRepo, counter.NewRepository(db), recorder, listCache, logger)
	geographyService := geography.NewService(db, geographyRepo, recorder, logger)
	masterdataService := masterdata.NewService(db, masterdataRepo, recorder, listCache, logger)
	taxslabService := taxslab.NewService(db, taxslabRepo, recorder, logger)
	userService := user.NewService(db, userRepo, recorder, logger)
	workinghoursService := workinghours.NewService(db, workinghoursRepo, recorder, logger)

	// --- Handlers ---
	activityHandler := activitylog.NewHandler(activityService, logger)
	attendanceHandler := attendance.NewHandler(attendanceService, logger)
	authHandler := auth.NewHandler(authService, cfg.IsProduction(), logger)
	bonusHandler := bonus.NewHandler(bonusService, logger)
	coaHandler := chartofaccount.NewHandler(coaService, logger)
	contributionHandler := contribution.NewHandler(contributionService, logger)
	deductionHandler := deduction.NewHandler(deductionService, logger)
	departmentHandler := department.NewHandler(departmentService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	geographyHandler := geography.NewHandler(geographyService, logger)
	masterdataHandler := masterdata.NewHandler(masterdataService, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)
	taxslabHandler := taxslab.NewHandler(taxslabService, logger)
	userHandler := user.NewHandler(userService, logger)
	workinghoursHandler := workinghours.NewHandler(workinghoursService, logger)

	// --- Routes Registration ---
	api := router.Group("/api")
	auth.RegisterRoutes(api, authHandler, cfg.JWTSecret)

	protected := api.Group("",
		middleware.AuthMiddleware(cfg.JWTSecret),
		middleware.ContextLogger(logger),
	)
	{
		activitylog.RegisterRoutes(protected, activityHandler, rbacService)
		attendance.RegisterRoutes(protected, attendanceHandler, rbacService)
		bonus.RegisterRoutes(protected, bonusHandler, rbacService, rdb)
		chartofaccount.RegisterRoutes(protected, coaHandler, rbacService, rdb)
		contribution.RegisterRoutes(protected, contributionHandler, rbacService, rdb)
		deduction.RegisterRoutes(protected, deductionHandler, rbacService, rdb)
		department.RegisterRoutes(protected, departmentHandler, rbacService, rdb)
		employee.RegisterRoutes(protected, employeeHandler, rbacService, rdb)
		geography.RegisterRoutes(protected, geographyHandler, rbacService, rdb)
		masterdata.RegisterRoutes(protected, masterdataHandler, rbacService, rdb)
		rbac.RegisterRoutes(protected, rbacHandler, rbacService)
		taxslab.RegisterRoutes(protected, taxslabHandler, rbacService, rdb)
		user.RegisterRoutes(protected, userHandler, rbacService)
		workinghours.RegisterRoutes(protected, workinghoursHandler, rbacService, rdb)
	}

	return nil
}
