package app

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"speed-hrm/internal/activitylog"
	"speed-hrm/internal/chartofaccount"
	"speed-hrm/internal/config"
	"speed-hrm/internal/geography"
	"speed-hrm/internal/migration"
	"speed-hrm/internal/rbac"
	"speed-hrm/internal/user"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedTask fills one area of reference data. Every task is idempotent.
type SeedTask func(ctx context.Context, db *gorm.DB, cfg config.Config, recorder activitylog.Recorder, logger *zap.Logger) error

var seedTasks = map[string]SeedTask{
	"rbac":   seedRBAC,
	"coa":    seedChartOfAccounts,
	"cities": seedCities,
	"admin":  seedAdmin,
}

// seedOrder is the order "all" runs in.
var seedOrder = []string{"rbac", "coa", "cities", "admin"}

func SeedTargets() []string {
	out := make([]string, 0, len(seedTasks))
	for name := range seedTasks {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// RunSeed migrates when configured and then runs the named targets. "all"
// expands to every target.
func RunSeed(ctx context.Context, cfg config.Config, targets []string) error {
	logger := zap.L().Named("app.seed")

	if len(targets) == 0 || (len(targets) == 1 && targets[0] == "all") {
		targets = seedOrder
	}
	for _, t := range targets {
		if _, ok := seedTasks[t]; !ok {
			return fmt.Errorf("unknown seed target %q", t)
		}
	}

	conns, err := Connect(config.Config{
		DBHost:          cfg.DBHost,
		DBUser:          cfg.DBUser,
		DBPassword:      cfg.DBPassword,
		DBName:          cfg.DBName,
		DBPort:          cfg.DBPort,
		DBSSLMode:       cfg.DBSSLMode,
		ConnectRetries:  cfg.ConnectRetries,
		ActivityLogSink: sinkDB,
	}, logger)
	if err != nil {
		return err
	}
	defer conns.Close()

	if cfg.RunMigrations {
		if err := migration.Run(ctx, conns.DB, logger); err != nil {
			return err
		}
	}

	recorder := activitylog.NewAsyncRecorder(activitylog.NewRepository(conns.DB), cfg.ActivityLogBuffer, logger)
	defer recorder.Close()

	for _, t := range targets {
		logger.Info("seeding", zap.String("target", t))
		if err := seedTasks[t](ctx, conns.DB, cfg, recorder, logger); err != nil {
			return fmt.Errorf("seed %s: %w", t, err)
		}
	}
	return nil
}

func seedRBAC(ctx context.Context, db *gorm.DB, _ config.Config, _ activitylog.Recorder, logger *zap.Logger) error {
	if err := rbac.NewRepository(db).SeedDefaults(ctx); err != nil {
		return err
	}
	logger.Info("rbac defaults ensured",
		zap.Int("permissions", len(rbac.DefaultPermissions())),
		zap.Int("inheritances", len(rbac.DefaultInheritances())),
	)
	return nil
}

func seedChartOfAccounts(ctx context.Context, db *gorm.DB, _ config.Config, recorder activitylog.Recorder, logger *zap.Logger) error {
	seeder := chartofaccount.NewSeeder(db, chartofaccount.NewRepository(db), recorder, logger)
	res, err := seeder.Seed(ctx, chartofaccount.DefaultTree())
	if err != nil {
		return err
	}
	logger.Info("chart of accounts seeded",
		zap.Int("created", res.Created),
		zap.Int("reparented", res.Reparented),
		zap.Int("unchanged", res.Unchanged),
	)
	return nil
}

func seedCities(ctx context.Context, db *gorm.DB, cfg config.Config, recorder activitylog.Recorder, logger *zap.Logger) error {
	seeder := geography.NewSeeder(db, geography.NewRepository(db), recorder, logger)
	res, err := seeder.SeedCities(ctx, cfg.SeedCitiesFile, cfg.SeedCountryCode)
	if err != nil {
		return err
	}
	logger.Info("cities seeded",
		zap.String("country", res.Country),
		zap.Int("states_created", res.StatesCreated),
		zap.Int64("cities_created", res.CitiesCreated),
		zap.Int64("cities_skipped", res.CitiesSkipped),
	)
	return nil
}

func seedAdmin(ctx context.Context, db *gorm.DB, cfg config.Config, recorder activitylog.Recorder, logger *zap.Logger) error {
	if cfg.SeedAdminPassword == "" {
		return errors.New("SEED_ADMIN_PASSWORD is required")
	}

	svc := user.NewService(db, user.NewRepository(db), recorder, logger)
	resp, created, err := svc.EnsureUser(ctx, user.CreateUserRequest{
		Email:    cfg.SeedAdminEmail,
		Name:     cfg.SeedAdminName,
		Password: cfg.SeedAdminPassword,
		Role:     rbac.RoleAdmin,
	})
	if err != nil {
		return err
	}
	logger.Info("admin user ensured", zap.String("email", resp.Email), zap.Bool("created", created))
	return nil
}
