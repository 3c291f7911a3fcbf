package app

import (
	"context"
	"net/http"

	"speed-hrm/internal/config"
	"speed-hrm/internal/middleware"
	"speed-hrm/internal/migration"
	"speed-hrm/internal/rbac"
	"speed-hrm/internal/rbac/infra"
	"speed-hrm/internal/shared/response"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects the infrastructure, optionally migrates, and mounts every
// module on router. The returned func releases everything BuildApp opened.
func BuildApp(ctx context.Context, router *gin.Engine, cfg config.Config) (func(), error) {
	logger := zap.L()

	conns, err := Connect(cfg, logger)
	if err != nil {
		return nil, err
	}

	if cfg.RunMigrations {
		if err := migration.Run(ctx, conns.DB, logger); err != nil {
			conns.Close()
			return nil, err
		}
	}

	rbacService, err := newRBACService(ctx, conns, logger)
	if err != nil {
		conns.Close()
		return nil, err
	}

	recorder, flush := newRecorder(cfg, conns.DB, conns, logger)
	cleanup := func() {
		flush()
		conns.Close()
	}

	router.Use(middleware.RequestID())
	router.Use(cors.New(corsConfig(cfg)))
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"}, nil)
	})

	if err := registerModules(router, cfg, conns.DB, conns.Redis, rbacService, recorder, logger); err != nil {
		cleanup()
		return nil, err
	}

	return cleanup, nil
}

func newRBACService(ctx context.Context, conns *Infra, logger *zap.Logger) (rbac.Service, error) {
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return nil, err
	}
	svc := rbac.NewService(rbac.NewRepository(conns.DB), enforcer, logger)
	if err := svc.LoadPolicy(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}

func corsConfig(cfg config.Config) cors.Config {
	c := cors.DefaultConfig()
	c.AddAllowHeaders("Authorization", middleware.HeaderRequestID, middleware.HeaderIdempotencyKey)
	c.AddExposeHeaders(middleware.HeaderRequestID)
	c.AllowCredentials = true
	if len(cfg.CORSOrigins) > 0 {
		c.AllowOrigins = cfg.CORSOrigins
	} else {
		c.AllowAllOrigins = false
		c.AllowOriginFunc = func(string) bool { return !cfg.IsProduction() }
	}
	return c
}
