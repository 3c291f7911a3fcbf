// Command seed loads reference data: role policies, the chart of accounts,
// cities of one country and the first admin account.
//
//	seed [-cities data/cities.json] [-country PK] [all|rbac|coa|cities|admin ...]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"speed-hrm/internal/app"
	"speed-hrm/internal/config"
	"speed-hrm/internal/shared/apperror"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	fs := flag.NewFlagSet("seed", flag.ExitOnError)
	fs.StringVar(&cfg.SeedCitiesFile, "cities", cfg.SeedCitiesFile, "city JSON file")
	country := fs.String("country", cfg.SeedCountryCode, "ISO2 code of the country to import")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: seed [flags] [all|%s ...]\n", strings.Join(app.SeedTargets(), "|"))
		fs.PrintDefaults()
	}
	_ = fs.Parse(os.Args[1:])
	cfg.SeedCountryCode = strings.ToUpper(*country)

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.RunSeed(ctx, cfg, fs.Args()); err != nil {
		logger.Fatal("seed failed", zap.Error(err))
	}
}
