package main

import (
	"database/sql"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/pflag"
	"github.com/techzone/backend/internal/infrastructure/config"
	"github.com/techzone/backend/internal/infrastructure/logger"
	"github.com/techzone/backend/internal/infrastructure/migration"
	"go.uber.org/zap"

	_ "github.com/lib/pq"
)

func main() {
	var (
		configPath     string
		migrationsPath string
	)
	pflag.StringVar(&configPath, "config", "config.toml", "path to the config file")
	pflag.StringVar(&migrationsPath, "path", "migrations", "path to the migrations directory")
	pflag.Parse()

	args := pflag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("open database", zap.Error(err))
	}
	defer db.Close()

	migrator, err := migration.New(db, migrationsPath, log)
	if err != nil {
		log.Fatal("create migrator", zap.Error(err))
	}

	switch args[0] {
	case "up":
		err = migrator.Up()
	case "down":
		err = migrator.Down()
	case "version":
		var version uint
		var dirty bool
		version, dirty, err = migrator.Version()
		if err == nil {
			log.Info("schema version", zap.Uint("version", version), zap.Bool("dirty", dirty))
		}
	case "force":
		if len(args) < 2 {
			log.Fatal("force requires a version argument")
		}
		var target int
		target, err = strconv.Atoi(args[1])
		if err == nil {
			err = migrator.Force(target)
		}
	default:
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: migrate [flags] <command>

Commands:
  up              apply all pending migrations
  down            roll back the most recent migration
  version         print the current schema version
  force <n>       overwrite the recorded version

Flags:
  --config path   config file (default config.toml)
  --path path     migrations directory (default migrations)`)
}
