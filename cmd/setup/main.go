// Command setup creates the profile database if it is missing and applies
// the embedded migrations. With -reset the database is dropped first.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/EmberForge_Go/internal/config"
	"github.com/osse101/EmberForge_Go/internal/database"
	"github.com/osse101/EmberForge_Go/internal/logger"
)

const setupTimeout = 2 * time.Minute

func main() {
	reset := flag.Bool("reset", false, "drop the database before recreating it")
	flag.Parse()

	if err := run(*reset); err != nil {
		logger.Error("Setup failed", "error", err)
		os.Exit(1)
	}
}

func run(reset bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.InitLogger(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, "ember-forge-setup", cfg.Version, cfg.Environment, false))

	ctx, cancel := context.WithTimeout(context.Background(), setupTimeout)
	defer cancel()

	if err := ensureDatabase(ctx, cfg, reset); err != nil {
		return err
	}

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), 1,
		database.DefaultMaxConnIdleTime, database.DefaultMaxConnLifetime)
	if err != nil {
		return err
	}
	defer pool.Close()

	return database.Migrate(ctx, pool)
}

// ensureDatabase connects to the maintenance database and creates cfg.DBName,
// dropping it first when reset is set
func ensureDatabase(ctx context.Context, cfg *config.Config, reset bool) error {
	conn, err := pgx.Connect(ctx, cfg.GetMaintenanceConnString())
	if err != nil {
		return fmt.Errorf("connect to maintenance database: %w", err)
	}
	defer conn.Close(ctx)

	ident := pgx.Identifier{cfg.DBName}.Sanitize()
	log := logger.FromContext(ctx).With("database", cfg.DBName)

	if reset {
		if _, err := conn.Exec(ctx,
			`SELECT pg_terminate_backend(pid) FROM pg_stat_activity WHERE datname = $1 AND pid <> pg_backend_pid()`,
			cfg.DBName); err != nil {
			log.Warn("Failed to terminate connections", "error", err)
		}
		if _, err := conn.Exec(ctx, "DROP DATABASE IF EXISTS "+ident); err != nil {
			return fmt.Errorf("drop database: %w", err)
		}
		log.Info("Database dropped")
	}

	var exists bool
	if err := conn.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists); err != nil {
		return fmt.Errorf("check database: %w", err)
	}
	if exists {
		log.Info("Database already exists")
		return nil
	}

	if _, err := conn.Exec(ctx, "CREATE DATABASE "+ident); err != nil {
		return fmt.Errorf("create database: %w", err)
	}
	log.Info("Database created")
	return nil
}
