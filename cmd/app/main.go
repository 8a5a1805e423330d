// @title EmberForge API
// @version 1.0
// @description Loot generation, item forging and energy for player profiles.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/EmberForge_Go/internal/archetype"
	"github.com/osse101/EmberForge_Go/internal/config"
	"github.com/osse101/EmberForge_Go/internal/database"
	"github.com/osse101/EmberForge_Go/internal/database/memory"
	"github.com/osse101/EmberForge_Go/internal/database/postgres"
	"github.com/osse101/EmberForge_Go/internal/economy"
	"github.com/osse101/EmberForge_Go/internal/event"
	"github.com/osse101/EmberForge_Go/internal/logger"
	"github.com/osse101/EmberForge_Go/internal/loot"
	"github.com/osse101/EmberForge_Go/internal/metrics"
	"github.com/osse101/EmberForge_Go/internal/profile"
	"github.com/osse101/EmberForge_Go/internal/repository"
	"github.com/osse101/EmberForge_Go/internal/scheduler"
	"github.com/osse101/EmberForge_Go/internal/server"
	"github.com/osse101/EmberForge_Go/internal/utils"
	"github.com/osse101/EmberForge_Go/internal/worker"
)

const (
	backgroundWorkers   = 2
	backgroundQueueSize = 16
	shutdownTimeout     = 15 * time.Second
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("ember-forge: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	initLogger(cfg)

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		return err
	}
	for _, w := range warnings {
		logger.Warn("Environment warning", "warning", w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	archetypes, err := archetype.LoadRepository(cfg.ArchetypesPath)
	if err != nil {
		return err
	}
	catalog, err := loot.LoadCatalog(cfg.LootCatalogPath, archetypes, cfg.LootTierCount)
	if err != nil {
		return err
	}

	rnd := utils.RandomFloat
	if cfg.LootRandomSeed != 0 {
		rnd = utils.SeededRandomFloat(cfg.LootRandomSeed)
		logger.Info("Loot RNG seeded", "seed", cfg.LootRandomSeed)
	}
	engine := loot.NewEngine(catalog, archetypes, rnd)

	forge := economy.NewForge(economy.CostCurve{
		BaseCost:   int(math.Round(cfg.ForgeBaseCost)),
		Multiplier: cfg.ForgeCostMultiplier,
		MaxLevel:   cfg.ForgeMaxLevel,
	})

	repo, pool, err := openStorage(ctx, cfg)
	if err != nil {
		return err
	}
	var dbPool database.Pool
	if pool != nil {
		defer pool.Close()
		dbPool = pool
	}

	bus := event.NewMemoryBus()
	metrics.NewEventMetricsCollector().Register(bus)
	publisher, err := event.NewResilientPublisher(bus, cfg.EventMaxRetries, cfg.EventRetryDelay, cfg.EventDeadLetterPath)
	if err != nil {
		return err
	}

	profiles := profile.NewService(repo, archetypes, engine, forge, publisher, profile.Config{
		SlotCapacity: cfg.ProfileSlotCapacity,
		CacheSize:    cfg.ProfileCacheSize,
		CacheTTL:     cfg.ProfileCacheTTL,
	})

	workers := worker.NewPool(backgroundWorkers, backgroundQueueSize)
	workers.Start()
	sched := scheduler.New(workers)
	sched.Schedule(cfg.EnergyTickInterval, worker.NewEnergyRegenJob(profiles, time.Now))

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		ServiceName:    cfg.ServiceName,
		Version:        cfg.Version,
	}, server.Dependencies{
		Profiles: profiles,
		Rewards:  engine,
		DBPool:   dbPool,
	})

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-serveErr:
		if err != nil {
			logger.Error("Server failed", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Stop intake first, then background ticks, then drain pending events
	stopErr := srv.Stop(shutdownCtx)
	sched.Stop()
	workers.Stop()
	pubErr := publisher.Shutdown(shutdownCtx)

	if err := errors.Join(stopErr, pubErr); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("Shutdown complete")
	return nil
}

// openStorage returns the profile repository for cfg.Storage. The pool is
// nil for in-memory storage.
func openStorage(ctx context.Context, cfg *config.Config) (repository.Profile, *pgxpool.Pool, error) {
	if cfg.Storage != config.StoragePostgres {
		logger.Info("Using in-memory profile storage")
		return memory.NewProfileRepository(), nil, nil
	}

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns,
		database.DefaultMaxConnIdleTime, database.DefaultMaxConnLifetime)
	if err != nil {
		return nil, nil, err
	}
	if err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, err
	}
	return postgres.NewProfileRepository(pool), pool, nil
}
