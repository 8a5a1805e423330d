// Package pgtest starts a throwaway PostgreSQL container for integration tests.
package pgtest

import (
	"context"
	"fmt"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	image          = "postgres:15-alpine"
	startupTimeout = 60 * time.Second
)

// Start runs a postgres container and returns its connection string and a
// terminate func. When docker is unavailable it returns an error and a
// no-op terminate so callers can skip.
func Start(ctx context.Context) (connString string, terminate func(), err error) {
	terminate = func() {}

	// testcontainers panics when no docker host can be found
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("postgres container panicked: %v", r)
		}
	}()

	container, err := postgres.Run(ctx, image,
		postgres.WithDatabase("emberforge_test"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(startupTimeout)),
	)
	if err != nil {
		return "", terminate, fmt.Errorf("failed to start postgres container: %w", err)
	}

	terminate = func() {
		if err := container.Terminate(context.Background()); err != nil {
			fmt.Printf("failed to terminate postgres container: %v\n", err)
		}
	}

	connString, err = container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		terminate()
		return "", func() {}, fmt.Errorf("failed to get connection string: %w", err)
	}
	return connString, terminate, nil
}
