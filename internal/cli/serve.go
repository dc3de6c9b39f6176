package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/framefit/internal/api"
	"github.com/matzehuels/framefit/pkg/cache"
	"github.com/matzehuels/framefit/pkg/pipeline"
	"github.com/matzehuels/framefit/pkg/store"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		redisURL string
		mongoURI string
		mongoDB  string
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Run the HTTP API server.

Layouts are computed through the same pipeline as 'fit'. Plans are kept
in memory unless --mongo-uri points at a MongoDB instance; layout and
sample caching uses the local file cache unless --redis-url points at a
Redis instance.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, redisURL, mongoURI, mongoDB, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&redisURL, "redis-url", "", "Redis URL for the layout cache (e.g. redis://localhost:6379/0)")
	cmd.Flags().StringVar(&mongoURI, "mongo-uri", "", "MongoDB URI for plan storage (e.g. mongodb://localhost:27017)")
	cmd.Flags().StringVar(&mongoDB, "mongo-db", appName, "MongoDB database name")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr, redisURL, mongoURI, mongoDB string, noCache bool) error {
	layoutCache, err := c.serveCache(ctx, redisURL, noCache)
	if err != nil {
		return err
	}

	planStore, err := c.serveStore(ctx, mongoURI, mongoDB)
	if err != nil {
		return err
	}

	runner := pipeline.NewRunner(layoutCache, nil, c.Logger)
	runner.Zones = c.zones

	server := api.NewServer(api.Config{
		Addr:   addr,
		Runner: runner,
		Store:  planStore,
		Logger: c.Logger,
	})

	errCh := make(chan error, 1)
	go func() { errCh <- server.Start() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		// Shutdown with a fresh context: the signal context is already done.
		if err := server.Shutdown(context.Background()); err != nil {
			return err
		}
		return ctx.Err()
	}
}

func (c *CLI) serveCache(ctx context.Context, redisURL string, noCache bool) (cache.Cache, error) {
	if redisURL != "" {
		rc, err := cache.NewRedisCache(ctx, redisURL)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		c.Logger.Info("using redis layout cache")
		return rc, nil
	}
	return newCache(noCache)
}

func (c *CLI) serveStore(ctx context.Context, mongoURI, mongoDB string) (store.Store, error) {
	if mongoURI != "" {
		ms, err := store.NewMongoStore(ctx, mongoURI, mongoDB)
		if err != nil {
			return nil, fmt.Errorf("connect mongodb: %w", err)
		}
		c.Logger.Info("using mongodb plan store", "database", mongoDB)
		return ms, nil
	}
	return store.NewMemoryStore(), nil
}
