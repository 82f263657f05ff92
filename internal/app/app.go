// Package app wires configuration, the object store reader, the local cache
// and the manifest client together, and runs the JSON API until the process
// is signalled.
package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/itssimple/manifest-report-site/internal/api"
	"github.com/itssimple/manifest-report-site/internal/blobstore"
	"github.com/itssimple/manifest-report-site/internal/cachestore"
	"github.com/itssimple/manifest-report-site/internal/config"
	"github.com/itssimple/manifest-report-site/internal/logging"
	"github.com/itssimple/manifest-report-site/internal/manifests"
)

type App struct {
	config *config.Config
	logger logging.Logger
	store  cachestore.Store
	client *manifests.Client
}

// Swapped in tests.
var newReader = func(ctx context.Context, c *config.Config) (blobstore.Reader, error) {
	return blobstore.NewS3Reader(ctx, c)
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	reader, err := newReader(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("object store init error: %w", err)
	}
	return NewAppWithReader(ctx, c, logger, reader)
}

// NewAppWithReader builds the app around an existing object reader.
func NewAppWithReader(ctx context.Context, c *config.Config, logger logging.Logger, reader blobstore.Reader) (*App, error) {
	store, err := cachestore.Open(ctx, c.CacheBackend, c.CacheFolder)
	if err != nil {
		return nil, fmt.Errorf("cache init error: %w", err)
	}

	logger.Debug(ctx, "app initialized",
		"cache_backend", c.CacheBackend,
		"cache_folder", c.CacheFolder,
		"endpoint", c.S3Endpoint,
		"bucket", c.S3Bucket,
	)

	return &App{
		config: c,
		logger: logger,
		store:  store,
		client: manifests.NewClient(reader, store, logger),
	}, nil
}

// Client returns the manifest client shared by every command.
func (app *App) Client() *manifests.Client {
	return app.client
}

// Close releases the cache store.
func (app *App) Close() error {
	return app.store.Close()
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Serve runs the JSON API until ctx is cancelled or a termination signal
// arrives.
func (app *App) Serve(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.initSignalHandler(cancelFunc)

	s := api.NewServer(app.config.ListenAddr, app.config.PublicBaseURL, app.client, app.logger)
	if err := s.Run(ctx); err != nil {
		return fmt.Errorf("api server: %w", err)
	}
	return nil
}
