package manifests

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/itssimple/manifest-report-site/internal/blobstore"
	"github.com/itssimple/manifest-report-site/internal/cachestore"
	"github.com/itssimple/manifest-report-site/internal/logging"
	"github.com/itssimple/manifest-report-site/internal/models"
)

// Client reads the manifest archive through a blob reader and keeps large
// per-definition documents in a local cache store.
type Client struct {
	remote blobstore.Reader
	store  cachestore.Store
	logger logging.Logger

	mu     sync.Mutex
	loaded bool
	list   []models.ManifestListItem
}

func NewClient(remote blobstore.Reader, store cachestore.Store, logger logging.Logger) *Client {
	return &Client{
		remote: remote,
		store:  store,
		logger: logger.With("component", "manifests"),
	}
}

// ListManifests returns the manifest list, fetching list.json on the first
// successful call only. The returned slice is shared; callers must not
// modify it.
func (c *Client) ListManifests(ctx context.Context) ([]models.ManifestListItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded {
		return c.list, nil
	}

	data, err := c.remote.Get(ctx, blobstore.ListKey)
	if err != nil {
		return nil, fmt.Errorf("load manifest list: %w", err)
	}

	list, err := models.ParseManifestList(data)
	if err != nil {
		return nil, fmt.Errorf("load manifest list: %w: %w", errUnusable, err)
	}

	c.list = list
	c.loaded = true
	c.logger.Info(ctx, "manifest list loaded", "versions", len(list))

	return c.list, nil
}

// GetManifestByVersion finds the list item with the given version id. found
// is false when no item matches; err is only set when the list cannot be
// loaded.
func (c *Client) GetManifestByVersion(ctx context.Context, versionID string) (item models.ManifestListItem, found bool, err error) {
	list, err := c.ListManifests(ctx)
	if err != nil {
		return models.ManifestListItem{}, false, err
	}

	for _, it := range list {
		if it.VersionID == versionID {
			return it, true, nil
		}
	}
	return models.ManifestListItem{}, false, nil
}

// GetDefinitionTable returns the definition table of definition in version.
func (c *Client) GetDefinitionTable(ctx context.Context, version, definition string) Result[models.DefinitionTable] {
	return fetchCached(ctx, c,
		cachestore.DefinitionKey(version, definition),
		blobstore.TableKey(version, definition),
		models.ParseDefinitionTable,
	)
}

// GetDiffPayload returns the per-object changes of definition in version.
func (c *Client) GetDiffPayload(ctx context.Context, version, definition string) Result[models.DiffEntryHolder] {
	return fetchCached(ctx, c,
		cachestore.DiffKey(version, definition),
		blobstore.DiffKey(version, definition),
		models.ParseDiffEntryHolder,
	)
}

// fetchCached serves key from the store, or fetches remoteKey, decodes it and
// writes it through to the store. A cached entry that no longer decodes is
// fetched again and overwritten.
func fetchCached[T any](ctx context.Context, c *Client, key cachestore.Key, remoteKey string, decode func([]byte) (T, error)) Result[T] {
	log := c.logger.With("key", key.Path())

	if err := key.Validate(); err != nil {
		log.Warn(ctx, "rejected cache key", "error", err)
		return unavailable[T](err)
	}

	data, err := c.store.Get(ctx, key)
	switch {
	case err == nil:
		v, derr := decode(data)
		if derr == nil {
			log.Debug(ctx, "cache hit")
			return ok(v)
		}
		log.Warn(ctx, "discarding unreadable cache entry", "error", derr)
	case errors.Is(err, cachestore.ErrNotFound):
		log.Debug(ctx, "cache miss")
	default:
		log.Warn(ctx, "cache read failed", "error", err)
	}

	data, err = c.remote.Get(ctx, remoteKey)
	if err != nil {
		log.Info(ctx, "remote object unavailable", "remote_key", remoteKey, "error", err)
		return unavailable[T](err)
	}

	v, err := decode(data)
	if err != nil {
		log.Warn(ctx, "remote object malformed", "remote_key", remoteKey, "error", err)
		return unavailable[T](fmt.Errorf("%w: %w", errUnusable, err))
	}

	if err := c.store.Put(ctx, key, data); err != nil {
		log.Warn(ctx, "cache write failed", "error", err)
	}

	return ok(v)
}
