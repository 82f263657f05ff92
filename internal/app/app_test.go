package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itssimple/manifest-report-site/internal/blobstore"
	"github.com/itssimple/manifest-report-site/internal/cachestore"
	"github.com/itssimple/manifest-report-site/internal/config"
	"github.com/itssimple/manifest-report-site/internal/logging"
)

type staticReader map[string]string

func (s staticReader) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := s[key]
	if !ok {
		return nil, errors.New("missing " + key)
	}
	return []byte(v), nil
}

func stubReader(t *testing.T, r blobstore.Reader, err error) {
	t.Helper()
	orig := newReader
	newReader = func(context.Context, *config.Config) (blobstore.Reader, error) { return r, err }
	t.Cleanup(func() { newReader = orig })
}

func testConfig(t *testing.T, backend string) *config.Config {
	t.Helper()
	c := &config.Config{}
	c.LoadDefaults()
	c.CacheFolder = t.TempDir()
	c.CacheBackend = backend
	return c
}

func TestNewApp_WiresCacheBackend(t *testing.T) {
	stubReader(t, staticReader{
		blobstore.ListKey: `[{"VersionId": "v1", "Version": "1.0", "DiscoverDate_UTC": "2024-01-01T00:00:00Z", "ManifestDate_UTC": "2024-01-01T00:00:00Z", "DiffFiles": []}]`,
		blobstore.TableKey("v1", "Foo"): `{"1": {}}`,
	}, nil)

	for _, backend := range []string{cachestore.BackendFS, cachestore.BackendSQLite, cachestore.BackendBadger} {
		t.Run(backend, func(t *testing.T) {
			c := testConfig(t, backend)
			ctx := context.Background()

			app, err := NewApp(ctx, c, logging.Discard())
			require.NoError(t, err)

			item, found, err := app.Client().GetManifestByVersion(ctx, "v1")
			require.NoError(t, err)
			require.True(t, found)
			assert.Equal(t, "1.0", item.Version)

			require.True(t, app.Client().GetDefinitionTable(ctx, "v1", "Foo").OK())
			require.NoError(t, app.Close())
		})
	}
}

func TestNewApp_FileBackendWritesUnderCacheFolder(t *testing.T) {
	stubReader(t, staticReader{blobstore.TableKey("v1", "Foo"): `{"1": {}}`}, nil)
	c := testConfig(t, cachestore.BackendFS)

	app, err := NewApp(context.Background(), c, logging.Discard())
	require.NoError(t, err)
	defer app.Close()

	require.True(t, app.Client().GetDefinitionTable(context.Background(), "v1", "Foo").OK())

	_, err = os.Stat(filepath.Join(c.CacheFolder, "definitions", "version-v1", "FooDefinition.json"))
	require.NoError(t, err)
}

func TestNewApp_Errors(t *testing.T) {
	t.Run("reader", func(t *testing.T) {
		stubReader(t, nil, errors.New("boom"))
		_, err := NewApp(context.Background(), testConfig(t, cachestore.BackendFS), logging.Discard())
		require.ErrorContains(t, err, "object store init error")
	})

	t.Run("backend", func(t *testing.T) {
		stubReader(t, staticReader{}, nil)
		_, err := NewApp(context.Background(), testConfig(t, "tape"), logging.Discard())
		require.ErrorContains(t, err, "cache init error")
	})
}

func TestServe_StopsOnCancel(t *testing.T) {
	stubReader(t, staticReader{}, nil)
	c := testConfig(t, cachestore.BackendFS)
	c.ListenAddr = "127.0.0.1:0"

	app, err := NewApp(context.Background(), c, logging.Discard())
	require.NoError(t, err)
	defer app.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, app.Serve(ctx))
}
