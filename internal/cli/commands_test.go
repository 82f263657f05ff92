package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itssimple/manifest-report-site/internal/app"
	"github.com/itssimple/manifest-report-site/internal/blobstore"
	"github.com/itssimple/manifest-report-site/internal/common"
	"github.com/itssimple/manifest-report-site/internal/config"
	"github.com/itssimple/manifest-report-site/internal/logging"
)

const listJSON = `[
  {"VersionId": "old", "Version": "1.0", "DiscoverDate_UTC": "2024-01-01T00:00:00Z", "ManifestDate_UTC": "2024-01-01T00:00:00Z", "DiffFiles": []},
  {"VersionId": "new", "Version": "2.0", "DiscoverDate_UTC": "2024-03-01T00:00:00Z", "ManifestDate_UTC": "2024-03-01T00:00:00Z",
   "DiffFiles": [{"FileName": "/tables/DestinyInventoryItemDefinition.json", "Added": 1, "Modified": 0, "Unclassified": 0, "Reclassified": 0, "Removed": 0, "FileStatus": 1}]}
]`

type mapReader struct {
	objects map[string]string
	err     error
}

func (m *mapReader) Get(_ context.Context, key string) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	v, ok := m.objects[key]
	if !ok {
		return nil, fmt.Errorf("get %s: %w: %w", key, common.ErrUnavailable, common.ErrorNotFound)
	}
	return []byte(v), nil
}

func archive() *mapReader {
	return &mapReader{objects: map[string]string{
		blobstore.ListKey: listJSON,
		blobstore.TableKey("new", "InventoryItem"): `{"7": {"displayProperties": {"name": "Gjallarhorn"}}}`,
		blobstore.DiffKey("new", "InventoryItem"):  `{"7": {"diff": [{"op": "add", "path": "/7/displayProperties", "new": {}}]}}`,
	}}
}

var envNames = []string{
	"CACHEFOLDER", "CACHEBACKEND", "S3ACCESSKEY", "S3SECRETKEY", "S3ENDPOINT",
	"S3BUCKET", "S3REGION", "PUBLICBASEURL", "LISTENADDR", "LOGLEVEL", "LOGFORMAT",
}

// run executes the command tree against r with an isolated configuration.
func run(t *testing.T, r *mapReader, args ...string) (string, *session, error) {
	t.Helper()

	for _, n := range envNames {
		t.Setenv(n, "")
	}

	cfgPath := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{"log_level": "error"}`), 0o600))

	orig := openApp
	openApp = func(ctx context.Context, c *config.Config, l logging.Logger) (*app.App, error) {
		return app.NewAppWithReader(ctx, c, l, r)
	}
	t.Cleanup(func() { openApp = orig })

	s := &session{}
	cmd := newRootCmd(s)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"-c", cfgPath, "-d", t.TempDir()}, args...))

	err := cmd.ExecuteContext(context.Background())
	s.close(context.Background())
	return out.String(), s, err
}

func TestList(t *testing.T) {
	out, _, err := run(t, archive(), "list")
	require.NoError(t, err)

	assert.Contains(t, out, "2 manifests stored - Page 1 of 1")
	assert.Less(t, bytes.Index([]byte(out), []byte("2.0")), bytes.Index([]byte(out), []byte("1.0")))
	assert.Contains(t, out, "InventoryItem")
}

func TestList_InvalidPage(t *testing.T) {
	_, _, err := run(t, archive(), "list", "--page", "0")
	require.ErrorContains(t, err, "invalid page")
}

func TestList_Unavailable(t *testing.T) {
	_, _, err := run(t, &mapReader{err: fmt.Errorf("%w: %w", common.ErrUnavailable, errors.New("dial tcp"))}, "list")
	require.ErrorIs(t, err, common.ErrUnavailable)
}

func TestShow(t *testing.T) {
	out, _, err := run(t, archive(), "show", "new")
	require.NoError(t, err)
	assert.Contains(t, out, "Manifest version 2.0 was discovered on 2024-03-01T00:00:00Z and has 1 files changed with a total of 1 changes")
	assert.Contains(t, out, "+1")
}

func TestShow_UnknownVersion(t *testing.T) {
	_, _, err := run(t, archive(), "show", "nope")
	require.ErrorContains(t, err, "version nope not found")
}

func TestLatest(t *testing.T) {
	out, _, err := run(t, archive(), "latest")
	require.NoError(t, err)
	assert.Contains(t, out, "Manifest version 2.0")
}

func TestLatest_Empty(t *testing.T) {
	_, _, err := run(t, &mapReader{objects: map[string]string{blobstore.ListKey: `[]`}}, "latest")
	require.ErrorContains(t, err, "empty")
}

func TestDefinition(t *testing.T) {
	out, _, err := run(t, archive(), "definition", "new", "InventoryItem")
	require.NoError(t, err)
	assert.Contains(t, out, "Manifests / 2.0 / InventoryItem")
	assert.Contains(t, out, "Gjallarhorn")
}

func TestDefinition_Errors(t *testing.T) {
	noDiff := archive()
	delete(noDiff.objects, blobstore.DiffKey("new", "InventoryItem"))

	tests := []struct {
		name   string
		reader *mapReader
		args   []string
		want   string
	}{
		{"unknown version", archive(), []string{"definition", "nope", "InventoryItem"}, "version nope not found"},
		{"unchanged definition", archive(), []string{"definition", "new", "Foo"}, "has no changes"},
		{"diff unavailable", noDiff, []string{"definition", "new", "InventoryItem"}, "no diff data"},
		{"missing args", archive(), []string{"definition", "new"}, "accepts 2 arg(s)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.reader, tt.args...)
			require.ErrorContains(t, err, tt.want)
		})
	}
}

func TestSession_FlagsOverrideConfig(t *testing.T) {
	_, s, err := run(t, archive(), "--cache-backend", "sqlite", "--s3-bucket", "other", "list")
	require.NoError(t, err)
	assert.Equal(t, "sqlite", s.config.CacheBackend)
	assert.Equal(t, "other", s.config.S3Bucket)
	assert.Equal(t, "error", s.config.LogLevel)
	assert.Nil(t, s.app)
}

func TestSession_BadLogFormat(t *testing.T) {
	_, _, err := run(t, archive(), "--log-format", "xml", "list")
	require.ErrorContains(t, err, "unknown log format")
}
