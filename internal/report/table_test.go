package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/itssimple/manifest-report-site/internal/diffs"
	"github.com/itssimple/manifest-report-site/internal/models"
)

func TestWriteDiffTable(t *testing.T) {
	item := models.ManifestListItem{
		VersionID:       "v1",
		Version:         "1.0",
		DiscoverDateUTC: "2024-01-01T00:00:00Z",
		DiffFiles: []models.DiffFile{
			{FileName: "/tables/DestinyInventoryItemDefinition.json", Added: 5, FileStatus: models.FileStatusModified},
			{FileName: "/tables/DestinyFooDefinition.json", Removed: 2, FileStatus: models.FileStatusRemoved},
		},
	}

	var buf bytes.Buffer
	WriteDiffTable(&buf, item)
	out := buf.String()

	require.Contains(t, out, "v1  1.0 / 2024-01-01T00:00:00Z")
	require.Contains(t, out, "InventoryItem")
	require.Contains(t, out, "+5")
	require.Contains(t, out, "-2")
	require.Contains(t, out, "removed")
	require.NotContains(t, out, noChanges)
}

func TestWriteDiffTable_NoChanges(t *testing.T) {
	var buf bytes.Buffer
	WriteDiffTable(&buf, models.ManifestListItem{VersionID: "v2", Version: "2.0", DiscoverDateUTC: "2024-01-01T00:00:00Z"})
	require.Contains(t, buf.String(), noChanges)
}

func TestWriteManifestList(t *testing.T) {
	var buf bytes.Buffer
	WriteManifestList(&buf, Paginate(items(12), 2, PerPage))

	out := buf.String()
	require.Contains(t, out, "12 manifests stored - Page 2 of 2")
	require.Contains(t, out, "v10")
	require.Contains(t, out, "v11")
	require.NotContains(t, out, "v09")
}

func TestWriteDefinition(t *testing.T) {
	item := models.ManifestListItem{VersionID: "v1", Version: "1.0"}
	file := models.DiffFile{FileName: "/tables/DestinyFooDefinition.json", Added: 1}
	g := diffs.Groups{
		Added: []diffs.Object{{
			Key:        "123",
			Definition: json.RawMessage(`{"displayProperties": {"name": "Gjallarhorn"}}`),
			Diff:       []models.DiffEntry{{Op: models.OpAdd, Path: "/123/displayProperties"}},
		}},
	}

	var buf bytes.Buffer
	WriteDefinition(&buf, item, file, g)
	out := buf.String()

	require.Contains(t, out, "Manifests / 1.0 / Foo")
	require.Contains(t, out, "Added")
	require.Contains(t, out, "Gjallarhorn")
	require.Contains(t, out, "123")
	require.NotContains(t, out, "\nRemoved\n")
}
