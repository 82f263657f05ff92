package diffs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/itssimple/manifest-report-site/internal/models"
)

func entry(op models.DiffOp, path string) models.DiffEntry {
	return models.DiffEntry{Op: op, Path: path}
}

func TestDepth(t *testing.T) {
	require.Equal(t, 0, Depth(""))
	require.Equal(t, 0, Depth("/"))
	require.Equal(t, 1, Depth("/123"))
	require.Equal(t, 2, Depth("/123/displayProperties"))
	require.Equal(t, 3, Depth("/123/displayProperties/name"))
	require.Equal(t, 2, Depth("123/displayProperties/"))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		entries []models.DiffEntry
		want    Category
	}{
		{
			name:    "single top-level add",
			entries: []models.DiffEntry{entry(models.OpAdd, "/123/displayProperties")},
			want:    Added,
		},
		{
			name:    "single top-level del",
			entries: []models.DiffEntry{entry(models.OpDel, "/123/displayProperties")},
			want:    Removed,
		},
		{
			name: "many top-level adds",
			entries: []models.DiffEntry{
				entry(models.OpAdd, "/123/displayProperties"),
				entry(models.OpAdd, "/123/hash"),
			},
			want: Added,
		},
		{
			name:    "nested add",
			entries: []models.DiffEntry{entry(models.OpAdd, "/123/displayProperties/name")},
			want:    Modified,
		},
		{
			name: "mixed add and del",
			entries: []models.DiffEntry{
				entry(models.OpAdd, "/123/a"),
				entry(models.OpDel, "/123/b"),
			},
			want: Modified,
		},
		{
			name:    "edit",
			entries: []models.DiffEntry{entry(models.OpEdit, "/123/displayProperties")},
			want:    Modified,
		},
		{
			name:    "empty",
			entries: nil,
			want:    Modified,
		},
		{
			name: "unredacted",
			entries: []models.DiffEntry{
				{Op: models.OpEdit, Path: "/123/redacted", Old: json.RawMessage(`true`), New: json.RawMessage(`false`)},
				entry(models.OpAdd, "/123/displayProperties/name"),
			},
			want: Unclassified,
		},
		{
			name: "redacted again",
			entries: []models.DiffEntry{
				{Op: models.OpEdit, Path: "/123/redacted", Old: json.RawMessage(`false`), New: json.RawMessage(`true`)},
			},
			want: Modified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Classify(tt.entries))
		})
	}
}

func TestCategory_String(t *testing.T) {
	require.Equal(t, "added", Added.String())
	require.Equal(t, "modified", Modified.String())
	require.Equal(t, "unclassified", Unclassified.String())
	require.Equal(t, "removed", Removed.String())
}
