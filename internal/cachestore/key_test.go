package cachestore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKey_Path(t *testing.T) {
	require.Equal(t, "definitions/version-v1/InventoryItemDefinition.json", DefinitionKey("v1", "InventoryItem").Path())
	require.Equal(t, "diffs/version-v1/InventoryItemDiff.json", DiffKey("v1", "InventoryItem").Path())
}

func TestKey_PathIsDeterministic(t *testing.T) {
	a := DiffKey("b026c2b3-2c91-4357-824f-59956ac1256a", "Activity")
	_ = DefinitionKey("other", "Thing").Path()
	b := DiffKey("b026c2b3-2c91-4357-824f-59956ac1256a", "Activity")

	require.Equal(t, a, b)
	require.Equal(t, a.Path(), b.Path())
	require.NotEqual(t, a.Path(), DefinitionKey("b026c2b3-2c91-4357-824f-59956ac1256a", "Activity").Path())
}

func TestKey_Validate(t *testing.T) {
	tests := []struct {
		name    string
		key     Key
		wantErr bool
	}{
		{"ok definitions", DefinitionKey("v1", "Foo"), false},
		{"ok diffs", DiffKey("v1", "Foo"), false},
		{"empty version", DiffKey("", "Foo"), true},
		{"empty definition", DiffKey("v1", ""), true},
		{"dotdot", DiffKey("..", "Foo"), true},
		{"slash", DefinitionKey("v1", "../../etc/passwd"), true},
		{"backslash", DefinitionKey(`v1\x`, "Foo"), true},
		{"unknown kind", Key{Kind: "tables", Version: "v1", Definition: "Foo"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.key.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidKey)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
