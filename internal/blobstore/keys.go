package blobstore

import "fmt"

// ListKey is the object holding the manifest list.
const ListKey = "list.json"

// TableKey returns the key of a definition table for a version.
func TableKey(version, definition string) string {
	return fmt.Sprintf("versions/%s/tables/Destiny%sDefinition.json", version, definition)
}

// DiffKey returns the key of a diff payload for a version.
func DiffKey(version, definition string) string {
	return fmt.Sprintf("versions/%s/diffFiles/Destiny%sDefinition.json", version, definition)
}
