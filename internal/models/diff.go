package models

import (
	"encoding/json"
	"fmt"
)

// DiffOp is the kind of a field-level change.
type DiffOp string

const (
	OpAdd  DiffOp = "add"
	OpEdit DiffOp = "edit"
	OpDel  DiffOp = "del"
)

// DiffEntry is one field-level change of a content object. Old and New hold
// arbitrary JSON and may be null.
type DiffEntry struct {
	Op   DiffOp          `json:"op"`
	Path string          `json:"path"`
	Old  json.RawMessage `json:"old,omitempty"`
	New  json.RawMessage `json:"new,omitempty"`
}

// ObjectDiff holds the ordered changes of a single object.
type ObjectDiff struct {
	Diff []DiffEntry `json:"diff"`
}

// DiffEntryHolder maps an object hash (decimal string) to its changes.
type DiffEntryHolder map[string]ObjectDiff

// DefinitionTable maps an object hash to its raw definition object.
type DefinitionTable map[string]json.RawMessage

// ParseDiffEntryHolder decodes a diffFiles/ document.
func ParseDiffEntryHolder(data []byte) (DiffEntryHolder, error) {
	var h DiffEntryHolder
	if err := json.Unmarshal(data, &h); err != nil {
		return nil, fmt.Errorf("decode diff payload: %w", err)
	}
	if h == nil {
		return nil, fmt.Errorf("decode diff payload: document is null")
	}
	return h, nil
}

// ParseDefinitionTable decodes a tables/ document.
func ParseDefinitionTable(data []byte) (DefinitionTable, error) {
	var t DefinitionTable
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("decode definition table: %w", err)
	}
	if t == nil {
		return nil, fmt.Errorf("decode definition table: document is null")
	}
	return t, nil
}

// DisplayProperties is the subset of a definition's display block used for
// listing objects.
type DisplayProperties struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// ReadDisplayProperties extracts displayProperties from a raw definition
// object. ok is false when the object is null or has no such block.
func ReadDisplayProperties(raw json.RawMessage) (DisplayProperties, bool) {
	var holder struct {
		DisplayProperties *DisplayProperties `json:"displayProperties"`
	}
	if len(raw) == 0 {
		return DisplayProperties{}, false
	}
	if err := json.Unmarshal(raw, &holder); err != nil || holder.DisplayProperties == nil {
		return DisplayProperties{}, false
	}
	return *holder.DisplayProperties, true
}
