// Package models defines the archive documents read from the manifest store:
// the manifest list, per-table change summaries, definition tables and
// per-object diff payloads.
package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// FileStatus is the lifecycle state of a whole definition table in a version.
type FileStatus int

const (
	FileStatusAdded FileStatus = iota
	FileStatusModified
	FileStatusRemoved
)

func (s FileStatus) String() string {
	switch s {
	case FileStatusAdded:
		return "added"
	case FileStatusModified:
		return "modified"
	case FileStatusRemoved:
		return "removed"
	default:
		return fmt.Sprintf("FileStatus(%d)", int(s))
	}
}

// ManifestListItem is one archived manifest version as listed in list.json.
type ManifestListItem struct {
	VersionID                string     `json:"VersionId"`
	Version                  string     `json:"Version"`
	ManifestJSONPath         string     `json:"ManifestJsonPath,omitempty"`
	EnhancedManifestJSONPath string     `json:"EnhancedManifestJsonPath,omitempty"`
	DiscoverDateUTC          string     `json:"DiscoverDate_UTC"`
	ManifestDateUTC          string     `json:"ManifestDate_UTC"`
	DiffFiles                []DiffFile `json:"DiffFiles"`
}

// DiscoverDate parses DiscoverDateUTC.
func (m ManifestListItem) DiscoverDate() (time.Time, error) {
	return ParseUTC(m.DiscoverDateUTC)
}

// ManifestDate parses ManifestDateUTC.
func (m ManifestListItem) ManifestDate() (time.Time, error) {
	return ParseUTC(m.ManifestDateUTC)
}

// DiffFile summarizes the changes of one definition table in a version.
// FileName follows the /tables/Destiny{Name}Definition.json convention.
type DiffFile struct {
	FileName         string     `json:"FileName"`
	EnhancedFileName string     `json:"EnhancedFileName,omitempty"`
	Added            int        `json:"Added"`
	Modified         int        `json:"Modified"`
	Unclassified     int        `json:"Unclassified"`
	Reclassified     int        `json:"Reclassified"`
	Removed          int        `json:"Removed"`
	FileStatus       FileStatus `json:"FileStatus"`
}

// TotalChanges is the sum of every per-row counter.
func (f DiffFile) TotalChanges() int {
	return f.Added + f.Modified + f.Unclassified + f.Reclassified + f.Removed
}

// ParseManifestList decodes a list.json document.
func ParseManifestList(data []byte) ([]ManifestListItem, error) {
	var items []ManifestListItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode manifest list: %w", err)
	}
	return items, nil
}

var utcLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.9999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseUTC parses the timestamps written by the archiver. Values without a
// zone designator are taken as UTC.
func ParseUTC(s string) (time.Time, error) {
	for _, layout := range utcLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
