// Package diffs classifies per-object changes of a definition table and
// prepares them for listing.
package diffs

import (
	"bytes"
	"strings"

	"github.com/itssimple/manifest-report-site/internal/models"
)

// Category is the kind of change an object went through.
type Category int

const (
	Modified Category = iota
	Added
	Unclassified
	Removed
)

func (c Category) String() string {
	switch c {
	case Added:
		return "added"
	case Unclassified:
		return "unclassified"
	case Removed:
		return "removed"
	default:
		return "modified"
	}
}

// topLevelDepth is the depth of a change that replaces a whole object
// field, e.g. /123/displayProperties.
const topLevelDepth = 2

// Depth counts the non-empty segments of a slash-delimited path.
func Depth(path string) int {
	n := 0
	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			n++
		}
	}
	return n
}

// Classify assigns a category to the changes of one object. Wholly added
// objects have only top-level add entries, wholly removed objects only
// top-level del entries. Objects that lost their redaction are
// unclassified. Everything else is modified.
func Classify(entries []models.DiffEntry) Category {
	switch {
	case allTopLevel(entries, models.OpAdd):
		return Added
	case allTopLevel(entries, models.OpDel):
		return Removed
	case anyUnredacted(entries):
		return Unclassified
	default:
		return Modified
	}
}

func allTopLevel(entries []models.DiffEntry, op models.DiffOp) bool {
	if len(entries) == 0 {
		return false
	}
	for _, e := range entries {
		if e.Op != op || Depth(e.Path) != topLevelDepth {
			return false
		}
	}
	return true
}

func anyUnredacted(entries []models.DiffEntry) bool {
	for _, e := range entries {
		if strings.HasSuffix(e.Path, "redacted") && bytes.Equal(bytes.TrimSpace(e.New), []byte("false")) {
			return true
		}
	}
	return false
}
