package diffs

import (
	"encoding/json"
	"sort"
	"strconv"

	"github.com/itssimple/manifest-report-site/internal/models"
)

const (
	noName              = "No Name"
	noNameOrDescription = "<No Name or Description>"

	// MissingIcon is shown for objects without an icon.
	MissingIcon = "/img/misc/missing_icon_d2.png"
)

// Object is one changed content object with its current definition, if the
// table still has it.
type Object struct {
	Key        string
	Definition json.RawMessage
	Diff       []models.DiffEntry
	Category   Category
}

// Groups holds changed objects by category, each sorted by key.
type Groups struct {
	Added        []Object
	Modified     []Object
	Unclassified []Object
	Removed      []Object
}

// Len is the number of objects across all groups.
func (g Groups) Len() int {
	return len(g.Added) + len(g.Modified) + len(g.Unclassified) + len(g.Removed)
}

// Partition joins the diff payload with the definition table and groups the
// objects. table may be nil when the definition table is unavailable.
func Partition(holder models.DiffEntryHolder, table models.DefinitionTable) Groups {
	keys := make([]string, 0, len(holder))
	for k := range holder {
		keys = append(keys, k)
	}
	sortKeys(keys)

	var g Groups
	for _, k := range keys {
		obj := Object{
			Key:      k,
			Diff:     holder[k].Diff,
			Category: Classify(holder[k].Diff),
		}
		if def, ok := table[k]; ok && !isNull(def) {
			obj.Definition = def
		}

		switch obj.Category {
		case Added:
			g.Added = append(g.Added, obj)
		case Removed:
			g.Removed = append(g.Removed, obj)
		case Unclassified:
			g.Unclassified = append(g.Unclassified, obj)
		default:
			g.Modified = append(g.Modified, obj)
		}
	}
	return g
}

// sortKeys orders object hashes numerically, falling back to string order
// for keys that are not numbers.
func sortKeys(keys []string) {
	sort.Slice(keys, func(i, j int) bool {
		a, errA := strconv.ParseUint(keys[i], 10, 64)
		b, errB := strconv.ParseUint(keys[j], 10, 64)
		if errA == nil && errB == nil {
			return a < b
		}
		if (errA == nil) != (errB == nil) {
			return errA == nil
		}
		return keys[i] < keys[j]
	})
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

// DisplayName picks the name shown for an object. Removed objects that are
// gone from the table fall back to the value recorded in their del entry.
func (o Object) DisplayName() string {
	dp, ok := o.displayProperties()
	if !ok {
		return noName
	}
	switch {
	case dp.Name != "":
		return dp.Name
	case dp.Description != "":
		return dp.Description
	default:
		return noNameOrDescription
	}
}

// Icon is the icon path of the object, or MissingIcon.
func (o Object) Icon() string {
	if dp, ok := o.displayProperties(); ok && dp.Icon != "" {
		return dp.Icon
	}
	return MissingIcon
}

func (o Object) displayProperties() (models.DisplayProperties, bool) {
	if o.Definition != nil {
		return models.ReadDisplayProperties(o.Definition)
	}
	if len(o.Diff) == 1 && o.Diff[0].Op == models.OpDel {
		return models.ReadDisplayProperties(o.Diff[0].Old)
	}
	return models.DisplayProperties{}, false
}
