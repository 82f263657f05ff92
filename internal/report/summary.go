package report

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/itssimple/manifest-report-site/internal/models"
)

// Column is one of the per-row change counters.
type Column int

const (
	ColumnAdded Column = iota
	ColumnModified
	ColumnUnclassified
	ColumnReclassified
	ColumnRemoved
)

// FormatCount renders n for column. Additions are prefixed with "+" and
// removals with "-" when positive; zero is always "0".
func FormatCount(col Column, n int) string {
	s := humanize.Comma(int64(n))
	if n <= 0 {
		return s
	}
	switch col {
	case ColumnAdded, ColumnUnclassified:
		return "+" + s
	case ColumnRemoved:
		return "-" + s
	default:
		return s
	}
}

// Counts holds raw change counters.
type Counts struct {
	Added        int
	Modified     int
	Unclassified int
	Reclassified int
	Removed      int
}

// Total is the sum of every counter.
func (c Counts) Total() int {
	return c.Added + c.Modified + c.Unclassified + c.Reclassified + c.Removed
}

// Summary is the formatted form of Counts.
type Summary struct {
	Added        string
	Modified     string
	Unclassified string
	Reclassified string
	Removed      string
}

// Format renders every counter.
func (c Counts) Format() Summary {
	return Summary{
		Added:        FormatCount(ColumnAdded, c.Added),
		Modified:     FormatCount(ColumnModified, c.Modified),
		Unclassified: FormatCount(ColumnUnclassified, c.Unclassified),
		Reclassified: FormatCount(ColumnReclassified, c.Reclassified),
		Removed:      FormatCount(ColumnRemoved, c.Removed),
	}
}

// FileCounts extracts the counters of one diff file.
func FileCounts(f models.DiffFile) Counts {
	return Counts{
		Added:        f.Added,
		Modified:     f.Modified,
		Unclassified: f.Unclassified,
		Reclassified: f.Reclassified,
		Removed:      f.Removed,
	}
}

// Summarize formats the counters of one diff file.
func Summarize(f models.DiffFile) Summary {
	return FileCounts(f).Format()
}

// Totals sums the counters of every diff file of a version.
func Totals(item models.ManifestListItem) Counts {
	var c Counts
	for _, f := range item.DiffFiles {
		c.Added += f.Added
		c.Modified += f.Modified
		c.Unclassified += f.Unclassified
		c.Reclassified += f.Reclassified
		c.Removed += f.Removed
	}
	return c
}

// Description is the one-paragraph summary used for link previews.
func Description(item models.ManifestListItem) string {
	return fmt.Sprintf("Manifest version %s was discovered on %s and has %d files changed with a total of %d changes",
		item.Version, item.DiscoverDateUTC, len(item.DiffFiles), Totals(item).Total())
}
