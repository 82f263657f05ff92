package report

import (
	"sort"
	"time"

	"github.com/itssimple/manifest-report-site/internal/models"
)

// PerPage is the number of versions on one list page.
const PerPage = 10

// SortByDiscoverDate returns a copy of items ordered newest first.
// Unparseable dates sort last. The input is not modified.
func SortByDiscoverDate(items []models.ManifestListItem) []models.ManifestListItem {
	out := make([]models.ManifestListItem, len(items))
	copy(out, items)

	dates := make(map[string]time.Time, len(out))
	for _, it := range out {
		d, err := it.DiscoverDate()
		if err == nil {
			dates[it.VersionID] = d
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, okA := dates[out[i].VersionID]
		b, okB := dates[out[j].VersionID]
		if okA != okB {
			return okA
		}
		return a.After(b)
	})
	return out
}

// Latest returns the most recently discovered version. ok is false for an
// empty list.
func Latest(items []models.ManifestListItem) (item models.ManifestListItem, ok bool) {
	sorted := SortByDiscoverDate(items)
	if len(sorted) == 0 {
		return models.ManifestListItem{}, false
	}
	return sorted[0], true
}

// PageCount is the number of pages needed for n items.
func PageCount(n, perPage int) int {
	if perPage <= 0 || n <= 0 {
		return 0
	}
	return (n + perPage - 1) / perPage
}

// Page is one slice of the sorted manifest list.
type Page struct {
	Number     int
	TotalPages int
	TotalItems int
	Items      []models.ManifestListItem
}

// Paginate returns the 1-based page of items. Pages outside the range are
// empty.
func Paginate(items []models.ManifestListItem, page, perPage int) Page {
	p := Page{
		Number:     page,
		TotalPages: PageCount(len(items), perPage),
		TotalItems: len(items),
	}
	if page < 1 || page > p.TotalPages {
		return p
	}

	start := (page - 1) * perPage
	end := min(start+perPage, len(items))
	p.Items = items[start:end]
	return p
}
