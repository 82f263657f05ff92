package report

import (
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/itssimple/manifest-report-site/internal/diffs"
	"github.com/itssimple/manifest-report-site/internal/models"
)

const noChanges = "No changes in this version"

func displayDate(s string) string {
	d, err := models.ParseUTC(s)
	if err != nil {
		return s
	}
	return d.Format(time.RFC3339)
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	return t
}

func rightAligned(numbers ...int) []table.ColumnConfig {
	cfgs := make([]table.ColumnConfig, 0, len(numbers))
	for _, n := range numbers {
		cfgs = append(cfgs, table.ColumnConfig{Number: n, Align: text.AlignRight})
	}
	return cfgs
}

// WriteDiffTable writes the per-table change counters of one version.
func WriteDiffTable(w io.Writer, item models.ManifestListItem) {
	fmt.Fprintf(w, "%s  %s / %s\n", item.VersionID, item.Version, displayDate(item.DiscoverDateUTC))

	if len(item.DiffFiles) == 0 {
		fmt.Fprintln(w, noChanges)
		return
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"File", "Status", "Added", "Modified", "Unclassified", "Removed"})
	t.SetColumnConfigs(rightAligned(3, 4, 5, 6))

	for _, f := range item.DiffFiles {
		name := CleanDefinitionName(f.FileName)
		if IsJunkDefinition(f.FileName) {
			name = text.Faint.Sprint(name)
		}
		s := Summarize(f)
		t.AppendRow(table.Row{name, f.FileStatus.String(), s.Added, s.Modified, s.Unclassified, s.Removed})
	}

	totals := Totals(item).Format()
	t.AppendFooter(table.Row{"Total", "", totals.Added, totals.Modified, totals.Unclassified, totals.Removed})
	t.Render()
}

// WriteManifestList writes one page of the manifest list.
func WriteManifestList(w io.Writer, p Page) {
	fmt.Fprintf(w, "Manifests / %d manifests stored - Page %d of %d\n\n", p.TotalItems, p.Number, p.TotalPages)
	for _, item := range p.Items {
		WriteDiffTable(w, item)
		fmt.Fprintln(w)
	}
}

// WriteDefinition writes the counters of one table followed by its
// classified objects.
func WriteDefinition(w io.Writer, item models.ManifestListItem, file models.DiffFile, g diffs.Groups) {
	name := CleanDefinitionName(file.FileName)
	fmt.Fprintf(w, "Manifests / %s / %s\n", item.Version, name)

	s := Summarize(file)
	t := newTable(w)
	t.AppendHeader(table.Row{"Added", "Modified", "Unclassified", "Removed", "Reclassified"})
	t.AppendRow(table.Row{s.Added, s.Modified, s.Unclassified, s.Removed, s.Reclassified})
	t.SetColumnConfigs(rightAligned(1, 2, 3, 4, 5))
	t.Render()

	sections := []struct {
		title   string
		objects []diffs.Object
	}{
		{"Added", g.Added},
		{"Modified", g.Modified},
		{"Unclassified", g.Unclassified},
		{"Removed", g.Removed},
	}
	for _, sec := range sections {
		if len(sec.objects) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s\n", sec.title)
		ot := newTable(w)
		ot.AppendHeader(table.Row{"Hash", "Name", "Changes"})
		ot.SetColumnConfigs(rightAligned(3))
		for _, o := range sec.objects {
			ot.AppendRow(table.Row{o.Key, o.DisplayName(), len(o.Diff)})
		}
		ot.Render()
	}
}
