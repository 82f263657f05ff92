package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/itssimple/manifest-report-site/internal/diffs"
	"github.com/itssimple/manifest-report-site/internal/models"
	"github.com/itssimple/manifest-report-site/internal/report"
)

// LatestManifest is the body of GET /api/manifest.
type LatestManifest struct {
	Version              string                  `json:"version"`
	DiscoverDate         string                  `json:"discoverDate"`
	ManifestListItem     models.ManifestListItem `json:"manifestListItem"`
	ManifestInfo         string                  `json:"manifestInfo"`
	ManifestEnhancedInfo string                  `json:"manifestEnhancedInfo"`
}

// ManifestPage is the body of GET /api/manifests.
type ManifestPage struct {
	Page       int                       `json:"page"`
	TotalPages int                       `json:"totalPages"`
	TotalItems int                       `json:"totalItems"`
	Items      []models.ManifestListItem `json:"items"`
}

// ChangedObject is one classified object in a definition response.
type ChangedObject struct {
	Key      string             `json:"key"`
	Name     string             `json:"name"`
	Icon     string             `json:"icon"`
	Category string             `json:"category"`
	Diff     []models.DiffEntry `json:"diff"`
}

// DefinitionChanges is the body of GET /api/manifests/:version/:definition.
type DefinitionChanges struct {
	VersionID    string          `json:"versionId"`
	Version      string          `json:"version"`
	Definition   string          `json:"definition"`
	File         models.DiffFile `json:"file"`
	Added        []ChangedObject `json:"added"`
	Modified     []ChangedObject `json:"modified"`
	Unclassified []ChangedObject `json:"unclassified"`
	Removed      []ChangedObject `json:"removed"`
}

type errorBody struct {
	Error string `json:"error"`
}

func (s *Server) listUnavailable(c echo.Context, err error) error {
	s.logger.Error(c.Request().Context(), "manifest list unavailable", "error", err)
	return c.JSON(http.StatusBadGateway, errorBody{Error: "manifest list unavailable"})
}

func notFound(c echo.Context, what string) error {
	return c.JSON(http.StatusNotFound, errorBody{Error: what + " not found"})
}

func (s *Server) publicURL(versionID, file string) string {
	return fmt.Sprintf("%s/versions/%s/%s", strings.TrimRight(s.publicBaseURL, "/"), versionID, file)
}

func (s *Server) latest(c echo.Context) (models.ManifestListItem, bool, error) {
	list, err := s.archive.ListManifests(c.Request().Context())
	if err != nil {
		return models.ManifestListItem{}, false, err
	}
	item, ok := report.Latest(list)
	return item, ok, nil
}

func (s *Server) latestManifest(c echo.Context) error {
	item, ok, err := s.latest(c)
	if err != nil {
		return s.listUnavailable(c, err)
	}
	if !ok {
		return notFound(c, "manifest")
	}

	return c.JSON(http.StatusOK, LatestManifest{
		Version:              item.Version,
		DiscoverDate:         item.DiscoverDateUTC,
		ManifestListItem:     item,
		ManifestInfo:         s.publicURL(item.VersionID, "manifest.json"),
		ManifestEnhancedInfo: s.publicURL(item.VersionID, "enhanced-manifest.json"),
	})
}

func (s *Server) latestVersion(c echo.Context) error {
	item, ok, err := s.latest(c)
	if err != nil {
		return s.listUnavailable(c, err)
	}
	if !ok {
		return notFound(c, "manifest")
	}
	return c.JSON(http.StatusOK, item.Version)
}

func (s *Server) listManifests(c echo.Context) error {
	page := 1
	if p := c.QueryParam("page"); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil || n < 1 {
			return c.JSON(http.StatusBadRequest, errorBody{Error: "invalid page"})
		}
		page = n
	}

	list, err := s.archive.ListManifests(c.Request().Context())
	if err != nil {
		return s.listUnavailable(c, err)
	}

	p := report.Paginate(report.SortByDiscoverDate(list), page, report.PerPage)
	items := p.Items
	if items == nil {
		items = []models.ManifestListItem{}
	}

	return c.JSON(http.StatusOK, ManifestPage{
		Page:       p.Number,
		TotalPages: p.TotalPages,
		TotalItems: p.TotalItems,
		Items:      items,
	})
}

func (s *Server) manifestByVersion(c echo.Context) error {
	item, found, err := s.archive.GetManifestByVersion(c.Request().Context(), c.Param("version"))
	if err != nil {
		return s.listUnavailable(c, err)
	}
	if !found {
		return notFound(c, "version")
	}
	return c.JSON(http.StatusOK, item)
}

func (s *Server) definitionChanges(c echo.Context) error {
	ctx := c.Request().Context()
	version := c.Param("version")
	definition := c.Param("definition")

	item, found, err := s.archive.GetManifestByVersion(ctx, version)
	if err != nil {
		return s.listUnavailable(c, err)
	}
	if !found {
		return notFound(c, "version")
	}

	file, ok := report.FindDiffFile(item, definition)
	if !ok {
		return notFound(c, "definition")
	}

	diff := s.archive.GetDiffPayload(ctx, version, definition)
	if !diff.OK() {
		return notFound(c, "diff data")
	}

	// the table only adds names; changes are listed without it
	table := s.archive.GetDefinitionTable(ctx, version, definition)
	groups := diffs.Partition(diff.Value, table.Value)

	return c.JSON(http.StatusOK, DefinitionChanges{
		VersionID:    item.VersionID,
		Version:      item.Version,
		Definition:   definition,
		File:         file,
		Added:        changedObjects(groups.Added),
		Modified:     changedObjects(groups.Modified),
		Unclassified: changedObjects(groups.Unclassified),
		Removed:      changedObjects(groups.Removed),
	})
}

func changedObjects(objs []diffs.Object) []ChangedObject {
	out := make([]ChangedObject, 0, len(objs))
	for _, o := range objs {
		out = append(out, ChangedObject{
			Key:      o.Key,
			Name:     o.DisplayName(),
			Icon:     o.Icon(),
			Category: o.Category.String(),
			Diff:     o.Diff,
		})
	}
	return out
}
