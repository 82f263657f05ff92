// Package api serves the manifest archive as a small read-only JSON API.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/itssimple/manifest-report-site/internal/logging"
	"github.com/itssimple/manifest-report-site/internal/manifests"
	"github.com/itssimple/manifest-report-site/internal/models"
)

// Archive is the read surface of manifests.Client used by the handlers.
type Archive interface {
	ListManifests(ctx context.Context) ([]models.ManifestListItem, error)
	GetManifestByVersion(ctx context.Context, versionID string) (models.ManifestListItem, bool, error)
	GetDefinitionTable(ctx context.Context, version, definition string) manifests.Result[models.DefinitionTable]
	GetDiffPayload(ctx context.Context, version, definition string) manifests.Result[models.DiffEntryHolder]
}

var _ Archive = (*manifests.Client)(nil)

type Server struct {
	address       string
	archive       Archive
	publicBaseURL string
	logger        logging.Logger
	echo          *echo.Echo
}

func NewServer(address, publicBaseURL string, archive Archive, l logging.Logger) *Server {
	s := &Server{
		address:       address,
		archive:       archive,
		publicBaseURL: publicBaseURL,
		logger:        l.With("module", "api_server"),
	}
	s.echo = s.routes()
	return s
}

// Handler exposes the routed echo instance.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) routes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(s.requestLogger)

	e.GET("/api/manifest", s.latestManifest)
	e.GET("/api/manifest/version", s.latestVersion)
	e.GET("/api/manifests", s.listManifests)
	e.GET("/api/manifests/:version", s.manifestByVersion)
	e.GET("/api/manifests/:version/:definition", s.definitionChanges)

	return e
}

// Run serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping API server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.echo.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown failed", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting API server", "address", s.address)

	if err := s.echo.Start(s.address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
