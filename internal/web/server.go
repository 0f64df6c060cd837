// Package web serves the portfolio: the page in each language, its
// fragments, the assets and the live particle background.
package web

import (
	"context"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MaroIng01/portfolio/internal/apperr"
	"github.com/MaroIng01/portfolio/internal/config"
	"github.com/MaroIng01/portfolio/internal/locale"
	"github.com/MaroIng01/portfolio/internal/logger"
	"github.com/MaroIng01/portfolio/internal/media"
)

const (
	langCookie     = "lang"
	langCookieAge  = 365 * 24 * 60 * 60
	shutdownPeriod = 10 * time.Second

	// MusicFile is the background track under ASSETS_DIR/music.
	MusicFile = "soft-jazz.mp3"
	// BackgroundScene is the scene behind every page, WelcomeScene the one
	// behind the welcome screen.
	BackgroundScene = "background"
	WelcomeScene    = "network"
)

// Server owns the gin engine and the live background streams.
type Server struct {
	cfg     config.Config
	catalog *locale.Catalog
	log     *slog.Logger
	engine  *gin.Engine
	tmpl    *template.Template
	streams *hub
	salt    string
	track   *trackCache
}

// New builds the engine and registers every route. A nil log uses the
// process logger.
func New(cfg config.Config, catalog *locale.Catalog, log *slog.Logger) (*Server, error) {
	if log == nil {
		log = logger.L()
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	tmpl, err := Templates()
	if err != nil {
		return nil, err
	}
	salt, err := newSalt()
	if err != nil {
		return nil, &apperr.OpError{Op: "web.new", Kind: apperr.KindExecution, Err: err}
	}

	s := &Server{
		cfg:     cfg,
		catalog: catalog,
		log:     log,
		tmpl:    tmpl,
		streams: newHub(),
		salt:    salt,
		track:   &trackCache{path: filepath.Join(cfg.AssetsDir, "music", MusicFile)},
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(log, salt))
	r.SetHTMLTemplate(tmpl)
	s.routes(r)
	s.engine = r
	return s, nil
}

func (s *Server) routes(r *gin.Engine) {
	r.GET("/", s.index)
	r.GET("/lang/:code", s.switchLang)
	r.GET("/skills/*name", s.skill)
	r.GET("/cv", s.cv)
	r.GET("/music", s.music)
	r.GET("/healthz", s.healthz)

	r.GET("/background.svg", s.snapshot)
	r.GET("/background/stream", s.stream)
	r.POST("/background/pointer/:id", s.pointer)

	r.StaticFS("/static", http.FS(Static()))
	r.Static("/images", filepath.Join(s.cfg.AssetsDir, "images"))
	r.Static("/cv", filepath.Join(s.cfg.AssetsDir, "cv"))
	r.Static("/music", filepath.Join(s.cfg.AssetsDir, "music"))

	r.NoRoute(s.notFound)
}

// trackCache keeps the first successful probe of the music file. Failures
// are not kept, so a track added after startup is picked up.
type trackCache struct {
	path string

	mu    sync.Mutex
	track media.Track
	ok    bool
}

func (c *trackCache) get() (media.Track, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ok {
		return c.track, nil
	}
	t, err := media.Probe(c.path)
	if err != nil {
		return media.Track{}, err
	}
	c.track, c.ok = t, true
	return t, nil
}

// Handler exposes the engine, mostly for tests.
func (s *Server) Handler() http.Handler { return s.engine }

// ListenAndServe serves on the configured port until ctx is done, then
// closes the open streams and drains in-flight requests.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("server.listening", "addr", srv.Addr, "languages", s.catalog.Languages())
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return &apperr.OpError{Op: "web.serve", Kind: apperr.KindExecution, Path: srv.Addr, Err: err}
	case <-ctx.Done():
	}

	s.log.Info("server.shutdown", "streams", s.streams.len())
	s.streams.closeAll()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return &apperr.OpError{Op: "web.shutdown", Kind: apperr.KindExecution, Err: err}
	}
	return nil
}

// lang picks the page language: query, then cookie, then the default.
func (s *Server) lang(c *gin.Context) string {
	if q := c.Query("lang"); s.catalog.Has(q) {
		return q
	}
	if ck, err := c.Cookie(langCookie); err == nil && s.catalog.Has(ck) {
		return ck
	}
	return s.catalog.Default()
}

// statusOf maps an error kind to an HTTP status.
func statusOf(err error) int {
	switch {
	case apperr.IsKind(err, apperr.KindInvalidInput):
		return http.StatusBadRequest
	case apperr.IsKind(err, apperr.KindNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) abortHTML(c *gin.Context, err error) {
	status := statusOf(err)
	_ = c.Error(err)
	d := s.catalog.Get(s.lang(c))
	c.HTML(status, "error.html", gin.H{
		"Status":  status,
		"Message": http.StatusText(status),
		"Home":    d.Nav.Home,
	})
	c.Abort()
}

func (s *Server) abortJSON(c *gin.Context, err error) {
	status := statusOf(err)
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}
