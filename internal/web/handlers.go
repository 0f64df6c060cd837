package web

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/MaroIng01/portfolio/internal/apperr"
	"github.com/MaroIng01/portfolio/internal/locale"
	"github.com/MaroIng01/portfolio/internal/site"
)

// PageOptions are the delivery options of a page served by the live server.
func (s *Server) PageOptions(section string) site.Options {
	opts := site.Options{
		Section:     section,
		Background:  BackgroundScene,
		SnapshotURL: "/background.svg?scene=" + BackgroundScene,
		WelcomeURL:  "/background.svg?scene=" + WelcomeScene,
		StreamFPS:   s.cfg.ParticleFPS,
		MusicURL:    "/music/" + MusicFile,
	}
	if t, err := s.track.get(); err == nil {
		opts.MusicDuration = t.Duration
	}
	return opts
}

func (s *Server) index(c *gin.Context) {
	lang := s.lang(c)
	c.Header("Content-Language", lang)
	c.HTML(http.StatusOK, "index.html", site.NewPage(s.catalog, lang, s.PageOptions(c.Query("section"))))
}

// switchLang stores the chosen language and sends the visitor back to the
// page. Choosing the active language again changes nothing.
func (s *Server) switchLang(c *gin.Context) {
	sel := locale.NewSelection(s.catalog, s.lang(c))
	changed, err := sel.Select(c.Param("code"))
	if err != nil {
		s.abortHTML(c, err)
		return
	}
	if changed {
		c.SetCookie(langCookie, sel.Active(), langCookieAge, "/", "", false, true)
	}
	c.Redirect(http.StatusFound, "/")
}

// skill renders the modal fragment for one skill badge.
func (s *Server) skill(c *gin.Context) {
	name := strings.TrimPrefix(c.Param("name"), "/")
	if name == "" {
		s.abortHTML(c, apperr.New("web.skill", apperr.KindInvalidInput, "skill name is empty"))
		return
	}
	d := s.catalog.Get(s.lang(c))
	if !d.HasSkill(name) {
		s.abortHTML(c, apperr.New("web.skill", apperr.KindNotFound, "skill %q is not listed", name))
		return
	}
	c.HTML(http.StatusOK, "skill.html", gin.H{
		"Name":        name,
		"Description": d.SkillDescription(name),
	})
}

func (s *Server) cv(c *gin.Context) {
	c.Redirect(http.StatusFound, s.catalog.Get(s.lang(c)).Hero.CVURL)
}

func (s *Server) music(c *gin.Context) {
	t, err := s.track.get()
	if err != nil {
		s.abortJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"url":         "/music/" + MusicFile,
		"sample_rate": t.SampleRate,
		"channels":    t.Channels,
		"seconds":     t.Duration.Seconds(),
	})
}

func (s *Server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"languages": s.catalog.Languages(),
		"streams":   s.streams.len(),
	})
}

func (s *Server) notFound(c *gin.Context) {
	s.abortHTML(c, apperr.New("web.route", apperr.KindNotFound, "no route for %s", c.Request.URL.Path))
}
