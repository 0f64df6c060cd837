package web

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MaroIng01/portfolio/internal/config"
	"github.com/MaroIng01/portfolio/internal/locale"
	"github.com/MaroIng01/portfolio/internal/particles"
)

func newTestServer(t *testing.T) (*Server, *bytes.Buffer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalog, err := locale.Load("en")
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	cfg := config.Config{
		Port:          "0",
		GinMode:       gin.TestMode,
		AssetsDir:     t.TempDir(),
		DefaultLang:   "en",
		ParticleFPS:   120,
		StreamMaxTime: 80 * time.Millisecond,
	}
	var logs bytes.Buffer
	s, err := New(cfg, catalog, slog.New(slog.NewJSONHandler(&logs, nil)))
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	return s, &logs
}

func do(t *testing.T, s *Server, method, target string, body io.Reader, prep ...func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	for _, p := range prep {
		p(req)
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func withCookie(lang string) func(*http.Request) {
	return func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: langCookie, Value: lang})
	}
}

func TestIndexLanguage(t *testing.T) {
	s, _ := newTestServer(t)

	cases := []struct {
		name   string
		target string
		prep   []func(*http.Request)
		lang   string
		text   string
	}{
		{"default", "/", nil, "en", "Download CV"},
		{"query", "/?lang=fr", nil, "fr", "Télécharger CV"},
		{"cookie", "/", []func(*http.Request){withCookie("fr")}, "fr", "Accueil"},
		{"query beats cookie", "/?lang=en", []func(*http.Request){withCookie("fr")}, "en", "Home"},
		{"unknown falls back", "/?lang=de", nil, "en", "Download CV"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(t, s, http.MethodGet, tc.target, nil, tc.prep...)
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
			body := w.Body.String()
			if !strings.Contains(body, `<html lang="`+tc.lang+`">`) {
				t.Fatalf("expected page in %s", tc.lang)
			}
			if !strings.Contains(body, tc.text) {
				t.Fatalf("expected %q in page", tc.text)
			}
			if got := w.Header().Get("Content-Language"); got != tc.lang {
				t.Fatalf("expected Content-Language %s, got %s", tc.lang, got)
			}
		})
	}
}

func TestIndexSections(t *testing.T) {
	s, _ := newTestServer(t)
	body := do(t, s, http.MethodGet, "/?section=projects", nil).Body.String()

	for _, id := range []string{"welcome", "home", "about", "experience", "projects", "contact", "music", "background"} {
		if !strings.Contains(body, `id="`+id+`"`) {
			t.Fatalf("missing element #%s", id)
		}
	}
	if !strings.Contains(body, `data-section="projects" class="navbar-link active"`) {
		t.Fatalf("expected projects highlighted")
	}
	if !strings.Contains(body, `data-root-margin="-30% 0px -40% 0px"`) {
		t.Fatalf("expected observer root margin on body")
	}
	if !strings.Contains(body, `data-stream="/background/stream"`) {
		t.Fatalf("expected live background stream")
	}
	if strings.Count(body, `class="timeline-entry mirrored"`) != 2 {
		t.Fatalf("expected the 1st and 3rd jobs mirrored")
	}
}

func TestSwitchLanguage(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(t, s, http.MethodGet, "/lang/fr", nil)
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/" {
		t.Fatalf("expected redirect to /, got %d %q", w.Code, w.Header().Get("Location"))
	}
	if ck := w.Header().Get("Set-Cookie"); !strings.HasPrefix(ck, "lang=fr") {
		t.Fatalf("expected lang cookie, got %q", ck)
	}

	w = do(t, s, http.MethodGet, "/lang/fr", nil, withCookie("fr"))
	if w.Code != http.StatusFound {
		t.Fatalf("expected redirect, got %d", w.Code)
	}
	if ck := w.Header().Get("Set-Cookie"); ck != "" {
		t.Fatalf("selecting the active language must not touch the cookie, got %q", ck)
	}

	w = do(t, s, http.MethodGet, "/lang/de", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unsupported language, got %d", w.Code)
	}
}

func TestSkillFragment(t *testing.T) {
	s, _ := newTestServer(t)

	cases := []struct {
		target string
		want   string
	}{
		{"/skills/ROS", "The industry standard middleware"},
		{"/skills/ROS?lang=fr", "Le middleware standard"},
		{"/skills/C/C++", "Low-level programming languages"},
	}
	for _, tc := range cases {
		w := do(t, s, http.MethodGet, tc.target, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", tc.target, w.Code)
		}
		body := w.Body.String()
		if !strings.Contains(body, tc.want) {
			t.Fatalf("%s: expected %q in %s", tc.target, tc.want, body)
		}
		if strings.Contains(body, "<html") {
			t.Fatalf("%s: expected a fragment, got a full page", tc.target)
		}
	}

	if w := do(t, s, http.MethodGet, "/skills/Kubernetes", nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for a skill missing from the badges, got %d", w.Code)
	}
}

func TestCVRedirect(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(t, s, http.MethodGet, "/cv", nil)
	if w.Header().Get("Location") != "/cv/Marouane_ACHARIFI_ShortEngCV.pdf" {
		t.Fatalf("unexpected english CV location %q", w.Header().Get("Location"))
	}
	w = do(t, s, http.MethodGet, "/cv", nil, withCookie("fr"))
	if w.Header().Get("Location") != "/cv/Marouane_ACHARIFI_ENIAD_ROC3.pdf" {
		t.Fatalf("unexpected french CV location %q", w.Header().Get("Location"))
	}
}

func TestAssets(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(t, s, http.MethodGet, "/static/css/site.css", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "--royal-amethyst") {
		t.Fatalf("expected embedded stylesheet, got %d", w.Code)
	}

	dir := filepath.Join(s.cfg.AssetsDir, "cv")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "cv.pdf"), []byte("%PDF-1.4"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	w = do(t, s, http.MethodGet, "/cv/cv.pdf", nil)
	if w.Code != http.StatusOK || w.Body.String() != "%PDF-1.4" {
		t.Fatalf("expected CV file, got %d", w.Code)
	}
}

func TestMusicMissing(t *testing.T) {
	s, _ := newTestServer(t)
	w := do(t, s, http.MethodGet, "/music", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 without a track, got %d", w.Code)
	}

	// a file added later is probed again instead of the cached miss
	dir := filepath.Join(s.cfg.AssetsDir, "music")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, MusicFile), []byte("not an mp3 stream"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	w = do(t, s, http.MethodGet, "/music", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected the new file to be probed, got %d", w.Code)
	}
}

func TestNotFoundAndHealth(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(t, s, http.MethodGet, "/nowhere", nil)
	if w.Code != http.StatusNotFound || !strings.Contains(w.Body.String(), "404") {
		t.Fatalf("expected 404 page, got %d", w.Code)
	}

	w = do(t, s, http.MethodGet, "/healthz", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected health response %d %s", w.Code, w.Body.String())
	}
}

func TestSnapshot(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(t, s, http.MethodGet, "/background.svg?scene=network&w=320&h=200&frames=5&seed=7", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Fatalf("unexpected content type %q", ct)
	}
	if !strings.Contains(w.Body.String(), "<svg") {
		t.Fatalf("expected an svg document")
	}

	again := do(t, s, http.MethodGet, "/background.svg?scene=network&w=320&h=200&frames=5&seed=7", nil)
	if again.Body.String() != w.Body.String() {
		t.Fatalf("same seed must render the same snapshot")
	}

	for _, q := range []string{"w=0", "h=99999", "frames=-1", "seed=abc", "scene=nope", "w=wide"} {
		w := do(t, s, http.MethodGet, "/background.svg?"+q, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", q, w.Code)
		}
	}
}

func TestStream(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(t, s, http.MethodGet, "/background/stream?scene=network&w=200&h=100", nil)
	body := w.Body.String()
	if !strings.HasPrefix(body, "event:session\n") {
		t.Fatalf("expected the session event first, got %.40q", body)
	}
	if !strings.Contains(body, "event:frame\n") {
		t.Fatalf("expected frame events")
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/event-stream") {
		t.Fatalf("unexpected content type %q", ct)
	}
	if s.streams.len() != 0 {
		t.Fatalf("expected the session to be released")
	}
}

func TestPointer(t *testing.T) {
	s, _ := newTestServer(t)
	id, tracker := s.streams.open(func() {})

	w := do(t, s, http.MethodPost, "/background/pointer/"+id, strings.NewReader(`{"x":10,"y":20,"active":true}`))
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if got := tracker.Pointer(); got != (particles.Pointer{X: 10, Y: 20, Active: true}) {
		t.Fatalf("unexpected pointer %+v", got)
	}

	w = do(t, s, http.MethodPost, "/background/pointer/"+id, strings.NewReader(`{nope`))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad json, got %d", w.Code)
	}

	w = do(t, s, http.MethodPost, "/background/pointer/unknown", strings.NewReader(`{}`))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown session, got %d", w.Code)
	}
}

func TestHubCloseAll(t *testing.T) {
	h := newHub()
	cancelled := 0
	h.open(func() { cancelled++ })
	h.open(func() { cancelled++ })
	h.closeAll()
	if cancelled != 2 {
		t.Fatalf("expected both sessions cancelled, got %d", cancelled)
	}
}
