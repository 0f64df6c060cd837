package web

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"slices"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/MaroIng01/portfolio/internal/apperr"
	"github.com/MaroIng01/portfolio/internal/particles"
	"github.com/MaroIng01/portfolio/internal/surface/svg"
)

// Bounds of the background query parameters.
const (
	defaultWidth  = 1920
	defaultHeight = 1080
	maxSide       = 7680
	defaultFrames = 120
	maxFrames     = 1200
)

// Snapshot describes one rendered background frame.
type Snapshot struct {
	Scene  string
	Width  int
	Height int
	Seed   uint64
	Frames int // steps simulated before the frame is taken
	FPS    int
}

// WriteSnapshot simulates p.Frames steps without pointer input and writes
// the resulting frame as SVG.
func WriteSnapshot(w io.Writer, p Snapshot) error {
	scene, err := particles.NewScene(p.Scene, float64(p.Width), float64(p.Height), p.Seed, p.FPS)
	if err != nil {
		return &apperr.OpError{Op: "web.snapshot", Kind: apperr.KindInvalidInput, Err: err}
	}
	for range p.Frames {
		scene.Step(particles.Pointer{})
	}
	if err := svg.Write(w, scene.Frame()); err != nil {
		return &apperr.OpError{Op: "web.snapshot", Kind: apperr.KindExecution, Err: err}
	}
	return nil
}

func (s *Server) snapshot(c *gin.Context) {
	p, err := s.snapshotParams(c)
	if err != nil {
		s.abortJSON(c, err)
		return
	}
	var buf bytes.Buffer
	if err := WriteSnapshot(&buf, p); err != nil {
		s.abortJSON(c, err)
		return
	}
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "image/svg+xml", buf.Bytes())
}

// stream sends a "session" event carrying the id pointer updates must use,
// then one "frame" event per tick until the client leaves, the server
// shuts down or the stream reaches its maximum age.
func (s *Server) stream(c *gin.Context) {
	p, err := s.snapshotParams(c)
	if err != nil {
		s.abortJSON(c, err)
		return
	}
	scene, err := particles.NewScene(p.Scene, float64(p.Width), float64(p.Height), p.Seed, p.FPS)
	if err != nil {
		s.abortJSON(c, &apperr.OpError{Op: "web.stream", Kind: apperr.KindInvalidInput, Err: err})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), s.cfg.StreamMaxTime)
	defer cancel()
	id, tracker := s.streams.open(cancel)
	defer s.streams.close(id)

	s.log.Debug("stream.opened", "session", id, "scene", p.Scene, "width", p.Width, "height", p.Height)

	c.Header("X-Accel-Buffering", "no")
	c.SSEvent("session", id)
	c.Writer.Flush()

	frames := 0
	err = particles.Run(ctx, scene, tracker, p.FPS, func(f particles.Frame) error {
		c.SSEvent("frame", f)
		c.Writer.Flush()
		frames++
		if e := c.Errors.Last(); e != nil {
			return e
		}
		return nil
	})
	s.log.Debug("stream.closed", "session", id, "frames", frames, "reason", err)
}

func (s *Server) pointer(c *gin.Context) {
	const op = "web.pointer"

	id := c.Param("id")
	tracker, ok := s.streams.get(id)
	if !ok {
		s.abortJSON(c, apperr.New(op, apperr.KindNotFound, "unknown stream session %q", id))
		return
	}
	var ptr particles.Pointer
	if err := c.ShouldBindJSON(&ptr); err != nil {
		s.abortJSON(c, &apperr.OpError{Op: op, Kind: apperr.KindInvalidInput, Err: err})
		return
	}
	tracker.Set(ptr)
	c.Status(http.StatusNoContent)
}

func (s *Server) snapshotParams(c *gin.Context) (Snapshot, error) {
	p := Snapshot{
		Scene: c.DefaultQuery("scene", BackgroundScene),
		FPS:   s.cfg.ParticleFPS,
	}
	if !slices.Contains(particles.SceneNames(), p.Scene) {
		return Snapshot{}, apperr.New("web.params", apperr.KindInvalidInput, "unknown scene %q", p.Scene)
	}

	var err error
	if p.Width, err = intQuery(c, "w", defaultWidth, 1, maxSide); err != nil {
		return Snapshot{}, err
	}
	if p.Height, err = intQuery(c, "h", defaultHeight, 1, maxSide); err != nil {
		return Snapshot{}, err
	}
	if p.Frames, err = intQuery(c, "frames", defaultFrames, 0, maxFrames); err != nil {
		return Snapshot{}, err
	}

	p.Seed = 1
	if raw := c.Query("seed"); raw != "" {
		if p.Seed, err = strconv.ParseUint(raw, 10, 64); err != nil {
			return Snapshot{}, &apperr.OpError{Op: "web.params", Kind: apperr.KindInvalidInput, Path: "seed", Err: err}
		}
	}
	return p, nil
}

func intQuery(c *gin.Context, key string, def, lo, hi int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &apperr.OpError{Op: "web.params", Kind: apperr.KindInvalidInput, Path: key, Err: err}
	}
	if n < lo || n > hi {
		return 0, apperr.New("web.params", apperr.KindInvalidInput, "%s=%d outside [%d, %d]", key, n, lo, hi)
	}
	return n, nil
}

// hub tracks the open streams so pointer updates can find their tracker.
type hub struct {
	mu       sync.Mutex
	sessions map[string]*session
}

type session struct {
	tracker *particles.Tracker
	cancel  context.CancelFunc
}

func newHub() *hub {
	return &hub{sessions: make(map[string]*session)}
}

func (h *hub) open(cancel context.CancelFunc) (string, *particles.Tracker) {
	id := uuid.NewString()
	t := &particles.Tracker{}
	h.mu.Lock()
	h.sessions[id] = &session{tracker: t, cancel: cancel}
	h.mu.Unlock()
	return id, t
}

func (h *hub) get(id string) (*particles.Tracker, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	sess, ok := h.sessions[id]
	if !ok {
		return nil, false
	}
	return sess.tracker, true
}

func (h *hub) close(id string) {
	h.mu.Lock()
	delete(h.sessions, id)
	h.mu.Unlock()
}

// closeAll cancels every stream; each handler removes its own session.
func (h *hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, sess := range h.sessions {
		sess.cancel()
	}
}

func (h *hub) len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sessions)
}
