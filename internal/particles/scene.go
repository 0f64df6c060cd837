package particles

import (
	"fmt"
	"sort"
	"time"
)

// Dot is a filled circle. Blur > 0 asks the surface for a soft glow.
type Dot struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	R     float64 `json:"r"`
	Blur  float64 `json:"blur,omitempty"`
	Color RGBA    `json:"color"`
}

// Pos implements Positioned.
func (d Dot) Pos() (float64, float64) { return d.X, d.Y }

// Line is a stroked segment.
type Line struct {
	X1    float64 `json:"x1"`
	Y1    float64 `json:"y1"`
	X2    float64 `json:"x2"`
	Y2    float64 `json:"y2"`
	Width float64 `json:"w"`
	Color RGBA    `json:"color"`
}

// Frame is everything a surface needs to paint one animation frame.
type Frame struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Dots   []Dot   `json:"dots"`
	Lines  []Line  `json:"lines"`
}

// NewFrame returns an empty frame. Dots and Lines are never nil, so idle
// frames encode as empty JSON arrays.
func NewFrame(width, height float64) Frame {
	return Frame{Width: width, Height: height, Dots: []Dot{}, Lines: []Line{}}
}

// Scene is one animated background variant.
type Scene interface {
	Step(ptr Pointer)
	Frame() Frame
	Resize(width, height float64)
}

const (
	linkWidth = 0.5
	beamWidth = 0.8
)

// NetworkScene draws a Field with proximity links and, when the field is
// configured for it, lock-on beams to the pointer.
type NetworkScene struct {
	field *Field
	ptr   Pointer
}

func NewNetworkScene(cfg Config, width, height float64, seed uint64) *NetworkScene {
	return &NetworkScene{field: NewField(cfg, width, height, seed)}
}

func (s *NetworkScene) Field() *Field { return s.field }

func (s *NetworkScene) Step(ptr Pointer) {
	s.ptr = ptr
	s.field.Step(ptr)
}

func (s *NetworkScene) Resize(width, height float64) { s.field.Resize(width, height) }

func (s *NetworkScene) Frame() Frame {
	w, h := s.field.Size()
	f := NewFrame(w, h)
	if s.field.empty() {
		return f
	}

	cfg := s.field.cfg
	ps := s.field.Particles
	f.Dots = make([]Dot, len(ps))
	for i, p := range ps {
		f.Dots[i] = Dot{X: p.X, Y: p.Y, R: p.Size, Color: cfg.Color}
	}

	for _, l := range Links(ps, cfg.ConnectDistance) {
		a, b := ps[l.A], ps[l.B]
		f.Lines = append(f.Lines, Line{
			X1: a.X, Y1: a.Y, X2: b.X, Y2: b.Y,
			Width: linkWidth,
			Color: cfg.Color.WithAlpha(l.Alpha),
		})
	}
	for _, b := range LockOn(ps, s.ptr, cfg.LockOnRadius) {
		p := ps[b.Index]
		f.Lines = append(f.Lines, Line{
			X1: s.ptr.X, Y1: s.ptr.Y, X2: p.X, Y2: p.Y,
			Width: beamWidth,
			Color: ChampagneGold.WithAlpha(b.Alpha),
		})
	}
	return f
}

// LidarScene draws the rotating point cloud with lock-on beams.
type LidarScene struct {
	cloud  *Cloud
	width  float64
	height float64
	ptr    Pointer
}

func NewLidarScene(cfg CloudConfig, width, height float64, seed uint64) *LidarScene {
	return &LidarScene{cloud: NewCloud(cfg, seed), width: width, height: height}
}

func (s *LidarScene) Step(ptr Pointer) {
	s.ptr = ptr
	s.cloud.Step(ptr, s.width, s.height)
}

func (s *LidarScene) Resize(width, height float64) {
	s.width, s.height = width, height
}

func (s *LidarScene) Frame() Frame {
	f := NewFrame(s.width, s.height)
	f.Dots = append(f.Dots, s.cloud.Project(s.width, s.height)...)
	for _, b := range LockOn(f.Dots, s.ptr, s.cloud.cfg.LockOnRadius) {
		d := f.Dots[b.Index]
		f.Lines = append(f.Lines, Line{
			X1: s.ptr.X, Y1: s.ptr.Y, X2: d.X, Y2: d.Y,
			Width: beamWidth,
			Color: s.cloud.cfg.Color.WithAlpha(b.Alpha * 0.8),
		})
	}
	return f
}

// OrbScene animates floating glows on a fixed clock of one tick per Step.
type OrbScene struct {
	orbs    []Orb
	tick    time.Duration
	elapsed time.Duration
	width   float64
	height  float64
}

func NewOrbScene(orbs []Orb, width, height float64, tick time.Duration) *OrbScene {
	return &OrbScene{orbs: orbs, tick: tick, width: width, height: height}
}

func (s *OrbScene) Step(Pointer) { s.elapsed += s.tick }

func (s *OrbScene) Resize(width, height float64) {
	s.width, s.height = width, height
}

func (s *OrbScene) Frame() Frame {
	f := NewFrame(s.width, s.height)
	if s.width <= 0 || s.height <= 0 {
		return f
	}
	f.Dots = make([]Dot, len(s.orbs))
	for i, o := range s.orbs {
		f.Dots[i] = o.DotAt(s.elapsed, s.width, s.height)
	}
	return f
}

// Layered paints its scenes in order, first at the back.
type Layered []Scene

func (l Layered) Step(ptr Pointer) {
	for _, s := range l {
		s.Step(ptr)
	}
}

func (l Layered) Resize(width, height float64) {
	for _, s := range l {
		s.Resize(width, height)
	}
}

func (l Layered) Frame() Frame {
	out := NewFrame(0, 0)
	for i, s := range l {
		f := s.Frame()
		if i == 0 {
			out.Width, out.Height = f.Width, f.Height
		}
		out.Dots = append(out.Dots, f.Dots...)
		out.Lines = append(out.Lines, f.Lines...)
	}
	return out
}

var sceneNames = map[string]func(w, h float64, seed uint64, tick time.Duration) Scene{
	"network": func(w, h float64, seed uint64, _ time.Duration) Scene {
		return NewNetworkScene(Network, w, h, seed)
	},
	"field": func(w, h float64, seed uint64, _ time.Duration) Scene {
		return NewNetworkScene(Interactive, w, h, seed)
	},
	"lidar": func(w, h float64, seed uint64, _ time.Duration) Scene {
		return NewLidarScene(Lidar, w, h, seed)
	},
	"orbs": func(w, h float64, _ uint64, tick time.Duration) Scene {
		return NewOrbScene(BackgroundOrbs, w, h, tick)
	},
	"background": func(w, h float64, seed uint64, tick time.Duration) Scene {
		return Layered{
			NewOrbScene(BackgroundOrbs, w, h, tick),
			NewNetworkScene(Interactive, w, h, seed),
		}
	},
}

// SceneNames lists the variants NewScene accepts.
func SceneNames() []string {
	names := make([]string, 0, len(sceneNames))
	for n := range sceneNames {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// NewScene builds a named variant on a width x height surface. Animations
// that follow wall-clock time advance by one frame at fps per Step.
func NewScene(name string, width, height float64, seed uint64, fps int) (Scene, error) {
	build, ok := sceneNames[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q", name)
	}
	if fps <= 0 {
		fps = 60
	}
	return build(width, height, seed, time.Second/time.Duration(fps)), nil
}
