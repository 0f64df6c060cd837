package particles

import (
	"math"
	"math/rand/v2"
)

// Particle is one point of a Field.
type Particle struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	VX   float64 `json:"vx"`
	VY   float64 `json:"vy"`
	Size float64 `json:"size"`
}

// Pos implements Positioned.
func (p Particle) Pos() (float64, float64) { return p.X, p.Y }

// Config tunes a Field. Distances are in surface pixels, speeds in pixels
// per frame.
type Config struct {
	Count           int
	ConnectDistance float64
	Speed           float64
	SizeMin         float64
	SizeMax         float64

	// PointerRadius and PointerForce displace particles near an active
	// pointer: positive force attracts, negative repels. Zero disables.
	PointerRadius float64
	PointerForce  float64

	// LockOnRadius draws beams from the pointer to nearby particles.
	LockOnRadius float64

	Color RGBA
}

// Network is the welcome-screen background: a slow network of nodes.
var Network = Config{
	Count:           60,
	ConnectDistance: 150,
	Speed:           0.5,
	SizeMin:         1,
	SizeMax:         3,
	Color:           NeonBlue,
}

// Interactive is the page background: the network reacts to the pointer.
var Interactive = Config{
	Count:           80,
	ConnectDistance: 120,
	Speed:           0.4,
	SizeMin:         1,
	SizeMax:         2.5,
	PointerRadius:   180,
	PointerForce:    0.6,
	LockOnRadius:    160,
	Color:           RoyalAmethyst,
}

// Field is a fixed-size particle store, mutated in place every frame.
type Field struct {
	Particles []Particle

	cfg    Config
	width  float64
	height float64
}

// NewField scatters cfg.Count particles over a width x height surface. The
// same seed always yields the same field.
func NewField(cfg Config, width, height float64, seed uint64) *Field {
	n := max(cfg.Count, 0)
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	f := &Field{
		Particles: make([]Particle, n),
		cfg:       cfg,
		width:     math.Max(width, 0),
		height:    math.Max(height, 0),
	}

	sizeSpan := math.Max(cfg.SizeMax-cfg.SizeMin, 0)
	for i := range f.Particles {
		f.Particles[i] = Particle{
			X:    rng.Float64() * f.width,
			Y:    rng.Float64() * f.height,
			VX:   (rng.Float64() - 0.5) * cfg.Speed,
			VY:   (rng.Float64() - 0.5) * cfg.Speed,
			Size: cfg.SizeMin + rng.Float64()*sizeSpan,
		}
	}
	return f
}

func (f *Field) Size() (float64, float64) { return f.width, f.height }

func (f *Field) empty() bool {
	return f.width <= 0 || f.height <= 0
}

// Step advances every particle by its velocity, applies the pointer
// displacement and reflects off the surface edges. Afterwards every particle
// lies within [0,width] x [0,height].
func (f *Field) Step(ptr Pointer) {
	if f.empty() {
		return
	}

	r := f.cfg.PointerRadius
	push := ptr.Active && r > 0 && f.cfg.PointerForce != 0

	for i := range f.Particles {
		p := &f.Particles[i]
		p.X += p.VX
		p.Y += p.VY

		if push {
			dx, dy := ptr.X-p.X, ptr.Y-p.Y
			d := math.Hypot(dx, dy)
			if d > 0 && d < r {
				pull := f.cfg.PointerForce * (1 - d/r)
				// never carry a particle past the pointer
				if pull > d {
					pull = d
				}
				p.X += dx / d * pull
				p.Y += dy / d * pull
			}
		}

		p.X, p.VX = reflect(p.X, p.VX, f.width)
		p.Y, p.VY = reflect(p.Y, p.VY, f.height)
	}
}

// Resize adopts new bounds and pulls particles back inside them.
func (f *Field) Resize(width, height float64) {
	f.width = math.Max(width, 0)
	f.height = math.Max(height, 0)
	for i := range f.Particles {
		p := &f.Particles[i]
		p.X = clamp(p.X, 0, f.width)
		p.Y = clamp(p.Y, 0, f.height)
	}
}

// reflect mirrors an overshoot back inside [0,limit] and points the velocity
// inward.
func reflect(pos, vel, limit float64) (float64, float64) {
	switch {
	case pos < 0:
		pos = -pos
		vel = math.Abs(vel)
	case pos > limit:
		pos = 2*limit - pos
		vel = -math.Abs(vel)
	}
	return clamp(pos, 0, limit), vel
}
