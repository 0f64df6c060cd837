package particles

import (
	"math"
	"math/rand/v2"
)

// Vec3 is a point of the lidar cloud in model space, roughly in [-1,1]^3.
type Vec3 struct {
	X, Y, Z float64
}

// CloudConfig tunes the lidar point cloud.
type CloudConfig struct {
	Count        int
	Shell        float64 // inner radius of the sphere shell, outer is 1
	YawSpeed     float64 // radians per frame
	MaxTilt      float64 // radians of pitch at full pointer offset
	TiltEase     float64 // fraction of the pitch gap closed per frame
	Camera       float64 // camera distance from the origin
	Focal        float64
	LockOnRadius float64
	Color        RGBA
}

var Lidar = CloudConfig{
	Count:        420,
	Shell:        0.82,
	YawSpeed:     0.006,
	MaxTilt:      0.6,
	TiltEase:     0.08,
	Camera:       3,
	Focal:        2.2,
	LockOnRadius: 140,
	Color:        NeonBlue,
}

// Cloud is a rotating sphere-shell point cloud, projected in perspective.
type Cloud struct {
	Points []Vec3

	cfg   CloudConfig
	yaw   float64
	pitch float64
}

func NewCloud(cfg CloudConfig, seed uint64) *Cloud {
	rng := rand.New(rand.NewPCG(seed, seed^0x2545f4914f6cdd1d))
	c := &Cloud{Points: make([]Vec3, max(cfg.Count, 0)), cfg: cfg}

	for i := range c.Points {
		// uniform direction on the sphere, radius jittered inside the shell
		z := 2*rng.Float64() - 1
		theta := 2 * math.Pi * rng.Float64()
		s := math.Sqrt(1 - z*z)
		r := cfg.Shell + (1-cfg.Shell)*rng.Float64()
		c.Points[i] = Vec3{X: r * s * math.Cos(theta), Y: r * z, Z: r * s * math.Sin(theta)}
	}
	return c
}

// Step turns the cloud. An active pointer tilts it toward the pointer's
// vertical offset from the centre of a width x height surface.
func (c *Cloud) Step(ptr Pointer, width, height float64) {
	c.yaw = math.Mod(c.yaw+c.cfg.YawSpeed, 2*math.Pi)

	target := 0.0
	if ptr.Active && height > 0 {
		off := clamp((ptr.Y-height/2)/(height/2), -1, 1)
		target = off * c.cfg.MaxTilt
	}
	c.pitch += (target - c.pitch) * c.cfg.TiltEase
}

// Angles reports the current yaw and pitch in radians.
func (c *Cloud) Angles() (yaw, pitch float64) { return c.yaw, c.pitch }

// Project maps the cloud to screen dots. Nearer points are larger and
// brighter; points at or behind the camera plane are dropped.
func (c *Cloud) Project(width, height float64) []Dot {
	if width <= 0 || height <= 0 {
		return nil
	}

	scale := math.Min(width, height) * 0.35
	cx, cy := width/2, height/2
	syaw, cyaw := math.Sincos(c.yaw)
	sp, cp := math.Sincos(c.pitch)

	dots := make([]Dot, 0, len(c.Points))
	for _, p := range c.Points {
		// yaw about Y, then pitch about X
		x := p.X*cyaw + p.Z*syaw
		z := -p.X*syaw + p.Z*cyaw
		y := p.Y*cp - z*sp
		z = p.Y*sp + z*cp

		depth := c.cfg.Camera + z
		if depth <= 0.01 {
			continue
		}
		k := c.cfg.Focal / depth
		near := clamp(1-(z+1)/2, 0, 1)

		dots = append(dots, Dot{
			X:     cx + x*k*scale,
			Y:     cy + y*k*scale,
			R:     0.6 + 1.6*near,
			Color: c.cfg.Color.WithAlpha(0.25 + 0.75*near),
		})
	}
	return dots
}
