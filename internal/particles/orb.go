package particles

import (
	"math"
	"time"
)

// Track is a repeating keyframe animation: Values are evenly spaced over
// Duration and each segment is eased in and out.
type Track struct {
	Values   []float64
	Duration time.Duration
}

// At samples the track t after it started.
func (tr Track) At(t time.Duration) float64 {
	switch len(tr.Values) {
	case 0:
		return 0
	case 1:
		return tr.Values[0]
	}
	if tr.Duration <= 0 {
		return tr.Values[0]
	}

	phase := math.Mod(float64(t), float64(tr.Duration)) / float64(tr.Duration)
	if phase < 0 {
		phase += 1
	}
	segs := float64(len(tr.Values) - 1)
	pos := phase * segs
	i := int(pos)
	if i >= len(tr.Values)-1 {
		return tr.Values[len(tr.Values)-1]
	}
	return lerp(tr.Values[i], tr.Values[i+1], easeInOut(pos-float64(i)))
}

func easeInOut(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Orb is a blurred glow anchored at a fraction of the surface.
type Orb struct {
	AnchorX, AnchorY float64 // fraction of width/height
	Diameter         float64 // pixels
	Blur             float64
	Color            RGBA

	OffsetX Track
	OffsetY Track
	Scale   Track
}

// BackgroundOrbs are the two floating glows behind the page.
var BackgroundOrbs = []Orb{
	{
		AnchorX:  0.25,
		AnchorY:  0.25,
		Diameter: 256,
		Blur:     100,
		Color:    RoyalAmethyst.WithAlpha(0.1),
		OffsetY:  Track{Values: []float64{0, -20, 0}, Duration: 5 * time.Second},
		Scale:    Track{Values: []float64{1, 1.1, 1}, Duration: 5 * time.Second},
	},
	{
		AnchorX:  0.75,
		AnchorY:  2.0 / 3.0,
		Diameter: 384,
		Blur:     120,
		Color:    AmethystLight.WithAlpha(0.1),
		OffsetX:  Track{Values: []float64{0, 20, 0}, Duration: 7 * time.Second},
		OffsetY:  Track{Values: []float64{0, 30, 0}, Duration: 7 * time.Second},
		Scale:    Track{Values: []float64{1, 1.2, 1}, Duration: 7 * time.Second},
	},
}

// DotAt renders the orb on a width x height surface at time t.
func (o Orb) DotAt(t time.Duration, width, height float64) Dot {
	scale := 1.0
	if len(o.Scale.Values) > 0 {
		scale = o.Scale.At(t)
	}
	return Dot{
		X:     o.AnchorX*width + o.OffsetX.At(t),
		Y:     o.AnchorY*height + o.OffsetY.At(t),
		R:     o.Diameter / 2 * scale,
		Blur:  o.Blur,
		Color: o.Color,
	}
}
