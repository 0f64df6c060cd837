package particles

import "math"

// Positioned is anything with a surface position.
type Positioned interface {
	Pos() (x, y float64)
}

// Link connects items A and B; Alpha fades linearly with distance.
type Link struct {
	A     int     `json:"a"`
	B     int     `json:"b"`
	Alpha float64 `json:"alpha"`
}

// Beam is a lock-on line from the pointer to item Index.
type Beam struct {
	Index int     `json:"index"`
	Alpha float64 `json:"alpha"`
}

// Links returns a link for every unordered pair closer than threshold.
// The comparison is strict, so a pair exactly threshold apart is not linked.
func Links[T Positioned](items []T, threshold float64) []Link {
	if threshold <= 0 || len(items) < 2 {
		return nil
	}
	var out []Link
	for i := range items {
		x1, y1 := items[i].Pos()
		for j := i + 1; j < len(items); j++ {
			x2, y2 := items[j].Pos()
			d := math.Hypot(x1-x2, y1-y2)
			if d < threshold {
				out = append(out, Link{A: i, B: j, Alpha: 1 - d/threshold})
			}
		}
	}
	return out
}

// LockOn returns beams from an active pointer to every item strictly within
// radius.
func LockOn[T Positioned](items []T, ptr Pointer, radius float64) []Beam {
	if !ptr.Active || radius <= 0 {
		return nil
	}
	var out []Beam
	for i := range items {
		x, y := items[i].Pos()
		d := math.Hypot(x-ptr.X, y-ptr.Y)
		if d < radius {
			out = append(out, Beam{Index: i, Alpha: 1 - d/radius})
		}
	}
	return out
}
