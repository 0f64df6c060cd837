// Package svg paints particle frames as standalone SVG documents.
package svg

import (
	"fmt"
	"io"
	"math"

	svgo "github.com/ajstarks/svgo"

	"github.com/MaroIng01/portfolio/internal/particles"
)

// svgo takes integer coordinates; drawing at 10x inside a scale(0.1) group
// keeps a tenth of a pixel of precision.
const precision = 10

// Surface implements particles.Surface on top of an svgo canvas. Call Close
// once the frame is painted.
type Surface struct {
	canvas *svgo.SVG
	w      *errWriter
	blurs  map[int]string
	open   bool
}

func New(w io.Writer) *Surface {
	ew := &errWriter{w: w}
	return &Surface{canvas: svgo.New(ew), w: ew, blurs: make(map[int]string)}
}

// Clear starts the document and paints the page background.
func (s *Surface) Clear(width, height float64) {
	if s.open {
		return
	}
	s.open = true

	w, h := int(math.Ceil(width)), int(math.Ceil(height))
	s.canvas.Start(w, h, fmt.Sprintf(`viewBox="0 0 %d %d" preserveAspectRatio="xMidYMid slice"`, w, h))
	s.canvas.Rect(0, 0, w, h, "fill:"+particles.DeepVoid.Hex())
	s.canvas.Gtransform(fmt.Sprintf("scale(%g)", 1.0/precision))
}

func (s *Surface) Dot(d particles.Dot) {
	style := fill(d.Color)
	if d.Blur > 0 {
		style += ";filter:url(#" + s.blur(d.Blur) + ")"
	}
	s.canvas.Circle(scaled(d.X), scaled(d.Y), max(scaled(d.R), 1), style)
}

func (s *Surface) Line(l particles.Line) {
	style := fmt.Sprintf("stroke:%s;stroke-opacity:%.3f;stroke-width:%d;stroke-linecap:round",
		l.Color.Hex(), l.Color.A, max(scaled(l.Width), 1))
	s.canvas.Line(scaled(l.X1), scaled(l.Y1), scaled(l.X2), scaled(l.Y2), style)
}

// Close ends the document and reports the first write error, if any.
func (s *Surface) Close() error {
	if s.open {
		s.canvas.Gend()
		s.canvas.End()
		s.open = false
	}
	return s.w.err
}

// blur defines a gaussian blur filter once per radius and returns its id.
func (s *Surface) blur(r float64) string {
	key := int(math.Round(r))
	if id, ok := s.blurs[key]; ok {
		return id
	}
	id := fmt.Sprintf("blur%d", key)
	s.blurs[key] = id

	std := float64(key*precision) / 2
	s.canvas.Def()
	s.canvas.Filter(id, `x="-100%" y="-100%" width="300%" height="300%"`)
	s.canvas.FeGaussianBlur(svgo.Filterspec{In: "SourceGraphic"}, std, std)
	s.canvas.Fend()
	s.canvas.DefEnd()
	return id
}

// Write renders a complete frame to w.
func Write(w io.Writer, f particles.Frame) error {
	s := New(w)
	particles.Render(s, f)
	return s.Close()
}

func fill(c particles.RGBA) string {
	return fmt.Sprintf("fill:%s;fill-opacity:%.3f", c.Hex(), c.A)
}

func scaled(v float64) int {
	return int(math.Round(v * precision))
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
