package particles

// Surface is a drawing target: an SVG document, a terminal, a test recorder.
type Surface interface {
	Clear(width, height float64)
	Dot(d Dot)
	Line(l Line)
}

// Render clears s and paints f: dots first, then lines over them.
func Render(s Surface, f Frame) {
	if s == nil {
		return
	}
	s.Clear(f.Width, f.Height)
	for _, d := range f.Dots {
		s.Dot(d)
	}
	for _, l := range f.Lines {
		s.Line(l)
	}
}
