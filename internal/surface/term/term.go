// Package term paints particle frames onto a tcell screen, one character
// cell per pixelsPerCol x pixelsPerRow block of the simulated surface.
package term

import (
	"context"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/MaroIng01/portfolio/internal/particles"
)

// Terminal cells are roughly twice as tall as they are wide.
const (
	pixelsPerCol = 8
	pixelsPerRow = 16
)

var background = tcell.NewRGBColor(5, 5, 5)

// Surface implements particles.Surface on a tcell screen.
type Surface struct {
	screen tcell.Screen
}

func New(screen tcell.Screen) *Surface {
	return &Surface{screen: screen}
}

// SurfaceSize is the simulated pixel size matching the screen.
func SurfaceSize(screen tcell.Screen) (float64, float64) {
	cols, rows := screen.Size()
	return float64(cols * pixelsPerCol), float64(rows * pixelsPerRow)
}

func (s *Surface) Clear(float64, float64) {
	s.screen.Fill(' ', tcell.StyleDefault.Background(background))
}

func (s *Surface) Dot(d particles.Dot) {
	if d.Blur > 0 {
		s.glow(d)
		return
	}
	col, row := cell(d.X, d.Y)
	r := '·'
	if d.R >= 2 {
		r = '•'
	}
	s.set(col, row, r, d.Color)
}

// glow tints the background of every cell inside the orb, fading outward.
func (s *Surface) glow(d particles.Dot) {
	c0, r0 := cell(d.X-d.R, d.Y-d.R)
	c1, r1 := cell(d.X+d.R, d.Y+d.R)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			px := (float64(col) + 0.5) * pixelsPerCol
			py := (float64(row) + 0.5) * pixelsPerRow
			dist := math.Hypot(px-d.X, py-d.Y)
			if dist >= d.R {
				continue
			}
			fade := d.Color.WithAlpha(1 - dist/d.R)
			mainc, comb, style, _ := s.screen.GetContent(col, row)
			s.screen.SetContent(col, row, mainc, comb, style.Background(shade(fade)))
		}
	}
}

// Line rasterises the segment with Bresenham over cells.
func (s *Surface) Line(l particles.Line) {
	x0, y0 := cell(l.X1, l.Y1)
	x1, y1 := cell(l.X2, l.Y2)
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	e := dx + dy
	for {
		if _, _, st, _ := s.screen.GetContent(x0, y0); !hasForeground(st) {
			s.set(x0, y0, '.', l.Color)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func (s *Surface) set(col, row int, r rune, c particles.RGBA) {
	_, _, style, _ := s.screen.GetContent(col, row)
	s.screen.SetContent(col, row, r, nil, style.Foreground(shade(c)).Bold(true))
}

// Preview runs a scene on the screen until ctx is done or the user quits
// with q or Esc. Mouse motion drives the scene's pointer; the pointer goes
// idle when the terminal loses focus.
func Preview(ctx context.Context, screen tcell.Screen, scene particles.Scene, fps int) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var tracker particles.Tracker
	screen.EnableMouse()
	screen.EnableFocus()
	scene.Resize(SurfaceSize(screen))

	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			if quit := handleEvent(screen, &tracker, ev); quit {
				cancel()
				return
			}
		}
	}()

	surface := New(screen)
	err := particles.Run(ctx, scene, &tracker, fps, func(f particles.Frame) error {
		if w, h := SurfaceSize(screen); w != f.Width || h != f.Height {
			scene.Resize(w, h)
			f = scene.Frame()
		}
		particles.Render(surface, f)
		screen.Show()
		return nil
	})
	if ctx.Err() != nil {
		return nil
	}
	return err
}

// handleEvent applies one terminal event and reports whether to quit.
func handleEvent(screen tcell.Screen, tracker *particles.Tracker, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q'
	case *tcell.EventMouse:
		col, row := ev.Position()
		tracker.Move(float64(col*pixelsPerCol+pixelsPerCol/2), float64(row*pixelsPerRow+pixelsPerRow/2))
	case *tcell.EventFocus:
		if !ev.Focused {
			tracker.Leave()
		}
	case *tcell.EventResize:
		screen.Sync()
	}
	return false
}

func cell(x, y float64) (int, int) {
	return int(math.Floor(x / pixelsPerCol)), int(math.Floor(y / pixelsPerRow))
}

// shade pre-multiplies the colour over the dark background.
func shade(c particles.RGBA) tcell.Color {
	mix := func(v uint8, bg int32) int32 {
		return bg + int32(math.Round(float64(int32(v)-bg)*c.A))
	}
	return tcell.NewRGBColor(mix(c.R, 5), mix(c.G, 5), mix(c.B, 5))
}

func hasForeground(st tcell.Style) bool {
	fg, _, _ := st.Decompose()
	return fg != tcell.ColorDefault && fg != tcell.ColorReset
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
