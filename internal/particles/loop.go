package particles

import (
	"context"
	"time"
)

// Run steps scene at fps until ctx is done, handing each frame to emit.
// It returns ctx.Err() on cancellation or the first emit error.
func Run(ctx context.Context, scene Scene, tracker *Tracker, fps int, emit func(Frame) error) error {
	if fps <= 0 {
		fps = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			scene.Step(tracker.Pointer())
			if err := emit(scene.Frame()); err != nil {
				return err
			}
		}
	}
}
