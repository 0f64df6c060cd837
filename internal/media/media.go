// Package media reads metadata of the site's audio assets.
package media

import (
	"os"
	"time"

	"github.com/gopxl/beep/mp3"

	"github.com/MaroIng01/portfolio/internal/apperr"
)

// Track describes the background music file.
type Track struct {
	Path       string        `json:"path"`
	SampleRate int           `json:"sample_rate"`
	Channels   int           `json:"channels"`
	Duration   time.Duration `json:"duration_ns"`
}

// Probe decodes the mp3 header and frame index of path.
func Probe(path string) (Track, error) {
	const op = "media.probe"

	f, err := os.Open(path)
	if err != nil {
		return Track{}, &apperr.OpError{Op: op, Kind: apperr.KindNotFound, Path: path, Err: err}
	}

	streamer, format, err := mp3.Decode(f)
	if err != nil {
		_ = f.Close()
		return Track{}, &apperr.OpError{Op: op, Kind: apperr.KindInvalidInput, Path: path, Err: err}
	}
	defer streamer.Close()

	return Track{
		Path:       path,
		SampleRate: int(format.SampleRate),
		Channels:   format.NumChannels,
		Duration:   format.SampleRate.D(streamer.Len()),
	}, nil
}
