package render

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"os"
	"path/filepath"

	"github.com/icza/mjpeg"

	"snowflake/internal/sims/reiter"
)

// Recorder writes an MJPEG (AVI) video of a growing crystal, one frame every
// Every iterations. The layout is fixed when the recorder is created, which
// is safe because the grid never grows while it is simulated.
type Recorder struct {
	layout  Layout
	every   int
	quality int

	aw     mjpeg.AviWriter
	buf    bytes.Buffer
	frames int
}

// NewRecorder creates the video file at path.
func NewRecorder(path string, layout Layout, fps, every int) (*Recorder, error) {
	if fps <= 0 {
		fps = 25
	}
	if every <= 0 {
		every = 1
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}
	size := layout.Size()
	aw, err := mjpeg.New(path, int32(size.W), int32(size.H), int32(fps))
	if err != nil {
		return nil, fmt.Errorf("create video %s: %w", path, err)
	}
	return &Recorder{layout: layout, every: every, quality: 90, aw: aw}, nil
}

// Observe records a frame when the grid's iteration is a multiple of Every.
// Its signature matches the observer accepted by reiter.Grid.Run.
func (r *Recorder) Observe(g *reiter.Grid) error {
	if g.Iteration()%r.every != 0 {
		return nil
	}
	return r.AddFrame(g)
}

// AddFrame records the current state of g unconditionally.
func (r *Recorder) AddFrame(g *reiter.Grid) error {
	r.buf.Reset()
	if err := jpeg.Encode(&r.buf, Frame(g, r.layout), &jpeg.Options{Quality: r.quality}); err != nil {
		return fmt.Errorf("encode frame %d: %w", r.frames, err)
	}
	if err := r.aw.AddFrame(r.buf.Bytes()); err != nil {
		return fmt.Errorf("write frame %d: %w", r.frames, err)
	}
	r.frames++
	return nil
}

// Frames reports how many frames were written.
func (r *Recorder) Frames() int { return r.frames }

// Close finalizes the video file.
func (r *Recorder) Close() error {
	if err := r.aw.Close(); err != nil {
		return fmt.Errorf("close video: %w", err)
	}
	return nil
}
