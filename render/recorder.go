package render

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/katalvlaran/cavern/floor"
)

var _ floor.FrameSink = (*Recorder)(nil)

// Recorder collects generation frames per floor. It is safe for concurrent
// use, so one Recorder can serve every worker of a dungeon build.
type Recorder struct {
	mu     sync.Mutex
	frames map[int][]Frame
	log    *slog.Logger
}

// NewRecorder returns an empty Recorder. log reports dropped frames; nil
// discards them silently.
func NewRecorder(log *slog.Logger) *Recorder {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Recorder{frames: make(map[int][]Frame), log: log}
}

// Frame implements floor.FrameSink. Malformed frames are logged at debug
// level and dropped.
func (r *Recorder) Frame(id, width, height int, pix []uint8, delay int) {
	img, err := Paletted(width, height, pix)
	if err != nil {
		r.log.Debug("frame dropped", "floor", id, "width", width, "height", height, "pixels", len(pix), "error", err)
		return
	}
	r.mu.Lock()
	r.frames[id] = append(r.frames[id], Frame{Image: img, Delay: delay})
	r.mu.Unlock()
}

// IDs returns the floors that have frames, ascending.
func (r *Recorder) IDs() []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]int, 0, len(r.frames))
	for id := range r.frames {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}

// Frames returns the frames captured for floor id.
func (r *Recorder) Frames(id int) []Frame {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.frames[id])
}

// WriteDir writes every floor's animation to dir/floor_{id}.gif, creating
// dir if needed. It stops at the first error.
func (r *Recorder) WriteDir(dir string, log *slog.Logger) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	for _, id := range r.IDs() {
		path := filepath.Join(dir, fmt.Sprintf("floor_%d.gif", id))
		if err := r.writeFile(path, id); err != nil {
			return err
		}
		if log != nil {
			log.Debug("wrote floor animation", "path", path, "frames", len(r.Frames(id)))
		}
	}

	return nil
}

func (r *Recorder) writeFile(path string, id int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("render: %w", cerr)
		}
	}()

	return EncodeGIF(f, r.Frames(id))
}
