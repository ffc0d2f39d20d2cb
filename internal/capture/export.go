package capture

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// Exporter writes rendered cards to a directory.
type Exporter struct {
	dir string
	now func() time.Time
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithClock overrides the clock used for file names.
func WithClock(now func() time.Time) Option {
	return func(e *Exporter) {
		e.now = now
	}
}

// NewExporter creates an Exporter writing into dir.
func NewExporter(dir string, opts ...Option) *Exporter {
	e := &Exporter{dir: dir, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// FileName returns the export file name for t.
func FileName(t time.Time) string {
	return fmt.Sprintf("quiz-results-%d.png", t.UnixMilli())
}

// Export renders card and writes it as PNG, returning the file path.
func (e *Exporter) Export(ctx context.Context, card Card) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	img, err := Render(card)
	if err != nil {
		return "", fmt.Errorf("render card: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(e.dir, FileName(e.now()))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("encode png: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}
