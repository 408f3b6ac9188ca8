package fs

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
)

// Spool writes images as PNG files into a private temp directory.
type Spool struct {
	base string
	dir  string
}

// NewSpool returns a spool under base (os.TempDir() when empty).
// The directory is created on first write.
func NewSpool(base string) *Spool {
	return &Spool{base: base}
}

// Dir is the spool directory, empty until the first WritePNG.
func (s *Spool) Dir() string {
	return s.dir
}

// WritePNG encodes img into a new file named after name and returns its path.
func (s *Spool) WritePNG(name string, img image.Image) (string, error) {
	if s.dir == "" {
		dir, err := os.MkdirTemp(s.base, "chart-demo-")
		if err != nil {
			return "", fmt.Errorf("failed to create spool directory: %w", err)
		}
		s.dir = dir
	}

	f, err := os.CreateTemp(s.dir, sanitize(name)+"-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to encode png: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to close image file: %w", err)
	}

	return f.Name(), nil
}

// Remove deletes the spool directory and everything in it.
func (s *Spool) Remove() error {
	if s.dir == "" {
		return nil
	}
	dir := s.dir
	s.dir = ""
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to remove spool directory: %w", err)
	}
	return nil
}

func sanitize(name string) string {
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, name)
	if name == "" {
		return "chart"
	}
	return filepath.Base(name)
}
