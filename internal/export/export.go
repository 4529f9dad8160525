// Package export writes the frame currently held by a renderer to image and
// document files.
package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"VectorDisplay/internal/log"
	"VectorDisplay/internal/raster"
	"VectorDisplay/internal/render"
)

var logger = log.New("export")

var ErrUnknownFormat = errors.New("unknown export format")

type Format int

const (
	PNG Format = iota
	PDF
)

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PNG, nil
	case ".pdf":
		return PDF, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
}

// WritePNG replays the current frame onto an image of the given size.
func WritePNG(w io.Writer, r *render.FrameRenderer, size render.Size) error {
	s := raster.New(int(size.W), int(size.H))
	r.ReplayOnto(s)
	logger.Infof("exporting %d commands to png at %.0fx%.0f", len(r.Frame()), size.W, size.H)
	return s.WritePNG(w)
}

// Write dispatches on format.
func Write(w io.Writer, format Format, r *render.FrameRenderer, size render.Size) error {
	switch format {
	case PNG:
		return WritePNG(w, r, size)
	case PDF:
		return WritePDF(w, r, size)
	}
	return ErrUnknownFormat
}

// WriteFile exports to path, choosing the format from its extension.
func WriteFile(path string, r *render.FrameRenderer, size render.Size) (err error) {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return Write(f, format, r, size)
}
