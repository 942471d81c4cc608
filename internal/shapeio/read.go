package shapeio

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Format of a scene input
type Format int

const (
	Text Format = iota
	SVG
	TOML
)

func (f Format) String() string {
	switch f {
	case SVG:
		return "svg"
	case TOML:
		return "toml"
	default:
		return "text"
	}
}

// FormatForPath guesses the format from the file extension. Anything that isn't
// .svg or .toml is treated as text.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		return SVG
	case ".toml":
		return TOML
	default:
		return Text
	}
}

// Read reads a scene in the given format.
func Read(r io.Reader, format Format) (*Scene, error) {
	switch format {
	case SVG:
		return ReadSVG(r)
	case TOML:
		return ReadTOML(r)
	default:
		return ReadText(r)
	}
}

// ReadFile reads the scene at path, picking the format from its extension. An
// empty path or "-" reads text from stdin.
func ReadFile(path string) (*Scene, error) {
	if path == "" || path == "-" {
		return ReadText(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not open scene")
	}
	defer f.Close()
	scene, err := Read(f, FormatForPath(path))
	if err != nil {
		return nil, errors.Wrapf(err, "could not read %s", path)
	}
	return scene, nil
}
