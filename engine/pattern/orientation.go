package pattern

import (
	"github.com/npillmayer/glyphart/core"
)

// Orientation is the logical reading orientation used during composition,
// independent of the fixed landscape storage orientation.
type Orientation int

const (
	Portrait Orientation = iota
	Landscape
)

func (o Orientation) String() string {
	if o == Landscape {
		return "landscape"
	}
	return "portrait"
}

// CanvasSize returns the canvas dimensions of the logical orientation.
func (o Orientation) CanvasSize() (w int, h int) {
	if o == Landscape {
		return LandscapeWidth, LandscapeHeight
	}
	return PortraitWidth, PortraitHeight
}

// ParseOrientation interprets an orientation argument.
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "portrait":
		return Portrait, nil
	case "landscape":
		return Landscape, nil
	}
	return Portrait, core.Error(core.EINVALID, "orientation must be portrait or landscape, is '%s'", s)
}
