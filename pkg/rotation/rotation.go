// Package rotation defines the four display rotations a PiTFT can be
// configured with.
//
// Rotations arrive as free-form text (the --rotation flag, the rotate= option
// of the fbtft driver) and must pass through Parse before they can be used as
// a Rotation.
package rotation

import (
	"errors"
	"fmt"
)

// ErrUnsupported is returned by Parse for anything other than 0, 90, 180 or 270.
var ErrUnsupported = errors.New("unsupported rotation")

// Rotation is a display rotation in degrees, relative to the default mounting.
type Rotation int

const (
	Rotate0 Rotation = iota
	Rotate90
	Rotate180
	Rotate270

	count
)

var names = [count]string{
	Rotate0:   "0",
	Rotate90:  "90",
	Rotate180: "180",
	Rotate270: "270",
}

func (r Rotation) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Rotation(%d)", int(r))
	}
	return names[r]
}

// Valid reports whether r is one of the four declared rotations.
func (r Rotation) Valid() bool {
	return r >= Rotate0 && r < count
}

// Parse converts s to a Rotation. Only the exact strings "0", "90", "180" and
// "270" are accepted.
func Parse(s string) (Rotation, error) {
	for i, name := range names {
		if s == name {
			return Rotation(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupported, s)
}

// All returns every rotation in ascending order.
func All() []Rotation {
	return []Rotation{Rotate0, Rotate90, Rotate180, Rotate270}
}

// Names returns the textual form of every rotation, in the order of All.
func Names() []string {
	out := make([]string, 0, count)
	for _, r := range All() {
		out = append(out, r.String())
	}
	return out
}
