package grid

import (
	"fmt"
	"strings"
)

// Size is the number of pieces in a 3×3×3 grid.
const Size = 27

// Coord is a lattice cell; each component is -1, 0 or 1.
type Coord struct {
	X, Y, Z int
}

// Name is the stable identity of the cell: "cube" followed by the three signed digits,
// e.g. "cube1-10" for (1,-1,0).
func (c Coord) Name() string {
	return fmt.Sprintf("cube%d%d%d", c.X, c.Y, c.Z)
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// Valid reports whether every component lies in {-1,0,1}.
func (c Coord) Valid() bool {
	in := func(v int) bool { return v >= -1 && v <= 1 }
	return in(c.X) && in(c.Y) && in(c.Z)
}

// Index is the construction-order position of c: x outermost, z innermost.
func (c Coord) Index() int {
	return (c.X+1)*9 + (c.Y+1)*3 + (c.Z + 1)
}

// CoordAt is the inverse of Index. Panics outside [0, Size).
func CoordAt(i int) Coord {
	if i < 0 || i >= Size {
		panic(fmt.Sprintf("grid: index %d out of range", i))
	}
	return Coord{X: i/9 - 1, Y: (i/3)%3 - 1, Z: i%3 - 1}
}

// Lattice returns all 27 coordinates in construction order.
func Lattice() []Coord {
	out := make([]Coord, 0, Size)
	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			for z := -1; z <= 1; z++ {
				out = append(out, Coord{X: x, Y: y, Z: z})
			}
		}
	}
	return out
}

// ParseName turns "cube-101" back into (-1,0,1).
func ParseName(name string) (Coord, bool) {
	rest, ok := strings.CutPrefix(name, "cube")
	if !ok {
		return Coord{}, false
	}
	var v [3]int
	for i := range v {
		switch {
		case strings.HasPrefix(rest, "-1"):
			v[i], rest = -1, rest[2:]
		case strings.HasPrefix(rest, "0"):
			v[i], rest = 0, rest[1:]
		case strings.HasPrefix(rest, "1"):
			v[i], rest = 1, rest[1:]
		default:
			return Coord{}, false
		}
	}
	if rest != "" {
		return Coord{}, false
	}
	return Coord{X: v[0], Y: v[1], Z: v[2]}, true
}

// Axis selects one component of a position.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// ParseAxis accepts "x", "y" or "z" (any case).
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(s) {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "z":
		return AxisZ, nil
	}
	return 0, fmt.Errorf("unknown axis %q", s)
}

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}
