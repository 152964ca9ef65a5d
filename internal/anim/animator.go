package anim

import (
	"fmt"
	"math"
	"time"

	"rubik-sketch/internal/grid"

	"github.com/go-gl/mathgl/mgl32"
)

// Oscillate maps t onto a sine wave that swings between min and max. The bounds may be
// given in either order. The phase is computed in float64 so that large t still resolves
// a single logical step.
func Oscillate(t, freq float64, min, max float32) float32 {
	amplitude := (float64(max) - float64(min)) / 2
	offset := float64(min) + amplitude
	return float32(math.Sin(t*freq)*amplitude + offset)
}

// Drive makes one axis of one piece breathe between Min and Max.
type Drive struct {
	Piece string
	Axis  grid.Axis
	Min   float32
	Max   float32
}

// AxisValue is one resolved drive for a given time.
type AxisValue struct {
	Piece string
	Axis  grid.Axis
	Value float32
}

// Pose is everything the animator decides for one frame.
type Pose struct {
	GroupRotation float32
	Pieces        []AxisValue
}

// Animator computes bounded periodic motion from logical time: a yaw swing for the whole
// grid and independent oscillations for a few designated pieces.
type Animator struct {
	GroupFrequency float64
	PieceFrequency float64

	drives []Drive
}

// NewAnimator validates that every drive names a lattice piece.
func NewAnimator(groupFreq, pieceFreq float64, drives []Drive) (*Animator, error) {
	for i, d := range drives {
		if _, ok := grid.ParseName(d.Piece); !ok {
			return nil, fmt.Errorf("anim: drive %d: no piece named %q", i, d.Piece)
		}
		if d.Axis < grid.AxisX || d.Axis > grid.AxisZ {
			return nil, fmt.Errorf("anim: drive %d: bad axis %v", i, d.Axis)
		}
	}
	return &Animator{
		GroupFrequency: groupFreq,
		PieceFrequency: pieceFreq,
		drives:         append([]Drive(nil), drives...),
	}, nil
}

// Drives returns the configured drives.
func (a *Animator) Drives() []Drive {
	return a.drives
}

// Tick evaluates the pose at logical time t. It depends on t alone.
func (a *Animator) Tick(t float64) Pose {
	pose := Pose{
		GroupRotation: float32(math.Sin(t * a.GroupFrequency)),
		Pieces:        make([]AxisValue, 0, len(a.drives)),
	}
	for _, d := range a.drives {
		pose.Pieces = append(pose.Pieces, AxisValue{
			Piece: d.Piece,
			Axis:  d.Axis,
			Value: Oscillate(t, a.PieceFrequency, d.Min, d.Max),
		})
	}
	return pose
}

// Apply writes the pose into g.
func (p Pose) Apply(g *grid.Group) {
	g.Rotation = p.GroupRotation
	for _, v := range p.Pieces {
		if piece, ok := g.Piece(v.Piece); ok {
			piece.SetAxis(v.Axis, v.Value)
		}
	}
}

// Spin is continuous rotation locked to wall-clock time. Rotation is recomputed from the
// total elapsed duration, which is an exact integer count of nanoseconds, and wrapped to
// one turn.
type Spin struct {
	// Rate is radians per second about each axis.
	Rate     mgl32.Vec3
	Rotation mgl32.Vec3

	elapsed time.Duration
}

// Advance adds dt to the spin.
func (s *Spin) Advance(dt time.Duration) {
	if dt <= 0 {
		return
	}
	s.elapsed += dt
	secs := s.elapsed.Seconds()
	for i := range s.Rotation {
		s.Rotation[i] = float32(math.Mod(float64(s.Rate[i])*secs, 2*math.Pi))
	}
}

// Elapsed is the total wall-clock time the spin has run.
func (s *Spin) Elapsed() time.Duration {
	return s.elapsed
}

// Orientation combines the per-axis angles in X, Y, Z order.
func (s *Spin) Orientation() mgl32.Quat {
	return mgl32.AnglesToQuat(s.Rotation.X(), s.Rotation.Y(), s.Rotation.Z(), mgl32.XYZ)
}
