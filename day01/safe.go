// Package day01 cracks the safe dial: rotations drive a 0..99 dial and the
// safe counts rotations ending on zero and times the dial passes zero.
package day01

import (
	"errors"
	"fmt"
	"io"
	"strconv"
)

// maxPosition is the dial modulus; positions live in [0, maxPosition).
const maxPosition = 100

// ErrBadRotation indicates an instruction that is not L<steps> or R<steps>.
var ErrBadRotation = errors.New("day01: bad rotation")

// Direction is the turn direction of a rotation.
type Direction int

const (
	// Left turns toward lower positions.
	Left Direction = iota
	// Right turns toward higher positions.
	Right
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	if d == Left {
		return "Left"
	}

	return "Right"
}

// sign returns the per-step displacement.
func (d Direction) sign() int {
	if d == Left {
		return -1
	}

	return 1
}

// Rotation is one parsed dial instruction.
type Rotation struct {
	Direction Direction
	Steps     int
}

// offset returns the signed dial displacement.
func (r Rotation) offset() int { return r.Direction.sign() * r.Steps }

// ParseRotations parses instruction lines of the form L<steps> or R<steps>.
// The whole batch is parsed before anything is applied, so a malformed line
// never leaves a Safe half-rotated.
func ParseRotations(lines []string) ([]Rotation, error) {
	rotations := make([]Rotation, 0, len(lines))
	for _, line := range lines {
		r, err := parseRotation(line)
		if err != nil {
			return nil, err
		}
		rotations = append(rotations, r)
	}

	return rotations, nil
}

func parseRotation(line string) (Rotation, error) {
	if line == "" {
		return Rotation{}, fmt.Errorf("%w: empty instruction", ErrBadRotation)
	}

	var dir Direction
	switch line[0] {
	case 'L':
		dir = Left
	case 'R':
		dir = Right
	default:
		return Rotation{}, fmt.Errorf("%w: invalid direction in %q", ErrBadRotation, line)
	}

	steps, err := strconv.Atoi(line[1:])
	if err != nil || steps < 0 {
		return Rotation{}, fmt.Errorf("%w: invalid step count in %q", ErrBadRotation, line)
	}

	return Rotation{Direction: dir, Steps: steps}, nil
}

// Safe models the dial and its two counters. Use NewSafe; the zero value
// starts the dial at 0 rather than the real starting position.
type Safe struct {
	position          int
	zeroPositionCount int
	zeroPassCount     int
}

// NewSafe returns a Safe with the dial at its starting position, 50.
func NewSafe() *Safe {
	return &Safe{position: 50}
}

// Position reports the current dial position in [0, 100).
func (s *Safe) Position() int { return s.position }

// ZeroPositionCount reports rotations that ended exactly on zero.
func (s *Safe) ZeroPositionCount() int { return s.zeroPositionCount }

// ZeroPassCount reports how often the dial passed or landed on zero while
// rotating, counting each complete revolution.
func (s *Safe) ZeroPassCount() int { return s.zeroPassCount }

// Apply runs the rotations in order.
func (s *Safe) Apply(rotations ...Rotation) {
	for _, r := range rotations {
		s.offsetDial(r.offset())
	}
}

// offsetDial advances the dial by a signed offset and updates both
// counters. Complete revolutions each pass zero once; the leftover swing
// passes zero when it leaves (0, maxPosition) from a nonzero start.
func (s *Safe) offsetDial(offset int) {
	old := s.position
	complete := offset / maxPosition
	remaining := offset % maxPosition
	next := s.position + remaining
	wrapped := ((next % maxPosition) + maxPosition) % maxPosition

	if complete < 0 {
		complete = -complete
	}
	s.zeroPassCount += complete

	if (old != 0 && next <= 0) || next >= maxPosition {
		s.zeroPassCount++
	}
	if wrapped == 0 {
		s.zeroPositionCount++
	}

	s.position = wrapped
}

// Run solves the puzzle over raw input lines and writes the two counter
// lines to w.
func Run(lines []string, w io.Writer) error {
	rotations, err := ParseRotations(lines)
	if err != nil {
		return err
	}

	safe := NewSafe()
	safe.Apply(rotations...)

	fmt.Fprintf(w, "Zero Position Count: %d\n", safe.ZeroPositionCount())
	fmt.Fprintf(w, "Zero Pass Count: %d\n", safe.ZeroPassCount())

	return nil
}
