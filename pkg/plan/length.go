package plan

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/philipparndt/gowall/pkg/geometry"
)

// LengthEpsilon is the smallest direction component an axis-locked length
// edit can divide by
const LengthEpsilon = 1e-6

var (
	// ErrInvalidLength is returned for non-numeric or negative lengths
	ErrInvalidLength = errors.New("length must be a non-negative number")
	// ErrAxisDegenerate is returned when the wall has no extent along the locked axis
	ErrAxisDegenerate = errors.New("wall has no extent along the locked axis")
	// ErrDegenerateWall is returned for walls whose end points coincide
	ErrDegenerateWall = errors.New("wall is too short")
	// ErrNonFinite is returned for records holding NaN or infinite values
	ErrNonFinite = errors.New("value is not a finite number")
)

// SolveLength computes the end point that gives a wall starting at start and
// running along direction the target length, measured along axis.
func SolveLength(start, direction geometry.Vector3, axis LockedAxis, target float64) (geometry.Vector3, error) {
	if math.IsNaN(target) || math.IsInf(target, 0) || target < 0 {
		return geometry.Vector3{}, ErrInvalidLength
	}

	actual := target
	switch axis {
	case AxisX:
		perUnit := math.Abs(direction.X)
		if perUnit < LengthEpsilon {
			return geometry.Vector3{}, ErrAxisDegenerate
		}
		actual = target / perUnit
	case AxisY:
		perUnit := math.Abs(direction.Y)
		if perUnit < LengthEpsilon {
			return geometry.Vector3{}, ErrAxisDegenerate
		}
		actual = target / perUnit
	}

	return start.Add(direction.Mul(actual)).Flat(), nil
}

// SolveWallLength is SolveLength for w's start point and direction
func SolveWallLength(w *Wall, axis LockedAxis, target float64) (geometry.Vector3, error) {
	direction := w.Direction()
	if direction == (geometry.Vector3{}) {
		return geometry.Vector3{}, ErrDegenerateWall
	}
	return SolveLength(w.StartPoint(), direction, axis, target)
}

// ApplyLength moves the wall's end point so its length along axis equals
// target. On error the wall is left untouched.
func ApplyLength(w *Wall, axis LockedAxis, target float64) error {
	end, err := SolveWallLength(w, axis, target)
	if err != nil {
		return err
	}
	w.SetEndPoint(end)
	return nil
}

// ParseLength parses a length typed by the user
func ParseLength(input string) (float64, error) {
	target, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLength, input)
	}
	return target, nil
}

// ApplyLengthInput parses user input and applies it with ApplyLength
func ApplyLengthInput(w *Wall, axis LockedAxis, input string) error {
	target, err := ParseLength(input)
	if err != nil {
		return err
	}
	return ApplyLength(w, axis, target)
}

// EditableLength is the current length of the wall as measured along axis
func EditableLength(w *Wall, axis LockedAxis) float64 {
	start, end := w.StartPoint(), w.EndPoint()
	switch axis {
	case AxisX:
		return math.Abs(end.X - start.X)
	case AxisY:
		return math.Abs(end.Y - start.Y)
	default:
		return w.Length()
	}
}
