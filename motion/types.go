package motion

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// Phase is the vertical-motion state of a character. Exactly one phase
// holds at any time.
type Phase int

const (
	Grounded Phase = iota
	Ascending
	Descending
)

func (p Phase) String() string {
	switch p {
	case Grounded:
		return "grounded"
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	}
	return "unknown"
}

// Direction identifies one of the six probe directions. The four
// horizontal directions come first so they double as Permissions indices.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
	Up
	Down

	DirectionCount = 6
)

var directionNames = [DirectionCount]string{"forward", "backward", "left", "right", "up", "down"}

func (d Direction) String() string {
	if d < 0 || int(d) >= DirectionCount {
		return "unknown"
	}
	return directionNames[d]
}

// Horizontal reports whether the direction gates horizontal movement.
func (d Direction) Horizontal() bool {
	return d >= Forward && d <= Right
}

// ParseDirection maps a lower-case direction name back to its Direction.
func ParseDirection(name string) (Direction, bool) {
	for i, n := range directionNames {
		if n == name {
			return Direction(i), true
		}
	}
	return 0, false
}

// WorldUp is the axis vertical velocity acts along, whatever the entity's
// pitch and roll.
var WorldUp = mgl32.Vec3{0, 1, 0}

// Vector returns the direction expressed in the given basis.
func (d Direction) Vector(b Basis) mgl32.Vec3 {
	switch d {
	case Forward:
		return b.Forward
	case Backward:
		return b.Forward.Mul(-1)
	case Left:
		return b.Right.Mul(-1)
	case Right:
		return b.Right
	case Up:
		return b.Up
	case Down:
		return b.Up.Mul(-1)
	}
	return mgl32.Vec3{}
}

// Permissions holds the per-tick movement permission of each horizontal
// direction, indexed by Direction.
type Permissions [4]bool

func (p Permissions) Allowed(d Direction) bool {
	if !d.Horizontal() {
		return false
	}
	return p[d]
}

// Action is a logical input the controller reacts to.
type Action int

const (
	MoveForward Action = iota
	MoveBackward
	MoveLeft
	MoveRight
	TurnLeft
	TurnRight
	Jump

	ActionCount = 7
)

var actionNames = [ActionCount]string{
	"move_forward", "move_backward", "move_left", "move_right", "turn_left", "turn_right", "jump",
}

func (a Action) String() string {
	if a < 0 || int(a) >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// ParseAction maps an action name such as "move_forward" to its Action.
func ParseAction(name string) (Action, bool) {
	for i, n := range actionNames {
		if n == name {
			return Action(i), true
		}
	}
	return 0, false
}

// Category is a collision-category identifier. It is resolved once when the
// configuration is built and compared by value on every probe.
type Category uint32

// NoCategory never matches a registered category.
const NoCategory Category = 0

// Hit describes the nearest collider a probe struck.
type Hit struct {
	Collider uuid.UUID
	Category Category
	Distance float32
	Point    mgl32.Vec3
	Normal   mgl32.Vec3
}

// Euler is an orientation in degrees, applied yaw (Y) then pitch (X) then
// roll (Z). The controller only ever writes Yaw.
type Euler struct {
	Pitch float32
	Yaw   float32
	Roll  float32
}

func (e Euler) Quat() mgl32.Quat {
	return mgl32.AnglesToQuat(
		mgl32.DegToRad(e.Yaw),
		mgl32.DegToRad(e.Pitch),
		mgl32.DegToRad(e.Roll),
		mgl32.YXZ,
	)
}

// Basis returns the forward/right/up axes for this orientation. Forward is
// -Z and right is +X at zero rotation.
func (e Euler) Basis() Basis {
	q := e.Quat()
	return Basis{
		Forward: q.Rotate(mgl32.Vec3{0, 0, -1}),
		Right:   q.Rotate(mgl32.Vec3{1, 0, 0}),
		Up:      q.Rotate(mgl32.Vec3{0, 1, 0}),
	}
}

// Basis is the set of world-space axes derived from an orientation.
type Basis struct {
	Forward mgl32.Vec3
	Right   mgl32.Vec3
	Up      mgl32.Vec3
}

// NormalizeDegrees wraps an angle into [0, 360).
func NormalizeDegrees(deg float32) float32 {
	d := float32(math.Mod(float64(deg), 360))
	if d < 0 {
		d += 360
	}
	if d >= 360 {
		d -= 360
	}
	return d
}
