package motion

import "github.com/go-gl/mathgl/mgl32"

// Input is the key-state collaborator. IsHeld reports level state,
// WasPressed is true for exactly one tick per physical press.
type Input interface {
	IsHeld(action Action) bool
	WasPressed(action Action) bool
}

// Prober casts a bounded ray and returns the nearest hit, if any.
type Prober interface {
	Cast(origin, direction mgl32.Vec3, maxDistance float32) (Hit, bool)
}

// Transform is the spatial state the controller reads and mutates.
type Transform interface {
	Position() mgl32.Vec3
	SetPosition(p mgl32.Vec3)
	Orientation() Euler
	SetOrientation(o Euler)
	Basis() Basis
}

// Logger receives phase transition traces. The host Logger satisfies it.
type Logger interface {
	Debugf(format string, args ...any)
}

// Env bundles the collaborators a Controller is bound to.
type Env struct {
	Input     Input
	Prober    Prober
	Transform Transform
	Logger    Logger
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}

// Pose is a plain-value Transform. Hosts that keep their transforms
// elsewhere load it before a tick and store it back afterwards.
type Pose struct {
	Translation mgl32.Vec3
	Angles      Euler
}

func (p *Pose) Position() mgl32.Vec3 { return p.Translation }
func (p *Pose) SetPosition(v mgl32.Vec3) { p.Translation = v }
func (p *Pose) Orientation() Euler { return p.Angles }
func (p *Pose) SetOrientation(o Euler) { p.Angles = o }
func (p *Pose) Basis() Basis { return p.Angles.Basis() }

// NoInput never reports any action.
type NoInput struct{}

func (NoInput) IsHeld(Action) bool { return false }
func (NoInput) WasPressed(Action) bool { return false }

// NoObstacles never reports a hit.
type NoObstacles struct{}

func (NoObstacles) Cast(mgl32.Vec3, mgl32.Vec3, float32) (Hit, bool) { return Hit{}, false }
