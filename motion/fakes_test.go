package motion

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const (
	testGround   Category = 1
	testObstacle Category = 2
)

type fakeInput struct {
	held    map[Action]bool
	pressed map[Action]bool
}

func newFakeInput() *fakeInput {
	return &fakeInput{held: map[Action]bool{}, pressed: map[Action]bool{}}
}

func (f *fakeInput) IsHeld(a Action) bool     { return f.held[a] }
func (f *fakeInput) WasPressed(a Action) bool { return f.pressed[a] }

// endTick clears edge state the way a real input source does between frames.
func (f *fakeInput) endTick() {
	clear(f.pressed)
}

type castCall struct {
	origin    mgl32.Vec3
	direction mgl32.Vec3
	distance  float32
}

// fakeProber answers casts per direction, classified against the zero-yaw basis.
type fakeProber struct {
	hits  map[Direction]Hit
	calls []castCall
}

func newFakeProber() *fakeProber {
	return &fakeProber{hits: map[Direction]Hit{}}
}

func (f *fakeProber) Cast(origin, direction mgl32.Vec3, maxDistance float32) (Hit, bool) {
	f.calls = append(f.calls, castCall{origin, direction, maxDistance})
	hit, ok := f.hits[classify(direction)]
	return hit, ok
}

func (f *fakeProber) block(d Direction, category Category) {
	f.hits[d] = Hit{Category: category, Distance: 0.05}
}

func (f *fakeProber) clearHit(d Direction) {
	delete(f.hits, d)
}

func classify(dir mgl32.Vec3) Direction {
	basis := Euler{}.Basis()
	best, bestDot := Forward, float32(-2)
	for d := Direction(0); d < DirectionCount; d++ {
		if dot := d.Vector(basis).Dot(dir); dot > bestDot {
			best, bestDot = d, dot
		}
	}
	return best
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.MovementSpeed = 2
	cfg.RotationSpeed = 135
	cfg.InitialJumpVelocity = 10
	cfg.TerminalFallVelocity = -3
	cfg.Gravity = -10
	cfg.MaxJumps = 2
	cfg.ProbeDistance = 0.15
	cfg.GroundCategory = testGround
	for d := Direction(0); d < DirectionCount; d++ {
		cfg.Probes[d] = []mgl32.Vec3{{0, 0, 0}}
	}
	return cfg
}

type rig struct {
	ctrl   *Controller
	input  *fakeInput
	prober *fakeProber
	pose   *Pose
}

func newRig(cfg Config) *rig {
	r := &rig{input: newFakeInput(), prober: newFakeProber(), pose: &Pose{}}
	ctrl, err := NewController(cfg, Env{Input: r.input, Prober: r.prober, Transform: r.pose})
	if err != nil {
		panic(err)
	}
	r.ctrl = ctrl
	return r
}

func (r *rig) tick(dt float32) {
	r.ctrl.Tick(dt)
	r.input.endTick()
}

// assertVec3 compares component-wise with an absolute tolerance.
func assertVec3(t *testing.T, want, got mgl32.Vec3, delta float64, msgAndArgs ...any) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], delta, msgAndArgs...)
	}
}
