package kinetic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/kinetic/motion"
)

func TestInput_SetKeyEdges(t *testing.T) {
	var in Input

	in.SetKey(KeyW, true)
	assert.True(t, in.Pressed[KeyW])
	assert.True(t, in.JustPressed[KeyW])

	in.SetKey(KeyW, true)
	assert.True(t, in.Pressed[KeyW])
	assert.False(t, in.JustPressed[KeyW], "held keys have no edge")

	in.SetKey(KeyW, false)
	assert.False(t, in.Pressed[KeyW])
	assert.True(t, in.JustReleased[KeyW])

	in.SetKey(KeyW, false)
	assert.False(t, in.JustReleased[KeyW])

	assert.NotPanics(t, func() {
		in.SetKey(-1, true)
		in.SetKey(KeyCount, true)
	})
}

func TestInput_Apply(t *testing.T) {
	var in Input
	var down [KeyCount]bool
	down[KeySpace] = true
	in.Apply(down)
	assert.True(t, in.JustPressed[KeySpace])

	in.Apply([KeyCount]bool{})
	assert.True(t, in.JustReleased[KeySpace])
	assert.False(t, in.Pressed[KeySpace])
}

func TestKeyByName(t *testing.T) {
	key, ok := KeyByName("space")
	require.True(t, ok)
	assert.Equal(t, KeySpace, key)

	_, ok = KeyByName("F13")
	assert.False(t, ok)
}

func TestActionInput(t *testing.T) {
	in := &Input{}
	ai := NewActionInput(in, nil)

	in.SetKey(KeyW, true)
	in.SetKey(KeySpace, true)
	assert.True(t, ai.IsHeld(motion.MoveForward))
	assert.False(t, ai.IsHeld(motion.MoveBackward))
	assert.True(t, ai.WasPressed(motion.Jump))

	in.SetKey(KeySpace, true)
	assert.True(t, ai.IsHeld(motion.Jump))
	assert.False(t, ai.WasPressed(motion.Jump))
}

func TestActionMap_Bind(t *testing.T) {
	m := DefaultActionMap()
	require.NoError(t, m.Bind(motion.Jump, "j"))
	assert.Equal(t, KeyJ, m.Keys[motion.Jump])

	err := m.Bind(motion.Jump, "nope")
	assert.ErrorContains(t, err, "unknown key")
	assert.Equal(t, KeyJ, m.Keys[motion.Jump])
}

func TestInputModule_Headless(t *testing.T) {
	app := NewAppBuilder().UseModule(InputModule{Bindings: map[string]string{"turn_left": "left"}}).Build()

	_, ok := Resource[Input](app)
	assert.True(t, ok)
	keys, ok := Resource[ActionMap](app)
	require.True(t, ok)
	assert.Equal(t, KeyLeft, keys.Keys[motion.TurnLeft])
	assert.Equal(t, KeyW, keys.Keys[motion.MoveForward])

	assert.Empty(t, app.systems[PreUpdate.Name], "no polling without a window")
}

func TestInputModule_BadBindingPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewAppBuilder().UseModule(InputModule{Bindings: map[string]string{"fly": "f"}}).Build()
	})
	assert.Panics(t, func() {
		NewAppBuilder().UseModule(InputModule{Bindings: map[string]string{"jump": "f13"}}).Build()
	})
}
