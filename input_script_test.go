package kinetic

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/kinetic/motion"
)

const walkAndJumpScript = `
steps:
  - frames: 3
    hold: [move_forward]
  - frames: 2
    hold: [move_forward]
    press: [jump]
  - press: [jump]
`

func TestParseScript(t *testing.T) {
	script, err := ParseScript([]byte(walkAndJumpScript))
	require.NoError(t, err)

	require.Len(t, script.Steps, 3)
	assert.Equal(t, 1, script.Steps[2].Frames, "missing frames default to one")
	assert.Equal(t, 6, script.TotalFrames())
	assert.Equal(t, []motion.Action{motion.MoveForward}, script.Steps[0].hold)
	assert.Equal(t, []motion.Action{motion.Jump}, script.Steps[1].press)
}

func TestParseScript_Errors(t *testing.T) {
	_, err := ParseScript([]byte("steps:\n  - hold: [fly]\n"))
	assert.ErrorContains(t, err, `step 0: unknown action "fly"`)

	_, err = ParseScript([]byte("steps: {"))
	assert.ErrorContains(t, err, "unmarshal")
}

func TestLoadScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walk.yaml")
	require.NoError(t, os.WriteFile(path, []byte(walkAndJumpScript), 0o644))

	script, err := LoadScript(path)
	require.NoError(t, err)
	assert.Len(t, script.Steps, 3)

	_, err = LoadScript(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "script: load")
}

func TestScriptedInput_Next(t *testing.T) {
	script, err := ParseScript([]byte(walkAndJumpScript))
	require.NoError(t, err)

	in := &Input{}
	keys := DefaultActionMap()
	si, err := NewScriptedInput(script)
	require.NoError(t, err)
	ai := NewActionInput(in, keys)

	type frame struct{ forward, jumpHeld, jumpPressed bool }
	var got []frame
	for si.Next(in, keys) {
		got = append(got, frame{
			forward:     ai.IsHeld(motion.MoveForward),
			jumpHeld:    ai.IsHeld(motion.Jump),
			jumpPressed: ai.WasPressed(motion.Jump),
		})
	}

	assert.Equal(t, []frame{
		{forward: true},
		{forward: true},
		{forward: true},
		{forward: true, jumpHeld: true, jumpPressed: true},
		{forward: true},
		{jumpHeld: true, jumpPressed: true},
	}, got)
	assert.True(t, si.Done())
	assert.False(t, in.Pressed[KeySpace], "keys are released when the script ends")
}

func TestScriptedInput_BackToBackPressesEachEdge(t *testing.T) {
	script, err := ParseScript([]byte("steps:\n  - press: [jump]\n  - press: [jump]\n"))
	require.NoError(t, err)

	in := &Input{}
	keys := DefaultActionMap()
	si, err := NewScriptedInput(script)
	require.NoError(t, err)

	require.True(t, si.Next(in, keys))
	assert.True(t, in.JustPressed[KeySpace])
	require.True(t, si.Next(in, keys))
	assert.True(t, in.JustPressed[KeySpace])
	assert.False(t, si.Next(in, keys))
}

func TestScriptedInput_BuiltInCode(t *testing.T) {
	script := &Script{Steps: []ScriptStep{
		{Frames: 2, Hold: []string{"move_left"}},
		{Press: []string{"jump"}},
	}}

	in := &Input{}
	keys := DefaultActionMap()
	si, err := NewScriptedInput(script)
	require.NoError(t, err)
	assert.Equal(t, 3, script.TotalFrames())

	require.True(t, si.Next(in, keys))
	assert.True(t, in.Pressed[keys.Keys[motion.MoveLeft]])
	require.True(t, si.Next(in, keys))
	require.True(t, si.Next(in, keys))
	assert.False(t, in.Pressed[keys.Keys[motion.MoveLeft]])
	assert.True(t, in.JustPressed[keys.Keys[motion.Jump]])
	assert.False(t, si.Next(in, keys))
}

func TestScriptedInput_UnknownActionInCode(t *testing.T) {
	_, err := NewScriptedInput(&Script{Steps: []ScriptStep{{Hold: []string{"fly"}}}})
	assert.ErrorContains(t, err, `step 0: unknown action "fly"`)

	assert.Panics(t, func() {
		NewAppBuilder().
			UseModule(InputModule{}).
			UseModule(ScriptModule{Script: &Script{Steps: []ScriptStep{{Press: []string{"fly"}}}}}).
			Build()
	})
}

func TestScriptModule_QuitsWhenDone(t *testing.T) {
	script, err := ParseScript([]byte("steps:\n  - frames: 2\n    hold: [turn_left]\n"))
	require.NoError(t, err)

	app := NewAppBuilder().
		UseModule(InputModule{}).
		UseModule(ScriptModule{Script: script, QuitWhenDone: true}).
		Build()

	in, _ := Resource[Input](app)
	app.Step()
	assert.True(t, in.Pressed[KeyQ])

	app.Step()
	app.Step()
	assert.False(t, in.Pressed[KeyQ])
	assert.True(t, app.quit)
}
