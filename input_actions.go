package kinetic

import (
	"fmt"

	"github.com/gekko3d/kinetic/motion"
)

// ActionMap binds controller actions to keys.
type ActionMap struct {
	Keys [motion.ActionCount]int
}

// DefaultActionMap uses W/S/A/D to move, Q/E to turn and Space to jump.
func DefaultActionMap() *ActionMap {
	m := &ActionMap{}
	m.Keys[motion.MoveForward] = KeyW
	m.Keys[motion.MoveBackward] = KeyS
	m.Keys[motion.MoveLeft] = KeyA
	m.Keys[motion.MoveRight] = KeyD
	m.Keys[motion.TurnLeft] = KeyQ
	m.Keys[motion.TurnRight] = KeyE
	m.Keys[motion.Jump] = KeySpace
	return m
}

// Bind rebinds one action by key name.
func (m *ActionMap) Bind(action motion.Action, keyName string) error {
	key, ok := KeyByName(keyName)
	if !ok {
		return fmt.Errorf("bind %s: unknown key %q", action, keyName)
	}
	m.Keys[action] = key
	return nil
}

// ActionInput exposes an Input resource to a motion.Controller.
type ActionInput struct {
	input *Input
	keys  *ActionMap
}

func NewActionInput(input *Input, keys *ActionMap) *ActionInput {
	if keys == nil {
		keys = DefaultActionMap()
	}
	return &ActionInput{input: input, keys: keys}
}

func (a *ActionInput) IsHeld(action motion.Action) bool {
	return a.input.Pressed[a.keys.Keys[action]]
}

func (a *ActionInput) WasPressed(action motion.Action) bool {
	return a.input.JustPressed[a.keys.Keys[action]]
}
