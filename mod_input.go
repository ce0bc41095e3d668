package kinetic

import (
	"fmt"
	"reflect"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gekko3d/kinetic/motion"
)

const (
	KeyA int = iota
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeySpace
	KeyEnter
	KeyEscape
	KeyTab
	KeyRight
	KeyLeft
	KeyDown
	KeyUp
	KeyShift
	KeyControl

	KeyCount
)

var keyNames = map[string]int{
	"a": KeyA, "b": KeyB, "c": KeyC, "d": KeyD, "e": KeyE, "f": KeyF, "g": KeyG,
	"h": KeyH, "i": KeyI, "j": KeyJ, "k": KeyK, "l": KeyL, "m": KeyM, "n": KeyN,
	"o": KeyO, "p": KeyP, "q": KeyQ, "r": KeyR, "s": KeyS, "t": KeyT, "u": KeyU,
	"v": KeyV, "w": KeyW, "x": KeyX, "y": KeyY, "z": KeyZ,
	"space": KeySpace, "enter": KeyEnter, "escape": KeyEscape, "tab": KeyTab,
	"right": KeyRight, "left": KeyLeft, "down": KeyDown, "up": KeyUp,
	"shift": KeyShift, "control": KeyControl,
}

// KeyByName resolves lower-case key names such as "w" or "space".
func KeyByName(name string) (int, bool) {
	key, ok := keyNames[name]
	return key, ok
}

// InputModule installs the Input and ActionMap resources. Bindings
// overrides default key bindings by action name, e.g. {"jump": "j"}.
// Keyboard polling is only wired when a WindowState is present.
type InputModule struct {
	Bindings map[string]string
}

// Input is the per-frame keyboard state. JustPressed and JustReleased hold
// for exactly one frame after the transition.
type Input struct {
	Pressed [KeyCount]bool

	JustPressed  [KeyCount]bool
	JustReleased [KeyCount]bool
}

// SetKey records the current level of one key and derives its edges.
func (input *Input) SetKey(key int, down bool) {
	if key < 0 || key >= KeyCount {
		return
	}
	input.JustPressed[key] = down && !input.Pressed[key]
	input.JustReleased[key] = !down && input.Pressed[key]
	input.Pressed[key] = down
}

// Apply sets every key from a full snapshot.
func (input *Input) Apply(down [KeyCount]bool) {
	for key := range down {
		input.SetKey(key, down[key])
	}
}

func (mod InputModule) Install(app *App, cmd *Commands) {
	keys := DefaultActionMap()
	for name, keyName := range mod.Bindings {
		action, ok := motion.ParseAction(name)
		if !ok {
			panic(fmt.Sprintf("input: unknown action %q", name))
		}
		if err := keys.Bind(action, keyName); err != nil {
			panic(fmt.Sprintf("input: %v", err))
		}
	}

	cmd.AddResources(&Input{}, keys)
	if !app.hasResource(reflect.TypeOf((*WindowState)(nil)).Elem()) {
		return
	}
	app.UseSystem(
		System(inputSystem).
			InStage(PreUpdate),
	)
}

func inputSystem(s *WindowState, input *Input) {
	glfw.PollEvents()

	for key, glfwKey := range keyToGlfw {
		action := s.windowGlfw.GetKey(glfwKey)
		switch action {
		case glfw.Press, glfw.Repeat:
			input.SetKey(key, true)
		case glfw.Release:
			input.SetKey(key, false)
		}
	}
}

var keyToGlfw = map[int]glfw.Key{
	KeyA:       glfw.KeyA,
	KeyB:       glfw.KeyB,
	KeyC:       glfw.KeyC,
	KeyD:       glfw.KeyD,
	KeyE:       glfw.KeyE,
	KeyF:       glfw.KeyF,
	KeyG:       glfw.KeyG,
	KeyH:       glfw.KeyH,
	KeyI:       glfw.KeyI,
	KeyJ:       glfw.KeyJ,
	KeyK:       glfw.KeyK,
	KeyL:       glfw.KeyL,
	KeyM:       glfw.KeyM,
	KeyN:       glfw.KeyN,
	KeyO:       glfw.KeyO,
	KeyP:       glfw.KeyP,
	KeyQ:       glfw.KeyQ,
	KeyR:       glfw.KeyR,
	KeyS:       glfw.KeyS,
	KeyT:       glfw.KeyT,
	KeyU:       glfw.KeyU,
	KeyV:       glfw.KeyV,
	KeyW:       glfw.KeyW,
	KeyX:       glfw.KeyX,
	KeyY:       glfw.KeyY,
	KeyZ:       glfw.KeyZ,
	KeySpace:   glfw.KeySpace,
	KeyEnter:   glfw.KeyEnter,
	KeyEscape:  glfw.KeyEscape,
	KeyTab:     glfw.KeyTab,
	KeyRight:   glfw.KeyRight,
	KeyLeft:    glfw.KeyLeft,
	KeyDown:    glfw.KeyDown,
	KeyUp:      glfw.KeyUp,
	KeyShift:   glfw.KeyLeftShift,
	KeyControl: glfw.KeyLeftControl,
}
