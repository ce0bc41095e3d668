package kinetic

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gekko3d/kinetic/motion"
)

// ScriptStep holds a set of actions for a number of frames. Press actions
// produce a fresh key-down edge on the first frame of the step only.
type ScriptStep struct {
	Frames int      `yaml:"frames"`
	Hold   []string `yaml:"hold"`
	Press  []string `yaml:"press"`

	hold  []motion.Action
	press []motion.Action
}

// Script is a recorded input timeline used to drive characters headlessly.
type Script struct {
	Steps []ScriptStep `yaml:"steps"`
}

func LoadScript(filename string) (*Script, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("script: load %s: %w", filename, err)
	}
	script, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("script: %s: %w", filename, err)
	}
	return script, nil
}

func ParseScript(data []byte) (*Script, error) {
	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	for i := range script.Steps {
		if err := script.Steps[i].resolve(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
	}
	return &script, nil
}

func (s *ScriptStep) resolve() error {
	if s.Frames <= 0 {
		s.Frames = 1
	}
	var err error
	if s.hold, err = parseActions(s.Hold); err != nil {
		return err
	}
	s.press, err = parseActions(s.Press)
	return err
}

func parseActions(names []string) ([]motion.Action, error) {
	actions := make([]motion.Action, 0, len(names))
	for _, name := range names {
		a, ok := motion.ParseAction(name)
		if !ok {
			return nil, fmt.Errorf("unknown action %q", name)
		}
		actions = append(actions, a)
	}
	return actions, nil
}

// TotalFrames is the number of frames the script covers.
func (s *Script) TotalFrames() int {
	total := 0
	for _, step := range s.Steps {
		total += step.Frames
	}
	return total
}

// ScriptedInput replays a Script into the Input resource, one frame per call.
type ScriptedInput struct {
	script *Script
	step   int
	frame  int
}

// NewScriptedInput resolves the action names of every step, so scripts built
// in code replay the same as parsed ones.
func NewScriptedInput(script *Script) (*ScriptedInput, error) {
	for i := range script.Steps {
		if err := script.Steps[i].resolve(); err != nil {
			return nil, fmt.Errorf("script: step %d: %w", i, err)
		}
	}
	return &ScriptedInput{script: script}, nil
}

func (si *ScriptedInput) Done() bool {
	return si.step >= len(si.script.Steps)
}

// Next writes the current frame into input and advances. Once the script is
// exhausted every key is released and Next reports false.
func (si *ScriptedInput) Next(input *Input, keys *ActionMap) bool {
	if si.Done() {
		input.Apply([KeyCount]bool{})
		return false
	}

	step := &si.script.Steps[si.step]
	var down [KeyCount]bool
	for _, a := range step.hold {
		down[keys.Keys[a]] = true
	}
	input.Apply(down)

	if si.frame == 0 {
		for _, a := range step.press {
			key := keys.Keys[a]
			input.SetKey(key, false)
			input.SetKey(key, true)
		}
	}

	si.frame++
	if si.frame >= step.Frames {
		si.step++
		si.frame = 0
	}
	return true
}

// ScriptModule feeds a Script into the Input resource. It must be installed
// after InputModule.
type ScriptModule struct {
	Script       *Script
	QuitWhenDone bool
}

func (m ScriptModule) Install(app *App, cmd *Commands) {
	si, err := NewScriptedInput(m.Script)
	if err != nil {
		app.Logger().Errorf("%v", err)
		panic(err)
	}
	cmd.AddResources(si)
	quit := m.QuitWhenDone
	app.UseSystem(
		System(func(cmd *Commands, si *ScriptedInput, input *Input, keys *ActionMap) {
			if !si.Next(input, keys) && quit {
				cmd.Quit()
			}
		}).InStage(PreUpdate),
	)
}
