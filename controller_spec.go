package kinetic

import (
	"fmt"
	"os"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"github.com/gekko3d/kinetic/motion"
)

// ControllerSpec is the YAML form of a character's tuning. Fields left out
// of the file keep their defaults.
type ControllerSpec struct {
	MoveSpeed        float32                 `yaml:"move_speed"`
	RotationSpeed    float32                 `yaml:"rotation_speed"`
	JumpVelocity     float32                 `yaml:"jump_velocity"`
	TerminalVelocity float32                 `yaml:"terminal_velocity"`
	Gravity          float32                 `yaml:"gravity"`
	MaxJumps         int                     `yaml:"max_jumps"`
	ProbeDistance    float32                 `yaml:"probe_distance"`
	GroundCategory   string                  `yaml:"ground_category"`
	Probes           map[string][][3]float32 `yaml:"probes"`
}

// DefaultControllerSpec describes a character two units tall and one unit
// wide, with its origin at the centre and one probe per face.
func DefaultControllerSpec() ControllerSpec {
	return ControllerSpec{
		MoveSpeed:        motion.DefaultMovementSpeed,
		RotationSpeed:    motion.DefaultRotationSpeed,
		JumpVelocity:     motion.DefaultInitialJumpVelocity,
		TerminalVelocity: motion.DefaultTerminalFallVelocity,
		Gravity:          motion.DefaultGravity,
		MaxJumps:         motion.DefaultMaxJumps,
		ProbeDistance:    motion.DefaultProbeDistance,
		GroundCategory:   CategoryGround,
		Probes: map[string][][3]float32{
			"up":       {{0, 1, 0}},
			"down":     {{0, -1, 0}},
			"forward":  {{0, 0, -0.5}},
			"backward": {{0, 0, 0.5}},
			"left":     {{-0.5, 0, 0}},
			"right":    {{0.5, 0, 0}},
		},
	}
}

func LoadControllerSpec(filename string) (ControllerSpec, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return ControllerSpec{}, fmt.Errorf("controller: load %s: %w", filename, err)
	}
	spec, err := ParseControllerSpec(data)
	if err != nil {
		return ControllerSpec{}, fmt.Errorf("controller: %s: %w", filename, err)
	}
	return spec, nil
}

// ParseControllerSpec decodes YAML over the defaults. A probes section
// replaces the default probe layout as a whole.
func ParseControllerSpec(data []byte) (ControllerSpec, error) {
	spec := DefaultControllerSpec()
	defaultProbes := spec.Probes
	spec.Probes = nil
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return ControllerSpec{}, fmt.Errorf("unmarshal: %w", err)
	}
	if spec.Probes == nil {
		spec.Probes = defaultProbes
	}
	return spec, nil
}

// Resolve turns the spec into a validated motion.Config. The ground category
// name is looked up once here.
func (s ControllerSpec) Resolve(categories *Categories) (motion.Config, error) {
	ground, ok := categories.Lookup(s.GroundCategory)
	if !ok {
		return motion.Config{}, fmt.Errorf("%w: unknown ground category %q", motion.ErrInvalidConfig, s.GroundCategory)
	}

	cfg := motion.Config{
		MovementSpeed:        s.MoveSpeed,
		RotationSpeed:        s.RotationSpeed,
		InitialJumpVelocity:  s.JumpVelocity,
		TerminalFallVelocity: s.TerminalVelocity,
		Gravity:              s.Gravity,
		MaxJumps:             s.MaxJumps,
		ProbeDistance:        s.ProbeDistance,
		GroundCategory:       ground,
	}

	names := make([]string, 0, len(s.Probes))
	for name := range s.Probes {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		dir, ok := motion.ParseDirection(name)
		if !ok {
			return motion.Config{}, fmt.Errorf("%w: unknown probe direction %q", motion.ErrInvalidConfig, name)
		}
		for _, p := range s.Probes[name] {
			cfg.Probes[dir] = append(cfg.Probes[dir], mgl32.Vec3(p))
		}
	}

	if err := cfg.Validate(); err != nil {
		return motion.Config{}, err
	}
	return cfg, nil
}
