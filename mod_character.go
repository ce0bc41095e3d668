package kinetic

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/kinetic/motion"
)

// CharacterControllerComponent drives the entity's TransformComponent with a
// motion.Controller. The controller reads and writes pose, which is synced
// with the transform around every tick.
type CharacterControllerComponent struct {
	Controller *motion.Controller
	pose       *motion.Pose
}

// CharacterConfig is the resolved controller tuning shared by every
// character the module spawns.
type CharacterConfig struct {
	Path   string
	Spec   ControllerSpec
	Config motion.Config
}

// CharacterControllerModule resolves the controller config and ticks every
// character in Update. With Watch set, edits to ConfigPath are applied to
// running characters without resetting their motion state.
// Install after TimeModule, InputModule and CollisionModule.
type CharacterControllerModule struct {
	Spec       *ControllerSpec
	ConfigPath string
	Watch      bool
}

func (m CharacterControllerModule) Install(app *App, cmd *Commands) {
	cats, ok := Resource[Categories](app)
	if !ok {
		cats = NewCategories()
		cmd.AddResources(cats)
	}

	spec, err := m.spec()
	if err != nil {
		app.Logger().Errorf("character: %v", err)
		panic(err)
	}
	cfg, err := spec.Resolve(cats)
	if err != nil {
		app.Logger().Errorf("character: %v", err)
		panic(err)
	}
	cmd.AddResources(&CharacterConfig{
		Path:   m.ConfigPath,
		Spec:   spec,
		Config: cfg,
	})

	app.UseSystem(
		System(CharacterControllerSystem).
			InStage(Update),
	)

	if !m.Watch || m.ConfigPath == "" {
		return
	}
	watcher, err := NewConfigWatcher(m.ConfigPath)
	if err != nil {
		app.Logger().Warnf("character: config hot reload disabled: %v", err)
		return
	}
	cmd.AddResources(watcher)
	app.UseSystem(
		System(characterReloadSystem).
			InStage(PreUpdate),
	)
}

func (m CharacterControllerModule) spec() (ControllerSpec, error) {
	if m.Spec != nil {
		return *m.Spec, nil
	}
	if m.ConfigPath == "" {
		return DefaultControllerSpec(), nil
	}
	return LoadControllerSpec(m.ConfigPath)
}

// SpawnCharacter adds an entity driven by a controller built from cfg. Input,
// ActionMap and CollisionWorld resources are used when installed; without
// them the character sees no input or no obstacles.
func SpawnCharacter(cmd *Commands, cfg motion.Config, tr TransformComponent) (EntityId, error) {
	app := cmd.App()
	pose := &motion.Pose{Translation: tr.Position, Angles: tr.Rotation}

	env := motion.Env{
		Input:     motion.NoInput{},
		Prober:    motion.NoObstacles{},
		Transform: pose,
		Logger:    app.Logger(),
	}
	if input, ok := Resource[Input](app); ok {
		keys, ok := Resource[ActionMap](app)
		if !ok {
			keys = DefaultActionMap()
		}
		env.Input = NewActionInput(input, keys)
	}
	if world, ok := Resource[CollisionWorld](app); ok {
		env.Prober = world
	}

	ctrl, err := motion.NewController(cfg, env)
	if err != nil {
		return 0, fmt.Errorf("character: %w", err)
	}

	if tr.Scale == (mgl32.Vec3{}) {
		tr.Scale = mgl32.Vec3{1, 1, 1}
	}
	eid := cmd.AddEntity(tr, CharacterControllerComponent{
		Controller: ctrl,
		pose:       pose,
	})
	return eid, nil
}

func CharacterControllerSystem(cmd *Commands, t *Time) {
	dt := t.Seconds()
	MakeQuery2[TransformComponent, CharacterControllerComponent](cmd).Map(func(id EntityId, tr *TransformComponent, cc *CharacterControllerComponent) bool {
		cc.pose.Translation = tr.Position
		cc.pose.Angles = tr.Rotation

		cc.Controller.Tick(dt)

		tr.Position = cc.pose.Translation
		tr.Rotation = cc.pose.Angles
		return true
	})
}

// ReloadCharacters swaps the config of every character, keeping each one's
// motion state. Characters whose controller cannot be rebuilt keep the old one.
func ReloadCharacters(cmd *Commands, cfg motion.Config) error {
	var firstErr error
	MakeQuery1[CharacterControllerComponent](cmd).Map(func(id EntityId, cc *CharacterControllerComponent) bool {
		old := cc.Controller
		next, err := motion.NewControllerFrom(cfg, old.Env(), old.State())
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("character %d: %w", id, err)
			}
			return true
		}
		cc.Controller = next
		return true
	})
	return firstErr
}

func characterReloadSystem(cmd *Commands, watcher *ConfigWatcher, settings *CharacterConfig, cats *Categories) {
	changed, errs := watcher.Poll()
	log := cmd.App().Logger()
	for _, err := range errs {
		log.Warnf("character: watch: %v", err)
	}
	if len(changed) == 0 {
		return
	}

	spec, err := LoadControllerSpec(settings.Path)
	if err != nil {
		log.Warnf("character: reload: %v", err)
		return
	}
	cfg, err := spec.Resolve(cats)
	if err != nil {
		log.Warnf("character: reload %s: %v", settings.Path, err)
		return
	}
	if err := ReloadCharacters(cmd, cfg); err != nil {
		log.Warnf("character: reload: %v", err)
		return
	}

	settings.Spec = spec
	settings.Config = cfg
	log.Infof("character: reloaded %s", settings.Path)
}
