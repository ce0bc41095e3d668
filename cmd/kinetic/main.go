package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/gekko3d/kinetic"
)

func init() {
	// glfw must run on the main thread.
	runtime.LockOSThread()
}

type options struct {
	configPath string
	levelPath  string
	scriptPath string
	frames     int
	dt         time.Duration
	window     bool
	watch      bool
	debug      bool
	backend    string
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "controller config YAML (defaults when empty)")
	flag.StringVar(&opts.levelPath, "level", "", "level YAML with colliders and spawn point")
	flag.StringVar(&opts.scriptPath, "script", "", "input script YAML for headless runs")
	flag.IntVar(&opts.frames, "frames", 0, "stop after this many frames (0 runs until the script ends or the window closes)")
	flag.DurationVar(&opts.dt, "dt", time.Second/60, "fixed simulation step")
	flag.BoolVar(&opts.window, "window", false, "open a window and read the keyboard")
	flag.BoolVar(&opts.watch, "watch", false, "reload -config when it changes")
	flag.BoolVar(&opts.debug, "debug", false, "log debug output, including phase changes")
	flag.StringVar(&opts.backend, "log", "std", "log backend: std or zap")
	flag.Parse()

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "kinetic: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	level := &kinetic.LevelDef{}
	if opts.levelPath != "" {
		def, err := kinetic.LoadLevelDef(opts.levelPath)
		if err != nil {
			return err
		}
		level = def
	}

	var script *kinetic.Script
	if opts.scriptPath != "" {
		s, err := kinetic.LoadScript(opts.scriptPath)
		if err != nil {
			return err
		}
		script = s
	}
	if !opts.window && script == nil && opts.frames <= 0 {
		return fmt.Errorf("headless runs need -script or -frames")
	}

	spec := kinetic.DefaultControllerSpec()
	if opts.configPath != "" {
		s, err := kinetic.LoadControllerSpec(opts.configPath)
		if err != nil {
			return err
		}
		spec = s
	}

	step := opts.dt
	if opts.window {
		step = 0
	}

	builder := kinetic.NewAppBuilder().
		UseModule(kinetic.LoggingModule{Prefix: "[kinetic]", Debug: opts.debug, Backend: opts.backend}).
		UseModule(kinetic.TimeModule{FixedStep: step})
	if opts.window {
		builder = builder.UseModule(kinetic.NewPlatformWindow(640, 360, "kinetic"))
	}
	builder = builder.
		UseModule(kinetic.InputModule{}).
		UseModule(kinetic.CollisionModule{Categories: levelCategories(level)}).
		UseModule(kinetic.LevelModule{Def: level}).
		UseModule(kinetic.CharacterControllerModule{
			Spec:       &spec,
			ConfigPath: opts.configPath,
			Watch:      opts.watch,
		})
	if script != nil {
		builder = builder.UseModule(kinetic.ScriptModule{Script: script, QuitWhenDone: opts.frames <= 0})
	}
	app := builder.Build()

	if ws, ok := kinetic.Resource[kinetic.WindowState](app); ok {
		defer ws.Destroy()
	}
	if w, ok := kinetic.Resource[kinetic.ConfigWatcher](app); ok {
		defer w.Close()
	}
	if z, ok := app.Logger().(*kinetic.ZapLogger); ok {
		defer z.Sync()
	}

	settings, _ := kinetic.Resource[kinetic.CharacterConfig](app)
	cmd := app.Commands()
	if _, err := kinetic.SpawnCharacter(cmd, settings.Config, level.SpawnTransform()); err != nil {
		return err
	}
	app.FlushCommands()

	app.UseSystem(kinetic.System(traceSystem).InStage(kinetic.PostUpdate))
	if opts.frames > 0 {
		limit := uint64(opts.frames)
		app.UseSystem(kinetic.System(func(cmd *kinetic.Commands) {
			if cmd.App().Frame()+1 >= limit {
				cmd.Quit()
			}
		}).InStage(kinetic.Finale))
	}
	if opts.window {
		app.UseSystem(kinetic.System(func() { time.Sleep(opts.dt) }).InStage(kinetic.Finale))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

// levelCategories lists the category names a level uses so they are
// registered before its colliders spawn.
func levelCategories(level *kinetic.LevelDef) []string {
	var names []string
	for _, col := range level.Colliders {
		if col.Category != "" {
			names = append(names, col.Category)
		}
	}
	return names
}

func traceSystem(cmd *kinetic.Commands) {
	log := cmd.App().Logger()
	frame := cmd.App().Frame()
	kinetic.MakeQuery2[kinetic.TransformComponent, kinetic.CharacterControllerComponent](cmd).Map(
		func(id kinetic.EntityId, tr *kinetic.TransformComponent, cc *kinetic.CharacterControllerComponent) bool {
			st := cc.Controller.State()
			log.Infof("frame=%d entity=%d pos=(%.3f, %.3f, %.3f) yaw=%.1f phase=%s grounded=%t jumps=%d vy=%.3f",
				frame, id,
				tr.Position.X(), tr.Position.Y(), tr.Position.Z(),
				tr.Rotation.Yaw, st.Phase, st.Grounded, st.JumpsRemaining, st.VerticalVelocity)
			return true
		})
}
