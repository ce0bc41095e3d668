package kinetic

import (
	"time"
)

type Time struct {
	Time time.Time
	Dt   time.Duration
}

// Seconds returns the frame delta in seconds.
func (t *Time) Seconds() float32 {
	return float32(t.Dt.Seconds())
}

// TimeModule advances the Time resource at the start of every frame. With a
// zero FixedStep it measures wall-clock time; otherwise every frame advances
// by exactly FixedStep, which keeps headless runs deterministic.
type TimeModule struct {
	FixedStep time.Duration
}

func (mod TimeModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&Time{
		Time: time.Now(),
		Dt:   0,
	})

	if mod.FixedStep > 0 {
		step := mod.FixedStep
		app.UseSystem(
			System(func(t *Time) { fixedTimeSystem(t, step) }).
				InStage(Prelude),
		)
		return
	}

	app.UseSystem(
		System(timeSystem).
			InStage(Prelude),
	)
}

func timeSystem(timeResource *Time) {
	now := time.Now()

	timeResource.Dt = now.Sub(timeResource.Time)
	timeResource.Time = now
}

func fixedTimeSystem(timeResource *Time, step time.Duration) {
	timeResource.Dt = step
	timeResource.Time = timeResource.Time.Add(step)
}
