package kinetic

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeModule_FixedStep(t *testing.T) {
	app := NewAppBuilder().UseModule(TimeModule{FixedStep: 20 * time.Millisecond}).Build()
	tm, ok := Resource[Time](app)
	require.True(t, ok)
	start := tm.Time

	app.Step()
	app.Step()

	assert.Equal(t, 20*time.Millisecond, tm.Dt)
	assert.InDelta(t, 0.02, tm.Seconds(), 1e-6)
	assert.Equal(t, start.Add(40*time.Millisecond), tm.Time)
}

func TestTimeModule_WallClock(t *testing.T) {
	app := NewAppBuilder().UseModule(TimeModule{}).Build()
	tm, _ := Resource[Time](app)
	before := tm.Time

	time.Sleep(2 * time.Millisecond)
	app.Step()

	assert.GreaterOrEqual(t, tm.Dt, 2*time.Millisecond)
	assert.True(t, tm.Time.After(before))
}
