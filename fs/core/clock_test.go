package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/hostfs/fs/core"
)

func TestNewMarkers(t *testing.T) {
	now := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	m := core.NewMarkers(now)

	year := 365 * 24 * time.Hour
	require.Equal(t, now.Add(9*year), m.NearFuture)
	require.Equal(t, now.Add(10*year), m.DistantFuture)
	require.True(t, m.DistantFuture.After(m.NearFuture))
}

func TestProcessMarkers_Stable(t *testing.T) {
	first := core.ProcessMarkers()
	time.Sleep(time.Millisecond)
	require.Equal(t, first, core.ProcessMarkers())
	require.True(t, first.NearFuture.After(time.Now()))
}

func TestClockFunc(t *testing.T) {
	fixed := time.Unix(42, 0)
	var c core.Clock = core.ClockFunc(func() time.Time { return fixed })
	require.Equal(t, fixed, c.Now())
	require.WithinDuration(t, time.Now(), core.SystemClock{}.Now(), time.Minute)
}

func TestFailerFunc(t *testing.T) {
	var gotCode core.ExitCode
	var gotMsg string
	f := core.FailerFunc(func(code core.ExitCode, message string) {
		gotCode, gotMsg = code, message
	})

	f.Fail(core.ExitInternalError, "boom")
	require.Equal(t, core.ExitInternalError, gotCode)
	require.Equal(t, "boom", gotMsg)
	require.Equal(t, core.ExitCode(36), core.ExitLocalEnvironmentalError)
	require.Equal(t, core.ExitCode(37), core.ExitInternalError)
}
