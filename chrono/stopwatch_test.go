package chrono

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStopwatchTotalAdvances(t *testing.T) {
	sw := New()
	time.Sleep(2 * time.Millisecond)
	require.Greater(t, sw.Total(), time.Duration(0))
}

func TestStopwatchLapResetsWindow(t *testing.T) {
	sw := New()
	time.Sleep(2 * time.Millisecond)
	first := sw.Lap()
	require.Greater(t, first, time.Duration(0))

	second := sw.Lap()
	require.Less(t, second, first)
}

func TestStopwatchRestart(t *testing.T) {
	sw := New()
	time.Sleep(2 * time.Millisecond)
	sw.Restart()
	require.Less(t, sw.Total(), time.Millisecond)
}
