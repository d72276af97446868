package input

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(bits ...uint) uint32 {
	var b uint32
	for _, bit := range bits {
		b |= 1 << bit
	}
	return b
}

func stick(x, y float64) Snapshot {
	return Snapshot{Axes: []float64{x, y}}
}

func TestDirectionRisingEdgeFiresOnce(t *testing.T) {
	n := NewNormalizer(DefaultSettings())
	now := time.Now()

	events := n.Normalize(stick(0, 1.0), now)
	require.Len(t, events, 1)
	assert.IsType(t, MoveDownEvent{}, events[0])

	// Still held, before the initial delay: nothing
	events = n.Normalize(stick(0, 1.0), now.Add(100*time.Millisecond))
	assert.Empty(t, events)
}

func TestDirectionRepeatsAfterInitialDelay(t *testing.T) {
	n := NewNormalizer(DefaultSettings())
	now := time.Now()

	n.Normalize(stick(0, 1.0), now)

	events := n.Normalize(stick(0, 1.0), now.Add(400*time.Millisecond))
	require.Len(t, events, 1)
	assert.IsType(t, MoveDownEvent{}, events[0])

	// Next repeat only after the repeat interval
	events = n.Normalize(stick(0, 1.0), now.Add(450*time.Millisecond))
	assert.Empty(t, events)

	events = n.Normalize(stick(0, 1.0), now.Add(520*time.Millisecond))
	require.Len(t, events, 1)
	assert.IsType(t, MoveDownEvent{}, events[0])
}

func TestReleaseResetsTheEdge(t *testing.T) {
	n := NewNormalizer(DefaultSettings())
	now := time.Now()

	n.Normalize(stick(0, 1.0), now)
	n.Normalize(stick(0, 0), now.Add(50*time.Millisecond))

	// A fresh press fires immediately, no delay carried over
	events := n.Normalize(stick(0, 1.0), now.Add(60*time.Millisecond))
	require.Len(t, events, 1)
	assert.IsType(t, MoveDownEvent{}, events[0])
}

func TestDeadzoneSwallowsSmallDeflections(t *testing.T) {
	n := NewNormalizer(DefaultSettings())
	now := time.Now()

	assert.Empty(t, n.Normalize(stick(0.29, -0.29), now))

	events := n.Normalize(stick(0.31, 0), now.Add(10*time.Millisecond))
	require.Len(t, events, 1)
	assert.IsType(t, MovePanelRightEvent{}, events[0])
}

func TestDriftingInsideDeadzoneCancelsHold(t *testing.T) {
	n := NewNormalizer(DefaultSettings())
	now := time.Now()

	n.Normalize(stick(0, 1.0), now)
	// Stick drifts back inside the deadzone mid-hold
	n.Normalize(stick(0, 0.1), now.Add(200*time.Millisecond))

	// Even past the initial delay, no repeat: the hold was cancelled
	assert.Empty(t, n.Normalize(stick(0, 0.1), now.Add(500*time.Millisecond)))
}

func TestButtonsFireOnRisingEdgeOnly(t *testing.T) {
	n := NewNormalizer(DefaultSettings())
	now := time.Now()

	events := n.Normalize(Snapshot{Buttons: press(ButtonConfirm)}, now)
	require.Len(t, events, 1)
	assert.IsType(t, ConfirmEvent{}, events[0])

	// Held across many ticks: a held Confirm must never launch twice
	for i := 1; i <= 50; i++ {
		events = n.Normalize(Snapshot{Buttons: press(ButtonConfirm)}, now.Add(time.Duration(i)*16*time.Millisecond))
		assert.Empty(t, events)
	}

	// Release and press again: fires again
	n.Normalize(Snapshot{}, now.Add(time.Second))
	events = n.Normalize(Snapshot{Buttons: press(ButtonConfirm)}, now.Add(2*time.Second))
	require.Len(t, events, 1)
	assert.IsType(t, ConfirmEvent{}, events[0])
}

func TestEmissionOrderIsDeterministic(t *testing.T) {
	now := time.Now()
	snap := Snapshot{
		Buttons: press(ButtonConfirm, ButtonFavorite),
		Axes:    []float64{0, -1.0},
	}

	// Identical input sequences produce identical event streams
	first := NewNormalizer(DefaultSettings()).Normalize(snap, now)
	second := NewNormalizer(DefaultSettings()).Normalize(snap, now)
	assert.Equal(t, first, second)

	require.Len(t, first, 3)
	assert.IsType(t, MoveUpEvent{}, first[0])
	assert.IsType(t, ConfirmEvent{}, first[1])
	assert.IsType(t, ToggleFavoriteEvent{}, first[2])
}

func TestDpadWinsOverStick(t *testing.T) {
	n := NewNormalizer(DefaultSettings())
	snap := Snapshot{
		// Stick pushed right, d-pad pressed up
		Axes: []float64{1.0, 0, 0, 0, 0, 0, 0, -1.0},
	}

	events := n.Normalize(snap, time.Now())
	require.Len(t, events, 1)
	assert.IsType(t, MoveUpEvent{}, events[0])
}

func TestResetClearsHeldState(t *testing.T) {
	n := NewNormalizer(DefaultSettings())
	now := time.Now()

	n.Normalize(Snapshot{Buttons: press(ButtonConfirm), Axes: []float64{0, 1.0}}, now)
	n.Reset()

	// Same physical state after the reset counts as a fresh edge
	events := n.Normalize(Snapshot{Buttons: press(ButtonConfirm), Axes: []float64{0, 1.0}}, now.Add(10*time.Millisecond))
	assert.Len(t, events, 2)
}
