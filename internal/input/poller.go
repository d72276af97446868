package input

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/0xcafed00d/joystick"
)

// axisRange is the raw axis extent reported by the joystick driver
const axisRange = 32767.0

// Poller reads raw gamepad state on a fixed tick and hands snapshots to the
// program loop. It never touches UI state itself; snapshots are delivered
// through the send callback (wired to tea.Program.Send).
type Poller struct {
	interval time.Duration
	paused   atomic.Bool
	quit     chan struct{}
	send     func(Snapshot, time.Time)
}

// NewPoller creates a poller delivering snapshots via send
func NewPoller(interval time.Duration, send func(Snapshot, time.Time)) *Poller {
	return &Poller{
		interval: interval,
		quit:     make(chan struct{}),
		send:     send,
	}
}

// Run polls the first responsive joystick until Stop is called. It returns
// immediately when no gamepad is connected; keyboard-only operation is fine.
func (p *Poller) Run() {
	var js joystick.Joystick
	var err error
	for i := 0; i < 4; i++ {
		js, err = joystick.Open(i)
		if err == nil {
			break
		}
	}
	if err != nil {
		log.Printf("Poller: no gamepad found")
		return
	}
	defer js.Close()
	log.Printf("Poller: using gamepad %q", js.Name())

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-p.quit:
			return
		case <-ticker.C:
			if p.paused.Load() {
				continue
			}
			state, err := js.Read()
			if err != nil {
				continue
			}

			snap := Snapshot{
				Buttons: state.Buttons,
				Axes:    make([]float64, len(state.AxisData)),
			}
			for i, v := range state.AxisData {
				snap.Axes[i] = float64(v) / axisRange
			}
			p.send(snap, time.Now())
		}
	}
}

// Pause suspends snapshot delivery while an emulator owns the terminal
func (p *Poller) Pause() {
	p.paused.Store(true)
}

// Resume re-enables snapshot delivery
func (p *Poller) Resume() {
	p.paused.Store(false)
}

// Stop terminates the polling goroutine
func (p *Poller) Stop() {
	close(p.quit)
}
