package engine

import (
	"time"

	"github.com/kosmit147/zenith2d"
)

// HeadlessDriver runs the loop without a window, rendering every frame
// into Backend. It is used by tests and for offscreen image output.
type HeadlessDriver struct {
	// Backend receives every frame.
	Backend zenith.Backend

	// Frames is the number of frames to run; 0 runs until the application
	// quits.
	Frames int

	// Step is the frame delta passed to Frame. Zero means one tick of the
	// configured target frame rate.
	Step time.Duration

	// Events, when set, supplies the input events of frame i (0-based).
	Events func(i int) []Event
}

// Run implements Driver.
func (d *HeadlessDriver) Run(e *Engine) error {
	if err := e.Init(); err != nil {
		return err
	}
	step := d.Step
	if step <= 0 {
		step = time.Second / time.Duration(max(e.Context().Config.TargetFPS, 1))
	}
	for i := 0; d.Frames <= 0 || i < d.Frames; i++ {
		var events []Event
		if d.Events != nil {
			events = d.Events(i)
		}
		if err := e.Frame(events, step); err != nil {
			return err
		}
		if err := e.Render(d.Backend); err != nil {
			return err
		}
		if !e.Running() {
			break
		}
	}
	return nil
}
