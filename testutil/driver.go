package testutil

import (
	"github.com/comalice/smf"
	"github.com/comalice/smf/realtime"
)

// Driver advances a probe one tick at a time. It lets one scenario run both
// against the bare engine and through a realtime.Runtime.
type Driver interface {
	Name() string
	Tick() (int32, error)
}

// Drivers returns one driver per way of ticking p.
func Drivers(p *Probe) []Driver {
	return []Driver{
		NewDirectDriver(p),
		NewSteppedDriver(p),
	}
}

// DirectDriver calls smf.RunState.
type DirectDriver struct {
	p *Probe
}

// NewDirectDriver wraps p.
func NewDirectDriver(p *Probe) *DirectDriver {
	return &DirectDriver{p: p}
}

func (d *DirectDriver) Name() string { return "direct" }

func (d *DirectDriver) Tick() (int32, error) {
	return smf.RunState(d.p), nil
}

// SteppedDriver ticks through a realtime.Runtime that is never started.
type SteppedDriver struct {
	rt *realtime.Runtime[*Probe]
}

// NewSteppedDriver wraps p in a fresh runtime.
func NewSteppedDriver(p *Probe) *SteppedDriver {
	return &SteppedDriver{rt: realtime.NewRuntime(p, realtime.Config{})}
}

func (d *SteppedDriver) Name() string { return "stepped" }

func (d *SteppedDriver) Tick() (int32, error) {
	return d.rt.Step()
}

// Runtime exposes the wrapped runtime, e.g. to Post work between ticks.
func (d *SteppedDriver) Runtime() *realtime.Runtime[*Probe] {
	return d.rt
}
