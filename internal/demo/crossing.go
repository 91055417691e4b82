// Package demo holds the pedestrian crossing chart driven by cmd/smfdemo.
//
//	operating
//	├── cars
//	│   ├── green
//	│   └── yellow
//	└── pedestrians
//	    ├── walk
//	    └── flash
//
// Leaves check their phase timer and propagate; operating counts ticks.
package demo

import (
	"log/slog"

	"github.com/comalice/smf"
	"github.com/comalice/smf/builder"
	"github.com/comalice/smf/internal/logging"
)

// ExitDone is the terminate code once MaxCycles pedestrian phases completed.
const ExitDone int32 = 1

// Timing holds phase lengths in ticks.
type Timing struct {
	MinGreen int
	Yellow   int
	Walk     int
	Flash    int
}

// DefaultTiming is used for zero fields.
var DefaultTiming = Timing{MinGreen: 5, Yellow: 2, Walk: 4, Flash: 2}

// Crossing is the per-instance machine object.
type Crossing struct {
	smf.Ctx[*Crossing]

	Timing    Timing
	MaxCycles int

	// Timer counts ticks spent in the current phase.
	Timer  int
	Button bool
	Cycles int
	Lights string

	logger *slog.Logger
}

// NewCrossing returns a crossing that stops after maxCycles pedestrian
// phases; zero runs forever.
func NewCrossing(t Timing, maxCycles int, logger *slog.Logger) *Crossing {
	if t.MinGreen == 0 {
		t.MinGreen = DefaultTiming.MinGreen
	}
	if t.Yellow == 0 {
		t.Yellow = DefaultTiming.Yellow
	}
	if t.Walk == 0 {
		t.Walk = DefaultTiming.Walk
	}
	if t.Flash == 0 {
		t.Flash = DefaultTiming.Flash
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Crossing{Timing: t, MaxCycles: maxCycles, logger: logger}
}

// Press registers a pedestrian button press. Meant to be posted to the
// machine's runtime.
func (c *Crossing) Press() {
	c.Button = true
}

// Chart is the static state tree shared by every Crossing.
type Chart struct {
	Operating   *smf.State[*Crossing]
	Cars        *smf.State[*Crossing]
	Green       *smf.State[*Crossing]
	Yellow      *smf.State[*Crossing]
	Pedestrians *smf.State[*Crossing]
	Walk        *smf.State[*Crossing]
	Flash       *smf.State[*Crossing]
}

// NewChart wires the crossing states.
func NewChart() *Chart {
	ch := &Chart{}
	ch.Green = builder.Leaf("green",
		builder.OnEntry(lights("cars=green walk=off")),
		builder.OnRun(ch.green),
	)
	ch.Yellow = builder.Leaf("yellow",
		builder.OnEntry(lights("cars=yellow walk=off")),
		builder.OnRun(ch.yellow),
	)
	ch.Walk = builder.Leaf("walk",
		builder.OnEntry(lights("cars=red walk=on")),
		builder.OnRun(ch.walk),
	)
	ch.Flash = builder.Leaf("flash",
		builder.OnEntry(lights("cars=red walk=flashing")),
		builder.OnRun(ch.flash),
	)
	ch.Cars = builder.Composite("cars", []*smf.State[*Crossing]{ch.Green, ch.Yellow})
	ch.Pedestrians = builder.Composite("pedestrians", []*smf.State[*Crossing]{ch.Walk, ch.Flash},
		builder.OnEntry(func(c *Crossing) { c.Button = false }),
		builder.OnExit(func(c *Crossing) {
			c.Cycles++
			c.logger.Info("pedestrian phase done", "cycles", c.Cycles)
		}),
	)
	ch.Operating = builder.Composite("operating", []*smf.State[*Crossing]{ch.Cars, ch.Pedestrians},
		builder.OnEntry(func(c *Crossing) { c.logger.Info("crossing powered on") }),
		builder.OnExit(func(c *Crossing) { c.logger.Info("crossing powered off") }),
		builder.OnRun(operating),
	)
	return ch
}

// States lists every state, parents first.
func (ch *Chart) States() []*smf.State[*Crossing] {
	return builder.Flatten(ch.Green, ch.Yellow, ch.Walk, ch.Flash)
}

func lights(l string) func(*Crossing) {
	return func(c *Crossing) {
		c.Timer = 0
		c.Lights = l
		c.logger.Debug("lights", "state", c.Executing().String(), "lights", l)
	}
}

func (ch *Chart) green(c *Crossing) smf.Result {
	if c.Button && c.Timer >= c.Timing.MinGreen {
		c.SetState(ch.Yellow)
	}
	return smf.Propagate
}

func (ch *Chart) yellow(c *Crossing) smf.Result {
	if c.Timer >= c.Timing.Yellow {
		c.SetState(ch.Pedestrians)
	}
	return smf.Propagate
}

func (ch *Chart) walk(c *Crossing) smf.Result {
	if c.Timer >= c.Timing.Walk {
		c.SetState(ch.Flash)
	}
	return smf.Propagate
}

func (ch *Chart) flash(c *Crossing) smf.Result {
	if c.Timer >= c.Timing.Flash {
		c.SetState(ch.Cars)
	}
	return smf.Propagate
}

func operating(c *Crossing) smf.Result {
	if c.MaxCycles > 0 && c.Cycles >= c.MaxCycles {
		c.logger.Info("cycle budget reached", "cycles", c.Cycles)
		c.SetTerminate(ExitDone)
		return smf.Handled
	}
	c.Timer++
	return smf.Handled
}
