// Package testutil provides a recording machine object and a canonical chart
// for exercising the engine and its drivers.
package testutil

import "github.com/comalice/smf"

// Probe is a machine object that records every callback the engine makes.
// Calls holds keys of the form "entry:a", "run:a" and "exit:a" in
// invocation order.
type Probe struct {
	smf.Ctx[*Probe]

	Calls   []string
	Results map[string]smf.Result

	scripts map[string][]func(*Probe)
}

// NewProbe returns an empty probe.
func NewProbe() *Probe {
	return &Probe{
		Results: make(map[string]smf.Result),
		scripts: make(map[string][]func(*Probe)),
	}
}

// On schedules fn to run inside the callback named by key, after the call has
// been recorded. Scripts run every time the callback fires.
func (p *Probe) On(key string, fn func(*Probe)) *Probe {
	p.scripts[key] = append(p.scripts[key], fn)
	return p
}

// Once is On for a script that fires only the first time.
func (p *Probe) Once(key string, fn func(*Probe)) *Probe {
	fired := false
	return p.On(key, func(p *Probe) {
		if !fired {
			fired = true
			fn(p)
		}
	})
}

// Return makes the Run action of state return r.
func (p *Probe) Return(state string, r smf.Result) *Probe {
	p.Results[state] = r
	return p
}

// Take returns the recorded calls and clears them.
func (p *Probe) Take() []string {
	calls := p.Calls
	p.Calls = nil
	return calls
}

func (p *Probe) record(key string) {
	p.Calls = append(p.Calls, key)
	for _, fn := range p.scripts[key] {
		fn(p)
	}
}

// Instrument installs recording Entry, Run and Exit actions on states,
// replacing whatever they had.
func Instrument(states ...*smf.State[*Probe]) {
	for _, s := range states {
		name := s.Name
		s.Entry = func(p *Probe) { p.record("entry:" + name) }
		s.Exit = func(p *Probe) { p.record("exit:" + name) }
		s.Run = func(p *Probe) smf.Result {
			p.record("run:" + name)
			return p.Results[name]
		}
	}
}
