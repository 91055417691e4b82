package production

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/comalice/smf"
)

// Step kinds.
const (
	KindEntry      = "entry"
	KindExit       = "exit"
	KindRun        = "run"
	KindTransition = "transition"
	KindTerminate  = "terminate"
	KindMisuse     = "misuse"
)

// Step is one recorded engine event.
type Step struct {
	Seq   int    `yaml:"seq" json:"seq"`
	Kind  string `yaml:"kind" json:"kind"`
	State string `yaml:"state,omitempty" json:"state,omitempty"`
	To    string `yaml:"to,omitempty" json:"to,omitempty"`
	Code  int32  `yaml:"code,omitempty" json:"code,omitempty"`
	Error string `yaml:"error,omitempty" json:"error,omitempty"`
}

// String renders entry, exit and run steps as "kind:state".
func (s Step) String() string {
	switch s.Kind {
	case KindTransition:
		return fmt.Sprintf("%s:%s->%s", s.Kind, s.State, s.To)
	case KindTerminate:
		return fmt.Sprintf("%s:%d", s.Kind, s.Code)
	case KindMisuse:
		return s.Kind + ":" + s.Error
	default:
		return s.Kind + ":" + s.State
	}
}

// Trace is the document written by WriteYAML and WriteJSON.
type Trace struct {
	Machine string `yaml:"machine" json:"machine"`
	Steps   []Step `yaml:"steps" json:"steps"`
}

// RecorderOption configures a Recorder.
type RecorderOption func(*Recorder)

// WithLimit keeps only the last n steps. Zero keeps everything.
func WithLimit(n int) RecorderOption {
	return func(r *Recorder) {
		r.limit = n
	}
}

// WithoutRun skips run steps, which dominate long traces.
func WithoutRun() RecorderOption {
	return func(r *Recorder) {
		r.skipRun = true
	}
}

// Recorder collects engine events from hooks. It is safe to read from
// another goroutine while the machine runs.
type Recorder struct {
	mu      sync.Mutex
	machine string
	steps   []Step
	seq     int
	limit   int
	skipRun bool
}

// NewRecorder creates a recorder for the named machine.
func NewRecorder(machine string, opts ...RecorderOption) *Recorder {
	r := &Recorder{machine: machine}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Hooks returns hooks that feed the recorder.
func (r *Recorder) Hooks() smf.Hooks {
	h := smf.Hooks{
		OnEntry: func(s string) { r.add(Step{Kind: KindEntry, State: s}) },
		OnExit:  func(s string) { r.add(Step{Kind: KindExit, State: s}) },
		OnTransition: func(from, to string) {
			r.add(Step{Kind: KindTransition, State: from, To: to})
		},
		OnTerminate: func(code int32) { r.add(Step{Kind: KindTerminate, Code: code}) },
		OnMisuse:    func(err error) { r.add(Step{Kind: KindMisuse, Error: err.Error()}) },
	}
	if !r.skipRun {
		h.OnRun = func(s string) { r.add(Step{Kind: KindRun, State: s}) }
	}
	return h
}

func (r *Recorder) add(s Step) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	s.Seq = r.seq
	r.steps = append(r.steps, s)
	if r.limit > 0 && len(r.steps) > r.limit {
		r.steps = append(r.steps[:0], r.steps[len(r.steps)-r.limit:]...)
	}
}

// Steps returns a copy of the recorded steps.
func (r *Recorder) Steps() []Step {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Step, len(r.steps))
	copy(out, r.steps)
	return out
}

// Calls returns the entry, exit and run steps as "kind:state" strings.
func (r *Recorder) Calls() []string {
	var out []string
	for _, s := range r.Steps() {
		switch s.Kind {
		case KindEntry, KindExit, KindRun:
			out = append(out, s.String())
		}
	}
	return out
}

// Reset drops recorded steps. Sequence numbers keep counting.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.steps = nil
}

// Trace snapshots the recorder.
func (r *Recorder) Trace() Trace {
	return Trace{Machine: r.machine, Steps: r.Steps()}
}

// WriteYAML writes the trace as a YAML document.
func (r *Recorder) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r.Trace()); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}

// WriteJSON writes the trace as indented JSON.
func (r *Recorder) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r.Trace()); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}

// ReadTrace decodes a trace written by WriteYAML or WriteJSON.
func ReadTrace(rd io.Reader) (Trace, error) {
	var t Trace
	if err := yaml.NewDecoder(rd).Decode(&t); err != nil {
		return Trace{}, fmt.Errorf("yaml decode: %w", err)
	}
	return t, nil
}
