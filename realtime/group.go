package realtime

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Runner is what a Group needs from a Runtime, whatever its machine type.
type Runner interface {
	ID() uuid.UUID
	Start(ctx context.Context) error
	Wait() (int32, error)
}

// ExitError reports a runtime whose machine terminated with a non-zero code.
type ExitError struct {
	Runtime uuid.UUID
	Code    int32
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("runtime %s: machine terminated with code %d", e.Runtime, e.Code)
}

// Group runs several runtimes side by side, each machine on its own goroutine.
type Group struct {
	runners []Runner
}

// Add registers runners. Call before Run.
func (g *Group) Add(r ...Runner) {
	g.runners = append(g.runners, r...)
}

// Run starts every runner and waits for all of them. The first runner that
// cannot start, fails, or terminates with a non-zero code cancels the others
// and its error is returned; a terminate code surfaces as *ExitError.
func (g *Group) Run(ctx context.Context) error {
	eg, gctx := errgroup.WithContext(ctx)
	for _, r := range g.runners {
		eg.Go(func() error {
			if err := r.Start(gctx); err != nil {
				return fmt.Errorf("start runtime %s: %w", r.ID(), err)
			}
			code, err := r.Wait()
			if err != nil {
				return fmt.Errorf("runtime %s: %w", r.ID(), err)
			}
			if code != 0 {
				return &ExitError{Runtime: r.ID(), Code: code}
			}
			return nil
		})
	}
	return eg.Wait()
}
