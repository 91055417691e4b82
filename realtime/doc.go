// Package realtime drives an smf machine at a fixed tick rate on a single
// goroutine.
//
// The engine has no locks: whoever calls RunState owns the machine. A
// Runtime is that owner. Other goroutines talk to the machine only through
// Post, which queues a closure for the next tick boundary, and Do, which runs
// a closure between ticks and waits for it.
//
// # Example Usage
//
//	l := &Light{}
//	smf.Init(l, stopped)
//	rt := realtime.NewRuntime(l, realtime.Config{
//		TickRate: 10 * time.Millisecond,
//	})
//	rt.Start(ctx)
//	rt.Post(func(l *Light) { l.buttonPressed = true })
//	code, err := rt.Wait()
//
// # Tick order
//
// Each tick drains the queued posts (higher priority first, then FIFO by
// submission), runs them, then calls RunState once. The loop ends when the
// machine terminates, Stop is called, the context is cancelled or
// Config.MaxTicks ticks have run.
//
// A Group runs several runtimes and cancels all of them as soon as one fails
// or terminates with a non-zero code.
package realtime
