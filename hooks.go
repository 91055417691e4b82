package smf

// Hooks observe engine activity. Any field may be nil. Entry, exit and run
// hooks fire just before the matching callback, so hooks see actions in
// invocation order. States without a callback for the phase are still
// reported.
type Hooks struct {
	OnEntry      func(state string)
	OnExit       func(state string)
	OnRun        func(state string)
	OnTransition func(from, to string)
	OnTerminate  func(code int32)
	OnMisuse     func(err error)
}

func (c *config) entry(s string) {
	for i := range c.hooks {
		if h := c.hooks[i].OnEntry; h != nil {
			h(s)
		}
	}
}

func (c *config) exit(s string) {
	for i := range c.hooks {
		if h := c.hooks[i].OnExit; h != nil {
			h(s)
		}
	}
}

func (c *config) run(s string) {
	for i := range c.hooks {
		if h := c.hooks[i].OnRun; h != nil {
			h(s)
		}
	}
}

func (c *config) transition(from, to string) {
	for i := range c.hooks {
		if h := c.hooks[i].OnTransition; h != nil {
			h(from, to)
		}
	}
}

func (c *config) terminate(code int32) {
	for i := range c.hooks {
		if h := c.hooks[i].OnTerminate; h != nil {
			h(code)
		}
	}
}

func (c *config) misuse(err error) {
	for i := range c.hooks {
		if h := c.hooks[i].OnMisuse; h != nil {
			h(err)
		}
	}
}
