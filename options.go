package smf

import (
	"log/slog"

	"github.com/comalice/smf/internal/logging"
)

var discard = logging.NewNop()

type config struct {
	mode   Mode
	logger *slog.Logger
	hooks  []Hooks
}

func (c *config) log() *slog.Logger {
	if c.logger == nil {
		return discard
	}
	return c.logger
}

// Option configures a machine at Init. The resulting configuration is kept on
// the Ctx: a later Init without options reuses it, and a later Init with
// options starts over from the defaults.
type Option func(*config)

// WithMode selects flat or hierarchical semantics. Default HierarchicalInitial.
func WithMode(m Mode) Option {
	return func(c *config) {
		c.mode = m
	}
}

// WithLogger sets the logger used for misuse diagnostics and debug traces.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithHooks registers observability hooks. May be given more than once in
// the same Init; hooks fire in registration order.
func WithHooks(h Hooks) Option {
	return func(c *config) {
		c.hooks = append(c.hooks, h)
	}
}

// WithoutHooks drops the hooks registered by earlier options of the same
// Init. Init(obj, s, WithoutHooks()) restarts a machine without the hooks of
// its previous run.
func WithoutHooks() Option {
	return func(c *config) {
		c.hooks = nil
	}
}
