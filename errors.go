package smf

import "errors"

// Misuse errors. The engine never returns them: they are logged and handed
// to Hooks.OnMisuse, and the offending call is ignored.
var (
	ErrNilState       = errors.New("smf: state cannot be nil")
	ErrSetStateInExit = errors.New("smf: set state called from an exit action")
	ErrNotInitialized = errors.New("smf: machine not initialized")
	ErrTerminated     = errors.New("smf: machine terminated")
)

// Graph errors returned by Validate and the builders.
var (
	ErrCycle          = errors.New("smf: parent chain does not terminate")
	ErrInvalidInitial = errors.New("smf: initial is not a descendant")
	ErrUnknownState   = errors.New("smf: unknown state")
)
