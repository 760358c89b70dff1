package mdi

import "errors"

var (
	// ErrInvalidArgument reports a nil, foreign or out-of-range argument. The
	// call that returns it has not mutated the frame.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrVetoed reports a desktop transition rejected by the veto hook.
	ErrVetoed = errors.New("transition vetoed")
)
