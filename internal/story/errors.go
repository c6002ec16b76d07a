package story

import "errors"

// Graph and quiz validation errors.
var (
	ErrEmptyGraph          = errors.New("story has no scenes")
	ErrSceneIDMismatch     = errors.New("scene id does not match its position")
	ErrUnknownTarget       = errors.New("choice points to an unknown scene")
	ErrDeadEnd             = errors.New("non-terminal scene has no choices")
	ErrTerminalHasChoices  = errors.New("terminal scene has choices")
	ErrCycle               = errors.New("story graph contains a cycle")
	ErrUnreachableScene    = errors.New("scene is unreachable from the start scene")
	ErrEmptyQuiz           = errors.New("quiz has no questions")
	ErrInvalidCorrectIndex = errors.New("correct answer is out of option bounds")
)

// Play session errors. They are returned instead of mutating state.
var (
	ErrWrongPhase     = errors.New("operation is not allowed in the current phase")
	ErrInputLocked    = errors.New("input is locked while feedback is showing")
	ErrInvalidChoice  = errors.New("choice index is out of range")
	ErrUnknownScene   = errors.New("unknown scene")
	ErrNothingPending = errors.New("no transition is pending")
	ErrNotTerminal    = errors.New("current scene is not terminal")
)
