package models

import "errors"

// Request-level failures. These are recovered at the interface boundary and
// reported to the caller as a structured error; store state is left unchanged.
var (
	ErrUnknownGame   = errors.New("unknown game")
	ErrGameNotReady  = errors.New("game teams are not resolved yet")
	ErrInvalidWinner = errors.New("winner is not one of the game's teams")
	ErrMalformedPick = errors.New("pick does not name either team of the game")
	ErrUnknownUser   = errors.New("unknown user")
)
