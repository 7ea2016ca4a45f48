package model

import "errors"

// Reference-data errors fail fast: no safe default exists for an
// unknown chain or token. External lookup and simulation failures are
// degradable instead and never surface through these.
var (
	ErrUnknownChain = errors.New("unknown chain id")
	ErrUnknownToken = errors.New("unknown token")
)
