package equity

import "errors"

var (
	// ErrInvalidInput covers malformed cards, duplicates, player counts and
	// configuration errors. Nothing is computed.
	ErrInvalidInput = errors.New("invalid input")
	// ErrEmptyTrialSet means the trial source yielded no completions.
	ErrEmptyTrialSet = errors.New("empty trial set")
	// ErrOracleFailure means the oracle failed or panicked during a trial.
	// The run is abandoned without a partial result.
	ErrOracleFailure = errors.New("oracle failure")
)
