package supervisor

import "errors"

var (
	// ErrAlreadyRunning means this instance already owns a worker, or a
	// start or stop is in flight.
	ErrAlreadyRunning = errors.New("worker is already running")
	// ErrExternallyRunning is informational: a worker this instance did not
	// spawn is running, so Start did nothing.
	ErrExternallyRunning = errors.New("worker is already running outside this instance")
)
