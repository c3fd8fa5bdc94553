package flow

import "context"

// JobID identifies a job accepted by the execution engine.
type JobID string

// Handle represents a running or queued job.
//
// The handle's lifecycle is owned by the caller; the job builder never
// waits on it.
type Handle interface {
	ID() JobID

	// Wait blocks until the job reaches a terminal state, returning
	// the engine's error when the job failed.
	Wait(ctx context.Context) error
}

// Connector sequences and executes flows.
//
// Connect submits the given flows for connected, ordered execution
// and returns a handle for the last of them. Engine rejections are
// returned verbatim, the connector performs no retries of failed
// submissions.
type Connector interface {
	Connect(ctx context.Context, flows ...*Flow) (Handle, error)
}
