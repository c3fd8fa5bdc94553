package hadoop

import (
	"context"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/atomic"
	"golang.org/x/xerrors"

	"github.com/ivanmladek/cloud-kepler/flow"
	"github.com/ivanmladek/cloud-kepler/flowerrors"
)

// JobState is the gateway's view of a job.
type JobState string

const (
	StatePrep      JobState = "PREP"
	StateRunning   JobState = "RUNNING"
	StateSucceeded JobState = "SUCCEEDED"
	StateFailed    JobState = "FAILED"
	StateKilled    JobState = "KILLED"
)

func (s JobState) IsFinished() bool {
	switch s {
	case StateSucceeded, StateFailed, StateKilled:
		return true
	}
	return false
}

type jobStatus struct {
	State JobState          `json:"state"`
	Error *flowerrors.Error `json:"error,omitempty"`
}

type handle struct {
	c  *Connector
	id flow.JobID

	done   atomic.Bool
	result atomic.Error
}

func (h *handle) ID() flow.JobID { return h.id }

// Wait polls the gateway until the job reaches a terminal state. The
// terminal result is cached, repeated calls do not hit the gateway.
func (h *handle) Wait(ctx context.Context) error {
	if h.done.Load() {
		return h.result.Load()
	}

	b := h.pollBackoff()
	for {
		status, err := h.status(ctx)
		if err != nil {
			return err
		}

		if status.State.IsFinished() {
			err := terminalError(status)
			h.result.Store(err)
			h.done.Store(true)
			return err
		}

		select {
		case <-time.After(b.NextBackOff()):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (h *handle) pollBackoff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = h.c.pollInterval
	b.MaxInterval = 15 * time.Second
	b.MaxElapsedTime = 0
	return b
}

func (h *handle) status(ctx context.Context) (*jobStatus, error) {
	var status jobStatus

	rsp, err := h.c.http.R().
		SetContext(ctx).
		SetResult(&status).
		Get(jobsPath + "/" + string(h.id))
	if err != nil {
		return nil, xerrors.Errorf("hadoop: status of job %s: %w", h.id, err)
	}

	if rsp.StatusCode() != http.StatusOK {
		return nil, decodeError(rsp)
	}

	return &status, nil
}

func terminalError(status *jobStatus) error {
	if status.State == StateSucceeded {
		return nil
	}

	if status.Error != nil {
		return status.Error
	}
	return flowerrors.Err(flowerrors.CodeJobFailed,
		"job finished in state "+string(status.State))
}
