// Package hadoop implements the flow submission port for a
// Hadoop-streaming gateway exposing an HTTP job API.
package hadoop

import (
	"context"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/xerrors"

	"github.com/ivanmladek/cloud-kepler/flow"
	"github.com/ivanmladek/cloud-kepler/flowerrors"
)

const (
	jobsPath = "/api/v1/jobs"

	defaultRequestTimeout = 30 * time.Second
	defaultPollInterval   = time.Second
)

type Connector struct {
	http         *resty.Client
	l            *zap.Logger
	pollInterval time.Duration
}

type Option func(c *Connector)

func WithLogger(l *zap.Logger) Option {
	return func(c *Connector) {
		c.l = l
	}
}

func WithRequestTimeout(timeout time.Duration) Option {
	return func(c *Connector) {
		c.http.SetTimeout(timeout)
	}
}

// WithPollInterval sets the initial interval between job status
// polls. Intervals back off exponentially from there.
func WithPollInterval(interval time.Duration) Option {
	return func(c *Connector) {
		c.pollInterval = interval
	}
}

// NewConnector creates a connector talking to the gateway at gatewayURL.
func NewConnector(gatewayURL string, opts ...Option) *Connector {
	c := &Connector{
		http: resty.New().
			SetBaseURL(gatewayURL).
			SetTimeout(defaultRequestTimeout),
		l:            zap.NewNop(),
		pollInterval: defaultPollInterval,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

var _ flow.Connector = (*Connector)(nil)

type jobRequest struct {
	Name string   `json:"name"`
	Args []string `json:"args"`
}

type jobResponse struct {
	ID flow.JobID `json:"job_id"`
}

// Connect submits the flows one after another: each flow is handed to
// the gateway only after the previous one reached a terminal success
// state. The returned handle tracks the last flow. Submission itself
// is a single POST with no retries; rejections come back verbatim.
func (c *Connector) Connect(ctx context.Context, flows ...*flow.Flow) (flow.Handle, error) {
	if len(flows) == 0 {
		return nil, xerrors.New("hadoop: empty flow collection")
	}

	var h *handle
	for i, f := range flows {
		if i > 0 {
			if err := h.Wait(ctx); err != nil {
				return nil, err
			}
		}

		var err error
		if h, err = c.submit(ctx, f); err != nil {
			return nil, err
		}
	}

	return h, nil
}

func (c *Connector) submit(ctx context.Context, f *flow.Flow) (*handle, error) {
	var res jobResponse

	rsp, err := c.http.R().
		SetContext(ctx).
		SetBody(jobRequest{Name: f.Name, Args: f.Spec.Args()}).
		SetResult(&res).
		Post(jobsPath)
	if err != nil {
		return nil, xerrors.Errorf("hadoop: submit %q: %w", f.Name, err)
	}

	if rsp.StatusCode() != http.StatusOK {
		return nil, decodeError(rsp)
	}

	if res.ID == "" {
		return nil, xerrors.Errorf("hadoop: gateway accepted %q without a job id", f.Name)
	}

	c.l.Info("flow submitted",
		zap.String("flow", f.Name),
		zap.String("job_id", string(res.ID)))

	return &handle{c: c, id: res.ID}, nil
}

func decodeError(rsp *resty.Response) error {
	if header := rsp.Header().Get("X-Flow-Error"); header != "" {
		if flowErr, err := flowerrors.DecodeHeader(header); err == nil {
			return flowErr
		}
	}

	return &flowerrors.HTTPError{
		StatusCode: rsp.StatusCode(),
		Err:        xerrors.New(string(rsp.Body())),
	}
}
