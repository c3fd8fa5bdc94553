package flowerrors

import (
	"encoding/json"
	"fmt"

	"golang.org/x/xerrors"
)

// DecodeHeader decodes an engine error transferred in an HTTP
// response header.
func DecodeHeader(header string) (*Error, error) {
	e := &Error{}
	if err := json.Unmarshal([]byte(header), e); err != nil {
		return nil, xerrors.Errorf("flowerrors: malformed error header: %w", err)
	}

	return e, nil
}

// HTTPError is an error received from the streaming gateway's HTTP front.
type HTTPError struct {
	StatusCode int
	Err        error
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http error (code: %d): %s", e.StatusCode, e.Err.Error())
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

var _ error = &HTTPError{}
