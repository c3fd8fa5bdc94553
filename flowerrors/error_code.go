package flowerrors

import "fmt"

const (
	CodeOK       ErrorCode = 0
	CodeGeneric  ErrorCode = 1
	CodeCanceled ErrorCode = 2
	CodeTimeout  ErrorCode = 3

	CodeTransportError ErrorCode = 100

	CodeNoSuchJob       ErrorCode = 200
	CodeInvalidJobState ErrorCode = 201
	CodeTooManyJobs     ErrorCode = 202

	CodeBadJobDescription ErrorCode = 300
	CodeUnresolvableTap   ErrorCode = 301

	CodeJobFailed ErrorCode = 310
)

var errorCodeNames = map[ErrorCode]string{
	CodeOK:                "OK",
	CodeGeneric:           "Generic",
	CodeCanceled:          "Canceled",
	CodeTimeout:           "Timeout",
	CodeTransportError:    "TransportError",
	CodeNoSuchJob:         "NoSuchJob",
	CodeInvalidJobState:   "InvalidJobState",
	CodeTooManyJobs:       "TooManyJobs",
	CodeBadJobDescription: "BadJobDescription",
	CodeUnresolvableTap:   "UnresolvableTap",
	CodeJobFailed:         "JobFailed",
}

func (e ErrorCode) String() string {
	if name, ok := errorCodeNames[e]; ok {
		return name
	}
	return fmt.Sprintf("UnknownCode%d", int(e))
}
