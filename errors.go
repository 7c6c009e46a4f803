package main

import "fmt"

// TimeoutError signals that the webhook did not answer before the configured
// timeout elapsed. The workflow may still be executing the task remotely.
type TimeoutError struct {
	Err error
}

func (e *TimeoutError) Error() string {
	return "request timed out - autonomous execution may still be running"
}

func (e *TimeoutError) Unwrap() error { return e.Err }

// TransportError covers every transport-level failure that is not a timeout:
// connection refused, DNS failure, or a non-success HTTP status.
type TransportError struct {
	Err        error
	StatusCode int
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("failed to execute programming task: webhook returned HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("failed to execute programming task: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// InvalidResponseError signals that the webhook answered with a body that is
// not valid JSON.
type InvalidResponseError struct {
	Err error
}

func (e *InvalidResponseError) Error() string {
	return "invalid JSON response from workflow"
}

func (e *InvalidResponseError) Unwrap() error { return e.Err }
