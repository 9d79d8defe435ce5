package domain

import "errors"

var (
	MessageFailedProcessRequest = "failed to process request"

	ErrInternalServer = errors.New("internal server error")
)
