package absence

import "errors"

var (
	ErrRequestNotFound         = errors.New("absence request not found")
	ErrRequestAlreadyProcessed = errors.New("absence request already processed")
	ErrInvalidRequestSpan      = errors.New("request end date cannot precede start date")
)
