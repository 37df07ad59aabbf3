package errs

import (
	"errors"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrNoCopies           = errors.New("no copies available")
	ErrAlreadyReturned    = errors.New("record already returned")
	ErrAlreadyJoined      = errors.New("already joined challenge")
	ErrChallengeNotActive = errors.New("challenge is not active")
	ErrAlreadyModerated   = errors.New("review already moderated")
	ErrForbidden          = errors.New("operation not permitted for role")
)

type ValidationErrorResponse struct {
	Message string `json:"message"`
	Errors  struct {
		AdditionalProperties string `json:"additionalProperties"`
	} `json:"errors"`
}
