package port

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrForbidden           = errors.New("forbidden")
	ErrUnauthenticated     = errors.New("not authenticated")
	ErrInvalidCredentials  = errors.New("invalid username")
	ErrInvalidRole         = errors.New("invalid role")
	ErrInvalidStatus       = errors.New("invalid review status")
	ErrDuplicateSubmission = errors.New("creator already submitted to this campaign")
	ErrCampaignNotActive   = errors.New("campaign is not active")
	ErrPersist             = errors.New("persist state")
)
