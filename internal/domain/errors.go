package domain

import "errors"

var (
	ErrSessionNotFound     = errors.New("session not found")
	ErrMeetupNotFound      = errors.New("meetup not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrUserNotFound        = errors.New("user not found")
)

var (
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrMissingParameter  = errors.New("missing parameter")
	ErrInvalidSelection  = errors.New("selected option is not among the current options")
	ErrInvalidTransition = errors.New("operation not allowed in the current negotiation state")
	ErrAlreadyResponded  = errors.New("participant has already responded")
	ErrAlreadyInvited    = errors.New("user is already invited to this meetup")
)

var (
	ErrUpstreamFailure = errors.New("recommendation source failure")
	ErrUserExists      = errors.New("user already registered")
)

var (
	ErrValidation = errors.New("validation error")
)

type Kind string

const (
	KindUnauthorized      Kind = "Unauthorized"
	KindNotFound          Kind = "NotFound"
	KindMissingParameter  Kind = "MissingParameter"
	KindInvalidSelection  Kind = "InvalidSelection"
	KindForbidden         Kind = "Forbidden"
	KindInvalidTransition Kind = "InvalidTransition"
	KindAlreadyResponded  Kind = "AlreadyResponded"
	KindConflict          Kind = "Conflict"
	KindValidation        Kind = "Validation"
	KindUpstreamFailure   Kind = "UpstreamFailure"
	KindInternal          Kind = "InternalError"
)

// KindOf classifies err into the stable error taxonomy exposed to clients.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnauthorized):
		return KindUnauthorized
	case errors.Is(err, ErrSessionNotFound),
		errors.Is(err, ErrMeetupNotFound),
		errors.Is(err, ErrParticipantNotFound),
		errors.Is(err, ErrUserNotFound):
		return KindNotFound
	case errors.Is(err, ErrMissingParameter):
		return KindMissingParameter
	case errors.Is(err, ErrInvalidSelection):
		return KindInvalidSelection
	case errors.Is(err, ErrForbidden):
		return KindForbidden
	case errors.Is(err, ErrInvalidTransition):
		return KindInvalidTransition
	case errors.Is(err, ErrAlreadyResponded):
		return KindAlreadyResponded
	case errors.Is(err, ErrAlreadyInvited), errors.Is(err, ErrUserExists):
		return KindConflict
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrUpstreamFailure):
		return KindUpstreamFailure
	default:
		return KindInternal
	}
}
