package client

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthenticated means no access token was available, or the API
	// refused the one that was sent.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrDataUnavailable covers transport failures and unusable responses.
	ErrDataUnavailable = errors.New("profile data unavailable")
	// ErrUpdateRejected is matched by every *UpdateRejectedError.
	ErrUpdateRejected = errors.New("profile update rejected")
)

// UpdateRejectedError is returned when the API refuses a submitted profile.
// Reason carries the server's message when it sent one.
type UpdateRejectedError struct {
	Status int
	Reason string
}

func (e *UpdateRejectedError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("profile update rejected (status %d)", e.Status)
	}
	return fmt.Sprintf("profile update rejected (status %d): %s", e.Status, e.Reason)
}

func (e *UpdateRejectedError) Is(target error) bool {
	return target == ErrUpdateRejected
}

// UserMessage turns a client error into text that can be shown on the profile
// page. It returns "" for a nil error.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var rejected *UpdateRejectedError
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return "Please sign in to view and edit your profile."
	case errors.As(err, &rejected):
		if rejected.Reason != "" {
			return "We couldn't save your profile: " + rejected.Reason
		}
		return "We couldn't save your profile. Please check your answers and try again."
	case errors.Is(err, ErrDataUnavailable):
		return "We couldn't reach our servers. Please try again later."
	default:
		return "Something went wrong. Please try again later."
	}
}
