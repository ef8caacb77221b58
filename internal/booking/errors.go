package booking

import "errors"

var (
	// ErrLinkInvalid indicates the booking link's service fetch failed:
	// the token is invalid, expired, or the server said so. Terminal for
	// the session; there is no fallback to the default service list.
	ErrLinkInvalid = errors.New("booking link invalid or expired")

	// ErrLinkUsed indicates the single-use booking link was already
	// consumed. Terminal but success-adjacent: the inquiry exists.
	ErrLinkUsed = errors.New("booking link already used")

	// ErrUnavailable indicates the booking server could not be reached.
	ErrUnavailable = errors.New("booking server unavailable")

	// ErrSubmitRejected indicates the server refused the submission for
	// a reason other than link reuse. The form stays on review for retry.
	ErrSubmitRejected = errors.New("submission rejected")
)
