package types

import "errors"

// Store operation errors.
var (
	// ErrNotFound is returned by update and remove when no entry carries the
	// requested id. The collection is left untouched in that case.
	ErrNotFound = errors.New("entry not found")

	// ErrInvalidID is returned when an operation receives an empty id.
	ErrInvalidID = errors.New("invalid entry id")

	// ErrStorage wraps backend write failures on user-initiated mutations.
	// Callers surface it as a recoverable condition; the archive stays usable.
	ErrStorage = errors.New("storage error")
)

// Secondary collection errors.
var (
	// ErrReasonRequired is returned when a report is filed without a reason.
	ErrReasonRequired = errors.New("a reason is required to submit a report")

	// ErrInvalidEmail is returned when a subscription email fails the
	// local@domain.tld shape check.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrNotSubscribed is returned by unsubscribe when no matching
	// subscription exists.
	ErrNotSubscribed = errors.New("subscription not found")
)
