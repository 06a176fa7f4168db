package settings

import (
	"errors"
	"fmt"
)

// Standard store error types. Every store method reports expected failures
// with one of these, wrapped in an *Error.
var (
	// ErrProfileNotFound indicates no profile exists for the given id.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrAutomationStateNotFound indicates the profile has no automation state.
	ErrAutomationStateNotFound = errors.New("automation state not found")

	// ErrBestSellerNotFound indicates the item id is not in the profile's best sellers.
	ErrBestSellerNotFound = errors.New("best seller item not found")

	// ErrTargetNotFound indicates the target id is not in the profile's target list.
	ErrTargetNotFound = errors.New("target not found")

	// ErrCannotDeleteLastProfile indicates a delete that would leave the store empty.
	ErrCannotDeleteLastProfile = errors.New("cannot delete the last profile")
)

// Error wraps a store error with the operation and keys involved.
type Error struct {
	Op        string // Operation being performed (e.g. "UpdateBestSellerItem")
	ProfileID string
	ItemID    string // Nested record id if applicable
	Err       error
}

func (e *Error) Error() string {
	if e.ItemID != "" {
		return fmt.Sprintf("%s failed for item %s in profile %s: %v", e.Op, e.ItemID, e.ProfileID, e.Err)
	}

	return fmt.Sprintf("%s failed for profile %s: %v", e.Op, e.ProfileID, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	return errors.Is(e.Err, target)
}

func newError(op, profileID string, err error) *Error {
	return &Error{Op: op, ProfileID: profileID, Err: err}
}

func newItemError(op, profileID, itemID string, err error) *Error {
	return &Error{Op: op, ProfileID: profileID, ItemID: itemID, Err: err}
}

// IsNotFound reports whether err means a profile, state or nested record could not be resolved.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrProfileNotFound) ||
		errors.Is(err, ErrAutomationStateNotFound) ||
		errors.Is(err, ErrBestSellerNotFound) ||
		errors.Is(err, ErrTargetNotFound)
}

// IsPreconditionFailed reports whether err rejects an operation that would break a store invariant.
func IsPreconditionFailed(err error) bool {
	return errors.Is(err, ErrCannotDeleteLastProfile)
}
