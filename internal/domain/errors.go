package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrAuthIdentityCreationFailed is returned when the auth directory refuses to create an identity
	ErrAuthIdentityCreationFailed = errors.New("failed to create auth identity")

	// ErrProfileCreationFailed is returned when a user profile cannot be inserted
	ErrProfileCreationFailed = errors.New("failed to create user profile")

	// ErrWalletBindFailed is returned when every wallet binding tier failed
	ErrWalletBindFailed = errors.New("failed to bind wallet")

	// ErrMintGatewayFailed is returned when the mint provider call failed
	ErrMintGatewayFailed = errors.New("mint gateway failed")

	// ErrProfileNotFound is returned when a user profile does not exist
	ErrProfileNotFound = errors.New("profile not found")

	// ErrItemNotFound is returned when no resolution strategy located an item
	ErrItemNotFound = errors.New("item not found")

	// ErrNotForSale is returned when an item has no positive price
	ErrNotForSale = errors.New("item is not for sale")

	// ErrMissingMetadata is returned when an item has no metadata URL
	ErrMissingMetadata = errors.New("item has no metadata url")

	// ErrPaymentFailed is returned when the buyer payment transfer failed
	ErrPaymentFailed = errors.New("payment failed")

	// ErrOwnershipRecordFailed is returned when the ownership record cannot be written
	ErrOwnershipRecordFailed = errors.New("failed to record ownership")
)

// ErrorKind classifies an error so callers can map it to a response without string matching
type ErrorKind string

const (
	ErrorKindValidation      ErrorKind = "validation"
	ErrorKindNotFound        ErrorKind = "not_found"
	ErrorKindNotForSale      ErrorKind = "not_for_sale"
	ErrorKindMissingMetadata ErrorKind = "missing_metadata"
	ErrorKindPaymentFailed   ErrorKind = "payment_failed"
	ErrorKindUpstream        ErrorKind = "upstream"
	ErrorKindTransport       ErrorKind = "transport"
	ErrorKindCertificate     ErrorKind = "certificate"
	ErrorKindPersistence     ErrorKind = "persistence"
	ErrorKindProfileNotFound ErrorKind = "profile_not_found"
	ErrorKindInternal        ErrorKind = "internal"
)

// Error is an error tagged with a kind and the operation that produced it
type Error struct {
	Kind    ErrorKind
	Op      string
	Message string
	Err     error
}

// NewError creates a tagged error
func NewError(kind ErrorKind, op string, message string, err error) *Error {
	return &Error{Kind: kind, Op: op, Message: message, Err: err}
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	} else if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Op == "" {
		return msg
	}
	return fmt.Sprintf("%s: %s", e.Op, msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first tagged error in the chain.
// Untagged errors are internal.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	var tagged *Error
	if errors.As(err, &tagged) {
		return tagged.Kind
	}
	return ErrorKindInternal
}

// MessageOf returns the user facing message of the first tagged error in the chain
func MessageOf(err error) string {
	var tagged *Error
	if errors.As(err, &tagged) && tagged.Message != "" {
		return tagged.Message
	}
	return err.Error()
}
