package model

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failure independently of its HTTP code.
type ErrorKind string

const (
	KindNotFound             ErrorKind = "not_found"
	KindInvalidDocumentType  ErrorKind = "invalid_document_type"
	KindAlreadyFinalized     ErrorKind = "already_finalized"
	KindAlreadyCanceling     ErrorKind = "already_canceling"
	KindPaymentNotVerified   ErrorKind = "payment_not_verified"
	KindMissingIdentifier    ErrorKind = "missing_identifier"
	KindUpstreamUnavailable  ErrorKind = "upstream_unavailable"
	KindPersistenceFailure   ErrorKind = "persistence_failure"
	KindNoActiveSubscription ErrorKind = "no_active_subscription"
	KindConflict             ErrorKind = "conflict"
)

// Error is a business failure. Message is safe to show to callers.
// It is turned into an API error at the service boundary only, so the
// business packages stay usable from plain binaries.
type Error struct {
	Kind    ErrorKind
	Status  string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// KindOf returns the kind of err, or "" if err is not a business error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func ErrNotFound(entity string) error {
	return &Error{Kind: KindNotFound, Message: entity + " not found"}
}

func ErrInvalidDocumentType(expected DocumentType) error {
	return &Error{
		Kind:    KindInvalidDocumentType,
		Message: fmt.Sprintf("only %ss support this operation", expected),
	}
}

func ErrAlreadyFinalized(status DocumentStatus) error {
	return &Error{
		Kind:    KindAlreadyFinalized,
		Status:  string(status),
		Message: fmt.Sprintf("document has already been %s", status),
	}
}

func ErrPaymentNotVerified(message string) error {
	return &Error{Kind: KindPaymentNotVerified, Message: message}
}

func ErrMissingIdentifier(name string) error {
	return &Error{Kind: KindMissingIdentifier, Message: name + " is required"}
}

func ErrUpstreamUnavailable(message string) error {
	return &Error{Kind: KindUpstreamUnavailable, Message: message}
}

func ErrPersistenceFailure(message string) error {
	return &Error{Kind: KindPersistenceFailure, Message: message}
}

func ErrNoActiveSubscription() error {
	return &Error{Kind: KindNoActiveSubscription, Message: "no active subscription found"}
}

func ErrConflict(message string) error {
	return &Error{Kind: KindConflict, Message: message}
}

// ErrAlreadyCanceling is returned for a repeated period-end cancel. The
// subscription is still live, so this is not a terminal state.
func ErrAlreadyCanceling() error {
	return &Error{
		Kind:    KindAlreadyCanceling,
		Status:  string(SubscriptionStatusCanceling),
		Message: "subscription is already scheduled to cancel at period end",
	}
}
