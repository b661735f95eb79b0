// Package apierr turns business errors into Encore API errors.
package apierr

import (
	"errors"

	"encore.dev/beta/errs"

	"fieldbill.app/billing/model"
)

// Details is attached to every API error built from a business error so
// clients can branch on the kind without parsing messages.
type Details struct {
	Kind   model.ErrorKind `json:"kind"`
	Status string          `json:"status,omitempty"`
}

func (Details) ErrDetails() {}

var codes = map[model.ErrorKind]errs.ErrCode{
	model.KindNotFound:             errs.NotFound,
	model.KindInvalidDocumentType:  errs.InvalidArgument,
	model.KindMissingIdentifier:    errs.InvalidArgument,
	model.KindAlreadyFinalized:     errs.FailedPrecondition,
	model.KindAlreadyCanceling:     errs.FailedPrecondition,
	model.KindPaymentNotVerified:   errs.FailedPrecondition,
	model.KindNoActiveSubscription: errs.NotFound,
	model.KindUpstreamUnavailable:  errs.Unavailable,
	model.KindPersistenceFailure:   errs.Internal,
	model.KindConflict:             errs.Aborted,
}

// Code returns the API code for a business error kind.
func Code(kind model.ErrorKind) errs.ErrCode {
	if code, ok := codes[kind]; ok {
		return code
	}
	return errs.Internal
}

// Public converts err for an API response. Business errors keep their
// message and kind, API errors pass through and anything else is reported
// as a generic internal error. The original should be logged by the caller.
func Public(err error) error {
	if err == nil {
		return nil
	}

	var be *model.Error
	if errors.As(err, &be) {
		return errs.B().
			Cause(be).
			Code(Code(be.Kind)).
			Msg(be.Message).
			Details(Details{Kind: be.Kind, Status: be.Status}).
			Err()
	}

	var e *errs.Error
	if errors.As(err, &e) {
		return e
	}
	return &errs.Error{Code: errs.Internal, Message: "internal error"}
}
