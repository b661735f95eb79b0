package processor

import (
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v76"
)

// wrapStripeError folds stripe errors into ErrNotFound or ErrUnavailable.
func wrapStripeError(op string, err error) error {
	if err == nil {
		return nil
	}

	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.Code == stripe.ErrorCodeResourceMissing {
		return fmt.Errorf("%s: %w: %s", op, ErrNotFound, stripeErr.Msg)
	}
	return fmt.Errorf("%s: %w: %v", op, ErrUnavailable, err)
}
