package processor

import (
	"context"
	"errors"

	"fieldbill.app/billing/model"
)

var (
	// ErrNotFound means the processor does not know the requested object.
	ErrNotFound = errors.New("processor: object not found")
	// ErrUnavailable wraps every other processor-side failure.
	ErrUnavailable = errors.New("processor: unavailable")
)

// Processor is the subset of the payment platform the billing service needs.
type Processor interface {
	// GetAccount retrieves a connected payout account.
	GetAccount(ctx context.Context, accountID string) (*Account, error)
	// NewOnboardingLink creates a time-limited hosted onboarding URL.
	NewOnboardingLink(ctx context.Context, params OnboardingLinkParams) (string, error)
	// GetCheckoutSession retrieves a checkout session to verify a payment.
	GetCheckoutSession(ctx context.Context, sessionID string) (*CheckoutSession, error)
	// CancelSubscription ends a subscription now.
	CancelSubscription(ctx context.Context, subscriptionID string) error
	// CancelSubscriptionAtPeriodEnd keeps access until the paid period ends.
	CancelSubscriptionAtPeriodEnd(ctx context.Context, subscriptionID string) error
	// NewBillingPortalSession creates a hosted subscription management session.
	NewBillingPortalSession(ctx context.Context, customerID, returnURL string) (string, error)
}

type Account struct {
	ID             string
	PayoutsEnabled bool
	ChargesEnabled bool
	Requirements   *model.Requirements
}

type OnboardingLinkParams struct {
	AccountID  string
	RefreshURL string
	ReturnURL  string
}

type CheckoutSession struct {
	ID         string
	Paid       bool
	DocumentID string
}
