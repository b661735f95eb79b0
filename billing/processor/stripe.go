package processor

import (
	"context"
	"net/http"
	"time"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"fieldbill.app/billing/model"
)

// DocumentMetadataKey is the checkout session metadata key that carries the
// id of the invoice being paid.
const DocumentMetadataKey = "invoice_id"

type Options struct {
	// Timeout bounds a single HTTP round trip to the processor.
	Timeout time.Duration
	// ReadRetries is the retry budget for idempotent reads. Mutations are
	// never retried.
	ReadRetries int64
	// BaseURL overrides the API endpoint, used by tests.
	BaseURL string
}

func DefaultOptions() Options {
	return Options{
		Timeout:     10 * time.Second,
		ReadRetries: 2,
	}
}

// StripeProcessor implements Processor on top of two stripe clients: one for
// reads that may be retried and one for writes that must not be.
type StripeProcessor struct {
	reads  *client.API
	writes *client.API
}

var _ Processor = (*StripeProcessor)(nil)

func NewStripeProcessor(apiKey string, opts Options) *StripeProcessor {
	return &StripeProcessor{
		reads:  newClient(apiKey, opts, opts.ReadRetries),
		writes: newClient(apiKey, opts, 0),
	}
}

func newClient(apiKey string, opts Options, retries int64) *client.API {
	cfg := &stripe.BackendConfig{
		HTTPClient:        &http.Client{Timeout: opts.Timeout},
		MaxNetworkRetries: stripe.Int64(retries),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelError},
	}
	if opts.BaseURL != "" {
		cfg.URL = stripe.String(opts.BaseURL)
	}

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, cfg)

	var api client.API
	api.Init(apiKey, &stripe.Backends{
		API:     backend,
		Connect: backend,
		Uploads: backend,
	})
	return &api
}

func (p *StripeProcessor) GetAccount(ctx context.Context, accountID string) (*Account, error) {
	params := &stripe.AccountParams{}
	params.Context = ctx

	acct, err := p.reads.Accounts.GetByID(accountID, params)
	if err != nil {
		return nil, wrapStripeError("get account", err)
	}

	return &Account{
		ID:             acct.ID,
		PayoutsEnabled: acct.PayoutsEnabled,
		ChargesEnabled: acct.ChargesEnabled,
		Requirements:   requirementsFromStripe(acct.Requirements),
	}, nil
}

func (p *StripeProcessor) NewOnboardingLink(ctx context.Context, linkParams OnboardingLinkParams) (string, error) {
	params := &stripe.AccountLinkParams{
		Account:    stripe.String(linkParams.AccountID),
		RefreshURL: stripe.String(linkParams.RefreshURL),
		ReturnURL:  stripe.String(linkParams.ReturnURL),
		Type:       stripe.String("account_onboarding"),
	}
	params.Context = ctx

	link, err := p.writes.AccountLinks.New(params)
	if err != nil {
		return "", wrapStripeError("create account link", err)
	}
	return link.URL, nil
}

func (p *StripeProcessor) GetCheckoutSession(ctx context.Context, sessionID string) (*CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	sess, err := p.reads.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		return nil, wrapStripeError("get checkout session", err)
	}

	return &CheckoutSession{
		ID:         sess.ID,
		Paid:       sess.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
		DocumentID: sessionDocumentID(sess),
	}, nil
}

func (p *StripeProcessor) CancelSubscription(ctx context.Context, subscriptionID string) error {
	params := &stripe.SubscriptionCancelParams{}
	params.Context = ctx

	_, err := p.writes.Subscriptions.Cancel(subscriptionID, params)
	return wrapStripeError("cancel subscription", err)
}

func (p *StripeProcessor) CancelSubscriptionAtPeriodEnd(ctx context.Context, subscriptionID string) error {
	params := &stripe.SubscriptionParams{
		CancelAtPeriodEnd: stripe.Bool(true),
	}
	params.Context = ctx

	_, err := p.writes.Subscriptions.Update(subscriptionID, params)
	return wrapStripeError("schedule subscription cancellation", err)
}

func (p *StripeProcessor) NewBillingPortalSession(ctx context.Context, customerID, returnURL string) (string, error) {
	params := &stripe.BillingPortalSessionParams{
		Customer:  stripe.String(customerID),
		ReturnURL: stripe.String(returnURL),
	}
	params.Context = ctx

	sess, err := p.writes.BillingPortalSessions.New(params)
	if err != nil {
		return "", wrapStripeError("create billing portal session", err)
	}
	return sess.URL, nil
}

func requirementsFromStripe(r *stripe.AccountRequirements) *model.Requirements {
	if r == nil {
		return nil
	}
	return &model.Requirements{
		CurrentlyDue:   nonNil(r.CurrentlyDue),
		EventuallyDue:  nonNil(r.EventuallyDue),
		PastDue:        nonNil(r.PastDue),
		DisabledReason: string(r.DisabledReason),
	}
}

// sessionDocumentID prefers explicit metadata and falls back to the client
// reference id set by the checkout flow.
func sessionDocumentID(sess *stripe.CheckoutSession) string {
	if id := sess.Metadata[DocumentMetadataKey]; id != "" {
		return id
	}
	return sess.ClientReferenceID
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
