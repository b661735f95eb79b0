package payout

import (
	"context"
	"net/url"
	"strings"

	"fieldbill.app/billing/model"
	"fieldbill.app/billing/processor"
)

// CreateOnboardingLink asks the processor for a fresh hosted onboarding URL.
// Nothing is read or written locally.
func (b *business) CreateOnboardingLink(ctx context.Context, accountID string) (string, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return "", model.ErrMissingIdentifier("account")
	}

	query := "?account=" + url.QueryEscape(accountID)
	link, err := b.processor.NewOnboardingLink(ctx, processor.OnboardingLinkParams{
		AccountID:  accountID,
		RefreshURL: b.apiBaseURL + "/stripe/connect/refresh" + query,
		ReturnURL:  b.apiBaseURL + "/stripe/connect/callback" + query,
	})
	if err != nil {
		return "", model.ErrUpstreamUnavailable("failed to create onboarding link")
	}

	return link, nil
}
