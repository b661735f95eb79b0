package model

import (
	"time"
)

// UnnamedBusiness is shown to payers when the owner has not filled in a
// business name yet.
const UnnamedBusiness = "Your Contractor"

type ContractorProfile struct {
	ID                    string              `json:"id"`
	BusinessName          *string             `json:"business_name,omitempty"`
	ContactName           *string             `json:"contact_name,omitempty"`
	Email                 *string             `json:"email,omitempty"`
	Phone                 *string             `json:"phone,omitempty"`
	Address               *string             `json:"address,omitempty"`
	StripeAccountID       *string             `json:"stripe_account_id,omitempty"`
	PayoutsEnabled        bool                `json:"payouts_enabled"`
	ChargesEnabled        bool                `json:"charges_enabled"`
	Requirements          *Requirements       `json:"requirements,omitempty"`
	StripeCustomerID      *string             `json:"stripe_customer_id,omitempty"`
	SubscriptionID        *string             `json:"subscription_id,omitempty"`
	SubscriptionStatus    *SubscriptionStatus `json:"subscription_status,omitempty"`
	OnboardingCompletedAt *time.Time          `json:"onboarding_completed_at,omitempty"`
	CreatedAt             time.Time           `json:"created_at"`
	UpdatedAt             time.Time           `json:"updated_at"`
}

// ContractorDisplay is the subset of a profile shown on a public document.
type ContractorDisplay struct {
	BusinessName string  `json:"business_name"`
	ContactName  *string `json:"contact_name,omitempty"`
	Email        *string `json:"email,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Address      *string `json:"address,omitempty"`
}

type SubscriptionStatus string

const (
	SubscriptionStatusTrialing  SubscriptionStatus = "trialing"
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusPastDue   SubscriptionStatus = "past_due"
	SubscriptionStatusCanceling SubscriptionStatus = "canceling"
	SubscriptionStatusCanceled  SubscriptionStatus = "canceled"
)

// OnboardingState reports whether the contractor finished the first-run flow.
type OnboardingState struct {
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}
