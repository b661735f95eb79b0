package model

// Requirements is the processor's list of outstanding verification items.
type Requirements struct {
	CurrentlyDue   []string `json:"currently_due"`
	EventuallyDue  []string `json:"eventually_due"`
	PastDue        []string `json:"past_due"`
	DisabledReason string   `json:"disabled_reason,omitempty"`
}

// HasOutstanding reports whether anything is currently or eventually due.
func (r *Requirements) HasOutstanding() bool {
	if r == nil {
		return false
	}
	return len(r.CurrentlyDue) > 0 || len(r.EventuallyDue) > 0
}

// OnboardingStatus is the value of the stripe_status redirect parameter.
type OnboardingStatus string

const (
	OnboardingComplete   OnboardingStatus = "complete"
	OnboardingPending    OnboardingStatus = "pending"
	OnboardingProcessing OnboardingStatus = "processing"
)

// OnboardingOutcome is the result of reconciling one payout account.
type OnboardingOutcome struct {
	AccountID      string           `json:"account_id"`
	ContractorID   string           `json:"contractor_id"`
	PayoutsEnabled bool             `json:"payouts_enabled"`
	ChargesEnabled bool             `json:"charges_enabled"`
	Status         OnboardingStatus `json:"status"`
}

// OutcomeStatus picks the redirect status: both flags beat outstanding
// requirements, which beat "processing".
func OutcomeStatus(payoutsEnabled, chargesEnabled bool, req *Requirements) OnboardingStatus {
	switch {
	case payoutsEnabled && chargesEnabled:
		return OnboardingComplete
	case req.HasOutstanding():
		return OnboardingPending
	default:
		return OnboardingProcessing
	}
}

// PayoutStatus is the on-demand view of a contractor's payout account.
type PayoutStatus struct {
	Connected      bool          `json:"connected"`
	AccountID      *string       `json:"accountId,omitempty"`
	PayoutsEnabled bool          `json:"payoutsEnabled"`
	ChargesEnabled bool          `json:"chargesEnabled"`
	Requirements   *Requirements `json:"requirements"`
	Message        string        `json:"message"`
	Cached         bool          `json:"cached,omitempty"`

	// Warning carries a swallowed upstream or write-back failure for logging.
	Warning error `json:"-"`
}

// ReconcileResult is one row of a reconciliation sweep.
type ReconcileResult struct {
	ContractorID string             `json:"contractor_id"`
	AccountID    string             `json:"account_id"`
	Outcome      *OnboardingOutcome `json:"outcome,omitempty"`
	Error        string             `json:"error,omitempty"`
}
