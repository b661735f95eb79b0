package workflow

const (
	// Signal names
	RecheckPayoutSignalName = "recheck-payout"
)

// RecheckPayoutSignal asks a running payout sync to reconcile now instead of waiting for its timer.
type RecheckPayoutSignal struct {
	Reason string `json:"reason"`
}
