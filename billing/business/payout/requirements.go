package payout

import (
	"encoding/json"

	"fieldbill.app/billing/model"
)

func encodeRequirements(req *model.Requirements) ([]byte, error) {
	if req == nil {
		return nil, nil
	}
	return json.Marshal(req)
}

// decodeRequirements treats an empty or unreadable snapshot as "nothing known".
func decodeRequirements(raw []byte) *model.Requirements {
	if len(raw) == 0 {
		return nil
	}
	var req model.Requirements
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil
	}
	return &req
}

func statusMessage(status model.OnboardingStatus) string {
	switch status {
	case model.OnboardingComplete:
		return "Stripe account fully set up"
	case model.OnboardingPending:
		return "Additional information required"
	default:
		return "Stripe account verification in progress"
	}
}
