package model

type CancelResult struct {
	CanceledImmediately bool   `json:"canceledImmediately"`
	Message             string `json:"message"`
}
