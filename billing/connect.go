package billing

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"encore.dev/rlog"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"fieldbill.app/billing/apierr"
	"fieldbill.app/billing/model"
	"fieldbill.app/billing/workflow"
)

const (
	stripeStatusParam = "stripe_status"
	stripeErrorParam  = "stripe_error"
)

type PayoutStatusParams struct {
	ContractorID string `query:"contractorId" validate:"required"`
}

type PayoutStatusResponse struct {
	Connected      bool                `json:"connected"`
	AccountID      *string             `json:"accountId,omitempty"`
	PayoutsEnabled bool                `json:"payoutsEnabled"`
	ChargesEnabled bool                `json:"chargesEnabled"`
	Requirements   *model.Requirements `json:"requirements"`
	Message        string              `json:"message"`
	Cached         bool                `json:"cached,omitempty"`
}

// ConnectCallback is where the processor's hosted onboarding sends the
// contractor back to. It always answers with a redirect to the profile page.
//
//encore:api public raw method=GET path=/stripe/connect/callback
func (s *Service) ConnectCallback(w http.ResponseWriter, req *http.Request) {
	defer s.recoverToProfile(w, req, "callback_failed")

	accountID := strings.TrimSpace(req.URL.Query().Get("account"))
	if accountID == "" {
		s.redirectToProfile(w, req, stripeErrorParam, "missing_account")
		return
	}

	outcome, err := s.payouts.ReconcileAccount(req.Context(), accountID)
	if err != nil {
		rlog.Error("failed to reconcile payout account on callback", "error", err, "account_id", accountID)
		s.redirectToProfile(w, req, stripeErrorParam, "callback_failed")
		return
	}

	rlog.Info("payout account reconciled", "account_id", accountID, "contractor_id", outcome.ContractorID, "status", outcome.Status)

	if outcome.Status != model.OnboardingComplete {
		runAsync("start_payout_sync", func(ctx context.Context) error {
			return s.startPayoutSyncWorkflow(ctx, accountID)
		})
	}

	s.redirectToProfile(w, req, stripeStatusParam, string(outcome.Status))
}

// ConnectRefresh replaces an expired onboarding link with a fresh one.
//
//encore:api public raw method=GET path=/stripe/connect/refresh
func (s *Service) ConnectRefresh(w http.ResponseWriter, req *http.Request) {
	defer s.recoverToProfile(w, req, "refresh_failed")

	accountID := strings.TrimSpace(req.URL.Query().Get("account"))
	if accountID == "" {
		s.redirectToProfile(w, req, stripeErrorParam, "missing_account")
		return
	}

	link, err := s.payouts.CreateOnboardingLink(req.Context(), accountID)
	if err != nil {
		rlog.Error("failed to refresh onboarding link", "error", err, "account_id", accountID)
		s.redirectToProfile(w, req, stripeErrorParam, "refresh_failed")
		return
	}

	http.Redirect(w, req, link, http.StatusFound)
}

//encore:api public method=GET path=/stripe/connect/status
func (s *Service) GetPayoutStatus(ctx context.Context, params *PayoutStatusParams) (*PayoutStatusResponse, error) {
	status, err := s.payouts.GetStatus(ctx, params.ContractorID)
	if err != nil {
		rlog.Error("failed to get payout status", "error", err, "contractor_id", params.ContractorID)
		return nil, apierr.Public(err)
	}

	if status.Warning != nil {
		rlog.Warn("payout status degraded", "error", status.Warning, "contractor_id", params.ContractorID, "cached", status.Cached)
	}

	return &PayoutStatusResponse{
		Connected:      status.Connected,
		AccountID:      status.AccountID,
		PayoutsEnabled: status.PayoutsEnabled,
		ChargesEnabled: status.ChargesEnabled,
		Requirements:   status.Requirements,
		Message:        status.Message,
		Cached:         status.Cached,
	}, nil
}

func (p *PayoutStatusParams) Validate() error {
	p.ContractorID = strings.TrimSpace(p.ContractorID)
	if err := validate.Struct(p); err != nil {
		return apierr.Public(model.ErrMissingIdentifier("contractorId"))
	}
	return nil
}

// startPayoutSyncWorkflow starts polling the account until it is fully enabled.
// A poll already running for the account is nudged to check now instead.
func (s *Service) startPayoutSyncWorkflow(ctx context.Context, accountID string) error {
	if s.temporal == nil {
		rlog.Warn("payout sync disabled, account left for the next sweep", "account_id", accountID)
		return nil
	}

	workflowID := workflow.PayoutSyncWorkflowID(accountID)

	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: taskQueue,
	}

	params := workflow.PayoutSyncParams{
		AccountID:    accountID,
		PollInterval: s.syncPollInterval,
		MaxAttempts:  s.syncMaxAttempts,
	}

	_, err := s.temporal.ExecuteWorkflow(ctx, options, workflow.PayoutSync, params)
	if err != nil {
		if temporal.IsWorkflowExecutionAlreadyStartedError(err) {
			rlog.Info("payout sync already running", "account_id", accountID, "workflow_id", workflowID)
			signal := workflow.RecheckPayoutSignal{Reason: "onboarding_callback"}
			if sigErr := s.temporal.SignalWorkflow(ctx, workflowID, "", workflow.RecheckPayoutSignalName, signal); sigErr != nil {
				return fmt.Errorf("signal workflow %s: %w", workflowID, sigErr)
			}
			return nil
		}
		return fmt.Errorf("execute workflow %s: %w", workflowID, err)
	}
	return nil
}

func (s *Service) redirectToProfile(w http.ResponseWriter, req *http.Request, key, value string) {
	target := s.appBaseURL + "/profile?" + url.Values{key: []string{value}}.Encode()
	http.Redirect(w, req, target, http.StatusFound)
}

func (s *Service) recoverToProfile(w http.ResponseWriter, req *http.Request, code string) {
	if r := recover(); r != nil {
		rlog.Error("connect redirect panicked", "panic", fmt.Sprint(r), "path", req.URL.Path)
		s.redirectToProfile(w, req, stripeErrorParam, code)
	}
}
