package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"fieldbill.app/billing/model"
	"fieldbill.app/internal/logger"
)

func newPayoutsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payouts",
		Short: "Inspect and reconcile contractor payout accounts",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "status <contractor-id>",
		Short: "Show the live payout status of a contractor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPayoutStatus(cmd, a, args[0])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "sweep",
		Short: "Reconcile every connected payout account",
		Example: `  # Refresh cached capability flags for all contractors
  billingctl payouts sweep`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPayoutSweep(cmd, a)
		},
	})

	return cmd
}

func runPayoutStatus(cmd *cobra.Command, a *app, contractorID string) error {
	log := logger.WithComponent("payouts")

	status, err := a.payouts.GetStatus(cmd.Context(), contractorID)
	if err != nil {
		return fmt.Errorf("get payout status: %w", err)
	}
	if status.Warning != nil {
		log.Warn().Err(status.Warning).Str("contractor_id", contractorID).Bool("cached", status.Cached).Msg("payout status degraded")
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "connected\t%t\n", status.Connected)
	if status.AccountID != nil {
		fmt.Fprintf(w, "account\t%s\n", *status.AccountID)
	}
	fmt.Fprintf(w, "payouts enabled\t%t\n", status.PayoutsEnabled)
	fmt.Fprintf(w, "charges enabled\t%t\n", status.ChargesEnabled)
	if status.Requirements != nil && status.Requirements.HasOutstanding() {
		due := append(append([]string{}, status.Requirements.CurrentlyDue...), status.Requirements.EventuallyDue...)
		fmt.Fprintf(w, "requirements\t%s\n", strings.Join(lo.Uniq(due), ", "))
	}
	fmt.Fprintf(w, "message\t%s\n", status.Message)
	if status.Cached {
		fmt.Fprintf(w, "cached\ttrue\n")
	}
	return w.Flush()
}

func runPayoutSweep(cmd *cobra.Command, a *app) error {
	log := logger.WithComponent("payouts")

	results, err := a.payouts.ReconcileAll(cmd.Context())
	if err != nil {
		return fmt.Errorf("reconcile payout accounts: %w", err)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CONTRACTOR\tACCOUNT\tSTATUS")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\t%s\n", r.ContractorID, r.AccountID, sweepStatus(r))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	failed := lo.Filter(results, func(r model.ReconcileResult, _ int) bool { return r.Error != "" })
	log.Info().Int("accounts", len(results)).Int("failed", len(failed)).Msg("payout sweep finished")
	if len(failed) > 0 {
		return fmt.Errorf("%d of %d payout accounts failed to reconcile", len(failed), len(results))
	}
	return nil
}

func sweepStatus(r model.ReconcileResult) string {
	if r.Error != "" {
		return "error: " + r.Error
	}
	if r.Outcome == nil {
		return "unknown"
	}
	return string(r.Outcome.Status)
}
