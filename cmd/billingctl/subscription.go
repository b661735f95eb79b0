package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"fieldbill.app/internal/logger"
)

func newSubscriptionCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subscription",
		Short: "Manage contractor subscriptions",
	}

	cancel := &cobra.Command{
		Use:   "cancel <contractor-id>",
		Short: "Cancel a contractor's subscription",
		Long: `Cancel a contractor's subscription at the end of the current period.
Trial subscriptions, or any subscription with --now, end immediately.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now, _ := cmd.Flags().GetBool("now")
			return runSubscriptionCancel(cmd, a, args[0], now)
		},
	}
	cancel.Flags().Bool("now", false, "Cancel immediately instead of at period end")

	cmd.AddCommand(cancel)
	return cmd
}

func runSubscriptionCancel(cmd *cobra.Command, a *app, contractorID string, now bool) error {
	log := logger.WithComponent("subscription")

	result, err := a.subscriptions.Cancel(cmd.Context(), contractorID, now)
	if err != nil {
		return fmt.Errorf("cancel subscription: %w", err)
	}

	log.Info().
		Str("contractor_id", contractorID).
		Bool("immediately", result.CanceledImmediately).
		Msg("subscription canceled")

	fmt.Fprintln(cmd.OutOrStdout(), result.Message)
	return nil
}
