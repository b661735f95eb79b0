package main

import (
	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "billingctl",
		Short: "Operator tooling for the billing service",
		Long: `billingctl runs billing maintenance tasks directly against the database
and the payment processor.

Required environment variables (a .env file in the working directory is read):
  DATABASE_URL      - Postgres connection string
  STRIPE_SECRET_KEY - processor API key`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.connect(cmd.Context())
		},
	}

	root.SetOut(a.out)
	root.AddCommand(newPayoutsCmd(a), newSubscriptionCmd(a))
	return root
}
