package main

import (
	"context"
	"fmt"
	"io"

	"github.com/jackc/pgx/v5/pgxpool"

	"fieldbill.app/billing/business/payout"
	"fieldbill.app/billing/business/subscription"
	"fieldbill.app/billing/processor"
	"fieldbill.app/billing/repository"
	"fieldbill.app/internal/config"
	"fieldbill.app/internal/logger"
)

// app holds what the commands run against. The business layers are built on
// first use so that --help never needs a database.
type app struct {
	cfg  *config.Config
	out  io.Writer
	pool *pgxpool.Pool

	payouts       payout.Business
	subscriptions subscription.Business
}

func (a *app) connect(ctx context.Context) error {
	if a.payouts != nil && a.subscriptions != nil {
		return nil
	}

	pool, err := pgxpool.New(ctx, a.cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return fmt.Errorf("ping database: %w", err)
	}

	repo := repository.NewRepository(pool)
	proc := processor.NewStripeProcessor(a.cfg.StripeSecretKey, a.cfg.ProcessorOptions())

	a.pool = pool
	a.payouts = payout.NewPayoutBusiness(repo.Contractors, proc, a.cfg.APIBaseURL)
	// The CLI never opens the billing portal, so no return URL is needed.
	a.subscriptions = subscription.NewSubscriptionBusiness(repo.Contractors, proc, "")

	log := logger.WithComponent("app")
	log.Debug().Msg("connected to database")
	return nil
}

func (a *app) close() {
	if a.pool != nil {
		a.pool.Close()
		a.pool = nil
	}
}
