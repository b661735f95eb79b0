package billing

import (
	"context"
	"strings"
	"time"

	"encore.dev/rlog"
	"encore.dev/storage/sqldb"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"fieldbill.app/billing/business/document"
	"fieldbill.app/billing/business/payout"
	"fieldbill.app/billing/business/profile"
	"fieldbill.app/billing/business/subscription"
	"fieldbill.app/billing/domain"
	"fieldbill.app/billing/processor"
	"fieldbill.app/billing/repository"
	"fieldbill.app/billing/workflow"
)

const taskQueue = "fieldbill-payouts"

var fieldbillDB = sqldb.NewDatabase("fieldbill", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

var secrets struct {
	StripeSecretKey string
}

//encore:service
type Service struct {
	documents     document.Business
	payouts       payout.Business
	subscriptions subscription.Business
	profiles      profile.Business

	temporal client.Client
	worker   worker.Worker

	appBaseURL       string
	syncPollInterval time.Duration
	syncMaxAttempts  int
}

func initService() (*Service, error) {
	pool := sqldb.Driver(fieldbillDB)
	repo := repository.NewRepository(pool)

	proc := processor.NewStripeProcessor(secrets.StripeSecretKey, processorOptions())
	stateMachine := domain.NewDocumentStateMachine(pool, repo.Documents)

	payouts := payout.NewPayoutBusiness(repo.Contractors, proc, cfg.APIBaseURL())
	svc := &Service{
		documents: document.NewDocumentBusiness(
			repo.Documents, repo.LineItems, repo.Clients, repo.Contractors, stateMachine, proc,
		),
		payouts:          payouts,
		subscriptions:    subscription.NewSubscriptionBusiness(repo.Contractors, proc, portalReturnURL()),
		profiles:         profile.NewProfileBusiness(repo.Contractors),
		appBaseURL:       strings.TrimRight(cfg.AppBaseURL(), "/"),
		syncPollInterval: time.Duration(cfg.PayoutSyncPollSeconds()) * time.Second,
		syncMaxAttempts:  cfg.PayoutSyncMaxAttempts(),
	}

	workflow.SetActivityDependencies(payouts)
	svc.temporal, svc.worker = startPayoutSync(client.Options{
		HostPort:  cfg.TemporalHost(),
		Namespace: cfg.TemporalNamespace(),
	})

	rlog.Info("billing service initialized", "task_queue", taskQueue, "payout_sync", svc.temporal != nil)
	return svc, nil
}

var (
	newTemporalClient = client.NewLazyClient
	newPayoutWorker   = func(c client.Client) worker.Worker {
		w := worker.New(c, taskQueue, worker.Options{})
		w.RegisterWorkflow(workflow.PayoutSync)
		w.RegisterActivity(workflow.SyncPayoutAccountActivity)
		return w
	}
)

// startPayoutSync connects the payout polling worker. Temporal being down
// only disables polling; it never keeps the service from starting.
func startPayoutSync(opts client.Options) (client.Client, worker.Worker) {
	c, err := newTemporalClient(opts)
	if err != nil {
		rlog.Error("payout sync disabled, temporal client unavailable", "error", err, "host", opts.HostPort)
		return nil, nil
	}

	w := newPayoutWorker(c)
	if err := w.Start(); err != nil {
		rlog.Error("payout sync disabled, worker failed to start", "error", err, "task_queue", taskQueue)
		c.Close()
		return nil, nil
	}
	return c, w
}

// Shutdown stops the payout worker before the client it polls with.
func (s *Service) Shutdown(force context.Context) {
	if s.worker != nil {
		s.worker.Stop()
	}
	if s.temporal != nil {
		s.temporal.Close()
	}
}

func processorOptions() processor.Options {
	opts := processor.DefaultOptions()
	if seconds := cfg.ProcessorTimeoutSeconds(); seconds > 0 {
		opts.Timeout = time.Duration(seconds) * time.Second
	}
	opts.ReadRetries = int64(cfg.ProcessorReadRetries())
	return opts
}

func portalReturnURL() string {
	return strings.TrimRight(cfg.AppBaseURL(), "/") + cfg.PortalReturnPath()
}
