package billing

import "encore.dev/config"

type Config struct {
	// AppBaseURL is the browser-facing origin the connect redirects land on.
	AppBaseURL config.String
	// APIBaseURL is this service's public origin, used for onboarding return links.
	APIBaseURL       config.String
	PortalReturnPath config.String

	TemporalHost      config.String
	TemporalNamespace config.String

	PayoutSyncPollSeconds config.Int
	PayoutSyncMaxAttempts config.Int

	ProcessorTimeoutSeconds config.Int
	ProcessorReadRetries    config.Int
}

var cfg = config.Load[*Config]()
