package idempotency

import (
	"time"

	"encore.dev/storage/cache"

	"fieldbill.app/billing/model"
)

const replayWindow = 24 * time.Hour

var IdempotencyCluster = cache.NewCluster("fieldbill-idempotency", cache.ClusterConfig{
	EvictionPolicy: cache.AllKeysLRU,
})

// IdempotencyCache holds one entry per (path, key) for the replay window.
var IdempotencyCache = cache.NewStructKeyspace[model.IdempotencyKey, model.IdempotencyCacheEntry](
	IdempotencyCluster,
	cache.KeyspaceConfig{
		KeyPattern:    "idempotency/:Resource/:Key",
		DefaultExpiry: cache.ExpireIn(replayWindow),
	},
)
