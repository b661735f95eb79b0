package model

import (
	"encoding/json"
	"time"
)

// IdempotencyKey scopes a client-supplied key to the request path, so the
// same key sent to two different documents never collides.
type IdempotencyKey struct {
	Resource string
	Key      string
}

type IdempotencyStatus string

const (
	IdempotencyProcessing IdempotencyStatus = "processing"
	IdempotencyCompleted  IdempotencyStatus = "completed"
)

// IdempotencyCacheEntry is the stored state of one keyed request.
type IdempotencyCacheEntry struct {
	Status          IdempotencyStatus `json:"status"`
	RequestBodyHash string            `json:"request_body_hash"`
	Response        json.RawMessage   `json:"response,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at,omitempty"`
}
