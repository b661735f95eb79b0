package idempotency

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/middleware"
	"encore.dev/rlog"
	"encore.dev/storage/cache"

	"fieldbill.app/billing/apierr"
	"fieldbill.app/billing/model"
)

const (
	IdempotencyHeader = "X-Idempotency-Key"
	maxKeyLength      = 255
)

// IdempotencyMiddleware replays the stored response for a repeated X-Idempotency-Key.
// Requests without the header pass straight through.
//
//encore:middleware target=tag:idempotency
func IdempotencyMiddleware(req middleware.Request, next middleware.Next) middleware.Response {
	idempotencyKey, err := extractIdempotencyKey(req)
	if err != nil {
		return middleware.Response{Err: err}
	}
	if idempotencyKey == "" {
		return next(req)
	}

	bodyHash := generateBodyHash(req)

	cacheKey := model.IdempotencyKey{
		Resource: req.Data().Path,
		Key:      idempotencyKey,
	}

	claimErr := IdempotencyCache.SetIfNotExists(req.Context(), cacheKey, model.IdempotencyCacheEntry{
		Status:          model.IdempotencyProcessing,
		RequestBodyHash: bodyHash,
		CreatedAt:       time.Now(),
	})
	switch {
	case claimErr == nil:
		response := next(req)
		if response.Err != nil {
			deleteCacheEntry(req.Context(), cacheKey)
		} else {
			markAsCompleted(req.Context(), cacheKey, bodyHash, idempotencyKey, response)
		}
		return response

	case errors.Is(claimErr, cache.KeyExists):
		entry, getErr := IdempotencyCache.Get(req.Context(), cacheKey)
		if getErr != nil {
			if errors.Is(getErr, cache.Miss) {
				// Expired or cleared between the two calls.
				return next(req)
			}
			rlog.Error("failed to read idempotency entry", "error", getErr, "key", idempotencyKey)
			return middleware.Response{Err: &errs.Error{Code: errs.Internal, Message: "failed to check idempotency"}}
		}
		return handleExistingEntry(req, next, entry, bodyHash, idempotencyKey)

	default:
		rlog.Error("failed to claim idempotency key", "error", claimErr, "key", idempotencyKey)
		return middleware.Response{Err: &errs.Error{Code: errs.Internal, Message: "failed to check idempotency"}}
	}
}

// extractIdempotencyKey returns "" when the header is absent or blank.
func extractIdempotencyKey(req middleware.Request) (string, *errs.Error) {
	headers := req.Data().Headers
	if headers == nil {
		return "", nil
	}

	key := strings.TrimSpace(headers.Get(IdempotencyHeader))
	if len(key) > maxKeyLength {
		return "", &errs.Error{Code: errs.InvalidArgument, Message: "X-Idempotency-Key must be at most 255 characters"}
	}

	return key, nil
}

// generateBodyHash creates a hash of the request body for conflict detection
func generateBodyHash(req middleware.Request) string {
	var bodyHash string
	if payload := req.Data().Payload; payload != nil {
		if bodyBytes, err := json.Marshal(payload); err != nil {
			rlog.Error("failed to marshal request body", "error", err)
		} else {
			bodyHash = hashing(bodyBytes)
		}
	}
	return bodyHash
}

func handleExistingEntry(req middleware.Request, next middleware.Next, entry model.IdempotencyCacheEntry, bodyHash, idempotencyKey string) middleware.Response {
	if err := validateBodyHash(entry, bodyHash); err != nil {
		return middleware.Response{Err: err}
	}

	switch entry.Status {
	case model.IdempotencyProcessing:
		return handleProcessingEntry(idempotencyKey)
	case model.IdempotencyCompleted:
		return handleCompletedEntry(req, next, entry, idempotencyKey)
	default:
		rlog.Warn("unknown idempotency entry status, processing as new request", "key", idempotencyKey, "status", entry.Status)
		return next(req)
	}
}

func validateBodyHash(entry model.IdempotencyCacheEntry, bodyHash string) *errs.Error {
	if bodyHash != "" && entry.RequestBodyHash != "" && bodyHash != entry.RequestBodyHash {
		return &errs.Error{Code: errs.InvalidArgument, Message: "idempotency key conflict: request body does not match previous request"}
	}
	return nil
}

func handleProcessingEntry(idempotencyKey string) middleware.Response {
	rlog.Info("concurrent request detected", "key", idempotencyKey)
	return middleware.Response{
		Err: apierr.Public(model.ErrConflict("request is already being processed")),
	}
}

func handleCompletedEntry(req middleware.Request, next middleware.Next, entry model.IdempotencyCacheEntry, idempotencyKey string) middleware.Response {
	if len(entry.Response) > 0 {
		var responseType reflect.Type
		if api := req.Data().API; api != nil {
			responseType = api.ResponseType
		}
		if payload, err := decodeCachedResponse(responseType, entry.Response); err == nil {
			rlog.Info("returning cached response", "key", idempotencyKey)
			return middleware.Response{Payload: payload}
		} else {
			rlog.Error("failed to decode cached response", "error", err, "key", idempotencyKey)
		}
	}

	// A corrupted or empty cached response is treated as a new request.
	return next(req)
}

func decodeCachedResponse(responseType reflect.Type, raw []byte) (any, error) {
	if responseType == nil || responseType.Kind() != reflect.Pointer {
		return nil, errors.New("no response type")
	}
	value := reflect.New(responseType.Elem()).Interface()
	if err := json.Unmarshal(raw, value); err != nil {
		return nil, err
	}
	return value, nil
}

func deleteCacheEntry(ctx context.Context, cacheKey model.IdempotencyKey) {
	if _, err := IdempotencyCache.Delete(ctx, cacheKey); err != nil {
		rlog.Error("failed to clear failed request from cache", "error", err)
	}
}

func markAsCompleted(ctx context.Context, cacheKey model.IdempotencyKey, bodyHash, idempotencyKey string, response middleware.Response) {
	completedEntry := model.IdempotencyCacheEntry{
		Status:          model.IdempotencyCompleted,
		RequestBodyHash: bodyHash,
		UpdatedAt:       time.Now(),
	}

	if response.Payload != nil {
		payloadBytes, err := json.Marshal(response.Payload)
		if err != nil {
			rlog.Error("failed to marshal response payload for caching", "error", err)
			deleteCacheEntry(ctx, cacheKey)
			return
		}
		completedEntry.Response = payloadBytes
	}

	if err := IdempotencyCache.Set(ctx, cacheKey, completedEntry); err != nil {
		rlog.Error("failed to cache successful response", "error", err)
		return
	}

	rlog.Debug("request completed and response cached", "key", idempotencyKey)
}

// hashing creates a stable hash of the JSON request body
func hashing(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	hash := md5.New()
	hash.Write(body)
	return hex.EncodeToString(hash.Sum(nil))
}
