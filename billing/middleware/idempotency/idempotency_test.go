package idempotency

import (
	"context"
	"net/http"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"encore.dev"
	"encore.dev/beta/errs"
	"encore.dev/middleware"

	"fieldbill.app/billing/model"
)

func createMiddlewareRequest(ctx context.Context, path string, headers http.Header, payload interface{}) middleware.Request {
	encoreReq := &encore.Request{
		Path:    path,
		Headers: headers,
		Payload: payload,
	}
	return middleware.NewRequest(ctx, encoreReq)
}

func TestExtractIdempotencyKey(t *testing.T) {
	testCases := []struct {
		name          string
		headers       http.Header
		expectedKey   string
		expectedError string
	}{
		{
			name:        "valid_key",
			headers:     http.Header{IdempotencyHeader: []string{"decline-7f1c"}},
			expectedKey: "decline-7f1c",
		},
		{
			name:        "surrounding_whitespace_trimmed",
			headers:     http.Header{IdempotencyHeader: []string{"  mark-paid-1  "}},
			expectedKey: "mark-paid-1",
		},
		{
			name:        "missing_header_is_optional",
			headers:     http.Header{},
			expectedKey: "",
		},
		{
			name:        "whitespace_only_header_is_ignored",
			headers:     http.Header{IdempotencyHeader: []string{"   "}},
			expectedKey: "",
		},
		{
			name:        "multiple_header_values_takes_first",
			headers:     http.Header{IdempotencyHeader: []string{"first-key", "second-key"}},
			expectedKey: "first-key",
		},
		{
			name:          "key_too_long",
			headers:       http.Header{IdempotencyHeader: []string{strings.Repeat("k", maxKeyLength+1)}},
			expectedError: "at most 255 characters",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := createMiddlewareRequest(context.Background(), "/estimate/abc/decline", tc.headers, nil)

			key, err := extractIdempotencyKey(req)

			if tc.expectedError != "" {
				require.NotNil(t, err)
				assert.Equal(t, errs.InvalidArgument, err.Code)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.Empty(t, key)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tc.expectedKey, key)
		})
	}
}

func TestHashingFunction(t *testing.T) {
	testCases := []struct {
		name     string
		input    []byte
		expected string
	}{
		{
			name:     "empty_input",
			input:    []byte{},
			expected: "",
		},
		{
			name:     "simple_text",
			input:    []byte("test"),
			expected: "098f6bcd4621d373cade4e832627b4f6",
		},
		{
			name:     "empty_json_object",
			input:    []byte("{}"),
			expected: "99914b932bd37a50b983c5e7c90ae93b",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, hashing(tc.input))
		})
	}
}

func TestHashingIsDeterministic(t *testing.T) {
	body := []byte(`{"sessionId":"cs_test_123"}`)

	first := hashing(body)

	assert.Regexp(t, "^[a-f0-9]{32}$", first)
	assert.Equal(t, first, hashing(body))
	assert.NotEqual(t, first, hashing([]byte(`{"sessionId":"cs_test_456"}`)))
}

func TestValidateBodyHash(t *testing.T) {
	testCases := []struct {
		name          string
		entry         model.IdempotencyCacheEntry
		bodyHash      string
		expectedError string
	}{
		{
			name:     "matching_hashes",
			entry:    model.IdempotencyCacheEntry{RequestBodyHash: "abc123"},
			bodyHash: "abc123",
		},
		{
			name:     "empty_cached_hash_allows_any",
			entry:    model.IdempotencyCacheEntry{RequestBodyHash: ""},
			bodyHash: "abc123",
		},
		{
			name:     "empty_new_hash_allows_any",
			entry:    model.IdempotencyCacheEntry{RequestBodyHash: "abc123"},
			bodyHash: "",
		},
		{
			name:          "conflicting_hashes",
			entry:         model.IdempotencyCacheEntry{RequestBodyHash: "abc123"},
			bodyHash:      "xyz789",
			expectedError: "idempotency key conflict: request body does not match previous request",
		},
		{
			name:          "case_sensitive_hash_comparison",
			entry:         model.IdempotencyCacheEntry{RequestBodyHash: "ABC123"},
			bodyHash:      "abc123",
			expectedError: "idempotency key conflict",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateBodyHash(tc.entry, tc.bodyHash)

			if tc.expectedError != "" {
				require.NotNil(t, err)
				assert.Equal(t, errs.InvalidArgument, err.Code)
				assert.Contains(t, err.Error(), tc.expectedError)
				return
			}
			assert.Nil(t, err)
		})
	}
}

func TestHandleProcessingEntry(t *testing.T) {
	response := handleProcessingEntry("test-key-123")

	require.Error(t, response.Err)
	assert.Equal(t, errs.Aborted, errs.Code(response.Err))
	assert.Equal(t, model.KindConflict, model.KindOf(response.Err))
	assert.Nil(t, response.Payload)
}

type cachedResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func TestDecodeCachedResponse(t *testing.T) {
	testCases := []struct {
		name         string
		responseType reflect.Type
		raw          string
		expected     any
		expectError  bool
	}{
		{
			name:         "decodes_into_response_type",
			responseType: reflect.TypeOf(&cachedResponse{}),
			raw:          `{"success":true,"message":"Estimate declined"}`,
			expected:     &cachedResponse{Success: true, Message: "Estimate declined"},
		},
		{
			name:        "no_response_type",
			raw:         `{"success":true}`,
			expectError: true,
		},
		{
			name:         "corrupted_payload",
			responseType: reflect.TypeOf(&cachedResponse{}),
			raw:          `{"success":`,
			expectError:  true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			payload, err := decodeCachedResponse(tc.responseType, []byte(tc.raw))

			if tc.expectError {
				assert.Error(t, err)
				assert.Nil(t, payload)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, payload)
		})
	}
}

func TestIdempotencyMiddleware_MissingKeyPassesThrough(t *testing.T) {
	req := createMiddlewareRequest(context.Background(), "/estimate/abc/decline", http.Header{}, nil)

	nextCalled := false
	next := func(req middleware.Request) middleware.Response {
		nextCalled = true
		return middleware.Response{Payload: &cachedResponse{Success: true}}
	}

	response := IdempotencyMiddleware(req, next)

	assert.NoError(t, response.Err)
	assert.True(t, nextCalled)
	assert.Equal(t, &cachedResponse{Success: true}, response.Payload)
}

func TestIdempotencyMiddleware_KeyTooLong(t *testing.T) {
	headers := http.Header{IdempotencyHeader: []string{strings.Repeat("k", maxKeyLength+1)}}
	req := createMiddlewareRequest(context.Background(), "/invoice/abc/mark-paid", headers, nil)

	nextCalled := false
	next := func(req middleware.Request) middleware.Response {
		nextCalled = true
		return middleware.Response{}
	}

	response := IdempotencyMiddleware(req, next)

	assert.Error(t, response.Err)
	assert.False(t, nextCalled)
}
