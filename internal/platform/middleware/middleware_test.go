// Copyright (c) 2026 Kinoteka. All rights reserved.
// Author: dev@kinoteka.app

package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinoteka/kinoteka/internal/platform/constants"
	"github.com/kinoteka/kinoteka/internal/platform/ctxutil"
	"github.com/kinoteka/kinoteka/internal/platform/middleware"
)

/*
TestRealIP verifies proxy header precedence: X-Real-IP wins, then the first
X-Forwarded-For entry, then the connection's remote address.
*/
func TestRealIP(t *testing.T) {
	tests := []struct {
		name       string
		realIP     string
		forwarded  string
		remoteAddr string
		want       string
	}{
		{"real_ip_header", "203.0.113.7", "198.51.100.1", "10.0.0.1:4000", "203.0.113.7"},
		{"forwarded_first_entry", "", "198.51.100.1, 10.0.0.9", "10.0.0.1:4000", "198.51.100.1"},
		{"remote_addr_fallback", "", "", "10.0.0.1:4000", "10.0.0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/", nil)
			request.RemoteAddr = tt.remoteAddr
			if tt.realIP != "" {
				request.Header.Set(constants.HeaderXRealIP, tt.realIP)
			}
			if tt.forwarded != "" {
				request.Header.Set(constants.HeaderXForwardedFor, tt.forwarded)
			}

			assert.Equal(t, tt.want, middleware.RealIP(request))
		})
	}
}

/*
TestClientIP_StoresResolvedAddress verifies the middleware places the resolved
caller IP into the request context for downstream consumers.
*/
func TestClientIP_StoresResolvedAddress(t *testing.T) {
	var seen string
	handler := middleware.ClientIP()(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		seen = ctxutil.GetClientIP(request.Context())
	}))

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set(constants.HeaderXRealIP, "203.0.113.7")
	handler.ServeHTTP(httptest.NewRecorder(), request)

	assert.Equal(t, "203.0.113.7", seen)
}

// fakeLimiter scripts the shared limiter's answers.
type fakeLimiter struct {
	allowed bool
	err     error
	calls   int
}

func (f *fakeLimiter) Allow(_ context.Context, _ string) (bool, error) {
	f.calls++
	return f.allowed, f.err
}

/*
TestRateLimit_SharedLimiter verifies the Redis-backed limiter is authoritative
when reachable: a denial returns 429 without consulting the local bucket.
*/
func TestRateLimit_SharedLimiter(t *testing.T) {
	limiter := &fakeLimiter{allowed: false}
	handler := middleware.RateLimit(context.Background(), limiter)(
		http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}),
	)

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTooManyRequests, recorder.Code)
	assert.Equal(t, 1, limiter.calls)
}

/*
TestRateLimit_FallbackOnBackendError verifies a failing shared backend degrades
to the local token bucket instead of blocking (or fully opening) the gate.
*/
func TestRateLimit_FallbackOnBackendError(t *testing.T) {
	limiter := &fakeLimiter{err: errors.New("connection refused")}
	handler := middleware.RateLimit(context.Background(), limiter)(
		http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			writer.WriteHeader(http.StatusNoContent)
		}),
	)

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.RemoteAddr = "192.0.2.55:1234"
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	// Fresh local bucket: the first request passes through.
	require.Equal(t, http.StatusNoContent, recorder.Code)
}
