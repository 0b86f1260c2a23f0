// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	gterrors "github.com/Alrightsc/gtnh-flow/pkg/errors"
)

func TestHTTPStatusFromCode(t *testing.T) {
	tests := []struct {
		name string
		code gterrors.ErrorCode
		want int
	}{
		{"invalid request", gterrors.ErrCodeInvalidRequest, http.StatusBadRequest},
		{"configuration", gterrors.ErrCodeConfiguration, http.StatusUnprocessableEntity},
		{"negative overclock", gterrors.ErrCodeNegativeOverclock, http.StatusUnprocessableEntity},
		{"unimplemented", gterrors.ErrCodeUnimplemented, http.StatusNotImplemented},
		{"not found", gterrors.ErrCodeNotFound, http.StatusNotFound},
		{"method not allowed", gterrors.ErrCodeMethodNotAllowed, http.StatusMethodNotAllowed},
		{"rate limit", gterrors.ErrCodeRateLimitExceeded, http.StatusTooManyRequests},
		{"unavailable", gterrors.ErrCodeUnavailable, http.StatusServiceUnavailable},
		{"timeout", gterrors.ErrCodeTimeout, http.StatusGatewayTimeout},
		{"internal", gterrors.ErrCodeInternal, http.StatusInternalServerError},
		{"unknown defaults to internal", gterrors.ErrorCode("SOMETHING_ELSE"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatusFromCode(tt.code); got != tt.want {
				t.Fatalf("HTTPStatusFromCode(%q) = %d, want %d", tt.code, got, tt.want)
			}
		})
	}
}

func TestRetryableFromCode(t *testing.T) {
	tests := []struct {
		name string
		code gterrors.ErrorCode
		want bool
	}{
		{"invalid request", gterrors.ErrCodeInvalidRequest, false},
		{"configuration", gterrors.ErrCodeConfiguration, false},
		{"negative overclock", gterrors.ErrCodeNegativeOverclock, false},
		{"unimplemented", gterrors.ErrCodeUnimplemented, false},
		{"not found", gterrors.ErrCodeNotFound, false},
		{"method not allowed", gterrors.ErrCodeMethodNotAllowed, false},
		{"timeout", gterrors.ErrCodeTimeout, true},
		{"unavailable", gterrors.ErrCodeUnavailable, true},
		{"rate limit", gterrors.ErrCodeRateLimitExceeded, true},
		{"internal", gterrors.ErrCodeInternal, true},
		{"unknown defaults false", gterrors.ErrorCode("SOMETHING_ELSE"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := retryableFromCode(tt.code); got != tt.want {
				t.Fatalf("retryableFromCode(%q) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestMergeDetails(t *testing.T) {
	t.Run("both empty returns nil", func(t *testing.T) {
		if got := mergeDetails(nil, nil); got != nil {
			t.Fatalf("expected nil, got %#v", got)
		}
		if got := mergeDetails(map[string]any{}, map[string]any{}); got != nil {
			t.Fatalf("expected nil, got %#v", got)
		}
	})

	t.Run("merges and second overwrites", func(t *testing.T) {
		a := map[string]any{"a": 1, "shared": "old"}
		b := map[string]any{"b": 2, "shared": "new"}

		got := mergeDetails(a, b)
		if got == nil {
			t.Fatal("expected map, got nil")
		}
		if got["a"].(int) != 1 {
			t.Fatalf("expected a=1, got %#v", got["a"])
		}
		if got["b"].(int) != 2 {
			t.Fatalf("expected b=2, got %#v", got["b"])
		}
		if got["shared"].(string) != "new" {
			t.Fatalf("expected shared to be overwritten to 'new', got %#v", got["shared"])
		}
	})
}

func TestWriteError_WritesErrorResponse(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(context.WithValue(req.Context(), contextKeyRequestID, "req-123"))
	w := httptest.NewRecorder()

	WriteError(w, req, http.StatusBadRequest, gterrors.ErrCodeInvalidRequest, "bad request", false, map[string]any{"k": "v"})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	if resp.Code != string(gterrors.ErrCodeInvalidRequest) {
		t.Fatalf("expected code %q, got %q", gterrors.ErrCodeInvalidRequest, resp.Code)
	}
	if resp.Message != "bad request" {
		t.Fatalf("expected message %q, got %q", "bad request", resp.Message)
	}
	if resp.RequestID != "req-123" {
		t.Fatalf("expected requestId %q, got %q", "req-123", resp.RequestID)
	}
	if resp.Retryable {
		t.Fatalf("expected retryable=false, got true")
	}
	if resp.Details == nil || resp.Details["k"].(string) != "v" {
		t.Fatalf("expected details to include k=v, got %#v", resp.Details)
	}
}

func TestWriteErrorFromErr_StructuredErrorMapsStatusAndDetails(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	cause := errors.New("db is down")
	err := gterrors.WrapWithContext(gterrors.ErrCodeUnavailable, "service unavailable", cause, map[string]any{"component": "db"})

	WriteErrorFromErr(w, req, err, "fallback", map[string]any{"extra": "yes"})

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status %d, got %d", http.StatusServiceUnavailable, w.Code)
	}

	var resp ErrorResponse
	if uerr := json.Unmarshal(w.Body.Bytes(), &resp); uerr != nil {
		t.Fatalf("failed to unmarshal response: %v", uerr)
	}

	if resp.Code != string(gterrors.ErrCodeUnavailable) {
		t.Fatalf("expected code %q, got %q", gterrors.ErrCodeUnavailable, resp.Code)
	}
	if resp.Message != "service unavailable" {
		t.Fatalf("expected message %q, got %q", "service unavailable", resp.Message)
	}
	if !resp.Retryable {
		t.Fatalf("expected retryable=true")
	}
	if resp.Details == nil {
		t.Fatalf("expected details, got nil")
	}
	if resp.Details["component"].(string) != "db" {
		t.Fatalf("expected component=db, got %#v", resp.Details["component"])
	}
	if resp.Details["extra"].(string) != "yes" {
		t.Fatalf("expected extra=yes, got %#v", resp.Details["extra"])
	}
	if resp.Details["error"].(string) != "db is down" {
		t.Fatalf("expected error cause propagated, got %#v", resp.Details["error"])
	}
}

func TestWriteErrorFromErr_NonStructuredFallsBackToInternal(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	WriteErrorFromErr(w, req, errors.New("boom"), "fallback", map[string]any{"x": "y"})

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	if resp.Code != string(gterrors.ErrCodeInternal) {
		t.Fatalf("expected code %q, got %q", gterrors.ErrCodeInternal, resp.Code)
	}
	if !resp.Retryable {
		t.Fatalf("expected retryable=true")
	}
	if resp.Details == nil || resp.Details["x"].(string) != "y" {
		t.Fatalf("expected details to include x=y, got %#v", resp.Details)
	}
	if resp.Details["error"].(string) != "boom" {
		t.Fatalf("expected details error=boom, got %#v", resp.Details["error"])
	}
}

func TestWriteErrorFromErr_WrappedOverclockError(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/v1/overclock/batch", nil)
	w := httptest.NewRecorder()

	cause := gterrors.NegativeOverclock("assembler", "EV", "LV")
	WriteErrorFromErr(w, req, fmt.Errorf("recipe 2 (assembler): %w", cause), "fallback", nil)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status %d, got %d", http.StatusUnprocessableEntity, w.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	if resp.Code != string(gterrors.ErrCodeNegativeOverclock) {
		t.Fatalf("expected code %q, got %q", gterrors.ErrCodeNegativeOverclock, resp.Code)
	}
	if resp.Retryable {
		t.Fatalf("expected retryable=false")
	}
	if resp.Details["baseTier"].(string) != "EV" {
		t.Fatalf("expected baseTier=EV, got %#v", resp.Details["baseTier"])
	}
	reason, _ := resp.Details["reason"].(string)
	if reason == "" || reason[:11] != "recipe 2 (a" {
		t.Fatalf("expected batch position in reason, got %q", reason)
	}
	if resp.RequestID == "" {
		t.Fatalf("expected generated request ID")
	}
}
