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
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	gterrors "github.com/Alrightsc/gtnh-flow/pkg/errors"
	"github.com/Alrightsc/gtnh-flow/pkg/serializer"
)

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Code      string         `json:"code" yaml:"code"`
	Message   string         `json:"message" yaml:"message"`
	Details   map[string]any `json:"details,omitempty" yaml:"details,omitempty"`
	RequestID string         `json:"requestId" yaml:"requestId"`
	Timestamp time.Time      `json:"timestamp" yaml:"timestamp"`
	Retryable bool           `json:"retryable" yaml:"retryable"`
}

// WriteError writes a structured error response.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code gterrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID := RequestIDFromContext(r.Context())
	if requestID == "" {
		requestID = uuid.New().String()
	}

	serializer.RespondJSON(w, statusCode, ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	})
}

// WriteErrorFromErr maps err onto an error response. StructuredErrors anywhere
// in the chain decide the status, code and retryability; anything else is
// reported as an internal error with fallbackMessage.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string, extraDetails map[string]any) {
	var se *gterrors.StructuredError
	if err == nil || !errors.As(err, &se) {
		details := mergeDetails(extraDetails, nil)
		if err != nil {
			details = mergeDetails(details, map[string]any{"error": err.Error()})
		}
		WriteError(w, r, http.StatusInternalServerError, gterrors.ErrCodeInternal,
			fallbackMessage, retryableFromCode(gterrors.ErrCodeInternal), details)
		return
	}

	details := mergeDetails(se.Context, extraDetails)
	if se.Cause != nil {
		details = mergeDetails(details, map[string]any{"error": se.Cause.Error()})
	}
	if err != error(se) {
		// wrapped, e.g. by batch position
		details = mergeDetails(details, map[string]any{"reason": err.Error()})
	}

	WriteError(w, r, HTTPStatusFromCode(se.Code), se.Code, se.Message, retryableFromCode(se.Code), details)
}

// HTTPStatusFromCode maps an error code to its HTTP status.
func HTTPStatusFromCode(code gterrors.ErrorCode) int {
	switch code {
	case gterrors.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case gterrors.ErrCodeConfiguration, gterrors.ErrCodeNegativeOverclock:
		return http.StatusUnprocessableEntity
	case gterrors.ErrCodeUnimplemented:
		return http.StatusNotImplemented
	case gterrors.ErrCodeNotFound:
		return http.StatusNotFound
	case gterrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case gterrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case gterrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case gterrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func retryableFromCode(code gterrors.ErrorCode) bool {
	switch code {
	case gterrors.ErrCodeTimeout, gterrors.ErrCodeUnavailable,
		gterrors.ErrCodeRateLimitExceeded, gterrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

// mergeDetails returns a new map with b's entries overriding a's, or nil when both are empty.
func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
