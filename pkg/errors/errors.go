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

package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a structured error classification.
type ErrorCode string

const (
	// ErrCodeConfiguration indicates a recipe is missing a machine-specific field,
	// carries an invalid one, or names a machine without registered constants.
	ErrCodeConfiguration ErrorCode = "CONFIGURATION"
	// ErrCodeNegativeOverclock indicates the recipe needs more power than the
	// selected tier can supply. It is a specialization of ErrCodeConfiguration.
	ErrCodeNegativeOverclock ErrorCode = "NEGATIVE_OVERCLOCK"
	// ErrCodeUnimplemented indicates a machine family whose overclock rules are not modelled.
	ErrCodeUnimplemented ErrorCode = "UNIMPLEMENTED"
	// ErrCodeNotFound indicates a requested resource was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeTimeout indicates an operation exceeded its time limit.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
	// ErrCodeInternal indicates an internal system error.
	ErrCodeInternal ErrorCode = "INTERNAL"
	// ErrCodeInvalidRequest indicates malformed or invalid input.
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
	// ErrCodeRateLimitExceeded indicates the client exceeded an enforced request limit.
	ErrCodeRateLimitExceeded ErrorCode = "RATE_LIMIT_EXCEEDED"
	// ErrCodeMethodNotAllowed indicates the HTTP method is not allowed for the resource.
	ErrCodeMethodNotAllowed ErrorCode = "METHOD_NOT_ALLOWED"
	// ErrCodeUnavailable indicates a service or resource is temporarily unavailable.
	ErrCodeUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
)

// StructuredError provides structured error information for better observability.
// It includes an error code for programmatic handling, a human-readable message,
// the underlying cause, and optional context for debugging.
type StructuredError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// New creates a new StructuredError with the given code and message.
func New(code ErrorCode, message string) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
	}
}

// NewWithContext creates a new StructuredError with context information.
func NewWithContext(code ErrorCode, message string, context map[string]any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Context: context,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(code ErrorCode, message string, cause error) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WrapWithContext wraps an error with additional context information.
func WrapWithContext(code ErrorCode, message string, cause error, context map[string]any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// Configuration reports a missing or invalid machine-specific key.
// The message always names both the machine and the key.
func Configuration(machine, key, reason string) *StructuredError {
	return NewWithContext(ErrCodeConfiguration,
		fmt.Sprintf("improper config: ensure %q has key %q (%s)", machine, key, reason),
		map[string]any{
			"machine": machine,
			"key":     key,
		})
}

// NegativeOverclock reports a recipe whose intrinsic tier is above the selected one.
func NegativeOverclock(machine, baseTier, selectedTier string) *StructuredError {
	return NewWithContext(ErrCodeNegativeOverclock,
		fmt.Sprintf("recipe for %q has negative overclock: minimum tier is %s, selected tier is %s",
			machine, baseTier, selectedTier),
		map[string]any{
			"machine":      machine,
			"baseTier":     baseTier,
			"selectedTier": selectedTier,
		})
}

// Unimplemented reports a machine family that always refuses to overclock.
func Unimplemented(machine, family string) *StructuredError {
	return NewWithContext(ErrCodeUnimplemented,
		fmt.Sprintf("overclocking is not implemented for %q (%s family)", machine, family),
		map[string]any{
			"machine": machine,
			"family":  family,
		})
}

// CodeOf returns the code of the first StructuredError in err's chain,
// or an empty code when there is none.
func CodeOf(err error) ErrorCode {
	var se *StructuredError
	if stderrors.As(err, &se) {
		return se.Code
	}
	return ""
}

// IsConfiguration reports whether err is a configuration failure.
// Negative overclocks count as configuration failures.
func IsConfiguration(err error) bool {
	switch CodeOf(err) {
	case ErrCodeConfiguration, ErrCodeNegativeOverclock:
		return true
	default:
		return false
	}
}

// IsNegativeOverclock reports whether err is a negative overclock failure.
func IsNegativeOverclock(err error) bool {
	return CodeOf(err) == ErrCodeNegativeOverclock
}

// IsUnimplemented reports whether err comes from an unmodelled machine family.
func IsUnimplemented(err error) bool {
	return CodeOf(err) == ErrCodeUnimplemented
}
