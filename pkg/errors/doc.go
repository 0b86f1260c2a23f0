// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Overclock failures use three codes: CONFIGURATION for missing or invalid
// machine-specific recipe fields, NEGATIVE_OVERCLOCK when a recipe needs more
// power than the selected tier supplies, and UNIMPLEMENTED for machine families
// whose rules are not modelled. None of them are retryable.
//
// Example usage:
//
//	err := errors.Configuration("electric blast furnace", "coils", "missing")
//	if errors.IsConfiguration(err) {
//	    slog.Error("recipe rejected", "error", err)
//	}
package errors
