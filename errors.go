// ABOUTME: Error classification helpers for the public API
// ABOUTME: Lets callers branch on error kind without importing core packages

package medium

import "medium-feed-client/core/errors"

// IsValidationError checks if an error was caused by bad arguments or
// bad configuration, reported before any request was issued
func IsValidationError(err error) bool {
	return errors.IsValidation(err)
}

// IsUpstreamError checks if an error was reported by Medium itself:
// a non-success status code or an unexpected content type
func IsUpstreamError(err error) bool {
	return errors.IsUpstream(err)
}

// IsParseError checks if an error was caused by a malformed response
// body, RSS or JSON
func IsParseError(err error) bool {
	return errors.IsParse(err)
}
