// Package httputil provides retry helpers for calls to remote services.
//
// # Retry
//
// Errors that may succeed on a second attempt are wrapped with [Retryable].
// Two loops consume them:
//
//   - [Retry] retries automatically with exponential backoff, for
//     infrastructure the user never sees (database connections).
//   - [RetryConfirmed] asks a [ConfirmFunc] before every new attempt, for
//     calls to the OntoUML server where the user decides whether to try
//     again after the server was unreachable or failed.
//
// Both return non-retryable errors immediately:
//
//	err := httputil.RetryConfirmed(ctx, askUser, func() error {
//	    return send(ctx, req)
//	})
package httputil
