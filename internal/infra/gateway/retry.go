package gateway

import "time"

// RetryDecision decides whether another attempt follows after attempt failed attempts.
// attempt is 1-based; the delay grows linearly with it.
func RetryDecision(attempt, maxRetries int, baseDelay time.Duration) (bool, time.Duration) {
	if attempt < 1 || attempt > maxRetries {
		return false, 0
	}

	return true, baseDelay * time.Duration(attempt)
}

// Retryable reports whether a response status is worth another attempt.
func Retryable(statusCode int) bool {
	return statusCode >= 500
}
