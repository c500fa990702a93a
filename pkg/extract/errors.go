package extract

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
)

// Reason classifies an extraction failure.
type Reason string

// Failure reasons.
const (
	ReasonTimeout         Reason = "timeout"
	ReasonInvalidResponse Reason = "invalid_response"
	ReasonRateLimited     Reason = "rate_limited"
	ReasonNetwork         Reason = "network"
)

var (
	// ErrInvalidResponse marks a service answer that is missing required
	// fields or cannot be decoded.
	ErrInvalidResponse = errors.New("invalid extraction response")

	// ErrMissingAPIKey is returned by hosted services without credentials.
	ErrMissingAPIKey = errors.New("api key is not set")

	errAttemptTimeout = errors.New("extraction attempt timed out")
)

// ExtractionError is the terminal failure of Client.Extract.
type ExtractionError struct {
	Reason   Reason
	URL      string
	Platform string
	Attempts int
	Err      error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extracting %s (%s) failed after %d attempt(s): %s: %v",
		e.URL, e.Platform, e.Attempts, e.Reason, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// ReasonOf returns the failure reason of an extraction error chain.
func ReasonOf(err error) (Reason, bool) {
	var ee *ExtractionError
	if errors.As(err, &ee) {
		return ee.Reason, true
	}
	return "", false
}

// HTTPError is a non-2xx answer from an extraction upstream.
type HTTPError struct {
	Service    string
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s returned status %d: %s", e.Service, e.StatusCode, e.Message)
}

// RateLimited reports whether the upstream refused for quota reasons.
func (e *HTTPError) RateLimited() bool {
	if e.StatusCode == http.StatusTooManyRequests || e.StatusCode == http.StatusPaymentRequired {
		return true
	}
	msg := strings.ToLower(e.Message)
	return strings.Contains(msg, "quota") || strings.Contains(msg, "rate limit")
}

type rateLimited interface {
	RateLimited() bool
}

func classify(err error) Reason {
	if errors.Is(err, errAttemptTimeout) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) {
		return ReasonTimeout
	}

	var rl rateLimited
	if errors.As(err, &rl) && rl.RateLimited() {
		return ReasonRateLimited
	}

	if errors.Is(err, ErrInvalidResponse) {
		return ReasonInvalidResponse
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ReasonTimeout
	}

	return ReasonNetwork
}
