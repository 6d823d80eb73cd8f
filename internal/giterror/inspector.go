package giterror

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
)

// StatusClass labels a non-success HTTP status that ended pagination.
type StatusClass string

const (
	StatusRateLimited   StatusClass = "rate_limited"
	StatusNotFound      StatusClass = "not_found"
	StatusForbidden     StatusClass = "forbidden"
	StatusUnprocessable StatusClass = "unprocessable"
	StatusServerError   StatusClass = "server_error"
	StatusClientError   StatusClass = "client_error"
	StatusOther         StatusClass = "other"
)

// Inspector provides methods for analyzing search API failures.
type Inspector interface {
	// IsNetworkError returns true if the error represents a network connectivity error.
	IsNetworkError(err error) bool

	// IsTimeout returns true if the error is a deadline or client timeout.
	IsTimeout(err error) bool

	// ClassifyStatus labels an HTTP status code that is not 2xx.
	ClassifyStatus(code int) StatusClass
}

// GitHubErrorInspector implements the Inspector interface for GitHub API errors.
type GitHubErrorInspector struct{}

// NewInspector creates a new GitHubErrorInspector.
func NewInspector() Inspector {
	return &GitHubErrorInspector{}
}

// IsNetworkError checks typed errors in the chain first and then falls back to
// matching the message text.
func (i *GitHubErrorInspector) IsNetworkError(err error) bool {
	if err == nil {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}

	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "connection reset") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "temporary failure") ||
		strings.Contains(errStr, "dial tcp") ||
		strings.Contains(errStr, "tls handshake") ||
		strings.Contains(errStr, "network is unreachable") ||
		strings.Contains(errStr, "eof")
}

// IsTimeout checks if the error is a timeout from the client or the context.
func (i *GitHubErrorInspector) IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "timeout")
}

// ClassifyStatus maps a status code onto a StatusClass. GitHub answers an
// exhausted secondary rate limit with 403, so 403 and 429 are kept apart.
func (i *GitHubErrorInspector) ClassifyStatus(code int) StatusClass {
	switch {
	case code == http.StatusTooManyRequests:
		return StatusRateLimited
	case code == http.StatusForbidden:
		return StatusForbidden
	case code == http.StatusNotFound:
		return StatusNotFound
	case code == http.StatusUnprocessableEntity:
		return StatusUnprocessable
	case code >= 500 && code <= 599:
		return StatusServerError
	case code >= 400 && code <= 499:
		return StatusClientError
	default:
		return StatusOther
	}
}
