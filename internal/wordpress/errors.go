package wordpress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strings"
)

var (
	// ErrTimeout is returned when a request does not complete within its deadline
	ErrTimeout = errors.New("request timed out")
	// ErrConnection is returned when the site cannot be reached
	ErrConnection = errors.New("connection failed")
)

// APIError is a response from WordPress with an unexpected status code
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("WordPress API error (status %d): %s", e.StatusCode, e.Detail)
}

// newAPIError builds an APIError, preferring the "message" field of a JSON
// error body over the raw body text
func newAPIError(status int, body []byte) *APIError {
	detail := strings.TrimSpace(string(body))

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		detail = payload.Message
	}

	return &APIError{StatusCode: status, Detail: detail}
}

// transportError wraps a failed round trip in ErrTimeout or ErrConnection
func transportError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %v", ErrConnection, err)
}
