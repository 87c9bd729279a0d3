package integrations

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"time"
)

// DefaultTimeout bounds a single request to a remote service.
const DefaultTimeout = 60 * time.Second

// ErrNetwork is returned for transport failures (connection refused, DNS
// errors, timeouts).
var ErrNetwork = errors.New("network error")

// StatusError reports a response other than 200 OK, or a 200 OK whose
// content type is HTML (a proxy or error page rather than the service).
type StatusError struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

func (e *StatusError) Error() string {
	if e.StatusCode == http.StatusOK {
		return fmt.Sprintf("unexpected %s response", e.ContentType)
	}
	return fmt.Sprintf("status %d", e.StatusCode)
}

// HTML reports whether the response was an HTML page.
func (e *StatusError) HTML() bool { return isHTML(e.ContentType) }

// NewHTTPClient creates an HTTP client with the given timeout, or
// [DefaultTimeout] when timeout is zero.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

func isHTML(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	return err == nil && mt == "text/html"
}

func checkStatus(code int, contentType string, body []byte) error {
	if code == http.StatusOK && !isHTML(contentType) {
		return nil
	}
	return &StatusError{StatusCode: code, ContentType: contentType, Body: body}
}
