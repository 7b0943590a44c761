package relay

import (
	"fmt"
	"io"
	"strings"
)

// maxResponseBytes caps how much of a webhook response is read.
const maxResponseBytes = 1 << 20

// HTTPError carries the status and body of a non-2xx webhook response.
type HTTPError struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http error: %s %s status=%d body=%s", e.Method, e.URL, e.StatusCode, snippet(e.Body, 300))
}

func snippet(b []byte, max int) string {
	s := strings.TrimSpace(string(b))
	if len(s) <= max {
		return s
	}
	return s[:max] + "…"
}

// readAndClose drains rc so the connection can be reused.
func readAndClose(rc io.ReadCloser) ([]byte, error) {
	defer rc.Close()
	return io.ReadAll(io.LimitReader(rc, maxResponseBytes))
}
