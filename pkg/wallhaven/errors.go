package wallhaven

import "fmt"

// RequestError reports a failed HTTP exchange, either at the transport level or as a
// non-success status.
type RequestError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("request to %s returned status %d", e.URL, e.StatusCode)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}
