package wallhaven

import (
	"net/http"
)

// UserAgentTransport wraps an http.RoundTripper and adds a User-Agent header.
type UserAgentTransport struct {
	http.RoundTripper
	UserAgent string
}

// RoundTrip executes a single HTTP transaction, adding the User-Agent header.
func (t *UserAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clonedReq := req.Clone(req.Context())
	clonedReq.Header.Set("User-Agent", t.UserAgent)
	return t.RoundTripper.RoundTrip(clonedReq)
}

// NewHTTPClient returns the client shared by search and image downloads.
func NewHTTPClient() *http.Client {
	return &http.Client{
		Timeout: requestTimeout,
		Transport: &UserAgentTransport{
			RoundTripper: http.DefaultTransport,
			UserAgent:    UserAgent,
		},
	}
}
