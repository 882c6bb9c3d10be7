package utils

import (
	"net/http"

	"github.com/go-resty/resty/v2"
)

// relayUserAgent identifies gateway traffic in the core service's access log.
const relayUserAgent = "shareit-gateway"

// HTTPClient embeds *resty.Client so callers use its request builder
// directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client suited to relaying: redirects are handed
// back to the caller instead of being followed, and nothing is retried.
//
// Each call returns an independent client with its own connection pool.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetRedirectPolicy(resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		})).
		SetRetryCount(0).
		SetHeader("User-Agent", relayUserAgent)

	return &HTTPClient{Client: client}
}
