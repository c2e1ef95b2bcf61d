package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client used for
// the agent's outbound calls to the gpg helper process and the page
// bridge. It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().SetBody(envelope).Post(helperURL)
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state, so the host adapter and
// the page bridge never share connection settings.
//
// Returns:
//
//	*HTTPClient - a ready-to-use HTTP client
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().
//	    SetHeader("Accept", "application/json").
//	    Post(bridgeURL + "/fill")
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
