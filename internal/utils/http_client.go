package utils

import (
	"github.com/go-resty/resty/v2"
)

// UserAgent identifies the admin client to the backend.
const UserAgent = "sparknest-admin"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient that speaks JSON and never retries.
// Each call returns an independent client with its own connection pool.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", UserAgent).
		SetRetryCount(0)

	return &HTTPClient{Client: client}
}
