// Package httpclient builds the resty client used for all remote calls.
package httpclient

import (
	"log/slog"

	"github.com/go-resty/resty/v2"
)

// odataHeaders are the content negotiation headers the data API expects,
// including the request for formatted-value annotations.
var odataHeaders = map[string]string{
	"Accept":           "application/json",
	"OData-MaxVersion": "4.0",
	"OData-Version":    "4.0",
	"Prefer":           `odata.include-annotations="*"`,
}

// New creates a resty client preconfigured for the data API. No retries
// are configured: a failed fetch is terminal for that attempt.
func New() *resty.Client {
	slog.Debug("creating REST client")
	return resty.New().SetHeaders(odataHeaders)
}

// NewWithClient wraps an existing resty client with the data API headers.
// Used by tests to inject a client with a mocked transport.
func NewWithClient(client *resty.Client) *resty.Client {
	return client.SetHeaders(odataHeaders)
}
