package testutils

import (
	"net/http"
	"os"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/require"
)

// Endpoint describes one mocked route for table-driven command tests.
type Endpoint struct {
	Method string
	Url    string
	Data   string // path to a JSON fixture; empty for an empty body
	Code   int
}

// SetupMockResponder registers a responder serving the fixture file.
func SetupMockResponder(t *testing.T, method, url, data string, code int) {
	body := ""
	if data != "" {
		raw, err := os.ReadFile(data)
		require.NoError(t, err)
		body = string(raw)
	}
	responder := httpmock.NewStringResponder(code, body)
	if data != "" {
		responder = responder.HeaderSet(http.Header{"Content-Type": []string{"application/json"}})
	}
	httpmock.RegisterResponder(method, url, responder)
}

// AccessTokenResponder serves a JSON credential body under "accessToken".
var AccessTokenResponder, _ = httpmock.NewJsonResponder(http.StatusOK, map[string]string{"accessToken": "ya29.Gl0UBZ3"})

// TokenFieldResponder serves a JSON credential body under "token".
var TokenFieldResponder, _ = httpmock.NewJsonResponder(http.StatusOK, map[string]string{"token": "t0ken"})

// PlainTokenResponder serves the credential as a bare text body.
var PlainTokenResponder = httpmock.NewStringResponder(http.StatusOK, "abc123\n").
	HeaderSet(http.Header{"Content-Type": []string{"text/plain"}})

// NotFoundResponder serves an empty 404.
var NotFoundResponder, _ = httpmock.NewJsonResponder(http.StatusNotFound, nil)
