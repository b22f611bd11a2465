package store_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"

	"github.com/HieuLe2021/AutomateFlow-Tracker/internal/store"
)

func tokenServer(contentType, body string, code int) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		rw.Header().Set("Content-Type", contentType)
		rw.WriteHeader(code)
		_, _ = rw.Write([]byte(body))
	}))
}

func TestRequestToken(t *testing.T) {
	tt := []struct {
		name        string
		contentType string
		body        string
		code        int
		want        string
		wantErr     bool
	}{
		{name: "plain text trimmed", contentType: "text/plain", body: "abc123\n", code: http.StatusOK, want: "abc123"},
		{name: "accessToken field", contentType: "application/json", body: `{"accessToken":"xyz"}`, code: http.StatusOK, want: "xyz"},
		{name: "token field when accessToken absent", contentType: "application/json", body: `{"token":"t1"}`, code: http.StatusOK, want: "t1"},
		{name: "accessToken wins over token", contentType: "application/json", body: `{"token":"t1","accessToken":"xyz"}`, code: http.StatusOK, want: "xyz"},
		{name: "empty plain body", contentType: "text/plain", body: "  \n", code: http.StatusOK, wantErr: true},
		{name: "json without token field", contentType: "application/json", body: `{"foo":"bar"}`, code: http.StatusOK, wantErr: true},
		{name: "invalid json", contentType: "application/json", body: `{"token":`, code: http.StatusOK, wantErr: true},
		{name: "non-success status", contentType: "text/plain", body: "denied", code: http.StatusForbidden, wantErr: true},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			server := tokenServer(tc.contentType, tc.body, tc.code)
			defer server.Close()

			token, err := store.RequestToken(context.Background(), resty.New(), server.URL)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, token)
		})
	}
}

func TestRequestTokenCapturesErrorBody(t *testing.T) {
	server := tokenServer("text/plain", "token service down", http.StatusBadGateway)
	defer server.Close()

	_, err := store.RequestToken(context.Background(), resty.New(), server.URL)
	require.Error(t, err)

	var authErr *store.AuthError
	require.ErrorAs(t, err, &authErr)
	require.Equal(t, http.StatusBadGateway, authErr.StatusCode)
	require.Equal(t, "token service down", authErr.Body)
}

func TestRequestTokenHonorsCancellation(t *testing.T) {
	server := tokenServer("text/plain", "abc123", http.StatusOK)
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.RequestToken(ctx, resty.New(), server.URL)
	require.ErrorIs(t, err, context.Canceled)
}
