package cmd

import (
	"context"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/cobra"

	"github.com/HieuLe2021/AutomateFlow-Tracker/internal/httpclient"
	"github.com/HieuLe2021/AutomateFlow-Tracker/internal/store"
)

type contextKey string

// RestyClientKey is the context key under which tests can inject a resty
// client with a mocked transport.
const RestyClientKey = contextKey("resty")

// RestClientFromContext returns the injected resty client, or a freshly
// configured one.
func RestClientFromContext(ctx context.Context) *resty.Client {
	if client, ok := ctx.Value(RestyClientKey).(*resty.Client); ok {
		return httpclient.NewWithClient(client)
	}
	return httpclient.New()
}

// CreateStoreClient builds the workflow fetch client from the CLI config.
func CreateStoreClient(cmd *cobra.Command, config Config) (*store.Client, error) {
	dataURL, err := store.WorkflowsURL(config.Url)
	if err != nil {
		return nil, err
	}

	rest := RestClientFromContext(cmd.Context())
	client := store.NewClient(rest, config.TokenUrl, dataURL)
	if config.PageSize > 0 {
		client.SetPageSize(config.PageSize)
	}
	return client, nil
}

// SortSpecFromFlag parses the --sort flag value ("field" or "field:desc").
func SortSpecFromFlag(value string) store.SortSpec {
	if value == "" {
		return store.SortSpec{}
	}
	field, order := value, store.SortAsc
	if i := strings.IndexByte(value, ':'); i >= 0 {
		field, order = value[:i], value[i+1:]
	}
	return store.SortSpec{Field: field, Order: order}
}
