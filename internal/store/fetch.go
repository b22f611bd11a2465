package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// Client fetches workflow pages from the remote data API.
type Client struct {
	rest     *resty.Client
	tokenURL string
	dataURL  string
	pageSize int
}

// NewClient creates a workflow fetch client. dataURL is the workflow
// collection URL, tokenURL the credential endpoint.
func NewClient(rest *resty.Client, tokenURL, dataURL string) *Client {
	return &Client{rest: rest, tokenURL: tokenURL, dataURL: dataURL, pageSize: PageSize}
}

// SetPageSize overrides the fixed page size. Values <= 0 are ignored.
func (c *Client) SetPageSize(n int) *Client {
	if n > 0 {
		c.pageSize = n
	}
	return c
}

// PageSize returns the page size used for fresh requests.
func (c *Client) PageSize() int {
	return c.pageSize
}

// FetchPage retrieves one page of workflows.
//
// When locator is non-empty it is issued verbatim: the remote cursor is a
// fully-formed request locator, not a composable token. Otherwise a fresh
// request is built from the sort and filter. A bearer credential is
// requested before every call. The returned Page carries the exact locator
// used so the caller can push it onto its cursor stack.
func (c *Client) FetchPage(ctx context.Context, sort SortSpec, filter FilterSet, locator string) (*Page, error) {
	token, err := RequestToken(ctx, c.rest, c.tokenURL)
	if err != nil {
		return nil, err
	}

	requestURL := locator
	if requestURL == "" {
		requestURL = c.dataURL + "?" + BuildQuery(sort, filter, c.pageSize).Encode()
	}
	slog.Debug("fetching workflow page", "url", requestURL)

	response, err := c.rest.R().
		SetContext(ctx).
		SetAuthToken(token).
		Get(requestURL)
	if err != nil {
		return nil, errors.WithMessage(err, ErrorFetchingPage)
	}

	statusCode := response.StatusCode()
	if statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices {
		return nil, &FetchError{StatusCode: statusCode, Body: string(response.Body())}
	}

	var envelope workflowsResponse
	if err := json.Unmarshal(response.Body(), &envelope); err != nil {
		return nil, errors.WithMessage(err, ErrorFetchingPage)
	}

	page := &Page{
		Records:    envelope.Value,
		NextLink:   envelope.NextLink,
		TotalCount: envelope.Count,
		Locator:    requestURL,
	}
	slog.Debug("workflow page fetched", "records", len(page.Records), "total", page.TotalCount, "hasNext", page.HasNext())
	return page, nil
}
