package store

import (
	"time"

	"github.com/google/uuid"
)

// Workflow is one workflow definition row from the remote API.
// It is a read-only mirror of remote state; this client never mutates it.
type Workflow struct {
	ID            uuid.UUID  `json:"workflowid"`
	Name          string     `json:"name"`
	UniqueName    string     `json:"uniquename"`
	Category      Category   `json:"category"`
	StateCode     State      `json:"statecode"`
	StatusCode    int        `json:"statuscode"`
	CreatedOn     *time.Time `json:"createdon"`
	ModifiedOn    *time.Time `json:"modifiedon"`
	CategoryLabel string     `json:"category@OData.Community.Display.V1.FormattedValue,omitempty"`
	StateLabel    string     `json:"statecode@OData.Community.Display.V1.FormattedValue,omitempty"`
}

// IsNil reports whether the workflow was not actually unmarshalled.
func (w *Workflow) IsNil() bool {
	return w == nil || w.ID == uuid.Nil
}

// Page is a normalized page of workflow results.
// Locator is the exact request URL that produced this page so callers can
// re-issue it for backward navigation.
type Page struct {
	Records    []Workflow
	NextLink   *string
	TotalCount int
	Locator    string
}

// HasNext reports whether the remote indicated further pages.
func (p *Page) HasNext() bool {
	return p != nil && p.NextLink != nil
}

// workflowsResponse is the raw OData response envelope.
type workflowsResponse struct {
	Value    []Workflow `json:"value"`
	NextLink *string    `json:"@odata.nextLink"`
	Count    int        `json:"@odata.count"`
}
