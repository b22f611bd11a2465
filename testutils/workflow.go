package testutils

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jarcoal/httpmock"

	"github.com/HieuLe2021/AutomateFlow-Tracker/internal/store"
	"github.com/HieuLe2021/AutomateFlow-Tracker/internal/utils"
)

const (
	DummyUUIDStr = "5aa19d2a-4bdf-4687-a850-1804756b3f1f"
)

var ModifiedDate = time.Date(2024, time.March, 1, 16, 54, 2, 651000000, time.UTC) // "2024-03-01T16:54:02.651Z"

// NewWorkflows builds n activated workflow fixtures.
func NewWorkflows(n int) []store.Workflow {
	workflows := make([]store.Workflow, 0, n)
	for i := 0; i < n; i++ {
		workflows = append(workflows, store.Workflow{
			ID:         uuid.New(),
			Name:       fmt.Sprintf("Workflow %d", i+1),
			UniqueName: fmt.Sprintf("new_workflow_%d", i+1),
			Category:   store.CategoryWorkflow,
			StateCode:  store.StateActivated,
			StatusCode: 2,
			CreatedOn:  utils.Ptr(ModifiedDate.Add(-24 * time.Hour)),
			ModifiedOn: utils.Ptr(ModifiedDate),
		})
	}
	return workflows
}

// envelope mirrors the remote response shape for fixtures.
type envelope struct {
	Value    []store.Workflow `json:"value"`
	NextLink *string          `json:"@odata.nextLink,omitempty"`
	Count    int              `json:"@odata.count"`
}

// WorkflowPageResponder serves a page of workflows with an optional
// forward cursor.
func WorkflowPageResponder(workflows []store.Workflow, nextLink *string, count int) httpmock.Responder {
	responder, err := httpmock.NewJsonResponder(http.StatusOK, envelope{
		Value:    workflows,
		NextLink: nextLink,
		Count:    count,
	})
	if err != nil {
		panic(err)
	}
	return responder
}
