package store

import (
	"net/url"
	"strings"
)

const (
	// WorkflowsEndpoint is the collection path of workflow definitions
	// under the remote API root.
	WorkflowsEndpoint = "workflows"

	// TokenEndpoint is the default credential endpoint path.
	TokenEndpoint = "token"
)

// WorkflowsURL joins the API root with the workflow collection path.
func WorkflowsURL(root string) (string, error) {
	return url.JoinPath(strings.TrimSuffix(root, "/"), WorkflowsEndpoint)
}
