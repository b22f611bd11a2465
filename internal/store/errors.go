package store

import "fmt"

const (
	ErrorRequestingToken = "unable to request access token"
	ErrorFetchingPage    = "unable to fetch workflow page"
)

// AuthError means credential retrieval failed or returned an unusable body.
type AuthError struct {
	StatusCode int
	Body       string
	Reason     string
}

func (e *AuthError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("auth error: %s", e.Reason)
	}
	return fmt.Sprintf("auth error: status %d: %s", e.StatusCode, e.Body)
}

// FetchError means the data endpoint returned a non-success status.
type FetchError struct {
	StatusCode int
	Body       string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch error: status %d: %s", e.StatusCode, e.Body)
}
