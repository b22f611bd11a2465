package testutils

const (
	RootUrl  = "http://fakeurl:3001/api/data/v9.2/"
	TokenUrl = "http://fakeurl:3001/token"
)

var (
	WorkflowsUrl = RootUrl + "workflows"
)
