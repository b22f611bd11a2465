package cmd_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/jarcoal/httpmock"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/HieuLe2021/AutomateFlow-Tracker/cmd"
	"github.com/HieuLe2021/AutomateFlow-Tracker/testutils"
)

func newListCommand(t *testing.T) (*cobra.Command, *resty.Client) {
	t.Helper()

	command := &cobra.Command{Use: "list", PersistentPreRunE: cmd.RootCmdPersistentPreRunE, RunE: cmd.ListCmdRunE}

	// Create a new resty client and inject it into the command context
	client := resty.New()
	ctx := context.WithValue(context.Background(), cmd.RestyClientKey, client)
	command.SetContext(ctx)

	cmd.SetupRootCmdFlags(command)
	cmd.SetupListCmdFlags(command)

	return command, client
}

func TestListCmd(t *testing.T) {
	tt := []struct {
		name      string
		args      []string
		err       string
		contains  []string
		endpoints []testutils.Endpoint
	}{
		{name: "no arg", args: []string{}, err: "URL cannot be empty"},
		{name: "url arg only", args: []string{"--url", testutils.RootUrl}, err: "URL cannot be empty"},
		{
			name: "url and token url",
			args: []string{"--url", testutils.RootUrl, "--token-url", testutils.TokenUrl},
			endpoints: []testutils.Endpoint{
				{Method: "POST", Url: testutils.TokenUrl, Data: "testdata/auth-token.json", Code: http.StatusOK},
				{Method: "GET", Url: "=~^" + testutils.WorkflowsUrl, Data: "testdata/workflows.json", Code: http.StatusOK},
			},
			contains: []string{"Send welcome mail", "Escalate overdue case", "2 of 2 record(s)"},
		},
		{
			name: "search and filters are passed through",
			args: []string{"--url", testutils.RootUrl, "--token-url", testutils.TokenUrl, "--search", "mail", "--category", "0", "--state", "1"},
			endpoints: []testutils.Endpoint{
				{Method: "POST", Url: testutils.TokenUrl, Data: "testdata/auth-token.json", Code: http.StatusOK},
				{Method: "GET", Url: "=~^" + testutils.WorkflowsUrl, Data: "testdata/workflows.json", Code: http.StatusOK},
			},
			contains: []string{"2 of 2 record(s)"},
		},
		{
			name: "data endpoint failure",
			args: []string{"--url", testutils.RootUrl, "--token-url", testutils.TokenUrl},
			endpoints: []testutils.Endpoint{
				{Method: "POST", Url: testutils.TokenUrl, Data: "testdata/auth-token.json", Code: http.StatusOK},
				{Method: "GET", Url: "=~^" + testutils.WorkflowsUrl, Data: "", Code: http.StatusInternalServerError},
			},
			err: "fetch error: status 500",
		},
		{
			name: "credential endpoint failure",
			args: []string{"--url", testutils.RootUrl, "--token-url", testutils.TokenUrl},
			endpoints: []testutils.Endpoint{
				{Method: "POST", Url: testutils.TokenUrl, Data: "", Code: http.StatusUnauthorized},
			},
			err: "auth error: status 401",
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			viper.Reset()
			command, client := newListCommand(t)

			// Enable http mocking on the resty client
			httpmock.ActivateNonDefault(client.GetClient())
			defer httpmock.DeactivateAndReset()

			for _, endpoint := range tc.endpoints {
				testutils.SetupMockResponder(t, endpoint.Method, endpoint.Url, endpoint.Data, endpoint.Code)
			}

			out, err := testutils.Execute(t, command, tc.args...)

			if tc.err != "" {
				require.ErrorContains(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			for _, want := range tc.contains {
				require.Contains(t, out, want)
			}
		})
	}
}

func TestListCmdSendsQueryParameters(t *testing.T) {
	viper.Reset()
	command, client := newListCommand(t)

	httpmock.ActivateNonDefault(client.GetClient())
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("POST", testutils.TokenUrl, testutils.AccessTokenResponder)

	var gotQuery string
	httpmock.RegisterResponder("GET", "=~^"+testutils.WorkflowsUrl,
		func(req *http.Request) (*http.Response, error) {
			gotQuery = req.URL.RawQuery
			require.Equal(t, "Bearer ya29.Gl0UBZ3", req.Header.Get("Authorization"))
			return httpmock.NewJsonResponse(http.StatusOK, map[string]interface{}{"value": []interface{}{}})
		})

	_, err := testutils.Execute(t, command,
		"--url", testutils.RootUrl, "--token-url", testutils.TokenUrl,
		"--search", "o'brien", "--state", "1", "--sort", "name:asc")
	require.NoError(t, err)

	require.Contains(t, gotQuery, "%24top=10")
	require.Contains(t, gotQuery, "%24count=true")
	require.Contains(t, gotQuery, "name+asc")
	require.Contains(t, gotQuery, "statecode+eq+1")
	require.Contains(t, gotQuery, "o%27%27brien")
}
