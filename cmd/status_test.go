package cmd_test

import (
	"context"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/jarcoal/httpmock"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/HieuLe2021/AutomateFlow-Tracker/cmd"
	"github.com/HieuLe2021/AutomateFlow-Tracker/testutils"
)

func newStatusCommand(t *testing.T) (*cobra.Command, *resty.Client) {
	t.Helper()
	viper.Reset()

	command := &cobra.Command{Use: "status", PersistentPreRunE: cmd.RootCmdPersistentPreRunE, RunE: cmd.StatusCmdRunE}

	client := resty.New()
	ctx := context.WithValue(context.Background(), cmd.RestyClientKey, client)
	command.SetContext(ctx)

	cmd.SetupRootCmdFlags(command)

	return command, client
}

func TestStatusCmd(t *testing.T) {
	command, client := newStatusCommand(t)

	httpmock.ActivateNonDefault(client.GetClient())
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("POST", testutils.TokenUrl, testutils.TokenFieldResponder)
	httpmock.RegisterResponder("GET", "=~^"+testutils.WorkflowsUrl,
		testutils.WorkflowPageResponder(testutils.NewWorkflows(1), nil, 1))

	out, err := testutils.Execute(t, command, "--url", testutils.RootUrl, "--token-url", testutils.TokenUrl)
	require.NoError(t, err)
	require.Contains(t, out, "credential endpoint: ok")
	require.Contains(t, out, "data endpoint: ok")
}

func TestStatusCmdReportsTokenFailure(t *testing.T) {
	command, client := newStatusCommand(t)

	httpmock.ActivateNonDefault(client.GetClient())
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("POST", testutils.TokenUrl, testutils.NotFoundResponder)
	httpmock.RegisterResponder("GET", "=~^"+testutils.WorkflowsUrl,
		testutils.WorkflowPageResponder(testutils.NewWorkflows(1), nil, 1))

	_, err := testutils.Execute(t, command, "--url", testutils.RootUrl, "--token-url", testutils.TokenUrl)
	require.ErrorContains(t, err, "auth error")
}
