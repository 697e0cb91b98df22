package artifacts_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/artprune/internal/artifacts"
	"github.com/temirov/artprune/internal/githubcli"
)

func buildCommandOperations() *stubGitHubOperations {
	return &stubGitHubOperations{
		userLogin: "octocat",
		repositoriesByOwner: map[string][]string{
			"octocat": {firstRepositoryConstant},
		},
		artifactsByRepository: map[string][]githubcli.WorkflowArtifact{
			firstRepositoryConstant: {{ID: 1, Name: "bundle", SizeInBytes: 10485760}},
		},
	}
}

func TestAuditCommandProducesReportWithoutPrompts(testInstance *testing.T) {
	testInstance.Parallel()

	operations := buildCommandOperations()
	prompter := &scriptedPrompter{}
	builder := &artifacts.CommandBuilder{GitHubOperations: operations, Prompter: prompter}

	auditCommand, buildError := builder.BuildAuditCommand()
	require.NoError(testInstance, buildError)

	outputBuffer := &bytes.Buffer{}
	auditCommand.SetOut(outputBuffer)
	auditCommand.SetErr(outputBuffer)
	auditCommand.SetContext(context.Background())
	auditCommand.SetArgs([]string{})

	require.NoError(testInstance, auditCommand.Execute())
	require.Zero(testInstance, prompter.promptCount)
	require.Empty(testInstance, operations.deletedArtifactIDs)
	require.Contains(testInstance, outputBuffer.String(), firstRepositoryConstant+": 10.00 MB")
}

func TestPurgeCommandHonorsDryRunFlag(testInstance *testing.T) {
	testInstance.Parallel()

	operations := buildCommandOperations()
	prompter := &scriptedPrompter{decisions: []artifacts.PruneDecision{artifacts.PruneDecisionDelete}}
	builder := &artifacts.CommandBuilder{GitHubOperations: operations, Prompter: prompter}

	purgeCommand, buildError := builder.BuildPurgeCommand()
	require.NoError(testInstance, buildError)

	outputBuffer := &bytes.Buffer{}
	purgeCommand.SetOut(outputBuffer)
	purgeCommand.SetErr(outputBuffer)
	purgeCommand.SetContext(context.Background())
	purgeCommand.SetArgs([]string{"--dry-run"})

	require.NoError(testInstance, purgeCommand.Execute())
	require.Zero(testInstance, prompter.promptCount)
	require.Empty(testInstance, operations.deletedArtifactIDs)
	require.Contains(testInstance, outputBuffer.String(), "Dry run finished: 1 deletion candidates")
}

func TestPurgeCommandDeletesWhenConfirmed(testInstance *testing.T) {
	testInstance.Parallel()

	operations := buildCommandOperations()
	prompter := &scriptedPrompter{decisions: []artifacts.PruneDecision{artifacts.PruneDecisionDelete}}
	builder := &artifacts.CommandBuilder{
		GitHubOperations: operations,
		Prompter:         prompter,
		ConfigurationProvider: func() artifacts.Configuration {
			return artifacts.Configuration{RepositoryLimit: 50}
		},
	}

	purgeCommand, buildError := builder.BuildPurgeCommand()
	require.NoError(testInstance, buildError)

	outputBuffer := &bytes.Buffer{}
	purgeCommand.SetOut(outputBuffer)
	purgeCommand.SetErr(outputBuffer)
	purgeCommand.SetContext(context.Background())
	purgeCommand.SetArgs([]string{})

	require.NoError(testInstance, purgeCommand.Execute())
	require.Equal(testInstance, []int64{1}, operations.deletedArtifactIDs)
	require.Contains(testInstance, outputBuffer.String(), "Deleted bundle")
}

func TestPurgeCommandRejectsPositionalArguments(testInstance *testing.T) {
	testInstance.Parallel()

	builder := &artifacts.CommandBuilder{GitHubOperations: buildCommandOperations(), Prompter: &scriptedPrompter{}}

	purgeCommand, buildError := builder.BuildPurgeCommand()
	require.NoError(testInstance, buildError)

	purgeCommand.SetOut(&bytes.Buffer{})
	purgeCommand.SetErr(&bytes.Buffer{})
	purgeCommand.SetContext(context.Background())
	purgeCommand.SetArgs([]string{"unexpected"})

	require.Error(testInstance, purgeCommand.Execute())
}

func TestConfigurationSanitizeRestoresDefaults(testInstance *testing.T) {
	testInstance.Parallel()

	sanitized := artifacts.Configuration{RepositoryLimit: -5}.Sanitize()
	require.Equal(testInstance, artifacts.DefaultConfiguration().RepositoryLimit, sanitized.RepositoryLimit)
}
