package githubcli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/temirov/artprune/internal/execshell"
)

const (
	apiSubcommandConstant                 = "api"
	authSubcommandConstant                = "auth"
	statusSubcommandConstant              = "status"
	repoSubcommandConstant                = "repo"
	listSubcommandConstant                = "list"
	jsonFlagConstant                      = "--json"
	limitFlagConstant                     = "--limit"
	paginateFlagConstant                  = "--paginate"
	methodFlagConstant                    = "-X"
	deleteMethodConstant                  = "DELETE"
	currentUserEndpointConstant           = "user"
	organizationsEndpointConstant         = "user/orgs"
	latestReleaseEndpointTemplateConstant = "repos/%s/releases/latest"
	artifactsEndpointTemplateConstant     = "repos/%s/actions/artifacts"
	artifactEndpointTemplateConstant      = "repos/%s/actions/artifacts/%d"
	repositoryListJSONFieldsConstant      = "nameWithOwner"
	repositoryListDefaultLimitConstant    = 1000

	ownerFieldNameConstant               = "owner"
	repositoryFieldNameConstant          = "repository"
	artifactIdentifierFieldNameConstant  = "artifact_id"
	requiredValueMessageConstant         = "value required"
	positiveValueMessageConstant         = "positive value required"
	executorNotConfiguredMessageConstant = "github cli executor not configured"
	notAuthenticatedMessageConstant      = "not authenticated with github"
	releaseNotFoundMessageConstant       = "repository has no published release"

	operationErrorTemplateConstant        = "%s operation failed: %s"
	responseDecodingErrorTemplateConstant = "%s response decoding failed: %s"
	invalidInputErrorTemplateConstant     = "%s: %s"

	verifyAuthenticationOperationConstant  = OperationName("VerifyAuthentication")
	currentUserOperationConstant           = OperationName("CurrentUserLogin")
	listOrganizationsOperationConstant     = OperationName("ListOrganizations")
	listRepositoriesOperationConstant      = OperationName("ListRepositories")
	latestReleaseOperationConstant         = OperationName("LatestReleaseTag")
	listArtifactsOperationConstant         = OperationName("ListWorkflowArtifacts")
	deleteArtifactOperationConstant        = OperationName("DeleteWorkflowArtifact")
)

// OperationName describes a named GitHub CLI workflow supported by the client.
type OperationName string

// WorkflowArtifact represents one GitHub Actions artifact returned by the listing API.
type WorkflowArtifact struct {
	ID                 int64
	Name               string
	SizeInBytes        int64
	CreatedAt          string
	PullRequestNumbers []int
}

// GitHubCommandExecutor is the minimal interface required from execshell.ShellExecutor.
type GitHubCommandExecutor interface {
	ExecuteGitHubCLI(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// Client coordinates GitHub CLI invocations through execshell.
type Client struct {
	executor    GitHubCommandExecutor
	environment map[string]string
}

var (
	// ErrExecutorNotConfigured indicates the client was constructed without an executor.
	ErrExecutorNotConfigured = errors.New(executorNotConfiguredMessageConstant)
	// ErrNotAuthenticated indicates the GitHub CLI session lacks credentials.
	ErrNotAuthenticated = errors.New(notAuthenticatedMessageConstant)
	// ErrReleaseNotFound indicates the repository has no published release.
	ErrReleaseNotFound = errors.New(releaseNotFoundMessageConstant)
)

// InvalidInputError surfaces validation issues for operation inputs.
type InvalidInputError struct {
	FieldName string
	Message   string
}

// Error describes the invalid input.
func (inputError InvalidInputError) Error() string {
	return fmt.Sprintf(invalidInputErrorTemplateConstant, inputError.FieldName, inputError.Message)
}

// OperationError wraps execution issues for GitHub CLI operations.
type OperationError struct {
	Operation OperationName
	Cause     error
}

// Error describes the operation failure.
func (operationError OperationError) Error() string {
	return fmt.Sprintf(operationErrorTemplateConstant, operationError.Operation, operationError.Cause)
}

// Unwrap exposes the underlying cause.
func (operationError OperationError) Unwrap() error {
	return operationError.Cause
}

// ResponseDecodingError indicates JSON decoding failures.
type ResponseDecodingError struct {
	Operation OperationName
	Cause     error
}

// Error describes the decoding failure.
func (decodingError ResponseDecodingError) Error() string {
	return fmt.Sprintf(responseDecodingErrorTemplateConstant, decodingError.Operation, decodingError.Cause)
}

// Unwrap exposes the underlying JSON error.
func (decodingError ResponseDecodingError) Unwrap() error {
	return decodingError.Cause
}

// NewClient constructs a GitHub CLI client. The optional environment map is
// forwarded to every gh invocation.
func NewClient(executor GitHubCommandExecutor, environment map[string]string) (*Client, error) {
	if executor == nil {
		return nil, ErrExecutorNotConfigured
	}
	return &Client{executor: executor, environment: environment}, nil
}

// VerifyAuthentication confirms the GitHub CLI holds active credentials using gh auth status.
func (client *Client) VerifyAuthentication(executionContext context.Context) error {
	_, executionError := client.run(executionContext, authSubcommandConstant, statusSubcommandConstant)
	if executionError != nil {
		commandFailure := execshell.CommandFailedError{}
		if errors.As(executionError, &commandFailure) {
			return ErrNotAuthenticated
		}
		return OperationError{Operation: verifyAuthenticationOperationConstant, Cause: executionError}
	}
	return nil
}

// CurrentUserLogin resolves the authenticated principal's login using gh api user.
func (client *Client) CurrentUserLogin(executionContext context.Context) (string, error) {
	executionResult, executionError := client.run(executionContext, apiSubcommandConstant, currentUserEndpointConstant)
	if executionError != nil {
		return "", OperationError{Operation: currentUserOperationConstant, Cause: executionError}
	}

	var response struct {
		Login string `json:"login"`
	}
	if decodingError := json.Unmarshal([]byte(executionResult.StandardOutput), &response); decodingError != nil {
		return "", ResponseDecodingError{Operation: currentUserOperationConstant, Cause: decodingError}
	}

	return response.Login, nil
}

// ListOrganizations enumerates the organizations the authenticated user belongs to.
func (client *Client) ListOrganizations(executionContext context.Context) ([]string, error) {
	executionResult, executionError := client.run(executionContext, apiSubcommandConstant, organizationsEndpointConstant, paginateFlagConstant)
	if executionError != nil {
		return nil, OperationError{Operation: listOrganizationsOperationConstant, Cause: executionError}
	}

	organizationLogins := []string{}
	responseDecoder := json.NewDecoder(strings.NewReader(executionResult.StandardOutput))
	for {
		var page []struct {
			Login string `json:"login"`
		}
		decodingError := responseDecoder.Decode(&page)
		if decodingError == io.EOF {
			break
		}
		if decodingError != nil {
			return nil, ResponseDecodingError{Operation: listOrganizationsOperationConstant, Cause: decodingError}
		}
		for _, organizationEntry := range page {
			trimmedLogin := strings.TrimSpace(organizationEntry.Login)
			if len(trimmedLogin) > 0 {
				organizationLogins = append(organizationLogins, trimmedLogin)
			}
		}
	}

	return organizationLogins, nil
}

// ListRepositories enumerates repositories owned by the provided user or organization.
func (client *Client) ListRepositories(executionContext context.Context, owner string, resultLimit int) ([]string, error) {
	trimmedOwner := strings.TrimSpace(owner)
	if len(trimmedOwner) == 0 {
		return nil, InvalidInputError{FieldName: ownerFieldNameConstant, Message: requiredValueMessageConstant}
	}
	if resultLimit <= 0 {
		resultLimit = repositoryListDefaultLimitConstant
	}

	executionResult, executionError := client.run(
		executionContext,
		repoSubcommandConstant,
		listSubcommandConstant,
		trimmedOwner,
		limitFlagConstant,
		strconv.Itoa(resultLimit),
		jsonFlagConstant,
		repositoryListJSONFieldsConstant,
	)
	if executionError != nil {
		return nil, OperationError{Operation: listRepositoriesOperationConstant, Cause: executionError}
	}

	var response []struct {
		NameWithOwner string `json:"nameWithOwner"`
	}
	if decodingError := json.Unmarshal([]byte(executionResult.StandardOutput), &response); decodingError != nil {
		return nil, ResponseDecodingError{Operation: listRepositoriesOperationConstant, Cause: decodingError}
	}

	repositoryNames := make([]string, 0, len(response))
	for _, repositoryEntry := range response {
		trimmedName := strings.TrimSpace(repositoryEntry.NameWithOwner)
		if len(trimmedName) > 0 {
			repositoryNames = append(repositoryNames, trimmedName)
		}
	}

	return repositoryNames, nil
}

// LatestReleaseTag fetches the tag of the repository's latest published
// release. ErrReleaseNotFound is returned when the platform reports none.
func (client *Client) LatestReleaseTag(executionContext context.Context, repository string) (string, error) {
	trimmedRepository := strings.TrimSpace(repository)
	if len(trimmedRepository) == 0 {
		return "", InvalidInputError{FieldName: repositoryFieldNameConstant, Message: requiredValueMessageConstant}
	}

	endpoint := fmt.Sprintf(latestReleaseEndpointTemplateConstant, trimmedRepository)
	executionResult, executionError := client.run(executionContext, apiSubcommandConstant, endpoint)
	if executionError != nil {
		commandFailure := execshell.CommandFailedError{}
		if errors.As(executionError, &commandFailure) {
			return "", ErrReleaseNotFound
		}
		return "", OperationError{Operation: latestReleaseOperationConstant, Cause: executionError}
	}

	var response struct {
		TagName string `json:"tag_name"`
	}
	if decodingError := json.Unmarshal([]byte(executionResult.StandardOutput), &response); decodingError != nil {
		return "", ResponseDecodingError{Operation: latestReleaseOperationConstant, Cause: decodingError}
	}

	trimmedTag := strings.TrimSpace(response.TagName)
	if len(trimmedTag) == 0 {
		return "", ErrReleaseNotFound
	}

	return trimmedTag, nil
}

// ListWorkflowArtifacts fetches every artifact stored for the repository.
// Paginated gh api output arrives as concatenated JSON documents which are
// merged into a single listing. Artifacts whose size field cannot be parsed
// are reported with a zero size.
func (client *Client) ListWorkflowArtifacts(executionContext context.Context, repository string) ([]WorkflowArtifact, error) {
	trimmedRepository := strings.TrimSpace(repository)
	if len(trimmedRepository) == 0 {
		return nil, InvalidInputError{FieldName: repositoryFieldNameConstant, Message: requiredValueMessageConstant}
	}

	endpoint := fmt.Sprintf(artifactsEndpointTemplateConstant, trimmedRepository)
	executionResult, executionError := client.run(executionContext, apiSubcommandConstant, endpoint, paginateFlagConstant)
	if executionError != nil {
		return nil, OperationError{Operation: listArtifactsOperationConstant, Cause: executionError}
	}

	artifacts := []WorkflowArtifact{}
	responseDecoder := json.NewDecoder(strings.NewReader(executionResult.StandardOutput))
	for {
		var page struct {
			Artifacts []struct {
				ID          int64           `json:"id"`
				Name        string          `json:"name"`
				SizeInBytes json.RawMessage `json:"size_in_bytes"`
				CreatedAt   string          `json:"created_at"`
				WorkflowRun struct {
					PullRequests []struct {
						Number int `json:"number"`
					} `json:"pull_requests"`
				} `json:"workflow_run"`
			} `json:"artifacts"`
		}
		decodingError := responseDecoder.Decode(&page)
		if decodingError == io.EOF {
			break
		}
		if decodingError != nil {
			return nil, ResponseDecodingError{Operation: listArtifactsOperationConstant, Cause: decodingError}
		}

		for _, artifactEntry := range page.Artifacts {
			pullRequestNumbers := make([]int, 0, len(artifactEntry.WorkflowRun.PullRequests))
			for _, pullRequestEntry := range artifactEntry.WorkflowRun.PullRequests {
				pullRequestNumbers = append(pullRequestNumbers, pullRequestEntry.Number)
			}
			artifacts = append(artifacts, WorkflowArtifact{
				ID:                 artifactEntry.ID,
				Name:               artifactEntry.Name,
				SizeInBytes:        parseArtifactSize(artifactEntry.SizeInBytes),
				CreatedAt:          artifactEntry.CreatedAt,
				PullRequestNumbers: pullRequestNumbers,
			})
		}
	}

	return artifacts, nil
}

// DeleteWorkflowArtifact deletes one artifact by repository and identifier.
func (client *Client) DeleteWorkflowArtifact(executionContext context.Context, repository string, artifactID int64) error {
	trimmedRepository := strings.TrimSpace(repository)
	if len(trimmedRepository) == 0 {
		return InvalidInputError{FieldName: repositoryFieldNameConstant, Message: requiredValueMessageConstant}
	}
	if artifactID <= 0 {
		return InvalidInputError{FieldName: artifactIdentifierFieldNameConstant, Message: positiveValueMessageConstant}
	}

	endpoint := fmt.Sprintf(artifactEndpointTemplateConstant, trimmedRepository, artifactID)
	_, executionError := client.run(executionContext, apiSubcommandConstant, methodFlagConstant, deleteMethodConstant, endpoint)
	if executionError != nil {
		return OperationError{Operation: deleteArtifactOperationConstant, Cause: executionError}
	}

	return nil
}

func (client *Client) run(executionContext context.Context, arguments ...string) (execshell.ExecutionResult, error) {
	commandDetails := execshell.CommandDetails{
		Arguments:            arguments,
		EnvironmentVariables: client.environment,
	}
	return client.executor.ExecuteGitHubCLI(executionContext, commandDetails)
}

// parseArtifactSize interprets the raw size_in_bytes field. Unparseable values
// collapse to zero so the collector can discard the record.
func parseArtifactSize(rawSize json.RawMessage) int64 {
	trimmedRaw := bytes.TrimSpace(rawSize)
	if len(trimmedRaw) == 0 {
		return 0
	}

	var numericSize int64
	if unmarshalError := json.Unmarshal(trimmedRaw, &numericSize); unmarshalError == nil {
		return numericSize
	}

	var textualSize string
	if unmarshalError := json.Unmarshal(trimmedRaw, &textualSize); unmarshalError == nil {
		parsedSize, parseError := strconv.ParseInt(strings.TrimSpace(textualSize), 10, 64)
		if parseError == nil {
			return parsedSize
		}
	}

	return 0
}
