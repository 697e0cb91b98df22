package artifacts

import (
	"context"

	"github.com/temirov/artprune/internal/githubcli"
)

// AuthenticationVerifier confirms the platform session holds credentials.
type AuthenticationVerifier interface {
	VerifyAuthentication(executionContext context.Context) error
}

// RepositoryLister resolves the authenticated user and lists repository owners' repositories.
type RepositoryLister interface {
	CurrentUserLogin(executionContext context.Context) (string, error)
	ListOrganizations(executionContext context.Context) ([]string, error)
	ListRepositories(executionContext context.Context, owner string, resultLimit int) ([]string, error)
}

// ReleaseFetcher retrieves a repository's latest published release tag.
type ReleaseFetcher interface {
	LatestReleaseTag(executionContext context.Context, repository string) (string, error)
}

// ArtifactLister retrieves the full artifact listing for a repository.
type ArtifactLister interface {
	ListWorkflowArtifacts(executionContext context.Context, repository string) ([]githubcli.WorkflowArtifact, error)
}

// ArtifactDeleter removes a single artifact from the platform.
type ArtifactDeleter interface {
	DeleteWorkflowArtifact(executionContext context.Context, repository string, artifactID int64) error
}

// GitHubOperations bundles every platform capability consumed by the service.
type GitHubOperations interface {
	AuthenticationVerifier
	RepositoryLister
	ReleaseFetcher
	ArtifactLister
	ArtifactDeleter
}

// DecisionPrompter collects a pruning decision for one displayed artifact.
type DecisionPrompter interface {
	Decide(prompt string) (PruneDecision, error)
}
