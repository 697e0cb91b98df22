package artifacts

import (
	"context"

	"go.uber.org/zap"
)

const (
	organizationListFailedLogMessageConstant = "organization listing failed; continuing with user repositories"
	repositoryListFailedLogMessageConstant   = "repository listing failed for owner; skipping"
	logFieldOwnerConstant                    = "owner"
)

// RepositoryEnumerator walks the two-level repository universe: the
// authenticated user's repositories followed by every organization's.
type RepositoryEnumerator struct {
	repositoryLister RepositoryLister
	logger           *zap.Logger
}

// NewRepositoryEnumerator constructs an enumerator over the provided lister.
func NewRepositoryEnumerator(repositoryLister RepositoryLister, logger *zap.Logger) *RepositoryEnumerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RepositoryEnumerator{repositoryLister: repositoryLister, logger: logger}
}

// EnumerateRepositories lists every repository in scope in platform listing
// order. Owners whose listing fails contribute zero repositories; only the
// initial identity lookup can fail the enumeration.
func (enumerator *RepositoryEnumerator) EnumerateRepositories(executionContext context.Context, repositoryLimit int) ([]string, error) {
	userLogin, loginError := enumerator.repositoryLister.CurrentUserLogin(executionContext)
	if loginError != nil {
		return nil, loginError
	}

	repositoryOwners := []string{userLogin}
	organizationLogins, organizationsError := enumerator.repositoryLister.ListOrganizations(executionContext)
	if organizationsError != nil {
		enumerator.logger.Warn(organizationListFailedLogMessageConstant, zap.Error(organizationsError))
	} else {
		repositoryOwners = append(repositoryOwners, organizationLogins...)
	}

	repositories := []string{}
	for _, repositoryOwner := range repositoryOwners {
		ownerRepositories, listError := enumerator.repositoryLister.ListRepositories(executionContext, repositoryOwner, repositoryLimit)
		if listError != nil {
			enumerator.logger.Warn(
				repositoryListFailedLogMessageConstant,
				zap.String(logFieldOwnerConstant, repositoryOwner),
				zap.Error(listError),
			)
			continue
		}
		repositories = append(repositories, ownerRepositories...)
	}

	return repositories, nil
}
