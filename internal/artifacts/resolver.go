package artifacts

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/temirov/artprune/internal/githubcli"
)

const (
	releaseLookupFailedLogMessageConstant = "latest release lookup failed; treating repository as unprotected"
	logFieldRepositoryConstant            = "repository"
)

// ReleaseResolver fetches and caches each repository's latest release tag. A
// repository is resolved at most once per run; absence of a release is cached
// the same as presence.
type ReleaseResolver struct {
	releaseFetcher ReleaseFetcher
	inventory      *Inventory
	logger         *zap.Logger
	resolved       map[string]bool
}

// NewReleaseResolver constructs a resolver writing tags into the inventory.
func NewReleaseResolver(releaseFetcher ReleaseFetcher, inventory *Inventory, logger *zap.Logger) *ReleaseResolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReleaseResolver{
		releaseFetcher: releaseFetcher,
		inventory:      inventory,
		logger:         logger,
		resolved:       make(map[string]bool),
	}
}

// Resolve returns the repository's latest release tag when one exists. Lookup
// failures are absorbed and leave the repository unprotected.
func (resolver *ReleaseResolver) Resolve(executionContext context.Context, repository string) (string, bool) {
	if resolver.resolved[repository] {
		return resolver.inventory.ReleaseTag(repository)
	}
	resolver.resolved[repository] = true

	releaseTag, lookupError := resolver.releaseFetcher.LatestReleaseTag(executionContext, repository)
	if lookupError != nil {
		if !errors.Is(lookupError, githubcli.ErrReleaseNotFound) {
			resolver.logger.Warn(
				releaseLookupFailedLogMessageConstant,
				zap.String(logFieldRepositoryConstant, repository),
				zap.Error(lookupError),
			)
		}
		return "", false
	}

	resolver.inventory.RecordReleaseTag(repository, releaseTag)
	return resolver.inventory.ReleaseTag(repository)
}
