package artifacts_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/temirov/artprune/internal/artifacts"
)

type stubRepositoryLister struct {
	userLogin            string
	userLoginError       error
	organizations        []string
	organizationsError   error
	repositoriesByOwner  map[string][]string
	listingErrorsByOwner map[string]error
	requestedLimits      []int
}

func (lister *stubRepositoryLister) CurrentUserLogin(context.Context) (string, error) {
	return lister.userLogin, lister.userLoginError
}

func (lister *stubRepositoryLister) ListOrganizations(context.Context) ([]string, error) {
	return lister.organizations, lister.organizationsError
}

func (lister *stubRepositoryLister) ListRepositories(_ context.Context, owner string, resultLimit int) ([]string, error) {
	lister.requestedLimits = append(lister.requestedLimits, resultLimit)
	if listingError, errorPresent := lister.listingErrorsByOwner[owner]; errorPresent {
		return nil, listingError
	}
	return lister.repositoriesByOwner[owner], nil
}

func TestRepositoryEnumerator(testInstance *testing.T) {
	testInstance.Parallel()

	testCases := []struct {
		name                 string
		lister               *stubRepositoryLister
		expectedRepositories []string
	}{
		{
			name: "user_and_organization_repositories",
			lister: &stubRepositoryLister{
				userLogin:     "octocat",
				organizations: []string{"acme"},
				repositoriesByOwner: map[string][]string{
					"octocat": {"octocat/tool"},
					"acme":    {firstRepositoryConstant, secondRepositoryConstant},
				},
			},
			expectedRepositories: []string{"octocat/tool", firstRepositoryConstant, secondRepositoryConstant},
		},
		{
			name: "organization_listing_failure_keeps_user_repositories",
			lister: &stubRepositoryLister{
				userLogin:          "octocat",
				organizationsError: errors.New("organizations unavailable"),
				repositoriesByOwner: map[string][]string{
					"octocat": {"octocat/tool"},
				},
			},
			expectedRepositories: []string{"octocat/tool"},
		},
		{
			name: "failing_owner_is_skipped",
			lister: &stubRepositoryLister{
				userLogin:     "octocat",
				organizations: []string{"acme"},
				repositoriesByOwner: map[string][]string{
					"acme": {firstRepositoryConstant},
				},
				listingErrorsByOwner: map[string]error{
					"octocat": errors.New("listing unavailable"),
				},
			},
			expectedRepositories: []string{firstRepositoryConstant},
		},
		{
			name: "no_organizations",
			lister: &stubRepositoryLister{
				userLogin:     "octocat",
				organizations: []string{},
				repositoriesByOwner: map[string][]string{
					"octocat": {"octocat/tool"},
				},
			},
			expectedRepositories: []string{"octocat/tool"},
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		testInstance.Run(testCase.name, func(subtest *testing.T) {
			subtest.Parallel()

			enumerator := artifacts.NewRepositoryEnumerator(testCase.lister, zap.NewNop())
			repositories, enumerationError := enumerator.EnumerateRepositories(context.Background(), 100)

			require.NoError(subtest, enumerationError)
			require.Equal(subtest, testCase.expectedRepositories, repositories)
		})
	}
}

func TestRepositoryEnumeratorFailsWithoutIdentity(testInstance *testing.T) {
	testInstance.Parallel()

	identityFailure := errors.New("identity unavailable")
	enumerator := artifacts.NewRepositoryEnumerator(&stubRepositoryLister{userLoginError: identityFailure}, zap.NewNop())

	repositories, enumerationError := enumerator.EnumerateRepositories(context.Background(), 100)

	require.ErrorIs(testInstance, enumerationError, identityFailure)
	require.Nil(testInstance, repositories)
}
