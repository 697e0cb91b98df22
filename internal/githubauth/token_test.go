package githubauth_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/artprune/internal/githubauth"
)

func TestResolveTokenPreference(testInstance *testing.T) {
	testCases := []struct {
		name          string
		environment   map[string]string
		expectedToken string
		expectedFound bool
	}{
		{
			name:          "cli_token_preferred",
			environment:   map[string]string{githubauth.EnvGitHubCLIToken: "cli-token", githubauth.EnvGitHubToken: "generic-token"},
			expectedToken: "cli-token",
			expectedFound: true,
		},
		{
			name:          "generic_token_fallback",
			environment:   map[string]string{githubauth.EnvGitHubToken: "generic-token"},
			expectedToken: "generic-token",
			expectedFound: true,
		},
		{
			name:          "api_token_fallback",
			environment:   map[string]string{githubauth.EnvGitHubAPIToken: "api-token"},
			expectedToken: "api-token",
			expectedFound: true,
		},
		{
			name:        "whitespace_token_ignored",
			environment: map[string]string{githubauth.EnvGitHubCLIToken: "   "},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subTest *testing.T) {
			for _, environmentKey := range []string{githubauth.EnvGitHubCLIToken, githubauth.EnvGitHubToken, githubauth.EnvGitHubAPIToken} {
				subTest.Setenv(environmentKey, "")
			}

			resolvedToken, tokenFound := githubauth.ResolveToken(testCase.environment)
			require.Equal(subTest, testCase.expectedFound, tokenFound)
			require.Equal(subTest, testCase.expectedToken, resolvedToken)
		})
	}
}

func TestCommandEnvironment(testInstance *testing.T) {
	testInstance.Run("token_present", func(subTest *testing.T) {
		environment := githubauth.CommandEnvironment(map[string]string{githubauth.EnvGitHubToken: "generic-token"})
		require.Equal(subTest, map[string]string{githubauth.EnvGitHubCLIToken: "generic-token"}, environment)
	})

	testInstance.Run("token_absent", func(subTest *testing.T) {
		for _, environmentKey := range []string{githubauth.EnvGitHubCLIToken, githubauth.EnvGitHubToken, githubauth.EnvGitHubAPIToken} {
			subTest.Setenv(environmentKey, "")
		}
		require.Nil(subTest, githubauth.CommandEnvironment(nil))
	})
}
