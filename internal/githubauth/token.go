package githubauth

import (
	"os"
	"strings"
)

// Environment variable names recognized for GitHub authentication.
const (
	EnvGitHubCLIToken = "GH_TOKEN"
	EnvGitHubToken    = "GITHUB_TOKEN"
	EnvGitHubAPIToken = "GITHUB_API_TOKEN"
)

var tokenEnvironmentPreference = []string{
	EnvGitHubCLIToken,
	EnvGitHubToken,
	EnvGitHubAPIToken,
}

// ResolveToken returns the first non-empty GitHub token found in the provided
// environment map, falling back to the process environment.
func ResolveToken(environment map[string]string) (string, bool) {
	for _, environmentKey := range tokenEnvironmentPreference {
		if tokenValue, tokenFound := lookupEnvironmentValue(environment, environmentKey); tokenFound {
			return tokenValue, true
		}
	}
	for _, environmentKey := range tokenEnvironmentPreference {
		if rawValue, variablePresent := os.LookupEnv(environmentKey); variablePresent {
			trimmedValue := strings.TrimSpace(rawValue)
			if len(trimmedValue) > 0 {
				return trimmedValue, true
			}
		}
	}
	return "", false
}

// CommandEnvironment builds the environment variable map passed to GitHub CLI
// invocations so an explicit token survives sanitized environments.
func CommandEnvironment(environment map[string]string) map[string]string {
	tokenValue, tokenFound := ResolveToken(environment)
	if !tokenFound {
		return nil
	}
	return map[string]string{EnvGitHubCLIToken: tokenValue}
}

func lookupEnvironmentValue(environment map[string]string, environmentKey string) (string, bool) {
	if environment == nil {
		return "", false
	}
	rawValue, variablePresent := environment[environmentKey]
	if !variablePresent {
		return "", false
	}
	trimmedValue := strings.TrimSpace(rawValue)
	if len(trimmedValue) == 0 {
		return "", false
	}
	return trimmedValue, true
}
