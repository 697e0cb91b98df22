// Package githubcli wraps GitHub CLI invocations behind typed operations for
// authentication checks, repository and organization listing, latest-release
// lookup, and workflow artifact listing and deletion.
package githubcli
