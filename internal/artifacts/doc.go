// Package artifacts audits GitHub Actions artifact storage across every
// accessible repository and prunes prunable artifacts interactively, largest
// first. Artifacts whose name contains the repository's latest release tag
// are protected from deletion.
package artifacts
