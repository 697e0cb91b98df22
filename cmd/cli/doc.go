// Package cli assembles the artprune command hierarchy, configuration
// loading, and logger lifecycle.
package cli
