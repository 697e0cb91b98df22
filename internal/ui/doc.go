// Package ui renders human-readable command lifecycle events for console
// logging configurations.
package ui
