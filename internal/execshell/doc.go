// Package execshell executes external commands such as the GitHub CLI while
// logging lifecycle events and notifying registered observers. Non-zero exit
// codes surface as CommandFailedError values carrying the captured output.
package execshell
