// Package cli defines the optmap command tree. It turns flags into an
// app.Config, runs the matching App operation and reports failures as
// ExitError values carrying the process exit code.
package cli
