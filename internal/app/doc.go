// Package app wires application dependencies for the CLI.
//
// It reads Config from flags and the environment, builds the logger, the
// filesystem adapters and the synchronizer service, and exposes them via the
// Wire struct for commands to use.
package app
