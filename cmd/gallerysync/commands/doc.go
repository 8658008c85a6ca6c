// Package commands defines the gallerysync CLI and wires dependencies for subcommands.
//
// Commands
//
//   - (none)  Same as sync
//   - sync    Regenerate the gallery block of index.html from assets/gallery
//   - check   Exit non-zero when the gallery block is out of date; never writes
//   - list    Print the images a sync would render, with their alt text
//
// # Implementation
//
// The root command builds the logger, the filesystem adapters and the
// synchronizer service before any subcommand runs, so handlers share one
// app context. Interrupts cancel the command context; a run that is
// interrupted before its write leaves the page untouched.
package commands
