// Package application provides the run step and its dependency wiring. It
// loads the configured file, selects the search mode, and writes the matches,
// keeping the main package focused on argument handling and exit codes.
package application
