// Package search filters the lines of a text by substring. Results are
// substrings of the input, so they share its memory instead of copying it.
package search
