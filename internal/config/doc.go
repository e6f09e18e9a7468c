// Package config resolves the run parameters of a search from the process
// arguments and the IGNORE_CASE environment variable. Precedence for the
// case-sensitivity setting: CLI flag > Environment variable > Default.
package config
