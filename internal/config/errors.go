package config

import "fmt"

// Error is returned by Build for every configuration failure. The message
// differs per condition; the type does not.
type Error struct {
	msg string
}

func (e *Error) Error() string {
	return e.msg
}

var (
	errEnvIgnoreCase  = &Error{msg: "environment value unsupported, only '0' or '1' are accepted for ignore-case"}
	errFlagIgnoreCase = &Error{msg: "command-line value unsupported, -i or --ignore_case only accepts '0' or '1'"}
	errMissingQuery   = &Error{msg: "missing query string"}
	errMissingPath    = &Error{msg: "missing file path"}
)

func illegalArgument(arg string) *Error {
	return &Error{msg: fmt.Sprintf("illegal argument %q", arg)}
}
