package command

import "fmt"

// Driver-level hard errors, following the teacher's convention (error.go):
// an unexported struct per failure class with an Error() string built via
// fmt.Sprintf, plus an exported IsXxxError predicate for callers that need
// to branch on failure class rather than match message text.

type unexpectedOptionErr struct {
	token string
}

func (e *unexpectedOptionErr) Error() string {
	return fmt.Sprintf("Unexpected option: %s", e.token)
}

// IsUnexpectedOptionError reports whether err is an unrecognized option
// name error.
func IsUnexpectedOptionError(err error) bool {
	_, ok := err.(*unexpectedOptionErr)
	return ok
}

type ambiguousOptionErr struct {
	token string
}

func (e *ambiguousOptionErr) Error() string {
	return fmt.Sprintf("Ambiguous option: %s", e.token)
}

// IsAmbiguousOptionError reports whether err is an option-name-resolved-
// to-two-slots error.
func IsAmbiguousOptionError(err error) bool {
	_, ok := err.(*ambiguousOptionErr)
	return ok
}

type unexpectedValueForFlagErr struct {
	name string
}

func (e *unexpectedValueForFlagErr) Error() string {
	return fmt.Sprintf("Got unexpected value for flag: --%s", e.name)
}

// IsUnexpectedValueForFlagError reports whether err came from `--flag=value`
// applied to a value-less Flag.
func IsUnexpectedValueForFlagError(err error) bool {
	_, ok := err.(*unexpectedValueForFlagErr)
	return ok
}

type missingValueErr struct {
	token string
}

func (e *missingValueErr) Error() string {
	return fmt.Sprintf("Missing value for option: %s", e.token)
}

// IsMissingValueError reports whether err came from a value-taking option
// at the end of the argument vector with no value token left to consume.
func IsMissingValueError(err error) bool {
	_, ok := err.(*missingValueErr)
	return ok
}

type unexpectedArgumentErr struct {
	token string
}

func (e *unexpectedArgumentErr) Error() string {
	return fmt.Sprintf("Unexpected argument: %s", e.token)
}

// IsUnexpectedArgumentError reports whether err came from a positional
// token that no subcommand or Argument leaf would accept.
func IsUnexpectedArgumentError(err error) bool {
	_, ok := err.(*unexpectedArgumentErr)
	return ok
}
