package command

import "strings"

// Parse walks args left-to-right against cmd's option description and
// returns either the parsed value or a Help describing what went wrong
// (spec.md §4.4). It never loops: each step consumes at least one token
// from args. A nil Opts anywhere in cmd's tree makes FromOpts panic.
func Parse(cmd Command, args []string) (interface{}, *Help) {
	acc := FromOpts(cmd.Opts)
	positionalOnly := false

	i := 0
	for i < len(args) {
		tok := args[i]

		switch {
		case !positionalOnly && tok == "--":
			positionalOnly = true
			i++

		case !positionalOnly && isLongOption(tok):
			next, consumed, err := dispatchLong(acc, tok, args, i)
			if err != nil {
				return nil, failHelp(cmd, err)
			}
			acc, i = next, i+consumed

		case !positionalOnly && isShortCluster(tok):
			next, consumed, err := processCluster(acc, tok, tok[1:], args, i)
			if err != nil {
				return nil, failHelp(cmd, err)
			}
			acc, i = next, i+consumed

		default:
			next, consumed, err := dispatchPositional(acc, tok, positionalOnly)
			if err != nil {
				return nil, failHelp(cmd, err)
			}
			acc, i = next, i+consumed
		}
	}

	return finalize(cmd, acc)
}

// isLongOption reports whether tok has the shape `--name` or
// `--name=value` (but not the bare `--` separator).
func isLongOption(tok string) bool {
	return len(tok) > 2 && strings.HasPrefix(tok, "--")
}

// isShortCluster reports whether tok has the shape `-XYZ`: a single dash
// followed by one or more characters, the first of which isn't itself a
// dash.
func isShortCluster(tok string) bool {
	return len(tok) > 1 && tok[0] == '-' && tok[1] != '-'
}

// dispatchLong handles a `--name` or `--name=value` token. It returns the
// next accumulator and how many entries of args it consumed (1, or 2 if a
// value was pulled from the following token).
func dispatchLong(acc Acc, tok string, args []string, i int) (Acc, int, error) {
	body := tok[2:]

	if eq := strings.IndexByte(body, '='); eq >= 0 {
		name, value := body[:eq], body[eq+1:]
		r := acc.ParseOption(Long(name))
		switch {
		case r.IsUnmatched():
			return nil, 0, &unexpectedOptionErr{token: "--" + name}
		case r.IsAmbiguous():
			return nil, 0, &ambiguousOptionErr{token: "--" + name}
		}
		if _, ok := r.Flag(); ok {
			return nil, 0, &unexpectedValueForFlagErr{name: name}
		}
		withValue, _ := r.Option()
		return withValue(value), 1, nil
	}

	name := body
	r := acc.ParseOption(Long(name))
	switch {
	case r.IsUnmatched():
		return nil, 0, &unexpectedOptionErr{token: tok}
	case r.IsAmbiguous():
		return nil, 0, &ambiguousOptionErr{token: tok}
	}
	if next, ok := r.Flag(); ok {
		return next, 1, nil
	}
	withValue, _ := r.Option()
	if i+1 >= len(args) {
		return nil, 0, &missingValueErr{token: tok}
	}
	return withValue(args[i+1]), 2, nil
}

// processCluster handles one `-XYZ` short-option cluster, recursing
// character by character. fullToken is the original token, used verbatim
// in error messages; remaining is the not-yet-processed suffix.
func processCluster(acc Acc, fullToken, remaining string, args []string, i int) (Acc, int, error) {
	if remaining == "" {
		return acc, 1, nil
	}

	head, tail := rune(remaining[0]), remaining[1:]
	r := acc.ParseOption(Short(head))
	switch {
	case r.IsUnmatched():
		return nil, 0, &unexpectedOptionErr{token: fullToken}
	case r.IsAmbiguous():
		return nil, 0, &ambiguousOptionErr{token: fullToken}
	}

	if next, ok := r.Flag(); ok {
		if tail == "" {
			return next, 1, nil
		}
		return processCluster(next, fullToken, tail, args, i)
	}

	withValue, _ := r.Option()
	if tail == "" {
		if i+1 >= len(args) {
			return nil, 0, &missingValueErr{token: Short(head).String()}
		}
		return withValue(args[i+1]), 2, nil
	}
	return withValue(tail), 1, nil
}

// dispatchPositional handles any token that isn't a recognized option
// shape: a subcommand name (unless positionalOnly), or a positional
// argument.
func dispatchPositional(acc Acc, tok string, positionalOnly bool) (Acc, int, error) {
	if !positionalOnly {
		if next, ok := acc.ParseSub(tok); ok {
			return next, 1, nil
		}
	}
	if next, ok := acc.ParseArg(tok); ok {
		return next, 1, nil
	}
	return nil, 0, &unexpectedArgumentErr{token: tok}
}

// finalize forces the root Result once all tokens are consumed.
func finalize(cmd Command, acc Acc) (interface{}, *Help) {
	res := acc.Result()
	if v, ok := res.IsReturn(); ok {
		return v, nil
	}
	return nil, &Help{Command: cmd, Errors: res.Messages()}
}

// failHelp builds the Help returned for a driver-level hard error: unlike
// a Missing/Fail Result surfaced at end-of-input, a driver error is
// returned immediately without re-entering the accumulator (spec.md §7).
func failHelp(cmd Command, err error) *Help {
	return &Help{Command: cmd, Errors: []string{err.Error()}}
}
