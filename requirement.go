package command

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Requirement describes what a user could additionally supply to satisfy a
// branch of a parse that did not fully succeed: a set of flag names, a set
// of subcommand names, and whether a missing positional argument would help.
// It is the payload of a Missing Result (see result.go).
type Requirement struct {
	Flags    []string
	Commands []string
	Argument bool
}

// flagRequirement builds a Requirement naming a single flag/option by its
// first declared name, per spec.md §4.3's "flag-with-first-name" rule: a
// Regular or Flag leaf with several names (e.g. --file/-f) is still one
// requirement, and reports only the name it was declared with first. The
// "(--x or -y)" rendering in §4.4 arises instead when two *different*
// options get merged into one Requirement's Flags list (e.g. across an
// OrElse of distinct alternatives), not from one option's synonyms.
func flagRequirement(names []Name) Requirement {
	if len(names) == 0 {
		return Requirement{}
	}
	return Requirement{Flags: []string{names[0].String()}}
}

// commandRequirement builds a Requirement naming a single subcommand.
func commandRequirement(name string) Requirement {
	return Requirement{Commands: []string{name}}
}

// argumentRequirement builds a Requirement for a missing positional.
func argumentRequirement() Requirement {
	return Requirement{Argument: true}
}

// merge combines two Requirements componentwise (spec.md §4.1 "Stuff
// merging"): flags and commands concatenate (order preserved) and
// Argument is OR'd. Used by orElse to fold two alternatives' first
// requirement into one "either of these would help" Requirement, as
// opposed to ap's Missing+Missing case, which keeps two independent
// (AND'd) Requirements as separate list entries.
func (r Requirement) merge(o Requirement) Requirement {
	return Requirement{
		Flags:    append(append([]string(nil), r.Flags...), o.Flags...),
		Commands: append(append([]string(nil), r.Commands...), o.Commands...),
		Argument: r.Argument || o.Argument,
	}
}

// Render formats r as the literal message fragments from spec.md §4.4,
// e.g. "Missing expected flag --x", "Missing expected flag (--x or -y)",
// "Missing expected command (a or b)", "Missing expected argument", joined
// with ", or " when more than one piece is present.
func (r Requirement) Render() string {
	var pieces []string

	if flags := dedupStrings(r.Flags); len(flags) > 0 {
		if len(flags) == 1 {
			pieces = append(pieces, fmt.Sprintf("flag %s", flags[0]))
		} else {
			pieces = append(pieces, fmt.Sprintf("flag (%s)", strings.Join(flags, " or ")))
		}
	}
	if cmds := dedupStrings(r.Commands); len(cmds) > 0 {
		if len(cmds) == 1 {
			pieces = append(pieces, fmt.Sprintf("command %s", cmds[0]))
		} else {
			pieces = append(pieces, fmt.Sprintf("command (%s)", strings.Join(cmds, " or ")))
		}
	}
	if r.Argument {
		pieces = append(pieces, "argument")
	}

	return fmt.Sprintf("Missing expected %s", strings.Join(pieces, ", or "))
}

// dedupStrings returns a order-preserving, duplicate-free copy of ss.
func dedupStrings(ss []string) []string {
	if len(ss) < 2 {
		return ss
	}
	out := make([]string, 0, len(ss))
	for _, s := range ss {
		if !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}
