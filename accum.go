package command

import "golang.org/x/exp/slices"

// Acc is the accumulator tree that mirrors an Opts tree (spec.md §3 "Acc
// invariants", §4.3). Every node is immutable; each parse operation
// returns a new tree reflecting consumption of one token, leaving its
// receiver untouched. A parse operation that can't make progress reports
// that explicitly (Unmatched / false / false) rather than mutating
// anything, so the driver can try another dispatch.
type Acc interface {
	// ParseOption reports whether this node (or a node beneath it) claims
	// the option name n, and if so, the accumulator to continue with.
	ParseOption(n Name) OptionResult
	// ParseArg attempts to route a positional token into this node,
	// returning the new accumulator and true on success.
	ParseArg(tok string) (Acc, bool)
	// ParseSub attempts to match a subcommand name, returning the
	// subcommand's own accumulator (which then owns all remaining
	// tokens) and true on success.
	ParseSub(name string) (Acc, bool)
	// Result finalizes this node into a Result. Pure, with no token
	// consumption: calling it twice on the same node yields the same
	// value.
	Result() Result
}

// containsName reports whether n appears in names.
func containsName(names []Name, n Name) bool {
	return slices.Contains(names, n)
}

// pureAcc is the accumulator for Pure(a): it already holds a fully-formed
// Result (Success(a) when built from an Opts Pure node; any Result when
// built by freezing a sibling during subcommand handoff, §4.3).
type pureAcc struct {
	result Result
}

func (p pureAcc) ParseOption(Name) OptionResult  { return unmatched() }
func (p pureAcc) ParseArg(string) (Acc, bool)    { return nil, false }
func (p pureAcc) ParseSub(string) (Acc, bool)    { return nil, false }
func (p pureAcc) Result() Result                 { return p.result }

// regularAcc accumulates occurrences of a value-taking option. values is
// kept newest-first (new matches are prepended) and reversed into input
// order only at Result time, matching the leaf state described in
// spec.md §3.
type regularAcc struct {
	names   []Name
	metavar string
	help    string
	values  []string
}

func (r *regularAcc) ParseOption(n Name) OptionResult {
	if !containsName(r.names, n) {
		return unmatched()
	}
	return matchOption(func(v string) Acc {
		next := make([]string, 0, len(r.values)+1)
		next = append(next, v)
		next = append(next, r.values...)
		return &regularAcc{names: r.names, metavar: r.metavar, help: r.help, values: next}
	})
}

func (r *regularAcc) ParseArg(string) (Acc, bool) { return nil, false }
func (r *regularAcc) ParseSub(string) (Acc, bool) { return nil, false }

func (r *regularAcc) Result() Result {
	if len(r.values) == 0 {
		return MissingFlag(r.names)
	}
	out := make([]string, len(r.values))
	for i, v := range r.values {
		out[len(r.values)-1-i] = v
	}
	return Success(out)
}

// flagAcc accumulates occurrences of a presence-only flag.
type flagAcc struct {
	names []Name
	help  string
	count int
}

func (f *flagAcc) ParseOption(n Name) OptionResult {
	if !containsName(f.names, n) {
		return unmatched()
	}
	return matchFlag(&flagAcc{names: f.names, help: f.help, count: f.count + 1})
}

func (f *flagAcc) ParseArg(string) (Acc, bool) { return nil, false }
func (f *flagAcc) ParseSub(string) (Acc, bool) { return nil, false }

func (f *flagAcc) Result() Result {
	if f.count == 0 {
		return MissingFlag(f.names)
	}
	return Success(f.count)
}

// argumentAcc accumulates positional tokens, up to limit. limit is 1 for
// Single(Argument), and unbounded (maxArgLimit) for Repeated(Argument).
type argumentAcc struct {
	metavar string
	limit   int
	values  []string
}

// maxArgLimit stands in for "no cardinality bound" (spec.md's
// `Int.MAX`).
const maxArgLimit = int(^uint(0) >> 1)

func (a *argumentAcc) ParseOption(Name) OptionResult { return unmatched() }

func (a *argumentAcc) ParseArg(tok string) (Acc, bool) {
	if len(a.values) >= a.limit {
		return nil, false
	}
	next := make([]string, 0, len(a.values)+1)
	next = append(next, a.values...)
	next = append(next, tok)
	return &argumentAcc{metavar: a.metavar, limit: a.limit, values: next}, true
}

func (a *argumentAcc) ParseSub(string) (Acc, bool) { return nil, false }

func (a *argumentAcc) Result() Result {
	if len(a.values) == 0 {
		return MissingArgument()
	}
	return Success(a.values)
}

// subcommandAcc matches name once, then defers all further processing to
// action.
type subcommandAcc struct {
	name   string
	help   string
	action Acc
}

func (s *subcommandAcc) ParseOption(Name) OptionResult { return unmatched() }
func (s *subcommandAcc) ParseArg(string) (Acc, bool)   { return nil, false }

func (s *subcommandAcc) ParseSub(name string) (Acc, bool) {
	if name != s.name {
		return nil, false
	}
	return s.action, true
}

func (s *subcommandAcc) Result() Result {
	return MissingCommand(s.name)
}
