package command

// Opts is the immutable, applicative/alternative option-description tree a
// caller builds (spec.md §3). It is opaque outside this package: the
// front-end combinator surface that builds typed Opts values (`option`,
// `flag`, `argument`, `mapN`, …) is explicitly out of scope (spec.md §1);
// this package only needs the constructors below to assemble and consume
// the tree.
//
// Go has no higher-kinded types, so a literal `Opts[A]` with a generic
// `App(f Opts[X->A], a Opts[X])` node can't be expressed without either
// existentially boxing interior type parameters or erasing to a dynamic
// value and restoring typing at the (out-of-scope) builder layer. This
// module takes the erasure route (spec.md §9, strategy (b)): Opts and Acc
// carry `interface{}` payloads, and App takes an explicit two-argument
// combine func rather than a curried function-in-a-box. The engine never
// needs static typing of intermediate nodes — only the final `Result`
// value the caller receives needs a type, and that's provided by whatever
// front-end combinator produced the tree.
type Opts interface {
	isOpts()
}

type pureOpts struct {
	value interface{}
}

func (pureOpts) isOpts() {}

// Pure always succeeds with a, matching no tokens.
func Pure(a interface{}) Opts {
	return pureOpts{value: a}
}

type appOpts struct {
	l, r    Opts
	combine func(l, r interface{}) interface{}
}

func (appOpts) isOpts() {}

// App combines two independent Opts into a product: both must parse, and
// their values combine via combine once both have.
func App(l, r Opts, combine func(l, r interface{}) interface{}) Opts {
	return appOpts{l: l, r: r, combine: combine}
}

type orElseOpts struct {
	l, r Opts
}

func (orElseOpts) isOpts() {}

// OrElse is the alternative combinator: the first branch to match wins.
func OrElse(l, r Opts) Opts {
	return orElseOpts{l: l, r: r}
}

type validateOpts struct {
	inner Opts
	f     func(interface{}) Result
}

func (validateOpts) isOpts() {}

// Validate post-processes inner's parsed value at finalization time,
// letting f fail or refine it.
func Validate(inner Opts, f func(interface{}) Result) Opts {
	return validateOpts{inner: inner, f: f}
}

// Command is a named subcommand: a name to match on the command line, a
// help string, and the Opts tree it runs.
type Command struct {
	Name string
	Help string
	Opts Opts
}

type subcommandOpts struct {
	cmd Command
}

func (subcommandOpts) isOpts() {}

// Subcommand wraps cmd as an Opts node matched by a bare token equal to
// cmd.Name; once matched, cmd.Opts owns all remaining tokens.
func Subcommand(cmd Command) Opts {
	return subcommandOpts{cmd: cmd}
}

type singleOpts struct {
	opt Opt
}

func (singleOpts) isOpts() {}

// Single expects exactly one occurrence of opt: last wins for Regular,
// presence-only for Flag, first-wins for Argument (spec.md §3, §9).
func Single(opt Opt) Opts {
	return singleOpts{opt: opt}
}

type repeatedOpts struct {
	opt Opt
}

func (repeatedOpts) isOpts() {}

// Repeated expects one or more occurrences of opt, returned in input
// order as a non-empty list.
func Repeated(opt Opt) Opts {
	return repeatedOpts{opt: opt}
}
