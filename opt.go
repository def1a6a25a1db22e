package command

// Opt is a leaf descriptor: the smallest unit an Opts tree is built from.
// It is one of Regular, Flag, or Argument (spec.md §3).
type Opt interface {
	isOpt()
}

// RegularOpt consumes a value: `--name v`, `--name=value`, `-n v`, or
// `-nv`. Repeatable; wrap in Single or Repeated to fix cardinality.
type RegularOpt struct {
	Names   []Name
	Metavar string
	Help    string
}

func (RegularOpt) isOpt() {}

// Regular constructs a value-taking option descriptor.
func Regular(metavar, help string, names ...Name) RegularOpt {
	return RegularOpt{Names: names, Metavar: metavar, Help: help}
}

// FlagOpt consumes no value; its presence is counted. Repeatable.
type FlagOpt struct {
	Names []Name
	Help  string
}

func (FlagOpt) isOpt() {}

// Flag constructs a presence-only option descriptor.
func Flag(help string, names ...Name) FlagOpt {
	return FlagOpt{Names: names, Help: help}
}

// ArgumentOpt consumes one positional token.
type ArgumentOpt struct {
	Metavar string
}

func (ArgumentOpt) isOpt() {}

// Argument constructs a positional-argument descriptor.
func Argument(metavar string) ArgumentOpt {
	return ArgumentOpt{Metavar: metavar}
}
