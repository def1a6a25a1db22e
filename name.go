package command

import "fmt"

// Name is a single option identifier: either a long name, matched as
// `--name`, or a short name, matched as one character inside a `-abc`
// cluster. The zero value is never a valid Name; always construct one via
// Long or Short.
type Name struct {
	long  string
	short rune
	isLong bool
}

// Long constructs a long option name ("--name").
func Long(name string) Name {
	return Name{long: name, isLong: true}
}

// Short constructs a short option name ("-n").
func Short(r rune) Name {
	return Name{short: r}
}

// IsLong returns whether n is a long name.
func (n Name) IsLong() bool {
	return n.isLong
}

// String renders n the way it appears on a command line: "--name" or "-n".
func (n Name) String() string {
	if n.isLong {
		return fmt.Sprintf("--%s", n.long)
	}
	return fmt.Sprintf("-%c", n.short)
}

// bare returns the name without its leading dash(es): "x" for both --x
// and -x.
func (n Name) bare() string {
	if n.isLong {
		return n.long
	}
	return string(n.short)
}
