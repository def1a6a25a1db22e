package command

// FromOpts builds the accumulator tree for o (spec.md §4.3). The returned
// tree's shape mirrors o exactly except at Single/Repeated leaves, where a
// repeatable Opt leaf is wrapped (Single) or used bare (Repeated; a
// Repeated Flag is wrapped too, to turn its count into a list).
func FromOpts(o Opts) Acc {
	switch n := o.(type) {
	case pureOpts:
		return pureAcc{result: Success(n.value)}
	case appOpts:
		return &appAcc{l: FromOpts(n.l), r: FromOpts(n.r), combine: n.combine}
	case orElseOpts:
		return &orElseAcc{l: FromOpts(n.l), r: FromOpts(n.r)}
	case validateOpts:
		return &validateAcc{inner: FromOpts(n.inner), f: n.f}
	case subcommandOpts:
		return &subcommandAcc{name: n.cmd.Name, help: n.cmd.Help, action: FromOpts(n.cmd.Opts)}
	case singleOpts:
		return fromSingle(n.opt)
	case repeatedOpts:
		return fromRepeated(n.opt)
	default:
		panic("command: unrecognized Opts node")
	}
}

// fromSingle builds the accumulator for Single(opt): exactly one
// occurrence expected, with the asymmetric last/first rule from spec.md
// §3/§9 applied at finalization.
func fromSingle(opt Opt) Acc {
	switch t := opt.(type) {
	case RegularOpt:
		inner := &regularAcc{names: t.Names, metavar: t.Metavar, help: t.Help}
		return &validateAcc{inner: inner, f: func(v interface{}) Result {
			vs := v.([]string)
			return Success(vs[len(vs)-1]) // last occurrence wins
		}}
	case FlagOpt:
		inner := &flagAcc{names: t.Names, help: t.Help}
		return &validateAcc{inner: inner, f: func(interface{}) Result {
			return Success(struct{}{}) // unit, regardless of count
		}}
	case ArgumentOpt:
		inner := &argumentAcc{metavar: t.Metavar, limit: 1}
		return &validateAcc{inner: inner, f: func(v interface{}) Result {
			vs := v.([]string)
			return Success(vs[0]) // first (and only) occurrence
		}}
	default:
		panic("command: unrecognized Opt leaf")
	}
}

// fromRepeated builds the accumulator for Repeated(opt): one or more
// occurrences, returned as a non-empty ordered list.
func fromRepeated(opt Opt) Acc {
	switch t := opt.(type) {
	case RegularOpt:
		return &regularAcc{names: t.Names, metavar: t.Metavar, help: t.Help}
	case FlagOpt:
		inner := &flagAcc{names: t.Names, help: t.Help}
		return &validateAcc{inner: inner, f: func(v interface{}) Result {
			n := v.(int)
			units := make([]struct{}, n)
			return Success(units)
		}}
	case ArgumentOpt:
		return &argumentAcc{metavar: t.Metavar, limit: maxArgLimit}
	default:
		panic("command: unrecognized Opt leaf")
	}
}
