package command

// appAcc is the accumulator for an applicative product: both l and r must
// eventually succeed, and their values combine via combine.
type appAcc struct {
	l, r    Acc
	combine func(l, r interface{}) interface{}
}

func (a *appAcc) ParseOption(n Name) OptionResult {
	lr := a.l.ParseOption(n)
	rr := a.r.ParseOption(n)

	if lr.IsAmbiguous() || rr.IsAmbiguous() {
		return ambiguous()
	}

	lMatched := !lr.IsUnmatched()
	rMatched := !rr.IsUnmatched()

	switch {
	case !lMatched && !rMatched:
		return unmatched()
	case lMatched && !rMatched:
		return a.rewrapLeft(lr)
	case !lMatched && rMatched:
		return a.rewrapRight(rr)
	default:
		return ambiguous()
	}
}

// rewrapLeft reconstructs the App around a match found in the left child,
// preserving the untouched right child (spec.md §4.3 parseOption/App).
func (a *appAcc) rewrapLeft(lr OptionResult) OptionResult {
	if next, ok := lr.Flag(); ok {
		return matchFlag(&appAcc{l: next, r: a.r, combine: a.combine})
	}
	withValue, _ := lr.Option()
	return matchOption(func(v string) Acc {
		return &appAcc{l: withValue(v), r: a.r, combine: a.combine}
	})
}

func (a *appAcc) rewrapRight(rr OptionResult) OptionResult {
	if next, ok := rr.Flag(); ok {
		return matchFlag(&appAcc{l: a.l, r: next, combine: a.combine})
	}
	withValue, _ := rr.Option()
	return matchOption(func(v string) Acc {
		return &appAcc{l: a.l, r: withValue(v), combine: a.combine}
	})
}

func (a *appAcc) ParseArg(tok string) (Acc, bool) {
	if next, ok := a.l.ParseArg(tok); ok {
		return &appAcc{l: next, r: a.r, combine: a.combine}, true
	}
	if next, ok := a.r.ParseArg(tok); ok {
		return &appAcc{l: a.l, r: next, combine: a.combine}, true
	}
	return nil, false
}

func (a *appAcc) ParseSub(name string) (Acc, bool) {
	if next, ok := a.l.ParseSub(name); ok {
		frozen := pureAcc{result: a.r.Result()}
		return &appAcc{l: next, r: frozen, combine: a.combine}, true
	}
	if next, ok := a.r.ParseSub(name); ok {
		frozen := pureAcc{result: a.l.Result()}
		return &appAcc{l: frozen, r: next, combine: a.combine}, true
	}
	return nil, false
}

func (a *appAcc) Result() Result {
	return ap(a.l.Result(), a.r.Result(), a.combine)
}

// orElseAcc is the accumulator for an alternative: the side that matches an
// option or positional commits to that branch (an option both sides claim
// is Ambiguous; a positional both sides accept keeps both live), and a
// subcommand is tried on the left side first.
type orElseAcc struct {
	l, r Acc
}

func (o *orElseAcc) ParseOption(n Name) OptionResult {
	lr := o.l.ParseOption(n)
	rr := o.r.ParseOption(n)

	if lr.IsAmbiguous() || rr.IsAmbiguous() {
		return ambiguous()
	}

	lMatched := !lr.IsUnmatched()
	rMatched := !rr.IsUnmatched()

	switch {
	case !lMatched && !rMatched:
		return unmatched()
	case lMatched && !rMatched:
		return lr
	case !lMatched && rMatched:
		return rr
	default:
		return ambiguous()
	}
}

func (o *orElseAcc) ParseArg(tok string) (Acc, bool) {
	lnext, lok := o.l.ParseArg(tok)
	rnext, rok := o.r.ParseArg(tok)
	switch {
	case lok && rok:
		return &orElseAcc{l: lnext, r: rnext}, true
	case lok:
		return lnext, true
	case rok:
		return rnext, true
	default:
		return nil, false
	}
}

func (o *orElseAcc) ParseSub(name string) (Acc, bool) {
	if next, ok := o.l.ParseSub(name); ok {
		return next, true
	}
	return o.r.ParseSub(name)
}

func (o *orElseAcc) Result() Result {
	return orElse(o.l.Result(), o.r.Result())
}

// validateAcc post-processes inner's Result at finalization via f,
// rewrapping every delegated operation so f still applies once the
// wrapped tree eventually resolves (spec.md §4.3 "Validate: delegates,
// rewraps").
type validateAcc struct {
	inner Acc
	f     func(interface{}) Result
}

func (v *validateAcc) ParseOption(n Name) OptionResult {
	inner := v.inner.ParseOption(n)
	switch {
	case inner.IsUnmatched():
		return unmatched()
	case inner.IsAmbiguous():
		return ambiguous()
	}
	if next, ok := inner.Flag(); ok {
		return matchFlag(&validateAcc{inner: next, f: v.f})
	}
	withValue, _ := inner.Option()
	return matchOption(func(val string) Acc {
		return &validateAcc{inner: withValue(val), f: v.f}
	})
}

func (v *validateAcc) ParseArg(tok string) (Acc, bool) {
	next, ok := v.inner.ParseArg(tok)
	if !ok {
		return nil, false
	}
	return &validateAcc{inner: next, f: v.f}, true
}

func (v *validateAcc) ParseSub(name string) (Acc, bool) {
	next, ok := v.inner.ParseSub(name)
	if !ok {
		return nil, false
	}
	return &validateAcc{inner: next, f: v.f}, true
}

func (v *validateAcc) Result() Result {
	return v.inner.Result().AndThen(v.f)
}
