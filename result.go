package command

// resultKind discriminates the three Result variants.
type resultKind int

const (
	resultReturn resultKind = iota
	resultMissing
	resultFail
)

// Result is the three-valued parse outcome described in spec.md §3/§4.1:
// exactly one of a parsed value (Return), a set of unmet requirements
// (Missing), or one or more hard-error messages (Fail). The zero value is
// not meaningful; build one with Success, MissingReq (or MissingFlag,
// MissingCommand, MissingArgument), or Failure.
type Result struct {
	kind  resultKind
	value interface{}
	reqs  []Requirement
	msgs  []string
}

// Success builds a Return(a) Result.
func Success(a interface{}) Result {
	return Result{kind: resultReturn, value: a}
}

// MissingReq builds a Missing Result from an explicit Requirement.
func MissingReq(r Requirement) Result {
	return Result{kind: resultMissing, reqs: []Requirement{r}}
}

// MissingFlag builds a Missing Result naming a single unmet option/flag.
func MissingFlag(names []Name) Result {
	return MissingReq(flagRequirement(names))
}

// MissingCommand builds a Missing Result naming a single unmet subcommand.
func MissingCommand(name string) Result {
	return MissingReq(commandRequirement(name))
}

// MissingArgument builds a Missing Result for an unfilled positional.
func MissingArgument() Result {
	return MissingReq(argumentRequirement())
}

// Failure builds a Fail Result from one or more hard-error messages.
func Failure(msgs ...string) Result {
	return Result{kind: resultFail, msgs: msgs}
}

// IsReturn reports whether r succeeded, and returns its value.
func (r Result) IsReturn() (interface{}, bool) {
	if r.kind == resultReturn {
		return r.value, true
	}
	return nil, false
}

// IsMissing reports whether r is a Missing outcome, and returns its
// requirements.
func (r Result) IsMissing() ([]Requirement, bool) {
	if r.kind == resultMissing {
		return r.reqs, true
	}
	return nil, false
}

// IsFail reports whether r is a hard failure, and returns its messages.
func (r Result) IsFail() ([]string, bool) {
	if r.kind == resultFail {
		return r.msgs, true
	}
	return nil, false
}

// Messages renders r for presentation to a Help: a Missing Result renders
// each Requirement via Requirement.Render, a Fail Result returns its
// messages verbatim, and a Return Result has no messages.
func (r Result) Messages() []string {
	switch r.kind {
	case resultMissing:
		out := make([]string, 0, len(r.reqs))
		for _, req := range r.reqs {
			out = append(out, req.Render())
		}
		return out
	case resultFail:
		return r.msgs
	default:
		return nil
	}
}

// AndThen sequences r into f when r succeeded; a Missing or Fail Result
// propagates unchanged (f is never invoked). Used by Validate at
// finalization (§4.3 Validate.result).
func (r Result) AndThen(f func(interface{}) Result) Result {
	if v, ok := r.IsReturn(); ok {
		return f(v)
	}
	return r
}

// ap implements the applicative product table from spec.md §4.1: two
// Returns combine via combine; any Missing/Fail mix merges requirements or
// downgrades them into failure messages, with Fail dominating.
func ap(lf, rf Result, combine func(l, r interface{}) interface{}) Result {
	lv, lok := lf.IsReturn()
	rv, rok := rf.IsReturn()

	switch {
	case lok && rok:
		return Success(combine(lv, rv))
	case lok && !rok:
		return rf // Missing(r) or Fail(r) propagate as-is
	case !lok && rok:
		return lf
	default:
		// Neither side returned.
		lReqs, lMissing := lf.IsMissing()
		rReqs, rMissing := rf.IsMissing()
		switch {
		case lMissing && rMissing:
			return Result{kind: resultMissing, reqs: append(append([]Requirement{}, lReqs...), rReqs...)}
		case lMissing && !rMissing:
			// r is Fail: failures dominate, downgrade l's requirements to messages.
			rMsgs, _ := rf.IsFail()
			return Failure(append(renderReqs(lReqs), rMsgs...)...)
		case !lMissing && rMissing:
			lMsgs, _ := lf.IsFail()
			return Failure(append(append([]string{}, lMsgs...), renderReqs(rReqs)...)...)
		default:
			lMsgs, _ := lf.IsFail()
			rMsgs, _ := rf.IsFail()
			return Failure(append(lMsgs, rMsgs...)...)
		}
	}
}

func renderReqs(reqs []Requirement) []string {
	out := make([]string, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, r.Render())
	}
	return out
}

// orElse implements the alternative-choice rule from spec.md §4.1: a
// branch that matched anything (Return or Fail) wins outright; if both
// sides are Missing, the result keeps only the first requirement of each
// side, concatenated, so reported requirements don't explode across long
// OrElse chains.
func orElse(x, y Result) Result {
	xReqs, xMissing := x.IsMissing()
	if !xMissing {
		return x
	}
	yReqs, yMissing := y.IsMissing()
	if !yMissing {
		return y
	}
	switch {
	case len(xReqs) > 0 && len(yReqs) > 0:
		return Result{kind: resultMissing, reqs: []Requirement{xReqs[0].merge(yReqs[0])}}
	case len(xReqs) > 0:
		return Result{kind: resultMissing, reqs: []Requirement{xReqs[0]}}
	case len(yReqs) > 0:
		return Result{kind: resultMissing, reqs: []Requirement{yReqs[0]}}
	default:
		return empty
	}
}

// empty is the identity element for orElse: a Missing Result with no
// requirements.
var empty = Result{kind: resultMissing}
