package command

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func cmpResult() cmp.Option {
	return cmp.AllowUnexported(Result{})
}

func TestResultAccessors(t *testing.T) {
	if v, ok := Success(5).IsReturn(); !ok || v != 5 {
		t.Errorf("Success(5).IsReturn() = %v, %v, want 5, true", v, ok)
	}
	if _, ok := Success(5).IsMissing(); ok {
		t.Errorf("Success(5).IsMissing() = true, want false")
	}
	if reqs, ok := MissingArgument().IsMissing(); !ok || len(reqs) != 1 || !reqs[0].Argument {
		t.Errorf("MissingArgument().IsMissing() = %v, %v, want [{Argument:true}], true", reqs, ok)
	}
	if msgs, ok := Failure("bad").IsFail(); !ok || len(msgs) != 1 || msgs[0] != "bad" {
		t.Errorf("Failure(\"bad\").IsFail() = %v, %v, want [bad], true", msgs, ok)
	}
}

func TestResultMessages(t *testing.T) {
	for _, test := range []struct {
		name string
		r    Result
		want []string
	}{
		{
			name: "return has no messages",
			r:    Success("x"),
			want: nil,
		},
		{
			name: "fail messages pass through verbatim",
			r:    Failure("Unexpected option: --x"),
			want: []string{"Unexpected option: --x"},
		},
		{
			name: "missing renders each requirement",
			r:    Result{kind: resultMissing, reqs: []Requirement{{Flags: []string{"--file"}}, {Argument: true}}},
			want: []string{"Missing expected flag --file", "Missing expected argument"},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			if diff := cmp.Diff(test.want, test.r.Messages()); diff != "" {
				t.Errorf("Messages() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAndThen(t *testing.T) {
	double := func(v interface{}) Result { return Success(v.(int) * 2) }

	if v, _ := Success(3).AndThen(double).IsReturn(); v != 6 {
		t.Errorf("Success(3).AndThen(double) = %v, want 6", v)
	}

	missing := MissingArgument()
	if diff := cmp.Diff(missing, missing.AndThen(double), cmpResult()); diff != "" {
		t.Errorf("Missing.AndThen(f) changed the result (-want +got):\n%s", diff)
	}

	fail := Failure("bad")
	if diff := cmp.Diff(fail, fail.AndThen(double), cmpResult()); diff != "" {
		t.Errorf("Fail.AndThen(f) changed the result (-want +got):\n%s", diff)
	}
}

func concat(l, r interface{}) interface{} {
	return []interface{}{l, r}
}

func TestAp(t *testing.T) {
	for _, test := range []struct {
		name string
		l, r Result
		want Result
	}{
		{
			name: "return, return combines",
			l:    Success(1),
			r:    Success(2),
			want: Success([]interface{}{1, 2}),
		},
		{
			name: "return, missing propagates missing",
			l:    Success(1),
			r:    MissingArgument(),
			want: MissingArgument(),
		},
		{
			name: "missing, return propagates missing",
			l:    MissingArgument(),
			r:    Success(2),
			want: MissingArgument(),
		},
		{
			name: "return, fail propagates fail",
			l:    Success(1),
			r:    Failure("bad"),
			want: Failure("bad"),
		},
		{
			name: "missing, missing concatenates requirements",
			l:    MissingReq(Requirement{Flags: []string{"--file"}}),
			r:    MissingArgument(),
			want: Result{kind: resultMissing, reqs: []Requirement{{Flags: []string{"--file"}}, {Argument: true}}},
		},
		{
			name: "fail, fail concatenates messages",
			l:    Failure("a"),
			r:    Failure("b"),
			want: Failure("a", "b"),
		},
		{
			name: "missing, fail downgrades missing to a message",
			l:    MissingReq(Requirement{Flags: []string{"--file"}}),
			r:    Failure("bad"),
			want: Failure("Missing expected flag --file", "bad"),
		},
		{
			name: "fail, missing downgrades missing to a message",
			l:    Failure("bad"),
			r:    MissingArgument(),
			want: Failure("bad", "Missing expected argument"),
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			got := ap(test.l, test.r, concat)
			if diff := cmp.Diff(test.want, got, cmpResult()); diff != "" {
				t.Errorf("ap() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOrElse(t *testing.T) {
	for _, test := range []struct {
		name string
		l, r Result
		want Result
	}{
		{
			name: "left return wins outright",
			l:    Success(1),
			r:    MissingArgument(),
			want: Success(1),
		},
		{
			name: "left matched (fail) wins outright",
			l:    Failure("bad"),
			r:    MissingArgument(),
			want: Failure("bad"),
		},
		{
			name: "right wins when left missing",
			l:    MissingArgument(),
			r:    Success(2),
			want: Success(2),
		},
		{
			name: "both missing merges first requirement of each",
			l:    MissingReq(Requirement{Flags: []string{"--x"}}),
			r:    MissingReq(Requirement{Flags: []string{"-y"}}),
			want: Result{kind: resultMissing, reqs: []Requirement{{Flags: []string{"--x", "-y"}}}},
		},
		{
			name: "empty is the identity",
			l:    empty,
			r:    Success(1),
			want: Success(1),
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			got := orElse(test.l, test.r)
			if diff := cmp.Diff(test.want, got, cmpResult()); diff != "" {
				t.Errorf("orElse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
