package command

import "testing"

func TestRequirementRender(t *testing.T) {
	for _, test := range []struct {
		name string
		r    Requirement
		want string
	}{
		{
			name: "single flag",
			r:    Requirement{Flags: []string{"--file"}},
			want: "Missing expected flag --file",
		},
		{
			name: "two distinct flags merged by alternative",
			r:    Requirement{Flags: []string{"--x", "-y"}},
			want: "Missing expected flag (--x or -y)",
		},
		{
			name: "argument only",
			r:    Requirement{Argument: true},
			want: "Missing expected argument",
		},
		{
			name: "two commands",
			r:    Requirement{Commands: []string{"a", "b"}},
			want: "Missing expected command (a or b)",
		},
		{
			name: "flag and argument combined",
			r:    Requirement{Flags: []string{"--file"}, Argument: true},
			want: "Missing expected flag --file, or argument",
		},
		{
			name: "duplicate flag names collapse",
			r:    Requirement{Flags: []string{"--file", "--file"}},
			want: "Missing expected flag --file",
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			if got := test.r.Render(); got != test.want {
				t.Errorf("Render() = %q, want %q", got, test.want)
			}
		})
	}
}

func TestRequirementMerge(t *testing.T) {
	a := Requirement{Flags: []string{"--x"}, Argument: true}
	b := Requirement{Flags: []string{"-y"}, Commands: []string{"sub"}}

	got := a.merge(b)
	want := Requirement{Flags: []string{"--x", "-y"}, Commands: []string{"sub"}, Argument: true}

	if len(got.Flags) != len(want.Flags) || got.Flags[0] != want.Flags[0] || got.Flags[1] != want.Flags[1] {
		t.Errorf("merge() Flags = %v, want %v", got.Flags, want.Flags)
	}
	if len(got.Commands) != 1 || got.Commands[0] != "sub" {
		t.Errorf("merge() Commands = %v, want %v", got.Commands, want.Commands)
	}
	if !got.Argument {
		t.Errorf("merge() Argument = false, want true")
	}
}

func TestFlagRequirementUsesFirstName(t *testing.T) {
	r := flagRequirement([]Name{Long("file"), Short('f')})
	if len(r.Flags) != 1 || r.Flags[0] != "--file" {
		t.Errorf("flagRequirement(long, short) = %v, want [--file]", r.Flags)
	}
}
