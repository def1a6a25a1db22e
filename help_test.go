package command

import "testing"

func TestHelpErrorJoinsWithSemicolons(t *testing.T) {
	h := &Help{
		Command: Command{Name: "build"},
		Errors:  []string{"Missing expected flag --file", "Missing expected argument"},
	}
	want := "Missing expected flag --file; Missing expected argument"
	if got := h.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestHelpErrorSingleMessage(t *testing.T) {
	h := &Help{Errors: []string{"Unexpected option: --bogus"}}
	if got, want := h.Error(), "Unexpected option: --bogus"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestHelpErrorNoMessages(t *testing.T) {
	h := &Help{}
	if got, want := h.Error(), ""; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestHelpSatisfiesErrorInterface(t *testing.T) {
	var err error = &Help{Errors: []string{"bad"}}
	if err.Error() != "bad" {
		t.Errorf("Error() = %q, want %q", err.Error(), "bad")
	}
}
