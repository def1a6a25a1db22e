package command

import "strings"

// Help is what Parse returns on any failure: the Command that was being
// parsed, plus the ordered list of user-visible error strings produced by
// the failed parse (spec.md §6, "Produced to the help renderer"). Help
// text and usage-string rendering is an external collaborator's job
// (spec.md §1 Non-goals); this type only carries the data such a
// renderer would consume.
type Help struct {
	Command Command
	Errors  []string
}

// Error satisfies the error interface so a *Help can be used anywhere an
// error is expected, following the teacher's habit of giving every
// structured failure value an Error() method (error.go). It does not
// format help/usage text; it only joins the raw error strings.
func (h *Help) Error() string {
	return strings.Join(h.Errors, "; ")
}
