// Package assert checks component contracts.
//
// A failed check is a programming error, not an environmental one. Default
// builds panic so the mistake surfaces immediately; builds with the release
// tag log the failure and let the caller skip the offending operation.
package assert

import "fmt"

// That reports whether cond holds. When it does not, the failure is handled
// according to the build mode and That returns false.
func That(cond bool, format string, args ...any) bool {
	if cond {
		return true
	}
	fail(fmt.Sprintf(format, args...))
	return false
}

// Violation is the panic value raised by a failed check in default builds.
type Violation struct {
	Message string
}

func (v Violation) Error() string {
	return "contract violation: " + v.Message
}
