//go:build !release

package assert

// Enabled reports whether failed checks halt execution.
const Enabled = true

func fail(msg string) {
	panic(Violation{Message: msg})
}
