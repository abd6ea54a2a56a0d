// Package assert provides runtime assertion checking for invariants of the parser and the AST.
package assert

import "fmt"

// That panics if condition is false.
func That(condition bool, msg string, args ...any) {
	if condition {
		return
	}
	Fail(msg, args...)
}

// Fail panics with the formatted message. It marks code that is unreachable as long as the
// invariants hold, like the default case of a type switch over a sealed interface.
func Fail(msg string, args ...any) {
	if len(args) > 0 {
		panic(fmt.Sprintf(msg, args...))
	}
	panic(msg)
}
