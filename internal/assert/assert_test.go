package assert

import (
	"testing"

	"github.com/teleivo/assertive/assert"
)

func TestThat(t *testing.T) {
	t.Run("True", func(t *testing.T) {
		That(true, "should not panic")
	})

	t.Run("False", func(t *testing.T) {
		got := recoverMessage(func() { That(false, "unexpected node type %T", 1) })

		assert.Equals(t, got, "unexpected node type int", "panic message")
	})

	t.Run("FailWithoutArgs", func(t *testing.T) {
		got := recoverMessage(func() { Fail("unreachable") })

		assert.Equals(t, got, "unreachable", "panic message")
	})
}

func recoverMessage(fn func()) (msg string) {
	defer func() {
		if r := recover(); r != nil {
			msg, _ = r.(string)
		}
	}()
	fn()
	return ""
}
