package mediator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultStates(t *testing.T) {
	t.Parallel()

	t.Run("success with value", func(t *testing.T) {
		t.Parallel()
		r := Ok("payload")
		assert.True(t, r.IsSuccess())
		assert.False(t, r.IsNotFound())
		assert.Equal(t, "payload", r.Value())
		assert.Empty(t, r.Message())
	})

	t.Run("success with zero value is not a failure", func(t *testing.T) {
		t.Parallel()
		r := Ok(Unit{})
		assert.True(t, r.IsSuccess())
		assert.False(t, r.IsNotFound())
	})

	t.Run("failure with message", func(t *testing.T) {
		t.Parallel()
		r := Fail[string]("something went wrong")
		assert.False(t, r.IsSuccess())
		assert.False(t, r.IsNotFound())
		assert.Equal(t, "something went wrong", r.Message())
	})

	t.Run("not found failure", func(t *testing.T) {
		t.Parallel()
		r := NotFound[string]()
		assert.False(t, r.IsSuccess())
		assert.True(t, r.IsNotFound())
	})

	t.Run("zero result is a failure, not a success", func(t *testing.T) {
		t.Parallel()
		var r Result[string]
		assert.False(t, r.IsSuccess())
	})
}
