package guard_test

import (
	"errors"
	"testing"

	"giftmarket/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed guard passes validation", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero value guard returns the supplied error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("token not constructed")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero value guard falls back to default error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
	})
}

func TestConstructorGuard_EmbeddedUsage(t *testing.T) {
	errNotConstructed := errors.New("code must be created via NewCode")

	type code struct {
		value string
		guard guard.ConstructorGuard
	}

	newCode := func(value string) (code, error) {
		if value == "" {
			return code{}, errors.New("value is required")
		}
		return code{value: value, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed object validates", func(t *testing.T) {
		c, err := newCode("abc")
		require.NoError(t, err)
		require.NoError(t, c.guard.Validate(errNotConstructed))
	})

	t.Run("zero value object fails validation", func(t *testing.T) {
		var c code
		require.ErrorIs(t, c.guard.Validate(errNotConstructed), errNotConstructed)
		assert.Empty(t, c.value)
	})
}
