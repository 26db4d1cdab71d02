package order_test

import (
	"strings"
	"testing"

	"giftmarket/internal/core/domain/model/order"
	"giftmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCollectionToken(t *testing.T) {
	t.Run("generates unique tokens", func(t *testing.T) {
		first := order.NewCollectionToken()
		second := order.NewCollectionToken()

		require.NoError(t, first.Validate())
		require.NoError(t, second.Validate())
		assert.NotEqual(t, first.Value(), second.Value())
	})
}

func TestRestoreCollectionToken(t *testing.T) {
	t.Run("restores a persisted value", func(t *testing.T) {
		token, err := order.RestoreCollectionToken("abc-123")

		require.NoError(t, err)
		assert.Equal(t, "abc-123", token.Value())
	})

	t.Run("rejects empty value", func(t *testing.T) {
		_, err := order.RestoreCollectionToken("   ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNormalizeRawToken(t *testing.T) {
	token := order.NewCollectionToken()

	t.Run("exact value is a fixed point", func(t *testing.T) {
		assert.Equal(t, token.Value(), order.NormalizeRawToken(token.Value()))
	})

	t.Run("strips whitespace and case from manual entry", func(t *testing.T) {
		raw := "  " + strings.ToUpper(token.Value()) + " \n"

		assert.Equal(t, token.Value(), order.NormalizeRawToken(raw))
	})

	t.Run("never shortens to a prefix", func(t *testing.T) {
		prefix := token.Value()[:len(token.Value())-1]

		assert.NotEqual(t, token.Value(), order.NormalizeRawToken(prefix))
	})
}

func TestCollectionToken_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var token order.CollectionToken

		require.ErrorIs(t, token.Validate(), order.ErrCollectionTokenIsNotConstructed)
	})
}
