package queries_test

import (
	"testing"
	"time"

	"giftmarket/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetPreparationDueQuery_ValidInput(t *testing.T) {
	asOf := time.Now().UTC()
	query, err := queries.NewGetPreparationDueQuery(asOf)

	require.NoError(t, err)
	assert.Equal(t, asOf, query.AsOf())
	require.NoError(t, query.Validate())
}

func TestNewGetPreparationDueQuery_ZeroTime(t *testing.T) {
	_, err := queries.NewGetPreparationDueQuery(time.Time{})

	require.Error(t, err)
}

func TestGetPreparationDueQuery_Validate_NotConstructed(t *testing.T) {
	query := queries.GetPreparationDueQuery{}
	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetPreparationDueQueryIsNotConstructed)
}
