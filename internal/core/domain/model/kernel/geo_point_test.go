package kernel_test

import (
	"testing"

	"giftmarket/internal/core/domain/model/kernel"
	"giftmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("creates valid point", func(t *testing.T) {
		p, err := kernel.NewGeoPoint(-1.2921, 36.8219)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.InDelta(t, -1.2921, p.Latitude(), 1e-9)
		assert.InDelta(t, 36.8219, p.Longitude(), 1e-9)
	})

	t.Run("accepts boundary coordinates", func(t *testing.T) {
		for _, coords := range [][2]float64{
			{kernel.GeoLatitudeMin, 0},
			{kernel.GeoLatitudeMax, 0},
			{0, kernel.GeoLongitudeMin},
			{0, kernel.GeoLongitudeMax},
		} {
			_, err := kernel.NewGeoPoint(coords[0], coords[1])
			require.NoError(t, err)
		}
	})

	t.Run("rejects latitude out of range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(91, 0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects longitude out of range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(0, -181)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestGeoPoint_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var p kernel.GeoPoint

		err := p.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "GeoPoint must be created")
	})
}

func TestGeoPoint_IsEqual(t *testing.T) {
	a, _ := kernel.NewGeoPoint(1.5, 2.5)
	b, _ := kernel.NewGeoPoint(1.5, 2.5)
	c, _ := kernel.NewGeoPoint(1.5, 2.6)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
