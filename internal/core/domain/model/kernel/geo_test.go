package kernel_test

import (
	"testing"

	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/kernel"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("valid coordinates", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(40.7128, -74.0060)

		require.NoError(t, err)
		assert.InDelta(t, 40.7128, point.Latitude(), 1e-9)
		assert.InDelta(t, -74.0060, point.Longitude(), 1e-9)
	})

	t.Run("boundary coordinates", func(t *testing.T) {
		for _, coords := range [][2]float64{{-90, -180}, {90, 180}, {0, 0}} {
			_, err := kernel.NewGeoPoint(coords[0], coords[1])
			require.NoError(t, err)
		}
	})

	t.Run("latitude out of range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(90.5, 0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("longitude out of range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(0, -180.5)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestGeoPoint_DistanceKmTo(t *testing.T) {
	t.Run("distance between identical points is zero", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(51.5074, -0.1278)
		require.NoError(t, err)

		assert.Zero(t, point.DistanceKmTo(point))
	})

	t.Run("distance is symmetric", func(t *testing.T) {
		london, err := kernel.NewGeoPoint(51.5074, -0.1278)
		require.NoError(t, err)
		paris, err := kernel.NewGeoPoint(48.8566, 2.3522)
		require.NoError(t, err)

		assert.InDelta(t, london.DistanceKmTo(paris), paris.DistanceKmTo(london), 1e-9)
	})

	t.Run("known distance London to Paris", func(t *testing.T) {
		london, err := kernel.NewGeoPoint(51.5074, -0.1278)
		require.NoError(t, err)
		paris, err := kernel.NewGeoPoint(48.8566, 2.3522)
		require.NoError(t, err)

		// Great-circle distance is roughly 344 km.
		assert.InDelta(t, 344, london.DistanceKmTo(paris), 2)
	})
}

func TestGeoPoint_IsEqual(t *testing.T) {
	a, err := kernel.NewGeoPoint(10, 20)
	require.NoError(t, err)
	b, err := kernel.NewGeoPoint(10, 20)
	require.NoError(t, err)
	c, err := kernel.NewGeoPoint(10, 21)
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
