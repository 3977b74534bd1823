package geo

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepairSwappedPoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		in        orb.Point
		want      orb.Point
		wantFixed bool
	}{
		{name: "valid untouched", in: orb.Point{100.5, 13.75}, want: orb.Point{100.5, 13.75}},
		{name: "ambiguous but valid untouched", in: orb.Point{13.75, 45}, want: orb.Point{13.75, 45}},
		{name: "swapped repaired", in: orb.Point{13.75, 100.5}, want: orb.Point{100.5, 13.75}, wantFixed: true},
		{name: "hopeless", in: orb.Point{200, 100}, want: orb.Point{200, 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, fixed := RepairSwappedPoint(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantFixed, fixed)
		})
	}
}

func TestRepairSwappedRing_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	ring := orb.Ring{{13.7, 100.5}, {13.7, 100.6}, {13.8, 100.6}, {13.7, 100.5}}
	original := append(orb.Ring{}, ring...)

	repaired, n := RepairSwappedRing(ring)
	assert.Equal(t, 4, n)
	assert.Equal(t, original, ring)
	assert.Equal(t, orb.Point{100.5, 13.7}, repaired[0])
	assert.NoError(t, ValidateRing(repaired))
}

func TestRepairText(t *testing.T) {
	t.Parallel()

	t.Run("valid text needs nothing", func(t *testing.T) {
		t.Parallel()

		r, err := RepairText("SRID=4326;POINT(100.5 13.75)")
		require.NoError(t, err)
		assert.Nil(t, r)
	})

	t.Run("swapped point", func(t *testing.T) {
		t.Parallel()

		r, err := RepairText("SRID=4326;POINT(13.75 100.5)")
		require.NoError(t, err)
		require.NotNil(t, r)
		assert.Equal(t, "SRID=4326;POINT(100.5 13.75)", r.After)
		assert.Equal(t, 1, r.Swapped)
	})

	t.Run("swapped polygon", func(t *testing.T) {
		t.Parallel()

		r, err := RepairText("POLYGON((13.7 100.5,13.7 100.6,13.8 100.6,13.7 100.5))")
		require.NoError(t, err)
		require.NotNil(t, r)
		assert.Equal(t, "POLYGON((100.5 13.7,100.6 13.7,100.6 13.8,100.5 13.7))", r.After)
		assert.Equal(t, 4, r.Swapped)
	})

	t.Run("unrepairable", func(t *testing.T) {
		t.Parallel()

		_, err := RepairText("SRID=4326;POINT(200 100)")
		assert.ErrorIs(t, err, ErrInvalidCoordinate)
	})
}
