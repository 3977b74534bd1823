package mapview

import (
	"testing"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"safemap/internal/domain/entity"
	"safemap/internal/geo"
)

var userAt = orb.Point{100.5320, 13.7463}

func pinAt(id int64, bearing, meters float64) *entity.Pin {
	return &entity.Pin{
		ID:       id,
		Type:     entity.PinTypeScam,
		Location: orbgeo.PointAtBearingAndDistance(userAt, bearing, meters),
		Status:   entity.PublishedStatus,
		Source:   entity.SourceUser,
	}
}

func TestFindNearby_RanksWithinRadius(t *testing.T) {
	t.Parallel()

	pins := []*entity.Pin{
		pinAt(1, 10, 100),
		pinAt(2, 200, 600),
		pinAt(3, 300, 50),
	}

	got := FindNearby(userAt, pins, 500)

	require.Len(t, got, 2)
	assert.Equal(t, int64(3), got[0].Pin.ID)
	assert.Equal(t, int64(1), got[1].Pin.ID)
	assert.InDelta(t, 50, got[0].DistanceMeters, 0.01)
	assert.InDelta(t, 100, got[1].DistanceMeters, 0.01)
}

func TestFindNearby_DefaultRadius(t *testing.T) {
	t.Parallel()

	pins := []*entity.Pin{pinAt(1, 0, 450), pinAt(2, 0, 550)}

	for _, radius := range []float64{0, -1} {
		got := FindNearby(userAt, pins, radius)
		require.Len(t, got, 1)
		assert.Equal(t, int64(1), got[0].Pin.ID)
	}
}

func TestFindNearby_StableTies(t *testing.T) {
	t.Parallel()

	shared := orbgeo.PointAtBearingAndDistance(userAt, 90, 120)
	pins := []*entity.Pin{
		{ID: 7, Location: shared},
		{ID: 3, Location: shared},
		{ID: 5, Location: shared},
	}

	got := FindNearby(userAt, pins, 500)
	require.Len(t, got, 3)
	assert.Equal(t, []int64{7, 3, 5}, []int64{got[0].Pin.ID, got[1].Pin.ID, got[2].Pin.ID})
}

func TestFindNearby_PropertyWithinRadiusAndSorted(t *testing.T) {
	t.Parallel()

	var pins []*entity.Pin
	for i := range 60 {
		pins = append(pins, pinAt(int64(i), float64(i*37%360), float64(25*i)))
	}
	pins = append(pins, nil)

	const radius = 810.0
	got := FindNearby(userAt, pins, radius)

	for i, w := range got {
		assert.LessOrEqual(t, geo.DistanceMeters(userAt, w.Pin.Location), radius)
		if i > 0 {
			assert.LessOrEqual(t, got[i-1].DistanceMeters, w.DistanceMeters)
		}
	}
	assert.Len(t, got, 33) // 0..800m in 25m steps
}

func TestCurrentZone(t *testing.T) {
	t.Parallel()

	big := &entity.Zone{ID: 1, Level: entity.SafetyLevelRecommended, Area: orb.Polygon{{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}}}
	small := &entity.Zone{ID: 2, Level: entity.SafetyLevelAvoid, Area: orb.Polygon{{{4, 4}, {6, 4}, {6, 6}, {4, 6}, {4, 4}}}}
	far := &entity.Zone{ID: 3, Area: orb.Polygon{{{20, 20}, {30, 20}, {30, 30}, {20, 30}, {20, 20}}}}

	zones := []*entity.Zone{far, big, small}

	got := CurrentZone(orb.Point{5, 5}, zones)
	require.NotNil(t, got)
	assert.Equal(t, int64(1), got.ID)

	assert.Nil(t, CurrentZone(orb.Point{15, 15}, zones))

	containing := ContainingZones(orb.Point{5, 5}, zones)
	require.Len(t, containing, 2)
	assert.Equal(t, int64(1), containing[0].ID)
	assert.Equal(t, int64(2), containing[1].ID)
}
