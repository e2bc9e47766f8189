package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/atlas-go/common"
)

func TestZeroValueIsIdle(t *testing.T) {
	var v Viewport
	assert.True(t, v.IsIdle())
	assert.True(t, v.Equal(Idle()))
}

func TestModeExclusivity(t *testing.T) {
	tests := []struct {
		name string
		v    Viewport
		mode Mode
	}{
		{"idle", Idle(), ModeIdle},
		{"style default", StyleDefault(), ModeStyleDefault},
		{"camera", Camera(WithZoom(10)), ModeCamera},
		{"overview", Overview(common.Coordinate{Latitude: 1}), ModeOverview},
		{"follow puck", FollowPuck(16), ModeFollowPuck},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.mode, tt.v.Mode())

			_, isCamera := tt.v.Camera()
			_, isOverview := tt.v.Overview()
			_, isFollow := tt.v.FollowPuck()
			assert.Equal(t, tt.mode == ModeCamera, isCamera)
			assert.Equal(t, tt.mode == ModeOverview, isOverview)
			assert.Equal(t, tt.mode == ModeFollowPuck, isFollow)
			assert.Equal(t, tt.mode == ModeIdle, tt.v.IsIdle())
			assert.Equal(t, tt.mode == ModeStyleDefault, tt.v.IsStyleDefault())
		})
	}
}

func TestCameraOptionalFields(t *testing.T) {
	payload, ok := Camera(WithZoom(12), WithBearing(90)).Camera()
	require.True(t, ok)

	require.NotNil(t, payload.Zoom)
	assert.Equal(t, 12.0, *payload.Zoom)
	require.NotNil(t, payload.Bearing)
	assert.Equal(t, 90.0, *payload.Bearing)

	// Unset dimensions stay unspecified, never zero.
	assert.Nil(t, payload.Center)
	assert.Nil(t, payload.Anchor)
	assert.Nil(t, payload.Pitch)
}

func TestCameraZeroIsNotAbsent(t *testing.T) {
	payload, ok := Camera(WithBearing(0)).Camera()
	require.True(t, ok)
	require.NotNil(t, payload.Bearing, "an explicit zero is a specified value")
	assert.Equal(t, 0.0, *payload.Bearing)

	assert.False(t, Camera(WithBearing(0)).Equal(Camera()))
}

func TestCameraAcceptsCenterAndAnchor(t *testing.T) {
	// Semantically mutually exclusive, deliberately not enforced here.
	payload, ok := Camera(
		WithCenter(common.Coordinate{Latitude: 1, Longitude: 2}),
		WithAnchor(common.Point{X: 3, Y: 4}),
	).Camera()
	require.True(t, ok)
	assert.NotNil(t, payload.Center)
	assert.NotNil(t, payload.Anchor)
}

func TestOverviewDefaults(t *testing.T) {
	geom := common.LineString{{Latitude: 1}, {Latitude: 2}}
	payload, ok := Overview(geom).Overview()
	require.True(t, ok)

	assert.True(t, common.GeometryEqual(geom, payload.Geometry))
	assert.Zero(t, payload.Bearing)
	assert.Zero(t, payload.Pitch)
	assert.Equal(t, common.Insets{}, payload.GeometryPadding)
	assert.Nil(t, payload.MaxZoom)
	assert.Nil(t, payload.Offset)
}

func TestFollowPuckDefaults(t *testing.T) {
	payload, ok := FollowPuck(16.5).FollowPuck()
	require.True(t, ok)

	assert.Equal(t, 16.5, payload.Zoom)
	assert.Zero(t, payload.Pitch)

	heading, constant := payload.Bearing.Constant()
	assert.True(t, constant, "bearing defaults to a constant 0 heading")
	assert.Zero(t, heading)
	assert.False(t, payload.Bearing.TracksHeading())
}

func TestFollowPuckHeadingBearing(t *testing.T) {
	payload, ok := FollowPuck(16, WithFollowBearing(HeadingBearing())).FollowPuck()
	require.True(t, ok)

	assert.True(t, payload.Bearing.TracksHeading())
	_, constant := payload.Bearing.Constant()
	assert.False(t, constant)
}

func TestWithInsetsReplaces(t *testing.T) {
	v := StyleDefault().
		WithEdgeInset(common.EdgeBottom, 40, true).
		WithInsets(common.Insets{Top: 10}, common.EdgeLeading)

	opts := v.InsetOptions()
	assert.Equal(t, common.Insets{Top: 10}, opts.Insets, "prior per-edge config is discarded")
	assert.Equal(t, common.EdgeLeading, opts.IgnoredSafeAreaEdges)
}

func TestWithEdgeInsetMerges(t *testing.T) {
	v := StyleDefault().
		WithEdgeInset(common.EdgeTop, 10, true).
		WithEdgeInset(common.EdgeBottom, 20, false)

	opts := v.InsetOptions()
	assert.Equal(t, common.Insets{Top: 10, Bottom: 20}, opts.Insets)
	assert.Equal(t, common.EdgeTop, opts.IgnoredSafeAreaEdges, "second call leaves top's ignore bit alone")
}

func TestWithEdgeInsetClearsIgnoreBit(t *testing.T) {
	v := StyleDefault().
		WithEdgeInset(common.EdgeHorizontal, 5, true).
		WithEdgeInset(common.EdgeLeading, 8, false)

	opts := v.InsetOptions()
	assert.Equal(t, common.Insets{Leading: 8, Trailing: 5}, opts.Insets)
	assert.Equal(t, common.EdgeTrailing, opts.IgnoredSafeAreaEdges)
}

func TestInsetOperationsAreModeIndependent(t *testing.T) {
	// The same inset transform applies to any mode, idle included.
	for _, v := range []Viewport{Idle(), StyleDefault(), Camera(), Overview(common.Coordinate{}), FollowPuck(10)} {
		out := v.WithEdgeInset(common.EdgeTop, 7, false)
		assert.Equal(t, v.Mode(), out.Mode())
		assert.Equal(t, 7.0, out.InsetOptions().Insets.Top)
	}
}

func TestInsetOperationsDoNotMutateReceiver(t *testing.T) {
	original := StyleDefault()
	_ = original.WithEdgeInset(common.EdgeTop, 99, true)
	_ = original.WithInsets(common.Insets{Bottom: 5})

	assert.Equal(t, InsetOptions{}, original.InsetOptions())
}

func TestViewportEqual(t *testing.T) {
	geom := common.LineString{{Latitude: 1}, {Latitude: 2}}

	tests := []struct {
		name string
		a, b Viewport
		want bool
	}{
		{"idle equals idle", Idle(), Idle(), true},
		{"different modes", Idle(), StyleDefault(), false},
		{
			"camera pointers compared by value",
			Camera(WithZoom(10), WithCenter(common.Coordinate{Latitude: 1})),
			Camera(WithZoom(10), WithCenter(common.Coordinate{Latitude: 1})),
			true,
		},
		{
			"camera differing in one dimension",
			Camera(WithZoom(10)),
			Camera(WithZoom(11)),
			false,
		},
		{
			"absent vs present dimension",
			Camera(WithZoom(10)),
			Camera(WithZoom(10), WithPitch(0)),
			false,
		},
		{
			"overview with equal geometry",
			Overview(geom, WithMaxZoom(14)),
			Overview(common.LineString{{Latitude: 1}, {Latitude: 2}}, WithMaxZoom(14)),
			true,
		},
		{
			"overview differing in max zoom",
			Overview(geom, WithMaxZoom(14)),
			Overview(geom),
			false,
		},
		{
			"follow puck with same config",
			FollowPuck(16, WithFollowBearing(HeadingBearing())),
			FollowPuck(16, WithFollowBearing(HeadingBearing())),
			true,
		},
		{
			"follow puck constant vs heading bearing",
			FollowPuck(16, WithFollowBearing(ConstantBearing(0))),
			FollowPuck(16, WithFollowBearing(HeadingBearing())),
			false,
		},
		{
			"same mode different insets",
			StyleDefault().WithEdgeInset(common.EdgeTop, 10, false),
			StyleDefault(),
			false,
		},
		{
			"same mode same insets",
			StyleDefault().WithEdgeInset(common.EdgeTop, 10, true),
			StyleDefault().WithEdgeInset(common.EdgeTop, 10, true),
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
			assert.Equal(t, tt.want, tt.b.Equal(tt.a), "equality is symmetric")
		})
	}
}
