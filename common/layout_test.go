package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEdgeContains(t *testing.T) {
	assert.True(t, EdgeAll.Contains(EdgeTop))
	assert.True(t, EdgeAll.Contains(EdgeHorizontal))
	assert.True(t, EdgeVertical.Contains(EdgeTop|EdgeBottom))
	assert.False(t, EdgeVertical.Contains(EdgeLeading))
	assert.False(t, EdgeTop.Contains(EdgeTop|EdgeBottom))
	assert.True(t, EdgeTop.Contains(0), "every set contains the empty set")
}

func TestEdgeResolve(t *testing.T) {
	tests := []struct {
		name string
		edge Edge
		dir  LayoutDirection
		want Side
	}{
		{"top is direction invariant LTR", EdgeTop, LayoutLeftToRight, SideTop},
		{"top is direction invariant RTL", EdgeTop, LayoutRightToLeft, SideTop},
		{"bottom is direction invariant LTR", EdgeBottom, LayoutLeftToRight, SideBottom},
		{"bottom is direction invariant RTL", EdgeBottom, LayoutRightToLeft, SideBottom},
		{"leading resolves left in LTR", EdgeLeading, LayoutLeftToRight, SideLeft},
		{"leading resolves right in RTL", EdgeLeading, LayoutRightToLeft, SideRight},
		{"trailing resolves right in LTR", EdgeTrailing, LayoutLeftToRight, SideRight},
		{"trailing resolves left in RTL", EdgeTrailing, LayoutRightToLeft, SideLeft},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.edge.Resolve(tt.dir))
		})
	}
}

func TestEdgeResolvePanicsOnCompositeSet(t *testing.T) {
	assert.Panics(t, func() { EdgeHorizontal.Resolve(LayoutLeftToRight) })
	assert.Panics(t, func() { Edge(0).Resolve(LayoutLeftToRight) })
}

func TestEdgeEach(t *testing.T) {
	var edges []Edge
	var sides []Side
	EdgeAll.Each(LayoutRightToLeft, func(edge Edge, side Side) {
		edges = append(edges, edge)
		sides = append(sides, side)
	})

	require.Len(t, edges, 4)
	assert.Equal(t, []Edge{EdgeTop, EdgeBottom, EdgeLeading, EdgeTrailing}, edges)
	assert.Equal(t, []Side{SideTop, SideBottom, SideRight, SideLeft}, sides)
}

func TestEdgeEachSubset(t *testing.T) {
	var visited []Edge
	(EdgeTop | EdgeTrailing).Each(LayoutLeftToRight, func(edge Edge, _ Side) {
		visited = append(visited, edge)
	})
	assert.Equal(t, []Edge{EdgeTop, EdgeTrailing}, visited)
}

func TestInsetsSet(t *testing.T) {
	var in Insets
	in.Set(EdgeHorizontal, 8)
	assert.Equal(t, Insets{Leading: 8, Trailing: 8}, in)

	in.Set(EdgeTop, 20)
	assert.Equal(t, Insets{Top: 20, Leading: 8, Trailing: 8}, in, "other edges untouched")

	in.Set(EdgeAll, 0)
	assert.Equal(t, Insets{}, in)
}

func TestInsetsValue(t *testing.T) {
	in := Insets{Top: 1, Leading: 2, Bottom: 3, Trailing: 4}
	assert.Equal(t, 1.0, in.Value(EdgeTop))
	assert.Equal(t, 2.0, in.Value(EdgeLeading))
	assert.Equal(t, 3.0, in.Value(EdgeBottom))
	assert.Equal(t, 4.0, in.Value(EdgeTrailing))
	assert.Panics(t, func() { in.Value(EdgeVertical) })
}

func TestInsetsResolved(t *testing.T) {
	in := Insets{Top: 1, Leading: 2, Bottom: 3, Trailing: 4}

	assert.Equal(t, EdgeInsets{Top: 1, Left: 2, Bottom: 3, Right: 4}, in.Resolved(LayoutLeftToRight))
	assert.Equal(t, EdgeInsets{Top: 1, Left: 4, Bottom: 3, Right: 2}, in.Resolved(LayoutRightToLeft))
}

func TestEdgeInsetsAdd(t *testing.T) {
	a := EdgeInsets{Top: 1, Left: 2, Bottom: 3, Right: 4}
	b := EdgeInsets{Top: 10, Left: 20, Bottom: 30, Right: 40}
	assert.Equal(t, EdgeInsets{Top: 11, Left: 22, Bottom: 33, Right: 44}, a.Add(b))
	assert.Equal(t, a, a.Add(EdgeInsets{}))
}

func TestEdgeInsetsSideRoundTrip(t *testing.T) {
	var in EdgeInsets
	for i, s := range []Side{SideTop, SideLeft, SideBottom, SideRight} {
		in.SetSide(s, float64(i+1))
	}
	assert.Equal(t, EdgeInsets{Top: 1, Left: 2, Bottom: 3, Right: 4}, in)
	assert.Equal(t, 2.0, in.Side(SideLeft))
	assert.Equal(t, 4.0, in.Side(SideRight))
}
