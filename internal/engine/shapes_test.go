package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotationCounts(t *testing.T) {
	want := map[Kind]int{I: 2, J: 4, L: 4, O: 1, S: 2, T: 4, Z: 2}
	for _, kind := range Kinds() {
		assert.Equal(t, want[kind], RotationCount(kind), "kind %s", kind)
	}
	assert.Zero(t, RotationCount(Empty))
}

func TestShapesHaveFourCells(t *testing.T) {
	for _, kind := range Kinds() {
		for r := 0; r < RotationCount(kind); r++ {
			assert.Len(t, ShapeOf(kind, r).Cells(), 4, "kind %s rotation %d", kind, r)
		}
	}
}

func TestShapeOfWrapsRotation(t *testing.T) {
	assert.True(t, ShapeOf(T, 4).Equal(ShapeOf(T, 0)))
	assert.True(t, ShapeOf(I, 3).Equal(ShapeOf(I, 1)))
	assert.True(t, ShapeOf(J, -1).Equal(ShapeOf(J, 3)))
	assert.True(t, ShapeOf(O, 7).Equal(ShapeOf(O, 0)))
	assert.Nil(t, ShapeOf(Empty, 0))
}

func TestShapeLiterals(t *testing.T) {
	tests := []struct {
		kind     Kind
		rotation int
		cells    []Point
	}{
		{I, 0, []Point{{0, 1}, {1, 1}, {2, 1}, {3, 1}}},
		{I, 1, []Point{{1, 0}, {1, 1}, {1, 2}, {1, 3}}},
		{O, 0, []Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}},
		{T, 0, []Point{{1, 0}, {0, 1}, {1, 1}, {2, 1}}},
		{T, 2, []Point{{0, 1}, {1, 1}, {2, 1}, {1, 2}}},
		{S, 1, []Point{{1, 0}, {1, 1}, {2, 1}, {2, 2}}},
		{Z, 0, []Point{{0, 0}, {1, 0}, {1, 1}, {2, 1}}},
		{J, 1, []Point{{1, 0}, {2, 0}, {1, 1}, {1, 2}}},
		{L, 3, []Point{{0, 0}, {1, 0}, {1, 1}, {1, 2}}},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			require.Equal(t, tt.cells, ShapeOf(tt.kind, tt.rotation).Cells())
		})
	}
}

func TestKindColors(t *testing.T) {
	seen := map[string]Kind{}
	for _, kind := range Kinds() {
		color := kind.Color()
		require.NotEmpty(t, color, "kind %s", kind)
		if other, ok := seen[color]; ok {
			t.Fatalf("kinds %s and %s share color %s", kind, other, color)
		}
		seen[color] = kind
	}
	assert.Empty(t, Empty.Color())
	assert.Equal(t, "?", Kind(42).String())
}
