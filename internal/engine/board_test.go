package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillRow(b *Board, y int, kind Kind) {
	for x := 0; x < Width; x++ {
		b[y][x] = kind
	}
}

func TestClearLinesAdjacentRows(t *testing.T) {
	var b Board
	fillRow(&b, Height-1, I)
	fillRow(&b, Height-2, J)
	b[Height-3][4] = T
	b[Height-4][0] = S

	cleared := b.clearLines()

	// The J row drops into the cleared index and the sweep has moved past it.
	var want Board
	fillRow(&want, Height-1, J)
	want[Height-2][4] = T
	want[Height-3][0] = S
	require.Equal(t, 1, cleared)
	if diff := cmp.Diff(want, b); diff != "" {
		t.Fatalf("board mismatch (-want +got):\n%s", diff)
	}

	require.Equal(t, 1, b.clearLines())
	assert.Equal(t, 2, b.Count())
}

func TestClearLinesFourStackedRows(t *testing.T) {
	var b Board
	kinds := []Kind{I, J, L, O}
	for i, kind := range kinds {
		fillRow(&b, Height-1-i, kind)
	}

	cleared := b.clearLines()

	var want Board
	fillRow(&want, Height-1, J)
	fillRow(&want, Height-2, O)
	require.Equal(t, 2, cleared)
	if diff := cmp.Diff(want, b); diff != "" {
		t.Fatalf("board mismatch (-want +got):\n%s", diff)
	}
}

func TestClearLinesKeepsPartialRows(t *testing.T) {
	var b Board
	for y := 0; y < Height; y++ {
		b[y][y%Width] = L
	}
	before := b

	assert.Zero(t, b.clearLines())
	assert.Equal(t, before, b)
}

func TestClearLinesTopRow(t *testing.T) {
	var b Board
	fillRow(&b, 0, O)
	b[1][2] = Z

	require.Equal(t, 1, b.clearLines())
	assert.Equal(t, 1, b.Count())
	assert.Equal(t, Z, b[1][2])
}

func TestOverlay(t *testing.T) {
	t.Run("stamps piece without touching input", func(t *testing.T) {
		var b Board
		b[19][0] = I
		p := Piece{Kind: T, X: 4, Y: 10}

		grid := Overlay(b, p)

		assert.Equal(t, 1, b.Count())
		assert.Equal(t, 5, grid.Count())
		for _, cell := range p.Cells() {
			assert.Equal(t, T, grid[cell.Y][cell.X])
		}
		assert.Equal(t, I, grid[19][0])
	})

	t.Run("drops off-board cells", func(t *testing.T) {
		var b Board
		p := Piece{Kind: I, Rotation: 1, X: 0, Y: -2}

		grid := Overlay(b, p)

		assert.Equal(t, 2, grid.Count())
		assert.Equal(t, I, grid[0][1])
		assert.Equal(t, I, grid[1][1])
	})
}

func TestOccupied(t *testing.T) {
	var b Board
	b[3][7] = S
	assert.True(t, b.Occupied(7, 3))
	assert.False(t, b.Occupied(6, 3))
	assert.False(t, b.Occupied(-1, 0))
	assert.False(t, b.Occupied(0, Height))
}
