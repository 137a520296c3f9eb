package s2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellFromCellIDContainsItsCenter(t *testing.T) {
	id := CellIDFromFaceIJ(3, 1<<20, 1<<21).Parent(15)
	cell := CellFromCellID(id)

	for i := 0; i < 4; i++ {
		require.True(t, cell.Vertex(i).IsUnit())
	}

	center := cell.Vertex(0).Add(cell.Vertex(1).Vector).
		Add(cell.Vertex(2).Vector).Add(cell.Vertex(3).Vector).Normalize()
	assert.True(t, cell.ContainsPoint(Point{center}))
}

func TestCellVertexWrapsModuloFour(t *testing.T) {
	id := CellIDFromFaceIJ(0, 1000, 2000).Parent(10)
	cell := CellFromCellID(id)
	assert.Equal(t, cell.Vertex(0), cell.Vertex(4))
}

func TestCellRectBoundContainsCellVertices(t *testing.T) {
	id := CellIDFromFaceIJ(5, 12345, 54321).Parent(8)
	cell := CellFromCellID(id)
	bound := cell.RectBound()

	for i := 0; i < 4; i++ {
		assert.True(t, bound.ContainsPoint(cell.Vertex(i)))
	}
}
