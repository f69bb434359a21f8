package domain

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makePlacements(n int) []Placement {
	placements := make([]Placement, n)
	for i := range placements {
		placements[i] = Placement{
			Dimensions: Dimensions{width: 300 + float64(i)*10, height: 200},
			ID:         fmt.Sprintf("doc_%d", i),
			Position:   Position{x: float64(i) * 37, y: float64(i) * 11},
			ZIndex:     i,
		}
	}
	return placements
}

var testWorkspaceSize = Dimensions{width: 1920, height: 1080}

func TestParseLayoutMode(t *testing.T) {
	for _, s := range []string{"stacked", "Grid", " freeform "} {
		_, err := ParseLayoutMode(s)
		assert.NoError(t, err, s)
	}

	_, err := ParseLayoutMode("tabs")
	assert.ErrorIs(t, err, ErrUnknownLayoutMode)
}

func TestLayoutMode_Capabilities(t *testing.T) {
	assert.False(t, LayoutStacked.SupportsDragging())
	assert.False(t, LayoutStacked.SupportsResizing())
	assert.False(t, LayoutGrid.SupportsDragging())
	assert.False(t, LayoutGrid.SupportsResizing())
	assert.True(t, LayoutFreeform.SupportsDragging())
	assert.True(t, LayoutFreeform.SupportsResizing())
}

func TestLayoutMode_EmptyInput(t *testing.T) {
	for _, mode := range LayoutModes {
		results := mode.Calculate(nil, testWorkspaceSize, "")
		assert.NotNil(t, results, mode.String())
		assert.Empty(t, results, mode.String())
	}
}

func TestStacked_CascadesAndLiftsActive(t *testing.T) {
	docs := makePlacements(4)
	results := LayoutStacked.Calculate(docs, testWorkspaceSize, "doc_1")

	require.Len(t, results, 4)
	for i, r := range results {
		assert.Equal(t, StackAnchorX+float64(i)*StackOffset, r.Position.X())
		assert.Equal(t, StackAnchorY+float64(i)*StackOffset, r.Position.Y())
		assert.True(t, r.Dimensions.Equals(docs[i].Dimensions), "stacked keeps dimensions")
		assert.True(t, r.IsVisible)
	}
	assert.Equal(t, 4, results[1].ZIndex)
	for i, r := range results {
		if r.ID != "doc_1" {
			assert.Less(t, r.ZIndex, results[1].ZIndex, "doc_%d", i)
		}
	}
}

func TestStacked_UsesActiveFlagWhenIDMissing(t *testing.T) {
	docs := makePlacements(3)
	docs[2].IsActive = true

	results := LayoutStacked.Calculate(docs, testWorkspaceSize, "")
	assert.Equal(t, 3, results[2].ZIndex)
}

func TestGrid_ShapeAndBounds(t *testing.T) {
	for n := 0; n <= 17; n++ {
		t.Run(fmt.Sprintf("%d docs", n), func(t *testing.T) {
			cols, rows := GridShape(n)
			if n == 0 {
				assert.Equal(t, 0, cols)
				return
			}
			assert.Equal(t, int(math.Ceil(math.Sqrt(float64(n)))), cols)
			assert.Equal(t, int(math.Ceil(float64(n)/float64(cols))), rows)

			results := LayoutGrid.Calculate(makePlacements(n), testWorkspaceSize, "")
			require.Len(t, results, n)
			for i, r := range results {
				assert.True(t, r.Dimensions.Equals(results[0].Dimensions), "identical cells")
				assert.LessOrEqual(t, r.Position.X()+r.Dimensions.Width(), testWorkspaceSize.Width()+1e-9)
				assert.LessOrEqual(t, r.Position.Y()+r.Dimensions.Height(), testWorkspaceSize.Height()+1e-9)
				assert.Equal(t, i, r.ZIndex)
			}
		})
	}
}

func TestGrid_RowMajorFill(t *testing.T) {
	results := LayoutGrid.Calculate(makePlacements(5), testWorkspaceSize, "doc_4")

	// 5 docs -> 3 cols x 2 rows
	cellW := testWorkspaceSize.Width() / 3
	cellH := testWorkspaceSize.Height() / 2
	expected := []Point{
		{0, 0}, {cellW, 0}, {2 * cellW, 0},
		{0, cellH}, {cellW, cellH},
	}
	for i, r := range results {
		assert.Equal(t, expected[i], r.Position.ToPoint(), "doc_%d", i)
	}
	assert.Equal(t, 4, results[4].ZIndex, "grid does not promote the active caddy")
}

func TestGrid_SingleDocumentFillsWorkspace(t *testing.T) {
	results := LayoutGrid.Calculate(makePlacements(1), testWorkspaceSize, "")

	require.Len(t, results, 1)
	assert.True(t, results[0].Position.Equals(Origin()))
	assert.True(t, results[0].Dimensions.Equals(testWorkspaceSize))
}

func TestGrid_ClampsCellsToMinimum(t *testing.T) {
	small := Dimensions{width: 300, height: 120}
	results := LayoutGrid.Calculate(makePlacements(9), small, "")

	for _, r := range results {
		assert.Equal(t, MinWidth, r.Dimensions.Width())
		assert.Equal(t, MinHeight, r.Dimensions.Height())
	}
}

func TestFreeform_IsIdentityExceptActiveZ(t *testing.T) {
	docs := makePlacements(4)
	results := LayoutFreeform.Calculate(docs, testWorkspaceSize, "doc_0")

	for i, r := range results {
		assert.True(t, r.Position.Equals(docs[i].Position))
		assert.True(t, r.Dimensions.Equals(docs[i].Dimensions))
		assert.True(t, r.IsVisible)
		if r.ID != "doc_0" {
			assert.Equal(t, docs[i].ZIndex, r.ZIndex)
		}
	}
	assert.Equal(t, 4, results[0].ZIndex)
}

func TestFreeform_StableOnRepeat(t *testing.T) {
	docs := makePlacements(3)
	first := LayoutFreeform.Calculate(docs, testWorkspaceSize, "doc_1")

	for i := range docs {
		docs[i].ZIndex = first[i].ZIndex
	}
	second := LayoutFreeform.Calculate(docs, testWorkspaceSize, "doc_1")

	assert.Equal(t, first, second)
}
