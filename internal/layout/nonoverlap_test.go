package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/docdesk/internal/domain"
)

func TestCalculateNonOverlappingLayout_NoOverlap(t *testing.T) {
	tests := []struct {
		name    string
		count   int
		padding float64
	}{
		{"two caddies", 2, 0},
		{"four caddies with padding", 4, 10},
		{"four caddies without padding", 4, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine(DefaultConfig())
			docs := placements(t, tt.count, 300, 200)

			results, fallback := e.CalculateNonOverlappingLayout(docs, mustDimensions(t, 1920, 1080), tt.padding)

			require.Len(t, results, tt.count)
			assert.Empty(t, fallback)
			assert.Equal(t, 0, CountOverlaps(results, tt.padding))
		})
	}
}

func TestCalculateNonOverlappingLayout_KeepsFreeCaddies(t *testing.T) {
	e := NewEngine(DefaultConfig())
	docs := placements(t, 2, 300, 200)
	docs[1].Position = mustPosition(t, 800, 600)

	results, fallback := e.CalculateNonOverlappingLayout(docs, mustDimensions(t, 1920, 1080), 20)

	assert.Empty(t, fallback)
	assert.True(t, results[0].Position.Equals(docs[0].Position))
	assert.True(t, results[1].Position.Equals(docs[1].Position))
}

func TestCalculateNonOverlappingLayout_StepsRight(t *testing.T) {
	e := NewEngine(DefaultConfig())
	docs := placements(t, 2, 300, 200)

	results, _ := e.CalculateNonOverlappingLayout(docs, mustDimensions(t, 1920, 1080), 10)

	// first free x on the 50px step with 10px padding after a 300px caddy
	assert.Equal(t, 350.0, results[1].Position.X())
	assert.Equal(t, 0.0, results[1].Position.Y())
}

func TestCalculateNonOverlappingLayout_FallsBackWhenFull(t *testing.T) {
	e := NewEngine(DefaultConfig())
	docs := placements(t, 3, 150, 80)

	results, fallback := e.CalculateNonOverlappingLayout(docs, mustDimensions(t, 200, 100), 0)

	require.Len(t, results, 3)
	assert.Equal(t, []string{"doc_1", "doc_2"}, fallback)
	for i, r := range results {
		assert.True(t, r.Position.Equals(docs[i].Position), "fallback keeps the original position")
		assert.Equal(t, docs[i].ZIndex, r.ZIndex)
	}
}

func TestCalculateNonOverlappingLayout_RespectsAttemptBudget(t *testing.T) {
	docs := placements(t, 2, 300, 200)
	size := mustDimensions(t, 1920, 1080)

	// the free slot at x=350 needs 7 attempts
	tight := NewEngine(Config{NonOverlapMaxAttempts: 3})
	_, fallback := tight.CalculateNonOverlappingLayout(docs, size, 10)
	assert.Equal(t, []string{"doc_1"}, fallback)

	roomy := NewEngine(Config{NonOverlapMaxAttempts: 7})
	_, fallback = roomy.CalculateNonOverlappingLayout(docs, size, 10)
	assert.Empty(t, fallback)
}

func TestRectOverlaps(t *testing.T) {
	a := rect{x: 0, y: 0, w: 100, h: 100}

	tests := []struct {
		name    string
		b       rect
		padding float64
		want    bool
	}{
		{"intersecting", rect{50, 50, 100, 100}, 0, true},
		{"touching edges", rect{100, 0, 100, 100}, 0, false},
		{"within padding", rect{105, 0, 100, 100}, 10, true},
		{"beyond padding", rect{110, 0, 100, 100}, 10, false},
		{"below", rect{0, 120, 100, 100}, 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.overlaps(tt.b, tt.padding))
			assert.Equal(t, tt.want, tt.b.overlaps(a, tt.padding))
		})
	}
}

func TestCountOverlaps(t *testing.T) {
	d := mustDimensions(t, 200, 200)
	results := []domain.DocumentLayoutResult{
		{ID: "a", Position: domain.Origin(), Dimensions: d},
		{ID: "b", Position: mustPosition(t, 100, 100), Dimensions: d},
		{ID: "c", Position: mustPosition(t, 1000, 0), Dimensions: d},
	}

	assert.Equal(t, 1, CountOverlaps(results, 0))
}
