package services

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/docdesk/internal/domain"
	"github.com/renato0307/docdesk/internal/layout"
)

func TestSwitchLayoutMode(t *testing.T) {
	svc, m := newTestService(t)
	ws := newTestWorkspace(t, "research", "/docs/a.pdf", "/docs/b.pdf", "/docs/c.pdf", "/docs/d.pdf")

	m.repo.EXPECT().GetByName(mock.Anything, "research").Return(ws, nil)
	m.repo.EXPECT().Save(mock.Anything, ws).Return(nil)

	results, err := svc.SwitchLayoutMode(context.Background(), "research", domain.LayoutGrid)

	require.NoError(t, err)
	require.Len(t, results, 4)
	assert.Equal(t, domain.LayoutGrid, ws.LayoutMode())
	assert.Equal(t, 960.0, results[0].Dimensions.Width())
	assert.Equal(t, 540.0, results[0].Dimensions.Height())
}

func TestSwitchLayoutMode_Unknown(t *testing.T) {
	svc, m := newTestService(t)
	ws := newTestWorkspace(t, "research", "/docs/a.pdf")
	m.repo.EXPECT().GetByName(mock.Anything, "research").Return(ws, nil)

	_, err := svc.SwitchLayoutMode(context.Background(), "research", "tiled")
	assert.ErrorIs(t, err, domain.ErrUnknownLayoutMode)
}

func TestAnimateLayoutMode(t *testing.T) {
	svc, m := newTestService(t)
	ws := newTestWorkspace(t, "research", "/docs/a.pdf", "/docs/b.pdf")
	before := ws.Placements()

	m.repo.EXPECT().GetByName(mock.Anything, "research").Return(ws, nil)
	m.repo.EXPECT().Save(mock.Anything, ws).Return(nil)

	animated, err := svc.AnimateLayoutMode(context.Background(), "research", domain.LayoutGrid)

	require.NoError(t, err)
	require.Len(t, animated, 2)
	assert.Equal(t, domain.LayoutGrid, ws.LayoutMode())
	for i, a := range animated {
		assert.True(t, a.FromPosition.Equals(before[i].Position))
		assert.Equal(t, time.Duration(i)*layout.DefaultConfig().StaggerInterval, a.StaggerDelay)
	}
	assert.Equal(t, 960.0, animated[1].Position.X())
}

func TestLayout_ReportsAndSuggests(t *testing.T) {
	svc, m := newTestService(t)
	ws := newTestWorkspace(t, "research", "/docs/a.pdf", "/docs/b.pdf", "/docs/c.pdf")

	m.repo.EXPECT().GetByName(mock.Anything, "research").Return(ws, nil)

	report, err := svc.Layout(context.Background(), "research")

	require.NoError(t, err)
	assert.Len(t, report.Results, 3)
	assert.True(t, report.Report.IsValid)
	assert.Equal(t, domain.LayoutGrid, report.Suggestion)
	assert.Same(t, ws, report.Workspace)
}

func TestLayout_CapsVisibleDocuments(t *testing.T) {
	svc, m := newTestService(t)
	svc.defaults.MaxDocumentsVisible = 2
	ws := newTestWorkspace(t, "research", "/docs/a.pdf", "/docs/b.pdf", "/docs/c.pdf")
	last := ws.Documents()[2].ID()
	require.NoError(t, ws.ActivateDocument(last))

	m.repo.EXPECT().GetByName(mock.Anything, "research").Return(ws, nil)

	report, err := svc.Layout(context.Background(), "research")

	require.NoError(t, err)
	require.Len(t, report.Results, 2)
	assert.Equal(t, last, report.Results[0].ID)
}

func TestArrangeWithoutOverlap(t *testing.T) {
	svc, m := newTestService(t)
	ws := newTestWorkspace(t, "research", "/docs/a.pdf", "/docs/b.pdf", "/docs/c.pdf")
	require.Positive(t, layout.CountOverlaps(ws.CalculateCurrentLayout(), 10))

	m.repo.EXPECT().GetByName(mock.Anything, "research").Return(ws, nil)
	m.repo.EXPECT().Save(mock.Anything, ws).Return(nil)

	result, err := svc.ArrangeWithoutOverlap(context.Background(), "research", -1)

	require.NoError(t, err)
	assert.Empty(t, result.Fallback)
	assert.Equal(t, domain.LayoutFreeform, ws.LayoutMode())
	assert.Zero(t, layout.CountOverlaps(result.Results, 10))
	assert.Zero(t, layout.CountOverlaps(ws.CalculateCurrentLayout(), 10))
}

func TestSnapToGrid(t *testing.T) {
	svc, m := newTestService(t)
	ws := newTestWorkspace(t, "research", "/docs/a.pdf", "/docs/b.pdf", "/docs/c.pdf")

	m.repo.EXPECT().GetByName(mock.Anything, "research").Return(ws, nil)
	m.repo.EXPECT().Save(mock.Anything, ws).Return(nil)

	snapped, err := svc.SnapToGrid(context.Background(), "research", 40)

	require.NoError(t, err)
	assert.Equal(t, domain.LayoutFreeform, ws.LayoutMode())
	for _, doc := range ws.Documents() {
		assert.Zero(t, math.Mod(doc.Position().X(), 40), doc.ID())
		assert.Zero(t, math.Mod(doc.Position().Y(), 40), doc.ID())
	}
	assert.Len(t, snapped, 3)
}
