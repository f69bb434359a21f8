package layout

import "github.com/renato0307/docdesk/internal/domain"

const (
	crowdedAreaRatio = 0.8
	maxGridDocuments = 9
	roomyArea        = 1000 * 800
)

// SuggestOptimalLayoutMode recommends a layout mode for count documents.
// The first matching rule wins:
//   - 0 or 1 documents: stacked
//   - estimated document area above 80% of the workspace: stacked
//   - 2 to 4 documents: grid
//   - up to 9 documents on a workspace larger than 1000x800: grid
//   - current mode is freeform: freeform
//   - otherwise: stacked
//
// It is advisory and never changes a workspace.
func (e *Engine) SuggestOptimalLayoutMode(count int, size domain.Dimensions, current domain.LayoutMode) domain.LayoutMode {
	if count <= 1 {
		return domain.LayoutStacked
	}

	docArea := float64(count) * e.config.DefaultDocumentSize.Area()
	if docArea > crowdedAreaRatio*size.Area() {
		return domain.LayoutStacked
	}
	if count <= 4 {
		return domain.LayoutGrid
	}
	if count <= maxGridDocuments && size.Area() > roomyArea {
		return domain.LayoutGrid
	}
	if current == domain.LayoutFreeform {
		return domain.LayoutFreeform
	}
	return domain.LayoutStacked
}
