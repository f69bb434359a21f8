package layout

import (
	"sort"
	"time"

	"github.com/renato0307/docdesk/internal/domain"
)

// Config holds the tunables of the layout engine
type Config struct {
	DefaultDocumentSize   domain.Dimensions
	GridSize              float64
	NonOverlapMaxAttempts int
	NonOverlapStep        float64
	StaggerInterval       time.Duration
}

// DefaultConfig returns the engine defaults
func DefaultConfig() Config {
	return Config{
		DefaultDocumentSize:   domain.DefaultDimensions(),
		GridSize:              20,
		NonOverlapMaxAttempts: 100,
		NonOverlapStep:        50,
		StaggerInterval:       50 * time.Millisecond,
	}
}

// AnimatedLayoutResult is a layout result plus the geometry it animates from
type AnimatedLayoutResult struct {
	domain.DocumentLayoutResult
	FromDimensions domain.Dimensions
	FromPosition   domain.Position
	StaggerDelay   time.Duration
}

// OptimizationOptions tune CalculateOptimizedLayout.
// MaxDocumentsVisible <= 0 means no cap.
type OptimizationOptions struct {
	EnforceMinimumSize  bool
	MaxDocumentsVisible int
	MinimumSize         domain.Dimensions
	PrioritizeActive    bool
}

// Engine orchestrates layout calculation on top of the layout modes.
// It remembers the last result per caddy so transitions can be animated.
// An Engine is not safe for concurrent use.
type Engine struct {
	cache  map[string]domain.DocumentLayoutResult
	config Config
}

// NewEngine creates an engine. Zero config fields fall back to DefaultConfig.
func NewEngine(cfg Config) *Engine {
	def := DefaultConfig()
	if cfg.DefaultDocumentSize.IsZero() {
		cfg.DefaultDocumentSize = def.DefaultDocumentSize
	}
	if cfg.GridSize <= 0 {
		cfg.GridSize = def.GridSize
	}
	if cfg.NonOverlapMaxAttempts <= 0 {
		cfg.NonOverlapMaxAttempts = def.NonOverlapMaxAttempts
	}
	if cfg.NonOverlapStep <= 0 {
		cfg.NonOverlapStep = def.NonOverlapStep
	}
	if cfg.StaggerInterval <= 0 {
		cfg.StaggerInterval = def.StaggerInterval
	}
	return &Engine{
		cache:  make(map[string]domain.DocumentLayoutResult),
		config: cfg,
	}
}

// Config returns the effective configuration
func (e *Engine) Config() Config {
	return e.config
}

// CalculateLayout delegates to the layout mode and remembers the results.
// Modes outside the closed set return ErrUnknownLayoutMode.
func (e *Engine) CalculateLayout(mode domain.LayoutMode, docs []domain.Placement, size domain.Dimensions, activeID string) ([]domain.DocumentLayoutResult, error) {
	if err := mode.Validate(); err != nil {
		return nil, err
	}
	results := mode.Calculate(docs, size, activeID)
	e.remember(results)
	return results, nil
}

// CalculateAnimatedLayout computes the new layout and pairs every result with
// its previous geometry. Caddies never laid out before animate from their
// current placement.
func (e *Engine) CalculateAnimatedLayout(mode domain.LayoutMode, docs []domain.Placement, size domain.Dimensions, activeID string) ([]AnimatedLayoutResult, error) {
	if err := mode.Validate(); err != nil {
		return nil, err
	}
	current := make(map[string]domain.Placement, len(docs))
	for _, d := range docs {
		current[d.ID] = d
	}
	previous := make(map[string]domain.DocumentLayoutResult, len(docs))
	for _, d := range docs {
		if r, ok := e.cache[d.ID]; ok {
			previous[d.ID] = r
		}
	}

	results, err := e.CalculateLayout(mode, docs, size, activeID)
	if err != nil {
		return nil, err
	}
	animated := make([]AnimatedLayoutResult, len(results))
	for i, r := range results {
		a := AnimatedLayoutResult{
			DocumentLayoutResult: r,
			StaggerDelay:         time.Duration(i) * e.config.StaggerInterval,
		}
		if prev, ok := previous[r.ID]; ok {
			a.FromPosition = prev.Position
			a.FromDimensions = prev.Dimensions
		} else {
			a.FromPosition = current[r.ID].Position
			a.FromDimensions = current[r.ID].Dimensions
		}
		animated[i] = a
	}
	return animated, nil
}

// CalculateOptimizedLayout caps the number of laid out caddies and optionally
// enforces a size floor on the results
func (e *Engine) CalculateOptimizedLayout(mode domain.LayoutMode, docs []domain.Placement, size domain.Dimensions, activeID string, opts OptimizationOptions) ([]domain.DocumentLayoutResult, error) {
	if err := mode.Validate(); err != nil {
		return nil, err
	}
	visible := docs
	if opts.MaxDocumentsVisible > 0 && len(docs) > opts.MaxDocumentsVisible {
		visible = make([]domain.Placement, len(docs))
		copy(visible, docs)
		if opts.PrioritizeActive {
			sort.SliceStable(visible, func(i, j int) bool {
				return isActive(visible[i], activeID) && !isActive(visible[j], activeID)
			})
		}
		visible = visible[:opts.MaxDocumentsVisible]
	}

	results, err := e.CalculateLayout(mode, visible, size, activeID)
	if err != nil {
		return nil, err
	}
	if opts.EnforceMinimumSize {
		floor := opts.MinimumSize
		if floor.IsZero() {
			floor = domain.MinimumDimensions()
		}
		for i := range results {
			results[i].Dimensions = results[i].Dimensions.EnforceMinimum(floor)
		}
		e.remember(results)
	}
	return results, nil
}

// Forget drops cached geometry for the given caddies, e.g. after they close
func (e *Engine) Forget(ids ...string) {
	for _, id := range ids {
		delete(e.cache, id)
	}
}

// Reset drops all cached geometry
func (e *Engine) Reset() {
	e.cache = make(map[string]domain.DocumentLayoutResult)
}

// Previous returns the last result computed for a caddy
func (e *Engine) Previous(id string) (domain.DocumentLayoutResult, bool) {
	r, ok := e.cache[id]
	return r, ok
}

func (e *Engine) remember(results []domain.DocumentLayoutResult) {
	for _, r := range results {
		e.cache[r.ID] = r
	}
}

func isActive(p domain.Placement, activeID string) bool {
	if activeID != "" {
		return p.ID == activeID
	}
	return p.IsActive
}
