package selection

import (
	"kartu/internal/models"
)

// overflowRowThreshold is the number of face-value rows a tier can have
// before the selector starts tracking viewport overflow at all.
const overflowRowThreshold = 5

// FaceValueSelector presents the face-value rows of one resolved currency
// tier and reports which row the seller picked. It holds its state locally:
// the current tier, the row height, and the viewport height it was last
// sized to. It performs no validation; that is the sell order builder's job.
type FaceValueSelector struct {
	tier           *models.CurrencyTier
	rowHeight      float64
	viewportHeight float64
}

// NewFaceValueSelector creates a selector with the given row height and
// initial viewport height. No tier is selected yet.
func NewFaceValueSelector(rowHeight, viewportHeight float64) *FaceValueSelector {
	return &FaceValueSelector{
		rowHeight:      rowHeight,
		viewportHeight: viewportHeight,
	}
}

// SetTier replaces the tier the selector presents. Passing nil clears the
// selection surface; the selector then emits no rows.
func (s *FaceValueSelector) SetTier(tier *models.CurrencyTier) {
	s.tier = tier
}

// Resize records a new viewport height. Overflow is re-evaluated from the
// stored dimensions on the next query, so no recomputation happens here.
func (s *FaceValueSelector) Resize(viewportHeight float64) {
	s.viewportHeight = viewportHeight
}

// Rows returns the face values of the current tier in their canonical
// display order, or nothing when no tier is set.
func (s *FaceValueSelector) Rows() []models.FaceValue {
	if s.tier == nil {
		return nil
	}
	return s.tier.FaceValues
}

// Overflowing reports whether the rendered rows exceed the viewport. A tier
// of five or fewer rows never overflows regardless of viewport size; a
// larger tier overflows exactly when its content height outgrows the
// viewport height.
func (s *FaceValueSelector) Overflowing() bool {
	if s.tier == nil {
		return false
	}
	rows := len(s.tier.FaceValues)
	if rows <= overflowRowThreshold {
		return false
	}
	return float64(rows)*s.rowHeight > s.viewportHeight
}

// Select returns the face value at the given row, verbatim. The second
// return is false when no tier is set or the row is out of range.
func (s *FaceValueSelector) Select(row int) (models.FaceValue, bool) {
	if s.tier == nil || row < 0 || row >= len(s.tier.FaceValues) {
		return models.FaceValue{}, false
	}
	return s.tier.FaceValues[row], true
}
