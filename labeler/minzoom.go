package labeler

import "math"

const (
	minzoomIntercept = 13.9670060423554
	minzoomSlope     = 0.428698399307115
)

// AreaToZoom maps an area in square meters to the zoom level a label should
// first appear at. Larger areas get lower zooms. The result is clamped to
// bound.
func AreaToZoom(area float64, bound ZoomBound) int {
	zoom := math.Round(minzoomIntercept - minzoomSlope*math.Log2(area))

	// NaN only comes from a negative area.
	if math.IsNaN(zoom) || zoom > float64(bound.Max) {
		return bound.Max
	}
	if zoom < float64(bound.Min) {
		return bound.Min
	}
	return int(zoom)
}
