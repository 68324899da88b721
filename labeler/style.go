package labeler

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/UnownHash/polygon-labels/geo"
)

// resolve returns the features whose geometries should be labelled. Parts
// that are not polygons are returned by the explode style and dropped by
// the caller.
func (labeler *Labeler) resolve(feature *geojson.Feature) []*geojson.Feature {
	switch labeler.config.ParsedStyle {
	case StyleLargest:
		parts := geo.FlattenFeature(feature)
		polygons := make(orb.MultiPolygon, 0, len(parts))
		for _, part := range parts {
			if polygon, ok := part.Geometry.(orb.Polygon); ok {
				polygons = append(polygons, polygon)
			}
		}
		largest := geo.GetLargestPolygon(polygons)
		if largest == nil {
			labeler.logger.Debugf("feature %d: no polygon parts to pick the largest from", labeler.processed)
			return nil
		}
		return []*geojson.Feature{partFeature(feature, largest)}
	case StyleCombine:
		hull := geo.ConvexHull(feature.Geometry)
		if hull == nil {
			labeler.logger.Debugf("feature %d: no vertices to combine", labeler.processed)
			return nil
		}
		return []*geojson.Feature{partFeature(feature, hull)}
	case StyleExplode:
		return geo.FlattenFeature(feature)
	}
	return nil
}

func partFeature(feature *geojson.Feature, geometry orb.Geometry) *geojson.Feature {
	return &geojson.Feature{
		Type:       "Feature",
		Geometry:   geometry,
		Properties: feature.Properties,
	}
}
