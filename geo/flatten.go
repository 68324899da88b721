package geo

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// FlattenGeometry splits Multi* geometries and collections into their
// simple parts, in order. Simple geometries are returned as-is.
func FlattenGeometry(geometry orb.Geometry) []orb.Geometry {
	switch typedGeometry := geometry.(type) {
	case orb.MultiPoint:
		parts := make([]orb.Geometry, len(typedGeometry))
		for idx, pt := range typedGeometry {
			parts[idx] = pt
		}
		return parts
	case orb.MultiLineString:
		parts := make([]orb.Geometry, len(typedGeometry))
		for idx, ls := range typedGeometry {
			parts[idx] = ls
		}
		return parts
	case orb.MultiPolygon:
		parts := make([]orb.Geometry, len(typedGeometry))
		for idx, poly := range typedGeometry {
			parts[idx] = poly
		}
		return parts
	case orb.Collection:
		parts := make([]orb.Geometry, 0, len(typedGeometry))
		for _, g := range typedGeometry {
			parts = append(parts, FlattenGeometry(g)...)
		}
		return parts
	default:
		return []orb.Geometry{geometry}
	}
}

// FlattenFeature returns one feature per simple part of the feature's
// geometry. Every part shares the parent's properties.
func FlattenFeature(feature *geojson.Feature) []*geojson.Feature {
	parts := FlattenGeometry(feature.Geometry)
	features := make([]*geojson.Feature, len(parts))
	for idx, part := range parts {
		features[idx] = &geojson.Feature{
			Type:       "Feature",
			Geometry:   part,
			Properties: feature.Properties,
		}
	}
	return features
}

// Vertices returns every coordinate of the geometry, ring closing points
// included.
func Vertices(geometry orb.Geometry) []orb.Point {
	var points []orb.Point

	var collect func(orb.Geometry)
	collect = func(geometry orb.Geometry) {
		switch typedGeometry := geometry.(type) {
		case orb.Point:
			points = append(points, typedGeometry)
		case orb.MultiPoint:
			points = append(points, typedGeometry...)
		case orb.LineString:
			points = append(points, typedGeometry...)
		case orb.Ring:
			points = append(points, typedGeometry...)
		case orb.MultiLineString:
			for _, ls := range typedGeometry {
				points = append(points, ls...)
			}
		case orb.Polygon:
			for _, ring := range typedGeometry {
				points = append(points, ring...)
			}
		case orb.MultiPolygon:
			for _, poly := range typedGeometry {
				collect(poly)
			}
		case orb.Collection:
			for _, g := range typedGeometry {
				collect(g)
			}
		case orb.Bound:
			collect(typedGeometry.ToPolygon())
		}
	}
	collect(geometry)

	return points
}
