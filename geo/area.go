package geo

import (
	"math"

	"github.com/paulmach/orb"
	orb_geo "github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/geojson"
)

// Area returns the geodesic area of the geometry in square meters.
func Area(geometry orb.Geometry) float64 {
	return math.Abs(orb_geo.Area(geometry))
}

// BBox returns [west, south, east, north] of the geometry.
func BBox(geometry orb.Geometry) geojson.BBox {
	return geojson.NewBBox(geometry.Bound())
}

// GetLargestPolygon returns the polygon with the largest area. The first
// one wins on ties. It returns nil if mp is empty.
func GetLargestPolygon(mp orb.MultiPolygon) orb.Polygon {
	switch len(mp) {
	case 0:
		return nil
	case 1:
		return mp[0]
	}

	bestPoly := mp[0]
	maxArea := Area(bestPoly)

	for _, poly := range mp[1:] {
		area := Area(poly)
		if area > maxArea {
			maxArea = area
			bestPoly = poly
		}
	}

	return bestPoly
}
