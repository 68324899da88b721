package geo

import (
	"math"

	venise_geo "github.com/dernise/venise/geo"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

const DEFAULT_PRECISION = 0.001

func convertToVenisePolygon(orbPolygon orb.Polygon) venise_geo.Polygon {
	polygon := venise_geo.Polygon{
		Rings: make([][]venise_geo.Point, len(orbPolygon)),
	}
	for ringIdx, ring := range orbPolygon {
		ringPoints := make([]venise_geo.Point, len(ring))
		for ptsIdx, coord := range ring {
			ringPoints[ptsIdx] = venise_geo.Point(coord)
		}
		polygon.Rings[ringIdx] = ringPoints
	}
	return polygon
}

func hasArea(polygon orb.Polygon) bool {
	return len(polygon) > 0 && planar.Area(polygon) != 0
}

// Polylabel finds the pole of inaccessibility of the polygon to within
// precision, in coordinate units. Zero-area polygons get their Centroid.
func Polylabel(polygon orb.Polygon, precision float64) orb.Point {
	if !hasArea(polygon) {
		return Centroid(polygon)
	}
	point := venise_geo.Polylabel(convertToVenisePolygon(polygon), precision, false)
	return orb.Point(point)
}

// Centroid is the mean of all ring vertices. The closing point of each
// ring is not counted twice.
func Centroid(polygon orb.Polygon) orb.Point {
	var sumX, sumY float64
	var n int

	for _, ring := range polygon {
		l := len(ring)
		if l > 1 && ring[0] == ring[l-1] {
			l--
		}
		for _, pt := range ring[:l] {
			sumX += pt[0]
			sumY += pt[1]
			n++
		}
	}

	if n == 0 {
		return orb.Point{}
	}
	return orb.Point{sumX / float64(n), sumY / float64(n)}
}

// CenterOfMass is the area weighted centroid of the polygon, holes
// subtracted. Zero-area polygons get their Centroid.
func CenterOfMass(polygon orb.Polygon) orb.Point {
	if !hasArea(polygon) {
		return Centroid(polygon)
	}
	center, _ := planar.CentroidArea(polygon)
	return center
}

// RoundPoint rounds both coordinates to 5 decimal places.
func RoundPoint(pt orb.Point) orb.Point {
	return orb.Point{roundTo5(pt[0]), roundTo5(pt[1])}
}

func roundTo5(v float64) float64 {
	return math.Round(v*1e5) / 1e5
}
