package geo

import (
	"github.com/paulmach/orb"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy"
)

func pointsFromCoords(coords []geom.Coord) []orb.Point {
	points := make([]orb.Point, len(coords))
	for idx, coord := range coords {
		points[idx] = orb.Point{coord.X(), coord.Y()}
	}
	return points
}

// closedRing makes a ring out of points, appending the first point when the
// ring is not already closed. Used for hulls that collapsed to a point or
// a line.
func closedRing(points []orb.Point) orb.Ring {
	ring := orb.Ring(points)
	if l := len(ring); l == 1 || ring[0] != ring[l-1] {
		ring = append(ring, ring[0])
	}
	return ring
}

// ConvexHull returns the convex hull of every vertex of the geometry.
// Vertex sets that are a single point or collinear produce a zero-area
// polygon. It returns nil when the geometry has no vertices.
func ConvexHull(geometry orb.Geometry) orb.Polygon {
	points := Vertices(geometry)
	if len(points) == 0 {
		return nil
	}

	flatCoords := make([]float64, 0, 2*len(points))
	for _, pt := range points {
		flatCoords = append(flatCoords, pt[0], pt[1])
	}

	switch hull := xy.ConvexHull(geom.NewMultiPointFlat(geom.XY, flatCoords)).(type) {
	case *geom.Polygon:
		polygon := make(orb.Polygon, hull.NumLinearRings())
		for idx := range polygon {
			polygon[idx] = closedRing(pointsFromCoords(hull.LinearRing(idx).Coords()))
		}
		return polygon
	case *geom.LineString:
		return orb.Polygon{closedRing(pointsFromCoords(hull.Coords()))}
	case *geom.Point:
		return orb.Polygon{closedRing([]orb.Point{{hull.X(), hull.Y()}})}
	}

	// go-geom only hands back the types above; keep the vertices as
	// a degenerate ring if that ever changes.
	return orb.Polygon{closedRing(points)}
}
