package geometry

import (
	clipper "github.com/go-clipper/clipper2/port"
)

// Offset grows (delta > 0) or shrinks (delta < 0) p by delta, using a round
// join so the result stays at distance >= |delta| from every point of the
// source boundary, as required of the roughing exclusion region and the
// finishing centerline alike. Any failure from the underlying engine is
// swallowed and the empty polygon returned; a geometry failure is always
// local, never propagated.
func Offset(p Polygon, delta float64) Polygon {
	if p.IsEmpty() {
		return Polygon{}
	}
	result, err := clipper.InflatePaths64(p.toPaths64(), delta*scale, clipper.Round, clipper.ClosedPolygon)
	if err != nil || len(result) == 0 {
		return Polygon{}
	}
	return polygonFromFlatPaths64(result)
}
