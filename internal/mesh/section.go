package mesh

import "sort"

// SectionMultiplane cuts the mesh at every height in a single traversal:
// triangles are bucketed by their Z extent once, then each height consults
// only the triangles whose [zmin,zmax] span it, instead of re-scanning the
// whole triangle list per height.
func (m *TriangleMesh) SectionMultiplane(heights []float64) []Section {
	type bounded struct {
		tri        Triangle
		zmin, zmax float64
	}
	tris := make([]bounded, len(m.Triangles))
	for i, t := range m.Triangles {
		zmin, zmax := t[0].Z, t[0].Z
		for _, v := range t[1:] {
			zmin, zmax = minf(zmin, v.Z), maxf(zmax, v.Z)
		}
		tris[i] = bounded{tri: t, zmin: zmin, zmax: zmax}
	}
	sort.Slice(tris, func(i, j int) bool { return tris[i].zmin < tris[j].zmin })

	zmins := make([]float64, len(tris))
	for i, b := range tris {
		zmins[i] = b.zmin
	}

	out := make([]Section, len(heights))
	for hi, z := range heights {
		// Every candidate triangle has zmin <= z; tris is sorted by zmin,
		// so a binary search finds the first index where zmin > z and we
		// only need to scan the prefix before it.
		upper := sort.SearchFloat64s(zmins, nextAfter(z)) // zmin <= z
		var segs []Segment2D
		for i := 0; i < upper; i++ {
			b := tris[i]
			if b.zmax < z {
				continue
			}
			if seg, ok := triangleZCut(b.tri, z); ok {
				segs = append(segs, seg)
			}
		}
		out[hi] = Section{Z: z, Segments: segs}
	}
	return out
}

// nextAfter returns z plus a 1e-9 margin, the bound SearchFloat64s uses so
// that every triangle with zmin <= z (within that margin) is in the prefix.
func nextAfter(z float64) float64 {
	const eps = 1e-9
	return z + eps
}

// triangleZCut intersects one triangle against the horizontal plane Z=z,
// returning the chord where the plane crosses the triangle's interior.
// Degenerate contacts are not filtered: a triangle lying in the plane or
// touching it along an edge yields an edge as its segment, and one touching
// it at a single vertex yields a zero-length segment at that vertex.
func triangleZCut(t Triangle, z float64) (Segment2D, bool) {
	var pts []Point2D
	for i := 0; i < 3; i++ {
		a, b := t[i], t[(i+1)%3]
		pts = append(pts, edgeCrossing(a, b, z)...)
	}
	if len(pts) < 2 {
		return Segment2D{}, false
	}
	return Segment2D{A: pts[0], B: pts[1]}, true
}

func edgeCrossing(a, b Point3, z float64) []Point2D {
	if (a.Z < z && b.Z < z) || (a.Z > z && b.Z > z) {
		return nil
	}
	if a.Z == b.Z {
		if a.Z != z {
			return nil
		}
		return []Point2D{{X: a.X, Y: a.Y}, {X: b.X, Y: b.Y}}
	}
	t := (z - a.Z) / (b.Z - a.Z)
	if t < 0 || t > 1 {
		return nil
	}
	return []Point2D{{
		X: a.X + t*(b.X-a.X),
		Y: a.Y + t*(b.Y-a.Y),
	}}
}
