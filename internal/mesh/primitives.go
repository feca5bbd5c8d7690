package mesh

import "math"

// Box returns an axis-aligned rectangular prism from (0,0,0) to
// (sx,sy,sz), triangulated as two triangles per face. Primarily useful
// for tests and for exercising the pipeline without a real mesh loader.
func Box(sx, sy, sz float64) *TriangleMesh {
	corner := func(x, y, z float64) Point3 { return Point3{X: x, Y: y, Z: z} }

	p000, p100 := corner(0, 0, 0), corner(sx, 0, 0)
	p010, p110 := corner(0, sy, 0), corner(sx, sy, 0)
	p001, p101 := corner(0, 0, sz), corner(sx, 0, sz)
	p011, p111 := corner(0, sy, sz), corner(sx, sy, sz)

	quad := func(a, b, c, d Point3) []Triangle {
		return []Triangle{{a, b, c}, {a, c, d}}
	}

	var tris []Triangle
	tris = append(tris, quad(p000, p010, p110, p100)...) // bottom
	tris = append(tris, quad(p001, p101, p111, p011)...) // top
	tris = append(tris, quad(p000, p100, p101, p001)...) // front
	tris = append(tris, quad(p010, p011, p111, p110)...) // back
	tris = append(tris, quad(p000, p001, p011, p010)...) // left
	tris = append(tris, quad(p100, p110, p111, p101)...) // right

	return NewTriangleMesh(tris)
}

// Cylinder returns an upright cylinder of the given radius and height,
// centered on the X/Y origin, approximated with segments facets.
func Cylinder(radius, height float64, segments int) *TriangleMesh {
	if segments < 3 {
		segments = 3
	}
	var tris []Triangle
	top := Point3{X: 0, Y: 0, Z: height}
	bottom := Point3{X: 0, Y: 0, Z: 0}

	ring := func(z float64) []Point3 {
		pts := make([]Point3, segments)
		for i := 0; i < segments; i++ {
			theta := 2 * math.Pi * float64(i) / float64(segments)
			pts[i] = Point3{X: radius * math.Cos(theta), Y: radius * math.Sin(theta), Z: z}
		}
		return pts
	}

	topRing := ring(height)
	bottomRing := ring(0)

	for i := 0; i < segments; i++ {
		j := (i + 1) % segments
		tris = append(tris,
			Triangle{bottomRing[i], bottomRing[j], topRing[j]},
			Triangle{bottomRing[i], topRing[j], topRing[i]},
			Triangle{top, topRing[i], topRing[j]},
			Triangle{bottom, bottomRing[j], bottomRing[i]},
		)
	}
	return NewTriangleMesh(tris)
}
