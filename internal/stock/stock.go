// Package stock defines the rectangular workpiece blank a job cuts from.
package stock

// Stock is a rectangular blank. Z=0 is the top of the stock (Tormach
// convention); negative Z goes down into the material.
type Stock struct {
	XSize, YSize, ZSize float64
	XOrigin, YOrigin    float64
	ZTop                float64
}

// ZBottom is the Z coordinate of the lowest face of the stock.
func (s Stock) ZBottom() float64 {
	return s.ZTop - s.ZSize
}

func (s Stock) XMin() float64 { return s.XOrigin }
func (s Stock) XMax() float64 { return s.XOrigin + s.XSize }
func (s Stock) YMin() float64 { return s.YOrigin }
func (s Stock) YMax() float64 { return s.YOrigin + s.YSize }

// Bounds2D returns (xmin, ymin, xmax, ymax) of the stock footprint.
func (s Stock) Bounds2D() (xmin, ymin, xmax, ymax float64) {
	return s.XMin(), s.YMin(), s.XMax(), s.YMax()
}

// FromModelBounds builds a Stock whose footprint fits the given XY/Z
// bounding box with an optional margin on every side, at the given ZTop.
func FromModelBounds(xmin, ymin, zmin, xmax, ymax, zmax, margin, zTop float64) Stock {
	return Stock{
		XSize:   xmax - xmin + 2*margin,
		YSize:   ymax - ymin + 2*margin,
		ZSize:   zmax - zmin,
		XOrigin: xmin - margin,
		YOrigin: ymin - margin,
		ZTop:    zTop,
	}
}
