package geom

type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

func (b BBox) Width() float64  { return b.MaxX - b.MinX }
func (b BBox) Height() float64 { return b.MaxY - b.MinY }
func (b BBox) Area() float64   { return b.Width() * b.Height() }

// Center returns the midpoint of the box.
func (b BBox) Center() (float64, float64) {
	return (b.MinX + b.MaxX) / 2, (b.MinY + b.MaxY) / 2
}

// Contains reports whether (x, y) lies in the closed box.
func (b BBox) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// Valid reports whether the box has a positive extent on both axes.
func (b BBox) Valid() bool {
	return b.MaxX > b.MinX && b.MaxY > b.MinY
}

// bboxBuilder grows a box point by point; the first point seeds it.
type bboxBuilder struct {
	box BBox
	n   int
}

func (bb *bboxBuilder) add(pt [2]float64) {
	if bb.n == 0 {
		bb.box = BBox{MinX: pt[0], MinY: pt[1], MaxX: pt[0], MaxY: pt[1]}
	} else {
		if pt[0] < bb.box.MinX {
			bb.box.MinX = pt[0]
		}
		if pt[1] < bb.box.MinY {
			bb.box.MinY = pt[1]
		}
		if pt[0] > bb.box.MaxX {
			bb.box.MaxX = pt[0]
		}
		if pt[1] > bb.box.MaxY {
			bb.box.MaxY = pt[1]
		}
	}
	bb.n++
}

func (bb *bboxBuilder) addAll(pts [][2]float64) {
	for _, p := range pts {
		bb.add(p)
	}
}

// BBoxOf returns the bounding box of pts. An empty slice yields the zero box.
func BBoxOf(pts [][2]float64) BBox {
	var bb bboxBuilder
	bb.addAll(pts)
	return bb.box
}

// Data is a minimal geometry container for loaded files
type Data struct {
	Points   [][2]float64
	Lines    [][][2]float64
	Polygons [][][][2]float64 // polygons with rings (first outer, following holes)
	BBox     BBox
}
