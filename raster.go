package pandagl

import "math"

// DrawLine rasterizes a 1-pixel line from (x0, y0) to (x1, y1) with
// integer Bresenham stepping. Both endpoints are set, and the result is
// the same pixel set regardless of direction.
func DrawLine(t Target, x0, y0, x1, y1 int, c Color) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		t.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawThickLine draws thickness parallel 1-pixel lines offset along the
// line's perpendicular. A zero-length line draws nothing; the guard keeps
// the perpendicular normalization from dividing by zero.
func DrawThickLine(t Target, x0, y0, x1, y1, thickness int, c Color) {
	dx := float32(x1 - x0)
	dy := float32(y1 - y0)
	l := float32(math.Sqrt(float64(dx*dx + dy*dy)))
	if l == 0 {
		return
	}
	px := -dy / l
	py := dx / l
	half := thickness / 2
	for i := -half; i <= half; i++ {
		ox := int(px * float32(i))
		oy := int(py * float32(i))
		DrawLine(t, x0+ox, y0+oy, x1+ox, y1+oy, c)
	}
}

// DrawCircle rasterizes a circle outline with the midpoint algorithm,
// mirroring each computed point across the 8 octants.
func DrawCircle(t Target, cx, cy, r int, c Color) {
	if r < 0 {
		return
	}
	x := r
	y := 0
	err := 0
	for x >= y {
		t.SetPixel(cx+x, cy+y, c)
		t.SetPixel(cx+y, cy+x, c)
		t.SetPixel(cx-y, cy+x, c)
		t.SetPixel(cx-x, cy+y, c)
		t.SetPixel(cx-x, cy-y, c)
		t.SetPixel(cx-y, cy-x, c)
		t.SetPixel(cx+y, cy-x, c)
		t.SetPixel(cx+x, cy-y, c)

		y++
		err += 1 + 2*y
		if 2*(err-x)+1 > 0 {
			x--
			err += 1 - 2*x
		}
	}
}

// FillCircle fills a disc by scanning the bounding box and keeping points
// with x*x + y*y <= r*r. Brute force, but exact and plenty fast for the
// radii this engine draws.
func FillCircle(t Target, cx, cy, r int, c Color) {
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			if x*x+y*y <= r*r {
				t.SetPixel(cx+x, cy+y, c)
			}
		}
	}
}

// DrawTriangle draws a triangle outline as three lines.
func DrawTriangle(t Target, x1, y1, x2, y2, x3, y3 int, c Color) {
	DrawLine(t, x1, y1, x2, y2, c)
	DrawLine(t, x2, y2, x3, y3, c)
	DrawLine(t, x3, y3, x1, y1, c)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
