package pandagl

// FillTriangle rasterizes a flat-colored triangle with a scanline fill.
//
// Vertices are sorted by y, then every scanline from the top vertex to the
// bottom vertex interpolates its span endpoints along the long edge
// (progress alpha) and the current short edge (progress beta). Zero-height
// triangles are skipped, as is any scanline whose short edge is horizontal.
func FillTriangle(t Target, x1, y1, x2, y2, x3, y3 int, c Color) {
	if y1 > y2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}
	if y1 > y3 {
		x1, y1, x3, y3 = x3, y3, x1, y1
	}
	if y2 > y3 {
		x2, y2, x3, y3 = x3, y3, x2, y2
	}
	total := y3 - y1
	if total == 0 {
		return
	}
	for y := y1; y <= y3; y++ {
		lower := y > y2 || y2 == y1
		segStart, segHeight := y1, y2-y1
		if lower {
			segStart, segHeight = y2, y3-y2
		}
		if segHeight == 0 {
			continue
		}
		alpha := float32(y-y1) / float32(total)
		beta := float32(y-segStart) / float32(segHeight)

		xa := x1 + int(float32(x3-x1)*alpha)
		var xb int
		if lower {
			xb = x2 + int(float32(x3-x2)*beta)
		} else {
			xb = x1 + int(float32(x2-x1)*beta)
		}
		if xa > xb {
			xa, xb = xb, xa
		}
		for x := xa; x <= xb; x++ {
			t.SetPixel(x, y, c)
		}
	}
}

// FillTriangleTextured rasterizes a texture-mapped triangle. It is the same
// scanline fill as FillTriangle with UV coordinates carried through the
// vertex sort and edge interpolation, then interpolated linearly across
// each span. The mapping is screen-space affine, not perspective correct,
// and texels are fetched nearest-neighbor with wrap addressing.
func FillTriangleTextured(t Target, img *Image,
	x1, y1 int, u1, v1 float32,
	x2, y2 int, u2, v2 float32,
	x3, y3 int, u3, v3 float32,
) {
	if img == nil {
		return
	}
	if y1 > y2 {
		x1, y1, u1, v1, x2, y2, u2, v2 = x2, y2, u2, v2, x1, y1, u1, v1
	}
	if y1 > y3 {
		x1, y1, u1, v1, x3, y3, u3, v3 = x3, y3, u3, v3, x1, y1, u1, v1
	}
	if y2 > y3 {
		x2, y2, u2, v2, x3, y3, u3, v3 = x3, y3, u3, v3, x2, y2, u2, v2
	}
	total := y3 - y1
	if total == 0 {
		return
	}
	for y := y1; y <= y3; y++ {
		lower := y > y2 || y2 == y1
		segStart, segHeight := y1, y2-y1
		if lower {
			segStart, segHeight = y2, y3-y2
		}
		if segHeight == 0 {
			continue
		}
		alpha := float32(y-y1) / float32(total)
		beta := float32(y-segStart) / float32(segHeight)

		xa := x1 + int(float32(x3-x1)*alpha)
		ua := u1 + (u3-u1)*alpha
		va := v1 + (v3-v1)*alpha

		var xb int
		var ub, vb float32
		if lower {
			xb = x2 + int(float32(x3-x2)*beta)
			ub = u2 + (u3-u2)*beta
			vb = v2 + (v3-v2)*beta
		} else {
			xb = x1 + int(float32(x2-x1)*beta)
			ub = u1 + (u2-u1)*beta
			vb = v1 + (v2-v1)*beta
		}

		if xa > xb {
			xa, xb = xb, xa
			ua, ub = ub, ua
			va, vb = vb, va
		}
		for x := xa; x <= xb; x++ {
			var s float32
			if xb != xa {
				s = float32(x-xa) / float32(xb-xa)
			}
			u := ua + (ub-ua)*s
			v := va + (vb-va)*s
			t.SetPixel(x, y, img.Sample(u, v))
		}
	}
}
