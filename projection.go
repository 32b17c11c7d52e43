package pandagl

// ndcPoint is a position after the perspective divide, in [-1,1] on each
// axis for visible geometry.
type ndcPoint struct {
	X, Y, Z float32
}

func clipToNDC(p Vec4) (ndcPoint, bool) {
	if p.W == 0 {
		return ndcPoint{}, false
	}
	invW := 1 / p.W
	return ndcPoint{X: p.X * invW, Y: p.Y * invW, Z: p.Z * invW}, true
}

// ndcToScreen maps normalized device coordinates to pixel coordinates.
// Y is flipped: NDC is Y-up, the screen origin is top-left.
func ndcToScreen(p ndcPoint, w, h int) (x, y int) {
	sx := (p.X + 1) * 0.5 * float32(w)
	sy := (1 - p.Y) * 0.5 * float32(h)
	return int(sx), int(sy)
}

// ProjectPoint runs a point through a combined model-view-projection
// transform and returns its screen pixel position for a width x height
// viewport. The third result is the NDC z, a depth hint for caller-side
// effects such as brightness by distance. Nothing here tests depth:
// triangles land in submission order, and back-to-front sorting is the
// caller's job.
func ProjectPoint(p Vec3, transform Mat4, width, height int) (sx, sy int, depth float32) {
	ndc := Mat4MulVec3(transform, p, 1)
	x, y := ndcToScreen(ndcPoint{X: ndc.X, Y: ndc.Y, Z: ndc.Z}, width, height)
	return x, y, ndc.Z
}
