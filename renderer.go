package pandagl

// Renderer is a fixed-pipeline software renderer.
//
// Create it once and reuse it to avoid allocations. Occlusion is painter's
// algorithm by default: triangles land in submission order. An explicit
// opt-in depth buffer is available for callers that want per-pixel
// occlusion instead of sorting.
type Renderer struct {
	Mode       RenderMode
	Depth      bool
	ClearColor Color

	depthBuf []float32
}

// NewRenderer creates a renderer for a given maximum target size.
//
// If enableDepth is true, a depth buffer of size w*h is allocated.
func NewRenderer(w, h int, enableDepth bool) *Renderer {
	r := &Renderer{
		Mode:       RenderSolidFlat,
		Depth:      enableDepth,
		ClearColor: RGB(0, 0, 0),
	}
	if enableDepth && w > 0 && h > 0 {
		r.depthBuf = make([]float32, w*h)
	}
	return r
}

func (r *Renderer) SetRenderMode(m RenderMode) { r.Mode = m }

// EnableDepth switches the opt-in depth buffer on or off.
func (r *Renderer) EnableDepth(on bool, w, h int) {
	r.Depth = on
	if !on {
		r.depthBuf = nil
		return
	}
	if w <= 0 || h <= 0 {
		r.depthBuf = nil
		return
	}
	if cap(r.depthBuf) < w*h {
		r.depthBuf = make([]float32, w*h)
	} else {
		r.depthBuf = r.depthBuf[:w*h]
	}
}

func (r *Renderer) clearDepth() {
	for i := range r.depthBuf {
		r.depthBuf[i] = 1e9
	}
}

// Render renders a scene into the target.
func (r *Renderer) Render(t Target, s *Scene) {
	if r == nil || t == nil || s == nil {
		return
	}
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return
	}
	t.Clear(r.ClearColor)

	if r.Depth {
		r.EnableDepth(true, w, h)
		r.clearDepth()
	}

	aspect := float32(1)
	if h != 0 {
		aspect = float32(w) / float32(h)
	}
	view := s.Camera.View()
	proj := s.Camera.Projection(aspect)

	s.eachMesh(func(m *Mesh) {
		if m == nil || !m.Enabled {
			return
		}
		r.renderMesh(t, w, h, proj, view, *m, s.Light)
	})
}

func (r *Renderer) renderMesh(t Target, w, h int, proj, view Mat4, m Mesh, light Light) {
	if len(m.Vertices) == 0 || len(m.Indices) < 3 {
		return
	}
	if m.Transform == (Mat4{}) {
		m.Transform = Mat4Identity()
	}

	mvp := Mat4Mul(proj, Mat4Mul(view, m.Transform))

	for i := 0; i+2 < len(m.Indices); i += 3 {
		i0 := int(m.Indices[i+0])
		i1 := int(m.Indices[i+1])
		i2 := int(m.Indices[i+2])
		if i0 < 0 || i1 < 0 || i2 < 0 || i0 >= len(m.Vertices) || i1 >= len(m.Vertices) || i2 >= len(m.Vertices) {
			continue
		}

		v0 := m.Vertices[i0]
		v1 := m.Vertices[i1]
		v2 := m.Vertices[i2]

		p0 := Mat4MulV4(mvp, Vec4{X: v0.Pos.X, Y: v0.Pos.Y, Z: v0.Pos.Z, W: 1})
		p1 := Mat4MulV4(mvp, Vec4{X: v1.Pos.X, Y: v1.Pos.Y, Z: v1.Pos.Z, W: 1})
		p2 := Mat4MulV4(mvp, Vec4{X: v2.Pos.X, Y: v2.Pos.Y, Z: v2.Pos.Z, W: 1})

		// Trivial clip: a zero w cannot be divided, drop the triangle.
		if p0.W == 0 || p1.W == 0 || p2.W == 0 {
			continue
		}

		ndc0, ok0 := clipToNDC(p0)
		ndc1, ok1 := clipToNDC(p1)
		ndc2, ok2 := clipToNDC(p2)
		if !ok0 || !ok1 || !ok2 {
			continue
		}

		x0, y0 := ndcToScreen(ndc0, w, h)
		x1, y1 := ndcToScreen(ndc1, w, h)
		x2, y2 := ndcToScreen(ndc2, w, h)

		base := m.Material.BaseColor
		if v0.Color != (Color{}) {
			base = v0.Color
		}
		if light.Mode == LightAmbientDirectional {
			n := triangleNormal(v0.Pos, v1.Pos, v2.Pos)
			base = base.MulScalar(lightIntensity(light, n))
		}
		if m.Material.Opacity != 0xFF {
			base = base.WithAlpha(m.Material.Opacity)
		}

		switch {
		case r.Mode == RenderWireframe:
			DrawLine(t, x0, y0, x1, y1, base)
			DrawLine(t, x1, y1, x2, y2, base)
			DrawLine(t, x2, y2, x0, y0, base)
		case r.Mode == RenderSolidTextured && m.Material.Texture != nil:
			if r.Depth {
				r.fillTexturedDepth(t, w, m.Material.Texture,
					x0, y0, v0.U, v0.V, ndc0.Z,
					x1, y1, v1.U, v1.V, ndc1.Z,
					x2, y2, v2.U, v2.V, ndc2.Z)
			} else {
				FillTriangleTextured(t, m.Material.Texture,
					x0, y0, v0.U, v0.V,
					x1, y1, v1.U, v1.V,
					x2, y2, v2.U, v2.V)
			}
		default:
			if r.Depth {
				r.fillFlatDepth(t, w,
					x0, y0, ndc0.Z,
					x1, y1, ndc1.Z,
					x2, y2, ndc2.Z, base)
			} else {
				FillTriangle(t, x0, y0, x1, y1, x2, y2, base)
			}
		}
	}
}

func triangleNormal(a, b, c Vec3) Vec3 {
	return Normalize(Cross(b.Sub(a), c.Sub(a)))
}

func lightIntensity(l Light, n Vec3) float32 {
	amb := Clamp01(l.Ambient)
	dir := Clamp01(l.DirAmount)
	ld := Normalize(l.Dir)
	if ld == (Vec3{}) {
		return amb
	}
	d := Dot(n, ld.Mul(-1))
	if d < 0 {
		d = 0
	}
	return Clamp01(amb + d*dir)
}

func (r *Renderer) depthTest(w int, x, y int, z float32) bool {
	if !r.Depth || r.depthBuf == nil {
		return true
	}
	if x < 0 || y < 0 || x >= w {
		return false
	}
	idx := y*w + x
	if idx < 0 || idx >= len(r.depthBuf) {
		return false
	}
	// NDC z is typically in [-1,1]. Map to [0,1].
	d := z*0.5 + 0.5
	if d < 0 {
		d = 0
	}
	if d > 1 {
		d = 1
	}
	if d >= r.depthBuf[idx] {
		return false
	}
	r.depthBuf[idx] = d
	return true
}

// fillFlatDepth is FillTriangle with NDC z carried through the scanline
// interpolation and checked per pixel against the depth buffer.
func (r *Renderer) fillFlatDepth(t Target, w int, x1, y1 int, z1 float32, x2, y2 int, z2 float32, x3, y3 int, z3 float32, c Color) {
	if y1 > y2 {
		x1, y1, z1, x2, y2, z2 = x2, y2, z2, x1, y1, z1
	}
	if y1 > y3 {
		x1, y1, z1, x3, y3, z3 = x3, y3, z3, x1, y1, z1
	}
	if y2 > y3 {
		x2, y2, z2, x3, y3, z3 = x3, y3, z3, x2, y2, z2
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
		za := z1 + (z3-z1)*alpha

		var xb int
		var zb float32
		if lower {
			xb = x2 + int(float32(x3-x2)*beta)
			zb = z2 + (z3-z2)*beta
		} else {
			xb = x1 + int(float32(x2-x1)*beta)
			zb = z1 + (z2-z1)*beta
		}

		if xa > xb {
			xa, xb = xb, xa
			za, zb = zb, za
		}
		for x := xa; x <= xb; x++ {
			var s float32
			if xb != xa {
				s = float32(x-xa) / float32(xb-xa)
			}
			if !r.depthTest(w, x, y, za+(zb-za)*s) {
				continue
			}
			t.SetPixel(x, y, c)
		}
	}
}

// fillTexturedDepth is FillTriangleTextured with the same per-pixel depth
// test as fillFlatDepth.
func (r *Renderer) fillTexturedDepth(t Target, w int, img *Image,
	x1, y1 int, u1, v1, z1 float32,
	x2, y2 int, u2, v2, z2 float32,
	x3, y3 int, u3, v3, z3 float32,
) {
	if img == nil {
		return
	}
	if y1 > y2 {
		x1, y1, u1, v1, z1, x2, y2, u2, v2, z2 = x2, y2, u2, v2, z2, x1, y1, u1, v1, z1
	}
	if y1 > y3 {
		x1, y1, u1, v1, z1, x3, y3, u3, v3, z3 = x3, y3, u3, v3, z3, x1, y1, u1, v1, z1
	}
	if y2 > y3 {
		x2, y2, u2, v2, z2, x3, y3, u3, v3, z3 = x3, y3, u3, v3, z3, x2, y2, u2, v2, z2
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
		za := z1 + (z3-z1)*alpha

		var xb int
		var ub, vb, zb float32
		if lower {
			xb = x2 + int(float32(x3-x2)*beta)
			ub = u2 + (u3-u2)*beta
			vb = v2 + (v3-v2)*beta
			zb = z2 + (z3-z2)*beta
		} else {
			xb = x1 + int(float32(x2-x1)*beta)
			ub = u1 + (u2-u1)*beta
			vb = v1 + (v2-v1)*beta
			zb = z1 + (z2-z1)*beta
		}

		if xa > xb {
			xa, xb = xb, xa
			ua, ub = ub, ua
			va, vb = vb, va
			za, zb = zb, za
		}
		for x := xa; x <= xb; x++ {
			var s float32
			if xb != xa {
				s = float32(x-xa) / float32(xb-xa)
			}
			if !r.depthTest(w, x, y, za+(zb-za)*s) {
				continue
			}
			u := ua + (ub-ua)*s
			v := va + (vb-va)*s
			t.SetPixel(x, y, img.Sample(u, v))
		}
	}
}
