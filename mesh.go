package pandagl

import "math"

// NewCubeMesh builds an axis-aligned cube with the given edge length,
// centered on the origin. Each face carries full 0..1 texture coordinates
// and its entry from faces (+X, -X, +Y, -Y, +Z, -Z order); a zero face
// color defers to the mesh material.
func NewCubeMesh(size float32, faces [6]Color) Mesh {
	h := size / 2
	var m Mesh

	quad := func(a, b, c, d Vec3, col Color) {
		base := uint16(len(m.Vertices))
		m.Vertices = append(m.Vertices,
			Vertex{Pos: a, U: 0, V: 1, Color: col},
			Vertex{Pos: b, U: 1, V: 1, Color: col},
			Vertex{Pos: c, U: 1, V: 0, Color: col},
			Vertex{Pos: d, U: 0, V: 0, Color: col},
		)
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}

	// Corners run counter-clockwise seen from outside each face,
	// starting at the face's lower-left.
	quad(V3(h, -h, h), V3(h, -h, -h), V3(h, h, -h), V3(h, h, h), faces[0])
	quad(V3(-h, -h, -h), V3(-h, -h, h), V3(-h, h, h), V3(-h, h, -h), faces[1])
	quad(V3(-h, h, h), V3(h, h, h), V3(h, h, -h), V3(-h, h, -h), faces[2])
	quad(V3(-h, -h, -h), V3(h, -h, -h), V3(h, -h, h), V3(-h, -h, h), faces[3])
	quad(V3(-h, -h, h), V3(h, -h, h), V3(h, h, h), V3(-h, h, h), faces[4])
	quad(V3(h, -h, -h), V3(-h, -h, -h), V3(-h, h, -h), V3(h, h, -h), faces[5])

	return m
}

// NewTorusMesh builds a torus around the Y axis with segU segments along
// the ring and segV around the tube. Texture coordinates wrap once per
// direction.
func NewTorusMesh(major, minor float32, segU, segV int) Mesh {
	if segU < 3 {
		segU = 3
	}
	if segV < 3 {
		segV = 3
	}

	verts := make([]Vertex, 0, segU*segV)
	indices := make([]uint16, 0, segU*segV*6)

	twoPi := float32(2 * math.Pi)
	for u := 0; u < segU; u++ {
		theta := twoPi * float32(u) / float32(segU)
		ct := float32(math.Cos(float64(theta)))
		st := float32(math.Sin(float64(theta)))
		for v := 0; v < segV; v++ {
			phi := twoPi * float32(v) / float32(segV)
			cp := float32(math.Cos(float64(phi)))
			sp := float32(math.Sin(float64(phi)))

			r := major + minor*cp
			verts = append(verts, Vertex{
				Pos: V3(r*ct, minor*sp, r*st),
				U:   float32(u) / float32(segU),
				V:   float32(v) / float32(segV),
			})
		}
	}

	idx := func(u, v int) uint16 {
		uu := u % segU
		vv := v % segV
		return uint16(uu*segV + vv)
	}
	for u := 0; u < segU; u++ {
		for v := 0; v < segV; v++ {
			a := idx(u, v)
			b := idx(u+1, v)
			c := idx(u+1, v+1)
			d := idx(u, v+1)
			indices = append(indices, a, b, c, a, c, d)
		}
	}

	return Mesh{Vertices: verts, Indices: indices}
}
