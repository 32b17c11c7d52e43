// Package pandagl provides a minimal, predictable software rendering engine.
//
// PandaGL draws entirely on the CPU: 2D primitives (lines, circles,
// triangles), alpha-blended compositing into a packed ARGB pixel buffer, and
// a fixed 3D pipeline that projects meshes through model/view/projection
// matrices and rasterizes flat-colored or texture-mapped triangles.
//
// Pipeline (fixed):
//
//	Scene → Transform → Projection → Clipping → Rasterization → Frame output.
//
// There is no depth buffer by default: triangles land in the order they are
// submitted (painter's algorithm), and correct occlusion is the caller's
// responsibility. A depth buffer can be enabled per renderer as an explicit
// opt-in.
//
// The renderer draws into a caller-provided Target. Buffer is the canonical
// Target and doubles as the compositing surface handed to a window backend
// for presentation. All draw calls are synchronous and single-threaded; a
// Buffer must not be written from more than one goroutine at a time.
package pandagl
