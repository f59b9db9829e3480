// Package softgl is a small software 3D renderer for the scroll scene.
//
// It draws triangle meshes lit by point lights into a caller-provided Target.
// There is no GPU abstraction: every frame is rasterized on the CPU.
//
// Pipeline (fixed):
//
//	Scene → Vertex lighting → Projection → Clipping → Rasterization → Target.
//
// Meshes carry a position, a uniform-or-not scale and a two-part rotation
// (Base + Transient) so that continuous drift and one-shot tweens can write
// the same logical angle without overwriting each other.
//
// All math is float32. Matrices are column-major in the OpenGL layout.
package softgl
