package softgl

import "math"

// Renderer is a fixed-pipeline software renderer.
//
// Create it once and reuse it; scratch buffers grow to the largest mesh and
// target seen and are not released.
type Renderer struct {
	Mode  RenderMode
	Depth bool

	depthBuf []float32
	verts    []screenVertex
}

type screenVertex struct {
	x, y  int
	z     float32
	color Vec3
	ok    bool
}

// ndcLimit drops triangles whose vertices project far outside the viewport
// to keep screen coordinates inside int range.
const ndcLimit = 16

// NewRenderer creates a renderer with depth testing enabled.
func NewRenderer() *Renderer {
	return &Renderer{Mode: RenderSolid, Depth: true}
}

func (r *Renderer) SetRenderMode(m RenderMode) { r.Mode = m }

func (r *Renderer) ensureDepth(w, h int) {
	if !r.Depth || w <= 0 || h <= 0 {
		r.depthBuf = nil
		return
	}
	if cap(r.depthBuf) < w*h {
		r.depthBuf = make([]float32, w*h)
	} else {
		r.depthBuf = r.depthBuf[:w*h]
	}
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
	t.Clear(s.Background)
	if s.Camera == nil {
		return
	}
	r.ensureDepth(w, h)

	viewProj := Mat4Mul(s.Camera.Projection(), s.Camera.View())
	eye := s.Camera.WorldPosition()

	for _, m := range s.meshes {
		if m == nil || !m.Visible || m.Geometry == nil || m.Material == nil {
			continue
		}
		r.renderMesh(t, w, h, viewProj, eye, m, s)
	}
}

func (r *Renderer) renderMesh(t Target, w, h int, viewProj Mat4, eye Vec3, m *Mesh, s *Scene) {
	g := m.Geometry
	if len(g.Vertices) == 0 || len(g.Indices) < 3 {
		return
	}

	model := m.Model()
	normalMat := Mat4RotateEuler(m.Rotation.Value())
	mvp := Mat4Mul(viewProj, model)

	if cap(r.verts) < len(g.Vertices) {
		r.verts = make([]screenVertex, len(g.Vertices))
	}
	verts := r.verts[:len(g.Vertices)]

	for i, v := range g.Vertices {
		n := v.Normal
		if m.Material.NormalMap != nil {
			n = perturbNormal(n, v.UV, m.Material.NormalMap)
		}
		worldPos := model.MulPoint(v.Pos)
		worldN := Normalize(normalMat.MulDir(n))

		clip := Mat4MulV4(mvp, Vec4{X: v.Pos.X, Y: v.Pos.Y, Z: v.Pos.Z, W: 1})
		sv := screenVertex{color: shade(worldPos, worldN, eye, m.Material, s.lights, s.Ambient)}
		if clip.W > 1e-5 {
			inv := 1 / clip.W
			nx, ny, nz := clip.X*inv, clip.Y*inv, clip.Z*inv
			if absF32(nx) < ndcLimit && absF32(ny) < ndcLimit {
				sv.x, sv.y = ndcToScreen(nx, ny, w, h)
				sv.z = nz
				sv.ok = true
			}
		}
		verts[i] = sv
	}

	idx := g.Indices
	for i := 0; i+2 < len(idx); i += 3 {
		i0, i1, i2 := int(idx[i]), int(idx[i+1]), int(idx[i+2])
		if i0 >= len(verts) || i1 >= len(verts) || i2 >= len(verts) {
			continue
		}
		a, b, c := verts[i0], verts[i1], verts[i2]
		if !a.ok || !b.ok || !c.ok {
			continue
		}

		switch r.Mode {
		case RenderWireframe:
			col := colorFromVec(a.color)
			r.drawLine(t, a.x, a.y, b.x, b.y, col)
			r.drawLine(t, b.x, b.y, c.x, c.y, col)
			r.drawLine(t, c.x, c.y, a.x, a.y, col)
		default:
			r.fillTriangle(t, w, h, a, b, c)
		}
	}
}

// perturbNormal bends a geometric normal by a tangent-space sample.
func perturbNormal(n Vec3, uv Vec2, nm NormalSampler) Vec3 {
	tn, ok := nm.SampleNormal(uv.X, uv.Y)
	if !ok {
		return n
	}
	tangent := Cross(V3(0, 1, 0), n)
	if Dot(tangent, tangent) < 1e-8 {
		tangent = V3(1, 0, 0)
	}
	tangent = Normalize(tangent)
	bitangent := Cross(n, tangent)
	out := Normalize(tangent.Mul(tn.X).Add(bitangent.Mul(tn.Y)).Add(n.Mul(tn.Z)))
	if out == (Vec3{}) {
		return n
	}
	return out
}

// shade evaluates Lambert diffuse plus normalized Blinn-Phong specular.
//
// Roughness maps to the specular exponent; metalness moves energy from the
// diffuse lobe into a tinted specular one.
func shade(p, n, eye Vec3, mat *Material, lights []*PointLight, ambient float32) Vec3 {
	albedo := mat.Color.Vec()
	metal := Clamp01(mat.Metalness)
	rough := Clamp01(mat.Roughness)

	diffuse := albedo.Mul(1 - metal)
	f0 := V3(0.04, 0.04, 0.04).Mul(1 - metal).Add(albedo.Mul(metal))

	a := rough * rough
	if a < 0.02 {
		a = 0.02
	}
	shininess := clampF32(2/(a*a)-2, 1, 2048)
	specNorm := (shininess + 8) / (8 * math.Pi)

	view := Normalize(eye.Sub(p))
	out := albedo.Mul(ambient)
	for _, l := range lights {
		if l == nil || l.Intensity <= 0 {
			continue
		}
		toLight := l.Position.Sub(p)
		dist := Len(toLight)
		if dist == 0 {
			continue
		}
		ld := toLight.Mul(1 / dist)
		ndl := Dot(n, ld)
		if ndl <= 0 {
			continue
		}

		atten := float32(1)
		if l.Distance > 0 {
			atten = float32(math.Pow(float64(Clamp01(1-dist/l.Distance)), float64(l.Decay)))
		}
		radiance := l.Color.Vec().Mul(l.Intensity * atten)

		half := Normalize(ld.Add(view))
		ndh := Dot(n, half)
		if ndh < 0 {
			ndh = 0
		}
		spec := f0.Mul(specNorm * float32(math.Pow(float64(ndh), float64(shininess))))
		out = out.Add(diffuse.Add(spec).Mul(ndl).Hadamard(radiance))
	}
	return out
}

func ndcToScreen(x, y float32, w, h int) (int, int) {
	sx := (x*0.5 + 0.5) * float32(w-1)
	sy := (1 - (y*0.5 + 0.5)) * float32(h-1)
	return int(sx + 0.5), int(sy + 0.5)
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
	if d < 0 || d > 1 {
		return false
	}
	if d >= r.depthBuf[idx] {
		return false
	}
	r.depthBuf[idx] = d
	return true
}

func (r *Renderer) drawLine(t Target, x0, y0, x1, y1 int, c Color) {
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

// fillTriangle rasterizes with Gouraud-interpolated color. Both windings are
// drawn; the depth buffer resolves visibility.
func (r *Renderer) fillTriangle(t Target, w, h int, a, b, c screenVertex) {
	area := edgeFn(a.x, a.y, b.x, b.y, c.x, c.y)
	if area == 0 {
		return
	}
	if area < 0 {
		b, c = c, b
		area = -area
	}

	minX, maxX := min3(a.x, b.x, c.x), max3(a.x, b.x, c.x)
	minY, maxY := min3(a.y, b.y, c.y), max3(a.y, b.y, c.y)
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX >= w {
		maxX = w - 1
	}
	if maxY >= h {
		maxY = h - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	invArea := 1.0 / float32(area)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0 := edgeFn(b.x, b.y, c.x, c.y, x, y)
			w1 := edgeFn(c.x, c.y, a.x, a.y, x, y)
			w2 := edgeFn(a.x, a.y, b.x, b.y, x, y)
			if (w0 | w1 | w2) < 0 {
				continue
			}
			a0 := float32(w0) * invArea
			a1 := float32(w1) * invArea
			a2 := float32(w2) * invArea
			z := a0*a.z + a1*b.z + a2*c.z
			if !r.depthTest(w, x, y, z) {
				continue
			}
			col := a.color.Mul(a0).Add(b.color.Mul(a1)).Add(c.color.Mul(a2))
			t.SetPixel(x, y, colorFromVec(col))
		}
	}
}

func edgeFn(x0, y0, x1, y1, x, y int) int {
	return (x-x0)*(y1-y0) - (y-y0)*(x1-x0)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func absF32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func min3(a, b, c int) int {
	if a > b {
		a = b
	}
	if a > c {
		a = c
	}
	return a
}

func max3(a, b, c int) int {
	if a < b {
		a = b
	}
	if a < c {
		a = c
	}
	return a
}

func clampF32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
