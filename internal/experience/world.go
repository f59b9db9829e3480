package experience

import "scrollscene/internal/softgl"

// World is the built scene plus handles to the parts the loop drives.
type World struct {
	Scene  *softgl.Scene
	Rig    *softgl.Group
	Camera *softgl.Camera

	// Materials holds one material per mesh, in Sphere, Torus, Knot,
	// Octahedron order.
	Materials []*softgl.Material

	Sphere     *softgl.Mesh
	Torus      *softgl.Mesh
	Knot       *softgl.Mesh
	Octahedron *softgl.Mesh

	// SectionMeshes are spun when their section becomes current, in page
	// order.
	SectionMeshes []*softgl.Mesh

	MainLight *softgl.PointLight
	FillLight *softgl.PointLight

	drift []drift
}

type drift struct {
	mesh *softgl.Mesh
	vel  softgl.Vec3 // rad/s
}

// sectionSpacing is the world-space gap between sections along Y.
const sectionSpacing = 2

// Build creates the scene: a sphere and torus beside the first section, a
// torus knot and an octahedron further down, two point lights and a camera
// inside a rig group. Each mesh gets its own material seeded from p.
func Build(p *Params, normalMap softgl.NormalSampler) *World {
	w := &World{Scene: softgl.NewScene()}

	newMaterial := func() *softgl.Material {
		m := &softgl.Material{NormalMap: normalMap}
		if p != nil {
			m.Color = p.MaterialColor
			m.Metalness = clamp32(p.Metalness, 0, 1)
			m.Roughness = clamp32(p.Roughness, 0, 1)
		}
		w.Materials = append(w.Materials, m)
		return m
	}

	w.Sphere = softgl.NewMesh("sphere", softgl.SphereGeometry(0.5, 32, 32), newMaterial())
	w.Sphere.SetScale(0.5)
	w.Sphere.Position = softgl.V3(2, 0, 0)

	w.Torus = softgl.NewMesh("torus", softgl.TorusGeometry(1, 0.4, 16, 60), newMaterial())
	w.Torus.SetScale(0.7)
	w.Torus.Position = softgl.V3(2, 0, 0)

	w.Knot = softgl.NewMesh("torusKnot", softgl.TorusKnotGeometry(0.8, 0.35, 100, 16, 2, 3), newMaterial())
	w.Knot.SetScale(0.4)
	w.Knot.Position = softgl.V3(-2, -2.2*sectionSpacing, 0)

	w.Octahedron = softgl.NewMesh("octahedron", softgl.OctahedronGeometry(0.3), newMaterial())
	w.Octahedron.SetScale(0.7)
	w.Octahedron.Position = softgl.V3(-2, -5*sectionSpacing, 0)

	w.Scene.Add(w.Sphere, w.Torus, w.Knot, w.Octahedron)
	w.SectionMeshes = []*softgl.Mesh{w.Torus, w.Knot, w.Octahedron}

	w.drift = []drift{
		{w.Sphere, softgl.V3(0, 0.5, 0)},
		{w.Torus, softgl.V3(0, 0, -0.3)},
		{w.Knot, softgl.V3(0, 0, -0.3)},
		{w.Octahedron, softgl.V3(0, 0, -0.2)},
	}

	w.MainLight = softgl.NewPointLight(softgl.Hex(0xffffff), 10)
	w.FillLight = softgl.NewPointLight(softgl.Hex(0x782097), 10)
	w.Scene.AddLight(w.MainLight)
	w.Scene.AddLight(w.FillLight)

	w.Rig = &softgl.Group{}
	w.Camera = softgl.NewPerspectiveCamera(35, 1, 0.1, 100)
	w.Camera.Position = softgl.V3(0, 0, 5)
	w.Camera.Parent = w.Rig
	w.Scene.Camera = w.Camera

	w.Apply(p)
	return w
}

// Apply copies tunable parameters into the scene. The color goes to every
// material; metalness and roughness only to the sphere's, the other meshes
// keep the values they were built with. Metalness above 1 is clamped.
func (w *World) Apply(p *Params) {
	if p == nil {
		return
	}
	for _, m := range w.Materials {
		m.Color = p.MaterialColor
	}
	w.Sphere.Material.Metalness = clamp32(p.Metalness, 0, 1)
	w.Sphere.Material.Roughness = clamp32(p.Roughness, 0, 1)

	applyLight(w.MainLight, p.MainLight)
	applyLight(w.FillLight, p.FillLight)
}

func applyLight(l *softgl.PointLight, p LightParams) {
	l.Position = softgl.V3(p.X, p.Y, p.Z)
	l.Intensity = p.Intensity
	l.Color = p.Color
}

// Drift advances every mesh's base rotation by its angular velocity.
func (w *World) Drift(dt float64) {
	if !(dt > 0) {
		return
	}
	d := float32(dt)
	for _, m := range w.drift {
		m.mesh.Rotation.Base = m.mesh.Rotation.Base.Add(m.vel.Mul(d))
	}
}

func clamp32(v, lo, hi float32) float32 {
	if v < lo || v != v {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
