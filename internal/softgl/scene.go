package softgl

// NormalSampler supplies tangent-space normals for a surface (a normal map).
//
// ok is false while the backing image is not available; callers then keep the
// geometric normal.
type NormalSampler interface {
	SampleNormal(u, v float32) (n Vec3, ok bool)
}

// Material is a minimal physically-flavoured surface description.
//
// Metalness and Roughness are read every frame and clamped to 0..1 at shading
// time, so they may be bound directly to UI sliders.
type Material struct {
	Color     Color
	Metalness float32
	Roughness float32
	NormalMap NormalSampler
}

// PointLight emits from a position in all directions.
//
// Distance 0 means no falloff. Otherwise the contribution fades to zero at
// Distance with the given Decay exponent.
type PointLight struct {
	Position  Vec3
	Color     Color
	Intensity float32
	Distance  float32
	Decay     float32
}

// NewPointLight returns a light without falloff.
func NewPointLight(c Color, intensity float32) *PointLight {
	return &PointLight{Color: c, Intensity: intensity, Decay: 2}
}

// Group is a transform-only node. The camera is parented to one (the rig) so
// parallax can move the rig while scroll moves the camera inside it.
type Group struct {
	Position Vec3
}

// Camera is a perspective camera looking down its local -Z axis.
type Camera struct {
	FOVDeg float32
	Aspect float32
	Near   float32
	Far    float32

	// Position is local to Parent (world space when Parent is nil).
	Position Vec3
	Parent   *Group
}

// NewPerspectiveCamera mirrors the usual (fov, aspect, near, far) constructor.
func NewPerspectiveCamera(fovDeg, aspect, near, far float32) *Camera {
	return &Camera{FOVDeg: fovDeg, Aspect: aspect, Near: near, Far: far}
}

// WorldPosition resolves the camera position through its parent group.
func (c *Camera) WorldPosition() Vec3 {
	if c.Parent == nil {
		return c.Position
	}
	return c.Parent.Position.Add(c.Position)
}

// View returns the camera view matrix.
func (c *Camera) View() Mat4 {
	eye := c.WorldPosition()
	return Mat4LookAt(eye, eye.Add(V3(0, 0, -1)), V3(0, 1, 0))
}

// Projection returns the projection matrix.
func (c *Camera) Projection() Mat4 {
	fov := c.FOVDeg
	if fov <= 0 {
		fov = 50
	}
	near, far := c.Near, c.Far
	if near <= 0 {
		near = 0.1
	}
	if far <= near {
		far = near + 100
	}
	return Mat4Perspective(degToRad(fov), c.Aspect, near, far)
}

// SetAspect updates the aspect ratio after a viewport change.
func (c *Camera) SetAspect(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	c.Aspect = float32(w) / float32(h)
}

// Rotation is an Euler XYZ rotation stored as two independently written parts.
//
// Base is accumulated by per-frame drift; Transient is owned by tweens. The
// effective angle is always their sum.
type Rotation struct {
	Base      Vec3
	Transient Vec3
}

// Value returns Base + Transient.
func (r Rotation) Value() Vec3 { return r.Base.Add(r.Transient) }

// Vertex is a mesh vertex.
type Vertex struct {
	Pos    Vec3
	Normal Vec3
	UV     Vec2
}

// Geometry is an indexed triangle list.
type Geometry struct {
	Vertices []Vertex
	Indices  []uint32
}

// Mesh is a geometry placed in the scene.
type Mesh struct {
	Name    string
	Visible bool

	Geometry *Geometry
	Material *Material

	Position Vec3
	Scale    Vec3
	Rotation Rotation
}

// NewMesh returns a visible mesh at the origin with unit scale.
func NewMesh(name string, g *Geometry, m *Material) *Mesh {
	return &Mesh{
		Name:     name,
		Visible:  true,
		Geometry: g,
		Material: m,
		Scale:    V3(1, 1, 1),
	}
}

// SetScale sets a uniform scale.
func (m *Mesh) SetScale(s float32) { m.Scale = V3(s, s, s) }

// Model returns T·R·S for the current state.
func (m *Mesh) Model() Mat4 {
	return Mat4Mul(Mat4Translate(m.Position), Mat4Mul(Mat4RotateEuler(m.Rotation.Value()), Mat4Scale(m.Scale)))
}

// Scene is a collection of objects to render.
type Scene struct {
	Background Color
	Ambient    float32

	Camera *Camera

	meshes []*Mesh
	lights []*PointLight
}

// NewScene returns an empty scene with a black background.
func NewScene() *Scene {
	return &Scene{
		Background: RGB(0, 0, 0),
		Ambient:    0.02,
	}
}

// Add appends meshes to the scene and returns the index of the first one.
func (s *Scene) Add(ms ...*Mesh) int {
	first := len(s.meshes)
	for _, m := range ms {
		if m == nil {
			continue
		}
		s.meshes = append(s.meshes, m)
	}
	return first
}

// AddLight appends a point light.
func (s *Scene) AddLight(l *PointLight) {
	if l != nil {
		s.lights = append(s.lights, l)
	}
}

// Meshes returns the meshes in insertion order.
func (s *Scene) Meshes() []*Mesh { return s.meshes }

// Lights returns the lights in insertion order.
func (s *Scene) Lights() []*PointLight { return s.lights }
