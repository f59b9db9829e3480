package softgl

import "math"

const twoPi = 2 * math.Pi

// SphereGeometry builds a UV sphere.
func SphereGeometry(radius float32, widthSeg, heightSeg int) *Geometry {
	if widthSeg < 3 {
		widthSeg = 3
	}
	if heightSeg < 2 {
		heightSeg = 2
	}

	g := &Geometry{
		Vertices: make([]Vertex, 0, (widthSeg+1)*(heightSeg+1)),
		Indices:  make([]uint32, 0, widthSeg*heightSeg*6),
	}
	for iy := 0; iy <= heightSeg; iy++ {
		v := float64(iy) / float64(heightSeg)
		for ix := 0; ix <= widthSeg; ix++ {
			u := float64(ix) / float64(widthSeg)
			p := V3(
				float32(-math.Cos(u*twoPi)*math.Sin(v*math.Pi)),
				float32(math.Cos(v*math.Pi)),
				float32(math.Sin(u*twoPi)*math.Sin(v*math.Pi)),
			)
			g.Vertices = append(g.Vertices, Vertex{
				Pos:    p.Mul(radius),
				Normal: Normalize(p),
				UV:     Vec2{float32(u), float32(1 - v)},
			})
		}
	}

	row := uint32(widthSeg + 1)
	for iy := 0; iy < heightSeg; iy++ {
		for ix := 0; ix < widthSeg; ix++ {
			a := uint32(iy)*row + uint32(ix) + 1
			b := uint32(iy)*row + uint32(ix)
			c := uint32(iy+1)*row + uint32(ix)
			d := uint32(iy+1)*row + uint32(ix) + 1
			if iy != 0 {
				g.Indices = append(g.Indices, a, b, d)
			}
			if iy != heightSeg-1 {
				g.Indices = append(g.Indices, b, c, d)
			}
		}
	}
	return g
}

// TorusGeometry builds a torus lying in the XY plane.
func TorusGeometry(radius, tube float32, radialSeg, tubularSeg int) *Geometry {
	if radialSeg < 3 {
		radialSeg = 3
	}
	if tubularSeg < 3 {
		tubularSeg = 3
	}

	g := &Geometry{
		Vertices: make([]Vertex, 0, (radialSeg+1)*(tubularSeg+1)),
		Indices:  make([]uint32, 0, radialSeg*tubularSeg*6),
	}
	for j := 0; j <= radialSeg; j++ {
		v := float64(j) / float64(radialSeg) * twoPi
		for i := 0; i <= tubularSeg; i++ {
			u := float64(i) / float64(tubularSeg) * twoPi
			r := float64(radius) + float64(tube)*math.Cos(v)
			p := V3(float32(r*math.Cos(u)), float32(r*math.Sin(u)), float32(float64(tube)*math.Sin(v)))
			center := V3(float32(float64(radius)*math.Cos(u)), float32(float64(radius)*math.Sin(u)), 0)
			g.Vertices = append(g.Vertices, Vertex{
				Pos:    p,
				Normal: Normalize(p.Sub(center)),
				UV:     Vec2{float32(i) / float32(tubularSeg), float32(j) / float32(radialSeg)},
			})
		}
	}

	row := uint32(tubularSeg + 1)
	for j := 1; j <= radialSeg; j++ {
		for i := 1; i <= tubularSeg; i++ {
			a := row*uint32(j) + uint32(i) - 1
			b := row*uint32(j-1) + uint32(i) - 1
			c := row*uint32(j-1) + uint32(i)
			d := row*uint32(j) + uint32(i)
			g.Indices = append(g.Indices, a, b, d, b, c, d)
		}
	}
	return g
}

// TorusKnotGeometry builds a (p,q) torus knot tube.
func TorusKnotGeometry(radius, tube float32, tubularSeg, radialSeg, p, q int) *Geometry {
	if tubularSeg < 3 {
		tubularSeg = 3
	}
	if radialSeg < 3 {
		radialSeg = 3
	}
	if p == 0 {
		p = 2
	}
	if q == 0 {
		q = 3
	}

	curve := func(u float64) Vec3 {
		cu, su := math.Cos(u), math.Sin(u)
		quOverP := float64(q) / float64(p) * u
		cs := math.Cos(quOverP)
		r := float64(radius)
		return V3(
			float32(r*(2+cs)*0.5*cu),
			float32(r*(2+cs)*su*0.5),
			float32(r*math.Sin(quOverP)*0.5),
		)
	}

	g := &Geometry{
		Vertices: make([]Vertex, 0, (tubularSeg+1)*(radialSeg+1)),
		Indices:  make([]uint32, 0, tubularSeg*radialSeg*6),
	}
	for i := 0; i <= tubularSeg; i++ {
		u := float64(i) / float64(tubularSeg) * float64(p) * twoPi
		p1 := curve(u)
		p2 := curve(u + 0.01)
		t := p2.Sub(p1)
		n := p2.Add(p1)
		b := Normalize(Cross(t, n))
		n = Normalize(Cross(b, t))
		for j := 0; j <= radialSeg; j++ {
			v := float64(j) / float64(radialSeg) * twoPi
			cx := float32(-float64(tube) * math.Cos(v))
			cy := float32(float64(tube) * math.Sin(v))
			pos := p1.Add(n.Mul(cx)).Add(b.Mul(cy))
			g.Vertices = append(g.Vertices, Vertex{
				Pos:    pos,
				Normal: Normalize(pos.Sub(p1)),
				UV:     Vec2{float32(i) / float32(tubularSeg), float32(j) / float32(radialSeg)},
			})
		}
	}

	row := uint32(radialSeg + 1)
	for j := 1; j <= tubularSeg; j++ {
		for i := 1; i <= radialSeg; i++ {
			a := row*uint32(j-1) + uint32(i-1)
			b := row*uint32(j) + uint32(i-1)
			c := row*uint32(j) + uint32(i)
			d := row*uint32(j-1) + uint32(i)
			g.Indices = append(g.Indices, a, b, d, b, c, d)
		}
	}
	return g
}

// OctahedronGeometry builds a flat-shaded octahedron (no subdivision).
func OctahedronGeometry(radius float32) *Geometry {
	corners := [6]Vec3{
		{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1},
	}
	faces := [8][3]int{
		{0, 2, 4}, {0, 4, 3}, {0, 3, 5}, {0, 5, 2},
		{1, 2, 5}, {1, 5, 3}, {1, 3, 4}, {1, 4, 2},
	}

	g := &Geometry{
		Vertices: make([]Vertex, 0, len(faces)*3),
		Indices:  make([]uint32, 0, len(faces)*3),
	}
	for _, f := range faces {
		a, b, c := corners[f[0]], corners[f[1]], corners[f[2]]
		n := Normalize(Cross(b.Sub(a), c.Sub(a)))
		for _, p := range [3]Vec3{a, b, c} {
			g.Indices = append(g.Indices, uint32(len(g.Vertices)))
			g.Vertices = append(g.Vertices, Vertex{Pos: p.Mul(radius), Normal: n, UV: sphericalUV(p)})
		}
	}
	return g
}

func sphericalUV(p Vec3) Vec2 {
	u := math.Atan2(float64(p.Z), -float64(p.X))/twoPi + 0.5
	v := math.Atan2(-float64(p.Y), math.Sqrt(float64(p.X*p.X+p.Z*p.Z)))/math.Pi + 0.5
	return Vec2{float32(u), float32(v)}
}
