package softgl

import "testing"

func TestGeometryCounts(t *testing.T) {
	cases := []struct {
		name      string
		g         *Geometry
		verts     int
		triangles int
	}{
		{"sphere", SphereGeometry(0.5, 8, 6), 9 * 7, 8*6*2 - 2*8},
		{"torus", TorusGeometry(1, 0.4, 16, 60), 17 * 61, 16 * 60 * 2},
		{"torusKnot", TorusKnotGeometry(0.8, 0.35, 100, 16, 2, 3), 101 * 17, 100 * 16 * 2},
		{"octahedron", OctahedronGeometry(0.3), 24, 8},
	}
	for _, tc := range cases {
		if got := len(tc.g.Vertices); got != tc.verts {
			t.Fatalf("%s: %d vertices, want %d", tc.name, got, tc.verts)
		}
		if got := len(tc.g.Indices) / 3; got != tc.triangles {
			t.Fatalf("%s: %d triangles, want %d", tc.name, got, tc.triangles)
		}
		for i, idx := range tc.g.Indices {
			if int(idx) >= len(tc.g.Vertices) {
				t.Fatalf("%s: index %d = %d out of range", tc.name, i, idx)
			}
		}
		for i, v := range tc.g.Vertices {
			l := Len(v.Normal)
			if l < 0.999 || l > 1.001 {
				t.Fatalf("%s: vertex %d normal length %v", tc.name, i, l)
			}
		}
	}
}

func TestSphereRadius(t *testing.T) {
	g := SphereGeometry(0.5, 16, 16)
	for i, v := range g.Vertices {
		if l := Len(v.Pos); l < 0.499 || l > 0.501 {
			t.Fatalf("vertex %d at distance %v", i, l)
		}
	}
}

func TestOctahedronNormalsPointOutward(t *testing.T) {
	g := OctahedronGeometry(1)
	for i, v := range g.Vertices {
		if Dot(v.Normal, v.Pos) <= 0 {
			t.Fatalf("vertex %d normal %+v points inward", i, v.Normal)
		}
	}
}
