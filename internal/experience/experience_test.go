package experience

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"scrollscene/hal"
	"scrollscene/internal/softgl"
)

type fakeClock struct{ t float64 }

func (c *fakeClock) Elapsed() float64 { return c.t }

type fakeRenderer struct {
	calls int
	err   error
}

func (r *fakeRenderer) Render(*softgl.Scene) error {
	r.calls++
	return r.err
}

type lineLog struct{ lines []string }

func (l *lineLog) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *lineLog) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

func newTestLoop(t *testing.T) (*Loop, *fakeClock, *fakeRenderer) {
	t.Helper()
	cfg := DefaultConfig()
	clock := &fakeClock{}
	r := &fakeRenderer{}
	w := Build(&cfg.Params, nil)
	return NewLoop(cfg, w, clock, r, nil), clock, r
}

func near(a, b, eps float64) bool { return math.Abs(a-b) <= eps }

func TestParallaxZeroDtIsNoop(t *testing.T) {
	p := NewParallaxController(0.3, 5)
	for _, dt := range []float64{0, -0.1, math.NaN(), math.Inf(1)} {
		d := p.Update(1, dt, Vec2{X: 0.5, Y: 0.5})
		if d != (Vec2{}) {
			t.Fatalf("dt=%v: delta = %+v, want zero", dt, d)
		}
		if p.Offset() != (Vec2{}) {
			t.Fatalf("dt=%v: offset moved to %+v", dt, p.Offset())
		}
	}
}

func TestParallaxConverges(t *testing.T) {
	p := NewParallaxController(0.3, 5)
	cursor := Vec2{X: 0.5, Y: -0.5}
	want := p.Target(cursor)
	if want.X != 0.15 || want.Y != 0.15 {
		t.Fatalf("target = %+v, want {0.15 0.15}", want)
	}

	prevErr := math.Inf(1)
	for i := 0; i < 600; i++ {
		p.Update(float64(i)/60, 1.0/60, cursor)
		e := math.Abs(want.X-p.Offset().X) + math.Abs(want.Y-p.Offset().Y)
		if e > prevErr {
			t.Fatalf("step %d: error grew %v -> %v", i, prevErr, e)
		}
		prevErr = e
	}
	if !near(p.Offset().X, want.X, 1e-6) || !near(p.Offset().Y, want.Y, 1e-6) {
		t.Fatalf("offset = %+v, want %+v", p.Offset(), want)
	}
}

func TestParallaxLargeDtDoesNotOvershoot(t *testing.T) {
	p := NewParallaxController(0.3, 5)
	p.Update(0, 10, Vec2{X: 0.5})
	if p.Offset().X != 0.15 {
		t.Fatalf("offset.X = %v, want 0.15", p.Offset().X)
	}
}

func TestSectionTrackerSequence(t *testing.T) {
	var s SectionTracker
	var got []int
	for _, sec := range []float64{0, 1, 2, 1} {
		if changed, idx := s.OnScroll(sec*800, 800); changed {
			got = append(got, idx)
		}
	}
	want := []int{1, 2, 1}
	if len(got) != len(want) {
		t.Fatalf("changes = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("changes = %v, want %v", got, want)
		}
	}
}

func TestSectionTrackerIdempotent(t *testing.T) {
	var s SectionTracker
	if changed, idx := s.OnScroll(1700, 800); !changed || idx != 2 {
		t.Fatalf("first call = (%v, %d), want (true, 2)", changed, idx)
	}
	for i := 0; i < 5; i++ {
		if changed, _ := s.OnScroll(1700, 800); changed {
			t.Fatalf("repeat %d reported a change", i)
		}
	}
	if s.Current() != 2 {
		t.Fatalf("current = %d, want 2", s.Current())
	}
}

func TestSectionTrackerDegenerateViewport(t *testing.T) {
	var s SectionTracker
	for _, vp := range []float64{0, -1, math.NaN()} {
		if changed, _ := s.OnScroll(5000, vp); changed {
			t.Fatalf("viewport %v reported a change", vp)
		}
	}
}

func TestMeshIndexWraps(t *testing.T) {
	tests := []struct {
		section, n, want int
	}{
		{0, 3, 0},
		{2, 3, 2},
		{3, 3, 0},
		{7, 3, 1},
		{-1, 3, 2},
		{4, 0, -1},
	}
	for _, tt := range tests {
		if got := MeshIndex(tt.section, tt.n); got != tt.want {
			t.Fatalf("MeshIndex(%d, %d) = %d, want %d", tt.section, tt.n, got, tt.want)
		}
	}
}

func TestPageClampsToSections(t *testing.T) {
	p := Page{Sections: 3, WheelStep: 100}
	if _, moved := p.Wheel(1); moved {
		t.Fatalf("wheel moved before the viewport is known")
	}
	p.Resize(800)
	p.Wheel(-3)
	if p.Offset() != 0 {
		t.Fatalf("offset = %v, want 0", p.Offset())
	}
	p.Wheel(100)
	if p.Offset() != 1600 {
		t.Fatalf("offset = %v, want 1600", p.Offset())
	}
	if off, moved := p.Resize(400); !moved || off != 800 {
		t.Fatalf("resize = (%v, %v), want (800, true)", off, moved)
	}
}

func TestDriftAccumulates(t *testing.T) {
	l, clock, r := newTestLoop(t)
	w := l.World()
	for i := 1; i <= 120; i++ {
		clock.t = float64(i) / 60
		if err := l.Tick(); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
	}
	if r.calls != 120 {
		t.Fatalf("render calls = %d, want 120", r.calls)
	}
	if got := w.Sphere.Rotation.Base.Y; !near(float64(got), 1.0, 1e-4) {
		t.Fatalf("sphere base Y = %v, want 1.0", got)
	}
	if got := w.Octahedron.Rotation.Base.Z; !near(float64(got), -0.4, 1e-4) {
		t.Fatalf("octahedron base Z = %v, want -0.4", got)
	}
	if w.Torus.Rotation.Transient != (softgl.Vec3{}) {
		t.Fatalf("drift wrote transient rotation: %+v", w.Torus.Rotation.Transient)
	}
}

func TestDriftUnequalSteps(t *testing.T) {
	l, clock, _ := newTestLoop(t)
	w := l.World()
	for _, at := range []float64{0.01, 0.06} {
		clock.t = at
		if err := l.Tick(); err != nil {
			t.Fatal(err)
		}
	}
	// d1 = 0.01, d2 = 0.05
	if got := w.Sphere.Rotation.Base.Y; !near(float64(got), 0.5*0.06, 1e-6) {
		t.Fatalf("sphere base Y = %v, want %v", got, 0.5*0.06)
	}
	if got := w.Torus.Rotation.Base.Z; !near(float64(got), -0.3*0.06, 1e-6) {
		t.Fatalf("torus base Z = %v, want %v", got, -0.3*0.06)
	}
}

func TestTickWithStalledClock(t *testing.T) {
	l, clock, _ := newTestLoop(t)
	clock.t = 1
	l.Tick()
	before := l.World().Sphere.Rotation.Base
	l.Dispatch(hal.ResizeEvent{W: 800, H: 600})
	l.Dispatch(hal.PointerEvent{X: 800, Y: 0})
	if err := l.Tick(); err != nil {
		t.Fatal(err)
	}
	if l.World().Sphere.Rotation.Base != before {
		t.Fatalf("rotation moved with dt=0")
	}
	if l.Parallax().Offset() != (Vec2{}) {
		t.Fatalf("rig moved with dt=0: %+v", l.Parallax().Offset())
	}
}

func TestScrollAtTopStartsNothing(t *testing.T) {
	l, clock, _ := newTestLoop(t)
	l.Dispatch(hal.ResizeEvent{W: 1200, H: 800})
	l.Dispatch(hal.ScrollEvent{Offset: 0})
	clock.t = 1.0 / 60
	l.Tick()

	if l.Section() != 0 || l.Tweens() != 0 {
		t.Fatalf("section %d, tweens %d; want 0, 0", l.Section(), l.Tweens())
	}
	if y := l.World().Camera.Position.Y; y != 0 {
		t.Fatalf("camera Y = %v, want 0", y)
	}
}

func TestScrollIntoSecondSectionSpinsKnot(t *testing.T) {
	l, clock, _ := newTestLoop(t)
	log := &lineLog{}
	l.log = log
	w := l.World()

	l.Dispatch(hal.ResizeEvent{W: 1200, H: 800})
	l.Dispatch(hal.ScrollEvent{Offset: 850})
	if l.Section() != 1 {
		t.Fatalf("section = %d, want 1", l.Section())
	}
	if l.Tweens() != 1 {
		t.Fatalf("tweens = %d, want 1", l.Tweens())
	}

	for i := 1; i <= 200; i++ {
		clock.t = float64(i) / 60
		l.Tick()
	}
	if y := w.Camera.Position.Y; !near(float64(y), -8.5, 1e-5) {
		t.Fatalf("camera Y = %v, want -8.5", y)
	}
	tr := w.Knot.Rotation.Transient
	if !near(float64(tr.X), 3, 1e-4) || !near(float64(tr.Y), 3, 1e-4) {
		t.Fatalf("knot transient = %+v, want {3 3 0}", tr)
	}
	if w.Torus.Rotation.Transient != (softgl.Vec3{}) || w.Octahedron.Rotation.Transient != (softgl.Vec3{}) {
		t.Fatalf("other meshes spun")
	}
	if l.Tweens() != 0 {
		t.Fatalf("tweens = %d after 3s, want 0", l.Tweens())
	}
	if len(log.lines) != 1 || !strings.Contains(log.lines[0], "torusKnot") {
		t.Fatalf("log = %q", log.lines)
	}
}

func TestOverlappingSpinsSuperimpose(t *testing.T) {
	l, clock, _ := newTestLoop(t)
	w := l.World()
	l.Dispatch(hal.ResizeEvent{W: 800, H: 800})

	l.Dispatch(hal.ScrollEvent{Offset: 800})
	clock.t = 0.5
	l.Tick()
	l.Dispatch(hal.ScrollEvent{Offset: 0})
	l.Dispatch(hal.ScrollEvent{Offset: 800})
	for i := 1; i <= 300; i++ {
		clock.t = 0.5 + float64(i)/60
		l.Tick()
	}
	if got := w.Knot.Rotation.Transient.X; !near(float64(got), 6, 1e-4) {
		t.Fatalf("knot transient X = %v, want 6", got)
	}
	if got := w.Torus.Rotation.Transient.Y; !near(float64(got), 3, 1e-4) {
		t.Fatalf("torus transient Y = %v, want 3", got)
	}
}

func TestSectionBeyondMeshesWraps(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sections = 5
	w := Build(&cfg.Params, nil)
	l := NewLoop(cfg, w, &fakeClock{}, &fakeRenderer{}, nil)
	l.Dispatch(hal.ResizeEvent{W: 100, H: 100})
	l.Dispatch(hal.ScrollEvent{Offset: 400})
	if l.Section() != 4 {
		t.Fatalf("section = %d, want 4", l.Section())
	}
	l.tweens.Step(10)
	if got := w.Knot.Rotation.Transient.X; !near(float64(got), 3, 1e-5) {
		t.Fatalf("section 4 should spin mesh 1, knot X = %v", got)
	}
}

func TestWheelScrollsPage(t *testing.T) {
	l, _, _ := newTestLoop(t)
	l.Dispatch(hal.ResizeEvent{W: 800, H: 600})
	for i := 0; i < 100; i++ {
		l.Dispatch(hal.WheelEvent{DY: 1})
	}
	if got := l.Input().ScrollOffset; got != 1200 {
		t.Fatalf("scroll = %v, want 1200", got)
	}
	if l.Section() != 2 {
		t.Fatalf("section = %d, want 2", l.Section())
	}
}

func TestPointerNormalized(t *testing.T) {
	l, _, _ := newTestLoop(t)
	l.Dispatch(hal.PointerEvent{X: 10, Y: 10})
	if c := l.Input().Cursor(); c != (Vec2{}) {
		t.Fatalf("cursor before resize = %+v", c)
	}
	l.Dispatch(hal.ResizeEvent{W: 800, H: 400})
	l.Dispatch(hal.PointerEvent{X: 600, Y: 0})
	if c := l.Input().Cursor(); c.X != 0.25 || c.Y != -0.5 {
		t.Fatalf("cursor = %+v, want {0.25 -0.5}", c)
	}
	if a := l.World().Camera.Aspect; a != 2 {
		t.Fatalf("aspect = %v, want 2", a)
	}
}

func TestResizeRenormalizesCursor(t *testing.T) {
	l, _, _ := newTestLoop(t)
	l.Dispatch(hal.ResizeEvent{W: 800, H: 400})
	l.Dispatch(hal.PointerEvent{X: 600, Y: 300})
	l.Dispatch(hal.ResizeEvent{W: 1200, H: 600})
	if c := l.Input().Cursor(); c.X != 0 || c.Y != 0 {
		t.Fatalf("cursor after resize = %+v, want {0 0}", c)
	}
}

func TestExternalScrollClamped(t *testing.T) {
	l, clock, _ := newTestLoop(t)
	l.Dispatch(hal.ResizeEvent{W: 800, H: 800})
	l.Dispatch(hal.ScrollEvent{Offset: 99999})
	if got := l.Input().ScrollOffset; got != 1600 {
		t.Fatalf("scroll = %v, want 1600", got)
	}
	if l.Section() != 2 {
		t.Fatalf("section = %d, want 2", l.Section())
	}
	clock.t = 0.1
	l.Tick()
	if y := l.World().Camera.Position.Y; !near(float64(y), -16, 1e-5) {
		t.Fatalf("camera Y = %v, want -16", y)
	}

	l.Dispatch(hal.ScrollEvent{Offset: -50})
	if got := l.Input().ScrollOffset; got != 0 {
		t.Fatalf("scroll = %v, want 0", got)
	}
}

func TestKeyHook(t *testing.T) {
	l, _, _ := newTestLoop(t)
	var got []rune
	l.OnKey = func(e hal.KeyEvent) bool {
		got = append(got, e.Rune)
		return true
	}
	l.Dispatch(hal.KeyEvent{Press: true, Rune: 'w'})
	if len(got) != 1 || got[0] != 'w' {
		t.Fatalf("keys = %q", got)
	}
}

func TestRenderErrorPropagates(t *testing.T) {
	l, _, r := newTestLoop(t)
	r.err = errors.New("present failed")
	if err := l.Tick(); !errors.Is(err, r.err) {
		t.Fatalf("err = %v, want %v", err, r.err)
	}
}

func TestApplyClampsMetalness(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.Metalness = 2
	w := Build(&cfg.Params, nil)
	for _, m := range w.Materials {
		if m.Metalness != 1 {
			t.Fatalf("metalness = %v, want 1", m.Metalness)
		}
	}
	if w.MainLight.Position != softgl.V3(2, 6.31, 4) {
		t.Fatalf("main light at %+v", w.MainLight.Position)
	}
}

func TestSphereMaterialIsSeparate(t *testing.T) {
	cfg := DefaultConfig()
	w := Build(&cfg.Params, nil)
	if len(w.Materials) != 4 {
		t.Fatalf("materials = %d, want 4", len(w.Materials))
	}
	for i, m := range []*softgl.Mesh{w.Sphere, w.Torus, w.Knot, w.Octahedron} {
		if m.Material != w.Materials[i] {
			t.Fatalf("%s does not own material %d", m.Name, i)
		}
	}

	cfg.Params.Metalness = 0.25
	cfg.Params.Roughness = 0.1
	cfg.Params.MaterialColor = softgl.Hex(0xffeded)
	w.Apply(&cfg.Params)

	if w.Sphere.Material.Metalness != 0.25 || w.Sphere.Material.Roughness != 0.1 {
		t.Fatalf("sphere material = %+v", *w.Sphere.Material)
	}
	for _, m := range []*softgl.Mesh{w.Torus, w.Knot, w.Octahedron} {
		if m.Material.Metalness != 1 || m.Material.Roughness != 0.8 {
			t.Fatalf("%s material changed: metalness %v roughness %v", m.Name, m.Material.Metalness, m.Material.Roughness)
		}
		if m.Material.Color != softgl.Hex(0xffeded) {
			t.Fatalf("%s color = %v, want #ffeded", m.Name, m.Material.Color)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.json")
	body := `{"sensitivity": 0.5, "params": {"materialColor": "#ff0000", "mainLight": {"x": 1, "intensity": 3, "color": "#ffffff"}}}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Sensitivity != 0.5 || cfg.Smoothing != 5 {
		t.Fatalf("sensitivity %v smoothing %v", cfg.Sensitivity, cfg.Smoothing)
	}
	if cfg.Params.MaterialColor != softgl.Hex(0xff0000) {
		t.Fatalf("color = %v", cfg.Params.MaterialColor)
	}
	if cfg.Params.MainLight.X != 1 || cfg.Params.MainLight.Intensity != 3 {
		t.Fatalf("main light = %+v", cfg.Params.MainLight)
	}

	if err := os.WriteFile(path, []byte(`{"sections": 0}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("sections=0 accepted")
	}
	if err := os.WriteFile(path, []byte(`{"bogus": 1}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("unknown key accepted")
	}
	if _, err := LoadConfig(filepath.Join(dir, "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file err = %v", err)
	}
}
