package app

import (
	"scrollscene/internal/experience"
	"scrollscene/internal/panel"
)

func newPanel() *panel.Panel {
	p := panel.New("Controls")
	p.Close()
	return p
}

// bindPanel exposes the material and both lights. Controls write the
// parameters in place; the loop applies them on the next tick.
func bindPanel(p *panel.Panel, params *experience.Params) {
	p.AddColor("materialColor", &params.MaterialColor)

	mat := p.AddFolder("Sphere Material")
	mat.Add("metalness", &params.Metalness).Min(0).Max(1).Step(0.01)
	mat.Add("roughness", &params.Roughness).Min(0).Max(1).Step(0.01)

	main := p.AddFolder("Main Light")
	main.Add("y", &params.MainLight.Y).Min(-10).Max(10).Step(0.01)
	main.Add("x", &params.MainLight.X).Min(-6).Max(6).Step(0.01)
	main.Add("z", &params.MainLight.Z).Min(-20).Max(20).Step(0.01)
	main.Add("intensity", &params.MainLight.Intensity).Min(0).Max(10).Step(0.01)
	main.AddColor("color", &params.MainLight.Color)

	fill := p.AddFolder("Point Light 1")
	fill.Add("y", &params.FillLight.Y).Min(-10).Max(10).Step(0.01)
	fill.Add("x", &params.FillLight.X).Min(-20).Max(20).Step(0.01)
	fill.Add("z", &params.FillLight.Z).Min(-20).Max(20).Step(0.01)
	fill.Add("intensity", &params.FillLight.Intensity).Min(0).Max(10).Step(0.01)
	fill.AddColor("color", &params.FillLight.Color)
}
