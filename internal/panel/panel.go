// Package panel is a keyboard-driven parameter panel drawn over the scene.
//
// Controls bind directly to fields (material roughness, light position, ...)
// and write them in place, so the renderer sees changes on the next frame.
package panel

import (
	"scrollscene/hal"
	"scrollscene/internal/softgl"
)

// Folder groups controls under a collapsible title.
type Folder struct {
	title    string
	closed   bool
	controls []Control
}

// Add binds a float32 field as a slider.
func (f *Folder) Add(name string, v *float32) *Slider {
	s := &Slider{name: name, ptr: v}
	f.controls = append(f.controls, s)
	return s
}

// AddColor binds a color field.
func (f *Folder) AddColor(name string, c *softgl.Color) *ColorControl {
	cc := &ColorControl{name: name, ptr: c}
	f.controls = append(f.controls, cc)
	return cc
}

func (f *Folder) Title() string { return f.title }
func (f *Folder) Open()         { f.closed = false }
func (f *Folder) Close()        { f.closed = true }
func (f *Folder) Closed() bool  { return f.closed }

// Panel is the root of the control tree.
type Panel struct {
	Title string

	closed  bool
	root    Folder
	folders []*Folder
	sel     int
}

// New returns an open panel.
func New(title string) *Panel {
	return &Panel{Title: title}
}

// Add binds a top-level slider.
func (p *Panel) Add(name string, v *float32) *Slider { return p.root.Add(name, v) }

// AddColor binds a top-level color.
func (p *Panel) AddColor(name string, c *softgl.Color) *ColorControl {
	return p.root.AddColor(name, c)
}

// AddFolder appends a folder.
func (p *Panel) AddFolder(title string) *Folder {
	f := &Folder{title: title}
	p.folders = append(p.folders, f)
	return f
}

func (p *Panel) Open()        { p.closed = false }
func (p *Panel) Close()       { p.closed = true }
func (p *Panel) Closed() bool { return p.closed }

// row is one visible line: a folder header or a control.
type row struct {
	folder  *Folder
	control Control
	nested  bool
}

func (p *Panel) rows() []row {
	out := make([]row, 0, len(p.root.controls)+len(p.folders)*4)
	for _, c := range p.root.controls {
		out = append(out, row{control: c})
	}
	for _, f := range p.folders {
		out = append(out, row{folder: f})
		if f.closed {
			continue
		}
		for _, c := range f.controls {
			out = append(out, row{control: c, nested: true})
		}
	}
	return out
}

// Selected returns the selected control, or nil when a folder header (or
// nothing) is selected.
func (p *Panel) Selected() Control {
	rows := p.rows()
	if p.sel < 0 || p.sel >= len(rows) {
		return nil
	}
	return rows[p.sel].control
}

// HandleKey applies a key press and reports whether the panel used it.
//
// Tab toggles the panel. While open: Up/Down select, Left/Right adjust (ten
// steps with Shift), Enter folds the selected folder or switches the
// channel of a color row, Escape closes.
func (p *Panel) HandleKey(ev hal.KeyEvent) bool {
	if !ev.Press {
		return false
	}
	if ev.Code == hal.KeyTab {
		p.closed = !p.closed
		return true
	}
	if p.closed {
		return false
	}

	rows := p.rows()
	if len(rows) == 0 {
		return false
	}
	if p.sel >= len(rows) {
		p.sel = len(rows) - 1
	}

	steps := 1
	if ev.Shift {
		steps = 10
	}

	switch ev.Code {
	case hal.KeyEscape:
		p.closed = true
	case hal.KeyUp:
		p.sel = (p.sel - 1 + len(rows)) % len(rows)
	case hal.KeyDown:
		p.sel = (p.sel + 1) % len(rows)
	case hal.KeyLeft, hal.KeyRight:
		if ev.Code == hal.KeyLeft {
			steps = -steps
		}
		r := rows[p.sel]
		switch {
		case r.control != nil:
			r.control.Adjust(steps)
		case r.folder != nil:
			r.folder.closed = steps < 0
		}
	case hal.KeyEnter:
		r := rows[p.sel]
		if r.folder != nil {
			r.folder.closed = !r.folder.closed
		}
		if c, ok := r.control.(interface{ Cycle() }); ok {
			c.Cycle()
		}
	default:
		return false
	}
	return true
}
