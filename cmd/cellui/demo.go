package main

import (
	"fmt"

	"github.com/lixenwraith/cellui/controls"
	"github.com/lixenwraith/cellui/ui"
)

var fruits = []struct{ name, description string }{
	{"Apple", "Crisp and sweet"},
	{"Banana", "Rich in potassium"},
	{"Blueberry", "Small, blue, antioxidant"},
	{"Cherry", "Stone fruit, dark red"},
	{"Grape", "Grows in bunches"},
	{"Mango", "Tropical stone fruit"},
	{"Orange", "Citrus, easy to peel"},
	{"Pear", "Grainy, buttery flesh"},
}

// demo is the desktop of the demo application; it reacts to events raised by the controls
type demo struct {
	*ui.Desktop
	rt *ui.Runtime

	status *controls.Label
	fruit  *controls.ComboBox
	glyph  *controls.CharPicker
	sound  *controls.CheckBox
	list   *controls.ListBox

	beep ui.Handle
	quit ui.Handle
}

func newDemo() *demo {
	return &demo{Desktop: ui.NewDesktop()}
}

func (d *demo) soundOn() bool { return d.sound != nil && d.sound.IsChecked() }

func (d *demo) build(rt *ui.Runtime) {
	d.rt = rt
	w := ui.NewWindow("cellui &demo", ui.MustLayout("a:c,w:60,h:16"))
	rt.AddWindow(w)

	w.AddChild(controls.NewLabel("Fruit", ui.MustLayout("x:1,y:0,w:24,h:1")))
	w.AddChild(controls.NewLabel("Glyph", ui.MustLayout("x:28,y:0,w:14,h:1")))

	d.fruit = controls.NewComboBox(ui.MustLayout("x:1,y:1,w:24,h:1"))
	for _, f := range fruits {
		d.fruit.Add(f.name, f.description)
	}
	w.AddChild(d.fruit)

	d.glyph = controls.NewCharPicker(ui.MustLayout("x:28,y:1,w:14,h:1"), '#')
	w.AddChild(d.glyph)

	d.sound = controls.NewCheckBox("&Sound", ui.MustLayout("x:44,y:1,w:12,h:1"), true)
	w.AddChild(d.sound)

	d.list = controls.NewListBox(ui.MustLayout("x:1,y:3,w:24,h:7"))
	for _, f := range fruits {
		d.list.Add(f.name)
	}
	w.AddChild(d.list)

	d.beep = w.AddChild(controls.NewButton("&Beep", ui.MustLayout("x:28,y:3,w:12,h:1")))
	d.quit = w.AddChild(controls.NewButton("&Quit", ui.MustLayout("x:28,y:5,w:12,h:1")))

	d.status = controls.NewLabel("Tab moves focus, Alt+letter activates", ui.MustLayout("l:1,r:1,b:0,h:1"))
	w.AddChild(d.status)

	d.fruit.RequestFocus()
}

func (d *demo) OnEvent(ev ui.ControlEvent) ui.EventProcessStatus {
	switch e := ev.Data.(type) {
	case controls.ButtonPressed:
		switch ev.Emitter {
		case d.beep:
			d.rt.Bell()
			d.status.SetText("Beep")
		case d.quit:
			d.rt.Close()
		}
	case controls.SelectionChanged:
		switch ev.Emitter {
		case d.fruit.Handle():
			name, _ := d.fruit.SelectedName()
			d.list.Select(d.fruit.Selected())
			d.status.SetText("Fruit: " + name)
		case d.list.Handle():
			d.fruit.Select(e.Index)
			item, _ := d.list.SelectedItem()
			d.status.SetText("List: " + item)
		}
	case controls.CheckedChanged:
		if e.Checked {
			d.status.SetText("Sound on")
		} else {
			d.status.SetText("Sound off")
		}
	case controls.CharChanged:
		d.status.SetText(fmt.Sprintf("Glyph %c U+%04X", e.Char, e.Char))
	default:
		return ui.Ignored
	}
	return ui.Processed
}
