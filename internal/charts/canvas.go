package charts

import "fmt"

// Widget is a rendered chart that stays live until destroyed.
type Widget struct {
	Definition Definition
	HTML       string
	destroyed  bool
}

func (w *Widget) Destroyed() bool { return w.destroyed }

func (w *Widget) destroy() {
	w.destroyed = true
	w.HTML = ""
}

// Canvas owns the live widgets of one view. Mounting a page always destroys
// what was there before, so no widget outlives a navigation.
type Canvas struct {
	renderer *Renderer
	widgets  []*Widget
}

func NewCanvas(renderer *Renderer) *Canvas {
	if renderer == nil {
		renderer = NewRenderer()
	}
	return &Canvas{renderer: renderer}
}

// Mount destroys every live widget and builds the charts of page.
func (c *Canvas) Mount(page, theme string) ([]*Widget, error) {
	c.Destroy()
	defs := ForPage(page)
	widgets := make([]*Widget, 0, len(defs))
	for _, def := range defs {
		html, err := c.renderer.Render(def, theme)
		if err != nil {
			for _, w := range widgets {
				w.destroy()
			}
			return nil, fmt.Errorf("failed to render %s: %w", def.ID, err)
		}
		widgets = append(widgets, &Widget{Definition: def, HTML: html})
	}
	c.widgets = widgets
	return append([]*Widget(nil), widgets...), nil
}

// Destroy releases every live widget and reports how many there were.
func (c *Canvas) Destroy() int {
	n := len(c.widgets)
	for _, w := range c.widgets {
		w.destroy()
	}
	c.widgets = nil
	return n
}

func (c *Canvas) Widgets() []*Widget {
	return append([]*Widget(nil), c.widgets...)
}
