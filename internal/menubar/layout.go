package menubar

import (
	"math"

	"github.com/mattn/go-runewidth"
)

// barHeight is the bar's height in cells. Dropdowns overlay the rows
// beneath it.
const barHeight = 1

// basePadding is the horizontal padding on each side of a button
// title at zoom factor 1.
const basePadding = 2

// Dimension is an occupied cell area. A zero Dimension means hidden.
type Dimension struct {
	Width  int
	Height int
}

// Rect is a cell-space bounding box.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// SetZoom records the display zoom factor and recomputes button
// metrics. Padding shrinks as zoom grows so the bar keeps the same
// apparent size instead of scaling with the OS zoom level.
func (b *MenuBar) SetZoom(zoom float64) {
	if zoom <= 0 {
		zoom = 1
	}
	b.zoom = zoom
	b.layoutButtons()
}

// Layout records the available area and returns the cells the bar
// consumes: the full width and one row when shown, nothing when
// hidden.
func (b *MenuBar) Layout(width, height int) Dimension {
	b.width = width
	b.height = height
	b.layoutButtons()
	if !b.visible {
		return Dimension{}
	}
	return Dimension{Width: width, Height: barHeight}
}

// BoundingBox returns the cell box spanning all top-level buttons, or
// a zero Rect while hidden.
func (b *MenuBar) BoundingBox() Rect {
	if !b.visible || len(b.buttons) == 0 {
		return Rect{}
	}
	first := b.buttons[0]
	last := b.buttons[len(b.buttons)-1]
	return Rect{
		X:      first.x,
		Y:      0,
		Width:  last.x + last.width - first.x,
		Height: barHeight,
	}
}

func (b *MenuBar) layoutButtons() {
	pad := b.buttonPadding()
	x := 0
	for _, btn := range b.buttons {
		btn.x = x
		btn.width = displayWidth(btn.Title) + 2*pad
		x += btn.width
	}
}

func (b *MenuBar) buttonPadding() int {
	pad := int(math.Round(basePadding / b.zoom))
	if pad < 1 {
		pad = 1
	}
	return pad
}

func displayWidth(s string) int {
	return runewidth.StringWidth(s)
}
