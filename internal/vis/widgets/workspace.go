// Package widgets provides Gio UI widgets for the visualizer.
package widgets

import (
	"image"
	"image/color"

	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/widget/material"

	"github.com/paiv/icfpc2012/internal/core"
	"github.com/paiv/icfpc2012/internal/vis/draw"
	"github.com/paiv/icfpc2012/internal/vis/interact"
	"github.com/paiv/icfpc2012/internal/vis/state"
)

// hoverMargin is the screen-pixel border FitBoard leaves around the
// board on first layout. The 'R' reset key in app.go uses its own
// resetMargin.
const hoverMargin = 40

// Workspace is the main 2D board view.
type Workspace struct {
	state  *state.State
	camera *interact.Camera

	hoverPos core.Position
	hasHover bool
}

// NewWorkspace creates a new workspace widget.
func NewWorkspace(st *state.State, camera *interact.Camera) *Workspace {
	return &Workspace{
		state:  st,
		camera: camera,
	}
}

// Layout renders the board at the current playback frame.
func (w *Workspace) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	bounds := gtx.Constraints.Max
	defer clip.Rect(image.Rect(0, 0, bounds.X, bounds.Y)).Push(gtx.Ops).Pop()

	if !w.camera.Fitted() {
		w.camera.FitBoard(w.state.Map, draw.TileSize, float32(bounds.X), float32(bounds.Y), hoverMargin)
	}

	w.handlePointerEvents(gtx)

	draw.DrawGrid(gtx, w.camera, w.state.Map.Width, w.state.Map.Height, color.NRGBA{R: 25, G: 28, B: 32, A: 255})
	draw.DrawBoard(gtx, w.state.Map, w.state.Current(), w.camera)
	if w.hasHover {
		draw.DrawHoverHighlight(gtx, w.camera, w.hoverPos)
	}

	return layout.Dimensions{Size: bounds}
}

func (w *Workspace) handlePointerEvents(gtx layout.Context) {
	area := clip.Rect(image.Rect(0, 0, gtx.Constraints.Max.X, gtx.Constraints.Max.Y)).Push(gtx.Ops)
	event.Op(gtx.Ops, w)
	area.Pop()

	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: w,
			Kinds:  pointer.Press | pointer.Drag | pointer.Release | pointer.Scroll | pointer.Move,
		})
		if !ok {
			break
		}
		if pe, ok := ev.(pointer.Event); ok {
			w.camera.HandleEvent(gtx, pe)
			if pos, ok := w.camera.CellAt(w.state.Map, draw.TileSize, pe.Position.X, pe.Position.Y); ok {
				w.hoverPos, w.hasHover = pos, true
			} else {
				w.hasHover = false
			}
		}
	}
}
