// Package interact turns Gio pointer events into the board view's
// pan/zoom state, and converts between screen pixels and the mine's
// own (cell, tile-size) coordinate space.
package interact

import (
	"math"

	"gioui.org/io/pointer"
	"gioui.org/layout"

	"github.com/paiv/icfpc2012/internal/core"
)

// Camera manages the view transform (pan and zoom) between world pixels
// — cell coordinates scaled by the board renderer's tile size — and
// screen pixels.
type Camera struct {
	// View transform
	OffsetX float32 // Pan offset in screen pixels
	OffsetY float32
	Zoom    float32 // Zoom level (1.0 = 100%)

	fitted bool // whether FitBoard has run at least once

	// Interaction state
	dragging   bool
	dragStartX float32
	dragStartY float32
	lastX      float32
	lastY      float32
}

// NewCamera creates a camera with no view fitted yet. Callers must call
// FitBoard once a real viewport size is known (Workspace.Layout does
// this lazily on its first frame) before the board is centered.
func NewCamera() *Camera {
	return &Camera{Zoom: 1.0}
}

// Fitted reports whether FitBoard has run at least once.
func (c *Camera) Fitted() bool {
	return c.fitted
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(worldX, worldY float64) (screenX, screenY float32) {
	screenX = float32(worldX)*c.Zoom + c.OffsetX
	screenY = float32(worldY)*c.Zoom + c.OffsetY
	return
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(screenX, screenY float32) (worldX, worldY float64) {
	worldX = float64((screenX - c.OffsetX) / c.Zoom)
	worldY = float64((screenY - c.OffsetY) / c.Zoom)
	return
}

// CellAt converts a screen-space pointer position to the mine cell
// rendered at tileSize world units per cell. ok is false when the
// point falls outside m's bounds, so callers never need a separate
// bounds check.
func (c *Camera) CellAt(m *core.MapInfo, tileSize int, screenX, screenY float32) (core.Position, bool) {
	worldX, worldY := c.ScreenToWorld(screenX, screenY)
	p := core.Position{
		X: int(math.Floor(worldX / float64(tileSize))),
		Y: int(math.Floor(worldY / float64(tileSize))),
	}
	return p, m.InBounds(p)
}

// FitBoard zooms and centers so m's whole board (m.Width x m.Height
// cells, tileSize world units per cell) fits inside a
// screenWidth x screenHeight viewport with margin screen pixels of
// border, the way a freshly opened mine or an explicit reset should
// present it.
func (c *Camera) FitBoard(m *core.MapInfo, tileSize int, screenWidth, screenHeight, margin float32) {
	boardW := float32(m.Width * tileSize)
	boardH := float32(m.Height * tileSize)
	if boardW <= 0 || boardH <= 0 {
		return
	}

	availW := screenWidth - 2*margin
	availH := screenHeight - 2*margin

	zoomX := availW / boardW
	zoomY := availH / boardH

	c.Zoom = zoomX
	if zoomY < zoomX {
		c.Zoom = zoomY
	}
	if c.Zoom < 0.1 {
		c.Zoom = 0.1
	}
	if c.Zoom > 10 {
		c.Zoom = 10
	}

	c.OffsetX = screenWidth/2 - boardW/2*c.Zoom
	c.OffsetY = screenHeight/2 - boardH/2*c.Zoom
	c.fitted = true
}

// HandleEvent processes pointer events for pan and zoom.
func (c *Camera) HandleEvent(gtx layout.Context, ev pointer.Event) {
	switch ev.Kind {
	case pointer.Press:
		if ev.Buttons.Contain(pointer.ButtonSecondary) || ev.Buttons.Contain(pointer.ButtonTertiary) {
			c.dragging = true
			c.dragStartX = ev.Position.X
			c.dragStartY = ev.Position.Y
		}
		c.lastX = ev.Position.X
		c.lastY = ev.Position.Y

	case pointer.Drag:
		if c.dragging {
			dx := ev.Position.X - c.lastX
			dy := ev.Position.Y - c.lastY
			c.OffsetX += dx
			c.OffsetY += dy
		}
		c.lastX = ev.Position.X
		c.lastY = ev.Position.Y

	case pointer.Release:
		c.dragging = false

	case pointer.Scroll:
		// Zoom centered on mouse position
		scrollY := ev.Scroll.Y
		if scrollY != 0 {
			// Calculate world position under mouse before zoom
			worldX, worldY := c.ScreenToWorld(ev.Position.X, ev.Position.Y)

			// Apply zoom
			zoomFactor := float32(1.1)
			if scrollY > 0 {
				c.Zoom /= zoomFactor
			} else {
				c.Zoom *= zoomFactor
			}

			// Clamp zoom
			if c.Zoom < 0.1 {
				c.Zoom = 0.1
			}
			if c.Zoom > 10 {
				c.Zoom = 10
			}

			// Adjust offset to keep world point under mouse
			newScreenX, newScreenY := c.WorldToScreen(worldX, worldY)
			c.OffsetX += ev.Position.X - newScreenX
			c.OffsetY += ev.Position.Y - newScreenY
		}
	}
}
