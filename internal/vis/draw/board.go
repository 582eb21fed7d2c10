// Package draw renders a mine board and its robot through a Camera,
// grounded on the shape drawing primitives in the example pack's vis
// package (filled squares and circles built from gioui.org/op/clip
// paths rather than raster images).
package draw

import (
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/paiv/icfpc2012/internal/core"
	"github.com/paiv/icfpc2012/internal/vis/interact"
)

// TileSize is the board's cell size in world units; Camera.FitBoard
// uses it to size a freshly opened mine to fill the window.
const TileSize = 24

var tileColors = map[core.Cell]color.NRGBA{
	core.Empty:    {R: 20, G: 20, B: 24, A: 255},
	core.Earth:    {R: 120, G: 90, B: 60, A: 255},
	core.Wall:     {R: 70, G: 70, B: 78, A: 255},
	core.Rock:     {R: 150, G: 150, B: 150, A: 255},
	core.Lambda:   {R: 230, G: 200, B: 60, A: 255},
	core.Lift:     {R: 90, G: 90, B: 200, A: 255},
	core.OpenLift: {R: 120, G: 230, B: 120, A: 255},
}

var colorRobot = color.NRGBA{R: 100, G: 200, B: 255, A: 255}

// DrawGrid fills the background and draws a faint grid line at every
// tile boundary, grounded on DrawGrid in the example pack's workspace
// renderer.
func DrawGrid(gtx layout.Context, camera *interact.Camera, width, height int, bg color.NRGBA) {
	paint.Fill(gtx.Ops, bg)

	lineColor := color.NRGBA{R: bg.R + 12, G: bg.G + 12, B: bg.B + 12, A: 255}
	for x := 0; x <= width; x++ {
		sx, sy0 := camera.WorldToScreen(float64(x*TileSize), 0)
		_, sy1 := camera.WorldToScreen(float64(x*TileSize), float64(height*TileSize))
		drawLine(gtx, sx, sy0, sx, sy1, 1, lineColor)
	}
	for y := 0; y <= height; y++ {
		sx0, sy := camera.WorldToScreen(0, float64(y*TileSize))
		sx1, _ := camera.WorldToScreen(float64(width*TileSize), float64(y*TileSize))
		drawLine(gtx, sx0, sy, sx1, sy, 1, lineColor)
	}
}

// DrawBoard renders every non-empty tile of state's board, then the
// robot on top.
func DrawBoard(gtx layout.Context, m *core.MapInfo, s core.SimState, camera *interact.Camera) {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			c := s.At(m.Width, core.Position{X: x, Y: y})
			if c == core.Empty || c == core.Robot {
				continue
			}
			col, ok := tileColors[c]
			if !ok {
				continue
			}
			drawTile(gtx, camera, x, y, col)
		}
	}

	drawRobot(gtx, camera, s.RobotPos)
}

func drawTile(gtx layout.Context, camera *interact.Camera, x, y int, col color.NRGBA) {
	x0, y0 := camera.WorldToScreen(float64(x*TileSize), float64(y*TileSize))
	x1, y1 := camera.WorldToScreen(float64((x+1)*TileSize), float64((y+1)*TileSize))
	drawFilledRect(gtx, x0, y0, x1, y1, col)
}

// DrawHoverHighlight overlays a translucent outline on the board cell
// the pointer currently sits over, the board-renderer equivalent of the
// example pack's vertex-hit highlight (FindVertexAt) for a domain with
// cells instead of graph vertices.
func DrawHoverHighlight(gtx layout.Context, camera *interact.Camera, pos core.Position) {
	x0, y0 := camera.WorldToScreen(float64(pos.X*TileSize), float64(pos.Y*TileSize))
	x1, y1 := camera.WorldToScreen(float64((pos.X+1)*TileSize), float64((pos.Y+1)*TileSize))
	drawFilledRect(gtx, x0, y0, x1, y1, color.NRGBA{R: 255, G: 255, B: 255, A: 50})
}

func drawRobot(gtx layout.Context, camera *interact.Camera, pos core.Position) {
	cx, cy := camera.WorldToScreen(float64(pos.X*TileSize)+TileSize/2, float64(pos.Y*TileSize)+TileSize/2)
	radius := float32(TileSize) / 2.5 * camera.Zoom
	drawFilledCircle(gtx, cx, cy, radius, colorRobot)
}

func drawFilledRect(gtx layout.Context, x0, y0, x1, y1 float32, col color.NRGBA) {
	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(f32.Pt(x0, y0))
	path.LineTo(f32.Pt(x1, y0))
	path.LineTo(f32.Pt(x1, y1))
	path.LineTo(f32.Pt(x0, y1))
	path.Close()
	paint.FillShape(gtx.Ops, col, clip.Outline{Path: path.End()}.Op())
}

func drawFilledCircle(gtx layout.Context, cx, cy, radius float32, col color.NRGBA) {
	var path clip.Path
	path.Begin(gtx.Ops)
	path.Move(f32.Pt(cx+radius, cy))

	const segments = 16
	for i := 1; i <= segments; i++ {
		angle := float64(i) * 2 * math.Pi / segments
		x := cx + radius*float32(math.Cos(angle))
		y := cy + radius*float32(math.Sin(angle))
		path.Line(f32.Pt(x-path.Pos().X, y-path.Pos().Y))
	}
	path.Close()
	paint.FillShape(gtx.Ops, col, clip.Outline{Path: path.End()}.Op())
}

func drawLine(gtx layout.Context, x1, y1, x2, y2, width float32, col color.NRGBA) {
	dx := x2 - x1
	dy := y2 - y1
	length := float32(math.Sqrt(float64(dx*dx + dy*dy)))
	if length < 0.1 {
		return
	}
	dx /= length
	dy /= length
	px := -dy * width / 2
	py := dx * width / 2

	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(f32.Pt(x1+px, y1+py))
	path.LineTo(f32.Pt(x2+px, y2+py))
	path.LineTo(f32.Pt(x2-px, y2-py))
	path.LineTo(f32.Pt(x1-px, y1-py))
	path.Close()
	paint.FillShape(gtx.Ops, col, clip.Outline{Path: path.End()}.Op())
}
