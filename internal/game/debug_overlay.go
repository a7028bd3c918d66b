package game

import (
	"fmt"
	"strings"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	panelX     = 10
	panelY     = 90
	panelWidth = 300
	lineHeight = 20
)

var (
	colorPanel   = rl.NewColor(18, 18, 24, 235)
	colorElement = rl.NewColor(28, 28, 38, 255)
	colorHover   = rl.NewColor(38, 38, 52, 255)
	colorOrange  = rl.NewColor(255, 161, 0, 255)
	colorText    = rl.NewColor(200, 200, 208, 255)
)

// initDebugStyle applies the dark overlay theme to raygui.
func initDebugStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorPanel))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorOrange))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorText))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(rl.White))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(rl.White))

	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(50, 50, 65, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorOrange))
	gui.SetStyle(gui.DEFAULT, gui.LINE_COLOR, gui.NewColorPropertyValue(rl.NewColor(40, 40, 55, 255)))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

// debugLines describes the player state shown in the debug panel.
func (g *Game) debugLines() []string {
	player := g.World.Player()
	if player == nil {
		return []string{"no player"}
	}
	pos, vel, up := player.Position(), player.Velocity(), player.VirtualUp()

	entrance := "none"
	if e := player.Entrance(); e != nil {
		entrance = e.Type.String()
	}

	passes := make([]string, len(g.passes))
	for i, p := range g.passes {
		passes[i] = p.String()
	}

	return []string{
		fmt.Sprintf("Position:   (%.2f, %.2f, %.2f)", pos.X, pos.Y, pos.Z),
		fmt.Sprintf("Velocity:   (%.2f, %.2f, %.2f)", vel.X, vel.Y, vel.Z),
		fmt.Sprintf("Virtual up: (%.2f, %.2f, %.2f)", up.X, up.Y, up.Z),
		fmt.Sprintf("Airborne:   %v", player.Airborne()),
		fmt.Sprintf("Entrance:   %s", entrance),
		fmt.Sprintf("Portals:    %d placed, %d crossings", g.placed, g.crossings),
		fmt.Sprintf("Passes:     %s", strings.Join(passes, ", ")),
		fmt.Sprintf("Update: %.2f ms  Draw: %.2f ms", g.updateMs, g.drawMs),
	}
}

func (g *Game) drawDebugOverlay() {
	lines := g.debugLines()
	height := float32(len(lines)*lineHeight + 110)
	gui.Panel(rl.Rectangle{X: panelX, Y: panelY, Width: panelWidth, Height: height}, "Player Debug")

	y := float32(panelY + 30)
	for _, line := range lines {
		gui.Label(rl.Rectangle{X: panelX + 10, Y: y, Width: panelWidth - 20, Height: lineHeight}, line)
		y += lineHeight
	}

	if cam := g.World.Camera(); cam != nil {
		cam.FlyMode = gui.CheckBox(rl.Rectangle{X: panelX + 10, Y: y + 5, Width: 16, Height: 16}, "Fly camera", cam.FlyMode)
	}
	if player := g.World.Player(); player != nil {
		y += 30
		player.MoveSpeed = gui.Slider(rl.Rectangle{X: panelX + 90, Y: y, Width: 150, Height: 16},
			"Move speed", fmt.Sprintf("%.2f", player.MoveSpeed), player.MoveSpeed, 0.05, 1)
		y += 25
		player.UpLerp = gui.Slider(rl.Rectangle{X: panelX + 90, Y: y, Width: 150, Height: 16},
			"Up lerp", fmt.Sprintf("%.2f", player.UpLerp), player.UpLerp, 0.01, 0.5)
	}

	if g.renderer != nil {
		g.drawMaskPreview()
	}
}

// drawMaskPreview shows the last stencil pass in the top right corner.
func (g *Game) drawMaskPreview() {
	mask := g.renderer.Mask()
	previewW := int32(256)
	previewH := previewW * mask.Height / max(mask.Width, 1)
	screenW := int32(rl.GetScreenWidth())

	rl.DrawTexturePro(
		mask,
		rl.Rectangle{X: 0, Y: 0, Width: float32(mask.Width), Height: float32(-mask.Height)},
		rl.Rectangle{X: float32(screenW - previewW - 10), Y: 10, Width: float32(previewW), Height: float32(previewH)},
		rl.Vector2{},
		0,
		rl.White,
	)
	rl.DrawRectangleLines(screenW-previewW-10, 10, previewW, previewH, rl.Green)
	rl.DrawText(fmt.Sprintf("Portal mask (%d draws, %d binds)", g.renderer.DrawCalls, g.renderer.Binds()),
		screenW-previewW-10, previewH+15, 16, rl.Green)
}
