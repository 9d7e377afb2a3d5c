package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/etherdrift/etherdrift/internal/galaxy"
	"github.com/etherdrift/etherdrift/internal/game"
	"github.com/etherdrift/etherdrift/internal/render"
)

const (
	screenWidth  = 1280
	screenHeight = 720
	title        = "Etherdrift"

	cellWidth  = 10
	cellHeight = 16
	gridCols   = screenWidth / cellWidth   // 128
	gridRows   = screenHeight / cellHeight // 45

	// Map viewport placement inside the cell grid.
	mapX = 4
	mapY = 2

	hudRow   = 38
	commsRow = 40
	commsMax = 3
)

// Game is the Ebitengine game struct. It owns rendering and input; all
// gameplay state lives in the session.
type Game struct {
	atlas    *render.FontAtlas
	renderer *render.GridRenderer
	buffer   *render.CellBuffer
	session  *game.Session
}

func NewGame(seed int64) *Game {
	atlas := render.NewFontAtlas()
	renderer := render.NewGridRenderer(atlas, cellWidth, cellHeight)
	buffer := render.NewCellBuffer(gridCols, gridRows)

	session, err := game.NewSession(game.SessionConfig{Seed: seed})
	if err != nil {
		log.Fatalf("new session: %v", err)
	}

	g := &Game{
		atlas:    atlas,
		renderer: renderer,
		buffer:   buffer,
		session:  session,
	}
	g.drawScreen()
	return g
}

func (g *Game) drawScreen() {
	buf := g.buffer
	buf.Clear()

	s := g.session
	rows := s.Render()
	render.RenderMap(buf, rows, mapX, mapY)

	// Title bar
	header := title
	if s.ShowFactionZones {
		header += " - FACTION ZONES"
	}
	if s.ShowEtherOverlay {
		header += " - ETHER ENERGY"
	}
	buf.WriteString(mapX, 0, header, render.ColorWhite, render.ColorBlack)

	// HUD
	ship := s.Ship
	c := ship.Coord
	info := fmt.Sprintf("Ship: %s (%s)  Pos: (%.0f,%.0f,%.0f)  Turn: %d",
		ship.Name, ship.Class, c.X, c.Y, c.Z, s.MoveCount())
	buf.WriteString(mapX, hudRow, info, render.ColorLightCyan, render.ColorBlack)

	drawFuelBar(buf, mapX, hudRow+1, ship)
	friction := s.Galaxy.FrictionAt(c)
	tier := galaxy.TierForFriction(friction)
	buf.WriteString(mapX+48, hudRow+1,
		fmt.Sprintf("Drag: %s (%.2f)", galaxy.DragTierLabel(tier), friction),
		render.DragTierColor(tier), render.ColorBlack)

	// Nearby systems
	nearX := gridCols - 36
	buf.WriteString(nearX, 2, "--- Nearby Systems ---", render.ColorLightCyan, render.ColorBlack)
	for i, ns := range s.NearbySystems() {
		if i >= 8 {
			break
		}
		clr := uint8(render.ColorLightGray)
		if ns.System.Visited {
			clr = render.ColorWhite
		}
		buf.WriteString(nearX, 3+i,
			fmt.Sprintf(" %-22s %5.1f", ns.System.Name, ns.Distance), clr, render.ColorBlack)
	}

	// Comms log
	buf.WriteString(mapX, commsRow, "--- Comms ---", render.ColorLightCyan, render.ColorBlack)
	for i, msg := range s.Log.Recent(commsMax) {
		buf.WriteString(mapX, commsRow+1+i, msg.Text, msgColor(msg.Priority), render.ColorBlack)
	}

	buf.WriteString(mapX, gridRows-1,
		"HJKL/Arrows: Move  F: Factions  E: Ether  ESC: Quit",
		render.ColorDarkGray, render.ColorBlack)
	buf.WriteString(gridCols-36, gridRows-1,
		"Scan: P Habitable p Planet S Station", render.ColorDarkGray, render.ColorBlack)
}

func msgColor(p game.MsgPriority) uint8 {
	switch p {
	case game.MsgCritical:
		return render.ColorLightRed
	case game.MsgWarning:
		return render.ColorYellow
	case game.MsgDiscovery:
		return render.ColorLightGreen
	case game.MsgComms:
		return render.ColorWhite
	default:
		return render.ColorCyan
	}
}

func drawFuelBar(buf *render.CellBuffer, x, y int, ship *game.Ship) {
	const barW = 20
	filled := 0
	if ship.MaxFuel > 0 {
		filled = barW * ship.Fuel / ship.MaxFuel
	}

	labelClr := uint8(render.ColorLightGray)
	if ship.Fuel == 0 {
		labelClr = render.ColorLightRed
	} else if ship.Fuel*100/ship.MaxFuel <= 15 {
		labelClr = render.ColorYellow
	}
	buf.WriteString(x, y, "Fuel ", labelClr, render.ColorBlack)

	for i := 0; i < barW; i++ {
		if i < filled {
			buf.Set(x+5+i, y, '█', render.ColorLightMagenta, render.ColorBlack)
		} else {
			buf.Set(x+5+i, y, '░', render.ColorDarkGray, render.ColorBlack)
		}
	}
	buf.WriteString(x+26, y, fmt.Sprintf("%3d/%d  Range: %.0f  Scan: %.1f",
		ship.Fuel, ship.MaxFuel, ship.JumpRange, ship.ScanRange), labelClr, render.ColorBlack)
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	moved := false
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyK) || inpututil.IsKeyJustPressed(ebiten.KeyUp):
		g.session.Move(game.North)
		moved = true
	case inpututil.IsKeyJustPressed(ebiten.KeyJ) || inpututil.IsKeyJustPressed(ebiten.KeyDown):
		g.session.Move(game.South)
		moved = true
	case inpututil.IsKeyJustPressed(ebiten.KeyH) || inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		g.session.Move(game.West)
		moved = true
	case inpututil.IsKeyJustPressed(ebiten.KeyL) || inpututil.IsKeyJustPressed(ebiten.KeyRight):
		g.session.Move(game.East)
		moved = true
	}

	toggled := false
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.session.ToggleFactionZones()
		toggled = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		g.session.ToggleEtherOverlay()
		toggled = true
	}

	if moved || toggled {
		g.drawScreen()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.buffer)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame(2089)); err != nil {
		log.Fatal(err)
	}
}
