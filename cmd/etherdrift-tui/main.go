package main

import (
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/etherdrift/etherdrift/internal/galaxy"
	"github.com/etherdrift/etherdrift/internal/game"
	"github.com/etherdrift/etherdrift/internal/view"
)

const (
	mapX = 0
	mapY = 1

	commsMax = 4
)

// App is the terminal front-end. All gameplay state lives in the
// session; this layer only maps cells to styles and keys to moves.
type App struct {
	screen  tcell.Screen
	session *game.Session
}

func NewApp(seed int64) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	w, h := screen.Size()
	cfg := game.SessionConfig{Seed: seed}
	if w > 0 && w-1 < view.DefaultViewportWidth {
		cfg.ViewportWidth = w - 1
	}
	if h > 8 && h-8 < view.DefaultViewportHeight {
		cfg.ViewportHeight = h - 8
	}

	session, err := game.NewSession(cfg)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	return &App{screen: screen, session: session}, nil
}

var factionStyles = []tcell.Color{
	tcell.ColorBlue, tcell.ColorRed, tcell.ColorGreen, tcell.ColorPurple,
	tcell.ColorTeal, tcell.ColorOlive, tcell.ColorNavy, tcell.ColorMaroon,
}

var dragStyles = map[galaxy.DragTier]tcell.Color{
	galaxy.DragVeryLow:     tcell.ColorLime,
	galaxy.DragLow:         tcell.ColorGreen,
	galaxy.DragMildEnhance: tcell.ColorAqua,
	galaxy.DragNeutral:     tcell.ColorGray,
	galaxy.DragMild:        tcell.ColorOlive,
	galaxy.DragModerate:    tcell.ColorYellow,
	galaxy.DragHigh:        tcell.ColorRed,
	galaxy.DragVeryHigh:    tcell.ColorFuchsia,
}

var dragGlyphStyles = buildDragGlyphStyles()

func buildDragGlyphStyles() map[rune]tcell.Color {
	m := make(map[rune]tcell.Color, 8)
	for t := galaxy.DragVeryLow; t <= galaxy.DragVeryHigh; t++ {
		m[view.DragTierGlyph(t)] = dragStyles[t]
	}
	return m
}

func cellStyle(c view.Cell) tcell.Style {
	st := tcell.StyleDefault
	switch c.Glyph {
	case view.GlyphZone:
		if c.Zone >= 0 {
			return st.Foreground(factionStyles[int(c.Zone)%len(factionStyles)])
		}
		return st.Foreground(tcell.ColorGray)
	case view.GlyphShip:
		return st.Foreground(tcell.ColorWhite).Bold(true)
	case view.GlyphNPC:
		return st.Foreground(tcell.ColorRed).Bold(true)
	case view.GlyphSystemStations, view.GlyphSystemStationsUnknown:
		return st.Foreground(tcell.ColorYellow)
	case view.GlyphSystemVisited:
		return st.Foreground(tcell.ColorWhite)
	case view.GlyphSystemUnknown:
		return st.Foreground(tcell.ColorSilver)
	case view.GlyphScanHabitable:
		return st.Foreground(tcell.ColorLime)
	case view.GlyphScanPlanet:
		return st.Foreground(tcell.ColorGreen)
	case view.GlyphScanStation:
		return st.Foreground(tcell.ColorAqua)
	case view.GlyphScanMinerals:
		return st.Foreground(tcell.ColorYellow)
	case view.GlyphScanAsteroids:
		return st.Foreground(tcell.ColorSilver)
	}
	if clr, ok := dragGlyphStyles[c.Glyph]; ok {
		return st.Foreground(clr)
	}
	return st
}

func msgStyle(p game.MsgPriority) tcell.Style {
	st := tcell.StyleDefault
	switch p {
	case game.MsgCritical:
		return st.Foreground(tcell.ColorRed).Bold(true)
	case game.MsgWarning:
		return st.Foreground(tcell.ColorYellow)
	case game.MsgDiscovery:
		return st.Foreground(tcell.ColorLime)
	case game.MsgComms:
		return st.Foreground(tcell.ColorWhite)
	default:
		return st.Foreground(tcell.ColorAqua)
	}
}

func (a *App) putString(x, y int, s string, st tcell.Style) {
	for i, r := range []rune(s) {
		a.screen.SetContent(x+i, y, r, nil, st)
	}
}

func (a *App) draw() {
	a.screen.Clear()
	s := a.session

	header := "ETHERDRIFT"
	if s.ShowFactionZones {
		header += " - FACTION ZONES"
	}
	if s.ShowEtherOverlay {
		header += " - ETHER ENERGY"
	}
	a.putString(mapX, 0, header, tcell.StyleDefault.Bold(true))

	rows := s.Render()
	for y, row := range rows {
		for x, cell := range row {
			a.screen.SetContent(mapX+x, mapY+y, cell.Glyph, nil, cellStyle(cell))
		}
	}

	hudY := mapY + len(rows)
	ship := s.Ship
	c := ship.Coord
	friction := s.Galaxy.FrictionAt(c)
	tier := galaxy.TierForFriction(friction)
	a.putString(mapX, hudY, fmt.Sprintf("%s (%s)  Pos (%.0f,%.0f,%.0f)  Fuel %d/%d  Drag %s  Turn %d",
		ship.Name, ship.Class, c.X, c.Y, c.Z, ship.Fuel, ship.MaxFuel,
		galaxy.DragTierLabel(tier), s.MoveCount()),
		tcell.StyleDefault.Foreground(tcell.ColorAqua))

	for i, msg := range s.Log.Recent(commsMax) {
		a.putString(mapX, hudY+1+i, msg.Text, msgStyle(msg.Priority))
	}

	a.putString(mapX, hudY+1+commsMax,
		"hjkl/arrows move  f factions  e ether  q quit",
		tcell.StyleDefault.Foreground(tcell.ColorGray))

	a.screen.Show()
}

// Run pumps terminal events until quit. Turn-based: one key, one move,
// one redraw.
func (a *App) Run() {
	a.draw()
	for {
		ev := a.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			a.screen.Sync()
			a.draw()
		case *tcell.EventKey:
			if a.handleKey(ev) {
				return
			}
			a.draw()
		}
	}
}

func (a *App) handleKey(ev *tcell.EventKey) (quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		a.session.Move(game.North)
	case tcell.KeyDown:
		a.session.Move(game.South)
	case tcell.KeyLeft:
		a.session.Move(game.West)
	case tcell.KeyRight:
		a.session.Move(game.East)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'k':
			a.session.Move(game.North)
		case 'j':
			a.session.Move(game.South)
		case 'h':
			a.session.Move(game.West)
		case 'l':
			a.session.Move(game.East)
		case 'f':
			a.session.ToggleFactionZones()
		case 'e':
			a.session.ToggleEtherOverlay()
		}
	}
	return false
}

func main() {
	app, err := NewApp(2089)
	if err != nil {
		log.Fatalf("start: %v", err)
	}
	defer app.screen.Fini()

	app.Run()
}
