package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	GlyphWidth  = 16
	GlyphHeight = 16
	atlasCols   = 16
)

// mapGlyphs are the non-ASCII runes the map and HUD can emit. Each is
// drawn by hand; ASCII comes from basicfont.
var mapGlyphs = []rune{
	'░', '▒', '▓', '█',
	'◆', '◈',
	'·', '∙', '°', '≈',
	'─', '│', '═',
}

// FontAtlas holds pre-rendered glyph images keyed by rune.
type FontAtlas struct {
	image  *ebiten.Image
	glyphs map[rune]*ebiten.Image
}

// NewFontAtlas renders the atlas at startup: printable ASCII with
// basicfont.Face7x13, map glyphs drawn pixel by pixel.
func NewFontAtlas() *FontAtlas {
	var runes []rune
	for r := rune(32); r <= 126; r++ {
		runes = append(runes, r)
	}
	runes = append(runes, mapGlyphs...)

	rows := (len(runes) + atlasCols - 1) / atlasCols
	img := image.NewNRGBA(image.Rect(0, 0, atlasCols*GlyphWidth, rows*GlyphHeight))
	face := basicfont.Face7x13

	for i, r := range runes {
		cx := (i % atlasCols) * GlyphWidth
		cy := (i / atlasCols) * GlyphHeight
		if r >= 32 && r <= 126 {
			drawFontGlyph(img, face, cx, cy, r)
		} else {
			drawMapGlyph(img, cx, cy, r)
		}
	}

	eimg := ebiten.NewImageFromImage(img)
	a := &FontAtlas{image: eimg, glyphs: make(map[rune]*ebiten.Image, len(runes))}
	for i, r := range runes {
		x := (i % atlasCols) * GlyphWidth
		y := (i / atlasCols) * GlyphHeight
		rect := image.Rect(x, y, x+GlyphWidth, y+GlyphHeight)
		a.glyphs[r] = eimg.SubImage(rect).(*ebiten.Image)
	}
	return a
}

// Glyph returns the cached image for a rune, '?' for anything the
// atlas doesn't carry.
func (a *FontAtlas) Glyph(r rune) *ebiten.Image {
	if g, ok := a.glyphs[r]; ok {
		return g
	}
	return a.glyphs['?']
}

// drawFontGlyph renders a single ASCII character into the atlas.
// basicfont.Face7x13 glyphs are 7x13, centered in a 16x16 cell.
func drawFontGlyph(img *image.NRGBA, face font.Face, cellX, cellY int, r rune) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(cellX+4, cellY+13),
	}
	d.DrawString(string(r))
}

// drawMapGlyph draws the hand-made map runes.
func drawMapGlyph(img *image.NRGBA, cellX, cellY int, r rune) {
	w := color.NRGBA{255, 255, 255, 255}
	set := func(x, y int) { img.SetNRGBA(cellX+x, cellY+y, w) }

	switch r {
	case '░': // light shade
		for y := 0; y < GlyphHeight; y++ {
			for x := 0; x < GlyphWidth; x++ {
				if (x+y)%4 == 0 {
					set(x, y)
				}
			}
		}
	case '▒': // medium shade
		for y := 0; y < GlyphHeight; y++ {
			for x := 0; x < GlyphWidth; x++ {
				if (x+y)%2 == 0 {
					set(x, y)
				}
			}
		}
	case '▓': // dark shade
		for y := 0; y < GlyphHeight; y++ {
			for x := 0; x < GlyphWidth; x++ {
				if (x+y)%4 != 0 {
					set(x, y)
				}
			}
		}
	case '█': // full block
		for y := 0; y < GlyphHeight; y++ {
			for x := 0; x < GlyphWidth; x++ {
				set(x, y)
			}
		}
	case '◆': // filled diamond
		for y := 0; y < GlyphHeight; y++ {
			for x := 0; x < GlyphWidth; x++ {
				if absInt(x-8)+absInt(y-8) <= 6 {
					set(x, y)
				}
			}
		}
	case '◈': // diamond with inset
		for y := 0; y < GlyphHeight; y++ {
			for x := 0; x < GlyphWidth; x++ {
				d := absInt(x-8) + absInt(y-8)
				if d <= 6 && (d >= 5 || d <= 2) {
					set(x, y)
				}
			}
		}
	case '·': // small centered dot
		for y := 7; y <= 8; y++ {
			for x := 7; x <= 8; x++ {
				set(x, y)
			}
		}
	case '∙': // heavier dot
		for y := 6; y <= 9; y++ {
			for x := 6; x <= 9; x++ {
				set(x, y)
			}
		}
	case '°': // small ring, upper half
		for _, p := range [][2]int{{6, 3}, {7, 2}, {8, 2}, {9, 3}, {5, 4}, {10, 4}, {6, 6}, {7, 7}, {8, 7}, {9, 6}, {5, 5}, {10, 5}} {
			set(p[0], p[1])
		}
	case '≈': // double tilde
		for x := 2; x < 14; x++ {
			off := 0
			if (x/3)%2 == 0 {
				off = 1
			}
			set(x, 5+off)
			set(x, 10+off)
		}
	case '─': // horizontal line
		for x := 0; x < GlyphWidth; x++ {
			set(x, 7)
			set(x, 8)
		}
	case '│': // vertical line
		for y := 0; y < GlyphHeight; y++ {
			set(7, y)
			set(8, y)
		}
	case '═': // double horizontal
		for x := 0; x < GlyphWidth; x++ {
			set(x, 5)
			set(x, 6)
			set(x, 9)
			set(x, 10)
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
