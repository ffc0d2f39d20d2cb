package capture

import (
	"image"
	"image/color"

	"golang.org/x/image/vector"
)

// heartSize is the logical edge of one emblem heart.
const heartSize = 36

// emojiText stands in for emoji the Go fonts cannot draw. The symbols are
// part of the fonts' WGL4 coverage.
var emojiText = map[string]string{
	"💕": "♥ ♥",
	"😍": "♥ ☺ ♥",
	"🥰": "☺ ♥",
	"😊": "☺",
}

// coupleText replaces the "👨 💕 👩" row.
const coupleText = "♂ ♥ ♀"

// fallbackText returns the drawable stand-in for an emoji, or "".
func fallbackText(emoji string) string {
	return emojiText[emoji]
}

// drawHearts paints two overlapping hearts centered in a row of width w
// starting at (x, y).
func drawHearts(img *image.RGBA, x, y, w int) {
	size := heartSize * Scale
	step := size * 2 / 3
	left := x + (w-size-step)/2
	drawHeart(img, left, y, size, colorFill)
	drawHeart(img, left+step, y, size, colorScore)
}

// drawHeart fills a heart inside the size×size square at (x, y).
func drawHeart(img *image.RGBA, x, y, size int, c color.Color) {
	s := float32(size)
	z := vector.NewRasterizer(size, size)
	z.MoveTo(0.5*s, 0.25*s)
	z.CubeTo(0.5*s, 0.05*s, 0, 0, 0, 0.35*s)
	z.CubeTo(0, 0.6*s, 0.35*s, 0.75*s, 0.5*s, 0.95*s)
	z.CubeTo(0.65*s, 0.75*s, s, 0.6*s, s, 0.35*s)
	z.CubeTo(s, 0, 0.5*s, 0.05*s, 0.5*s, 0.25*s)
	z.ClosePath()
	z.Draw(img, image.Rect(x, y, x+size, y+size), image.NewUniform(c), image.Point{})
}
