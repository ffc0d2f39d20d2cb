package capture

import (
	"fmt"
	"image"
	"image/color"
	"strings"
	"unicode"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	// Scale is the fixed device-pixel ratio of exported images.
	Scale = 2
	// Width is the logical card width.
	Width = 420

	padding = 32
	gap     = 14
	barH    = 10
)

var (
	colorTitle  = color.RGBA{0xE1, 0x1D, 0x48, 0xFF} // rose-600
	colorScore  = color.RGBA{0xF4, 0x3F, 0x5E, 0xFF} // rose-500
	colorText   = color.RGBA{0x37, 0x41, 0x51, 0xFF} // gray-700
	colorDim    = color.RGBA{0x4B, 0x55, 0x63, 0xFF} // gray-600
	colorList   = color.RGBA{0x9F, 0x12, 0x39, 0xFF} // rose-800
	colorTrack  = color.RGBA{0xFF, 0xE4, 0xE6, 0xFF} // rose-100
	colorFill   = color.RGBA{0xFB, 0x71, 0x85, 0xFF} // rose-400
	colorBorder = color.RGBA{0xFE, 0xCD, 0xD3, 0xFF} // rose-200
)

type align int

const (
	alignCenter align = iota
	alignLeft
)

// block is one vertically stacked element of the card.
type block struct {
	face  font.Face
	color color.Color
	lines []string
	align align
	bar   int // percentage; only for bar blocks
	isBar bool

	isHearts bool
}

type faces struct {
	title   font.Face
	score   font.Face
	body    font.Face
	bold    font.Face
	caption font.Face
}

func (f faces) Close() {
	for _, face := range []font.Face{f.title, f.score, f.body, f.bold, f.caption} {
		if face != nil {
			face.Close()
		}
	}
}

func loadFaces() (faces, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return faces{}, fmt.Errorf("parse regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return faces{}, fmt.Errorf("parse bold font: %w", err)
	}

	var f faces
	specs := []struct {
		dst  *font.Face
		font *opentype.Font
		size float64
	}{
		{&f.title, bold, 30},
		{&f.score, bold, 42},
		{&f.body, regular, 16},
		{&f.bold, bold, 16},
		{&f.caption, regular, 13},
	}
	for _, s := range specs {
		face, err := opentype.NewFace(s.font, &opentype.FaceOptions{
			Size:    s.size * Scale,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			f.Close()
			return faces{}, fmt.Errorf("create face: %w", err)
		}
		*s.dst = face
	}
	return f, nil
}

// Render draws the card at Scale on an opaque white background.
func Render(card Card) (*image.RGBA, error) {
	if card.Total <= 0 {
		return nil, ErrEmptyCard
	}

	f, err := loadFaces()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	inner := (Width - 2*padding) * Scale
	blocks := []block{{isHearts: true}}
	if emblem := drawable(f.title, fallbackText(card.Emoji)); emblem != "" {
		blocks = append(blocks, block{face: f.title, color: colorScore, lines: []string{emblem}})
	}
	if couple := drawable(f.bold, coupleText); couple != "" {
		blocks = append(blocks, block{face: f.bold, color: colorFill, lines: []string{couple}})
	}
	blocks = append(blocks, []block{
		{face: f.title, color: colorTitle, lines: wrap(f.title, drawable(f.title, card.Title), inner)},
		{face: f.caption, color: colorDim, lines: []string{"Your Love Score:"}},
		{face: f.score, color: colorScore, lines: []string{card.Score}},
		{isBar: true, bar: card.Percentage},
		{face: f.bold, color: colorTitle, lines: []string{fmt.Sprintf("%d%% Compatible", card.Percentage)}},
		{face: f.body, color: colorText, lines: wrap(f.body, drawable(f.body, card.Description), inner)},
	}...)
	if len(card.Accepted) > 0 {
		blocks = append(blocks, block{face: f.bold, color: colorList, lines: []string{"You said YES to:"}, align: alignLeft})
		var items []string
		for _, q := range card.Accepted {
			for i, l := range wrap(f.body, drawable(f.body, q), inner-lineIndent(f.body)) {
				if i == 0 {
					items = append(items, "• "+l)
				} else {
					items = append(items, "  "+l)
				}
			}
		}
		blocks = append(blocks, block{face: f.body, color: colorList, lines: items, align: alignLeft})
	}
	blocks = append(blocks, block{face: f.caption, color: colorTitle, lines: []string{"Made with love"}})

	height := padding * Scale
	for i, b := range blocks {
		if i > 0 {
			height += gap * Scale
		}
		height += b.height()
	}
	height += padding * Scale
	// Keep the bitmap an exact multiple of the logical size.
	logicalH := (height + Scale - 1) / Scale

	img := image.NewRGBA(image.Rect(0, 0, Width*Scale, logicalH*Scale))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	strokeBorder(img, colorBorder, 2*Scale)

	y := padding * Scale
	left := padding * Scale
	for i, b := range blocks {
		if i > 0 {
			y += gap * Scale
		}
		if b.isBar {
			drawBar(img, left, y, inner, b.bar)
			y += b.height()
			continue
		}
		if b.isHearts {
			drawHearts(img, left, y, inner)
			y += b.height()
			continue
		}
		m := b.face.Metrics()
		lh := m.Height.Ceil()
		for _, line := range b.lines {
			x := left
			if b.align == alignCenter {
				x = left + (inner-font.MeasureString(b.face, line).Ceil())/2
			}
			d := &font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(b.color),
				Face: b.face,
				Dot:  fixed.P(x, y+m.Ascent.Ceil()),
			}
			d.DrawString(line)
			y += lh
		}
	}
	return img, nil
}

func (b block) height() int {
	if b.isBar {
		return barH * Scale
	}
	if b.isHearts {
		return heartSize * Scale
	}
	return len(b.lines) * b.face.Metrics().Height.Ceil()
}

func lineIndent(face font.Face) int {
	return font.MeasureString(face, "• ").Ceil()
}

func drawBar(img *image.RGBA, x, y, w, pct int) {
	pct = max(0, min(pct, 100))
	track := image.Rect(x, y, x+w, y+barH*Scale)
	draw.Draw(img, track, image.NewUniform(colorTrack), image.Point{}, draw.Src)
	fill := image.Rect(x, y, x+w*pct/100, y+barH*Scale)
	draw.Draw(img, fill, image.NewUniform(colorFill), image.Point{}, draw.Src)
}

func strokeBorder(img *image.RGBA, c color.Color, inset int) {
	b := img.Bounds().Inset(inset)
	src := image.NewUniform(c)
	t := Scale
	for _, r := range []image.Rectangle{
		image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Min.Y+t),
		image.Rect(b.Min.X, b.Max.Y-t, b.Max.X, b.Max.Y),
		image.Rect(b.Min.X, b.Min.Y, b.Min.X+t, b.Max.Y),
		image.Rect(b.Max.X-t, b.Min.Y, b.Max.X, b.Max.Y),
	} {
		draw.Draw(img, r, src, image.Point{}, draw.Src)
	}
}

// drawable drops runes the face has no glyph for, such as emoji.
func drawable(face font.Face, s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsSpace(r) {
			b.WriteRune(' ')
			continue
		}
		if _, ok := face.GlyphAdvance(r); !ok {
			continue
		}
		b.WriteRune(r)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// wrap breaks s into lines no wider than width pixels.
func wrap(face font.Face, s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		candidate := line + " " + w
		if font.MeasureString(face, candidate).Ceil() <= width {
			line = candidate
			continue
		}
		lines = append(lines, line)
		line = w
	}
	return append(lines, line)
}
