package capture

import (
	"context"
	"errors"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/lovequiz/internal/score"
)

func testCard() Card {
	return NewCard(score.Compute(3, 5), []string{
		"Do you care about me?",
		"Do I mean anything to you?",
		"Do you think about me?",
	})
}

func TestNewCard(t *testing.T) {
	c := testCard()
	assert.Equal(t, "🥰", c.Emoji)
	assert.Equal(t, "Sweet!", c.Title)
	assert.Equal(t, "3/5", c.Score)
	assert.Equal(t, 60, c.Percentage)
	assert.Len(t, c.Accepted, 3)
}

func TestRender_ScaleAndBackground(t *testing.T) {
	img, err := Render(testCard())
	require.NoError(t, err)

	b := img.Bounds()
	assert.Equal(t, Width*Scale, b.Dx())
	assert.Zero(t, b.Dy()%Scale, "height should be a multiple of the scale")
	assert.Equal(t, color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}, img.RGBAAt(0, 0))
}

func TestRender_EmptyAcceptedIsShorter(t *testing.T) {
	with, err := Render(testCard())
	require.NoError(t, err)
	without, err := Render(NewCard(score.Compute(0, 5), nil))
	require.NoError(t, err)

	assert.Less(t, without.Bounds().Dy(), with.Bounds().Dy())
}

func TestRender_EmptyCard(t *testing.T) {
	_, err := Render(Card{})
	assert.True(t, errors.Is(err, ErrEmptyCard))
}

func TestWrap(t *testing.T) {
	f, err := loadFaces()
	require.NoError(t, err)
	defer f.Close()

	lines := wrap(f.body, "one two three four five six seven eight nine ten", 200)
	require.Greater(t, len(lines), 1)
	assert.Nil(t, wrap(f.body, "   ", 200))
}

func TestDrawable_DropsEmoji(t *testing.T) {
	f, err := loadFaces()
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, "Sweet! spark!", drawable(f.body, "Sweet! 💫 spark! ✨"))
}

func TestRender_HeartEmblem(t *testing.T) {
	img, err := Render(testCard())
	require.NoError(t, err)

	y := padding*Scale + heartSize*Scale/2
	seen := map[color.RGBA]bool{}
	for x := 0; x < img.Bounds().Dx(); x++ {
		seen[img.RGBAAt(x, y)] = true
	}
	assert.True(t, seen[colorFill], "back heart should be drawn")
	assert.True(t, seen[colorScore], "front heart should be drawn")
}

func TestFallbackText_Drawable(t *testing.T) {
	f, err := loadFaces()
	require.NoError(t, err)
	defer f.Close()

	for _, tier := range []score.Tier{score.TierAllYes, score.TierNearlyAll, score.TierHalfway, score.TierSomeday} {
		text := fallbackText(tier.Message().Emoji)
		require.NotEmpty(t, text, "tier %s has no stand-in", tier)
		assert.NotEmpty(t, drawable(f.title, text), "tier %s stand-in has no glyphs", tier)
	}
	assert.Contains(t, drawable(f.bold, coupleText), "♥")
	assert.Empty(t, fallbackText("🙃"))
}

func TestFileName(t *testing.T) {
	ts := time.UnixMilli(1700000000123)
	assert.Equal(t, "quiz-results-1700000000123.png", FileName(ts))
}

func TestExport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	ts := time.UnixMilli(1700000000123)
	e := NewExporter(dir, WithClock(func() time.Time { return ts }))

	path, err := e.Export(context.Background(), testCard())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "quiz-results-1700000000123.png"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, Width*Scale, img.Bounds().Dx())
}

func TestExport_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewExporter(dir).Export(ctx, testCard())
	require.ErrorIs(t, err, context.Canceled)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestExport_RenderError(t *testing.T) {
	_, err := NewExporter(t.TempDir()).Export(context.Background(), Card{})
	assert.ErrorIs(t, err, ErrEmptyCard)
}
