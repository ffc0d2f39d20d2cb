package confetti

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed+1))
}

func TestGenerate_CountAndRanges(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		ps := Generate(testRand(seed))
		require.Len(t, ps, Count)
		for i, p := range ps {
			assert.Equal(t, i, p.ID)
			assert.GreaterOrEqual(t, p.Left, 0.0)
			assert.Less(t, p.Left, 100.0)
			assert.GreaterOrEqual(t, p.Delay, 0.0)
			assert.Less(t, p.Delay, 0.5)
			assert.GreaterOrEqual(t, p.Duration, 2.0)
			assert.Less(t, p.Duration, 3.0)
			assert.Contains(t, Glyphs, p.Glyph)
		}
	}
}

func TestProgress(t *testing.T) {
	p := Particle{Delay: 0.5, Duration: 2}

	_, ok := p.Progress(100 * time.Millisecond)
	assert.False(t, ok, "before delay")

	got, ok := p.Progress(1500 * time.Millisecond)
	require.True(t, ok)
	assert.InDelta(t, 0.5, got, 1e-9)

	_, ok = p.Progress(2500 * time.Millisecond)
	assert.False(t, ok, "after landing")
}

func TestLanded(t *testing.T) {
	ps := []Particle{{Delay: 0, Duration: 2}, {Delay: 0.4, Duration: 2.9}}
	assert.False(t, Landed(ps, 3*time.Second))
	assert.True(t, Landed(ps, 3300*time.Millisecond))
}

func TestFrame_Dimensions(t *testing.T) {
	ps := Generate(testRand(1))
	g := Frame(ps, 1200*time.Millisecond, 40, 10)

	lines := strings.Split(g.String(), "\n")
	require.Len(t, lines, 10)
	for _, l := range lines {
		assert.Equal(t, 40, lipgloss.Width(l))
	}
	assert.Greater(t, g.Visible(), 0)
}

func TestFrame_NothingAfterLanding(t *testing.T) {
	ps := Generate(testRand(2))
	g := Frame(ps, 4*time.Second, 40, 10)
	assert.Equal(t, 0, g.Visible())
}

func TestOverlay_KeepsWidthAndBlock(t *testing.T) {
	ps := []Particle{
		{Left: 0, Delay: 0, Duration: 2, Glyph: "🎉"},
		{Left: 50, Delay: 0, Duration: 2, Glyph: "💖"},
	}
	g := Frame(ps, time.Second, 20, 5)

	out := g.Overlay("abcd\nef", 8, 1)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 5)
	for _, l := range lines {
		assert.Equal(t, 20, lipgloss.Width(l))
	}
	// Both particles are on row 2 at the halfway point; the one at 50% is
	// hidden by the block.
	assert.Equal(t, "        abcd        ", lines[1])
	assert.Equal(t, "🎉      ef          ", lines[2])
}

func TestOverlay_TallBlockExtendsGrid(t *testing.T) {
	g := Frame(nil, 0, 10, 2)
	out := g.Overlay("a\nb\nc", 0, 1)
	assert.Len(t, strings.Split(out, "\n"), 4)
}
