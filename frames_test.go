package speedreading

import (
	"bytes"
	"image"
	"image/gif"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGIFDelay(t *testing.T) {
	assert.Equal(t, 20, GIFDelay(300))
	assert.Equal(t, 100, GIFDelay(60))
	assert.Equal(t, 3, GIFDelay(2000))
	assert.Equal(t, 2, GIFDelay(60000))
}

func TestEncodeGIF(t *testing.T) {
	doc, err := FromText("t", "Read this quickly.")
	require.NoError(t, err)
	fr, err := NewFrameRenderer(DefaultFrameOptions())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, fr.EncodeGIF(&buf, doc.Frames(), 300))

	anim, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	assert.Len(t, anim.Image, 3)
	assert.Equal(t, []int{20, 20, 20}, anim.Delay)
	assert.Equal(t, -1, anim.LoopCount)
	assert.Equal(t, image.Rect(0, 0, 480, 120), anim.Image[0].Bounds())
}

func TestEncodeGIFErrors(t *testing.T) {
	fr, err := NewFrameRenderer(DefaultFrameOptions())
	require.NoError(t, err)

	var buf bytes.Buffer
	assert.ErrorIs(t, fr.EncodeGIF(&buf, nil, 300), ErrNoWords)
	assert.ErrorIs(t, fr.EncodeGIF(&buf, []Frame{{Layout: ResolveAnchor("a"), Total: 1}}, 0), ErrRateOutOfRange)
	assert.Zero(t, buf.Len())

	_, err = NewFrameRenderer(FrameOptions{Width: 0, Height: 10, FontSize: 12, DPI: 72})
	assert.Error(t, err)
}

// anchorColumns returns the x range covered by pixels painted in the
// anchor colour.
func anchorColumns(img *image.Paletted) (minX, maxX int, found bool) {
	b := img.Bounds()
	minX, maxX = b.Max.X, b.Min.X
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.At(x, y) != frameAnchor {
				continue
			}
			found = true
			minX = min(minX, x)
			maxX = max(maxX, x)
		}
	}
	return minX, maxX, found
}

func TestFrameAnchorIsCentred(t *testing.T) {
	fr, err := NewFrameRenderer(DefaultFrameOptions())
	require.NoError(t, err)

	for _, tok := range []string{"I", "reading", "extraordinary", "(quoted)"} {
		t.Run(tok, func(t *testing.T) {
			img := fr.Image(Frame{Layout: ResolveAnchor(tok), Total: 1})
			minX, maxX, found := anchorColumns(img)
			require.True(t, found, "no anchor pixels drawn")
			assert.InDelta(t, fr.AnchorX(), (minX+maxX)/2, 6)
			assert.Less(t, maxX-minX, 30)
		})
	}
}

func TestFrameWithoutAnchor(t *testing.T) {
	fr, err := NewFrameRenderer(DefaultFrameOptions())
	require.NoError(t, err)

	img := fr.Image(Frame{Layout: ResolveAnchor("")})
	_, _, found := anchorColumns(img)
	assert.False(t, found)
}
