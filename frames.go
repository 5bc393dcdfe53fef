package speedreading

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
	"time"
	"unicode"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"
)

// FrameOptions sizes the rasterised frames.
type FrameOptions struct {
	Width    int
	Height   int
	FontSize float64 // points
	DPI      float64
	Progress bool // draw "Word n of m" in the bottom corner
}

func DefaultFrameOptions() FrameOptions {
	return FrameOptions{
		Width:    480,
		Height:   120,
		FontSize: 36,
		DPI:      72,
		Progress: true,
	}
}

var (
	frameBG     = color.RGBA{0xff, 0xff, 0xff, 0xff}
	frameFG     = color.RGBA{0x22, 0x22, 0x22, 0xff}
	frameAnchor = color.RGBA{0xe7, 0x4c, 0x3c, 0xff}
	frameMuted  = color.RGBA{0x99, 0x99, 0x99, 0xff}

	// framePalette holds the text colours plus blends towards the
	// background for anti-aliased glyph edges.
	framePalette = func() color.Palette {
		p := color.Palette{frameBG, frameFG, frameAnchor, frameMuted}
		for i := 1; i < 8; i++ {
			p = append(p, blend(frameFG, frameBG, i), blend(frameAnchor, frameBG, i))
		}
		return p
	}()
)

func blend(a, b color.RGBA, eighths int) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8((int(x)*(8-eighths) + int(y)*eighths) / 8)
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), 0xff}
}

// FrameRenderer rasterises frames in Go Mono with the anchor glyph centred
// horizontally, so it sits at the same x in every image.
type FrameRenderer struct {
	opts FrameOptions
	face font.Face
}

func NewFrameRenderer(opts FrameOptions) (*FrameRenderer, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("frame size %dx%d: must be positive", opts.Width, opts.Height)
	}
	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    opts.FontSize,
		DPI:     opts.DPI,
		Hinting: font.HintingFull,
	})
	return &FrameRenderer{opts: opts, face: face}, nil
}

// AnchorX is the x coordinate, in pixels, of the anchor glyph's centre.
func (r *FrameRenderer) AnchorX() int {
	return r.opts.Width / 2
}

// Image draws one frame.
func (r *FrameRenderer) Image(f Frame) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, r.opts.Width, r.opts.Height), framePalette)
	draw.Draw(img, img.Bounds(), image.NewUniform(frameBG), image.Point{}, draw.Src)

	// Guide ticks above and below the anchor.
	tick := r.opts.Height / 8
	for y := 0; y < tick; y++ {
		img.Set(r.AnchorX(), y, frameMuted)
		img.Set(r.AnchorX(), r.opts.Height-1-y, frameMuted)
	}

	if f.Layout.HasAnchor() {
		m := r.face.Metrics()
		baseline := (r.opts.Height + m.Ascent.Ceil() - m.Descent.Ceil()) / 2
		adv, ok := r.face.GlyphAdvance(f.Layout.AnchorRune())
		if !ok {
			adv, _ = r.face.GlyphAdvance(unicode.ReplacementChar)
		}
		left := fixed.I(r.AnchorX()) - adv/2

		d := &font.Drawer{Dst: img, Src: image.NewUniform(frameFG), Face: r.face}
		d.Dot = fixed.Point26_6{X: left - d.MeasureString(f.Layout.Before), Y: fixed.I(baseline)}
		d.DrawString(f.Layout.Before)
		d.Src = image.NewUniform(frameAnchor)
		d.DrawString(f.Layout.Anchor)
		d.Src = image.NewUniform(frameFG)
		d.DrawString(f.Layout.After)
	}

	if r.opts.Progress {
		progress := emptyProgress
		if f.Layout.HasAnchor() {
			progress = f.Progress()
		}
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(frameMuted),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(6, r.opts.Height-6),
		}
		d.DrawString(progress)
	}
	return img
}

// GIFDelay is the per-frame delay, in hundredths of a second, for wpm.
func GIFDelay(wpm int) int {
	return max(int(Interval(wpm)/(10*time.Millisecond)), 2)
}

// EncodeGIF writes frames as an animated GIF that plays once at wpm.
func (r *FrameRenderer) EncodeGIF(w io.Writer, frames []Frame, wpm int) error {
	if len(frames) == 0 {
		return ErrNoWords
	}
	if wpm <= 0 {
		return fmt.Errorf("%w: %d wpm", ErrRateOutOfRange, wpm)
	}

	delay := GIFDelay(wpm)
	anim := &gif.GIF{
		Image:     make([]*image.Paletted, 0, len(frames)),
		Delay:     make([]int, 0, len(frames)),
		LoopCount: -1,
	}
	for _, f := range frames {
		anim.Image = append(anim.Image, r.Image(f))
		anim.Delay = append(anim.Delay, delay)
	}
	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("encode gif: %w", err)
	}
	return nil
}
