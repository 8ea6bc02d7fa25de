// Package logo renders the static logo: parallel sine-wave strokes sharing
// phase and wave length, stacked at fixed vertical offsets.
package logo

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"wavicon/icon"
)

var ErrInvalidConfig = errors.New("invalid logo config")

const DefaultPath = "coral.png"

type Config struct {
	Size       int
	Strokes    int
	BaseOffset int
	Spacing    int
	Height     int // wave height in pixels
	Width      int // stroke width in pixels
	Background color.RGBA
	Stroke     color.RGBA
}

func Default() Config {
	return Config{
		Size:       32,
		Strokes:    3,
		BaseOffset: 8,
		Spacing:    8,
		Height:     4,
		Width:      3,
		Background: color.RGBA{},
		Stroke:     color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

func (c Config) Validate() error {
	switch {
	case c.Size <= 0:
		return fmt.Errorf("%w: size must be positive, got %d", ErrInvalidConfig, c.Size)
	case c.Strokes <= 0:
		return fmt.Errorf("%w: stroke count must be positive, got %d", ErrInvalidConfig, c.Strokes)
	case c.Width <= 0:
		return fmt.Errorf("%w: stroke width must be positive, got %d", ErrInvalidConfig, c.Width)
	case c.Spacing < 0:
		return fmt.Errorf("%w: spacing must not be negative, got %d", ErrInvalidConfig, c.Spacing)
	}
	return nil
}

// Offset is the baseline row of stroke i.
func (c Config) Offset(i int) int {
	return c.BaseOffset + i*c.Spacing
}

// Points samples stroke i once per column. Every stroke is the same curve
// translated vertically by its offset.
func (c Config) Points(i int) []image.Point {
	offset := float64(c.Offset(i))
	pts := make([]image.Point, c.Size)
	for x := 0; x < c.Size; x++ {
		y := offset + float64(c.Height)*math.Sin(2*math.Pi*float64(x)/float64(c.Size))
		pts[x] = image.Pt(x, int(math.Round(y)))
	}
	return pts
}

func (c Config) Render() *image.RGBA {
	img := icon.New(c.Size, c.Background)
	for i := 0; i < c.Strokes; i++ {
		c.drawPolyline(img, c.Points(i))
	}
	return img
}

// drawPolyline strokes pts through pixel centres with round joins and caps.
func (c Config) drawPolyline(img *image.RGBA, pts []image.Point) {
	if len(pts) == 0 {
		return
	}
	scanner := rasterx.NewScannerGV(c.Size, c.Size, img, img.Bounds())
	dasher := rasterx.NewDasher(c.Size, c.Size, scanner)
	dasher.SetColor(c.Stroke)
	width := fixed.Int26_6(c.Width * 64)
	dasher.SetStroke(width, 4*width, rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.Round, nil, 0)

	center := func(p image.Point) fixed.Point26_6 {
		return rasterx.ToFixedP(float64(p.X)+0.5, float64(p.Y)+0.5)
	}
	dasher.Start(center(pts[0]))
	for _, p := range pts[1:] {
		dasher.Line(center(p))
	}
	dasher.Stop(false)
	dasher.Draw()
}

// Write renders the logo and saves it to path.
func (c Config) Write(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return icon.Save(path, c.Render())
}
