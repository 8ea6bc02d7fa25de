package wave

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"os"
)

// DefaultDelay is the per-frame GIF delay in hundredths of a second.
const DefaultDelay = 12

// GIF assembles all frames into a looping animation. Frames only ever hold
// the background and stroke colours, so the palette has exactly two entries.
func (c Config) GIF(delay int) (*gif.GIF, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if delay < 0 {
		return nil, fmt.Errorf("%w: delay must not be negative, got %d", ErrInvalidConfig, delay)
	}

	palette := color.Palette{c.Background, c.Stroke}
	anim := &gif.GIF{LoopCount: 0}
	for f := 0; f < c.Frames; f++ {
		src := c.Frame(f)
		img := image.NewPaletted(src.Bounds(), palette)
		for y := 0; y < c.Size; y++ {
			for x := 0; x < c.Size; x++ {
				if src.RGBAAt(x, y) == c.Stroke {
					img.SetColorIndex(x, y, 1)
				}
			}
		}
		anim.Image = append(anim.Image, img)
		anim.Delay = append(anim.Delay, delay)
	}
	return anim, nil
}

// WriteGIF writes the looping animation to path.
func (c Config) WriteGIF(path string, delay int) error {
	anim, err := c.GIF(delay)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := gif.EncodeAll(f, anim); err != nil {
		f.Close()
		return fmt.Errorf("encoding gif: %w", err)
	}
	return f.Close()
}
