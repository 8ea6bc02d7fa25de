// Package wave renders the animated wave icon: a horizontal sine wave whose
// phase advances by 360°/Frames per frame, so that playing the frames in
// order loops seamlessly.
package wave

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"wavicon/icon"
)

var ErrInvalidConfig = errors.New("invalid wave config")

const DefaultDir = "wave_icons"

type Config struct {
	Size       int
	Frames     int
	Amplitude  int
	WaveLength int
	Background color.RGBA
	Stroke     color.RGBA
}

func Default() Config {
	return Config{
		Size:       16,
		Frames:     8,
		Amplitude:  5,
		WaveLength: 12,
		Background: color.RGBA{R: 13, G: 71, B: 161, A: 255},
		Stroke:     color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

func (c Config) Validate() error {
	switch {
	case c.Size <= 0:
		return fmt.Errorf("%w: size must be positive, got %d", ErrInvalidConfig, c.Size)
	case c.Frames <= 0:
		return fmt.Errorf("%w: frame count must be positive, got %d", ErrInvalidConfig, c.Frames)
	case c.WaveLength <= 0:
		return fmt.Errorf("%w: wave length must be positive, got %d", ErrInvalidConfig, c.WaveLength)
	case c.Amplitude < 0:
		return fmt.Errorf("%w: amplitude must not be negative, got %d", ErrInvalidConfig, c.Amplitude)
	}
	return nil
}

// Row returns the wave's centre row at column x in frame f. c must pass
// Validate; a zero wave length or frame count has no defined row.
func (c Config) Row(x, f int) int {
	phase := 2*math.Pi*float64(x)/float64(c.WaveLength) + 2*math.Pi*float64(f)/float64(c.Frames)
	return int(math.Round(float64(c.Size/2) + float64(c.Amplitude)*math.Sin(phase)))
}

// Frame renders frame f. Each column gets a three pixel vertical stroke
// centred on Row so the sampled curve has visible thickness. Rows that fall
// off the canvas are skipped. c must pass Validate.
func (c Config) Frame(f int) *image.RGBA {
	img := icon.New(c.Size, c.Background)
	for x := 0; x < c.Size; x++ {
		y := c.Row(x, f)
		for dy := -1; dy <= 1; dy++ {
			if y+dy < 0 || y+dy >= c.Size {
				continue
			}
			img.SetRGBA(x, y+dy, c.Stroke)
		}
	}
	return img
}

// Render returns every frame in order.
func (c Config) Render() []*image.RGBA {
	frames := make([]*image.RGBA, c.Frames)
	for f := range frames {
		frames[f] = c.Frame(f)
	}
	return frames
}

func FrameName(f int) string {
	return fmt.Sprintf("wave_%d.png", f)
}

// Write renders every frame into dir, creating it if needed, and returns
// the written paths in frame order. The first failure aborts the run;
// frames already written are left in place.
func (c Config) Write(dir string) ([]string, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	paths := make([]string, 0, c.Frames)
	for f := 0; f < c.Frames; f++ {
		path := filepath.Join(dir, FrameName(f))
		if err := icon.Save(path, c.Frame(f)); err != nil {
			return paths, fmt.Errorf("frame %d: %w", f, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
