package main

import (
	"flag"
	"image/color"

	"wavicon/icon"
	"wavicon/logo"
	"wavicon/wave"
)

// colorFlag lets a color.RGBA be set from "#rrggbb" or "#rrggbbaa".
type colorFlag struct{ c *color.RGBA }

func (f colorFlag) String() string {
	if f.c == nil {
		return ""
	}
	return icon.Hex(*f.c)
}

func (f colorFlag) Set(s string) error {
	c, err := icon.ParseColor(s)
	if err != nil {
		return err
	}
	*f.c = c
	return nil
}

type logFlags struct {
	enabled bool
	path    string
}

func (l *logFlags) register(fs *flag.FlagSet) {
	fs.BoolVar(&l.enabled, "log", false, "Write a diagnostics log (to -logpath, $WAVICON_LOG_PATH or the OS default)")
	fs.StringVar(&l.path, "logpath", "", "log directory path (implies -log)")
}

type waveFlags struct {
	cfg   wave.Config
	out   string
	gif   string
	delay int
}

func (w *waveFlags) register(fs *flag.FlagSet) {
	w.cfg = wave.Default()
	fs.IntVar(&w.cfg.Size, "size", w.cfg.Size, "Icon size in pixels")
	fs.IntVar(&w.cfg.Frames, "frames", w.cfg.Frames, "Number of animation frames")
	fs.IntVar(&w.cfg.Amplitude, "amplitude", w.cfg.Amplitude, "Wave amplitude in pixels")
	fs.IntVar(&w.cfg.WaveLength, "wavelength", w.cfg.WaveLength, "Wave length in pixels")
	fs.Var(colorFlag{&w.cfg.Background}, "bg", "Background color (#rrggbb or #rrggbbaa)")
	fs.Var(colorFlag{&w.cfg.Stroke}, "fg", "Wave color (#rrggbb or #rrggbbaa)")
	fs.IntVar(&w.delay, "delay", wave.DefaultDelay, "Frame delay in hundredths of a second (GIF and preview)")
}

func (w *waveFlags) registerOutput(fs *flag.FlagSet) {
	fs.StringVar(&w.out, "out", wave.DefaultDir, "Output directory for frame PNGs")
	fs.StringVar(&w.gif, "gif", "", "Also write all frames as a looping GIF to this path")
}

type logoFlags struct {
	cfg logo.Config
	out string
}

func (l *logoFlags) register(fs *flag.FlagSet) {
	l.cfg = logo.Default()
	fs.IntVar(&l.cfg.Size, "size", l.cfg.Size, "Icon size in pixels")
	fs.IntVar(&l.cfg.Strokes, "strokes", l.cfg.Strokes, "Number of wave strokes")
	fs.IntVar(&l.cfg.BaseOffset, "offset", l.cfg.BaseOffset, "Baseline row of the first stroke")
	fs.IntVar(&l.cfg.Spacing, "spacing", l.cfg.Spacing, "Rows between stroke baselines")
	fs.IntVar(&l.cfg.Height, "height", l.cfg.Height, "Wave height in pixels")
	fs.IntVar(&l.cfg.Width, "width", l.cfg.Width, "Stroke width in pixels")
	fs.Var(colorFlag{&l.cfg.Background}, "bg", "Background color (#rrggbb or #rrggbbaa)")
	fs.Var(colorFlag{&l.cfg.Stroke}, "fg", "Stroke color (#rrggbb or #rrggbbaa)")
	fs.StringVar(&l.out, "out", logo.DefaultPath, "Output PNG path")
}
