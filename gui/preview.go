//go:build gui

package gui

import (
	"errors"
	"image"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
)

// Scale is the on-screen size of one icon pixel.
const Scale = 16

type Options struct {
	Title  string
	Frames []image.Image
	Delay  time.Duration
	Icon   []byte // PNG, optional
}

// Preview opens a fixed-size window that loops over the frames until it is
// closed. It blocks on the fyne event loop.
func Preview(opts Options) error {
	if len(opts.Frames) == 0 {
		return errors.New("no frames to preview")
	}
	if opts.Delay <= 0 {
		return errors.New("frame delay must be positive")
	}

	a := app.NewWithID("io.wavicon.preview")
	if opts.Icon != nil {
		a.SetIcon(fyne.NewStaticResource("coral.png", opts.Icon))
	}

	w := a.NewWindow(opts.Title)
	img := canvas.NewImageFromImage(opts.Frames[0])
	img.FillMode = canvas.ImageFillContain
	img.ScaleMode = canvas.ImageScalePixels
	b := opts.Frames[0].Bounds()
	img.SetMinSize(fyne.NewSize(float32(b.Dx()*Scale), float32(b.Dy()*Scale)))

	w.SetContent(img)
	w.SetFixedSize(true)
	w.SetPadded(false)

	stop := make(chan struct{})
	w.SetOnClosed(func() { close(stop) })
	go animate(img, opts.Frames, opts.Delay, stop)

	w.ShowAndRun()
	return nil
}

func animate(img *canvas.Image, frames []image.Image, delay time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(delay)
	defer ticker.Stop()

	frame := 0
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			frame = (frame + 1) % len(frames)
			next := frames[frame]
			fyne.Do(func() {
				img.Image = next
				img.Refresh()
			})
		}
	}
}
