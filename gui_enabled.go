//go:build gui

package main

import (
	"image"
	"runtime"
	"time"

	"wavicon/gui"
	"wavicon/icon"
	"wavicon/logo"
)

// Fyne needs the main OS thread.
func init() {
	runtime.LockOSThread()
}

func runGUIPreview(frames []*image.RGBA, delay time.Duration) error {
	imgs := make([]image.Image, len(frames))
	for i, f := range frames {
		imgs[i] = f
	}
	appIcon, err := icon.EncodePNG(logo.Default().Render())
	if err != nil {
		return err
	}
	return gui.Preview(gui.Options{
		Title:  "wavicon",
		Frames: imgs,
		Delay:  delay,
		Icon:   appIcon,
	})
}
