//go:build !gui

package main

import (
	"errors"
	"image"
	"time"
)

func runGUIPreview(_ []*image.RGBA, _ time.Duration) error {
	return errors.New("wavicon: built without GUI support (rebuild with -tags gui)")
}
