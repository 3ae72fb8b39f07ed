package main

import (
	"errors"
	"log"

	"voxelview/internal/render"
)

// frameErrors decides which render errors end the loop. A failed frame
// leaves its section dirty, so it is logged once and retried next frame.
type frameErrors struct {
	last   string
	logged int
}

// check returns err only when the loop must stop.
func (f *frameErrors) check(err error) error {
	if err == nil {
		f.last = ""
		return nil
	}
	if errors.Is(err, render.ErrClosed) {
		return err
	}
	if msg := err.Error(); msg != f.last {
		log.Printf("frame failed: %v", err)
		f.last = msg
		f.logged++
	}
	return nil
}
