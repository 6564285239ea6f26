package ui

import "gocv.io/x/gocv"

// Window shows annotated images until a key is pressed.
type Window struct {
	window *gocv.Window
}

// NewWindow creates a new preview window
func NewWindow(name string) *Window {
	window := gocv.NewWindow(name)
	window.ResizeWindow(1024, 768)
	return &Window{window: window}
}

// Show displays an image and blocks until a key is pressed or the delay
// expires. delayMs <= 0 waits forever. It returns the key code or -1.
func (w *Window) Show(img *gocv.Mat, delayMs int) int {
	w.window.IMShow(*img)
	return w.window.WaitKey(delayMs)
}

// Close closes the window
func (w *Window) Close() error {
	if w.window != nil {
		return w.window.Close()
	}
	return nil
}
