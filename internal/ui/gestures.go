package ui

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// TapCounter fires its callback when enough taps arrive with no gap longer
// than the window between them
type TapCounter struct {
	required  int
	window    time.Duration
	onTrigger func()
	now       func() time.Time

	taps int
	last time.Time
}

// NewTapCounter creates a counter that calls onTrigger after required taps
func NewTapCounter(required int, window time.Duration, onTrigger func()) *TapCounter {
	if required < 1 {
		required = 1
	}
	return &TapCounter{
		required:  required,
		window:    window,
		onTrigger: onTrigger,
		now:       time.Now,
	}
}

// Tap records one tap and reports whether it completed the sequence
func (tc *TapCounter) Tap() bool {
	now := tc.now()
	if tc.taps > 0 && now.Sub(tc.last) > tc.window {
		tc.taps = 0
	}
	tc.taps++
	tc.last = now

	if tc.taps < tc.required {
		return false
	}

	tc.Reset()
	if tc.onTrigger != nil {
		tc.onTrigger()
	}
	return true
}

// Reset clears the tap count
func (tc *TapCounter) Reset() {
	tc.taps = 0
	tc.last = time.Time{}
}

// Count returns taps recorded in the current sequence
func (tc *TapCounter) Count() int {
	return tc.taps
}

// HotZone is an invisible tappable area that feeds a TapCounter
type HotZone struct {
	widget.BaseWidget
	size    fyne.Size
	counter *TapCounter
}

// NewHotZone creates a hot zone of the given size
func NewHotZone(size fyne.Size, counter *TapCounter) *HotZone {
	h := &HotZone{size: size, counter: counter}
	h.ExtendBaseWidget(h)
	return h
}

// Tapped handles taps and mouse clicks
func (h *HotZone) Tapped(*fyne.PointEvent) {
	if h.counter != nil {
		h.counter.Tap()
	}
}

// MinSize returns the zone size
func (h *HotZone) MinSize() fyne.Size {
	return h.size
}

// CreateRenderer draws nothing visible
func (h *HotZone) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(canvas.NewRectangle(color.Transparent))
}
