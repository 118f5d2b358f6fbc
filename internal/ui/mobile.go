package ui

import (
	"fyne.io/fyne/v2"
)

// MobileUI answers layout questions that differ between phone/tablet and
// desktop
type MobileUI struct {
	app fyne.App
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// TileSize returns the minimum size of a home grid tile
func (m *MobileUI) TileSize() fyne.Size {
	if m.IsMobileDevice() {
		return fyne.NewSquareSize(MobileTileMinSize)
	}
	return fyne.NewSquareSize(TileMinSize)
}

// ButtonSize returns a minimum size that keeps buttons touchable
func (m *MobileUI) ButtonSize(width float32) fyne.Size {
	if width < MinTouchTargetSize {
		width = MinTouchTargetSize
	}
	if m.IsMobileDevice() {
		return fyne.NewSize(width, MinTouchTargetSize*1.5)
	}
	return fyne.NewSize(width, MinTouchTargetSize)
}

// ShouldResizeWindow reports whether the app sets its own window size. Mobile
// platforms own the window and handle orientation themselves.
func (m *MobileUI) ShouldResizeWindow() bool {
	return !m.IsMobileDevice()
}

// HomeColumns returns the home grid column count. Phones held upright get
// fewer, larger tiles.
func (m *MobileUI) HomeColumns() int {
	if m.IsMobileDevice() && !m.IsLandscape() {
		return HomeGridColumnsPortrait
	}
	return HomeGridColumns
}

// IsLandscape returns true if device is in landscape orientation
func (m *MobileUI) IsLandscape() bool {
	orientation := fyne.CurrentDevice().Orientation()
	return orientation == fyne.OrientationHorizontalLeft || orientation == fyne.OrientationHorizontalRight
}
