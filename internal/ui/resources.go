package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"github.com/wetlandworld/frogquiz/internal/platform"
)

// AppIcon is the window icon, relative to the assets directory
const AppIcon = "assets/Icon.png"

// LoadIconResource loads the app icon from the assets directory
func LoadIconResource(assetsDir string) (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(platform.ResolveAssetPath(assetsDir, AppIcon))
}

// NewAssetImage creates an image for an asset path, scaled to fit
func NewAssetImage(assetsDir, asset string, min fyne.Size) *canvas.Image {
	img := canvas.NewImageFromFile(platform.ResolveAssetPath(assetsDir, asset))
	img.FillMode = canvas.ImageFillContain
	img.SetMinSize(min)
	return img
}

// SetAssetImage points img at another asset and redraws it
func SetAssetImage(img *canvas.Image, assetsDir, asset string) {
	img.File = platform.ResolveAssetPath(assetsDir, asset)
	img.Resource = nil
	img.Refresh()
}
