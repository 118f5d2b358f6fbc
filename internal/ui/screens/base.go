package screens

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/wetlandworld/frogquiz/internal/ui"
)

// base holds what every screen shares
type base struct {
	name    string
	content fyne.CanvasObject
}

// Name returns the registry name the screen was built for
func (b *base) Name() string {
	return b.name
}

// Content returns the screen's root canvas object
func (b *base) Content() fyne.CanvasObject {
	return b.content
}

func newBackButton(env *Env) *widget.Button {
	btn := widget.NewButton(ui.IconBack+" "+env.text(ui.KeyBack), func() {
		env.navigate(Home)
	})
	btn.Importance = widget.HighImportance
	return btn
}

// touchable sizes btn to a touch friendly minimum for the current device
func touchable(env *Env, btn *widget.Button, width float32) fyne.CanvasObject {
	if env.Mobile == nil {
		return btn
	}
	return container.NewGridWrap(env.Mobile.ButtonSize(width), btn)
}

func newHeading(text string) *widget.Label {
	lbl := widget.NewLabel(text)
	lbl.Alignment = fyne.TextAlignCenter
	lbl.TextStyle = fyne.TextStyle{Bold: true}
	lbl.Wrapping = fyne.TextWrapWord
	lbl.SizeName = theme.SizeNameHeadingText
	return lbl
}
