package screens

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/wetlandworld/frogquiz/internal/ui"
)

// Tile keys for the non-frog home tiles
const (
	tileInstructions = "instructions"
	tileMystery      = "mystery"
)

// HomeScreen is the start screen: a grid of frog tiles with the instructions
// and mystery quiz on either end
type HomeScreen struct {
	base
	env *Env

	prompt     *widget.Label
	grid       *fyne.Container
	tiles      map[string]*widget.Button
	captions   map[string]*widget.Label
	infoButton *widget.Button
	hotZone    *ui.HotZone
	exitTaps   *ui.TapCounter
}

// NewHomeScreen builds the home screen
func NewHomeScreen(name string, env *Env) (*HomeScreen, error) {
	if err := env.validate(); err != nil {
		return nil, err
	}

	h := &HomeScreen{
		base:     base{name: name},
		env:      env,
		tiles:    make(map[string]*widget.Button),
		captions: make(map[string]*widget.Label),
	}

	h.prompt = newHeading(env.text(ui.KeyHomePrompt))

	tileSize := fyne.NewSquareSize(ui.TileMinSize)
	columns := ui.HomeGridColumns
	if env.Mobile != nil {
		tileSize = env.Mobile.TileSize()
		columns = env.Mobile.HomeColumns()
	}

	grid := container.NewGridWithColumns(columns)
	h.grid = grid
	grid.Add(h.newTile(tileInstructions, ui.IconInfo, env.text(ui.KeyInstructionsTile), "", tileSize, func() {
		env.navigate(Instructions)
	}))
	for _, frog := range env.Frogs {
		f := frog
		grid.Add(h.newTile(f.ID, "", f.Name, f.Photo, tileSize, func() {
			env.navigateWithPayload(FrogDetail, f)
		}))
		if !env.ShowCaptions {
			h.captions[f.ID].Hide()
		}
	}
	grid.Add(h.newTile(tileMystery, ui.IconMystery, env.text(ui.KeyMysteryTile), "", tileSize, func() {
		env.navigate(Mystery)
	}))

	h.infoButton = widget.NewButton(env.text(ui.KeyAppInfo), func() {
		env.navigate(AppInfo)
	})

	h.exitTaps = ui.NewTapCounter(ui.ExitTapCount, ui.ExitTapWindow, h.confirmExit)
	h.hotZone = ui.NewHotZone(fyne.NewSquareSize(ui.ExitHotZoneSize), h.exitTaps)

	top := container.NewBorder(nil, nil, h.hotZone, nil, h.prompt)
	h.content = container.NewBorder(top, container.NewCenter(touchable(env, h.infoButton, ui.BackButtonWidth)), nil, nil, grid)
	return h, nil
}

// newTile builds a tappable tile with an optional photo and a caption
func (h *HomeScreen) newTile(key, icon, caption, photo string, size fyne.Size, onTap func()) fyne.CanvasObject {
	btn := widget.NewButton(icon, onTap)
	h.tiles[key] = btn

	lbl := widget.NewLabel(caption)
	lbl.Alignment = fyne.TextAlignCenter
	lbl.Wrapping = fyne.TextWrapWord
	h.captions[key] = lbl

	if photo == "" {
		return container.NewStack(btn, container.NewCenter(lbl))
	}
	img := ui.NewAssetImage(h.env.AssetsDir, photo, size)
	return container.NewStack(btn, container.NewBorder(nil, lbl, nil, nil, img))
}

// confirmExit asks before quitting. Without a window the app quits directly.
func (h *HomeScreen) confirmExit() {
	if h.env.Quit == nil {
		return
	}
	if h.env.Window == nil {
		h.env.Quit()
		return
	}

	d := dialog.NewConfirm(h.env.text(ui.KeyExitTitle), h.env.text(ui.KeyExitConfirm), func(ok bool) {
		if ok {
			h.env.Quit()
		}
	}, h.env.Window)
	d.SetConfirmText(h.env.text(ui.KeyYes))
	d.SetDismissText(h.env.text(ui.KeyNo))
	d.Show()
}

// Tile returns the button behind a tile: a frog ID, "instructions" or
// "mystery"
func (h *HomeScreen) Tile(key string) (*widget.Button, bool) {
	btn, ok := h.tiles[key]
	return btn, ok
}

// RefreshTexts redraws texts after a language change
func (h *HomeScreen) RefreshTexts() {
	h.prompt.SetText(h.env.text(ui.KeyHomePrompt))
	h.captions[tileInstructions].SetText(h.env.text(ui.KeyInstructionsTile))
	h.captions[tileMystery].SetText(h.env.text(ui.KeyMysteryTile))
	h.infoButton.SetText(h.env.text(ui.KeyAppInfo))
}

var _ ui.View = (*HomeScreen)(nil)
