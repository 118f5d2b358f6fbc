package ui

import (
	"sort"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/wetlandworld/frogquiz/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	assetsDirEntry  *widget.Entry
	transitionEntry *widget.Entry
	captionsCheck   *widget.Check
	fullscreenCheck *widget.Check
	languageSelect  *widget.Select
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// settings are stored.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	t := sd.localization.GetText

	sd.assetsDirEntry = widget.NewEntry()
	sd.assetsDirEntry.SetPlaceHolder(config.DefaultAssetsDir)
	browseDirBtn := widget.NewButton(t(KeyBrowse), sd.onBrowseDirectory)
	assetsDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.assetsDirEntry)

	sd.transitionEntry = widget.NewEntry()
	sd.transitionEntry.SetPlaceHolder("0-" + strconv.Itoa(config.MaxTransitionMs))

	sd.captionsCheck = widget.NewCheck(t(KeyShowCaptions), nil)
	sd.fullscreenCheck = widget.NewCheck(t(KeyFullscreen), nil)

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(t(KeyAssetsDirectory)+":"),
		assetsDirRow,

		widget.NewLabel(t(KeyTransition)+":"),
		sd.transitionEntry,

		sd.captionsCheck,
		sd.fullscreenCheck,

		widget.NewSeparator(),
		widget.NewLabel(t(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		t(KeySettings),
		t(KeySave),
		t(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(560, 460))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.assetsDirEntry.SetText(sd.settings.GetAssetsDirectory())
	sd.transitionEntry.SetText(strconv.Itoa(int(sd.settings.GetTransition() / time.Millisecond)))
	sd.captionsCheck.SetChecked(sd.settings.GetShowCaptions())
	sd.fullscreenCheck.SetChecked(sd.settings.GetFullscreenStart())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.assetsDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// apply stores the form values. Invalid numbers leave the old value.
func (sd *SettingsDialog) apply() {
	if dir := sd.assetsDirEntry.Text; dir != "" {
		sd.settings.SetAssetsDirectory(dir)
	}

	if ms, err := strconv.Atoi(sd.transitionEntry.Text); err == nil {
		sd.settings.SetTransition(time.Duration(ms) * time.Millisecond)
	}

	sd.settings.SetShowCaptions(sd.captionsCheck.Checked)
	sd.settings.SetFullscreenStart(sd.fullscreenCheck.Checked)

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
