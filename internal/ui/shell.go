package ui

import (
	"log/slog"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"github.com/wetlandworld/frogquiz/internal/config"
	"github.com/wetlandworld/frogquiz/internal/logging"
)

// TextRefresher is implemented by screens that can redraw their texts after
// a language change
type TextRefresher interface {
	RefreshTexts()
}

// Shell owns the window: the notification bar, the screen surface and the
// menu
type Shell struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	surface      *StackSurface
	notifier     *Notifier
	logger       *slog.Logger
}

// NewShell lays out the window content and menu
func NewShell(window fyne.Window, settings *config.Settings, localization *Localization,
	surface *StackSurface, notifier *Notifier, logger *slog.Logger) *Shell {
	if logger == nil {
		logger = logging.NewNop()
	}

	sh := &Shell{
		window:       window,
		settings:     settings,
		localization: localization,
		surface:      surface,
		notifier:     notifier,
		logger:       logger,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	sh.setupUI()
	return sh
}

// setupUI places the notification bar above the screen surface
func (sh *Shell) setupUI() {
	sh.createMenu()

	content := container.NewBorder(
		sh.notifier.Container(), // top
		nil,                     // bottom
		nil,                     // left
		nil,                     // right
		sh.surface.Container(),  // center
	)
	sh.window.SetContent(content)
}

// createMenu creates the application menu
func (sh *Shell) createMenu() {
	settingsItem := fyne.NewMenuItem(sh.localization.GetText(KeySettings), sh.onShowSettings)

	languageMenu := fyne.NewMenu(sh.localization.GetText(KeyLanguage))

	available := sh.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(available))
	for code := range available {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		langCode := code
		langItem := fyne.NewMenuItem(available[code], func() {
			sh.onLanguageChange(langCode)
		})
		langItem.Checked = sh.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	sh.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(sh.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange switches language, stores it and redraws texts
func (sh *Shell) onLanguageChange(langCode string) {
	sh.localization.SetLanguage(langCode)
	sh.settings.SetLanguage(langCode)
	sh.logger.Info("language changed", "lang", sh.localization.GetCurrentLanguage())

	sh.RefreshTexts()
	sh.createMenu()
}

// RefreshTexts updates the title and every loaded screen
func (sh *Shell) RefreshTexts() {
	sh.window.SetTitle(sh.localization.GetText(KeyAppTitle))
	for _, view := range sh.surface.Views() {
		if r, ok := view.(TextRefresher); ok {
			r.RefreshTexts()
		}
	}
}

// onShowSettings shows the settings dialog
func (sh *Shell) onShowSettings() {
	NewSettingsDialog(sh.settings, sh.localization, sh.window, func() {
		sh.localization.SetLanguage(sh.settings.GetLanguage())
		sh.RefreshTexts()
		sh.createMenu()
	}).Show()
}

// Notifier returns the shell's notification bar
func (sh *Shell) Notifier() *Notifier {
	return sh.notifier
}
