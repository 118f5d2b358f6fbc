package config

import (
	"time"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyAssetsDir       = "assets_directory"
	KeyRegistryPath    = "screen_registry_path"
	KeyStartScreen     = "start_screen"
	KeyLanguage        = "app_language"
	KeyTransitionMs    = "transition_ms"
	KeyShowCaptions    = "show_captions"
	KeyFullscreenStart = "fullscreen_start"
)

// Default values
const (
	DefaultAssetsDir       = "."
	DefaultRegistryPath    = ""
	DefaultStartScreen     = "home"
	DefaultLanguage        = "system"
	DefaultTransitionMs    = 300
	DefaultShowCaptions    = true
	DefaultFullscreenStart = false

	MaxTransitionMs = 2000
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetAssetsDirectory returns the directory asset paths are resolved against
func (s *Settings) GetAssetsDirectory() string {
	return s.app.Preferences().StringWithFallback(KeyAssetsDir, DefaultAssetsDir)
}

// SetAssetsDirectory sets the assets directory
func (s *Settings) SetAssetsDirectory(dir string) {
	if dir == "" {
		dir = DefaultAssetsDir
	}
	s.app.Preferences().SetString(KeyAssetsDir, dir)
}

// GetRegistryPath returns the screen registry override path. Empty means the
// embedded registry is used.
func (s *Settings) GetRegistryPath() string {
	return s.app.Preferences().StringWithFallback(KeyRegistryPath, DefaultRegistryPath)
}

// SetRegistryPath sets the screen registry override path
func (s *Settings) SetRegistryPath(path string) {
	s.app.Preferences().SetString(KeyRegistryPath, path)
}

// GetStartScreen returns the screen shown at launch
func (s *Settings) GetStartScreen() string {
	name := s.app.Preferences().String(KeyStartScreen)
	if name == "" {
		s.SetStartScreen(DefaultStartScreen)
		return DefaultStartScreen
	}
	return name
}

// SetStartScreen sets the screen shown at launch
func (s *Settings) SetStartScreen(name string) {
	if name == "" {
		name = DefaultStartScreen
	}
	s.app.Preferences().SetString(KeyStartScreen, name)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetTransition returns the screen transition duration. Zero disables it.
func (s *Settings) GetTransition() time.Duration {
	ms := s.app.Preferences().IntWithFallback(KeyTransitionMs, DefaultTransitionMs)
	return time.Duration(ms) * time.Millisecond
}

// SetTransition sets the screen transition duration
func (s *Settings) SetTransition(d time.Duration) {
	ms := int(d / time.Millisecond)
	if ms < 0 {
		ms = 0
	}
	if ms > MaxTransitionMs {
		ms = MaxTransitionMs
	}
	s.app.Preferences().SetInt(KeyTransitionMs, ms)
}

// GetShowCaptions returns whether frog names are shown under home tiles
func (s *Settings) GetShowCaptions() bool {
	return s.app.Preferences().BoolWithFallback(KeyShowCaptions, DefaultShowCaptions)
}

// SetShowCaptions sets whether frog names are shown under home tiles
func (s *Settings) SetShowCaptions(show bool) {
	s.app.Preferences().SetBool(KeyShowCaptions, show)
}

// GetFullscreenStart returns whether the window starts fullscreen
func (s *Settings) GetFullscreenStart() bool {
	return s.app.Preferences().BoolWithFallback(KeyFullscreenStart, DefaultFullscreenStart)
}

// SetFullscreenStart sets whether the window starts fullscreen
func (s *Settings) SetFullscreenStart(fullscreen bool) {
	s.app.Preferences().SetBool(KeyFullscreenStart, fullscreen)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"pt":     "Português",
	}
}
