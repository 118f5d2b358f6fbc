package screens

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/wetlandworld/frogquiz/internal/ui"
)

// AppInfoScreen shows the credits
type AppInfoScreen struct {
	base
	env *Env

	title      *widget.Label
	credits    *widget.Label
	backButton *widget.Button
}

// NewAppInfoScreen builds the credits screen
func NewAppInfoScreen(name string, env *Env) (*AppInfoScreen, error) {
	if err := env.validate(); err != nil {
		return nil, err
	}

	s := &AppInfoScreen{
		base: base{name: name},
		env:  env,
	}

	s.title = newHeading(env.text(ui.KeyAppInfo))
	s.credits = widget.NewLabel(env.text(ui.KeyCredits))
	s.credits.Alignment = fyne.TextAlignCenter
	s.credits.Wrapping = fyne.TextWrapWord
	s.backButton = newBackButton(env)

	s.content = container.NewBorder(s.title, container.NewCenter(touchable(env, s.backButton, ui.BackButtonWidth)), nil, nil,
		container.NewCenter(s.credits))
	return s, nil
}

// Credits returns the credits text on screen
func (s *AppInfoScreen) Credits() string {
	return s.credits.Text
}

// RefreshTexts redraws texts after a language change
func (s *AppInfoScreen) RefreshTexts() {
	s.title.SetText(s.env.text(ui.KeyAppInfo))
	s.credits.SetText(s.env.text(ui.KeyCredits))
	s.backButton.SetText(ui.IconBack + " " + s.env.text(ui.KeyBack))
}

var _ ui.View = (*AppInfoScreen)(nil)
