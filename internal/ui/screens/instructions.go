package screens

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/wetlandworld/frogquiz/internal/ui"
)

// ExampleSpectrogram is the annotated spectrogram shown on the instructions
// screen
const ExampleSpectrogram = "assets/example.png"

// InstructionsScreen explains how to read a spectrogram
type InstructionsScreen struct {
	base
	env *Env

	title      *widget.Label
	frequency  *widget.RichText
	amplitude  *widget.RichText
	greenBox   *widget.RichText
	yellowBox  *widget.RichText
	backButton *widget.Button
}

// NewInstructionsScreen builds the instructions screen
func NewInstructionsScreen(name string, env *Env) (*InstructionsScreen, error) {
	if err := env.validate(); err != nil {
		return nil, err
	}

	s := &InstructionsScreen{
		base: base{name: name},
		env:  env,
	}

	s.title = newHeading("")
	s.frequency = widget.NewRichText()
	s.amplitude = widget.NewRichText()
	s.greenBox = widget.NewRichText()
	s.yellowBox = widget.NewRichText()
	for _, rt := range []*widget.RichText{s.frequency, s.amplitude, s.greenBox, s.yellowBox} {
		rt.Wrapping = fyne.TextWrapWord
	}
	s.backButton = newBackButton(env)
	s.RefreshTexts()

	example := ui.NewAssetImage(env.AssetsDir, ExampleSpectrogram, fyne.NewSize(ui.PreviewMinHeight*2, ui.PreviewMinHeight))

	explanations := container.NewGridWithColumns(2, s.frequency, s.amplitude)
	boxes := container.NewGridWithColumns(2, s.greenBox, s.yellowBox)

	s.content = container.NewBorder(
		container.NewVBox(s.title, explanations),
		container.NewVBox(boxes, container.NewCenter(touchable(env, s.backButton, ui.BackButtonWidth))),
		nil, nil,
		example,
	)
	return s, nil
}

// RefreshTexts redraws texts after a language change
func (s *InstructionsScreen) RefreshTexts() {
	s.title.SetText(s.env.text(ui.KeyInstructionsTitle))
	s.frequency.ParseMarkdown(s.env.text(ui.KeyFrequencyText))
	s.amplitude.ParseMarkdown(s.env.text(ui.KeyAmplitudeText))
	s.greenBox.ParseMarkdown(s.env.text(ui.KeyGreenBoxText))
	s.yellowBox.ParseMarkdown(s.env.text(ui.KeyYellowBoxText))
	s.backButton.SetText(ui.IconBack + " " + s.env.text(ui.KeyBack))
}

var _ ui.View = (*InstructionsScreen)(nil)
