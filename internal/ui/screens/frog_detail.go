package screens

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/wetlandworld/frogquiz/internal/model"
	"github.com/wetlandworld/frogquiz/internal/platform"
	"github.com/wetlandworld/frogquiz/internal/ui"
)

// FrogDetailScreen shows one frog: its photo, spectrogram and call. The frog
// arrives as a navigation payload.
type FrogDetailScreen struct {
	base
	env *Env

	frog    model.Frog
	hasFrog bool

	nameLabel    *widget.Label
	speciesLabel *widget.Label
	preview      *canvas.Image
	photo        *canvas.Image
	playButton   *widget.Button
	backButton   *widget.Button
}

// NewFrogDetailScreen builds an empty detail screen
func NewFrogDetailScreen(name string, env *Env) (*FrogDetailScreen, error) {
	if err := env.validate(); err != nil {
		return nil, err
	}

	s := &FrogDetailScreen{
		base: base{name: name},
		env:  env,
	}

	s.nameLabel = newHeading("")
	s.speciesLabel = widget.NewLabel("")
	s.speciesLabel.Alignment = fyne.TextAlignCenter
	s.speciesLabel.TextStyle = fyne.TextStyle{Italic: true}

	s.preview = ui.NewAssetImage(env.AssetsDir, "", fyne.NewSize(ui.PreviewMinHeight*2, ui.PreviewMinHeight))
	s.photo = ui.NewAssetImage(env.AssetsDir, "", fyne.NewSquareSize(ui.PhotoMinHeight))

	s.playButton = widget.NewButton(ui.IconPlay+" "+env.text(ui.KeyPlayCall), s.play)
	s.playButton.Disable()
	s.backButton = newBackButton(env)

	left := container.NewBorder(
		container.NewVBox(s.nameLabel, s.speciesLabel),
		container.NewCenter(touchable(env, s.playButton, ui.PlayButtonWidth)),
		nil, nil,
		s.preview,
	)
	s.content = container.NewBorder(nil, container.NewCenter(touchable(env, s.backButton, ui.BackButtonWidth)), nil, nil,
		container.NewGridWithColumns(2, left, s.photo))
	return s, nil
}

// ReceiveData shows the frog in payload. A model.Frog, a *model.Frog or a
// frog ID are accepted; anything else is rejected and the previous frog stays.
func (s *FrogDetailScreen) ReceiveData(payload any) error {
	var frog model.Frog
	switch p := payload.(type) {
	case model.Frog:
		frog = p
	case *model.Frog:
		if p == nil {
			return fmt.Errorf("%w: nil frog", ErrUnexpectedPayload)
		}
		frog = *p
	case string:
		f, ok := s.env.findFrog(p)
		if !ok {
			return fmt.Errorf("%w: unknown frog %q", ErrUnexpectedPayload, p)
		}
		frog = f
	default:
		return fmt.Errorf("%w: %T", ErrUnexpectedPayload, payload)
	}

	s.show(frog)
	return nil
}

func (s *FrogDetailScreen) show(frog model.Frog) {
	s.frog = frog
	s.hasFrog = true

	s.nameLabel.SetText(frog.DisplayName())
	s.speciesLabel.SetText(frog.Species)
	ui.SetAssetImage(s.preview, s.env.AssetsDir, frog.Preview)
	ui.SetAssetImage(s.photo, s.env.AssetsDir, frog.Photo)
	s.playButton.Enable()
}

// Frog returns the frog on screen
func (s *FrogDetailScreen) Frog() (model.Frog, bool) {
	return s.frog, s.hasFrog
}

// play opens the frog's call video in the system player
func (s *FrogDetailScreen) play() {
	if !s.hasFrog {
		return
	}
	playVideo(s.env, s.frog)
}

// RefreshTexts redraws texts after a language change
func (s *FrogDetailScreen) RefreshTexts() {
	s.playButton.SetText(ui.IconPlay + " " + s.env.text(ui.KeyPlayCall))
	s.backButton.SetText(ui.IconBack + " " + s.env.text(ui.KeyBack))
}

// playVideo resolves the frog's video and hands it to the player
func playVideo(env *Env, frog model.Frog) {
	if env.OpenVideo == nil {
		return
	}
	path := platform.ResolveAssetPath(env.AssetsDir, frog.Video)
	if err := env.OpenVideo(path); err != nil {
		env.notify(fmt.Errorf("%w: %s: %v", ui.ErrPlaybackFailed, frog.ID, err))
	}
}

var _ ui.View = (*FrogDetailScreen)(nil)
