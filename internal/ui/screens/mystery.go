package screens

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/wetlandworld/frogquiz/internal/model"
	"github.com/wetlandworld/frogquiz/internal/ui"
)

// MysteryScreen plays a random frog call and asks which frog it is. Every
// visit starts a new round.
type MysteryScreen struct {
	base
	env *Env

	round  *model.QuizRound
	rounds int

	title      *widget.Label
	prompt     *widget.Label
	result     *widget.Label
	preview    *canvas.Image
	playButton *widget.Button
	tryAgain   *widget.Button
	backButton *widget.Button

	answerGrid    *fyne.Container
	answerButtons map[string]*widget.Button
}

// NewMysteryScreen builds the quiz screen. The first round starts when the
// screen is entered.
func NewMysteryScreen(name string, env *Env) (*MysteryScreen, error) {
	if err := env.validate(); err != nil {
		return nil, err
	}
	if len(env.Frogs) == 0 {
		return nil, model.ErrNoFrogs
	}

	s := &MysteryScreen{
		base:          base{name: name},
		env:           env,
		answerButtons: make(map[string]*widget.Button),
	}

	s.title = newHeading(env.text(ui.KeyMysteryTitle))
	s.prompt = widget.NewLabel(env.text(ui.KeyGuessPrompt))
	s.prompt.TextStyle = fyne.TextStyle{Bold: true}
	s.result = widget.NewLabel("")
	s.result.Alignment = fyne.TextAlignCenter
	s.result.TextStyle = fyne.TextStyle{Bold: true}

	s.preview = ui.NewAssetImage(env.AssetsDir, "", fyne.NewSize(ui.PreviewMinHeight*2, ui.PreviewMinHeight))
	s.playButton = widget.NewButton(ui.IconPlay+" "+env.text(ui.KeyPlayCall), s.play)

	s.tryAgain = widget.NewButton(env.text(ui.KeyTryAgain), s.NewRound)
	s.tryAgain.Importance = widget.HighImportance
	s.tryAgain.Hide()

	s.backButton = newBackButton(env)
	s.answerGrid = container.NewGridWithColumns(ui.AnswerGridColumns)

	call := container.NewBorder(nil, container.NewCenter(touchable(env, s.playButton, ui.PlayButtonWidth)), nil, nil, s.preview)
	quiz := container.NewVBox(s.prompt, s.answerGrid, s.result, s.tryAgain)

	s.content = container.NewBorder(s.title, container.NewCenter(touchable(env, s.backButton, ui.BackButtonWidth)), nil, nil,
		container.NewGridWithColumns(2, call, quiz))
	return s, nil
}

// OnEnter starts a fresh round on every visit
func (s *MysteryScreen) OnEnter() {
	s.NewRound()
}

// NewRound draws a new mystery frog and resets the answer grid
func (s *MysteryScreen) NewRound() {
	round, err := model.NewQuizRound(s.env.Frogs, s.env.Rand)
	if err != nil {
		s.env.notify(err)
		return
	}
	s.round = round
	s.rounds++

	s.result.SetText("")
	s.result.Importance = widget.MediumImportance
	s.tryAgain.Hide()
	ui.SetAssetImage(s.preview, s.env.AssetsDir, round.Answer().Preview)

	s.answerButtons = make(map[string]*widget.Button)
	objects := make([]fyne.CanvasObject, 0, len(round.Options()))
	for _, frog := range round.Options() {
		id := frog.ID
		btn := widget.NewButton(frog.DisplayName(), func() {
			s.Guess(id)
		})
		s.answerButtons[id] = btn
		objects = append(objects, btn)
	}
	s.answerGrid.Objects = objects
	s.answerGrid.Refresh()
}

// Guess answers the current round with a frog ID. Only the first guess of a
// round counts.
func (s *MysteryScreen) Guess(frogID string) {
	if s.round == nil || s.round.Revealed() {
		return
	}
	outcome, err := s.round.Guess(frogID)
	if err != nil {
		s.env.notify(err)
		return
	}
	if s.env.Answered != nil {
		s.env.Answered(Answer{
			RoundID: s.round.ID,
			FrogID:  outcome.Answer.ID,
			Correct: outcome.Correct,
			Elapsed: s.round.Elapsed(),
		})
	}

	for id, btn := range s.answerButtons {
		switch {
		case id == outcome.Answer.ID:
			btn.Importance = widget.HighImportance
		case id == outcome.Selected.ID:
			btn.Importance = widget.WarningImportance
		default:
			btn.Disable()
		}
		btn.Refresh()
	}

	s.showOutcome(outcome)
	s.tryAgain.Show()
}

func (s *MysteryScreen) showOutcome(outcome model.Outcome) {
	if outcome.Correct {
		s.result.Importance = widget.SuccessImportance
		s.result.SetText(fmt.Sprintf(s.env.text(ui.KeyCorrectFormat), outcome.Answer.DisplayName()))
		return
	}
	s.result.Importance = widget.DangerImportance
	s.result.SetText(fmt.Sprintf(s.env.text(ui.KeyWrongFormat), outcome.Answer.DisplayName()))
}

// play opens the mystery frog's call
func (s *MysteryScreen) play() {
	if s.round == nil {
		return
	}
	playVideo(s.env, s.round.Answer())
}

// Round returns the current round, nil before the first visit
func (s *MysteryScreen) Round() *model.QuizRound {
	return s.round
}

// Rounds returns how many rounds were started
func (s *MysteryScreen) Rounds() int {
	return s.rounds
}

// Result returns the result text on screen
func (s *MysteryScreen) Result() string {
	return s.result.Text
}

// RefreshTexts redraws texts after a language change
func (s *MysteryScreen) RefreshTexts() {
	s.title.SetText(s.env.text(ui.KeyMysteryTitle))
	s.prompt.SetText(s.env.text(ui.KeyGuessPrompt))
	s.playButton.SetText(ui.IconPlay + " " + s.env.text(ui.KeyPlayCall))
	s.tryAgain.SetText(s.env.text(ui.KeyTryAgain))
	s.backButton.SetText(ui.IconBack + " " + s.env.text(ui.KeyBack))
	if s.round != nil {
		if outcome, ok := s.round.Outcome(); ok {
			s.showOutcome(outcome)
		}
	}
}

var (
	_ ui.View      = (*MysteryScreen)(nil)
	_ ui.Enterable = (*MysteryScreen)(nil)
)
