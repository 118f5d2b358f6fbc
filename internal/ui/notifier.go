package ui

import (
	"errors"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/wetlandworld/frogquiz/internal/logging"
	"github.com/wetlandworld/frogquiz/internal/screen"
)

// ErrPlaybackFailed marks errors from opening a call video
var ErrPlaybackFailed = errors.New("playback failed")

// Notifier shows short messages in a bar above the screens and hides them
// after a delay. Show and NotifyError must be called from the UI thread.
type Notifier struct {
	localization *Localization
	logger       *slog.Logger

	label    *widget.Label
	bar      *fyne.Container
	autoHide time.Duration
	timer    *time.Timer
	seq      int
}

// NewNotifier creates a hidden notification bar. A zero autoHide keeps
// messages until Hide is called.
func NewNotifier(localization *Localization, autoHide time.Duration, logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = logging.NewNop()
	}

	n := &Notifier{
		localization: localization,
		logger:       logger,
		autoHide:     autoHide,
	}

	n.label = widget.NewLabel("")
	n.label.Alignment = fyne.TextAlignCenter
	n.label.Wrapping = fyne.TextWrapWord

	closeBtn := widget.NewButton(IconClose, n.Hide)
	closeBtn.Importance = widget.LowImportance

	n.bar = container.NewBorder(nil, nil, widget.NewLabel(IconError), closeBtn, n.label)
	n.bar.Hide()
	return n
}

// Container returns the notification bar
func (n *Notifier) Container() fyne.CanvasObject {
	return n.bar
}

// Show displays message and restarts the auto-hide timer
func (n *Notifier) Show(message string) {
	n.label.SetText(message)
	n.bar.Show()
	n.bar.Refresh()

	if n.timer != nil {
		n.timer.Stop()
	}
	n.seq++
	if n.autoHide <= 0 {
		return
	}

	seq := n.seq
	n.timer = time.AfterFunc(n.autoHide, func() {
		fyne.Do(func() {
			if seq == n.seq {
				n.Hide()
			}
		})
	})
}

// Hide hides the notification bar
func (n *Notifier) Hide() {
	n.bar.Hide()
}

// Visible reports whether a message is shown
func (n *Notifier) Visible() bool {
	return n.bar.Visible()
}

// Message returns the last message shown
func (n *Notifier) Message() string {
	return n.label.Text
}

// NotifyError shows a localized message for a failed action. The user stays
// where they are; details go to the log.
func (n *Notifier) NotifyError(err error) {
	if err == nil {
		return
	}
	n.logger.Warn("user action failed", "error", err)
	n.Show(n.localization.GetText(MessageKeyForError(err)))
}

// MessageKeyForError picks the localization key describing err
func MessageKeyForError(err error) string {
	var payloadErr *screen.PayloadError
	switch {
	case errors.Is(err, screen.ErrScreenNotRegistered):
		return KeyScreenUnavailable
	case errors.As(err, &payloadErr):
		return KeyNoFrogSelected
	case errors.Is(err, ErrPlaybackFailed):
		return KeyErrorPlayingCall
	default:
		return KeyScreenFailed
	}
}
