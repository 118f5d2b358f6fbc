package ui

import (
	"errors"
	"fmt"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/wetlandworld/frogquiz/internal/screen"
)

func TestNotifier_ShowHide(t *testing.T) {
	test.NewApp()
	n := NewNotifier(NewLocalization(), 0, nil)

	if n.Visible() {
		t.Error("Notifier should start hidden")
	}

	n.Show("hello")
	if !n.Visible() || n.Message() != "hello" {
		t.Errorf("Expected visible message 'hello', got visible=%v message=%q", n.Visible(), n.Message())
	}

	n.Hide()
	if n.Visible() {
		t.Error("Notifier should hide")
	}
}

func TestNotifier_NotifyError(t *testing.T) {
	test.NewApp()
	l := NewLocalization()
	n := NewNotifier(l, 0, nil)

	n.NotifyError(nil)
	if n.Visible() {
		t.Error("nil errors must not show anything")
	}

	err := &screen.NavigationError{Screen: "ghost", Err: fmt.Errorf("%w: ghost", screen.ErrScreenNotRegistered)}
	n.NotifyError(err)
	if n.Message() != l.GetText(KeyScreenUnavailable) {
		t.Errorf("Unexpected message %q", n.Message())
	}
}

func TestMessageKeyForError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"not registered", fmt.Errorf("%w: x", screen.ErrScreenNotRegistered), KeyScreenUnavailable},
		{"load failed", &screen.NavigationError{Screen: "x", Err: &screen.LoadError{Screen: "x", Err: errors.New("boom")}}, KeyScreenFailed},
		{"payload", &screen.PayloadError{Screen: "frog", Err: screen.ErrPayloadUnsupported}, KeyNoFrogSelected},
		{"playback", fmt.Errorf("%w: ggf", ErrPlaybackFailed), KeyErrorPlayingCall},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MessageKeyForError(tt.err); got != tt.expected {
				t.Errorf("MessageKeyForError() = %s, expected %s", got, tt.expected)
			}
		})
	}
}
