package ui

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"

	"github.com/wetlandworld/frogquiz/internal/logging"
	"github.com/wetlandworld/frogquiz/internal/screen"
)

// View is a screen that renders Fyne content
type View interface {
	screen.Screen
	Content() fyne.CanvasObject
}

// Enterable screens are told when they become the active screen
type Enterable interface {
	OnEnter()
}

// Leavable screens are told when another screen replaces them
type Leavable interface {
	OnLeave()
}

// Surface errors
var (
	ErrAlreadyAttached = errors.New("screen already attached")
	ErrNotView         = errors.New("screen has no fyne content")
)

// StackSurface shows attached screens in a single stack container with only
// the active one visible.
type StackSurface struct {
	stack   *fyne.Container
	overlay *canvas.Rectangle
	root    *fyne.Container

	views      map[string]View
	order      []string
	active     string
	transition time.Duration
	logger     *slog.Logger
}

// NewStackSurface creates an empty surface. A positive transition fades the
// new screen in over that duration.
func NewStackSurface(transition time.Duration, logger *slog.Logger) *StackSurface {
	if logger == nil {
		logger = logging.NewNop()
	}

	overlay := canvas.NewRectangle(color.Transparent)
	overlay.Hide()
	stack := container.NewStack()

	return &StackSurface{
		stack:      stack,
		overlay:    overlay,
		root:       container.NewStack(stack, overlay),
		views:      make(map[string]View),
		transition: transition,
		logger:     logger,
	}
}

// Container returns the canvas object to place in the window
func (s *StackSurface) Container() fyne.CanvasObject {
	return s.root
}

// Attach adds a screen to the stack, hidden
func (s *StackSurface) Attach(name string, scr screen.Screen) error {
	if _, exists := s.views[name]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyAttached, name)
	}
	view, ok := scr.(View)
	if !ok {
		return fmt.Errorf("%w: %s (%T)", ErrNotView, name, scr)
	}
	content := view.Content()
	if content == nil {
		return fmt.Errorf("%w: %s returned nil content", ErrNotView, name)
	}

	content.Hide()
	s.stack.Add(content)
	s.views[name] = view
	s.order = append(s.order, name)
	s.logger.Debug("screen attached", "screen", name)
	return nil
}

// IsAttached reports whether a screen with the given name was attached
func (s *StackSurface) IsAttached(name string) bool {
	_, ok := s.views[name]
	return ok
}

// SetActive shows the named screen and hides the previous one. Leave and
// enter hooks run in that order. Unknown names are ignored.
func (s *StackSurface) SetActive(name string) {
	next, ok := s.views[name]
	if !ok {
		s.logger.Warn("cannot activate unattached screen", "screen", name)
		return
	}
	if name == s.active {
		return
	}

	if prev, ok := s.views[s.active]; ok {
		prev.Content().Hide()
		if l, ok := prev.(Leavable); ok {
			l.OnLeave()
		}
	}

	s.active = name
	next.Content().Show()
	if e, ok := next.(Enterable); ok {
		e.OnEnter()
	}
	s.stack.Refresh()
	s.fade()
}

// Active returns the name of the visible screen, empty before the first
// activation
func (s *StackSurface) Active() string {
	return s.active
}

// Views returns attached screens in attach order
func (s *StackSurface) Views() []View {
	views := make([]View, 0, len(s.order))
	for _, name := range s.order {
		views = append(views, s.views[name])
	}
	return views
}

// fade covers the stack with the background color and animates it away
func (s *StackSurface) fade() {
	if s.transition <= 0 {
		return
	}

	bg := color.NRGBAModel.Convert(theme.Color(theme.ColorNameBackground)).(color.NRGBA)
	s.overlay.FillColor = bg
	s.overlay.Show()
	s.overlay.Refresh()

	anim := fyne.NewAnimation(s.transition, func(done float32) {
		c := bg
		c.A = uint8(float32(bg.A) * (1 - done))
		s.overlay.FillColor = c
		if done >= 1 {
			s.overlay.Hide()
		}
		s.overlay.Refresh()
	})
	anim.Curve = fyne.AnimationEaseOut
	anim.Start()
}
