package ui

import (
	"errors"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/wetlandworld/frogquiz/internal/screen"
)

type fakeView struct {
	name    string
	content fyne.CanvasObject
	events  *[]string
}

func newFakeView(name string, events *[]string) *fakeView {
	return &fakeView{name: name, content: widget.NewLabel(name), events: events}
}

func (v *fakeView) Name() string { return v.name }
func (v *fakeView) Content() fyne.CanvasObject { return v.content }
func (v *fakeView) OnEnter() { *v.events = append(*v.events, "enter:"+v.name) }
func (v *fakeView) OnLeave() { *v.events = append(*v.events, "leave:"+v.name) }

type bareScreen struct{}

func (bareScreen) Name() string { return "bare" }

func TestStackSurface_Attach(t *testing.T) {
	test.NewApp()
	var events []string
	surface := NewStackSurface(0, nil)

	home := newFakeView("home", &events)
	if err := surface.Attach("home", home); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	if !surface.IsAttached("home") {
		t.Error("home should be attached")
	}
	if home.content.Visible() {
		t.Error("attached screens start hidden")
	}

	if err := surface.Attach("home", home); !errors.Is(err, ErrAlreadyAttached) {
		t.Errorf("Expected ErrAlreadyAttached, got %v", err)
	}
	if err := surface.Attach("bare", bareScreen{}); !errors.Is(err, ErrNotView) {
		t.Errorf("Expected ErrNotView, got %v", err)
	}
	if surface.IsAttached("bare") {
		t.Error("failed attach must not register the screen")
	}
}

func TestStackSurface_SetActive(t *testing.T) {
	test.NewApp()
	var events []string
	surface := NewStackSurface(0, nil)

	home := newFakeView("home", &events)
	detail := newFakeView("frog", &events)
	_ = surface.Attach("home", home)
	_ = surface.Attach("frog", detail)

	surface.SetActive("home")
	surface.SetActive("frog")

	if surface.Active() != "frog" {
		t.Errorf("Expected frog active, got %q", surface.Active())
	}
	if home.content.Visible() || !detail.content.Visible() {
		t.Error("Exactly the active screen should be visible")
	}

	expected := []string{"enter:home", "leave:home", "enter:frog"}
	if len(events) != len(expected) {
		t.Fatalf("Expected events %v, got %v", expected, events)
	}
	for i := range expected {
		if events[i] != expected[i] {
			t.Errorf("Event %d: expected %s, got %s", i, expected[i], events[i])
		}
	}

	surface.SetActive("frog")
	if len(events) != len(expected) {
		t.Error("Re-activating the active screen should not run hooks")
	}

	surface.SetActive("missing")
	if surface.Active() != "frog" {
		t.Error("Unknown screens must not change the active screen")
	}
}

func TestStackSurface_Views(t *testing.T) {
	test.NewApp()
	var events []string
	surface := NewStackSurface(0, nil)
	_ = surface.Attach("home", newFakeView("home", &events))
	_ = surface.Attach("mystery", newFakeView("mystery", &events))

	views := surface.Views()
	if len(views) != 2 || views[0].Name() != "home" || views[1].Name() != "mystery" {
		t.Errorf("Expected views in attach order, got %v", views)
	}
}

func TestStackSurface_WithNavigator(t *testing.T) {
	test.NewApp()
	var events []string
	surface := NewStackSurface(0, nil)

	registry := screen.NewRegistry(
		screen.Entry{Name: "home", Reference: screen.Reference{Package: "screens", Constructor: "NewHomeScreen"}},
		screen.Entry{Name: "broken", Reference: screen.Reference{Package: "screens", Constructor: "NewBrokenScreen"}},
	)
	catalog := screen.NewCatalog()
	catalog.MustRegister(screen.Reference{Package: "screens", Constructor: "NewHomeScreen"},
		func(name string) (screen.Screen, error) { return newFakeView(name, &events), nil })
	catalog.MustRegister(screen.Reference{Package: "screens", Constructor: "NewBrokenScreen"},
		func(name string) (screen.Screen, error) { return bareScreen{}, nil })

	nav := screen.NewNavigator(registry, catalog, surface)

	if err := nav.Navigate("home"); err != nil {
		t.Fatalf("Navigate home failed: %v", err)
	}
	if surface.Active() != "home" {
		t.Errorf("Expected home visible, got %q", surface.Active())
	}

	err := nav.Navigate("broken")
	var navErr *screen.NavigationError
	if !errors.As(err, &navErr) {
		t.Fatalf("Expected NavigationError, got %v", err)
	}
	if !errors.Is(err, ErrNotView) {
		t.Errorf("Expected cause ErrNotView, got %v", err)
	}
	if surface.Active() != "home" {
		t.Error("Failed navigation must keep the current screen")
	}
}
