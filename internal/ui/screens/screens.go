package screens

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"fyne.io/fyne/v2"

	"github.com/wetlandworld/frogquiz/internal/model"
	"github.com/wetlandworld/frogquiz/internal/screen"
	"github.com/wetlandworld/frogquiz/internal/ui"
)

// Package is the registry package name of every screen in this package
const Package = "screens"

// Screen names used by the default registry
const (
	Home         = "home"
	FrogDetail   = "frog"
	Instructions = "instructions"
	Mystery      = "mystery"
	AppInfo      = "app_info"
)

// Constructor names
const (
	CtorHome         = "NewHomeScreen"
	CtorFrogDetail   = "NewFrogDetailScreen"
	CtorInstructions = "NewInstructionsScreen"
	CtorMystery      = "NewMysteryScreen"
	CtorAppInfo      = "NewAppInfoScreen"
)

var (
	// ErrNoNavigator is reported when a screen tries to navigate before the
	// navigator is bound
	ErrNoNavigator = errors.New("navigator not bound")
	// ErrUnexpectedPayload is returned for payloads a screen cannot show
	ErrUnexpectedPayload = errors.New("unexpected payload")

	errMissingLocalization = errors.New("screen environment has no localization")
)

// Navigator is the part of screen.Navigator the screens use
type Navigator interface {
	Navigate(name string) error
	NavigateWithPayload(name string, payload any) error
}

// Env carries what screens need at construction time. Navigator may be set
// after Register, as long as it is set before the first screen is loaded.
type Env struct {
	Navigator    Navigator
	Localization *ui.Localization
	Mobile       *ui.MobileUI
	Window       fyne.Window

	Frogs        []model.Frog
	AssetsDir    string
	ShowCaptions bool
	Rand         *rand.Rand

	// Notify shows a failed action to the user
	Notify func(error)
	// OpenVideo plays a call video from a resolved path
	OpenVideo func(path string) error
	// Quit closes the app
	Quit func()
	// Answered is told about the first answer of each mystery round
	Answered func(Answer)
}

// Answer describes the first answer given in a mystery round
type Answer struct {
	RoundID string
	FrogID  string
	Correct bool
	Elapsed time.Duration
}

func (e *Env) text(key string) string {
	return e.Localization.GetText(key)
}

func (e *Env) notify(err error) {
	if err != nil && e.Notify != nil {
		e.Notify(err)
	}
}

func (e *Env) navigate(name string) {
	if e.Navigator == nil {
		e.notify(fmt.Errorf("%w: %s", ErrNoNavigator, name))
		return
	}
	e.notify(e.Navigator.Navigate(name))
}

func (e *Env) navigateWithPayload(name string, payload any) {
	if e.Navigator == nil {
		e.notify(fmt.Errorf("%w: %s", ErrNoNavigator, name))
		return
	}
	e.notify(e.Navigator.NavigateWithPayload(name, payload))
}

func (e *Env) findFrog(id string) (model.Frog, bool) {
	for _, f := range e.Frogs {
		if f.ID == id {
			return f, true
		}
	}
	return model.Frog{}, false
}

func (e *Env) validate() error {
	if e == nil || e.Localization == nil {
		return errMissingLocalization
	}
	return nil
}

// Ref returns the catalog reference for a constructor in this package
func Ref(constructor string) screen.Reference {
	return screen.Reference{Package: Package, Constructor: constructor}
}

// DefaultEntries returns the registry entries for the built-in screens
func DefaultEntries() []screen.Entry {
	return []screen.Entry{
		{Name: Home, Reference: Ref(CtorHome)},
		{Name: FrogDetail, Reference: Ref(CtorFrogDetail)},
		{Name: Instructions, Reference: Ref(CtorInstructions)},
		{Name: Mystery, Reference: Ref(CtorMystery)},
		{Name: AppInfo, Reference: Ref(CtorAppInfo)},
	}
}

// Register adds the constructors of every screen in this package to catalog
func Register(catalog *screen.Catalog, env *Env) error {
	ctors := map[string]screen.Constructor{
		CtorHome: func(name string) (screen.Screen, error) {
			return NewHomeScreen(name, env)
		},
		CtorFrogDetail: func(name string) (screen.Screen, error) {
			return NewFrogDetailScreen(name, env)
		},
		CtorInstructions: func(name string) (screen.Screen, error) {
			return NewInstructionsScreen(name, env)
		},
		CtorMystery: func(name string) (screen.Screen, error) {
			return NewMysteryScreen(name, env)
		},
		CtorAppInfo: func(name string) (screen.Screen, error) {
			return NewAppInfoScreen(name, env)
		},
	}

	for ctorName, ctor := range ctors {
		if err := catalog.Register(Ref(ctorName), ctor); err != nil {
			return fmt.Errorf("failed to register %s: %w", ctorName, err)
		}
	}
	return nil
}
