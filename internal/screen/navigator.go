package screen

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/wetlandworld/frogquiz/internal/logging"
)

// Surface displays attached screens, exactly one of them active at a time.
type Surface interface {
	Attach(name string, s Screen) error
	IsAttached(name string) bool
	SetActive(name string)
}

// Observer is told about load and navigation outcomes. err is nil on success.
type Observer interface {
	ScreenLoaded(name string, err error)
	Navigated(name string, err error)
}

// Navigator loads screens on first use and switches the active one. It is not
// safe for concurrent use; drive it from the UI event thread only.
type Navigator struct {
	registry *Registry
	catalog  *Catalog
	surface  Surface
	logger   *slog.Logger
	observer Observer

	loaded  map[string]Screen
	states  map[string]State
	active  string
	loading string
}

// Option configures a Navigator
type Option func(*Navigator)

// WithLogger sets the logger used for load and navigation events
func WithLogger(logger *slog.Logger) Option {
	return func(n *Navigator) {
		if logger != nil {
			n.logger = logger
		}
	}
}

// WithObserver registers an observer for load and navigation outcomes
func WithObserver(observer Observer) Option {
	return func(n *Navigator) {
		n.observer = observer
	}
}

// NewNavigator creates a navigator with an empty loaded set and no active screen
func NewNavigator(registry *Registry, catalog *Catalog, surface Surface, opts ...Option) *Navigator {
	n := &Navigator{
		registry: registry,
		catalog:  catalog,
		surface:  surface,
		logger:   logging.NewNop(),
		loaded:   make(map[string]Screen),
		states:   make(map[string]State),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Load builds and attaches the named screen unless it is already loaded.
// Unknown names return an error wrapping ErrScreenNotRegistered; construction
// or attach failures return a *LoadError. Neither changes the loaded set.
func (n *Navigator) Load(name string) error {
	if _, ok := n.loaded[name]; ok {
		return nil
	}
	if n.loading != "" {
		return &LoadError{Screen: name, Err: fmt.Errorf("%w: %s is loading", ErrReentrantNavigation, n.loading)}
	}

	entry, ok := n.registry.Lookup(name)
	if !ok {
		n.logger.Warn("screen not found in registry", "screen", name)
		return fmt.Errorf("%w: %s", ErrScreenNotRegistered, name)
	}

	n.logger.Debug("loading screen", "screen", name, "ref", entry.Reference.String())
	n.states[name] = StateLoading
	n.loading = name

	s, err := n.construct(entry)

	n.loading = ""
	if err != nil {
		n.states[name] = StateFailed
		n.logger.Error("failed to load screen", "screen", name, "error", err)
		loadErr := &LoadError{Screen: name, Err: err}
		n.notifyLoaded(name, loadErr)
		return loadErr
	}

	n.loaded[name] = s
	n.states[name] = StateLoaded
	n.logger.Info("screen loaded", "screen", name)
	n.notifyLoaded(name, nil)
	return nil
}

// construct resolves, builds and attaches one screen. Panics raised by a
// constructor are turned into errors so a bad screen cannot take the app down.
func (n *Navigator) construct(entry Entry) (s Screen, err error) {
	defer func() {
		if r := recover(); r != nil {
			s = nil
			err = fmt.Errorf("constructor panicked: %v", r)
		}
	}()

	if n.catalog == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownReference, entry.Reference)
	}
	ctor, err := n.catalog.Resolve(entry.Reference)
	if err != nil {
		return nil, err
	}

	s, err = ctor(entry.Name)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("constructor %s returned no screen", entry.Reference)
	}

	if err := n.surface.Attach(entry.Name, s); err != nil {
		return nil, fmt.Errorf("failed to attach: %w", err)
	}
	return s, nil
}

// Navigate loads the named screen if needed and makes it active. If the
// screen is not attached afterwards the active screen is left as it was and a
// *NavigationError is returned.
func (n *Navigator) Navigate(name string) error {
	if n.loading != "" {
		n.logger.Warn("could not navigate", "screen", name, "loading", n.loading, "error", ErrReentrantNavigation)
		navErr := &NavigationError{Screen: name, Err: ErrReentrantNavigation}
		n.notifyNavigated(name, navErr)
		return navErr
	}

	loadErr := n.Load(name)

	if !n.surface.IsAttached(name) {
		if loadErr == nil {
			loadErr = ErrNotAttached
		}
		n.logger.Warn("could not navigate", "screen", name, "error", loadErr)
		navErr := &NavigationError{Screen: name, Err: loadErr}
		n.notifyNavigated(name, navErr)
		return navErr
	}

	if n.active != name {
		n.logger.Debug("switching screen", "from", n.active, "to", name)
	}
	n.surface.SetActive(name)
	n.active = name
	n.notifyNavigated(name, nil)
	return nil
}

func (n *Navigator) notifyLoaded(name string, err error) {
	if n.observer != nil {
		n.observer.ScreenLoaded(name, err)
	}
}

func (n *Navigator) notifyNavigated(name string, err error) {
	if n.observer != nil {
		n.observer.Navigated(name, err)
	}
}

// NavigateWithPayload navigates to the named screen and then hands payload to
// it. Delivery happens only after the screen is attached and active. When
// delivery fails a *PayloadError is returned, but the screen stays active and
// may still show its previous content.
func (n *Navigator) NavigateWithPayload(name string, payload any) error {
	if err := n.Navigate(name); err != nil {
		return err
	}

	receiver, ok := n.loaded[name].(DataReceiver)
	if !ok {
		n.logger.Warn("screen does not accept payloads", "screen", name)
		return &PayloadError{Screen: name, Err: ErrPayloadUnsupported}
	}
	if err := receiver.ReceiveData(payload); err != nil {
		n.logger.Warn("payload delivery failed", "screen", name, "error", err)
		return &PayloadError{Screen: name, Err: err}
	}
	return nil
}

// Active returns the active screen name. The boolean is false until the first
// successful navigation.
func (n *Navigator) Active() (string, bool) {
	return n.active, n.active != ""
}

// IsLoaded reports whether the named screen is in the loaded set
func (n *Navigator) IsLoaded(name string) bool {
	_, ok := n.loaded[name]
	return ok
}

// Loaded returns the loaded screen names in sorted order
func (n *Navigator) Loaded() []string {
	names := make([]string, 0, len(n.loaded))
	for name := range n.loaded {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// State returns the load state of the named screen
func (n *Navigator) State(name string) State {
	if s, ok := n.states[name]; ok {
		return s
	}
	return StateUnloaded
}

// Screen returns the loaded implementation of the named screen
func (n *Navigator) Screen(name string) (Screen, bool) {
	s, ok := n.loaded[name]
	return s, ok
}
