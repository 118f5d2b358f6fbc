package screen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSurface records attach and activation calls
type fakeSurface struct {
	attached    map[string]Screen
	active      string
	attachCalls int
	failAttach  map[string]error
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{
		attached:   make(map[string]Screen),
		failAttach: make(map[string]error),
	}
}

func (f *fakeSurface) Attach(name string, s Screen) error {
	if err := f.failAttach[name]; err != nil {
		return err
	}
	f.attachCalls++
	f.attached[name] = s
	return nil
}

func (f *fakeSurface) IsAttached(name string) bool {
	_, ok := f.attached[name]
	return ok
}

func (f *fakeSurface) SetActive(name string) {
	f.active = name
}

type fakeScreen struct {
	name     string
	received []any
	rejectFn func(any) error
}

func (s *fakeScreen) Name() string { return s.name }

type receivingScreen struct {
	fakeScreen
}

func (s *receivingScreen) ReceiveData(payload any) error {
	if s.rejectFn != nil {
		if err := s.rejectFn(payload); err != nil {
			return err
		}
	}
	s.received = append(s.received, payload)
	return nil
}

// countingCtor returns a constructor that counts calls and can be told to fail
type countingCtor struct {
	calls   int
	fail    error
	receive bool
	last    Screen
}

func (c *countingCtor) build(name string) (Screen, error) {
	c.calls++
	if c.fail != nil {
		return nil, c.fail
	}
	if c.receive {
		s := &receivingScreen{fakeScreen{name: name}}
		c.last = s
		return s, nil
	}
	s := &fakeScreen{name: name}
	c.last = s
	return s, nil
}

var (
	refHome   = Reference{Package: "screens", Constructor: "NewHome"}
	refDetail = Reference{Package: "screens", Constructor: "NewDetail"}
)

type fixture struct {
	nav     *Navigator
	surface *fakeSurface
	home    *countingCtor
	detail  *countingCtor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		surface: newFakeSurface(),
		home:    &countingCtor{},
		detail:  &countingCtor{receive: true},
	}

	catalog := NewCatalog()
	require.NoError(t, catalog.Register(refHome, f.home.build))
	require.NoError(t, catalog.Register(refDetail, f.detail.build))

	registry := NewRegistry(
		Entry{Name: "home", Reference: refHome},
		Entry{Name: "detail", Reference: refDetail},
	)

	f.nav = NewNavigator(registry, catalog, f.surface)
	return f
}

func TestNewNavigator_Empty(t *testing.T) {
	f := newFixture(t)

	active, ok := f.nav.Active()
	assert.False(t, ok)
	assert.Empty(t, active)
	assert.Empty(t, f.nav.Loaded())
	assert.Equal(t, StateUnloaded, f.nav.State("home"))
}

func TestLoad_Memoized(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.nav.Load("home"))
	require.NoError(t, f.nav.Load("home"))

	assert.Equal(t, 1, f.home.calls, "constructor must run once")
	assert.Equal(t, 1, f.surface.attachCalls, "surface must see one attach")
	assert.True(t, f.nav.IsLoaded("home"))
	assert.Equal(t, StateLoaded, f.nav.State("home"))

	active, ok := f.nav.Active()
	assert.False(t, ok, "load alone must not activate")
	assert.Empty(t, active)
}

func TestLoad_NotRegistered(t *testing.T) {
	f := newFixture(t)

	err := f.nav.Load("missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrScreenNotRegistered)
	assert.Empty(t, f.nav.Loaded())
	assert.Equal(t, 0, f.surface.attachCalls)
	assert.Equal(t, StateUnloaded, f.nav.State("missing"))
}

func TestLoad_FailureIsRetried(t *testing.T) {
	f := newFixture(t)
	boom := errors.New("widget tree exploded")
	f.home.fail = boom

	err := f.nav.Load("home")
	require.Error(t, err)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "home", loadErr.Screen)
	assert.ErrorIs(t, err, boom)
	assert.False(t, f.nav.IsLoaded("home"))
	assert.Equal(t, StateFailed, f.nav.State("home"))
	assert.Equal(t, 0, f.surface.attachCalls)

	f.home.fail = nil
	require.NoError(t, f.nav.Load("home"))
	assert.True(t, f.nav.IsLoaded("home"))
	assert.Equal(t, 2, f.home.calls)
	assert.Equal(t, StateLoaded, f.nav.State("home"))
}

func TestLoad_AttachFailure(t *testing.T) {
	f := newFixture(t)
	f.surface.failAttach["home"] = errors.New("surface full")

	err := f.nav.Load("home")
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.False(t, f.nav.IsLoaded("home"))

	delete(f.surface.failAttach, "home")
	require.NoError(t, f.nav.Load("home"))
	assert.True(t, f.nav.IsLoaded("home"))
}

func TestLoad_ConstructorPanic(t *testing.T) {
	surface := newFakeSurface()
	catalog := NewCatalog()
	catalog.MustRegister(refHome, func(name string) (Screen, error) {
		panic("nil map")
	})
	nav := NewNavigator(NewRegistry(Entry{Name: "home", Reference: refHome}), catalog, surface)

	err := nav.Load("home")
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, err.Error(), "panicked")
	assert.Equal(t, StateFailed, nav.State("home"))
}

func TestLoad_NilScreen(t *testing.T) {
	surface := newFakeSurface()
	catalog := NewCatalog()
	catalog.MustRegister(refHome, func(name string) (Screen, error) { return nil, nil })
	nav := NewNavigator(NewRegistry(Entry{Name: "home", Reference: refHome}), catalog, surface)

	var loadErr *LoadError
	require.ErrorAs(t, nav.Load("home"), &loadErr)
	assert.False(t, nav.IsLoaded("home"))
}

func TestLoad_UnknownReference(t *testing.T) {
	surface := newFakeSurface()
	registry := NewRegistry(Entry{Name: "ghost", Reference: Reference{Package: "screens", Constructor: "NewGhost"}})
	nav := NewNavigator(registry, NewCatalog(), surface)

	err := nav.Load("ghost")
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.ErrorIs(t, err, ErrUnknownReference)
}

func TestNavigate_HomeThenDetail(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.nav.Navigate("home"))
	active, ok := f.nav.Active()
	require.True(t, ok)
	assert.Equal(t, "home", active)
	assert.Equal(t, []string{"home"}, f.nav.Loaded())

	require.NoError(t, f.nav.Navigate("detail"))
	active, _ = f.nav.Active()
	assert.Equal(t, "detail", active)
	assert.Equal(t, "detail", f.surface.active)
	assert.Equal(t, []string{"detail", "home"}, f.nav.Loaded())
	assert.Equal(t, 1, f.home.calls, "home must not be rebuilt")

	require.NoError(t, f.nav.Navigate("home"))
	assert.Equal(t, 1, f.home.calls)
	assert.Equal(t, 2, f.surface.attachCalls)
}

func TestNavigate_MissingKeepsActive(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.nav.Navigate("home"))

	err := f.nav.Navigate("missing")
	require.Error(t, err)

	var navErr *NavigationError
	require.ErrorAs(t, err, &navErr)
	assert.Equal(t, "missing", navErr.Screen)
	assert.ErrorIs(t, err, ErrScreenNotRegistered)

	active, _ := f.nav.Active()
	assert.Equal(t, "home", active)
	assert.Equal(t, "home", f.surface.active)
}

func TestNavigate_MissingFirstLeavesUnset(t *testing.T) {
	f := newFixture(t)

	err := f.nav.Navigate("missing")
	var navErr *NavigationError
	require.ErrorAs(t, err, &navErr)

	_, ok := f.nav.Active()
	assert.False(t, ok)
	assert.Empty(t, f.surface.active)
}

func TestNavigate_LoadFailureKeepsActive(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.nav.Navigate("home"))
	f.detail.fail = errors.New("no frogs")

	err := f.nav.Navigate("detail")
	var navErr *NavigationError
	require.ErrorAs(t, err, &navErr)
	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)

	active, _ := f.nav.Active()
	assert.Equal(t, "home", active)
}

// Navigation activates a screen exactly when it ends up attached.
func TestNavigate_ActivatesIffAttached(t *testing.T) {
	names := []string{"home", "detail", "missing"}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)
			before, _ := f.nav.Active()

			err := f.nav.Navigate(name)
			after, _ := f.nav.Active()

			if f.surface.IsAttached(name) {
				assert.NoError(t, err)
				assert.Equal(t, name, after)
			} else {
				assert.Error(t, err)
				assert.Equal(t, before, after)
			}
		})
	}
}

func TestNavigateWithPayload_Delivers(t *testing.T) {
	f := newFixture(t)
	payload := map[string]int{"id": 7}

	require.NoError(t, f.nav.NavigateWithPayload("detail", payload))

	active, _ := f.nav.Active()
	assert.Equal(t, "detail", active)

	s, ok := f.detail.last.(*receivingScreen)
	require.True(t, ok)
	require.Len(t, s.received, 1)
	assert.Equal(t, payload, s.received[0])
}

func TestNavigateWithPayload_Unsupported(t *testing.T) {
	f := newFixture(t)

	err := f.nav.NavigateWithPayload("home", "frog")
	var payloadErr *PayloadError
	require.ErrorAs(t, err, &payloadErr)
	assert.ErrorIs(t, err, ErrPayloadUnsupported)

	active, _ := f.nav.Active()
	assert.Equal(t, "home", active, "activation happens before delivery")
}

func TestNavigateWithPayload_Rejected(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.nav.Load("detail"))
	rejected := errors.New("not a frog")
	f.detail.last.(*receivingScreen).rejectFn = func(any) error { return rejected }

	err := f.nav.NavigateWithPayload("detail", 42)
	var payloadErr *PayloadError
	require.ErrorAs(t, err, &payloadErr)
	assert.ErrorIs(t, err, rejected)

	active, _ := f.nav.Active()
	assert.Equal(t, "detail", active)
}

func TestNavigateWithPayload_NavigationFailure(t *testing.T) {
	f := newFixture(t)

	err := f.nav.NavigateWithPayload("missing", 1)
	var navErr *NavigationError
	require.ErrorAs(t, err, &navErr)
	var payloadErr *PayloadError
	assert.False(t, errors.As(err, &payloadErr))
}

func TestNavigate_ReentrantFromConstructor(t *testing.T) {
	surface := newFakeSurface()
	catalog := NewCatalog()
	var nav *Navigator
	var innerErr error

	catalog.MustRegister(refDetail, func(name string) (Screen, error) {
		return &fakeScreen{name: name}, nil
	})
	catalog.MustRegister(refHome, func(name string) (Screen, error) {
		innerErr = nav.Navigate("detail")
		return &fakeScreen{name: name}, nil
	})

	registry := NewRegistry(
		Entry{Name: "home", Reference: refHome},
		Entry{Name: "detail", Reference: refDetail},
	)
	nav = NewNavigator(registry, catalog, surface)

	require.NoError(t, nav.Navigate("home"))
	assert.ErrorIs(t, innerErr, ErrReentrantNavigation)
	assert.False(t, nav.IsLoaded("detail"))

	active, _ := nav.Active()
	assert.Equal(t, "home", active)
}

func TestNavigate_ReentrantIsObserved(t *testing.T) {
	catalog := NewCatalog()
	observer := &recordingObserver{}
	var nav *Navigator

	catalog.MustRegister(refDetail, func(name string) (Screen, error) {
		return &fakeScreen{name: name}, nil
	})
	catalog.MustRegister(refHome, func(name string) (Screen, error) {
		_ = nav.Navigate("detail")
		return &fakeScreen{name: name}, nil
	})

	registry := NewRegistry(
		Entry{Name: "home", Reference: refHome},
		Entry{Name: "detail", Reference: refDetail},
	)
	nav = NewNavigator(registry, catalog, newFakeSurface(), WithObserver(observer))

	require.NoError(t, nav.Navigate("home"))
	require.Equal(t, []string{"detail", "home"}, observer.navigations)
	assert.ErrorIs(t, observer.navErrs[0], ErrReentrantNavigation)
	var navErr *NavigationError
	assert.ErrorAs(t, observer.navErrs[0], &navErr)
	assert.NoError(t, observer.navErrs[1])
}

func TestNavigator_Screen(t *testing.T) {
	f := newFixture(t)

	_, ok := f.nav.Screen("home")
	assert.False(t, ok)

	require.NoError(t, f.nav.Load("home"))
	s, ok := f.nav.Screen("home")
	require.True(t, ok)
	assert.Equal(t, "home", s.Name())
}

type recordingObserver struct {
	loads       []string
	loadErrs    []error
	navigations []string
	navErrs     []error
}

func (o *recordingObserver) ScreenLoaded(name string, err error) {
	o.loads = append(o.loads, name)
	o.loadErrs = append(o.loadErrs, err)
}

func (o *recordingObserver) Navigated(name string, err error) {
	o.navigations = append(o.navigations, name)
	o.navErrs = append(o.navErrs, err)
}

func TestNavigator_Observer(t *testing.T) {
	f := newFixture(t)
	observer := &recordingObserver{}
	f.nav = NewNavigator(f.nav.registry, f.nav.catalog, f.surface, WithObserver(observer))

	require.NoError(t, f.nav.Navigate("home"))
	require.NoError(t, f.nav.Navigate("home"))
	assert.Equal(t, []string{"home"}, observer.loads, "memoized loads are not reported")
	assert.Equal(t, []string{"home", "home"}, observer.navigations)

	f.detail.fail = errors.New("boom")
	assert.Error(t, f.nav.Navigate("detail"))
	require.Len(t, observer.loadErrs, 2)
	var loadErr *LoadError
	assert.ErrorAs(t, observer.loadErrs[1], &loadErr)

	assert.Error(t, f.nav.Navigate("missing"))
	require.Len(t, observer.navErrs, 4)
	assert.NoError(t, observer.navErrs[0])
	assert.Error(t, observer.navErrs[2])
	assert.ErrorIs(t, observer.navErrs[3], ErrScreenNotRegistered)
}
