// Package app wires settings, the screen registry, the screen catalog and the
// Fyne window into a running frog quiz.
package app

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"strings"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"github.com/agnivade/levenshtein"

	"github.com/wetlandworld/frogquiz/internal/config"
	"github.com/wetlandworld/frogquiz/internal/logging"
	"github.com/wetlandworld/frogquiz/internal/metrics"
	"github.com/wetlandworld/frogquiz/internal/model"
	"github.com/wetlandworld/frogquiz/internal/platform"
	"github.com/wetlandworld/frogquiz/internal/screen"
	"github.com/wetlandworld/frogquiz/internal/ui"
	"github.com/wetlandworld/frogquiz/internal/ui/screens"
)

// AppID identifies the app to Fyne (preferences storage, packaging)
const AppID = "org.wetlandworld.frogquiz"

//go:embed screens.json
var defaultRegistry []byte

// Options override settings for one run. Empty fields fall back to the
// stored settings.
type Options struct {
	RegistryPath string
	AssetsDir    string
	StartScreen  string
	MetricsAddr  string // empty disables the metrics endpoint
	Version      string
	Logger       *slog.Logger
}

// Quiz holds the wired parts of a running app
type Quiz struct {
	Window    fyne.Window
	Shell     *ui.Shell
	Surface   *ui.StackSurface
	Registry  *screen.Registry
	Catalog   *screen.Catalog
	Navigator *screen.Navigator
	Metrics   *metrics.Recorder
	Env       *screens.Env
}

// Run builds the app, shows the start screen and blocks until the window is
// closed
func Run(opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = logging.New(slog.LevelInfo)
	}

	a := fyneapp.NewWithID(AppID)
	a.Settings().SetTheme(ui.NewFrogTheme())
	settings := config.NewSettings(a)

	window := a.NewWindow(AppID)
	mobile := ui.NewMobileUI(a)
	if mobile.ShouldResizeWindow() {
		window.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))
	}
	window.SetFullScreen(settings.GetFullscreenStart())

	q, err := Build(a, window, settings, opts, logger)
	if err != nil {
		return err
	}

	if icon, err := ui.LoadIconResource(q.Env.AssetsDir); err == nil {
		a.SetIcon(icon)
	} else {
		logger.Debug("app icon not found", "error", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if opts.MetricsAddr != "" {
		go func() {
			if err := metrics.Serve(ctx, opts.MetricsAddr, metrics.NewHandler(q.Metrics), logger); err != nil {
				logger.Error("metrics server failed", "addr", opts.MetricsAddr, "error", err)
			}
		}()
	}

	logger.Info("window ready", "version", opts.Version, "assets", q.Env.AssetsDir)
	window.ShowAndRun()
	return nil
}

// Build wires everything into window and navigates to the start screen. Only
// the start screen is loaded; the rest load on first visit. A broken registry
// or start screen is logged and shown in the notification bar rather than
// failing the build.
func Build(a fyne.App, window fyne.Window, settings *config.Settings, opts Options, logger *slog.Logger) (*Quiz, error) {
	if logger == nil {
		logger = logging.NewNop()
	}

	localization := ui.NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	surface := ui.NewStackSurface(settings.GetTransition(), logger)
	notifier := ui.NewNotifier(localization, ui.NotificationAutoHide, logger)
	shell := ui.NewShell(window, settings, localization, surface, notifier, logger)

	registryPath := opts.RegistryPath
	if registryPath == "" {
		registryPath = settings.GetRegistryPath()
	}
	registry, err := LoadRegistry(registryPath, logger)
	if err != nil {
		logger.Error("failed to load screen registry", "path", registryPath, "error", err)
	}

	assetsDir := opts.AssetsDir
	if assetsDir == "" {
		assetsDir = settings.GetAssetsDirectory()
	}

	env := &screens.Env{
		Localization: localization,
		Mobile:       ui.NewMobileUI(a),
		Window:       window,
		Frogs:        model.Frogs(),
		AssetsDir:    assetsDir,
		ShowCaptions: settings.GetShowCaptions(),
		Notify:       notifier.NotifyError,
		OpenVideo:    platform.OpenFileWithDefaultApp,
		Quit:         a.Quit,
	}
	recorder := metrics.NewRecorder()
	env.Answered = func(a screens.Answer) {
		logger.Info("quiz answered", "round", a.RoundID, "frog", a.FrogID, "correct", a.Correct, "elapsed", a.Elapsed)
		recorder.QuizAnswered(a.FrogID, a.Correct, a.Elapsed)
	}

	catalog := screen.NewCatalog()
	if err := screens.Register(catalog, env); err != nil {
		return nil, fmt.Errorf("failed to register screens: %w", err)
	}

	navigator := screen.NewNavigator(registry, catalog, surface,
		screen.WithLogger(logger),
		screen.WithObserver(recorder),
	)
	env.Navigator = navigator

	start := opts.StartScreen
	if start == "" {
		start = settings.GetStartScreen()
	}
	if err := navigator.Navigate(start); err != nil {
		logger.Error("failed to show start screen", "screen", start, "error", err)
		notifier.NotifyError(err)
	}

	return &Quiz{
		Window:    window,
		Shell:     shell,
		Surface:   surface,
		Registry:  registry,
		Catalog:   catalog,
		Navigator: navigator,
		Metrics:   recorder,
		Env:       env,
	}, nil
}

// LoadRegistry reads the registry at path, or the embedded default when path
// is empty. On error the returned registry is still usable, possibly empty.
func LoadRegistry(path string, logger *slog.Logger) (*screen.Registry, error) {
	if logger == nil {
		logger = logging.NewNop()
	}

	var (
		registry *screen.Registry
		err      error
	)
	if path == "" {
		registry, err = screen.ParseRegistry(defaultRegistry, screen.FormatJSON)
	} else {
		registry, err = screen.LoadRegistry(path)
	}

	for _, skipped := range registry.Skipped() {
		logger.Warn("skipped registry entry", "entry", skipped)
	}
	logger.Debug("screen registry loaded", "path", path, "screens", registry.Len())
	return registry, err
}

// maxSuggestionDistance bounds how far a misspelt reference may be from a
// known one to still be suggested
const maxSuggestionDistance = 4

// ScreenStatus reports whether a registry entry can be built. Suggestion holds
// the closest known reference when the entry cannot be resolved.
type ScreenStatus struct {
	Name       string
	Reference  screen.Reference
	Resolvable bool
	Suggestion string
}

// CheckRegistry resolves every registry entry against the built-in screens
// without building any of them
func CheckRegistry(registry *screen.Registry) ([]ScreenStatus, error) {
	catalog := screen.NewCatalog()
	if err := screens.Register(catalog, &screens.Env{}); err != nil {
		return nil, err
	}

	names := registry.Names()
	statuses := make([]ScreenStatus, 0, len(names))
	for _, name := range names {
		entry, _ := registry.Lookup(name)
		_, err := catalog.Resolve(entry.Reference)
		status := ScreenStatus{
			Name:       name,
			Reference:  entry.Reference,
			Resolvable: err == nil,
		}
		if err != nil {
			status.Suggestion = suggestReference(entry.Reference, catalog.References())
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

// suggestReference returns the known reference closest to ref, or "" when
// none is close enough
func suggestReference(ref screen.Reference, known []screen.Reference) string {
	best := ""
	bestDist := maxSuggestionDistance + 1
	for _, k := range known {
		dist := levenshtein.ComputeDistance(strings.ToLower(ref.String()), strings.ToLower(k.String()))
		if dist < bestDist {
			best, bestDist = k.String(), dist
		}
	}
	return best
}
