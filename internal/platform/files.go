package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
)

// Command constants
const (
	OpenCommand    = "open"
	XDGOpenCommand = "xdg-open"
	CmdCommand     = "cmd"
	StartCommand   = "start"
	AMCommand      = "am"
)

// Command parameters
const (
	WindowsCmdFlag    = "/c"
	AndroidViewAction = "android.intent.action.VIEW"
)

// Video MIME types tried on Android, most specific first. The empty entry lets
// the system decide.
var AndroidVideoMIMETypes = []string{"video/mp4", "video/*", ""}

// IsAndroid reports whether the process runs on Android. Fyne Android apps
// run as libdist.so and may report a linux GOOS.
func IsAndroid() bool {
	return runtime.GOOS == OSAndroid ||
		os.Getenv("ANDROID_DATA") != "" ||
		os.Getenv("ANDROID_ROOT") != "" ||
		os.Getenv("ANDROID_ARGUMENT") != "" ||
		filepath.Base(os.Args[0]) == "libdist.so"
}

// ResolveAssetPath joins an asset path onto the assets directory. The result
// is relative on Android, where assets live beside the app, and absolute on
// desktop.
func ResolveAssetPath(assetsDir, asset string) string {
	return resolveAssetPath(assetsDir, asset, IsAndroid())
}

func resolveAssetPath(assetsDir, asset string, android bool) string {
	if asset == "" {
		return ""
	}
	if filepath.IsAbs(asset) {
		return asset
	}

	p := filepath.Join(assetsDir, asset)
	if android {
		return p
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return p
	}
	return abs
}

// FileExists reports whether path names an existing regular file
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// MissingAssets returns the assets that do not exist under assetsDir, in the
// order given.
func MissingAssets(assetsDir string, assets []string) []string {
	var missing []string
	for _, a := range assets {
		if !FileExists(ResolveAssetPath(assetsDir, a)) {
			missing = append(missing, a)
		}
	}
	return missing
}

// validatePlayablePath checks that filePath is a local file that can be handed
// to a player and returns its absolute form.
func validatePlayablePath(filePath string) (string, error) {
	if filePath == "" {
		return "", fmt.Errorf("file path is empty")
	}
	if strings.HasPrefix(filePath, "http://") || strings.HasPrefix(filePath, "https://") {
		return "", fmt.Errorf("file path appears to be a URL: %s", filePath)
	}
	if !FileExists(filePath) {
		return "", fmt.Errorf("file does not exist: %s", filePath)
	}

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}
	return absPath, nil
}

// OpenFileWithDefaultApp opens the file with the default system application
func OpenFileWithDefaultApp(filePath string) error {
	absPath, err := validatePlayablePath(filePath)
	if err != nil {
		return err
	}

	if IsAndroid() {
		return openFileWithDefaultAppAndroid(absPath)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, absPath).Start()
	case OSWindows:
		return exec.Command(CmdCommand, WindowsCmdFlag, StartCommand, "", absPath).Start()
	case OSLinux:
		return exec.Command(XDGOpenCommand, absPath).Start()
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openFileWithDefaultAppAndroid sends a VIEW intent, narrowing the MIME type
// last
func openFileWithDefaultAppAndroid(filePath string) error {
	var lastErr error
	for _, mime := range AndroidVideoMIMETypes {
		if err := exec.Command(AMCommand, androidViewArgs(filePath, mime)...).Run(); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	return fmt.Errorf("failed to open file with any method: %w", lastErr)
}

// androidViewArgs builds the am arguments for a VIEW intent on a local file
func androidViewArgs(filePath, mime string) []string {
	args := []string{"start", "-a", AndroidViewAction, "-d", "file://" + filePath}
	if mime != "" {
		args = append(args, "-t", mime)
	}
	return args
}
