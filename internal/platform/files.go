package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
)

// Directory names
const (
	DownloadsDirName      = "Downloads"
	LocalDirPrefix        = "downloads_"
	DefaultFileNamePrefix = "video_"
)

// File name replacement
const (
	InvalidFileNameChars = `<>:"/\|?*`
	FileNameReplacement  = "_"
)

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// File extensions to skip
var (
	SkippedExtensions = []string{".part", ".ytdl"}
)

// homeDir is swapped in tests
var homeDir = os.UserHomeDir

// SanitizeFileName replaces every character that is invalid in file names on
// common filesystems with an underscore.
func SanitizeFileName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if strings.ContainsRune(InvalidFileNameChars, r) {
			b.WriteString(FileNameReplacement)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// DefaultFileName returns the name used when the user leaves it blank
func DefaultFileName(platformName string) string {
	return DefaultFileNamePrefix + platformName
}

// LocalDownloadsDir returns the relative folder used when no home directory
// is available
func LocalDownloadsDir(platformName string) string {
	return "./" + LocalDirPrefix + platformName
}

// CreateDirectoryIfNotExists creates directory (and parents) if it doesn't
// exist. A file in the way is an error.
func CreateDirectoryIfNotExists(dirPath string) error {
	return os.MkdirAll(dirPath, DefaultDirPermissions)
}

// GetHomeDownloadsDir returns the standard Downloads directory for the user
func GetHomeDownloadsDir() (string, error) {
	home, err := homeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	if home == "" {
		return "", fmt.Errorf("failed to get user home directory: empty path")
	}
	return filepath.Join(home, DownloadsDirName), nil
}

// LocateDownloadedFile finds the file yt-dlp produced for base in dir. The
// extension is chosen by yt-dlp, so every "<base>.*" is considered and the
// most recently modified one wins. Temporary files are skipped.
func LocateDownloadedFile(dir, base string) (string, error) {
	if base == "" {
		return "", fmt.Errorf("file name is empty")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	type candidate struct {
		path    string
		modUnix int64
	}
	var candidates []candidate

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if isTemporaryFile(name) {
			continue
		}
		ext := filepath.Ext(name)
		if ext == "" || strings.TrimSuffix(name, ext) != base {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		candidates = append(candidates, candidate{
			path:    filepath.Join(dir, name),
			modUnix: info.ModTime().UnixNano(),
		})
	}

	if len(candidates) == 0 {
		return "", fmt.Errorf("file not found: %s", filepath.Join(dir, base+".*"))
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].modUnix != candidates[j].modUnix {
			return candidates[i].modUnix > candidates[j].modUnix
		}
		return candidates[i].path < candidates[j].path
	})
	return candidates[0].path, nil
}

func isTemporaryFile(name string) bool {
	for _, ext := range SkippedExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// OpenFileInManager opens the system file manager with path highlighted
// where the OS supports it
func OpenFileInManager(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("file does not exist: %w", err)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, MacOSSelectFlag, absPath).Run()
	case OSWindows:
		return exec.Command(ExplorerCommand, WindowsSelectParam, absPath).Run()
	case OSLinux:
		return openInManagerLinux(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openInManagerLinux opens the containing directory; file selection is not
// standardized on Linux
func openInManagerLinux(path string) error {
	dir := path
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		dir = filepath.Dir(path)
	}

	if err := exec.Command(XDGOpenCommand, dir).Run(); err == nil {
		return nil
	}

	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return exec.Command(fm, dir).Run()
		}
	}

	return fmt.Errorf("no suitable file manager found")
}
