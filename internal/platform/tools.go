package platform

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// External tool constants
const (
	FFmpegCommand     = "ffmpeg"
	FFmpegVersionFlag = "-version"
	YtDlpCommand      = "yt-dlp"
	YtDlpVersionFlag  = "--version"
	ToolCheckTimeout  = 5 * time.Second
)

// LookPath is swapped in tests
var LookPath = exec.LookPath

// runVersion is swapped in tests
var runVersion = func(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// ToolVersion resolves name (a command or a path), runs it with versionFlag
// under ToolCheckTimeout and returns the first line it prints.
func ToolVersion(ctx context.Context, name, versionFlag string) (string, error) {
	path, err := LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%s not found in PATH: %w", name, err)
	}

	ctx, cancel := context.WithTimeout(ctx, ToolCheckTimeout)
	defer cancel()

	out, err := runVersion(ctx, path, versionFlag)
	if err != nil {
		return "", fmt.Errorf("failed to run %s: %w", name, err)
	}

	scanner := bufio.NewScanner(bytes.NewReader(out))
	if scanner.Scan() {
		return strings.TrimSpace(scanner.Text()), nil
	}
	return "", nil
}

// CheckFFmpeg returns the first line of "ffmpeg -version". yt-dlp needs
// ffmpeg for audio extraction.
func CheckFFmpeg(ctx context.Context) (string, error) {
	return ToolVersion(ctx, FFmpegCommand, FFmpegVersionFlag)
}

// CheckYtDlp returns the version printed by "yt-dlp --version". executable
// overrides the PATH lookup when set.
func CheckYtDlp(ctx context.Context, executable string) (string, error) {
	if executable == "" {
		executable = YtDlpCommand
	}
	return ToolVersion(ctx, executable, YtDlpVersionFlag)
}
