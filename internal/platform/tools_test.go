package platform

import (
	"context"
	"errors"
	"testing"
)

type toolCall struct {
	name string
	args []string
}

func stubTools(t *testing.T, lookErr error, out string, runErr error) *[]toolCall {
	t.Helper()
	origLook, origRun := LookPath, runVersion
	t.Cleanup(func() {
		LookPath = origLook
		runVersion = origRun
	})

	calls := &[]toolCall{}
	LookPath = func(name string) (string, error) {
		if lookErr != nil {
			return "", lookErr
		}
		return "/usr/bin/" + name, nil
	}
	runVersion = func(ctx context.Context, name string, args ...string) ([]byte, error) {
		if _, ok := ctx.Deadline(); !ok {
			t.Error("expected a deadline on the version check")
		}
		*calls = append(*calls, toolCall{name: name, args: args})
		return []byte(out), runErr
	}
	return calls
}

func TestCheckFFmpeg(t *testing.T) {
	calls := stubTools(t, nil, "ffmpeg version 6.1.1 Copyright (c) 2000-2023\nbuilt with gcc\n", nil)

	version, err := CheckFFmpeg(context.Background())
	if err != nil {
		t.Fatalf("CheckFFmpeg failed: %v", err)
	}
	if version != "ffmpeg version 6.1.1 Copyright (c) 2000-2023" {
		t.Errorf("Unexpected version line: %q", version)
	}
	if len(*calls) != 1 || (*calls)[0].name != "/usr/bin/ffmpeg" || (*calls)[0].args[0] != FFmpegVersionFlag {
		t.Errorf("Unexpected calls: %+v", *calls)
	}
}

func TestCheckFFmpeg_NotInPath(t *testing.T) {
	stubTools(t, errors.New("executable file not found"), "", nil)

	if _, err := CheckFFmpeg(context.Background()); err == nil {
		t.Error("Expected error when ffmpeg is missing")
	}
}

func TestCheckFFmpeg_RunFails(t *testing.T) {
	stubTools(t, nil, "", errors.New("exit status 1"))

	if _, err := CheckFFmpeg(context.Background()); err == nil {
		t.Error("Expected error when ffmpeg fails")
	}
}

func TestCheckYtDlp(t *testing.T) {
	calls := stubTools(t, nil, "2025.09.26\n", nil)

	version, err := CheckYtDlp(context.Background(), "")
	if err != nil {
		t.Fatalf("CheckYtDlp failed: %v", err)
	}
	if version != "2025.09.26" {
		t.Errorf("Unexpected version: %q", version)
	}
	if (*calls)[0].name != "/usr/bin/yt-dlp" || (*calls)[0].args[0] != YtDlpVersionFlag {
		t.Errorf("Unexpected call: %+v", (*calls)[0])
	}
}

func TestCheckYtDlp_CustomExecutable(t *testing.T) {
	calls := stubTools(t, nil, "2025.09.26", nil)

	if _, err := CheckYtDlp(context.Background(), "cache/yt-dlp"); err != nil {
		t.Fatalf("CheckYtDlp failed: %v", err)
	}
	if (*calls)[0].name != "/usr/bin/cache/yt-dlp" {
		t.Errorf("Expected custom executable to be resolved, got %s", (*calls)[0].name)
	}
}

func TestToolVersion_EmptyOutput(t *testing.T) {
	stubTools(t, nil, "", nil)

	version, err := ToolVersion(context.Background(), "tool", "--version")
	if err != nil {
		t.Fatalf("ToolVersion failed: %v", err)
	}
	if version != "" {
		t.Errorf("Expected empty version, got %q", version)
	}
}
