package download

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/lrstanley/go-ytdlp"
	log "github.com/sirupsen/logrus"

	"github.com/ytget/media-downloader/internal/model"
	"github.com/ytget/media-downloader/internal/platform"
	"github.com/ytget/media-downloader/internal/source"
)

// Service defaults
const (
	DefaultMetadataTimeout = 60 * time.Second
	DefaultRetryDelay      = 2 * time.Second
	ProgressInterval       = 500 * time.Millisecond
)

// ErrUnsupportedPlatform is returned for URLs no profile exists for
var ErrUnsupportedPlatform = errors.New("unsupported platform")

// runFunc executes a prepared yt-dlp command; replaced in tests
type runFunc func(ctx context.Context, dl *ytdlp.Command, args ...string) (*ytdlp.Result, error)

// Service handles metadata and download runs through yt-dlp
type Service struct {
	mu              sync.Mutex
	retries         int
	metadataTimeout time.Duration
	retryDelay      time.Duration
	executable      string
	run             runFunc
	onUpdate        func(*model.DownloadTask) // receives a snapshot of the task
}

// NewService creates a download service. retries is the number of extra
// attempts after a failed download.
func NewService(retries int, metadataTimeout time.Duration) *Service {
	if retries < 0 {
		retries = 0
	}
	if metadataTimeout <= 0 {
		metadataTimeout = DefaultMetadataTimeout
	}
	return &Service{
		retries:         retries,
		metadataTimeout: metadataTimeout,
		retryDelay:      DefaultRetryDelay,
		run:             runCommand,
	}
}

func runCommand(ctx context.Context, dl *ytdlp.Command, args ...string) (*ytdlp.Result, error) {
	return dl.Run(ctx, args...)
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.DownloadTask)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = callback
}

// SetExecutable makes every run use the yt-dlp binary at path
func (s *Service) SetExecutable(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.executable = path
}

// ToolVersion returns the installed yt-dlp version
func (s *Service) ToolVersion(ctx context.Context) (string, error) {
	s.mu.Lock()
	executable := s.executable
	s.mu.Unlock()

	version, err := platform.CheckYtDlp(ctx, executable)
	if err != nil {
		return "", fmt.Errorf("yt-dlp is not available: %w", err)
	}
	return version, nil
}

// InstallTool downloads yt-dlp into go-ytdlp's cache and switches the
// service to it
func (s *Service) InstallTool(ctx context.Context) (string, error) {
	resolved, err := ytdlp.Install(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to install yt-dlp: %w", err)
	}
	log.WithField("executable", resolved.Executable).Debug("yt-dlp installed")
	s.SetExecutable(resolved.Executable)
	return resolved.Executable, nil
}

// FetchInfo extracts metadata for url without downloading it
func (s *Service) FetchInfo(ctx context.Context, p source.Platform, url string) (*model.MediaInfo, error) {
	profile, ok := source.ProfileFor(p)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, p)
	}

	ctx, cancel := context.WithTimeout(ctx, s.metadataTimeout)
	defer cancel()

	opts := BuildInfoOptions(profile)
	log.WithFields(log.Fields{"platform": p, "options": fmt.Sprintf("%+v", opts)}).Debug("fetching metadata")

	result, err := s.run(ctx, s.command(opts), opts.Args(url)...)
	if result == nil || strings.TrimSpace(result.Stdout) == "" {
		if err == nil {
			err = ErrNoMetadata
		}
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("metadata fetch timed out after %s: %w", s.metadataTimeout, ctx.Err())
		}
		return nil, fmt.Errorf("failed to fetch metadata: %w", withStderr(err, result))
	}
	if err != nil {
		// ignore-errors still leaves a usable document on stdout
		log.WithError(err).Debug("yt-dlp reported errors while fetching metadata")
	}

	return ParseInfo([]byte(result.Stdout), profile)
}

// Download runs task to completion. The task is updated in place and its
// final status is Completed, Cancelled or Error.
func (s *Service) Download(ctx context.Context, task *model.DownloadTask) error {
	profile, ok := source.ProfileFor(task.Platform)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedPlatform, task.Platform)
	}

	s.setStatus(task, model.TaskStatusStarting)

	opts := BuildDownloadOptions(task, profile)
	log.WithFields(log.Fields{"task": task.ID, "options": fmt.Sprintf("%+v", opts)}).Debug("starting download")

	dl := s.command(opts)
	dl.ProgressFunc(ProgressInterval, func(update ytdlp.ProgressUpdate) {
		s.updateTaskProgress(task, &update)
	})

	s.mu.Lock()
	task.StartedAt = time.Now()
	s.mu.Unlock()
	s.setStatus(task, model.TaskStatusDownloading)

	result, err := s.downloadWithRetry(ctx, dl, opts.Args(task.URL), task)

	s.mu.Lock()
	if err != nil {
		if ctx.Err() != nil {
			task.Status = model.TaskStatusCancelled
			err = ctx.Err()
		} else {
			task.Status = model.TaskStatusError
			err = withStderr(err, result)
		}
		task.LastError = err.Error()
	} else {
		task.Status = model.TaskStatusCompleted
		task.Percent = 100
		if path, locateErr := platform.LocateDownloadedFile(task.Dir, task.FileName); locateErr == nil {
			task.OutputPath = path
		} else {
			log.WithError(locateErr).Warn("downloaded file not found")
		}
	}
	task.FinishedAt = time.Now()
	s.mu.Unlock()

	s.notifyUpdate(task)
	return err
}

func (s *Service) command(opts Options) *ytdlp.Command {
	dl := opts.Command()
	s.mu.Lock()
	executable := s.executable
	s.mu.Unlock()
	if executable != "" {
		dl = dl.SetExecutable(executable)
	}
	return dl
}

// downloadWithRetry attempts download with retry logic
func (s *Service) downloadWithRetry(ctx context.Context, dl *ytdlp.Command, args []string, task *model.DownloadTask) (*ytdlp.Result, error) {
	var lastErr error
	var result *ytdlp.Result

	for attempt := 0; attempt <= s.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(s.retryDelay):
			case <-ctx.Done():
				return result, ctx.Err()
			}

			log.WithFields(log.Fields{"task": task.ID, "attempt": attempt + 1}).Warn("retrying download")
		}

		res, err := s.run(ctx, dl, args...)
		if err == nil {
			return res, nil
		}

		lastErr = err
		result = res // keep last result for its stderr
		log.WithFields(log.Fields{"task": task.ID, "attempt": attempt + 1}).WithError(err).Debug("download attempt failed")

		if ctx.Err() != nil {
			return result, ctx.Err()
		}
	}

	return result, lastErr
}

// updateTaskProgress updates task progress from yt-dlp info
func (s *Service) updateTaskProgress(task *model.DownloadTask, update *ytdlp.ProgressUpdate) {
	s.mu.Lock()

	if update.TotalBytes > 0 {
		percent := float64(update.DownloadedBytes) / float64(update.TotalBytes) * 100
		if percent > 100 {
			percent = 100
		}
		task.Percent = int(percent)
	}

	if !update.Started.IsZero() {
		elapsed := time.Since(update.Started)
		if elapsed.Seconds() > 0 && update.DownloadedBytes > 0 {
			bytesPerSecond := float64(update.DownloadedBytes) / elapsed.Seconds()
			task.Speed = humanize.Bytes(uint64(bytesPerSecond)) + "/s"
		}
	}

	if eta := update.ETA(); eta > 0 {
		task.ETASec = int(eta.Seconds())
	}

	if update.Info != nil && update.Info.Title != nil && *update.Info.Title != "" && task.Title == "" {
		task.Title = *update.Info.Title
	}

	s.mu.Unlock()
	s.notifyUpdate(task)
}

func (s *Service) setStatus(task *model.DownloadTask, status model.TaskStatus) {
	s.mu.Lock()
	task.Status = status
	s.mu.Unlock()
	s.notifyUpdate(task)
}

// notifyUpdate calls the update callback with a copy of task
func (s *Service) notifyUpdate(task *model.DownloadTask) {
	s.mu.Lock()
	callback := s.onUpdate
	snapshot := *task
	s.mu.Unlock()

	if callback != nil {
		callback(&snapshot)
	}
}

// withStderr appends yt-dlp's stderr to err so hint matching sees both
func withStderr(err error, result *ytdlp.Result) error {
	if result == nil {
		return err
	}
	stderr := strings.TrimSpace(result.Stderr)
	if stderr == "" || strings.Contains(err.Error(), stderr) {
		return err
	}
	return fmt.Errorf("%w\n%s", err, stderr)
}
