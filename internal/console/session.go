package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"

	"github.com/ytget/media-downloader/internal/config"
	"github.com/ytget/media-downloader/internal/download"
	"github.com/ytget/media-downloader/internal/i18n"
	"github.com/ytget/media-downloader/internal/menu"
	"github.com/ytget/media-downloader/internal/model"
	"github.com/ytget/media-downloader/internal/platform"
	"github.com/ytget/media-downloader/internal/source"
)

// ErrYtDlpMissing is returned when yt-dlp is neither installed nor installable
var ErrYtDlpMissing = errors.New("yt-dlp is not installed")

// Session is one interactive run: a dependency check followed by the
// download loop
type Session struct {
	loc        *i18n.Localization
	settings   *config.Settings
	downloader download.Downloader
	prompter   Prompter
	print      *printer
	out        io.Writer

	// Install downloads yt-dlp when it is missing
	Install bool

	checkFFmpeg func(ctx context.Context) (string, error)
	reveal      func(path string) error
}

// NewSession creates a session writing to out
func NewSession(loc *i18n.Localization, settings *config.Settings, downloader download.Downloader, prompter Prompter, out io.Writer) *Session {
	return &Session{
		loc:         loc,
		settings:    settings,
		downloader:  downloader,
		prompter:    prompter,
		print:       newPrinter(out),
		out:         out,
		checkFFmpeg: platform.CheckFFmpeg,
		reveal:      platform.OpenFileInManager,
	}
}

// Run executes the session until the user stops, input ends or the context
// is cancelled
func (s *Session) Run(ctx context.Context) error {
	s.Banner()

	if err := s.CheckDependencies(ctx); err != nil {
		return err
	}

	s.print.Println()
	s.print.Success(IconOK, s.loc.GetText(i18n.KeyAllViaYtDlp))
	s.print.Line(IconTip, s.loc.GetText(i18n.KeyUpdateHint))
	s.print.Println()

	for {
		again, err := s.iteration(ctx)
		if errors.Is(err, ErrInterrupted) {
			s.print.Println()
			s.print.Error(IconError, s.loc.GetText(i18n.KeyOperationCancelled))
			break
		}
		if errors.Is(err, io.EOF) {
			s.print.Println()
			break
		}
		if err != nil {
			log.WithError(err).Debug("iteration failed")
			s.print.Println()
			s.print.Error(IconError, s.loc.T(i18n.KeyUnexpectedError, err))
			s.print.Line("", s.loc.GetText(i18n.KeyRetrying))
			s.print.Println()
			continue
		}
		if !again {
			break
		}
		s.print.Println()
		s.print.Separator(LongSeparator)
	}

	s.print.Println()
	s.print.Line("", s.loc.GetText(i18n.KeyFarewell))
	s.print.Separator(LongSeparator)
	return nil
}

// Banner prints the session header
func (s *Session) Banner() {
	s.print.Separator(LongSeparator)
	s.print.Heading("    " + s.loc.GetText(i18n.KeyBannerTitle))
	s.print.Heading("      " + platformList())
	s.print.Separator(LongSeparator)
	s.print.Println()
}

// CheckDependencies reports the yt-dlp version and ffmpeg availability.
// A missing yt-dlp is fatal unless Install is set; a missing ffmpeg only
// disables audio conversion.
func (s *Session) CheckDependencies(ctx context.Context) error {
	version, err := s.downloader.ToolVersion(ctx)
	if err != nil && s.Install {
		log.WithError(err).Debug("yt-dlp lookup failed, installing")
		s.print.Line(IconDownload, s.loc.GetText(i18n.KeyYtDlpInstalling))
		if _, installErr := s.downloader.InstallTool(ctx); installErr != nil {
			err = installErr
		} else {
			version, err = s.downloader.ToolVersion(ctx)
		}
	}
	if err != nil {
		s.print.Error(IconError, s.loc.GetText(i18n.KeyYtDlpMissing))
		s.print.Line(Indent+IconTip, s.loc.GetText(i18n.KeyYtDlpInstallHint))
		return fmt.Errorf("%w: %v", ErrYtDlpMissing, err)
	}

	s.print.Success(IconOK, s.loc.GetText(i18n.KeyYtDlpInstalled))
	s.print.Line(Indent+IconPackage, s.loc.T(i18n.KeyYtDlpVersion, version))

	if _, err := s.checkFFmpeg(ctx); err != nil {
		log.WithError(err).Debug("ffmpeg check failed")
		s.print.Warn(IconWarning, s.loc.GetText(i18n.KeyFFmpegMissing))
		s.print.Line(Indent+IconTip, s.loc.GetText(i18n.KeyFFmpegRequired))
		s.print.Line(Indent+IconDownload, s.loc.GetText(i18n.KeyFFmpegDownloadFrom))
		s.print.Line(Indent+IconTarget, s.loc.GetText(i18n.KeyFFmpegVideoOnly))
	} else {
		s.print.Success(IconOK, s.loc.GetText(i18n.KeyFFmpegInstalled))
	}
	return nil
}

// iteration runs one URL through the flow. It reports whether the user wants
// another download.
func (s *Session) iteration(ctx context.Context) (bool, error) {
	url, p, err := s.askURL(ctx)
	if err != nil {
		return false, err
	}

	if err := s.showInfo(ctx, p, url); err != nil {
		return false, err
	}
	s.print.Println()

	dir, err := s.askDir(ctx, p)
	if err != nil {
		return false, err
	}
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		s.print.Error(Indent+IconError, s.loc.T(i18n.KeyDirCreateError, err))
		return true, nil
	}
	s.print.Println()

	name, err := s.askName(ctx, p)
	if err != nil {
		return false, err
	}
	s.print.Println()

	s.printNotes(p)
	s.print.Separator(LongSeparator)

	answer, err := s.ask(ctx, s.loc.T(i18n.KeyConfirmDownload, p.Upper()))
	if err != nil {
		return false, err
	}

	if menu.IsAffirmative(answer) {
		s.print.Println()
		ok, err := s.download(ctx, model.NewDownloadTask(url, p, dir, name))
		if err != nil {
			return false, err
		}
		s.print.Println()
		if ok {
			s.print.Success(IconOK, s.loc.T(i18n.KeySavedIn, absPath(dir)))
		} else {
			s.print.Error(IconError, s.loc.GetText(i18n.KeyDownloadFailed))
		}
	} else {
		s.print.Println()
		s.print.Error(IconError, s.loc.GetText(i18n.KeyDownloadCancelled))
	}

	s.print.Println()
	s.print.Separator(LongSeparator)

	answer, err = s.ask(ctx, s.loc.GetText(i18n.KeyAnother))
	if err != nil {
		return false, err
	}
	return menu.IsAffirmative(answer), nil
}

func (s *Session) askURL(ctx context.Context) (string, source.Platform, error) {
	for {
		s.print.Line("", s.loc.GetText(i18n.KeyStepURL))
		url, err := s.ask(ctx, s.loc.GetText(i18n.KeyPromptURL))
		if err != nil {
			return "", "", err
		}
		if url == "" {
			s.print.Error(Indent+IconError, s.loc.GetText(i18n.KeyURLEmpty))
			continue
		}

		p := source.Detect(url)
		if !p.IsKnown() {
			s.print.Error(Indent+IconError, s.loc.GetText(i18n.KeyURLUnknown))
			continue
		}

		s.print.Accent(Indent+IconTarget, s.loc.T(i18n.KeyPlatformDetected, p.Upper()))
		return url, p, nil
	}
}

func (s *Session) showInfo(ctx context.Context, p source.Platform, url string) error {
	s.print.Println()
	s.print.Line(Indent+IconAntenna, s.loc.GetText(i18n.KeyFetchingInfo))

	info, err := s.downloader.FetchInfo(ctx, p, url)
	if err != nil {
		if ctx.Err() != nil {
			return ErrInterrupted
		}
		s.print.Warn(Indent+IconWarning, s.loc.T(i18n.KeyInfoError, p.DisplayName(), err))
		info = model.FallbackInfo(p)
	}

	s.printInfo(info)
	if info.Unavailable {
		s.print.Warn(Indent+IconWarning, s.loc.GetText(i18n.KeyInfoNotAvailable))
	}
	return nil
}

var defaultTitleKeys = map[source.Platform]string{
	source.PlatformYouTube:   i18n.KeyDefaultTitleYT,
	source.PlatformFacebook:  i18n.KeyDefaultTitleFB,
	source.PlatformInstagram: i18n.KeyDefaultTitleIG,
}

var defaultAuthorKeys = map[source.Platform]string{
	source.PlatformYouTube:   i18n.KeyDefaultAuthorYT,
	source.PlatformFacebook:  i18n.KeyDefaultAuthorFB,
	source.PlatformInstagram: i18n.KeyDefaultAuthorIG,
}

func (s *Session) printInfo(info *model.MediaInfo) {
	title := info.Title
	if title == "" {
		title = s.loc.GetText(defaultTitleKeys[info.Platform])
	}
	author := info.Author
	if author == "" {
		author = s.loc.GetText(defaultAuthorKeys[info.Platform])
	}
	description := info.Description
	if info.Unavailable {
		description = s.loc.GetText(i18n.KeyInfoUnavailable)
	} else if description == "" {
		description = s.loc.GetText(i18n.KeyNoDescription)
	}

	s.print.Line(Indent+IconTag, s.loc.T(i18n.KeyInfoPlatform, info.Platform.DisplayName()))
	s.print.Line(Indent+IconVideo, s.loc.T(i18n.KeyInfoTitle, title))
	s.print.Line(Indent+IconAuthor, s.loc.T(i18n.KeyInfoAuthor, author))
	s.print.Line(Indent+IconClock, s.loc.T(i18n.KeyInfoDuration, info.DurationString()))
	if info.Views > 0 {
		s.print.Line(Indent+IconViews, s.loc.T(i18n.KeyInfoViews, humanize.Comma(info.Views)))
	}
	if info.Likes > 0 {
		s.print.Line(Indent+IconLikes, s.loc.T(i18n.KeyInfoLikes, humanize.Comma(info.Likes)))
	}
	s.print.Line(Indent+IconNote, s.loc.T(i18n.KeyInfoDescription, description))
}

func (s *Session) askDir(ctx context.Context, p source.Platform) (string, error) {
	s.print.Line("", s.loc.GetText(i18n.KeyStepDir))
	s.print.Line(Indent, s.loc.GetText(i18n.KeyDirEnterHint))

	dir, err := s.ask(ctx, s.loc.GetText(i18n.KeyPromptDir))
	if err != nil {
		return "", err
	}
	if dir != "" {
		return dir, nil
	}

	if dir = s.settings.GetDownloadDirectory(); dir != "" {
		s.print.Line(Indent+IconFolder, s.loc.T(i18n.KeyUsingDefaultDir, dir))
		return dir, nil
	}
	dir = platform.LocalDownloadsDir(p.String())
	s.print.Line(Indent+IconFolder, s.loc.T(i18n.KeyUsingLocalDir, dir))
	return dir, nil
}

func (s *Session) askName(ctx context.Context, p source.Platform) (string, error) {
	s.print.Line("", s.loc.GetText(i18n.KeyStepName))

	name, err := s.ask(ctx, s.loc.GetText(i18n.KeyPromptName))
	if err != nil {
		return "", err
	}
	if name == "" {
		name = platform.DefaultFileName(p.String())
		s.print.Line(Indent+IconNote, s.loc.T(i18n.KeyUsingDefaultName, name))
	}
	return platform.SanitizeFileName(name), nil
}

var platformNotes = map[source.Platform][]string{
	source.PlatformYouTube:   {i18n.KeyNoteYTAudio, i18n.KeyNoteYTFormats, i18n.KeyNoteYTFFmpeg, i18n.KeyNoteYTPrivate},
	source.PlatformFacebook:  {i18n.KeyNoteFBPublic},
	source.PlatformInstagram: {i18n.KeyNoteIGPublic, i18n.KeyNoteIGLimits},
}

func (s *Session) printNotes(p source.Platform) {
	notes, ok := platformNotes[p]
	if !ok {
		return
	}
	s.print.Line(Indent+IconList, s.loc.T(i18n.KeyNotesTitle, p.DisplayName()))
	for _, key := range notes {
		s.print.Line("", BulletIndent+s.loc.GetText(key))
	}
	s.print.Println()
}

// ask prompts and trims the answer; interrupts and cancellation become
// ErrInterrupted
func (s *Session) ask(ctx context.Context, message string) (string, error) {
	answer, err := s.prompter.Ask(ctx, message)
	if err != nil {
		if ctx.Err() != nil {
			return "", ErrInterrupted
		}
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

// platformList names the supported platforms, e.g. "YouTube + Facebook + Instagram"
func platformList() string {
	names := make([]string, 0, len(source.Supported()))
	for _, p := range source.Supported() {
		names = append(names, p.DisplayName())
	}
	return strings.Join(names, " + ")
}

func absPath(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return dir
	}
	return abs
}
