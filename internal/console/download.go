package console

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/ytget/media-downloader/internal/hints"
	"github.com/ytget/media-downloader/internal/i18n"
	"github.com/ytget/media-downloader/internal/menu"
	"github.com/ytget/media-downloader/internal/model"
	"github.com/ytget/media-downloader/internal/source"
)

// startNoteKeys are printed before downloads without menus
var startNoteKeys = map[source.Platform]string{
	source.PlatformFacebook:  i18n.KeyPublicVideosOnly,
	source.PlatformInstagram: i18n.KeyPublicPostsOnly,
}

var doneKeys = map[model.Mode]string{
	model.ModeVideo:    i18n.KeyDoneVideoYT,
	model.ModeAudioMP3: i18n.KeyDoneMP3YT,
	model.ModeAudioWAV: i18n.KeyDoneWAVYT,
}

var hintIcons = map[hints.Style]string{
	hints.StyleTip:     Indent + IconTip + " ",
	hints.StyleAction:  Indent + IconDownload + " ",
	hints.StyleNote:    Indent + IconNote + " ",
	hints.StyleHeading: Indent + IconList + " ",
	hints.StyleItem:    ItemIndent,
}

// download asks for mode and quality where the platform offers them, runs
// the task and prints the outcome. It reports whether the download succeeded.
func (s *Session) download(ctx context.Context, task *model.DownloadTask) (bool, error) {
	p := task.Platform
	profile, ok := source.ProfileFor(p)
	if !ok {
		return false, fmt.Errorf("unsupported platform: %s", p)
	}

	if profile.HasMenus {
		s.print.Line(Indent+IconLink, s.loc.T(i18n.KeyConnecting, p.DisplayName()))

		modeOpt, err := s.choose(ctx, menu.ModeMenu)
		if err != nil {
			return false, err
		}
		task.Mode = model.Mode(modeOpt.Value)

		qualityOpt, err := s.choose(ctx, menu.QualityMenuFor(task.Mode))
		if err != nil {
			return false, err
		}
		task.Format = qualityOpt.Value

		s.print.Println()
		s.print.Line(Indent+IconDownload, s.loc.T(i18n.KeyStartingDownload, p.DisplayName()))
		s.print.Line(Indent+IconTarget, s.loc.T(i18n.KeyDownloadType, s.loc.GetText(modeOpt.LabelKey)))
		s.print.Line(Indent+IconQuality, s.loc.T(i18n.KeyDownloadQuality, s.loc.GetText(qualityOpt.LabelKey)))
		if task.Mode.IsAudio() {
			s.print.Line(Indent+IconInfo, s.loc.GetText(i18n.KeyFFmpegAudioNote))
		}
	} else {
		s.print.Line(Indent+IconDownload, s.loc.T(i18n.KeyStartingDownload, p.DisplayName()))
		if key, ok := startNoteKeys[p]; ok {
			s.print.Line(Indent+IconInfo, s.loc.GetText(key))
		}
	}

	s.print.Separator(ShortSeparator)

	reporter := newProgressReporter(s.out, s.loc.GetText(i18n.KeyProgressLabel))
	s.downloader.SetUpdateCallback(reporter.Update)
	err := s.downloader.Download(ctx, task)
	s.downloader.SetUpdateCallback(nil)
	reporter.Done(task)

	if err != nil {
		if ctx.Err() != nil || errors.Is(err, context.Canceled) {
			return false, ErrInterrupted
		}
		s.print.Error(IconError, s.loc.T(i18n.KeyDownloadError, p.DisplayName(), err))
		s.printHint(hints.Classify(p, task.Mode, task.LastError))
		return false, nil
	}

	s.print.Separator(ShortSeparator)
	if profile.HasMenus {
		s.print.Success(IconOK, s.loc.GetText(doneKeys[task.Mode]))
	} else {
		s.print.Success(IconOK, s.loc.T(i18n.KeyDonePlatform, p.DisplayName()))
	}
	if elapsed := task.FinishedAt.Sub(task.StartedAt); !task.StartedAt.IsZero() && elapsed > 0 {
		s.print.Line(Indent+IconClock, s.loc.T(i18n.KeyElapsed, elapsed.Round(time.Second)))
	}

	if s.settings.GetRevealOnComplete() && task.OutputPath != "" {
		if err := s.reveal(task.OutputPath); err != nil {
			log.WithError(err).Debug("reveal failed")
			s.print.Warn(Indent+IconWarning, s.loc.T(i18n.KeyRevealError, err))
		}
	}
	return true, nil
}

// choose shows m and re-prompts until a valid choice is entered
func (s *Session) choose(ctx context.Context, m menu.Menu) (menu.Option, error) {
	s.print.Println()
	s.print.Line(Indent+IconList, s.loc.GetText(m.TitleKey))
	for i, opt := range m.Options {
		s.print.Println(fmt.Sprintf(MenuFormat, i+1, s.loc.GetText(opt.LabelKey)))
	}
	s.print.Println()

	for {
		answer, err := s.ask(ctx, s.loc.T(m.PromptKey, m.Len()))
		if err != nil {
			return menu.Option{}, err
		}

		opt, err := m.Validate(answer)
		switch {
		case err == nil:
			return opt, nil
		case errors.Is(err, menu.ErrOutOfRange):
			s.print.Error(Indent+IconError, s.loc.T(i18n.KeyInvalidOption, m.Len()))
		default:
			s.print.Error(Indent+IconError, s.loc.GetText(i18n.KeyInvalidNumber))
		}
	}
}

func (s *Session) printHint(hint hints.Hint) {
	for _, line := range hint.Lines {
		s.print.Line("", hintIcons[line.Style]+s.loc.GetText(line.Key))
	}
}
