// Package cli wires configuration, logging and the interactive session into
// the media-downloader command.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ytget/media-downloader/internal/config"
	"github.com/ytget/media-downloader/internal/console"
	"github.com/ytget/media-downloader/internal/download"
	"github.com/ytget/media-downloader/internal/i18n"
)

// Flag names
const (
	FlagConfig  = "config"
	FlagDir     = "dir"
	FlagLang    = "lang"
	FlagRetries = "retries"
	FlagReveal  = "reveal"
	FlagInstall = "install"
	FlagVerbose = "verbose"
)

// app holds state shared by the commands
type app struct {
	version    string
	v          *viper.Viper
	configFile string
	install    bool
	verbose    bool

	settings   *config.Settings
	loc        *i18n.Localization
	downloader download.Downloader

	// swapped in tests
	newDownloader func(retries int, metadataTimeout time.Duration) download.Downloader
	newPrompter   func() console.Prompter
}

// NewRootCommand builds the command tree
func NewRootCommand(version string) *cobra.Command {
	return newApp(version).command()
}

func newApp(version string) *app {
	return &app{
		version:       version,
		v:             viper.New(),
		newDownloader: newServiceDownloader,
		newPrompter:   console.NewPrompter,
	}
}

func newServiceDownloader(retries int, metadataTimeout time.Duration) download.Downloader {
	return download.NewService(retries, metadataTimeout)
}

func (a *app) command() *cobra.Command {
	root := &cobra.Command{
		Use:   "media-downloader",
		Short: "Download videos and audio from YouTube, Facebook and Instagram",
		Long: `Interactive downloader for YouTube, Facebook and Instagram.
Paste a URL, pick a folder and a name, and yt-dlp does the rest.`,
		Version:           a.version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Args:              cobra.NoArgs,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.newSession(cmd).Run(cmd.Context())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, FlagConfig, "", "config file (default $XDG_CONFIG_HOME/media-downloader/config.yaml)")
	flags.String(FlagDir, "", "default download directory (default ~/Downloads)")
	flags.String(FlagLang, config.DefaultLanguage, "console language: system, es or en")
	flags.Int(FlagRetries, config.DefaultRetries, "extra attempts after a failed download (0-5)")
	flags.Bool(FlagReveal, config.DefaultRevealOnComplete, "reveal finished downloads in the file manager")
	flags.BoolVar(&a.install, FlagInstall, false, "download yt-dlp if it is not installed")
	flags.BoolVarP(&a.verbose, FlagVerbose, "v", false, "enable debug logging")

	bindings := map[string]string{
		config.KeyDownloadDir:      FlagDir,
		config.KeyLanguage:         FlagLang,
		config.KeyRetries:          FlagRetries,
		config.KeyRevealOnComplete: FlagReveal,
	}
	for key, flag := range bindings {
		if err := a.v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", flag, err))
		}
	}

	root.AddCommand(a.checkCommand(), a.versionCommand())
	return root
}

// setup loads settings and configures logging before any command runs
func (a *app) setup(_ *cobra.Command, _ []string) error {
	settings, err := config.Load(a.v, a.configFile)
	if err != nil {
		return err
	}
	a.settings = settings

	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
		PadLevelText:    true,
	})
	log.SetLevel(settings.GetLogLevel())
	if a.verbose {
		log.SetLevel(log.DebugLevel)
	}

	if settings.EnsureSupportedLanguage() {
		log.Warnf("unsupported language, using %q", config.DefaultLanguage)
	}
	a.loc = i18n.NewLocalization()
	a.loc.SetLanguage(settings.GetLanguage())

	a.downloader = a.newDownloader(settings.GetRetries(), settings.GetMetadataTimeout())

	log.WithFields(log.Fields{
		"language":         a.loc.GetCurrentLanguage(),
		"retries":          settings.GetRetries(),
		"metadata_timeout": settings.GetMetadataTimeout(),
		"download_dir":     settings.GetDownloadDirectory(),
	}).Debug("settings resolved")
	return nil
}

func (a *app) newSession(cmd *cobra.Command) *console.Session {
	session := console.NewSession(a.loc, a.settings, a.downloader, a.newPrompter(), cmd.OutOrStdout())
	session.Install = a.install
	return session
}

func (a *app) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check that yt-dlp and ffmpeg are available",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.newSession(cmd).CheckDependencies(cmd.Context())
		},
	}
}

func (a *app) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), a.loc.T(i18n.KeyVersion, a.version))
		},
	}
}

// Execute runs the command line and returns the process exit code
func Execute(version string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCommand(version).ExecuteContext(ctx); err != nil {
		// the session already explained a missing yt-dlp
		if !errors.Is(err, console.ErrYtDlpMissing) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		return 1
	}
	return 0
}
