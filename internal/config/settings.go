package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/ytget/media-downloader/internal/i18n"
	"github.com/ytget/media-downloader/internal/platform"
)

// Settings keys, shared by the config file, MEDIADL_* variables and flags
const (
	KeyDownloadDir      = "download_directory"
	KeyLanguage         = "language"
	KeyRetries          = "retries"
	KeyMetadataTimeout  = "metadata_timeout"
	KeyRevealOnComplete = "reveal_on_complete"
	KeyLogLevel         = "log_level"
)

// Default values
const (
	DefaultLanguage         = i18n.LangSystem
	DefaultRetries          = 0
	MaxRetries              = 5
	DefaultMetadataTimeout  = 60 * time.Second
	MinMetadataTimeout      = 5 * time.Second
	DefaultRevealOnComplete = false
	DefaultLogLevel         = "warn"
)

// Config file location
const (
	EnvPrefix      = "MEDIADL"
	AppDirName     = "media-downloader"
	ConfigFileName = "config"
	ConfigFileType = "yaml"
)

// Settings manages application configuration
type Settings struct {
	v *viper.Viper
}

// NewSettings creates a settings manager over v with defaults registered
func NewSettings(v *viper.Viper) *Settings {
	v.SetDefault(KeyLanguage, DefaultLanguage)
	v.SetDefault(KeyRetries, DefaultRetries)
	v.SetDefault(KeyMetadataTimeout, DefaultMetadataTimeout)
	v.SetDefault(KeyRevealOnComplete, DefaultRevealOnComplete)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	return &Settings{v: v}
}

// Load reads the environment and the optional config file. An explicit
// configFile must exist; the default location may be absent.
func Load(v *viper.Viper, configFile string) (*Settings, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(ConfigFileName)
		v.SetConfigType(ConfigFileType)
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, AppDirName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		log.Debug("no config file found, using defaults")
	} else {
		log.Debugf("loaded config from %s", v.ConfigFileUsed())
	}

	return NewSettings(v), nil
}

// GetDownloadDirectory returns the configured download directory, or the
// user's Downloads folder. The empty string means neither is available.
func (s *Settings) GetDownloadDirectory() string {
	if dir := strings.TrimSpace(s.v.GetString(KeyDownloadDir)); dir != "" {
		return dir
	}
	dir, err := platform.GetHomeDownloadsDir()
	if err != nil {
		log.Warnf("no default download directory: %v", err)
		return ""
	}
	return dir
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.v.GetString(KeyLanguage)
	if lang == "" {
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the console language
func (s *Settings) SetLanguage(lang string) {
	s.v.Set(KeyLanguage, lang)
}

// GetRetries returns the number of download retries, clamped to 0..MaxRetries
func (s *Settings) GetRetries() int {
	return clampRetries(s.v.GetInt(KeyRetries))
}

func clampRetries(count int) int {
	if count < 0 {
		return 0
	}
	if count > MaxRetries {
		return MaxRetries
	}
	return count
}

// GetMetadataTimeout returns the metadata fetch timeout
func (s *Settings) GetMetadataTimeout() time.Duration {
	timeout := s.v.GetDuration(KeyMetadataTimeout)
	if timeout <= 0 {
		return DefaultMetadataTimeout
	}
	if timeout < MinMetadataTimeout {
		return MinMetadataTimeout
	}
	return timeout
}

// GetRevealOnComplete returns whether to reveal finished downloads in the file manager
func (s *Settings) GetRevealOnComplete() bool {
	return s.v.GetBool(KeyRevealOnComplete)
}

// GetLogLevel returns the parsed log level, falling back to the default
func (s *Settings) GetLogLevel() log.Level {
	level, err := log.ParseLevel(s.v.GetString(KeyLogLevel))
	if err != nil {
		level, _ = log.ParseLevel(DefaultLogLevel)
	}
	return level
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	options := map[string]string{
		i18n.LangSystem: "System Default",
	}
	for code, name := range i18n.NewLocalization().GetAvailableLanguages() {
		options[code] = name
	}
	return options
}

// EnsureSupportedLanguage resets an unknown language to the default. It
// reports whether a reset happened.
func (s *Settings) EnsureSupportedLanguage() bool {
	if _, ok := s.GetLanguageOptions()[s.GetLanguage()]; ok {
		return false
	}
	s.SetLanguage(DefaultLanguage)
	return true
}
