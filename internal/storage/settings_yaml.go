package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"pomotask/internal/platform"
	"pomotask/internal/ui/preferences"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	settingsFileName = "settings.yaml"
	envPrefix        = "POMOTASK"
)

// ErrInvalidSetting marks a stored value that could not be parsed.
var ErrInvalidSetting = errors.New("invalid setting")

const (
	keyWork                 = "work_minutes"
	keyBreak                = "break_minutes"
	keyLongBreak            = "long_break_minutes"
	keySoundEnabled         = "sound_enabled"
	keyDesktopNotifications = "desktop_notifications"
	keyFlashTimer           = "flash_timer"
)

type yamlSettings struct {
	WorkMinutes          int  `yaml:"work_minutes"`
	BreakMinutes         int  `yaml:"break_minutes"`
	LongBreakMinutes     int  `yaml:"long_break_minutes"`
	SoundEnabled         bool `yaml:"sound_enabled"`
	DesktopNotifications bool `yaml:"desktop_notifications"`
	FlashTimer           bool `yaml:"flash_timer"`
}

// LoadSettings reads user preferences from the app's config directory.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (preferences.Settings, error) {
	configPath, err := SettingsPath(appName)
	if err != nil {
		return preferences.DefaultSettings(), err
	}
	return LoadSettingsFrom(configPath)
}

// LoadSettingsFrom reads preferences from path. POMOTASK_* environment
// variables override file values. Each key is read on its own: a value
// that does not parse keeps its default and is reported in the returned
// error alongside the otherwise complete settings. Non-positive durations
// keep their defaults silently.
func LoadSettingsFrom(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	setDefaults(v, settings)

	if _, err := os.Stat(configPath); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return settings, fmt.Errorf("parse settings yaml: %w", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var errs []error
	readMinutes := func(key string, target *int) {
		minutes, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			errs = append(errs, fmt.Errorf("%w %s=%q", ErrInvalidSetting, key, v.GetString(key)))
			return
		}
		if minutes > 0 {
			*target = minutes
		}
	}
	readFlag := func(key string, target *bool) {
		enabled, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			errs = append(errs, fmt.Errorf("%w %s=%q", ErrInvalidSetting, key, v.GetString(key)))
			return
		}
		*target = enabled
	}

	readMinutes(keyWork, &settings.Durations.Work)
	readMinutes(keyBreak, &settings.Durations.Break)
	readMinutes(keyLongBreak, &settings.Durations.LongBreak)
	readFlag(keySoundEnabled, &settings.SoundEnabled)
	readFlag(keyDesktopNotifications, &settings.DesktopNotifications)
	readFlag(keyFlashTimer, &settings.FlashTimer)

	if err := errors.Join(errs...); err != nil {
		return settings, fmt.Errorf("decode settings: %w", err)
	}
	return settings, nil
}

// SaveSettings writes user preferences to the app's config directory.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := SettingsPath(appName)
	if err != nil {
		return err
	}
	return SaveSettingsTo(configPath, settings)
}

// SaveSettingsTo writes user preferences to path as YAML.
func SaveSettingsTo(configPath string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		WorkMinutes:          settings.Durations.Work,
		BreakMinutes:         settings.Durations.Break,
		LongBreakMinutes:     settings.Durations.LongBreak,
		SoundEnabled:         settings.SoundEnabled,
		DesktopNotifications: settings.DesktopNotifications,
		FlashTimer:           settings.FlashTimer,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

// SettingsPath returns where settings for appName live.
func SettingsPath(appName string) (string, error) {
	configDir, err := platform.NewService().GetConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func setDefaults(v *viper.Viper, settings preferences.Settings) {
	v.SetDefault(keyWork, settings.Durations.Work)
	v.SetDefault(keyBreak, settings.Durations.Break)
	v.SetDefault(keyLongBreak, settings.Durations.LongBreak)
	v.SetDefault(keySoundEnabled, settings.SoundEnabled)
	v.SetDefault(keyDesktopNotifications, settings.DesktopNotifications)
	v.SetDefault(keyFlashTimer, settings.FlashTimer)
}
