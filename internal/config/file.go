package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/mvanek/adproof/internal/util"
)

// Settings are the optional user overrides read from config.toml.
// Absent file or absent keys fall back to defaults; limit values are
// validated later, at composer construction.
type Settings struct {
	Theme            string `toml:"theme"`
	Device           string `toml:"device"`
	ShowAllHeadlines bool   `toml:"show_all_headlines"`
	Host             string `toml:"host"`
	HeadlineLimit    int    `toml:"headline_limit"`
	DescriptionLimit int    `toml:"description_limit"`
}

func DefaultSettings() Settings {
	return Settings{
		Theme:            "default",
		Device:           "mobile",
		ShowAllHeadlines: true,
		Host:             DefaultHost,
		HeadlineLimit:    HeadlineLimit,
		DescriptionLimit: DescriptionLimit,
	}
}

// SettingsPath returns the expected location of the user config file.
func SettingsPath() string {
	return filepath.Join(util.ConfigDir(AppName), ConfigFileName)
}

// LoadSettings reads path over the defaults. A missing file is not an
// error.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return s, nil
	}
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return s, err
	}
	if s.Host == "" {
		s.Host = DefaultHost
	}
	return s, nil
}
