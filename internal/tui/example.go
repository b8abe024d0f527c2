package tui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/MakeNowJust/heredoc"

	"github.com/mvanek/adproof/internal/config"
	"github.com/mvanek/adproof/internal/models"
	"github.com/mvanek/adproof/internal/util"
)

type exampleFile struct {
	Examples []exampleEntry `toml:"example"`
}

type exampleEntry struct {
	Name         string   `toml:"name"`
	Headlines    []string `toml:"headlines"`
	Descriptions []string `toml:"descriptions"`
	Path         []string `toml:"path"`
}

// EnsureExampleFile creates a starter examples file on first use and
// returns its path.
func EnsureExampleFile() (string, error) {
	configDir := util.ConfigDir(config.AppName)
	path := filepath.Join(configDir, config.ExampleFileName)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", err
	}
	skeleton := heredoc.Doc(`
		# adproof example ads. Add [[example]] blocks and load them with ctrl+o.

		[[example]]
		name = "Spring sale"
		headlines = ["Spring Sale Is On", "Save Up To 40%", "Free Returns"]
		descriptions = ["Shop the spring collection with free two day shipping.", "Members earn double points this week."]
		path = ["sale", "spring"]

		[[example]]
		name = "Emergency plumber"
		headlines = ["24/7 Emergency Plumber", "Licensed And Insured"]
		descriptions = ["Call now for a same day appointment with upfront pricing."]
		path = ["plumbing"]
	`)
	if err := os.WriteFile(path, []byte(skeleton), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// LoadExamples parses the examples file, dropping unnamed entries and
// duplicate names.
func LoadExamples(path string) ([]models.ExampleAd, error) {
	var file exampleFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	seen := make(map[string]bool)
	ads := make([]models.ExampleAd, 0, len(file.Examples))
	for _, entry := range file.Examples {
		if entry.Name == "" || seen[entry.Name] {
			continue
		}
		seen[entry.Name] = true
		ads = append(ads, models.ExampleAd{
			Name:         entry.Name,
			Headlines:    entry.Headlines,
			Descriptions: entry.Descriptions,
			Path:         entry.Path,
		})
	}
	return ads, nil
}
