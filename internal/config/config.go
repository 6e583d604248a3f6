package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"treasure-map-service/internal/domain"
)

const DefaultLanguageCode = "en-us"

// Get returns the environment value for key or fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Settings is the host configuration handed to the map layer at startup.
type Settings struct {
	LanguageCode string       `yaml:"LANGUAGE_CODE"`
	TreasureMap  *TreasureMap `yaml:"TREASURE_MAP"`
}

// TreasureMap mirrors the TREASURE_MAP settings bag. Size tuples are kept
// untyped so that malformed values surface when a backend is built.
type TreasureMap struct {
	Backend        string         `yaml:"BACKEND"`
	APIKey         string         `yaml:"API_KEY"`
	Size           []any          `yaml:"SIZE"`
	AdminSize      []any          `yaml:"ADMIN_SIZE"`
	WidgetTemplate string         `yaml:"WIDGET_TEMPLATE"`
	OnlyMap        *bool          `yaml:"ONLY_MAP"`
	MapOptions     map[string]any `yaml:"MAP_OPTIONS"`

	// LanguageCode is copied from the host settings.
	LanguageCode string `yaml:"-"`
}

// Parse decodes a YAML settings document. The TREASURE_MAP section is required.
func Parse(data []byte) (Settings, error) {
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, domain.WrapErrorf(err, domain.ErrConfig, "parse settings")
	}

	if s.TreasureMap == nil {
		return Settings{}, domain.NewErrorf(domain.ErrConfig, "the TREASURE_MAP setting is required")
	}

	if strings.TrimSpace(s.LanguageCode) == "" {
		s.LanguageCode = DefaultLanguageCode
	}
	s.TreasureMap.LanguageCode = s.LanguageCode

	return s, nil
}

// Load reads settings from path and applies environment overrides.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, domain.WrapErrorf(err, domain.ErrConfig, "read settings %q", path)
	}

	s, err := Parse(data)
	if err != nil {
		return Settings{}, fmt.Errorf("load settings %q: %w", path, err)
	}

	ApplyEnv(&s)
	return s, nil
}

// ApplyEnv lets deployments set the backend, the API key and the language
// without editing the settings file.
func ApplyEnv(s *Settings) {
	if s.TreasureMap == nil {
		return
	}

	if v := os.Getenv("TREASURE_MAP_BACKEND"); v != "" {
		s.TreasureMap.Backend = v
	}
	if v := os.Getenv("TREASURE_MAP_API_KEY"); v != "" {
		s.TreasureMap.APIKey = v
	}
	if v := os.Getenv("LANGUAGE_CODE"); v != "" {
		s.LanguageCode = v
		s.TreasureMap.LanguageCode = v
	}
}
