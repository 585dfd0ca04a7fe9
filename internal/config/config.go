package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultPath    = "folio.config.json"
	DefaultEnvFile = ".env"

	DefaultThreshold = 0.1
)

var ErrThreshold = errors.New("threshold must be within [0,1]")

// Settings controls how the page is shown. Precedence, lowest first:
// Default(), the JSON file, the environment (.env included), flags.
type Settings struct {
	Content   string  `json:"content,omitempty"`   // portfolio JSON; empty uses the built-in copy
	Asset     string  `json:"asset,omitempty"`     // overrides about.animation
	Threshold float64 `json:"threshold"`
	NoAnim    bool    `json:"noAnim,omitempty"`
	Sound     bool    `json:"sound,omitempty"`
	Volume    float64 `json:"volume,omitempty"` // click volume, 0..1
	NoColor   bool    `json:"noColor,omitempty"`
	LogFile   string  `json:"logFile,omitempty"`
}

func Default() *Settings {
	return &Settings{Threshold: DefaultThreshold, Volume: 0.3}
}

// Load reads a settings file on top of Default(). A missing file is not an
// error when missingOK is set, so the default path can always be tried.
func Load(path string, missingOK bool) (*Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if missingOK && errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse config JSON: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func Save(path string, s *Settings) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (s *Settings) Validate() error {
	if s.Threshold < 0 || s.Threshold > 1 {
		return fmt.Errorf("%w, got %v", ErrThreshold, s.Threshold)
	}
	if s.Volume < 0 || s.Volume > 1 {
		return fmt.Errorf("volume must be within [0,1], got %v", s.Volume)
	}
	return nil
}

// Env keys read by ApplyEnv.
const (
	EnvContent   = "FOLIO_CONTENT"
	EnvAsset     = "FOLIO_ASSET"
	EnvThreshold = "FOLIO_THRESHOLD"
	EnvSound     = "FOLIO_SOUND"
	EnvNoAnim    = "FOLIO_NO_ANIM"
	EnvNoColor   = "NO_COLOR"
)

var envKeys = []string{EnvContent, EnvAsset, EnvThreshold, EnvSound, EnvNoAnim, EnvNoColor}

// Env collects the settings environment: values from the dotenv file,
// overridden by the process environment. A missing dotenv file is skipped.
func Env(dotenv string) (map[string]string, error) {
	env := map[string]string{}
	if dotenv != "" {
		vals, err := godotenv.Read(dotenv)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read %s: %w", dotenv, err)
		}
		for _, k := range envKeys {
			if v, ok := vals[k]; ok {
				env[k] = v
			}
		}
	}
	for _, k := range envKeys {
		if v, ok := os.LookupEnv(k); ok {
			env[k] = v
		}
	}
	return env, nil
}

// ApplyEnv overlays env onto s.
func (s *Settings) ApplyEnv(env map[string]string) error {
	if v, ok := env[EnvContent]; ok && v != "" {
		s.Content = v
	}
	if v, ok := env[EnvAsset]; ok && v != "" {
		s.Asset = v
	}
	if v, ok := env[EnvThreshold]; ok && v != "" {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvThreshold, err)
		}
		s.Threshold = f
	}
	for key, dst := range map[string]*bool{EnvSound: &s.Sound, EnvNoAnim: &s.NoAnim} {
		v, ok := env[key]
		if !ok || v == "" {
			continue
		}
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = b
	}
	// https://no-color.org: any non-empty value disables color.
	if v, ok := env[EnvNoColor]; ok && v != "" {
		s.NoColor = true
	}
	return s.Validate()
}
