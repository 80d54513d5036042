package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"
)

const (
	appName        = "gridsnake"
	configFileName = "init.lua"

	EnvConfig   = "GRIDSNAKE_CONFIG"
	EnvPlayer   = "GRIDSNAKE_PLAYER"
	EnvLogLevel = "GRIDSNAKE_LOG_LEVEL"
	EnvLogFile  = "GRIDSNAKE_LOG_FILE"
)

// Theme holds the board palette as hex colors.
type Theme struct {
	PlayerHead string `validate:"required,hexcolor"`
	PlayerBody string `validate:"required,hexcolor"`
	Blue       string `validate:"required,hexcolor"`
	Yellow     string `validate:"required,hexcolor"`
	Food       string `validate:"required,hexcolor"`
	Border     string `validate:"required,hexcolor"`
	Accent     string `validate:"required,hexcolor"`
}

// Keys maps each action to the key names bubbletea reports for it.
type Keys struct {
	Up      []string `validate:"required,min=1,dive,required"`
	Down    []string `validate:"required,min=1,dive,required"`
	Left    []string `validate:"required,min=1,dive,required"`
	Right   []string `validate:"required,min=1,dive,required"`
	Start   []string `validate:"required,min=1,dive,required"`
	Pause   []string `validate:"required,min=1,dive,required"`
	Restart []string `validate:"required,min=1,dive,required"`
	Quit    []string `validate:"required,min=1,dive,required"`
}

type Settings struct {
	PlayerName string `validate:"required,max=20"`
	LogLevel   string `validate:"oneof=debug info warn error"`
	LogFile    string
	Theme      Theme
	Keys       Keys
}

func Default() Settings {
	return Settings{
		PlayerName: "player",
		LogLevel:   "info",
		Theme: Theme{
			PlayerHead: "#4CAF50",
			PlayerBody: "#8BC34A",
			Blue:       "#0000FF",
			Yellow:     "#FFFF00",
			Food:       "#FF5722",
			Border:     "#626262",
			Accent:     "#FF9900",
		},
		Keys: Keys{
			Up:      []string{"up", "w", "k"},
			Down:    []string{"down", "s", "j"},
			Left:    []string{"left", "a", "h"},
			Right:   []string{"right", "d", "l"},
			Start:   []string{"enter", " "},
			Pause:   []string{"p"},
			Restart: []string{"r"},
			Quit:    []string{"q", "esc"},
		},
	}
}

// Level converts LogLevel for charmbracelet/log. Unknown values fall back to
// info, though Validate already rejects them.
func (s Settings) Level() log.Level {
	level, err := log.ParseLevel(s.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

func (s Settings) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(s); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			msgs := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid settings: %s", strings.Join(msgs, ", "))
		}
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}

// ResolvePath picks the settings file: the explicit flag, then
// GRIDSNAKE_CONFIG, then init.lua under the user config directory if it
// exists. An empty result means run on defaults.
func ResolvePath(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	if env := os.Getenv(EnvConfig); env != "" {
		return env
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	candidate := filepath.Join(dir, appName, configFileName)
	if _, err := os.Stat(candidate); err != nil {
		return ""
	}
	return candidate
}

// Load layers defaults, the Lua file at path (if any) and environment
// overrides, then validates the result.
func Load(path string) (Settings, error) {
	settings := Default()

	if path != "" {
		if err := loadLuaFile(path, &settings); err != nil {
			return Settings{}, fmt.Errorf("loading %s: %w", path, err)
		}
	}

	applyEnv(&settings)

	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

func applyEnv(s *Settings) {
	if v := os.Getenv(EnvPlayer); v != "" {
		s.PlayerName = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		s.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		s.LogFile = v
	}
}
