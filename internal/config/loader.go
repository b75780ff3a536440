package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name searched for in the config directories.
const ConfigFile = "shooter.yaml"

// ErrGridDoesNotFit is returned when the enemy formation does not fit the field.
var ErrGridDoesNotFit = errors.New("config: enemy grid does not fit the field")

var validate = validator.New()

// Loader reads shooter configuration from a filesystem.
type Loader struct {
	Fs      afero.Fs
	HomeDir string      // Empty disables the user config directory
	Logger  *log.Logger // Receives warnings about skipped files; may be nil
}

// NewLoader returns a loader over the real filesystem.
func NewLoader() *Loader {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return &Loader{Fs: afero.NewOsFs(), HomeDir: home}
}

// LoadShooter loads shooter configuration from the real filesystem.
// Search order: customPath -> ~/.shooter/configs/shooter.yaml -> ./configs/shooter.yaml -> embedded default
func LoadShooter(customPath string) (ShooterConfig, error) {
	return NewLoader().Load(customPath)
}

// Load resolves configuration using the standard search order.
// A custom path that cannot be read, parsed or validated is an error; files
// found by searching are skipped when broken.
func (l *Loader) Load(customPath string) (ShooterConfig, error) {
	if customPath != "" {
		cfg, err := l.readFile(customPath)
		if err != nil {
			return DefaultShooterConfig(), err
		}
		return cfg, nil
	}

	for _, path := range l.searchPaths() {
		cfg, err := l.readFile(path)
		if err == nil {
			return cfg, nil
		}
		if !errors.Is(err, fs.ErrNotExist) && l.Logger != nil {
			l.Logger.Warn("skipping broken config", "path", path, "error", err)
		}
	}

	cfg, err := Parse(defaultShooterYAML)
	if err != nil {
		return DefaultShooterConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// readFile reads, parses and validates one config file.
func (l *Loader) readFile(path string) (ShooterConfig, error) {
	data, err := afero.ReadFile(l.Fs, path)
	if err != nil {
		return ShooterConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return ShooterConfig{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// searchPaths lists the files tried when no custom path is given.
func (l *Loader) searchPaths() []string {
	var paths []string
	if userCfgPath := l.userConfigPath(); userCfgPath != "" {
		paths = append(paths, userCfgPath)
	}
	return append(paths, filepath.Join("configs", ConfigFile))
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func (l *Loader) userConfigPath() string {
	if l.HomeDir == "" {
		return ""
	}
	return filepath.Join(l.HomeDir, ".shooter", "configs", ConfigFile)
}

// Parse decodes YAML on top of the defaults and validates the result.
// Keys missing from the document keep their default values.
func Parse(data []byte) (ShooterConfig, error) {
	cfg := DefaultShooterConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks field constraints and that the enemy grid fits the field.
func Validate(cfg ShooterConfig) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}

	e := cfg.Enemies
	if e.MinSpeed > e.Speed {
		return fmt.Errorf("config: min_speed %d exceeds speed %d", e.MinSpeed, e.Speed)
	}
	if e.MinShootDelay > e.ShootDelay {
		return fmt.Errorf("config: min_shoot_delay %d exceeds shoot_delay %d", e.MinShootDelay, e.ShootDelay)
	}

	lastRow := e.FirstRow + (e.Rows-1)*e.RowSpacing
	if lastRow >= cfg.Field.Height-2 {
		return fmt.Errorf("%w: last row %d, field height %d", ErrGridDoesNotFit, lastRow, cfg.Field.Height)
	}
	if e.FirstColumn >= cfg.Field.Width-e.ColumnMargin {
		return fmt.Errorf("%w: first column %d, field width %d", ErrGridDoesNotFit, e.FirstColumn, cfg.Field.Width)
	}
	return nil
}

// ApplyShooterPreset modifies the config based on a difficulty preset.
func ApplyShooterPreset(cfg *ShooterConfig, preset DifficultyPreset) {
	e := &cfg.Enemies
	switch preset {
	case DifficultyEasy:
		cfg.Player.MaxHealth = 7
		e.Speed = max(e.MinSpeed, 10)
		e.ShootDelay = max(e.MinShootDelay, 20)
	case DifficultyHard:
		cfg.Player.MaxHealth = 3
		e.Speed = max(e.MinSpeed, 6)
		e.ShootDelay = max(e.MinShootDelay, 10)
	case DifficultyFixed:
		e.SpeedStep = 0
		e.ShootStep = 0
	}
}
