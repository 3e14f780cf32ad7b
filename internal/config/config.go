package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"hexagrid/internal/board"
	"hexagrid/internal/hex"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// MaxRadius caps the generated grid at 3n²+3n+1 = 49537 cells.
const MaxRadius = 128

// Config holds the tunables of the grid and where its files live.
type Config struct {
	HexSize        float64 `mapstructure:"hex_size" yaml:"hex_size"`
	Spacing        float64 `mapstructure:"spacing" yaml:"spacing"`
	Radius         int     `mapstructure:"radius" yaml:"radius"`
	DataDir        string  `mapstructure:"data_dir" yaml:"data_dir"`
	SaveFile       string  `mapstructure:"save_file" yaml:"save_file"`
	ExportFile     string  `mapstructure:"export_file" yaml:"export_file"`
	ExpandOnSelect bool    `mapstructure:"expand_on_select" yaml:"expand_on_select"`
	Orphans        string  `mapstructure:"orphans" yaml:"orphans"`
	PanStep        int     `mapstructure:"pan_step" yaml:"pan_step"`
	LogFile        string  `mapstructure:"log_file" yaml:"log_file"`
}

func Default() Config {
	return Config{
		HexSize:        6,
		Spacing:        1,
		Radius:         2,
		DataDir:        ".",
		SaveFile:       "hexagrid_save.json",
		ExportFile:     "hexagrid_export.json",
		ExpandOnSelect: true,
		Orphans:        string(board.OrphanAdopt),
		PanStep:        4,
	}
}

// Load reads config from path, or from hexagrid.yaml in the working
// directory when path is empty. A missing default file is not an error.
// HEXAGRID_* environment variables override file values.
func Load(path string) (Config, error) {
	vp := viper.New()
	def := Default()
	vp.SetDefault("hex_size", def.HexSize)
	vp.SetDefault("spacing", def.Spacing)
	vp.SetDefault("radius", def.Radius)
	vp.SetDefault("data_dir", def.DataDir)
	vp.SetDefault("save_file", def.SaveFile)
	vp.SetDefault("export_file", def.ExportFile)
	vp.SetDefault("expand_on_select", def.ExpandOnSelect)
	vp.SetDefault("orphans", def.Orphans)
	vp.SetDefault("pan_step", def.PanStep)
	vp.SetDefault("log_file", def.LogFile)

	vp.SetEnvPrefix("hexagrid")
	vp.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vp.AutomaticEnv()

	vp.SetConfigType("yaml")
	if path != "" {
		vp.SetConfigFile(path)
		if err := vp.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		vp.SetConfigName("hexagrid")
		vp.AddConfigPath(".")
		if err := vp.ReadInConfig(); err != nil {
			var nf viper.ConfigFileNotFoundError
			if !errors.As(err, &nf) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := vp.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.HexSize <= 0:
		return fmt.Errorf("%w: hex_size must be positive, got %v", ErrInvalid, c.HexSize)
	case c.Spacing < 0:
		return fmt.Errorf("%w: spacing must not be negative, got %v", ErrInvalid, c.Spacing)
	case c.Radius < 0:
		return fmt.Errorf("%w: radius must not be negative, got %d", ErrInvalid, c.Radius)
	case c.Radius > MaxRadius:
		return fmt.Errorf("%w: radius must be at most %d, got %d", ErrInvalid, MaxRadius, c.Radius)
	case c.PanStep <= 0:
		return fmt.Errorf("%w: pan_step must be positive, got %d", ErrInvalid, c.PanStep)
	case c.SaveFile == "":
		return fmt.Errorf("%w: save_file is empty", ErrInvalid)
	}
	if _, err := board.ParseOrphanPolicy(c.Orphans); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

func (c Config) Layout() hex.Layout {
	return hex.Layout{Size: c.HexSize, Spacing: c.Spacing}
}

// OrphanPolicy returns the parsed policy; Validate has already vetted it.
func (c Config) OrphanPolicy() board.OrphanPolicy {
	p, _ := board.ParseOrphanPolicy(c.Orphans)
	return p
}

// WriteDefault writes the default config as YAML, refusing to overwrite.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("write config: %s already exists", path)
	}
	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}
