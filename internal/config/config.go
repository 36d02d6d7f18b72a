// Package config loads TraduzAi settings from defaults, an optional TOML
// file and TRADUZAI_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/Mr-Dark-debug/traduzai/internal/animation"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Splash    SplashConfig    `toml:"splash"`
	Animation AnimationConfig `toml:"animation"`
	Languages LanguagesConfig `toml:"languages"`
	Theme     ThemeConfig     `toml:"theme"`
}

// SplashConfig controls the launch screen.
type SplashConfig struct {
	Delay     time.Duration `toml:"delay"`
	Animation string        `toml:"animation"`
}

// AnimationConfig controls the brand animation.
type AnimationConfig struct {
	LoopMode string `mapstructure:"loop_mode" toml:"loop_mode"`
	Header   string `toml:"header"`
}

// LanguagesConfig lists the languages offered by the language menus.
type LanguagesConfig struct {
	Available []string `toml:"available"`
	Source    string   `toml:"source"`
	Target    string   `toml:"target"`
}

// ThemeConfig holds the colors applied once at the composition root.
type ThemeConfig struct {
	Background  string `toml:"background"`
	Surface     string `toml:"surface"`
	Text        string `toml:"text"`
	TextDim     string `mapstructure:"text_dim" toml:"text_dim"`
	Placeholder string `toml:"placeholder"`
	Accent      string `toml:"accent"`
	Stroke      string `toml:"stroke"`
	TabBar      string `mapstructure:"tab_bar" toml:"tab_bar"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		panic(fmt.Sprintf("config.Defaults: %v", err))
	}
	return c
}

// Encode writes c as a TOML document that Load accepts.
func (c Config) Encode(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("splash.delay", "500ms")
	v.SetDefault("splash.animation", "traduzai")
	v.SetDefault("animation.loop_mode", "loop")
	v.SetDefault("animation.header", "traduzai-mini")
	v.SetDefault("languages.available", []string{"Inglês", "Espanhol", "Português"})
	v.SetDefault("languages.source", "Português")
	v.SetDefault("languages.target", "Inglês")
	v.SetDefault("theme.background", "#F2F2F7")
	v.SetDefault("theme.surface", "#FFFFFF")
	v.SetDefault("theme.text", "#000000")
	v.SetDefault("theme.text_dim", "#6E6E73")
	v.SetDefault("theme.placeholder", "#AAAAAA")
	v.SetDefault("theme.accent", "#3478F6")
	v.SetDefault("theme.stroke", "#D1D1D6")
	v.SetDefault("theme.tab_bar", "#FFFFFF")
}

// Path returns the config file location: $TRADUZAI_CONFIG if set, otherwise
// ~/.config/traduzai/config.toml.
func Path() string {
	if p := os.Getenv("TRADUZAI_CONFIG"); p != "" {
		return p
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "traduzai", "config.toml")
}

// Load reads configuration from path (when it exists) and the environment.
// An empty path means Path().
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if path == "" {
		path = Path()
	}
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	v.SetEnvPrefix("TRADUZAI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks values that cannot be defaulted silently.
func (c Config) Validate() error {
	if c.Splash.Delay < 0 {
		return fmt.Errorf("splash.delay must not be negative, got %s", c.Splash.Delay)
	}
	if _, err := animation.ParseLoopMode(c.Animation.LoopMode); err != nil {
		return fmt.Errorf("animation.loop_mode: %w", err)
	}
	if len(c.Languages.Available) == 0 {
		return fmt.Errorf("languages.available must list at least one language")
	}
	for _, lang := range []string{c.Languages.Source, c.Languages.Target} {
		if !slices.Contains(c.Languages.Available, lang) {
			return fmt.Errorf("language %q is not in languages.available", lang)
		}
	}
	return nil
}

// LoopMode returns the parsed animation loop mode.
func (c Config) LoopMode() animation.LoopMode {
	mode, err := animation.ParseLoopMode(c.Animation.LoopMode)
	if err != nil {
		return animation.Loop
	}
	return mode
}
