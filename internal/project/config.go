package project

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config — настройки инструмента из nixel.toml.
// Конфиг управляет только выводом и обходом файлов; на семантику
// лексера и парсера ни одна опция не влияет.
type Config struct {
	Tool  ToolConfig  `toml:"tool"`
	Check CheckConfig `toml:"check"`
}

// ToolConfig describes output options shared by all commands.
type ToolConfig struct {
	// Color — "auto" | "on" | "off".
	Color string `toml:"color"`
	// Context — строк исходника вокруг диагностики; -1 отключает.
	Context int `toml:"context"`
	// MaxDiagnostics ограничивает число собираемых диагностик на файл.
	MaxDiagnostics int `toml:"max_diagnostics"`
}

// CheckConfig describes the file walk for the check command.
type CheckConfig struct {
	// Include — glob-шаблоны относительно корня проекта.
	// Пустой список означает "**/*.nix".
	Include []string `toml:"include"`
	Exclude []string `toml:"exclude"`
}

// DefaultConfig returns the configuration used when no manifest exists.
func DefaultConfig() Config {
	return Config{
		Tool: ToolConfig{
			Color:          "auto",
			Context:        2,
			MaxDiagnostics: 100,
		},
	}
}

// LoadConfig parses a nixel.toml manifest and fills defaults for
// omitted fields.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	for _, key := range meta.Undecoded() {
		return Config{}, fmt.Errorf("%s: unknown key %q", path, key.String())
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadConfigFromDir ищет nixel.toml вверх от startDir.
// Без манифеста возвращает DefaultConfig и ok=false.
func LoadConfigFromDir(startDir string) (Config, string, bool, error) {
	path, ok, err := FindNixelToml(startDir)
	if err != nil {
		return Config{}, "", false, err
	}
	if !ok {
		return DefaultConfig(), "", false, nil
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return Config{}, path, true, err
	}
	return cfg, path, true, nil
}

func (c *Config) validate() error {
	switch c.Tool.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("tool.color must be auto, on or off (got %q)", c.Tool.Color)
	}
	if c.Tool.MaxDiagnostics <= 0 {
		return fmt.Errorf("tool.max_diagnostics must be positive (got %d)", c.Tool.MaxDiagnostics)
	}
	for _, pat := range append(append([]string{}, c.Check.Include...), c.Check.Exclude...) {
		if _, err := filepath.Match(pat, ""); err != nil {
			return fmt.Errorf("bad glob %q: %w", pat, err)
		}
	}
	return nil
}

// Selects reports whether relPath passes the include/exclude globs.
// Шаблоны сверяются и с полным относительным путём, и с базовым именем.
func (c *Config) Selects(relPath string) bool {
	match := func(pat string) bool {
		if ok, _ := filepath.Match(pat, relPath); ok {
			return true
		}
		ok, _ := filepath.Match(pat, filepath.Base(relPath))
		return ok
	}
	for _, pat := range c.Check.Exclude {
		if match(pat) {
			return false
		}
	}
	if len(c.Check.Include) == 0 {
		return true
	}
	for _, pat := range c.Check.Include {
		if match(pat) {
			return true
		}
	}
	return false
}
