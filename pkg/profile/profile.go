// Package profile loads named Argon2 cost profiles and TUI keybindings
// from ~/.config/<app>/argon2.toml, generalizing the teacher's password-
// manager config loader into a configuration surface for this module's
// CLI and TUI front ends.
package profile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vaultforge/argon2/pkg/argon2"
	"github.com/vaultforge/argon2/pkg/profile/internal/toml"
)

const appDirName = "argon2lab"

// Keybindings configures the TUI's input handling. Carried over from the
// teacher's own keybinding scheme, unchanged in spirit.
type Keybindings struct {
	Quit    string `toml:"quit"`
	QuitAlt string `toml:"quit_alt"`
	Back    string `toml:"back"`
	Up      string `toml:"up"`
	UpAlt   string `toml:"up_alt"`
	Down    string `toml:"down"`
	DownAlt string `toml:"down_alt"`
	Select  string `toml:"select"`
}

// DefaultKeybindings returns the built-in key scheme used when no config
// file is present or a key is left unset.
func DefaultKeybindings() Keybindings {
	return Keybindings{
		Quit:    ":q",
		QuitAlt: "ctrl+c",
		Back:    "esc",
		Up:      "up",
		UpAlt:   "k",
		Down:    "down",
		DownAlt: "j",
		Select:  "enter",
	}
}

// Spec is a named Argon2 cost profile as read from argon2.toml: every
// dimension except salt, which is generated or supplied per call.
type Spec struct {
	Variant     string `toml:"variant"`
	Version     uint32 `toml:"version"`
	MemoryKB    uint32 `toml:"memory_kb"`
	Time        uint32 `toml:"time"`
	Parallelism uint32 `toml:"parallelism"`
	TagLen      uint32 `toml:"tag_len"`
}

// builtinSpecs mirror pkg/argon2policy's named profiles so that a CLI/TUI
// invocation with no config file still has sane defaults.
var builtinSpecs = map[string]Spec{
	"interactive": {Variant: "argon2id", Version: 0x13, MemoryKB: 19 * 1024, Time: 2, Parallelism: 1, TagLen: 32},
	"moderate":    {Variant: "argon2id", Version: 0x13, MemoryKB: 64 * 1024, Time: 3, Parallelism: 4, TagLen: 32},
	"sensitive":   {Variant: "argon2id", Version: 0x13, MemoryKB: 256 * 1024, Time: 4, Parallelism: 8, TagLen: 32},
}

// Config is the decoded contents of argon2.toml.
type Config struct {
	Keybindings Keybindings
	Profiles    map[string]Spec
}

// ConfigDir returns ~/.config/<appDirName>.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appDirName), nil
}

// EnsureConfigDir creates ConfigDir if it does not already exist.
func EnsureConfigDir() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}
	return dir, nil
}

// Load reads argon2.toml from the config directory, falling back silently
// to built-in defaults (and the default keybindings) when it is absent —
// the same forgiving behavior the teacher's LoadKeybindings used.
func Load() (*Config, error) {
	cfg := &Config{
		Keybindings: DefaultKeybindings(),
		Profiles:    cloneBuiltins(),
	}

	dir, err := ConfigDir()
	if err != nil {
		return cfg, nil
	}

	path := filepath.Join(dir, "argon2.toml")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	type fileFormat struct {
		Keybindings Keybindings `toml:"keybindings"`
	}
	var ff fileFormat

	raw, err := toml.DecodeFile(path, &ff)
	if err != nil {
		return cfg, nil
	}
	cfg.Keybindings = mergeKeybindings(DefaultKeybindings(), ff.Keybindings)

	for section, table := range raw {
		if section == "keybindings" {
			continue
		}
		spec, ok := parseSpecTable(table)
		if !ok {
			continue
		}
		cfg.Profiles[section] = spec
	}

	return cfg, nil
}

func cloneBuiltins() map[string]Spec {
	out := make(map[string]Spec, len(builtinSpecs))
	for k, v := range builtinSpecs {
		out[k] = v
	}
	return out
}

func mergeKeybindings(base, override Keybindings) Keybindings {
	if override.Quit != "" {
		base.Quit = override.Quit
	}
	if override.QuitAlt != "" {
		base.QuitAlt = override.QuitAlt
	}
	if override.Back != "" {
		base.Back = override.Back
	}
	if override.Up != "" {
		base.Up = override.Up
	}
	if override.UpAlt != "" {
		base.UpAlt = override.UpAlt
	}
	if override.Down != "" {
		base.Down = override.Down
	}
	if override.DownAlt != "" {
		base.DownAlt = override.DownAlt
	}
	if override.Select != "" {
		base.Select = override.Select
	}
	return base
}

func parseSpecTable(table toml.Table) (Spec, bool) {
	spec := Spec{Variant: "argon2id", Version: 0x13, TagLen: 32}
	found := false
	if v, ok := table["variant"]; ok {
		spec.Variant = v
		found = true
	}
	if v, ok := table["version"]; ok {
		if n, err := parseUint(v); err == nil {
			spec.Version = n
			found = true
		}
	}
	if v, ok := table["memory_kb"]; ok {
		if n, err := parseUint(v); err == nil {
			spec.MemoryKB = n
			found = true
		}
	}
	if v, ok := table["time"]; ok {
		if n, err := parseUint(v); err == nil {
			spec.Time = n
			found = true
		}
	}
	if v, ok := table["parallelism"]; ok {
		if n, err := parseUint(v); err == nil {
			spec.Parallelism = n
			found = true
		}
	}
	if v, ok := table["tag_len"]; ok {
		if n, err := parseUint(v); err == nil {
			spec.TagLen = n
			found = true
		}
	}
	return spec, found
}

func parseUint(s string) (uint32, error) {
	var n uint32
	_, err := fmt.Sscanf(s, "%d", &n)
	return n, err
}

// Params builds validated argon2.Params from a Spec and a caller-supplied
// salt.
func (s Spec) Params(salt []byte) (*argon2.Params, error) {
	var variant argon2.Variant
	switch s.Variant {
	case "argon2d":
		variant = argon2.Argon2d
	case "argon2i":
		variant = argon2.Argon2i
	case "argon2id", "":
		variant = argon2.Argon2id
	default:
		return nil, fmt.Errorf("%w: unknown profile variant %q", argon2.ErrInvalidVariant, s.Variant)
	}

	version := argon2.Version(s.Version)
	if version == 0 {
		version = argon2.V13
	}
	tagLen := s.TagLen
	if tagLen == 0 {
		tagLen = 32
	}

	return argon2.New(variant, version, s.MemoryKB, s.Time, s.Parallelism, tagLen, salt, nil, nil)
}
