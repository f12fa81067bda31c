// Package config loads the CLI configuration with priority:
// flags > environment > config file > defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvVault  = "KNOWLING_VAULT"
	EnvRemote = "KNOWLING_REMOTE"
	EnvLocale = "KNOWLING_LOCALE"
)

// Config is the resolved CLI configuration.
type Config struct {
	Vault  string `yaml:"vault"`
	Remote string `yaml:"remote"` // base URL of a remote note service; wins over Vault
	Locale string `yaml:"locale"`
}

// Flags holds the values given on the command line. Empty means unset.
type Flags struct {
	ConfigFile string
	Vault      string
	Remote     string
	Locale     string
}

// Load resolves the configuration. defaultVault is used when nothing else
// names a vault. A missing explicit config file is an error; a missing
// implicit one (knowling.yaml inside the vault) is not.
func Load(flags Flags, defaultVault string) (*Config, error) {
	cfg := &Config{Vault: defaultVault, Locale: "en"}

	path, explicit := flags.ConfigFile, flags.ConfigFile != ""
	if !explicit && defaultVault != "" {
		path = filepath.Join(defaultVault, "knowling.yaml")
	}
	if path != "" {
		file, err := loadFile(path)
		switch {
		case err == nil:
			merge(cfg, file, filepath.Dir(path))
		case explicit || !errors.Is(err, fs.ErrNotExist):
			return nil, err
		}
	}

	merge(cfg, &Config{
		Vault:  os.Getenv(EnvVault),
		Remote: os.Getenv(EnvRemote),
		Locale: os.Getenv(EnvLocale),
	}, "")
	merge(cfg, &Config{Vault: flags.Vault, Remote: flags.Remote, Locale: flags.Locale}, "")

	if cfg.Vault == "" && cfg.Remote == "" {
		return nil, errors.New("no vault configured")
	}
	return cfg, nil
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// merge copies the set fields of src onto dst. Relative vault paths in a
// config file are resolved against base. A vault without a remote clears the
// remote of lower layers, since the remote would otherwise win.
func merge(dst, src *Config, base string) {
	if src.Vault != "" {
		dst.Vault = src.Vault
		dst.Remote = ""
		if base != "" && !filepath.IsAbs(dst.Vault) {
			dst.Vault = filepath.Join(base, dst.Vault)
		}
	}
	if src.Remote != "" {
		dst.Remote = src.Remote
	}
	if src.Locale != "" {
		dst.Locale = src.Locale
	}
}
