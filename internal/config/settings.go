package config

import (
	"io/fs"
	"os"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	settingsPathENV     = "CATALOG_SETTINGS"
	defaultSettingsPath = "appsettings.json"
	settingsEnvPrefix   = "CATALOG_"
)

// Settings is the address both the server and the client agree on.
type Settings struct {
	IPAddress string `koanf:"IpAddress" default:"localhost" validate:"required"`
	Port      string `koanf:"Port" default:"5000" validate:"required,numeric"`

	// FileFound is false when the settings file was missing and only
	// defaults and environment overrides apply.
	FileFound bool `koanf:"-"`
}

// envKeys maps the upper-cased environment suffixes onto the settings file keys.
var envKeys = map[string]string{
	"IPADDRESS": "IpAddress",
	"PORT":      "Port",
}

// SettingsPath returns the settings file location, CATALOG_SETTINGS or
// appsettings.json in the working directory.
func SettingsPath() string {
	return getenv(settingsPathENV, defaultSettingsPath)
}

// LoadSettings reads the settings file at path (JSON or YAML) and applies
// CATALOG_IPADDRESS / CATALOG_PORT overrides. A missing file is not an error;
// defaults fill whatever is left empty.
func LoadSettings(path string) (*Settings, error) {
	k := koanf.New(".")

	found := false
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "failed to parse settings file %s", path)
		}
		found = true
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.WithStack(err)
	}

	err := k.Load(env.Provider(settingsEnvPrefix, ".", func(s string) string {
		return envKeys[strings.TrimPrefix(s, settingsEnvPrefix)]
	}), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	settings := &Settings{}
	if err := k.Unmarshal("", settings); err != nil {
		return nil, errors.Wrap(err, "failed to decode settings")
	}

	settings.FileFound = found
	settings.IPAddress = strings.TrimSpace(settings.IPAddress)
	settings.Port = strings.TrimSpace(settings.Port)

	if err := defaults.Set(settings); err != nil {
		return nil, errors.WithStack(err)
	}

	if err := validator.New().Struct(settings); err != nil {
		return nil, errors.Wrap(err, "invalid settings")
	}

	return settings, nil
}

// Addr is the listen address of the server.
func (s *Settings) Addr() string {
	return s.IPAddress + ":" + s.Port
}

// BaseURL is the root the client sends its requests to.
func (s *Settings) BaseURL() string {
	return "http://" + s.Addr()
}
