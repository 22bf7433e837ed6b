package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/designvars/internal/validation"
	apperrors "github.com/alexisbeaulieu97/designvars/pkg/errors"
)

// Load reads settings from path on top of the defaults. A missing file is not
// an error; the defaults are returned as-is.
func Load(path string) (Settings, error) {
	settings, err := Defaults()
	if err != nil {
		return Settings{}, err
	}

	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return Settings{}, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return Settings{}, apperrors.NewParseError(path, err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, apperrors.NewParseError(path, err)
	}
	settings.DataDir = expandHome(settings.DataDir)

	if err := Validate(settings); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// Validate checks every field of s.
func Validate(s Settings) error {
	return validation.Struct(s)
}
