package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"tickclock/internal/core/model"
	"tickclock/internal/schema"
)

const cardFileName = "card.yaml"

// ErrWrongCardType indicates a YAML document for a different card type.
var ErrWrongCardType = errors.New("not a clock-ticks card")

// LoadCard reads card overrides from a YAML file.
// If the file does not exist, the picker's stub configuration is returned.
func LoadCard(path string) (model.Overrides, error) {
	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return schema.StubConfig(), nil
		}
		return model.Overrides{}, fmt.Errorf("read card file: %w", err)
	}
	return ParseCard(rawData)
}

// ParseCard decodes card overrides from YAML. Unknown keys are rejected so
// that misspelled options do not silently fall back to defaults.
func ParseCard(rawData []byte) (model.Overrides, error) {
	var overrides model.Overrides
	decoder := yaml.NewDecoder(bytes.NewReader(rawData))
	decoder.KnownFields(true)
	if err := decoder.Decode(&overrides); err != nil {
		if errors.Is(err, io.EOF) {
			return model.Overrides{}, nil
		}
		return model.Overrides{}, fmt.Errorf("parse card yaml: %w", err)
	}

	if overrides.Type != nil && *overrides.Type != model.CardType {
		return model.Overrides{}, fmt.Errorf("%w: type %q", ErrWrongCardType, *overrides.Type)
	}
	return overrides, nil
}

// DefaultCardPath returns the card file location inside the user config dir.
func DefaultCardPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, cardFileName), nil
}
