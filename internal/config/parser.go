package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/statedemo/internal/domain/appstate"
	apperrors "github.com/alexisbeaulieu97/statedemo/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseConfig loads a configuration file from disk, applies defaults for
// anything the file leaves out, validates it, and returns the result.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewParseError(path, 0, err)
	}

	cfg := Default()
	if err := decodeStrict(data, &cfg); err != nil {
		return nil, apperrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadConfig returns Default() when path is empty and ParseConfig otherwise.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		cfg := Default()
		return &cfg, nil
	}
	return ParseConfig(path)
}

// ParseScript loads and validates a replay script.
func ParseScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewParseError(path, 0, err)
	}

	var script Script
	if err := decodeStrict(data, &script); err != nil {
		return nil, apperrors.NewParseError(path, extractLine(err), err)
	}
	if script.Variant == "" {
		script.Variant = "both"
	}

	if err := ValidateScript(&script); err != nil {
		return nil, err
	}

	return &script, nil
}

// Ops parses the script's operation names.
func (s *Script) Ops() ([]appstate.Operation, error) {
	ops, err := appstate.ParseOperations(s.Operations)
	if err != nil {
		return nil, fmt.Errorf("script %q: %w", s.Name, err)
	}
	return ops, nil
}

// Check compares final against the script's expectation. A script without
// expect always passes.
func (s *Script) Check(final appstate.Snapshot) error {
	if s.Expect == nil {
		return nil
	}
	if s.Expect.Count != nil && *s.Expect.Count != final.Count {
		return fmt.Errorf("script %q expected count %d, got %d", s.Name, *s.Expect.Count, final.Count)
	}
	if s.Expect.Theme != "" {
		theme, err := appstate.ParseTheme(s.Expect.Theme)
		if err != nil {
			return fmt.Errorf("script %q: %w", s.Name, err)
		}
		if theme != final.Theme {
			return fmt.Errorf("script %q expected theme %s, got %s", s.Name, theme, final.Theme)
		}
	}
	return nil
}

func decodeStrict(data []byte, out interface{}) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
