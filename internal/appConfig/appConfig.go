package appConfig

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const DefaultConfigFileName = "config.json"

const (
	KeyOutputFolder  = "output_folder"
	KeyInputJSONFile = "input_json_file"
)

type AppConfig struct {
	OutputFolder  string
	InputJSONFile string

	// keys this tool does not know about, written back unchanged
	extra map[string]json.RawMessage
}

type ConfigurationError struct {
	Key  string
	Path string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("'%s' not found in the config file %s", e.Key, e.Path)
}

// Store is the JSON file the settings persist in.
type Store struct {
	Path string
}

// ResolveStore returns the store for an explicit path, or for DefaultConfigFileName in the
// working directory, falling back to the home directory when only that one exists.
func ResolveStore(explicitPath string) Store {
	if explicitPath != "" {
		return Store{Path: explicitPath}
	}
	if _, err := os.Stat(DefaultConfigFileName); err == nil {
		return Store{Path: DefaultConfigFileName}
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		homeConfig := filepath.Join(homeDir, DefaultConfigFileName)
		if _, err := os.Stat(homeConfig); err == nil {
			return Store{Path: homeConfig}
		}
	}
	return Store{Path: DefaultConfigFileName}
}

// Load reads the store. A missing file yields an empty configuration.
func (s Store) Load() (*AppConfig, error) {
	config := &AppConfig{extra: map[string]json.RawMessage{}}

	data, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config file %s: %w", s.Path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return config, nil
	}

	if err := json.Unmarshal(data, &config.extra); err != nil {
		return nil, fmt.Errorf("could not unmarshal config file %s: %w", s.Path, err)
	}
	if config.OutputFolder, err = takeString(config.extra, KeyOutputFolder); err != nil {
		return nil, fmt.Errorf("config file %s: %w", s.Path, err)
	}
	if config.InputJSONFile, err = takeString(config.extra, KeyInputJSONFile); err != nil {
		return nil, fmt.Errorf("config file %s: %w", s.Path, err)
	}
	return config, nil
}

// Save writes config to the store, keeping keys it does not know about.
func (s Store) Save(config *AppConfig) error {
	values := make(map[string]interface{}, len(config.extra)+2)
	for key, raw := range config.extra {
		values[key] = raw
	}
	if config.OutputFolder != "" {
		values[KeyOutputFolder] = config.OutputFolder
	}
	if config.InputJSONFile != "" {
		values[KeyInputJSONFile] = config.InputJSONFile
	}

	data, err := json.MarshalIndent(values, "", "    ")
	if err != nil {
		return fmt.Errorf("could not marshal config: %w", err)
	}
	if err := os.WriteFile(s.Path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("could not write config file %s: %w", s.Path, err)
	}
	return nil
}

// Update loads the store, applies change and saves the result.
func (s Store) Update(change func(config *AppConfig)) (*AppConfig, error) {
	config, err := s.Load()
	if err != nil {
		return nil, err
	}
	change(config)
	if err := s.Save(config); err != nil {
		return nil, err
	}
	return config, nil
}

func (s Store) RequireOutputFolder(config *AppConfig) (string, error) {
	if config.OutputFolder == "" {
		return "", &ConfigurationError{Key: KeyOutputFolder, Path: s.Path}
	}
	return config.OutputFolder, nil
}

func (s Store) RequireInputJSONFile(config *AppConfig) (string, error) {
	if config.InputJSONFile == "" {
		return "", &ConfigurationError{Key: KeyInputJSONFile, Path: s.Path}
	}
	return config.InputJSONFile, nil
}

func takeString(values map[string]json.RawMessage, key string) (string, error) {
	raw, ok := values[key]
	if !ok {
		return "", nil
	}
	delete(values, key)
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", fmt.Errorf("%s must be a string", key)
	}
	return value, nil
}
