// Package manifest reads and writes the list of repositories a clone run works from.
package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v2"

	logger "repoclone/internal/log"
)

// Descriptor is one manifest entry.
type Descriptor struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
}

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks YAML for .yaml/.yml files and JSON for everything else.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

var ErrUnreadable = errors.New("manifest unreadable")

type UnreadableError struct {
	Path string
	Err  error
}

func (e *UnreadableError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrUnreadable, e.Path, e.Err)
}

func (e *UnreadableError) Unwrap() []error {
	return []error{ErrUnreadable, e.Err}
}

// Load reads the manifest at path. Entries without a name or url are skipped.
func Load(path string) ([]Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &UnreadableError{Path: path, Err: err}
	}
	descriptors, err := Decode(data, FormatFromPath(path))
	if err != nil {
		return nil, &UnreadableError{Path: path, Err: err}
	}
	return descriptors, nil
}

// Decode parses a serialized list of objects. Objects lacking a string name or url are
// skipped; anything that is not a list of objects is an error.
func Decode(data []byte, format Format) ([]Descriptor, error) {
	var entries []map[string]interface{}
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &entries)
	default:
		err = json.Unmarshal(data, &entries)
	}
	if err != nil {
		return nil, fmt.Errorf("expected a list of {name, url} objects: %w", err)
	}
	// An empty list decodes to a non-nil slice; nil means null or an empty document.
	if entries == nil {
		return nil, errors.New("expected a list of {name, url} objects, found no document")
	}

	descriptors := make([]Descriptor, 0, len(entries))
	for i, entry := range entries {
		name, _ := entry["name"].(string)
		url, _ := entry["url"].(string)
		if name == "" || url == "" {
			logger.Log.Warnf("Skipping manifest entry %d: missing name or url", i)
			continue
		}
		descriptors = append(descriptors, Descriptor{Name: name, URL: url})
	}

	for _, duplicate := range lo.FindDuplicatesBy(descriptors, func(d Descriptor) string { return d.Name }) {
		logger.Log.Warnf("Manifest lists repository %s more than once", duplicate.Name)
	}
	return descriptors, nil
}

// Encode writes descriptors in the given format. JSON uses a 4 space indent.
func Encode(w io.Writer, format Format, descriptors []Descriptor) error {
	if descriptors == nil {
		descriptors = []Descriptor{}
	}
	switch format {
	case FormatYAML:
		data, err := yaml.Marshal(descriptors)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "    ")
		encoder.SetEscapeHTML(false)
		return encoder.Encode(descriptors)
	}
}

// Write stores descriptors at path, in the format implied by its extension.
func Write(path string, descriptors []Descriptor) error {
	var buf bytes.Buffer
	if err := Encode(&buf, FormatFromPath(path), descriptors); err != nil {
		return fmt.Errorf("failed to encode manifest %s: %w", path, err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write manifest %s: %w", path, err)
	}
	return nil
}
