package template

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	scerrors "scaffer/internal/errors"
	"scaffer/internal/output"
	"scaffer/pkg/models"
)

// Extension is the file extension of stored template records.
const Extension = ".yaml"

// Store keeps one YAML file per template in a directory.
// It is not safe for concurrent writers; the last save wins.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the store directory.
func (s *Store) Dir() string {
	return s.dir
}

// StorageKey derives the storage key of an identifier: lower-casing, nothing else.
func StorageKey(identifier string) string {
	return strings.ToLower(identifier)
}

// Path returns the file that holds the record of identifier.
func (s *Store) Path(identifier string) string {
	return filepath.Join(s.dir, StorageKey(identifier)+Extension)
}

// List returns the identifiers in the store that contain filter (case-sensitive).
// An empty filter returns every identifier. Order follows directory enumeration.
func (s *Store) List(filter string) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, scerrors.IOFailure("read template directory", s.dir, err)
	}

	identifiers := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if filepath.Ext(name) != Extension {
			continue
		}

		identifier := strings.TrimSuffix(name, Extension)
		if filter == "" || strings.Contains(identifier, filter) {
			identifiers = append(identifiers, identifier)
		}
	}

	return identifiers, nil
}

// Load reads and parses the record of identifier.
func (s *Store) Load(identifier string) (*models.Record, error) {
	path := s.Path(identifier)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, scerrors.NotFound(identifier, path)
		}
		return nil, scerrors.IOFailure("read template", path, err)
	}

	record, err := Decode(data)
	if err != nil {
		return nil, scerrors.Corrupt(identifier, path, err)
	}

	output.Debug("loaded template", "identifier", identifier, "files", len(record.Structure.Files))
	return record, nil
}

// Save writes record under identifier, overwriting any previous record.
func (s *Store) Save(identifier string, record *models.Record) error {
	data, err := Encode(record)
	if err != nil {
		return fmt.Errorf("encoding template %q: %w", identifier, err)
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return scerrors.IOFailure("create template directory", s.dir, err)
	}

	path := s.Path(identifier)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return scerrors.IOFailure("write template", path, err)
	}

	output.Debug("saved template", "identifier", identifier, "path", path)
	return nil
}

// Delete removes the record of identifier. A missing record reports NotFound.
func (s *Store) Delete(identifier string) error {
	path := s.Path(identifier)

	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return scerrors.NotFound(identifier, path)
		}
		return scerrors.IOFailure("remove template", path, err)
	}

	return nil
}

// Exists reports whether a record is stored under identifier.
func (s *Store) Exists(identifier string) bool {
	info, err := os.Stat(s.Path(identifier))
	return err == nil && !info.IsDir()
}

// Encode serializes a record as YAML.
func Encode(record *models.Record) ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(record); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Decode parses a YAML (or JSON) record and checks that every file has history.
func Decode(data []byte) (*models.Record, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("empty template")
	}

	var record models.Record
	if err := yaml.Unmarshal(data, &record); err != nil {
		return nil, err
	}

	for i, f := range record.Structure.Files {
		if f.ContentHistory.Empty() {
			return nil, fmt.Errorf("file %d (%q) has no content history", i, f.Path)
		}
	}

	normalized := models.NewRecord(record.Structure.Directories, record.Structure.Files, record.StartCommand)
	return normalized, nil
}
