package store

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gofrs/flock"
	"github.com/questmaster/questmaster/models"
	yaml "gopkg.in/yaml.v3"
)

const (
	defaultDataFile   = "quests.json"
	dataFileKey       = "dataFile"
	dataFileFormatKey = "dataFileFormat"
	defaultDataFormat = "json"
	formatJSON        = "json"
	formatYAML        = "yaml"
	formatTOML        = "toml"
	checksumSuffix    = ".checksum"
)

// document is the stored layout: both session keys live in one file.
type document struct {
	Quests      []models.Quest     `json:"quests" yaml:"quests" toml:"quests"`
	PlayerStats models.PlayerStats `json:"playerStats" yaml:"playerStats" toml:"playerStats"`
}

func defaultDocument() document {
	return document{
		Quests:      []models.Quest{},
		PlayerStats: models.DefaultPlayerStats(),
	}
}

// FileStore implements Store on a single data file. It supports JSON,
// YAML, and TOML formats, guards the file with flock, and verifies a
// SHA-256 sidecar checksum on every load.
type FileStore struct {
	filePath string
	format   string
	flk      *flock.Flock
	doc      document
}

// NewFileStore creates an uninitialized FileStore; Initialize must be
// called before use.
func NewFileStore() *FileStore {
	return &FileStore{doc: defaultDocument()}
}

// Initialize configures the store from the 'dataFile' and
// 'dataFileFormat' config keys, creates the data file's directory if
// needed, and loads any existing state.
func (s *FileStore) Initialize(config map[string]string) error {
	if val, ok := config[dataFileKey]; ok && val != "" {
		s.filePath = val
	} else {
		s.filePath = defaultDataFile
	}

	if val, ok := config[dataFileFormatKey]; ok && val != "" {
		formatLower := strings.ToLower(val)
		switch formatLower {
		case formatJSON, formatYAML, formatTOML:
			s.format = formatLower
		default:
			return fmt.Errorf("unsupported dataFileFormat: %s. Supported formats are json, yaml, toml", val)
		}
	} else {
		s.format = defaultDataFormat
	}

	// Keep the default filename's extension in sync with the format.
	if s.filePath == defaultDataFile && s.format != formatJSON {
		ext := filepath.Ext(s.filePath)
		s.filePath = strings.TrimSuffix(s.filePath, ext) + "." + s.format
	}

	dir := filepath.Dir(s.filePath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	s.flk = flock.New(s.filePath)

	locked, err := s.flk.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire initial lock for %s: %w", s.filePath, err)
	}
	if !locked {
		if err := s.flk.Lock(); err != nil {
			return fmt.Errorf("failed to acquire blocking initial lock for %s: %w", s.filePath, err)
		}
	}
	defer func() { _ = s.flk.Unlock() }()

	return s.loadInternal()
}

func calculateChecksum(data []byte) string {
	hasher := sha256.New()
	hasher.Write(data)
	return hex.EncodeToString(hasher.Sum(nil))
}

// loadInternal reads the data file, verifies its checksum, and decodes
// it over a defaults-initialized document so missing keys keep their
// default values. Assumes the lock is held.
func (s *FileStore) loadInternal() error {
	checksumFilePath := s.filePath + checksumSuffix
	s.doc = defaultDocument()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// Missing state means defaults, not an error.
			_ = os.Remove(checksumFilePath)
			return nil
		}
		return fmt.Errorf("failed to read data file %s: %w", s.filePath, err)
	}

	if _, err := os.Stat(checksumFilePath); err == nil {
		expectedBytes, readErr := os.ReadFile(checksumFilePath)
		if readErr != nil {
			return fmt.Errorf("failed to read checksum file %s: %w", checksumFilePath, readErr)
		}
		expected := strings.TrimSpace(string(expectedBytes))
		actual := calculateChecksum(data)
		if actual != expected {
			return fmt.Errorf("checksum mismatch for %s - expected %s, got %s - file is corrupt or tampered", s.filePath, expected, actual)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("error checking checksum file %s: %w", checksumFilePath, err)
	}
	// No checksum file alongside existing data is allowed: the data may
	// predate checksums, and the next save creates one.

	if len(data) == 0 {
		return nil
	}

	switch s.format {
	case formatJSON:
		if err := json.Unmarshal(data, &s.doc); err != nil {
			return fmt.Errorf("failed to unmarshal JSON from %s: %w", s.filePath, err)
		}
	case formatYAML:
		if err := yaml.Unmarshal(data, &s.doc); err != nil {
			return fmt.Errorf("failed to unmarshal YAML from %s: %w", s.filePath, err)
		}
	case formatTOML:
		if err := toml.Unmarshal(data, &s.doc); err != nil {
			return fmt.Errorf("failed to unmarshal TOML from %s: %w", s.filePath, err)
		}
	default:
		return fmt.Errorf("unsupported data format for loading: %s", s.format)
	}

	if s.doc.Quests == nil {
		s.doc.Quests = []models.Quest{}
	}
	return nil
}

// saveInternal writes the document and its checksum atomically via temp
// files. Assumes the lock is held.
func (s *FileStore) saveInternal() error {
	var marshaled []byte
	var err error

	switch s.format {
	case formatJSON:
		marshaled, err = json.MarshalIndent(s.doc, "", "  ")
	case formatYAML:
		marshaled, err = yaml.Marshal(s.doc)
	case formatTOML:
		buf := new(bytes.Buffer)
		if encodeErr := toml.NewEncoder(buf).Encode(s.doc); encodeErr == nil {
			marshaled = buf.Bytes()
		} else {
			err = fmt.Errorf("failed to marshal TOML: %w", encodeErr)
		}
	default:
		return fmt.Errorf("unsupported data format for saving: %s", s.format)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal state to %s: %w", s.format, err)
	}

	tempFilePath := s.filePath + ".tmp"
	checksumFilePath := s.filePath + checksumSuffix
	tempChecksumFilePath := checksumFilePath + ".tmp"

	defer func() { _ = os.Remove(tempFilePath) }()
	defer func() { _ = os.Remove(tempChecksumFilePath) }()

	if err := os.WriteFile(tempFilePath, marshaled, 0o644); err != nil {
		return fmt.Errorf("failed to write temporary data file %s: %w", tempFilePath, err)
	}
	if err := os.WriteFile(tempChecksumFilePath, []byte(calculateChecksum(marshaled)), 0o644); err != nil {
		return fmt.Errorf("failed to write temporary checksum file %s: %w", tempChecksumFilePath, err)
	}

	if err := os.Rename(tempFilePath, s.filePath); err != nil {
		return fmt.Errorf("failed to rename temporary data file %s to %s: %w", tempFilePath, s.filePath, err)
	}
	if err := os.Rename(tempChecksumFilePath, checksumFilePath); err != nil {
		return fmt.Errorf("data file %s updated but checksum file %s was not: %w - store may be inconsistent", s.filePath, checksumFilePath, err)
	}
	return nil
}

// LoadQuests returns the persisted quest collection.
func (s *FileStore) LoadQuests() ([]models.Quest, error) {
	if err := s.flk.Lock(); err != nil {
		return nil, fmt.Errorf("failed to acquire lock for LoadQuests: %w", err)
	}
	defer func() { _ = s.flk.Unlock() }()

	if err := s.loadInternal(); err != nil {
		return nil, err
	}
	return s.doc.Quests, nil
}

// SaveQuests replaces the persisted quest collection.
func (s *FileStore) SaveQuests(quests []models.Quest) error {
	if err := s.flk.Lock(); err != nil {
		return fmt.Errorf("failed to acquire lock for SaveQuests: %w", err)
	}
	defer func() { _ = s.flk.Unlock() }()

	// Reload first so a quest save cannot clobber stats written by
	// another process since our last load.
	if err := s.loadInternal(); err != nil {
		return err
	}
	if quests == nil {
		quests = []models.Quest{}
	}
	s.doc.Quests = quests
	return s.saveInternal()
}

// LoadStats returns the persisted player stats merged over defaults.
func (s *FileStore) LoadStats() (models.PlayerStats, error) {
	if err := s.flk.Lock(); err != nil {
		return models.PlayerStats{}, fmt.Errorf("failed to acquire lock for LoadStats: %w", err)
	}
	defer func() { _ = s.flk.Unlock() }()

	if err := s.loadInternal(); err != nil {
		return models.PlayerStats{}, err
	}
	return s.doc.PlayerStats, nil
}

// SaveStats replaces the persisted player stats.
func (s *FileStore) SaveStats(stats models.PlayerStats) error {
	if err := s.flk.Lock(); err != nil {
		return fmt.Errorf("failed to acquire lock for SaveStats: %w", err)
	}
	defer func() { _ = s.flk.Unlock() }()

	if err := s.loadInternal(); err != nil {
		return err
	}
	s.doc.PlayerStats = stats
	return s.saveInternal()
}

// Close releases the file lock.
func (s *FileStore) Close() error {
	if s.flk != nil {
		return s.flk.Unlock()
	}
	return nil
}
