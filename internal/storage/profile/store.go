// Package profile persists Player aggregates as one YAML file per
// username under the platform profile directory. Writes are atomic
// (temp file + rename); a file that fails to decode is deleted and the
// load reports corruption.
package profile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/albion-rpg/albion/internal/game/gameerr"
	"github.com/albion-rpg/albion/internal/game/player"
)

// Ext is the profile file extension, including the dot.
const Ext = ".albion"

// gameDir is the directory created under the user's home.
const gameDir = "albion_term_rpg"

// DefaultDir returns the platform profile directory:
// <home>/albion_term_rpg/profiles on Linux, the BSDs, and macOS, and
// <home>\Documents\albion_term_rpg\profiles on Windows.
//
// Postcondition: returns a non-empty absolute path or an error.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	if runtime.GOOS == "windows" {
		return filepath.Join(home, "Documents", gameDir, "profiles"), nil
	}
	return filepath.Join(home, gameDir, "profiles"), nil
}

// Store reads and writes profile files in a single directory.
type Store struct {
	dir    string
	logger *zap.Logger
}

// NewStore creates a Store rooted at dir, creating the directory if
// needed.
//
// Precondition: logger must be non-nil.
// Postcondition: dir exists or an error is returned.
func NewStore(dir string, logger *zap.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating profile directory %q: %w", dir, err)
	}
	return &Store{dir: dir, logger: logger}, nil
}

// Dir returns the directory the store reads and writes.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the profile file path for the username.
//
// Precondition: username contains no path separators.
func (s *Store) Path(username string) string {
	return filepath.Join(s.dir, username+Ext)
}

// Exists reports whether a profile file exists for the username.
func (s *Store) Exists(username string) bool {
	_, err := os.Stat(s.Path(username))
	return err == nil
}

// Save encodes the player and atomically replaces their profile file.
// A crash mid-save leaves either the old or the new content.
//
// Postcondition: on success the file at Path(username) decodes back to p.
func (s *Store) Save(p *player.Player) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("%w: %v", gameerr.ErrEncodeFailed, err)
	}

	path := s.Path(p.Settings.Username)
	tmp, err := os.CreateTemp(s.dir, p.Settings.Username+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp profile: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing temp profile: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp profile: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing profile %q: %w", path, err)
	}

	s.logger.Debug("profile saved",
		zap.String("username", p.Settings.Username),
		zap.Int("bytes", len(data)),
	)
	return nil
}

// Load reads and decodes the profile for the username. A file that fails
// to decode is deleted and the load fails with ErrProfileCorrupted.
//
// Postcondition: on success the returned player's username matches.
func (s *Store) Load(username string) (*player.Player, error) {
	path := s.Path(username)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, gameerr.ErrProfileDoesNotExist
		}
		return nil, fmt.Errorf("reading profile %q: %w", path, err)
	}

	var p player.Player
	if err := yaml.Unmarshal(data, &p); err != nil {
		s.logger.Warn("deleting corrupted profile",
			zap.String("username", username),
			zap.Error(err),
		)
		_ = os.Remove(path)
		return nil, fmt.Errorf("%w: %v", gameerr.ErrProfileCorrupted, err)
	}
	return &p, nil
}

// Delete removes the profile file for the username.
//
// Postcondition: no file exists at Path(username), or an error is
// returned.
func (s *Store) Delete(username string) error {
	err := os.Remove(s.Path(username))
	if errors.Is(err, fs.ErrNotExist) {
		return gameerr.ErrProfileDoesNotExist
	}
	if err != nil {
		return fmt.Errorf("deleting profile: %w", err)
	}
	s.logger.Info("profile deleted", zap.String("username", username))
	return nil
}

// List returns the usernames of all stored profiles: the file basenames
// with the extension stripped, in directory order.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("listing profiles: %w", err)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), Ext) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), Ext))
	}
	return names, nil
}
