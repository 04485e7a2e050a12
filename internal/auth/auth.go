// Package auth implements profile registration and login against the
// profile store, with bcrypt password hashing.
package auth

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/albion-rpg/albion/internal/game/gameerr"
	"github.com/albion-rpg/albion/internal/game/player"
	"github.com/albion-rpg/albion/internal/storage/profile"
)

// MaxPasswordLength is bcrypt's input ceiling in bytes.
const MaxPasswordLength = 72

// Service registers and authenticates profiles.
type Service struct {
	store  *profile.Store
	logger *zap.Logger
}

// NewService creates an auth Service backed by the given profile store.
//
// Precondition: store and logger must be non-nil.
func NewService(store *profile.Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// ValidUsername reports whether name is a filesystem-safe identifier:
// non-empty, and built only from letters, digits, underscores and
// hyphens.
func ValidUsername(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_' || r == '-':
		default:
			return false
		}
	}
	return true
}

// HashPassword creates a bcrypt hash of the given password.
//
// Precondition: password must be non-empty and at most MaxPasswordLength
// bytes.
// Postcondition: returns a bcrypt hash string.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", gameerr.InvalidInput("password must not be empty")
	}
	if len(password) > MaxPasswordLength {
		return "", gameerr.InvalidInput("password is too long")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword compares a plaintext password against a bcrypt hash in
// constant time.
//
// Postcondition: returns true iff the password matches.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Register creates, saves, and returns a fresh profile.
//
// Precondition: username must pass ValidUsername.
// Postcondition: a profile file exists for username, or an error:
// ErrProfileExists for a taken username, InvalidInput for a bad
// username or password.
func (s *Service) Register(username, password string) (*player.Player, error) {
	username = strings.TrimSpace(username)
	if !ValidUsername(username) {
		return nil, gameerr.InvalidInput("username may only contain letters, digits, _ and -")
	}
	if s.store.Exists(username) {
		return nil, gameerr.ErrProfileExists
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	p := player.New(username, hash)
	if err := s.store.Save(p); err != nil {
		return nil, fmt.Errorf("saving new profile: %w", err)
	}
	s.logger.Info("profile registered", zap.String("username", username))
	return p, nil
}

// Login loads the profile and verifies the password against the stored
// hash.
//
// Postcondition: returns the loaded player, or ErrProfileDoesNotExist /
// ErrProfileCorrupted from the load, or ErrInvalidCredentials on a
// password mismatch.
func (s *Service) Login(username, password string) (*player.Player, error) {
	p, err := s.store.Load(strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}
	if !CheckPassword(password, p.Settings.PasswordHash) {
		s.logger.Warn("failed login", zap.String("username", username))
		return nil, gameerr.ErrInvalidCredentials
	}
	s.logger.Info("profile logged in", zap.String("username", username))
	return p, nil
}

// ChangePassword re-hashes and stores a new password for the player.
//
// Postcondition: on success the profile file carries the new hash.
func (s *Service) ChangePassword(p *player.Player, newPassword string) error {
	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	p.Settings.PasswordHash = hash
	if err := s.store.Save(p); err != nil {
		return fmt.Errorf("saving new password: %w", err)
	}
	return nil
}
