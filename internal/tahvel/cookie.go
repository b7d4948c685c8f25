package tahvel

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// BaseDir returns the root data directory (~/.tahvelcheck).
func BaseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".tahvelcheck"), nil
}

// cookiePath returns the path of the persisted session cookie.
func cookiePath(base string) string {
	return filepath.Join(base, "cookie")
}

// LoadCookie reads the persisted session cookie. It returns an empty
// string when no cookie has been saved.
func LoadCookie(base string) (string, error) {
	data, err := os.ReadFile(cookiePath(base))
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading cookie file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// SaveCookie persists the session cookie for future runs.
func SaveCookie(base, cookie string) error {
	path := cookiePath(base)
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	// Atomic write: write to temp file then rename.
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, []byte(cookie+"\n"), 0o600); err != nil {
		return fmt.Errorf("writing cookie file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("saving cookie file: %w", err)
	}
	return nil
}
