package tradesim

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrNoAccount reports that the store file does not exist yet. It is distinct
// from a decode error: an unreadable file is never mistaken for a first run.
var ErrNoAccount = fmt.Errorf("no saved account: %w", fs.ErrNotExist)

// Store persists a single account to one file.
type Store struct {
	path string
}

// NewStore creates a store over the given file path.
func NewStore(path string) *Store { return &Store{path: path} }

func (s *Store) Path() string { return s.path }

// Load reads the saved account. It returns ErrNoAccount when no file exists;
// any other failure (including a corrupt file) is returned as is.
func (s *Store) Load() (*Account, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoAccount
	}
	if err != nil {
		return nil, fmt.Errorf("could not open account file %q: %w", s.path, err)
	}
	defer f.Close()

	account, err := DecodeAccount(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode account file %q: %w", s.path, err)
	}
	return account, nil
}

// Save overwrites the store file with the full account. The file is written
// to a temporary sibling first and renamed into place, so a failed write
// never destroys the previous save.
func (s *Store) Save(a *Account) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".tradesim-*")
	if err != nil {
		return fmt.Errorf("could not create account file in %q: %w", dir, err)
	}
	defer os.Remove(tmp.Name())

	if err := EncodeAccount(tmp, a); err != nil {
		tmp.Close()
		return fmt.Errorf("could not write account file %q: %w", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not write account file %q: %w", s.path, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("could not replace account file %q: %w", s.path, err)
	}
	return nil
}
