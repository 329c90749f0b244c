package media

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage keeps files in a single flat directory served as /uploads.
type LocalStorage struct {
	root string
}

func NewLocalStorage(root string) (*LocalStorage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &LocalStorage{root: root}, nil
}

func (s *LocalStorage) Root() string { return s.root }

// path maps a "/uploads/<name>" ref onto the root dir. Base() strips any
// separators so a crafted ref cannot escape the upload root.
func (s *LocalStorage) path(ref string) string {
	name := strings.TrimPrefix(ref, refPrefix)
	return filepath.Join(s.root, filepath.Base(name))
}

// Save stores src under exactly name; callers pass UniqueFilename output
// (or a derived thumbnail name) so references stay reconstructible.
func (s *LocalStorage) Save(_ context.Context, name string, src io.Reader) (string, error) {
	stored := filepath.Base(name)

	dst, err := os.Create(filepath.Join(s.root, stored))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", err
	}

	return refPrefix + stored, nil
}

func (s *LocalStorage) Exists(_ context.Context, ref string) bool {
	if ref == "" {
		return false
	}
	_, err := os.Stat(s.path(ref))
	return err == nil
}

func (s *LocalStorage) Delete(_ context.Context, ref string) error {
	err := os.Remove(s.path(ref))
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}
