package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

var slotKeyPattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

type fileSlot struct {
	fs  afero.Fs
	dir string
	log *logrus.Logger
}

// NewFileSlot stores every key as its own file under dir. Writes go to a
// temporary file first and are renamed into place.
func NewFileSlot(fs afero.Fs, dir string, logger *logrus.Logger) (domain.Slot, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create slot directory %s: %w", dir, err)
	}
	logger.Infof("Repository: file slot ready at %s", dir)
	return &fileSlot{fs: fs, dir: dir, log: logger}, nil
}

func (s *fileSlot) path(key string) (string, error) {
	if !slotKeyPattern.MatchString(key) {
		return "", fmt.Errorf("invalid slot key %q", key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}

func (s *fileSlot) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	p, err := s.path(key)
	if err != nil {
		return "", false, err
	}
	data, err := afero.ReadFile(s.fs, p)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		s.log.Errorf("Repository: failed to read slot %s: %v", key, err)
		return "", false, fmt.Errorf("could not read slot %s: %w", key, err)
	}
	return string(data), true, nil
}

func (s *fileSlot) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := s.path(key)
	if err != nil {
		return err
	}
	tmp := p + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, []byte(value), 0o644); err != nil {
		s.log.Errorf("Repository: failed to write slot %s: %v", key, err)
		return fmt.Errorf("could not write slot %s: %w", key, err)
	}
	if err := s.fs.Rename(tmp, p); err != nil {
		_ = s.fs.Remove(tmp)
		s.log.Errorf("Repository: failed to replace slot %s: %v", key, err)
		return fmt.Errorf("could not replace slot %s: %w", key, err)
	}
	s.log.Debugf("Repository: wrote %d bytes to slot %s", len(value), key)
	return nil
}

func (s *fileSlot) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := s.fs.Remove(p); err != nil && !os.IsNotExist(err) {
		s.log.Errorf("Repository: failed to delete slot %s: %v", key, err)
		return fmt.Errorf("could not delete slot %s: %w", key, err)
	}
	return nil
}
