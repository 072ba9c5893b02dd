package staging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/you-humble/material-catalog/internal/model"
	"github.com/you-humble/material-catalog/platform/logger"
)

const (
	filePrefix = "upload-"
	maxExtLen  = 10
)

type stager struct {
	fs      afero.Fs
	dir     string
	maxSize int64
}

// File is an upload persisted under the staging directory.
type File struct {
	// Path inside the staging filesystem.
	Path string
	// Name is the client-supplied filename.
	Name string
	Size int64

	fs afero.Fs
}

func NewStager(fs afero.Fs, dir string, maxSize int64) *stager {
	return &stager{fs: fs, dir: dir, maxSize: maxSize}
}

func (s *stager) Init() error {
	const op = "staging.Init"

	if err := s.fs.MkdirAll(s.dir, 0o750); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Stage copies the upload into a uniquely named file. On error nothing is
// left behind in the staging directory.
func (s *stager) Stage(ctx context.Context, upload model.Upload) (*File, error) {
	const op = "staging.Stage"

	if upload.Content == nil {
		return nil, fmt.Errorf("%s: %w: upload has no content", op, model.ErrInvalidArgument)
	}
	if s.maxSize > 0 && upload.Size > s.maxSize {
		return nil, fmt.Errorf("%s: %w", op, model.ErrFileTooLarge)
	}

	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	tmp, err := afero.TempFile(s.fs, s.dir, filePrefix+"*"+safeExt(upload.Filename))
	if err != nil {
		return nil, fmt.Errorf("%s: create temp file: %w", op, err)
	}
	path := tmp.Name()

	src := upload.Content
	if s.maxSize > 0 {
		src = io.LimitReader(upload.Content, s.maxSize+1)
	}

	n, copyErr := io.Copy(tmp, src)
	closeErr := tmp.Close()

	switch {
	case copyErr != nil:
		err = fmt.Errorf("%s: write temp file: %w", op, copyErr)
	case closeErr != nil:
		err = fmt.Errorf("%s: close temp file: %w", op, closeErr)
	case s.maxSize > 0 && n > s.maxSize:
		err = fmt.Errorf("%s: %w", op, model.ErrFileTooLarge)
	}
	if err != nil {
		if rerr := s.fs.Remove(path); rerr != nil && !errors.Is(rerr, os.ErrNotExist) {
			logger.Warn(ctx, "remove staged file", logger.String("path", path), logger.ErrorF(rerr))
		}
		return nil, err
	}

	return &File{
		Path: path,
		Name: filepath.Base(upload.Filename),
		Size: n,
		fs:   s.fs,
	}, nil
}

// Remove deletes the staged file. Removing an already removed file is not an
// error.
func (f *File) Remove() error {
	if f == nil || f.fs == nil {
		return nil
	}
	if err := f.fs.Remove(f.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("staging.Remove: %w", err)
	}
	return nil
}

func safeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	if len(ext) < 2 || len(ext) > maxExtLen {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
