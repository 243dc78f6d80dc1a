package fileutil

import (
	"io"
	"os"
	"path/filepath"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	DirMode  os.FileMode = 0755
	FileMode os.FileMode = 0644
)

// Read returns the whole content of path.
func Read(path string) (string, error) {
	fp, err := os.Open(path)
	if err != nil {
		return "", pkgerrors.Wrapf(err, "failed to open file %s", path)
	}
	defer func(fp *os.File) {
		err := fp.Close()
		if err != nil {
			logrus.Warnf("failed to close file %s", path)
		}
	}(fp)

	b, err := io.ReadAll(fp)
	if err != nil {
		return "", pkgerrors.Wrapf(err, "failed to read file %s", path)
	}

	return string(b), nil
}

// Write replaces the content of path with content, creating any missing
// parent directories first.
func Write(path, content string) (err error) {
	dir := filepath.Dir(path)

	// mkdir -p
	if err := os.MkdirAll(dir, DirMode); err != nil {
		return pkgerrors.Wrapf(err, "failed to create directory %s", dir)
	}

	fp, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, FileMode)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to open file %s", path)
	}
	defer func() {
		if cerr := fp.Close(); cerr != nil && err == nil {
			err = pkgerrors.Wrapf(cerr, "failed to close file %s", path)
		}
	}()

	if _, err := io.WriteString(fp, content); err != nil {
		return pkgerrors.Wrapf(err, "failed to write file %s", path)
	}

	return nil
}
