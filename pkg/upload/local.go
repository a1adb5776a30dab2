package upload

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// Local writes files below root, usually the static directory, and returns
// the path relative to it.
type Local struct {
	root string
}

func NewLocal(root string) *Local { return &Local{root: root} }

func (l *Local) Save(ctx context.Context, dir string, fh *multipart.FileHeader) (string, error) {
	if !AllowedImage(fh.Filename) {
		return "", ErrNotAnImage
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(filepath.Join(l.root, dir), 0o755); err != nil {
		return "", err
	}
	name := storedName(fh.Filename)
	if err := writeFile(filepath.Join(l.root, dir, name), src); err != nil {
		return "", err
	}
	ref := path.Join(dir, name)
	log.WithField("ref", ref).Debug("[upload] stored locally")
	return ref, nil
}

func (l *Local) Remove(_ context.Context, ref string) error {
	p := filepath.Join(l.root, filepath.FromSlash(path.Clean("/"+ref)))
	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// writeFile copies src to name and removes the file again if the copy fails.
func writeFile(name string, src io.Reader) error {
	dst, err := os.Create(name)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(name)
		return err
	}
	if err := dst.Close(); err != nil {
		os.Remove(name)
		return err
	}
	return nil
}
