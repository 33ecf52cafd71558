package evidence

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

//go:generate mockgen -source=evidence_store.go -destination=mock/evidence_store_mock.go -package=mock
type Store interface {
	// Put writes data under folder/name and returns the storage path and
	// the public URL.
	Put(ctx context.Context, folder, name string, data []byte) (string, string, error)
	Delete(ctx context.Context, storagePath string) error
}

type DiskStore struct {
	baseDir string
	baseURL string
}

func NewDiskStore(baseDir, baseURL string) *DiskStore {
	return &DiskStore{
		baseDir: baseDir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (s *DiskStore) Put(ctx context.Context, folder, name string, data []byte) (string, string, error) {
	if err := ctx.Err(); err != nil {
		return "", "", err
	}

	targetDir := filepath.Join(s.baseDir, filepath.Clean("/" + folder))
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return "", "", errors.Wrapf(err, "creating evidence dir %s", targetDir)
	}

	name = filepath.Base(name)
	target := filepath.Join(targetDir, name)

	// write then rename so a reader never sees a partial file
	tmp, err := os.CreateTemp(targetDir, "."+name+".*")
	if err != nil {
		return "", "", errors.Wrap(err, "creating temp evidence file")
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", "", errors.Wrap(err, "writing evidence file")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", "", errors.Wrap(err, "closing evidence file")
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		os.Remove(tmp.Name())
		return "", "", errors.Wrap(err, "publishing evidence file")
	}

	url := s.baseURL + "/" + path.Join(filepath.ToSlash(filepath.Clean("/"+folder))[1:], name)
	return target, url, nil
}

func (s *DiskStore) Delete(ctx context.Context, storagePath string) error {
	if err := os.Remove(storagePath); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "removing evidence file %s", storagePath)
	}
	return nil
}
