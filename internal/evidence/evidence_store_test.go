package evidence_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"go-geoattend/internal/evidence"

	"github.com/stretchr/testify/assert"
)

func TestDiskStore_PutAndDelete(t *testing.T) {
	dir := t.TempDir()
	store := evidence.NewDiskStore(dir, "/files/evidence/")

	path, url, err := store.Put(context.Background(), "2026/10", "location_photo.png", []byte("img"))

	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "2026", "10", "location_photo.png"), path)
	assert.Equal(t, "/files/evidence/2026/10/location_photo.png", url)

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, []byte("img"), data)

	assert.NoError(t, store.Delete(context.Background(), path))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// deleting twice is fine
	assert.NoError(t, store.Delete(context.Background(), path))
}

func TestDiskStore_PutStaysInsideBaseDir(t *testing.T) {
	dir := t.TempDir()
	store := evidence.NewDiskStore(dir, "/files")

	path, url, err := store.Put(context.Background(), "../../etc", "../passwd", []byte("x"))

	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "etc", "passwd"), path)
	assert.Equal(t, "/files/etc/passwd", url)
}

func TestDiskStore_PutCanceled(t *testing.T) {
	store := evidence.NewDiskStore(t.TempDir(), "/files")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := store.Put(ctx, "2026/10", "a.png", []byte("x"))

	assert.ErrorIs(t, err, context.Canceled)
}
