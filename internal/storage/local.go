package storage

import (
	"context"
	"os"
	"path/filepath"

	apperrors "files-manager/pkg/errors"

	"github.com/google/uuid"
)

const (
	localDirPerm  = 0o755
	localFilePerm = 0o644

	errFailedCreateRoot   = "failed to create storage root"
	errFailedWriteBlob    = "failed to write content"
	errFailedWriteVariant = "failed to write variant"
	errBlobNotFound       = "content not found"
	errFailedReadBlob     = "failed to read content"
)

// Local stores blobs as flat files under a root directory. References are
// absolute paths, one freshly generated name per Put, so concurrent uploads
// never collide.
type Local struct {
	root string
}

func NewLocal(root string) *Local {
	return &Local{root: root}
}

func (l *Local) Put(ctx context.Context, data []byte) (string, error) {
	if err := os.MkdirAll(l.root, localDirPerm); err != nil {
		return "", apperrors.Storage(errFailedCreateRoot, err)
	}

	ref := filepath.Join(l.root, uuid.New().String())
	if err := os.WriteFile(ref, data, localFilePerm); err != nil {
		return "", apperrors.Storage(errFailedWriteBlob, err)
	}

	return ref, nil
}

func (l *Local) PutVariant(ctx context.Context, ref string, width int, data []byte) error {
	if err := os.WriteFile(VariantRef(ref, width), data, localFilePerm); err != nil {
		return apperrors.Storage(errFailedWriteVariant, err)
	}
	return nil
}

func (l *Local) Get(ctx context.Context, ref string) ([]byte, error) {
	data, err := os.ReadFile(ref)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.NotFound(errBlobNotFound)
		}
		return nil, apperrors.Storage(errFailedReadBlob, err)
	}
	return data, nil
}

func (l *Local) Exists(ctx context.Context, ref string) bool {
	_, err := os.Stat(ref)
	return err == nil
}
