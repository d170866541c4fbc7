package erase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// overwriteChunk bounds the random buffer so large files do not balloon
// memory.
const overwriteChunk = 1 << 20

// Eraser destroys file trees. It implements the deletion pipeline's Eraser
// interface.
type Eraser struct{}

// New creates an Eraser.
func New() *Eraser {
	return &Eraser{}
}

// SecureRemove destroys the tree rooted at path: regular files are
// overwritten with random bytes and synced, then the whole tree is removed.
// A missing path succeeds. The context is honored between files; a file
// already being overwritten is finished first.
func (e *Eraser) SecureRemove(ctx context.Context, path string) error {
	if _, err := os.Lstat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}

	err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		// Symlinks are unlinked with the tree, never followed.
		if !d.Type().IsRegular() {
			return nil
		}
		return overwrite(p)
	})
	if err != nil {
		return fmt.Errorf("overwrite %s: %w", path, err)
	}

	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("remove %s: %w", path, err)
	}
	return nil
}

// overwrite replaces a file's content with random bytes of the same length
// and syncs it to stable storage.
func overwrite(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return err
	}
	defer f.Close()

	remaining := info.Size()
	buf := make([]byte, min(remaining, overwriteChunk))
	for remaining > 0 {
		chunk := buf[:min(remaining, int64(len(buf)))]
		if _, err := rand.Read(chunk); err != nil {
			return err
		}
		if _, err := f.Write(chunk); err != nil {
			return err
		}
		remaining -= int64(len(chunk))
	}

	if err := f.Sync(); err != nil {
		return err
	}
	return f.Close()
}
