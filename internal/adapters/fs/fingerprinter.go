package fs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/cespare/xxhash/v2"
	"go.iioon.dev/iioon/internal/core/domain"
	"go.trai.ch/zerr"
)

// Fingerprinter computes a content fingerprint over a directory tree.
// It implements ports.Fingerprinter.
type Fingerprinter struct {
	walker *Walker
}

// NewFingerprinter creates a Fingerprinter using the given walker.
func NewFingerprinter(walker *Walker) *Fingerprinter {
	return &Fingerprinter{walker: walker}
}

// FingerprintDir hashes every regular file under folder, relative path
// and content, into a single digest. Files are processed in sorted
// order so the fingerprint is independent of directory iteration order.
// Timestamps and permissions do not contribute.
func (f *Fingerprinter) FingerprintDir(folder string) (string, error) {
	if _, err := os.Stat(folder); err != nil {
		return "", zerr.Wrap(err, domain.ErrFingerprintFailed.Error())
	}

	files := slices.Collect(f.walker.WalkFiles(folder, nil))
	slices.Sort(files)

	digest := xxhash.New()
	for _, path := range files {
		rel, err := relPath(folder, path)
		if err != nil {
			return "", err
		}
		_, _ = digest.WriteString(rel)
		_, _ = digest.Write([]byte{0})

		if err := hashFile(digest, path); err != nil {
			return "", err
		}
		_, _ = digest.Write([]byte{0})
	}

	return fmt.Sprintf("%016x", digest.Sum64()), nil
}

func hashFile(digest *xxhash.Digest, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return zerr.Wrap(err, domain.ErrFingerprintFailed.Error())
	}
	defer func() { _ = file.Close() }()

	if _, err := io.Copy(digest, file); err != nil {
		err = zerr.Wrap(err, domain.ErrFingerprintFailed.Error())
		return zerr.With(err, "file", path)
	}
	return nil
}

func relPath(folder, path string) (string, error) {
	rel, err := filepath.Rel(folder, path)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrFingerprintFailed.Error())
	}
	return rel, nil
}
