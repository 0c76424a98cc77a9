// SPDX-License-Identifier: MIT
//
// File: file.go
// Role: path-level wrappers around NormalizeAndMerge/EmitSymmetric/Verify.
// Policy:
//   - Output is written to a temp file in the target directory and renamed
//     into place, so a failed run never leaves a truncated output behind.

package dimacs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// outputPerm matches a plain os.Create under the usual 022 umask.
const outputPerm fs.FileMode = 0o644

// OutputPath replaces the extension of input with suffix
// (DefaultSuffix when suffix is empty): "roads.gr" → "roads.clean.gr".
func OutputPath(input, suffix string) string {
	if suffix == "" {
		suffix = DefaultSuffix
	}

	return strings.TrimSuffix(input, filepath.Ext(input)) + suffix
}

// CleanFile merges the graph at in and writes the symmetric result to out,
// overwriting any existing file.
//
// Errors:
//   - ErrInputNotFound if in does not exist.
//   - *ParseError from NormalizeAndMerge; out is left untouched.
//   - Wrapped I/O errors.
func CleanFile(in, out string) (*Merged, error) {
	f, err := openInput(in)
	if err != nil {
		return nil, err
	}
	m, err := NormalizeAndMerge(f)
	_ = f.Close()
	if err != nil {
		return nil, err
	}

	if err = writeAtomic(out, m); err != nil {
		return nil, err
	}

	return m, nil
}

// VerifyFile runs Verify over the file at path.
func VerifyFile(path string) (*Report, error) {
	f, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Verify(f)
}

func openInput(path string) (*os.File, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("dimacs: open %s: %w", path, err)
	}

	return f, nil
}

func writeAtomic(out string, m *Merged) error {
	tmp, err := os.CreateTemp(filepath.Dir(out), "."+filepath.Base(out)+".*.tmp")
	if err != nil {
		return fmt.Errorf("dimacs: create temp for %s: %w", out, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if err = EmitSymmetric(tmp, m); err != nil {
		_ = tmp.Close()

		return fmt.Errorf("dimacs: write %s: %w", out, err)
	}
	if err = tmp.Chmod(outputPerm); err != nil {
		_ = tmp.Close()

		return fmt.Errorf("dimacs: chmod %s: %w", tmpName, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("dimacs: close %s: %w", tmpName, err)
	}
	if err = os.Rename(tmpName, out); err != nil {
		return fmt.Errorf("dimacs: rename to %s: %w", out, err)
	}

	return nil
}
