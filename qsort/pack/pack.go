// Package pack writes sorted sequences into a tar archive.
package pack

import (
	"archive/tar"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"znkr.io/quicksort/qsort/seq"
)

// ErrInvalidPath is returned for entry paths that don't name a file inside the archive.
var ErrInvalidPath = errors.New("invalid entry path")

// Entry is a sequence to store in the archive under Path.
type Entry struct {
	Path string
	Data *seq.Sequence
}

// Pack writes entries to the tar file filename, one file per entry with one value per line.
// Directories are created as needed. Entry paths are relative to the archive root; paths that
// leave the root, like "../x", are rejected with ErrInvalidPath.
func Pack(filename string, entries []Entry) error {
	file, err := os.OpenFile(filename, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("opening file: %v", err)
	}
	defer file.Close()

	tw := tar.NewWriter(file)
	if err := write(tw, entries); err != nil {
		return err
	}
	if err := tw.Close(); err != nil {
		return fmt.Errorf("closing archive: %v", err)
	}
	return nil
}

func write(tw *tar.Writer, entries []Entry) error {
	dirs := make(map[string]bool)

	for _, e := range entries {
		path, err := clean(e.Path)
		if err != nil {
			return err
		}

		var buf bytes.Buffer
		if err := seq.Write(&buf, e.Data); err != nil {
			return fmt.Errorf("encoding %s: %v", e.Path, err)
		}
		b := buf.Bytes()

		if dir := filepath.Dir(path); !dirs[dir] {
			name := "./" + dir + "/"
			if dir == "." {
				name = "./"
			}
			hdr := &tar.Header{
				Name:     name,
				Typeflag: tar.TypeDir,
				Mode:     int64(0755),
			}
			if err := tw.WriteHeader(hdr); err != nil {
				return fmt.Errorf("writing header: %v", err)
			}
			dirs[dir] = true
		}

		hdr := &tar.Header{
			Name: "./" + path,
			Mode: int64(0644),
			Size: int64(len(b)),
		}
		if err := tw.WriteHeader(hdr); err != nil {
			return fmt.Errorf("writing header: %v", err)
		}
		if _, err := tw.Write(b); err != nil {
			return fmt.Errorf("writing body: %v", err)
		}
	}

	return nil
}

// clean returns p as a slash separated path relative to the archive root.
func clean(p string) (string, error) {
	path := strings.TrimPrefix(filepath.ToSlash(filepath.Clean(p)), "/")
	if path == "." || path == ".." || strings.HasPrefix(path, "../") {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, p)
	}
	return path, nil
}
