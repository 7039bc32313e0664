package main

import (
	"bytes"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/matryer/try"
)

// osFS opens relative and absolute paths from the working directory.
type osFS struct{}

func (osFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}

func (osFS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// IsDir returns true if the path exists and is a directory, or when it ends in a path separator.
func IsDir(path string) bool {
	if info, err := os.Lstat(path); err == nil {
		return info.Mode().IsDir()
	}
	return path != "" && path[len(path)-1] == os.PathSeparator
}

// SameFile returns true if both paths point to the same existing file.
func SameFile(filename1, filename2 string) (bool, error) {
	info1, err := os.Stat(filename1)
	if err != nil {
		return false, err
	}
	info2, err := os.Stat(filename2)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return os.SameFile(info1, info2), nil
}

// bundleReader reads its files one after the other, separated by newlines.
type bundleReader struct {
	io.Reader
	files []*os.File
}

func (r *bundleReader) Close() error {
	var err error
	for _, f := range r.files {
		if ferr := f.Close(); ferr != nil && err == nil {
			err = ferr
		}
	}
	return err
}

// openInputs opens the input files, an empty filename reads from stdin.
func openInputs(filenames []string) (io.ReadCloser, error) {
	if len(filenames) == 1 && filenames[0] == "" {
		return io.NopCloser(os.Stdin), nil
	}

	r := &bundleReader{}
	readers := make([]io.Reader, 0, 2*len(filenames))
	for i, filename := range filenames {
		var f *os.File
		err := try.Do(func(attempt int) (bool, error) {
			var ferr error
			f, ferr = os.Open(filename)
			return attempt < 5, ferr
		})
		if err != nil {
			r.Close()
			return nil, err
		}
		r.files = append(r.files, f)
		if 0 < i {
			readers = append(readers, bytes.NewReader(newline))
		}
		readers = append(readers, f)
	}
	r.Reader = io.MultiReader(readers...)
	return r, nil
}

var newline = []byte("\n")

func openOutputFile(filename string) (io.WriteCloser, error) {
	if filename == "" {
		return nopWriteCloser{os.Stdout}, nil
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0777); err != nil {
		return nil, err
	}

	var f *os.File
	err := try.Do(func(attempt int) (bool, error) {
		var ferr error
		f, ferr = os.OpenFile(filename, os.O_WRONLY|os.O_TRUNC|os.O_CREATE, 0666)
		return attempt < 5, ferr
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}

// createSymlink replaces dst by a symbolic link to src.
func createSymlink(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0777); err != nil {
		return err
	}
	if _, err := os.Lstat(dst); err == nil {
		if err := os.Remove(dst); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}
	return os.Symlink(src, dst)
}
