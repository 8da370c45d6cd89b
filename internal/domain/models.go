package domain

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
)

// File is an opaque handle to a user-selected file.
// Handles are owned by the host and referenced, never copied, by the zone.
type File interface {
	Name() string
	Type() string // MIME type, "category/subtype" or "" when unknown
}

// LocalFile is a File backed by a path on the local filesystem
type LocalFile struct {
	path     string
	name     string
	mimeType string
	size     int64
}

// NewLocalFile stats path and returns a handle for it.
// Directories are rejected; the zone only deals in regular files.
func NewLocalFile(path string) (*LocalFile, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", abs)
	}

	return &LocalFile{
		path:     abs,
		name:     info.Name(),
		mimeType: detectType(info.Name()),
		size:     info.Size(),
	}, nil
}

// NewFile creates a handle that is not backed by the filesystem
func NewFile(name, mimeType string) *LocalFile {
	return &LocalFile{name: name, mimeType: mimeType}
}

func (f *LocalFile) Name() string { return f.name }
func (f *LocalFile) Type() string { return f.mimeType }
func (f *LocalFile) Path() string { return f.path }
func (f *LocalFile) Size() int64  { return f.size }

func (f *LocalFile) String() string {
	if f.path != "" {
		return f.path
	}
	return f.name
}

// detectType maps a file name to a MIME type without parameters.
// Unknown extensions yield "", like a browser does.
func detectType(name string) string {
	t := mime.TypeByExtension(strings.ToLower(filepath.Ext(name)))
	if t == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(t)
	if err != nil {
		return t
	}
	return mediaType
}

// PathOf returns the filesystem path of f, or "" if it has none
func PathOf(f File) string {
	if p, ok := f.(interface{ Path() string }); ok {
		return p.Path()
	}
	return ""
}
