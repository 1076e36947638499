package filter

import (
	"context"
	"os"
	"path"
	"strings"
)

// Entry is a filesystem entry under test. Both os.FileInfo and afs
// storage.Object satisfy it.
type Entry interface {
	Name() string
	IsDir() bool
}

// Args carries the entry under test and the location it was found at.
type Args struct {
	URL   string
	Entry Entry
}

// Result is what a filter reports for one entry. Updates are only set when
// Matches is true.
type Result struct {
	Matches bool                   `json:"matches"`
	Updates map[string]interface{} `json:"updates,omitempty"`
}

// Filter decides whether an entry passes.
type Filter interface {
	Name() string
	Pipeline(ctx context.Context, args *Args) (*Result, error)
}

// Context accumulates filter updates for one entry.
type Context map[string]interface{}

// Merge copies result updates into the context.
func (c Context) Merge(result *Result) {
	if result == nil {
		return
	}
	for k, v := range result.Updates {
		c[k] = v
	}
}

// SplitExt splits a base name into stem and extension (with leading dot).
// A stem made only of dots is reported as empty.
func SplitExt(base string) (string, string) {
	ext := path.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if strings.Trim(stem, ".") == "" {
		stem = ""
	}
	return stem, ext
}

// BaseName returns the last element of a URL or path.
func BaseName(location string) string {
	location = strings.TrimRight(location, "/")
	if location == "" {
		return ""
	}
	return path.Base(location)
}

// FileInfoEntry adapts a name and a mode to Entry.
type FileInfoEntry struct {
	EntryName string
	Mode      os.FileMode
}

func (e *FileInfoEntry) Name() string { return e.EntryName }

func (e *FileInfoEntry) IsDir() bool { return e.Mode.IsDir() }

// NewEntry returns an Entry for a bare name.
func NewEntry(name string, isDir bool) Entry {
	mode := os.FileMode(0644)
	if isDir {
		mode = os.ModeDir | 0755
	}
	return &FileInfoEntry{EntryName: name, Mode: mode}
}
