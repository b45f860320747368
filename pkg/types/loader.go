package types

import (
	"context"
	"path/filepath"
	"strings"
)

// Source identifies the data a loader reads
type Source struct {
	// Path is a file path, or empty for loaders that do not read files
	Path string
	// Params are loader-specific key/value options
	Params map[string]string
}

// Param returns the named parameter or def when unset
func (s Source) Param(key, def string) string {
	if v, ok := s.Params[key]; ok && v != "" {
		return v
	}
	return def
}

// DisplayName is the default name for an instance created from this source
func (s Source) DisplayName() string {
	if name := s.Param("name", ""); name != "" {
		return name
	}
	if s.Path == "" {
		return ""
	}
	base := filepath.Base(s.Path)
	base = strings.TrimSuffix(base, ".gz")
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// LoadFunc reads a source into a dataset
type LoadFunc func(ctx context.Context, src Source) (*Dataset, error)

// ShowFunc is the show capability: it loads a source and registers the
// result as a new instance.
type ShowFunc func(ctx context.Context, src Source) (*Instance, error)

// LoaderDescriptor identifies a data-source loader. Descriptors are built
// once by the loader catalog and never modified afterwards.
type LoaderDescriptor struct {
	Name        string
	Description string
	// Load is always set for catalog loaders
	Load LoadFunc
	// Show is the optional show capability; nil means the loader does not
	// expose it.
	Show ShowFunc
}

// HasShow reports whether the loader exposes the show capability
func (d LoaderDescriptor) HasShow() bool {
	return d.Show != nil
}
