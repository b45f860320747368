package loaders

import (
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/mitchellh/go-homedir"

	"github.com/arthur-debert/dview/pkg/errors"
)

// gzipFile closes both the decompressor and the underlying file
type gzipFile struct {
	*gzip.Reader
	file *os.File
}

func (g *gzipFile) Close() error {
	zerr := g.Reader.Close()
	if err := g.file.Close(); err != nil {
		return err
	}
	return zerr
}

// openSource opens path for reading, expanding a leading ~ and
// decompressing .gz files
func openSource(path string) (io.ReadCloser, error) {
	if path == "" {
		return nil, errors.New(errors.ErrInvalidInput, "a source path is required")
	}

	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSourceOpen, "cannot expand %s", path)
	}
	path = expanded

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSourceOpen, "cannot open %s", path)
	}

	if !strings.HasSuffix(strings.ToLower(path), ".gz") {
		return f, nil
	}

	zr, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(err, errors.ErrSourceOpen, "cannot decompress %s", path)
	}
	return &gzipFile{Reader: zr, file: f}, nil
}

// readSource returns the full, decompressed content of path
func readSource(path string) ([]byte, error) {
	rc, err := openSource(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSourceOpen, "error reading %s", path)
	}
	return data, nil
}
