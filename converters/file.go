// SPDX-License-Identifier: MIT

package converters

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/katalvlaran/snakegraph/core"
)

// compression wraps a file stream for one extension.
type compression struct {
	name   string
	reader func(io.Reader) (io.ReadCloser, error)
	writer func(io.Writer) (io.WriteCloser, error)
}

var compressions = map[string]compression{
	".gz": {
		name: "gzip",
		reader: func(r io.Reader) (io.ReadCloser, error) {
			return gzip.NewReader(r)
		},
		writer: func(w io.Writer) (io.WriteCloser, error) {
			return gzip.NewWriter(w), nil
		},
	},
	".zst": {
		name: "zstd",
		reader: func(r io.Reader) (io.ReadCloser, error) {
			dec, err := zstd.NewReader(r)
			if err != nil {
				return nil, err
			}
			return dec.IOReadCloser(), nil
		},
		writer: func(w io.Writer) (io.WriteCloser, error) {
			return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		},
	},
	".lz4": {
		name: "lz4",
		reader: func(r io.Reader) (io.ReadCloser, error) {
			return io.NopCloser(lz4.NewReader(r)), nil
		},
		writer: func(w io.Writer) (io.WriteCloser, error) {
			return lz4.NewWriter(w), nil
		},
	},
}

// CompressionFor returns the codec name chosen for path, or "" for plain JSON.
func CompressionFor(path string) string {
	return compressions[strings.ToLower(filepath.Ext(path))].name
}

// LoadGraph opens path, decompresses it according to its extension and
// decodes the graph document.
func LoadGraph(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("converters: LoadGraph: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if c, ok := compressions[strings.ToLower(filepath.Ext(path))]; ok {
		rc, err := c.reader(f)
		if err != nil {
			return nil, fmt.Errorf("converters: LoadGraph %s: %s: %w", path, c.name, err)
		}
		defer rc.Close()
		r = rc
	}

	g, err := DecodeGraph(r)
	if err != nil {
		return nil, fmt.Errorf("converters: LoadGraph %s: %w", path, err)
	}

	return g, nil
}

// SaveGraph writes g to path, compressing according to the extension.
func SaveGraph(path string, g *core.Graph) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("converters: SaveGraph: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("converters: SaveGraph %s: %w", path, cerr)
		}
	}()

	c, ok := compressions[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return EncodeGraph(f, g)
	}

	wc, err := c.writer(f)
	if err != nil {
		return fmt.Errorf("converters: SaveGraph %s: %s: %w", path, c.name, err)
	}
	if err := EncodeGraph(wc, g); err != nil {
		_ = wc.Close()
		return err
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("converters: SaveGraph %s: %s: %w", path, c.name, err)
	}

	return nil
}
