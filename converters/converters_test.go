package converters_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/snakegraph/builder"
	"github.com/katalvlaran/snakegraph/converters"
	"github.com/katalvlaran/snakegraph/core"
	"github.com/katalvlaran/snakegraph/snake"
)

func TestLoadGraph_Fixtures(t *testing.T) {
	tests := []struct {
		file     string
		vertices int
		edges    int
		directed bool
		snake    bool
	}{
		{"graph1.json", 4, 3, true, false},
		{"graph2.json", 4, 3, false, true},
		{"graph3.json", 8, 8, false, true},
		{"graph4.json", 8, 9, false, false},
		{"graph5.json", 8, 7, false, true},
		{"graph6.json", 4, 4, false, true},
		{"graph7.json", 8, 11, false, true},
		{"graph8.json", 8, 12, false, false},
		{"graph9.json", 8, 7, true, false},
		{"graph10.json", 9, 8, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.file, func(t *testing.T) {
			g, err := converters.LoadGraph(filepath.Join("testdata", tc.file))
			require.NoError(t, err)
			assert.Equal(t, tc.vertices, g.VertexCount())
			assert.Equal(t, tc.edges, g.EdgeCount())
			assert.Equal(t, tc.directed, g.Directed)
			assert.Equal(t, 1, g.Vertices[0].ID, "ids start at 1")

			ok, err := snake.IsSnakeGraph(g)
			require.NoError(t, err)
			assert.Equal(t, tc.snake, ok)
		})
	}
}

func TestLoadGraph_Errors(t *testing.T) {
	_, err := converters.LoadGraph(filepath.Join("testdata", "mismatch.json"))
	assert.ErrorIs(t, err, converters.ErrVertexCountMismatch)

	_, err = converters.LoadGraph(filepath.Join("testdata", "dangling.json"))
	assert.ErrorIs(t, err, core.ErrUnknownEndpoint)

	_, err = converters.LoadGraph(filepath.Join("testdata", "broken.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")

	_, err = converters.LoadGraph(filepath.Join("testdata", "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecodeGraph_IgnoresUnknownFields(t *testing.T) {
	f, err := os.Open(filepath.Join("testdata", "extra_fields.json"))
	require.NoError(t, err)
	defer f.Close()

	g, err := converters.DecodeGraph(f)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20}, g.VertexIDs())
	assert.Equal(t, []core.Edge{{Source: 10, Target: 20}}, g.Edges)
}

func TestDecodeGraph_VertexCountForms(t *testing.T) {
	g, err := converters.DecodeGraph(strings.NewReader(`{"vertexCount":3,"edgeList":[]}`))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, g.VertexIDs())

	g, err = converters.DecodeGraph(strings.NewReader(`{"vertexList":[{"id":7}],"edgeList":[]}`))
	require.NoError(t, err)
	assert.Equal(t, []int{7}, g.VertexIDs())

	g, err = converters.DecodeGraph(strings.NewReader(`{"edgeList":[]}`))
	require.NoError(t, err)
	assert.Zero(t, g.VertexCount())

	_, err = converters.DecodeGraph(strings.NewReader(`{"vertexCount":-2,"edgeList":[]}`))
	assert.ErrorIs(t, err, converters.ErrNegativeVertexCount)

	_, err = converters.DecodeGraph(strings.NewReader(`{"vertexList":[{"id":1},{"id":1}],"edgeList":[]}`))
	assert.ErrorIs(t, err, core.ErrDuplicateVertex)
}

func TestEncodeGraph(t *testing.T) {
	g := builder.MustBuild([]core.GraphOption{core.WithDirected(true)}, nil, builder.Path(2))

	var buf bytes.Buffer
	require.NoError(t, converters.EncodeGraph(&buf, g))
	out := buf.String()
	assert.Contains(t, out, `"vertexCount": 2`)
	assert.Contains(t, out, `"direct": true`)
	assert.Contains(t, out, `"source": 0`)

	back, err := converters.DecodeGraph(&buf)
	require.NoError(t, err)
	assert.Equal(t, g, back)

	assert.ErrorIs(t, converters.EncodeGraph(&buf, nil), core.ErrNilGraph)
}

func TestSaveLoad_RoundTripPerCompression(t *testing.T) {
	g := builder.MustBuild(nil, []builder.BuilderOption{builder.WithBaseID(1)}, builder.Hypercube(3))
	dir := t.TempDir()

	for _, name := range []string{"cube.json", "cube.json.gz", "cube.json.zst", "cube.json.lz4", "CUBE.JSON.GZ"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, converters.SaveGraph(path, g))

			back, err := converters.LoadGraph(path)
			require.NoError(t, err)
			assert.Equal(t, g, back)
		})
	}
}

func TestCompressionFor(t *testing.T) {
	assert.Equal(t, "", converters.CompressionFor("a.json"))
	assert.Equal(t, "gzip", converters.CompressionFor("a.json.gz"))
	assert.Equal(t, "zstd", converters.CompressionFor("a.json.zst"))
	assert.Equal(t, "lz4", converters.CompressionFor("a.json.LZ4"))
}

func TestLoadGraph_CorruptCompressedStream(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.json.gz")
	require.NoError(t, os.WriteFile(path, []byte(`{"vertexCount":1,"edgeList":[]}`), 0o600))

	_, err := converters.LoadGraph(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gzip")
}
