// SPDX-License-Identifier: MIT

package converters

import (
	"errors"
	"fmt"
	"io"

	gojson "github.com/goccy/go-json"

	"github.com/katalvlaran/snakegraph/core"
)

var (
	// ErrVertexCountMismatch indicates a vertexCount that disagrees with vertexList.
	ErrVertexCountMismatch = errors.New("converters: vertexCount does not match vertexList")

	// ErrNegativeVertexCount indicates vertexCount < 0.
	ErrNegativeVertexCount = errors.New("converters: negative vertexCount")
)

// Document is the on-disk JSON shape of a graph.
type Document struct {
	VertexCount *int           `json:"vertexCount,omitempty"`
	VertexList  []VertexRecord `json:"vertexList,omitempty"`
	EdgeList    []EdgeRecord   `json:"edgeList"`
	Direct      bool           `json:"direct"`
}

// VertexRecord is one entry of vertexList.
type VertexRecord struct {
	ID int `json:"id"`
}

// EdgeRecord is one entry of edgeList.
type EdgeRecord struct {
	Source int `json:"source"`
	Target int `json:"target"`
}

// ToGraph builds a core.Graph from d and validates it.
func (d *Document) ToGraph() (*core.Graph, error) {
	g := core.NewGraph(core.WithDirected(d.Direct))

	switch {
	case d.VertexList != nil:
		if d.VertexCount != nil && *d.VertexCount != len(d.VertexList) {
			return nil, fmt.Errorf("%w: vertexCount=%d, vertexList has %d", ErrVertexCountMismatch, *d.VertexCount, len(d.VertexList))
		}
		for _, v := range d.VertexList {
			g.AddVertex(v.ID)
		}
	case d.VertexCount != nil:
		if *d.VertexCount < 0 {
			return nil, fmt.Errorf("%w: %d", ErrNegativeVertexCount, *d.VertexCount)
		}
		for id := 1; id <= *d.VertexCount; id++ {
			g.AddVertex(id)
		}
	}

	for _, e := range d.EdgeList {
		g.AddEdge(e.Source, e.Target)
	}
	if err := core.Validate(g); err != nil {
		return nil, err
	}

	return g, nil
}

// FromGraph returns the document form of g with an explicit vertexList.
func FromGraph(g *core.Graph) *Document {
	n := g.VertexCount()
	d := &Document{
		VertexCount: &n,
		VertexList:  make([]VertexRecord, 0, n),
		EdgeList:    make([]EdgeRecord, 0, g.EdgeCount()),
		Direct:      g.Directed,
	}
	for _, v := range g.Vertices {
		d.VertexList = append(d.VertexList, VertexRecord{ID: v.ID})
	}
	for _, e := range g.Edges {
		d.EdgeList = append(d.EdgeList, EdgeRecord{Source: e.Source, Target: e.Target})
	}

	return d
}

// DecodeGraph reads one JSON graph document from r.
func DecodeGraph(r io.Reader) (*core.Graph, error) {
	var d Document
	if err := gojson.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("converters: decode: %w", err)
	}

	return d.ToGraph()
}

// EncodeGraph writes g to w as an indented JSON graph document.
func EncodeGraph(w io.Writer, g *core.Graph) error {
	if err := core.Validate(g); err != nil {
		return err
	}

	enc := gojson.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromGraph(g)); err != nil {
		return fmt.Errorf("converters: encode: %w", err)
	}

	return nil
}
