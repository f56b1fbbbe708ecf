// Package converters moves graphs between core.Graph and the JSON graph
// document used by snakecheck input files:
//
//	{
//	  "vertexCount": 4,
//	  "vertexList":  [{"id": 1}, {"id": 2}, {"id": 3}, {"id": 4}],
//	  "edgeList":    [{"source": 1, "target": 2}, ...],
//	  "direct":      false
//	}
//
// vertexList may be omitted; the vertices are then 1..vertexCount in order.
// Unknown fields (colors, weights, labels) are ignored.
//
// LoadGraph and SaveGraph pick a compression codec from the file extension:
// ".gz" (gzip), ".zst" (zstd) or ".lz4" (LZ4 frames). Anything else is
// plain JSON.
package converters
