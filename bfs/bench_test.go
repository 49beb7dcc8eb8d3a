package bfs_test

import (
	"testing"

	"github.com/katalvlaran/labyrinth/bfs"
	"github.com/katalvlaran/labyrinth/core"
)

// BenchmarkWalk_OpenGrid measures a full walk over an open 100×100 grid.
func BenchmarkWalk_OpenGrid(b *testing.B) {
	g := openGrid(b, 100, 100)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Walk(g, core.Cell{})
	}
}

// BenchmarkFurthest_OpenGrid measures goal selection on the same grid.
func BenchmarkFurthest_OpenGrid(b *testing.B) {
	g := openGrid(b, 100, 100)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bfs.Furthest(g, 100, 100, core.Cell{Row: 50, Col: 50})
	}
}
