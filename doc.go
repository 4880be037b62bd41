// Package gridtopo is a small toolkit for reasoning about positions on a 2D
// grid under different boundary topologies.
//
// 🚀 What is gridtopo?
//
//	A pure-Go library plus a tiny CLI that brings together:
//		• Adjacency: the neighbor of a cell in a cardinal direction, or none
//		• Boundaries: edge and corner tests for bounded grids
//		• Enumeration: every coordinate of a grid, lazily, x-major
//		• Neighborhoods: Orthogonal, Diagonal and Square shapes around a point
//		• Grid analysis: islands and minimal bridges under any topology
//		• Scenarios: YAML documents of queries, schema-checked and evaluated
//
// ✨ Why choose gridtopo?
//
//   - Pure functions – no grid storage, no shared state, safe from any goroutine
//   - Lazy sequences – Points and Neighbors are iter.Seq values you can range over
//   - Wrap-aware – Bounded, Torus and an axis-correct TorusAxial
//
// Under the hood, everything is organized under these subpackages:
//
//	topology/    — Topology, Direction, Neighborhood, AdjacentCell, IsEdge, IsCorner, Points, Neighbors
//	gridgraph/   — connected components and island expansion over [][]int grids
//	scenario/    — YAML scenario loading (.zst/.gz aware), validation, evaluation, reports
//	cmd/gridtopo — command-line front end for scenario files
//
// Quick ASCII example (5×5 torus, Square neighborhood of the origin):
//
//	  N = (0,4)   S = (0,1)   E = (1,0)   W = (4,0)
//	 NE = (1,4)  SE = (1,1)  NW = (4,4)  SW = (4,1)
//
//	go get github.com/katalvlaran/gridtopo
package gridtopo
