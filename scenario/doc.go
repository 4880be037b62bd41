// Package scenario loads YAML scenario documents describing a grid extent,
// a topology and a list of queries, and evaluates those queries with
// packages topology and gridgraph.
//
// A document is first checked against an embedded JSON Schema
// (scenario.schema.json), then decoded into Scenario with unknown fields
// rejected, then validated semantically (names parse, coordinates lie in the
// grid, cells match the extent). Files ending in ".zst" or ".gz" are
// decompressed transparently.
//
// Supported query ops:
//
//   - adjacent      x, y, direction     → topology.AdjacentCell
//   - edge, corner  x, y                → topology.IsEdge / topology.IsCorner
//   - neighborhood  x, y, neighborhood  → topology.Neighbors
//   - points                            → topology.Points
//   - components    [neighborhood]      → gridgraph.ConnectedComponents (needs cells)
//   - bridge        from, to, [neighborhood] → gridgraph.ExpandIsland (needs cells)
//
// Errors:
//
//   - ErrInvalidScenario: schema, decode or semantic validation failed.
package scenario
