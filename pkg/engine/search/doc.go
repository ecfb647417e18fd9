// Package search finds shortest paths on a world.Grid with A*.
//
// The search moves in four directions at unit cost and is guided by the
// Manhattan distance, which never overestimates on such a grid. Expansion order
// is fully determined by (fScore, insertion order), so the same grid always
// yields the same path, including the choice between equal-cost alternatives.
//
// Run is synchronous. Progress is reported through an optional Observer that is
// called after every expansion and every path-tracing step; cancellation is
// cooperative through the context, checked once per frontier pop.
//
// Run paints the grid as it goes: discovered cells become Open, expanded cells
// Closed and the final route Path. Start and End keep their tags.
package search
