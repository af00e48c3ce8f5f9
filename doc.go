// Package crucible finds the cheapest route across a grid of digit costs
// when straight runs are bounded by a movement policy.
//
// 🚀 What is crucible?
//
//	A small, dependency-light library and CLI that brings together:
//		• gridgraph — immutable digit grids with bounds-checked lookups
//		• movement  — headings and (MinRun, MaxRun) run-length policies
//		• dijkstra  — shortest paths over (cell, heading, run) states
//		• config    — named policies and search limits from YAML
//
// ✨ Why a dedicated engine?
//
//   - Legal moves depend on recent history, so plain cell Dijkstra is wrong.
//   - One engine serves every policy; rule sets are values, not code paths.
//   - Searches are cancellable and budgeted, and own all of their state.
//
// Layout:
//
//	gridgraph/    — Grid, Position, Parse/Read/NewGrid
//	movement/     — Direction, Policy, Standard, Ultra
//	dijkstra/     — State, Expand, Solve, SolveAll
//	config/       — YAML configuration
//	cmd/crucible/ — command-line front end
//
// Quick ASCII example (Standard policy, cost 4):
//
//	1 9 9        . 9 9
//	1 1 9   →    v > 9
//	9 1 1        9 v >
//
//	go install github.com/katalvlaran/crucible/cmd/crucible@latest
package crucible
