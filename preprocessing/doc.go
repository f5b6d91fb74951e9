// Package preprocessing implements hadar's composable scenario-table
// pipeline (spec §4.1): Stages connected through typed Plugs, run in
// sequence over a ScenarioTable before it reaches the input mapper.
//
// This is the systems re-expression spec.md §9 calls for: the Python
// original overloads `+` on stages/plugs and mutates plug outputs in
// place during composition (original_source/hadar/preprocessing/pipeline.py);
// here Pipeline.Then always returns a fresh Pipeline value and
// Plug.Compose always returns a fresh Plug, so no aliasing survives a
// composition. Grounded on lvlath/flow's small-sentinel-plus-options
// package shape (flow/types.go), generalized from flow-network options
// to table-transform stages.
package preprocessing
