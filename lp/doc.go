// Package lp implements hadar's LP domain layer (spec §4.3-§4.8): the
// per-(scenario, time, node) records that carry solver decision
// variables plus their originating cost/capacity metadata, the input
// mapper that allocates those variables from a domain.Study, the
// objective and adequacy builders that emit a linear program, and the
// output mapper that reads a solved Solution back into a domain.Result.
//
// Grounded on lvlath/core's adjacency bookkeeping style (core/types.go,
// core/methods.go): the same "struct of slices plus a name/key index
// for O(1) lookup, sorted/insertion-ordered iteration" shape, adapted
// from graph adjacency to (scn, t, node) record bookkeeping.
package lp
