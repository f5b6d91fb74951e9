// Package domain defines hadar's value types: the study object model
// (Consumption, Production, Storage, Link, Node, Network, Study) and its
// mirrored output model (Result and friends), per spec §3.
//
// Every quantity and cost attached to a study element is a Matrix shaped
// (nb_scn, horizon); scalars and vectors are broadcast to that shape at
// build time by the builder package, never here — this package only
// carries already-shaped data and keeps node and network names unique
// (adding a node or network under an existing name replaces or returns
// the existing one). Shape broadcasting, value checks (non-negativity,
// efficiency and init_capacity ranges), and cross-entity validation
// (duplicate element names, unknown link endpoints) live in
// package builder, grounded on the teacher's split between core (bare
// types + sentinel errors) and builder (validating constructors).
package domain
