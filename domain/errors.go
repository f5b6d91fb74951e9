package domain

import "fmt"

// ShapeError reports a quantity or cost matrix that could not be
// broadcast to the study's (nb_scn, horizon) shape (spec §4.2, §7).
type ShapeError struct {
	Field    string
	WantScn  int
	WantHrz  int
	GotScn   int
	GotHrz   int
}

func (e ShapeError) Error() string {
	return fmt.Sprintf("domain: %s has shape (%d,%d), want broadcastable to (%d,%d)",
		e.Field, e.GotScn, e.GotHrz, e.WantScn, e.WantHrz)
}

// DuplicateNameError reports two elements of the same kind attached to
// the same node under one name (spec §3 "names unique per node").
type DuplicateNameError struct {
	Node string
	Name string
}

func (e DuplicateNameError) Error() string {
	return fmt.Sprintf("domain: duplicate element name %q on node %q", e.Name, e.Node)
}

// UnknownNodeError reports a link endpoint that was referenced but
// never declared in its network (spec §4.2, checked at build()).
type UnknownNodeError struct {
	Network string
	Node    string
}

func (e UnknownNodeError) Error() string {
	return fmt.Sprintf("domain: unknown node %q referenced in network %q", e.Node, e.Network)
}

// ValueError reports a quantity, cost, efficiency, or init_capacity
// attached to a study element that violates its §3 value invariant
// (e.g. a negative quantity, an efficiency outside (0,1]).
type ValueError struct {
	Field      string
	Constraint string
	Got        float64
}

func (e ValueError) Error() string {
	return fmt.Sprintf("domain: %s must satisfy %s, got %v", e.Field, e.Constraint, e.Got)
}
