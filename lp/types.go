package lp

import "fmt"

// Kind names the category of decision variable a Var represents,
// used only to build the deterministic VarID (spec §4.4).
type Kind string

const (
	KindConsumption Kind = "consumption"
	KindProduction  Kind = "production"
	KindLink        Kind = "link"
	KindStorageIn   Kind = "storage_in"
	KindStorageOut  Kind = "storage_out"
	KindStorageCap  Kind = "storage_cap"
)

// VarID is the deterministic "{scn}:{t}:{node}:{kind}:{name}" identifier
// spec §4.4 requires so tests and the remote backend can reproduce
// problem hashes.
type VarID string

func newVarID(scn, t int, node string, kind Kind, name string) VarID {
	return VarID(fmt.Sprintf("%d:%d:%s:%s:%s", scn, t, node, kind, name))
}

// Var is one allocated decision variable: its identity, its column
// index in the flattened solver problem, and its bounds.
type Var struct {
	ID    VarID
	Index int
	Lower float64
	Upper float64
}

// LPConsumption carries the lost-load decision variable for one
// Consumption at one (scn, t, node); Var's upper bound equals Quantity
// (spec §4.3).
type LPConsumption struct {
	Name     string
	Cost     float64
	Quantity float64
	Var      Var
}

// LPProduction carries the used-quantity decision variable for one
// Production at one (scn, t, node); Var's upper bound equals the
// availability (spec §4.3).
type LPProduction struct {
	Name string
	Cost float64
	Var  Var
}

// LPStorage carries the three decision variables (flow-in, flow-out,
// capacity) for one Storage at one (scn, t, node), plus the metadata
// needed to build its inter-temporal recurrence constraint.
type LPStorage struct {
	Name         string
	CostIn       float64
	CostOut      float64
	Efficiency   float64
	InitCapacity float64
	VarIn        Var
	VarOut       Var
	VarCapacity  Var
}

// LPLink carries the transmitted-flow decision variable for one Link
// at one (scn, t); it is recorded once, on the source node, and
// referenced again (not duplicated) when the adequacy builder wires
// the destination node's constraint (spec §4.3, §4.6).
type LPLink struct {
	Src, Dest string
	Cost      float64
	Var       Var
}

// LPNode is every LP record attached to one (scn, t, node).
type LPNode struct {
	Network      string
	Node         string
	Scn, T       int
	Consumptions []LPConsumption
	Productions  []LPProduction
	Storages     []LPStorage
	Links        []LPLink
}

// nodeKey identifies one LPNode slot.
type nodeKey struct {
	network, node string
	t, scn        int
}
