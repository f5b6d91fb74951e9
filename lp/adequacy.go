package lp

import (
	"fmt"

	"github.com/hadar-solver/hadar-go/internal/simplex"
)

// BuildRows emits the adequacy constraint rows for sys (spec §4.6): one
// flow-balance equality per (scn, t, node), plus one inter-temporal
// recurrence equality per (scn, node, storage name). Link variables are
// wired onto their source node in the first pass and onto their
// destination node's row in a second pass, once every node's row
// exists, matching spec §4.6's "wired in a second pass after all nodes
// are registered".
func BuildRows(sys *System) ([]simplex.Row, error) {
	nodes := sys.Nodes()
	rows := make([]simplex.Row, len(nodes))
	rowOf := make(map[nodeKey]int, len(nodes))

	for i, n := range nodes {
		row := simplex.Row{Coeffs: map[int]float64{}}
		for _, c := range n.Consumptions {
			row.Coeffs[c.Var.Index] += 1
			row.RHS += c.Quantity
		}
		for _, p := range n.Productions {
			row.Coeffs[p.Var.Index] += 1
		}
		for _, st := range n.Storages {
			row.Coeffs[st.VarIn.Index] += -1
			row.Coeffs[st.VarOut.Index] += 1
		}
		for _, l := range n.Links {
			row.Coeffs[l.Var.Index] += -1
		}
		rows[i] = row
		rowOf[nodeKey{network: n.Network, node: n.Node, t: n.T, scn: n.Scn}] = i
	}

	for _, n := range nodes {
		for _, l := range n.Links {
			destKey := nodeKey{network: n.Network, node: l.Dest, t: n.T, scn: n.Scn}
			ri, ok := rowOf[destKey]
			if !ok {
				return nil, fmt.Errorf("lp: link %s->%s at t=%d scn=%d references unregistered destination", l.Src, l.Dest, n.T, n.Scn)
			}
			rows[ri].Coeffs[l.Var.Index] += 1
		}
	}

	for _, n := range nodes {
		for _, st := range n.Storages {
			row := simplex.Row{Coeffs: map[int]float64{
				st.VarCapacity.Index: 1,
				st.VarIn.Index:       -1,
				st.VarOut.Index:      1,
			}}
			if n.T == 0 {
				row.RHS = st.Efficiency * st.InitCapacity
			} else {
				prev, ok := sys.at(n.Network, n.Node, n.T-1, n.Scn)
				if !ok {
					return nil, fmt.Errorf("lp: storage %q at node %q missing predecessor timestep %d", st.Name, n.Node, n.T-1)
				}
				prevVar, ok := findStorage(prev, st.Name)
				if !ok {
					return nil, fmt.Errorf("lp: storage %q vanished between timesteps at node %q", st.Name, n.Node)
				}
				row.Coeffs[prevVar.VarCapacity.Index] += -st.Efficiency
			}
			rows = append(rows, row)
		}
	}

	return rows, nil
}

func findStorage(n *LPNode, name string) (LPStorage, bool) {
	for _, st := range n.Storages {
		if st.Name == name {
			return st, true
		}
	}
	return LPStorage{}, false
}
