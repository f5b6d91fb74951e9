package lp

import "github.com/hadar-solver/hadar-go/domain"

// BuildSystem projects study into LP domain records for the given
// scenarios (one batch, per spec §4.7), allocating one decision
// variable per (scn, t, node, element) with bounds [0, capacity(scn,
// t)] (spec §4.4). scenarios must already be sorted ascending; callers
// (the batch driver) own that ordering.
func BuildSystem(study *domain.Study, scenarios []int) (*System, error) {
	sys := newSystem(scenarios, study.Horizon)
	idx := 0

	for _, net := range study.Networks() {
		for _, node := range net.Nodes() {
			for t := 0; t < study.Horizon; t++ {
				for _, scn := range scenarios {
					lpNode := &LPNode{Network: net.Name, Node: node.Name, Scn: scn, T: t}

					for _, c := range node.Consumptions {
						qty := c.Quantity.At(scn, t)
						v := Var{ID: newVarID(scn, t, node.Name, KindConsumption, c.Name), Index: idx, Lower: 0, Upper: qty}
						idx++
						lpNode.Consumptions = append(lpNode.Consumptions, LPConsumption{
							Name: c.Name, Cost: c.Cost.At(scn, t), Quantity: qty, Var: v,
						})
					}

					for _, p := range node.Productions {
						avail := p.Quantity.At(scn, t)
						v := Var{ID: newVarID(scn, t, node.Name, KindProduction, p.Name), Index: idx, Lower: 0, Upper: avail}
						idx++
						lpNode.Productions = append(lpNode.Productions, LPProduction{
							Name: p.Name, Cost: p.Cost.At(scn, t), Var: v,
						})
					}

					for _, st := range node.Storages {
						cap := st.Capacity.At(scn, t)
						vIn := Var{ID: newVarID(scn, t, node.Name, KindStorageIn, st.Name), Index: idx, Lower: 0, Upper: st.FlowIn.At(scn, t)}
						idx++
						vOut := Var{ID: newVarID(scn, t, node.Name, KindStorageOut, st.Name), Index: idx, Lower: 0, Upper: st.FlowOut.At(scn, t)}
						idx++
						vCap := Var{ID: newVarID(scn, t, node.Name, KindStorageCap, st.Name), Index: idx, Lower: 0, Upper: cap}
						idx++
						lpNode.Storages = append(lpNode.Storages, LPStorage{
							Name:         st.Name,
							CostIn:       st.CostIn.At(scn, t),
							CostOut:      st.CostOut.At(scn, t),
							Efficiency:   st.Efficiency,
							InitCapacity: st.InitCapacity,
							VarIn:        vIn,
							VarOut:       vOut,
							VarCapacity:  vCap,
						})
					}

					for _, l := range node.Links {
						v := Var{ID: newVarID(scn, t, node.Name, KindLink, l.Dest), Index: idx, Lower: 0, Upper: l.Quantity.At(scn, t)}
						idx++
						lpNode.Links = append(lpNode.Links, LPLink{
							Src: node.Name, Dest: l.Dest, Cost: l.Cost.At(scn, t), Var: v,
						})
					}

					sys.put(nodeKey{network: net.Name, node: node.Name, t: t, scn: scn}, lpNode)
				}
			}
		}
	}

	sys.NumVars = idx
	return sys, nil
}
