package lp

// BuildObjective returns the minimize-sense cost vector for sys,
// indexed by Var.Index, attaching one linear term per decision
// variable (spec §4.5): lost-load cost on consumption variables,
// dispatch cost on production, link cost on link flow, and the
// matching in/out cost on storage flows. Storage capacity variables
// carry no direct cost — they are bookkeeping, constrained by the
// recurrence row the adequacy builder adds.
func BuildObjective(sys *System) []float64 {
	cost := make([]float64, sys.NumVars)
	for _, n := range sys.Nodes() {
		for _, c := range n.Consumptions {
			cost[c.Var.Index] = c.Cost
		}
		for _, p := range n.Productions {
			cost[p.Var.Index] = p.Cost
		}
		for _, st := range n.Storages {
			cost[st.VarIn.Index] = st.CostIn
			cost[st.VarOut.Index] = st.CostOut
		}
		for _, l := range n.Links {
			cost[l.Var.Index] = l.Cost
		}
	}
	return cost
}
