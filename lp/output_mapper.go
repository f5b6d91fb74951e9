package lp

import (
	"github.com/hadar-solver/hadar-go/domain"
	"github.com/hadar-solver/hadar-go/internal/simplex"
)

// NewResultFromStudy allocates a Result skeleton whose shape mirrors
// study's exactly — same networks, nodes, and elements, every matrix
// zeroed to (study.NbScn, study.Horizon). The batch driver builds this
// once, then calls FillResult once per batch to write solved values
// into the scenario columns that batch covers.
func NewResultFromStudy(study *domain.Study) *domain.Result {
	result := domain.NewResult(study.Horizon, study.NbScn)
	for _, net := range study.Networks() {
		outNet := result.Network(net.Name)
		for _, node := range net.Nodes() {
			outNode := domain.OutputNode{Name: node.Name}
			for _, c := range node.Consumptions {
				outNode.Consumptions = append(outNode.Consumptions, domain.OutputConsumption{
					Name:  c.Name,
					Asked: domain.NewMatrix(study.NbScn, study.Horizon),
					Given: domain.NewMatrix(study.NbScn, study.Horizon),
					Lost:  domain.NewMatrix(study.NbScn, study.Horizon),
				})
			}
			for _, p := range node.Productions {
				outNode.Productions = append(outNode.Productions, domain.OutputProduction{
					Name:  p.Name,
					Avail: domain.NewMatrix(study.NbScn, study.Horizon),
					Used:  domain.NewMatrix(study.NbScn, study.Horizon),
				})
			}
			for _, st := range node.Storages {
				outNode.Storages = append(outNode.Storages, domain.OutputStorage{
					Name:     st.Name,
					FlowIn:   domain.NewMatrix(study.NbScn, study.Horizon),
					FlowOut:  domain.NewMatrix(study.NbScn, study.Horizon),
					Capacity: domain.NewMatrix(study.NbScn, study.Horizon),
				})
			}
			for _, l := range node.Links {
				outNode.Links = append(outNode.Links, domain.OutputLink{
					Src: node.Name, Dest: l.Dest,
					Used: domain.NewMatrix(study.NbScn, study.Horizon),
				})
			}
			outNet.AddNode(outNode)
		}
	}
	return result
}

// FillResult reads sol — solved for sys's batch of scenarios — back
// into result's matching elements (spec §4.8): given = quantity - the
// lost-load variable's value, used/flows = the variable's value
// directly. Matrices are reference types, so writes through the
// OutputNode values Node() returns land in result's own storage.
func FillResult(result *domain.Result, sys *System, sol *simplex.Solution) {
	for _, n := range sys.Nodes() {
		outNet := result.Network(n.Network)
		outNode, ok := outNet.Node(n.Node)
		if !ok {
			continue
		}
		for _, c := range n.Consumptions {
			for i := range outNode.Consumptions {
				if outNode.Consumptions[i].Name != c.Name {
					continue
				}
				lost := sol.Values[c.Var.Index]
				outNode.Consumptions[i].Asked[n.Scn][n.T] = c.Quantity
				outNode.Consumptions[i].Given[n.Scn][n.T] = c.Quantity - lost
				outNode.Consumptions[i].Lost[n.Scn][n.T] = lost
			}
		}
		for _, p := range n.Productions {
			for i := range outNode.Productions {
				if outNode.Productions[i].Name != p.Name {
					continue
				}
				outNode.Productions[i].Avail[n.Scn][n.T] = p.Var.Upper
				outNode.Productions[i].Used[n.Scn][n.T] = sol.Values[p.Var.Index]
			}
		}
		for _, st := range n.Storages {
			for i := range outNode.Storages {
				if outNode.Storages[i].Name != st.Name {
					continue
				}
				outNode.Storages[i].FlowIn[n.Scn][n.T] = sol.Values[st.VarIn.Index]
				outNode.Storages[i].FlowOut[n.Scn][n.T] = sol.Values[st.VarOut.Index]
				outNode.Storages[i].Capacity[n.Scn][n.T] = sol.Values[st.VarCapacity.Index]
			}
		}
		for _, l := range n.Links {
			for i := range outNode.Links {
				if outNode.Links[i].Dest != l.Dest || outNode.Links[i].Src != l.Src {
					continue
				}
				outNode.Links[i].Used[n.Scn][n.T] = sol.Values[l.Var.Index]
			}
		}
	}
}
