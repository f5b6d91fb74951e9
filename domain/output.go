package domain

import "fmt"

// OutputConsumption mirrors a Consumption after solving: Given is the
// portion of Asked that was actually served, Lost is the remainder
// (spec §4.8: "given = quantity - var.value", var being lost load).
type OutputConsumption struct {
	Name  string
	Asked Matrix
	Given Matrix
	Lost  Matrix
}

// OutputProduction mirrors a Production after solving: Used is the
// solved decision variable's value, Avail its availability bound.
type OutputProduction struct {
	Name  string
	Avail Matrix
	Used  Matrix
}

// OutputStorage mirrors a Storage after solving.
type OutputStorage struct {
	Name     string
	FlowIn   Matrix
	FlowOut  Matrix
	Capacity Matrix
}

// OutputLink mirrors a Link after solving: Used is the transmitted flow.
type OutputLink struct {
	Src, Dest string
	Used      Matrix
}

// OutputNode mirrors a Node after solving.
type OutputNode struct {
	Name         string
	Consumptions []OutputConsumption
	Productions  []OutputProduction
	Storages     []OutputStorage
	Links        []OutputLink
}

// OutputNetwork mirrors a Network after solving, insertion-ordered like
// its Network counterpart.
type OutputNetwork struct {
	Name  string
	nodes []OutputNode
	index map[string]int
}

// NewOutputNetwork constructs an empty, named OutputNetwork.
func NewOutputNetwork(name string) *OutputNetwork {
	return &OutputNetwork{Name: name, index: map[string]int{}}
}

// Nodes returns the network's output nodes in insertion order.
func (n *OutputNetwork) Nodes() []OutputNode { return n.nodes }

// Node looks up an output node by name.
func (n *OutputNetwork) Node(name string) (OutputNode, bool) {
	i, ok := n.index[name]
	if !ok {
		return OutputNode{}, false
	}
	return n.nodes[i], true
}

// AddNode appends an output node, replacing any prior node of the same
// name in place (preserving its original position), mirroring
// domain.Network.AddNode.
func (n *OutputNetwork) AddNode(node OutputNode) {
	if i, ok := n.index[node.Name]; ok {
		n.nodes[i] = node
		return
	}
	n.index[node.Name] = len(n.nodes)
	n.nodes = append(n.nodes, node)
}

// Result is the solved mirror of a Study (spec §4.8, §6.3). It is
// constructed fresh by the output mapper and owned by the caller.
type Result struct {
	Horizon  int
	NbScn    int
	networks []*OutputNetwork
	index    map[string]int
}

// NewResult constructs an empty Result for the given shape.
func NewResult(horizon, nbScn int) *Result {
	return &Result{Horizon: horizon, NbScn: nbScn, index: map[string]int{}}
}

// Networks returns the result's networks in insertion order.
func (r *Result) Networks() []*OutputNetwork { return r.networks }

// Network looks up (or lazily creates) an output network by name, so
// the output mapper can append nodes without a separate declaration
// step, mirroring domain.Study.Network.
func (r *Result) Network(name string) *OutputNetwork {
	if i, ok := r.index[name]; ok {
		return r.networks[i]
	}
	net := NewOutputNetwork(name)
	r.index[name] = len(r.networks)
	r.networks = append(r.networks, net)
	return net
}

// GetBalance returns, for every (scn, t), the net incoming link flow at
// node (incoming minus outgoing), per spec §6.3.
func (r *Result) GetBalance(network, node string) (Matrix, error) {
	net, ok := r.index[network]
	if !ok {
		return nil, fmt.Errorf("domain: unknown network %q", network)
	}
	if _, found := r.networks[net].Node(node); !found {
		return nil, fmt.Errorf("domain: unknown node %q in network %q", node, network)
	}
	out := NewMatrix(r.NbScn, r.Horizon)
	for _, n := range r.networks[net].Nodes() {
		for scn := 0; scn < r.NbScn; scn++ {
			for t := 0; t < r.Horizon; t++ {
				for _, l := range n.Links {
					v := l.Used.At(scn, t)
					if n.Name == node && l.Src == node {
						out[scn][t] -= v
					}
					if l.Dest == node {
						out[scn][t] += v
					}
				}
			}
		}
	}
	return out, nil
}

// GetRAC returns the Remaining Available Capacity aggregated across an
// entire network: sum(availability) - sum(asked), per (scn, t). A
// negative value at (scn, t) indicates a global deficit (spec §6.3,
// glossary "RAC").
func (r *Result) GetRAC(network string) (Matrix, error) {
	i, ok := r.index[network]
	if !ok {
		return nil, fmt.Errorf("domain: unknown network %q", network)
	}
	out := NewMatrix(r.NbScn, r.Horizon)
	for _, n := range r.networks[i].Nodes() {
		for _, p := range n.Productions {
			for scn := 0; scn < r.NbScn; scn++ {
				for t := 0; t < r.Horizon; t++ {
					out[scn][t] += p.Avail.At(scn, t)
				}
			}
		}
		for _, c := range n.Consumptions {
			for scn := 0; scn < r.NbScn; scn++ {
				for t := 0; t < r.Horizon; t++ {
					out[scn][t] -= c.Asked.At(scn, t)
				}
			}
		}
	}
	return out, nil
}
