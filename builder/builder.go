package builder

import (
	"errors"
	"fmt"

	"github.com/hadar-solver/hadar-go/domain"
)

// Builder accumulates a Study through fluent attachment calls and
// defers every data-dependent error to Build(), following the
// teacher's "algorithms must not panic; validation panics are confined
// to option constructors" split: only Study(horizon, nbScn) itself
// panics, since a non-positive horizon or scenario count is always a
// caller bug, never a data problem.
type Builder struct {
	study   *domain.Study
	curNet  string
	curNode string
	errs    []error
}

// Study starts a new Builder for a study of the given shape. Panics if
// horizon or nbScn is not strictly positive (spec §3 invariant).
func Study(horizon, nbScn int) *Builder {
	if horizon <= 0 {
		panic(fmt.Sprintf("builder: horizon must be positive, got %d", horizon))
	}
	if nbScn <= 0 {
		panic(fmt.Sprintf("builder: nbScn must be positive, got %d", nbScn))
	}
	return &Builder{study: domain.NewStudy(horizon, nbScn)}
}

// Network selects (creating if necessary) the network subsequent
// Node/Link calls attach to.
func (b *Builder) Network(name string) *Builder {
	b.study.Network(name)
	b.curNet = name
	b.curNode = ""
	return b
}

// Node selects (creating if necessary) the node subsequent
// Consumption/Production/Storage calls attach to, within the current
// network.
func (b *Builder) Node(name string) *Builder {
	if b.curNet == "" {
		b.errs = append(b.errs, ErrNoCurrentNetwork)
		return b
	}
	net := b.study.Network(b.curNet)
	if !net.HasNode(name) {
		net.AddNode(domain.Node{Name: name})
	}
	b.curNode = name
	return b
}

// Consumption attaches a Consumption to the current node. cost and
// quantity accept the broadcastable shapes documented on broadcast();
// both must be non-negative (spec §3).
func (b *Builder) Consumption(name string, cost, quantity interface{}) *Builder {
	b.mutateNode(func(n *domain.Node) error {
		for _, c := range n.Consumptions {
			if c.Name == name {
				return domain.DuplicateNameError{Node: n.Name, Name: name}
			}
		}
		costM, err := broadcast(fmt.Sprintf("%s.%s.cost", n.Name, name), cost, b.study.NbScn, b.study.Horizon)
		if err != nil {
			return err
		}
		if err := nonNegative(fmt.Sprintf("%s.%s.cost", n.Name, name), costM); err != nil {
			return err
		}
		qtyM, err := broadcast(fmt.Sprintf("%s.%s.quantity", n.Name, name), quantity, b.study.NbScn, b.study.Horizon)
		if err != nil {
			return err
		}
		if err := nonNegative(fmt.Sprintf("%s.%s.quantity", n.Name, name), qtyM); err != nil {
			return err
		}
		n.Consumptions = append(n.Consumptions, domain.Consumption{Name: name, Cost: costM, Quantity: qtyM})
		return nil
	})
	return b
}

// Production attaches a Production to the current node. cost and
// quantity (the availability upper bound) accept the broadcastable
// shapes documented on broadcast(); both must be non-negative (spec §3).
func (b *Builder) Production(name string, cost, quantity interface{}) *Builder {
	b.mutateNode(func(n *domain.Node) error {
		for _, p := range n.Productions {
			if p.Name == name {
				return domain.DuplicateNameError{Node: n.Name, Name: name}
			}
		}
		costM, err := broadcast(fmt.Sprintf("%s.%s.cost", n.Name, name), cost, b.study.NbScn, b.study.Horizon)
		if err != nil {
			return err
		}
		if err := nonNegative(fmt.Sprintf("%s.%s.cost", n.Name, name), costM); err != nil {
			return err
		}
		qtyM, err := broadcast(fmt.Sprintf("%s.%s.quantity", n.Name, name), quantity, b.study.NbScn, b.study.Horizon)
		if err != nil {
			return err
		}
		if err := nonNegative(fmt.Sprintf("%s.%s.quantity", n.Name, name), qtyM); err != nil {
			return err
		}
		n.Productions = append(n.Productions, domain.Production{Name: name, Cost: costM, Quantity: qtyM})
		return nil
	})
	return b
}

// StorageOption customizes a Storage attachment beyond its required
// capacity/flow/cost shapes.
type StorageOption func(*domain.Storage)

// WithEfficiency overrides the default efficiency of 1.0 (spec §9 open
// question: default eff=1.0 when omitted). Storage checks eff ∈ (0,1]
// once every option has run; an efficiency of 0 would drop all carried
// capacity and a value outside (0,1] would let the storage recurrence
// create or destroy energy across timesteps.
func WithEfficiency(eff float64) StorageOption {
	return func(s *domain.Storage) { s.Efficiency = eff }
}

// WithInitCapacity overrides the default initial capacity of 0 (spec §9
// open question: default init_capacity=0 when omitted). Storage checks
// init_capacity against [0, capacity] once every option has run.
func WithInitCapacity(c float64) StorageOption {
	return func(s *domain.Storage) { s.InitCapacity = c }
}

// Storage attaches a Storage to the current node. capacity, flowIn,
// flowOut, costIn, and costOut accept the broadcastable shapes
// documented on broadcast(); efficiency defaults to 1.0 and
// init_capacity to 0 unless overridden via opts. capacity, flowIn, and
// flowOut must be non-negative, efficiency must land in (0,1], and
// init_capacity must land in [0, min(capacity)] (spec §3) — the
// narrowest capacity across every scenario and timestep, so the bound
// holds regardless of which one C_{-1} is carried into.
func (b *Builder) Storage(name string, capacity, flowIn, flowOut, costIn, costOut interface{}, opts ...StorageOption) *Builder {
	b.mutateNode(func(n *domain.Node) error {
		for _, s := range n.Storages {
			if s.Name == name {
				return domain.DuplicateNameError{Node: n.Name, Name: name}
			}
		}
		cap, err := broadcast(fmt.Sprintf("%s.%s.capacity", n.Name, name), capacity, b.study.NbScn, b.study.Horizon)
		if err != nil {
			return err
		}
		if err := nonNegative(fmt.Sprintf("%s.%s.capacity", n.Name, name), cap); err != nil {
			return err
		}
		fin, err := broadcast(fmt.Sprintf("%s.%s.flow_in", n.Name, name), flowIn, b.study.NbScn, b.study.Horizon)
		if err != nil {
			return err
		}
		if err := nonNegative(fmt.Sprintf("%s.%s.flow_in", n.Name, name), fin); err != nil {
			return err
		}
		fout, err := broadcast(fmt.Sprintf("%s.%s.flow_out", n.Name, name), flowOut, b.study.NbScn, b.study.Horizon)
		if err != nil {
			return err
		}
		if err := nonNegative(fmt.Sprintf("%s.%s.flow_out", n.Name, name), fout); err != nil {
			return err
		}
		cin, err := broadcast(fmt.Sprintf("%s.%s.cost_in", n.Name, name), costIn, b.study.NbScn, b.study.Horizon)
		if err != nil {
			return err
		}
		cout, err := broadcast(fmt.Sprintf("%s.%s.cost_out", n.Name, name), costOut, b.study.NbScn, b.study.Horizon)
		if err != nil {
			return err
		}
		st := domain.Storage{
			Name: name, Capacity: cap, FlowIn: fin, FlowOut: fout, CostIn: cin, CostOut: cout,
			Efficiency: 1.0, InitCapacity: 0,
		}
		for _, opt := range opts {
			opt(&st)
		}
		if st.Efficiency <= 0 || st.Efficiency > 1 {
			return domain.ValueError{Field: fmt.Sprintf("%s.%s.efficiency", n.Name, name), Constraint: "be in (0, 1]", Got: st.Efficiency}
		}
		if st.InitCapacity < 0 || st.InitCapacity > cap.Min() {
			return domain.ValueError{Field: fmt.Sprintf("%s.%s.init_capacity", n.Name, name), Constraint: "be in [0, capacity]", Got: st.InitCapacity}
		}
		n.Storages = append(n.Storages, st)
		return nil
	})
	return b
}

// Link attaches a directed transmission link from src to dest within
// the current network. dest need not already be a declared node: that
// is only checked at Build() (spec §4.2 "Link endpoints referenced but
// never declared raise UnknownNodeError at build()"). quantity and
// cost must be non-negative (spec §3).
func (b *Builder) Link(src, dest string, quantity, cost interface{}) *Builder {
	if b.curNet == "" {
		b.errs = append(b.errs, ErrNoCurrentNetwork)
		return b
	}
	if src == dest {
		b.errs = append(b.errs, fmt.Errorf("builder: link src and dest must differ, got %q", src))
		return b
	}
	net := b.study.Network(b.curNet)
	if !net.HasNode(src) {
		net.AddNode(domain.Node{Name: src})
	}
	node, _ := net.Node(src)
	for _, l := range node.Links {
		if l.Dest == dest {
			b.errs = append(b.errs, fmt.Errorf("builder: duplicate link %s->%s in network %q", src, dest, b.curNet))
			return b
		}
	}
	qtyM, err := broadcast(fmt.Sprintf("link.%s.%s.quantity", src, dest), quantity, b.study.NbScn, b.study.Horizon)
	if err != nil {
		b.errs = append(b.errs, err)
		return b
	}
	if err := nonNegative(fmt.Sprintf("link.%s.%s.quantity", src, dest), qtyM); err != nil {
		b.errs = append(b.errs, err)
		return b
	}
	costM, err := broadcast(fmt.Sprintf("link.%s.%s.cost", src, dest), cost, b.study.NbScn, b.study.Horizon)
	if err != nil {
		b.errs = append(b.errs, err)
		return b
	}
	if err := nonNegative(fmt.Sprintf("link.%s.%s.cost", src, dest), costM); err != nil {
		b.errs = append(b.errs, err)
		return b
	}
	node.Links = append(node.Links, domain.Link{Src: src, Dest: dest, Quantity: qtyM, Cost: costM})
	net.AddNode(node)
	return b
}

// Build validates cross-entity invariants (a "default" network exists,
// every link endpoint was declared) and returns the finished,
// thereafter-immutable Study, or every validation error joined
// together (errors.Join, so callers can errors.As for any individual
// kind).
func (b *Builder) Build() (*domain.Study, error) {
	errs := append([]error(nil), b.errs...)
	if !b.study.HasNetwork("default") {
		errs = append(errs, ErrNoDefaultNetwork)
	}
	for _, net := range b.study.Networks() {
		for _, node := range net.Nodes() {
			for _, link := range node.Links {
				if !net.HasNode(link.Dest) {
					errs = append(errs, domain.UnknownNodeError{Network: net.Name, Node: link.Dest})
				}
			}
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return b.study, nil
}

func (b *Builder) mutateNode(fn func(*domain.Node) error) {
	if b.curNet == "" {
		b.errs = append(b.errs, ErrNoCurrentNetwork)
		return
	}
	if b.curNode == "" {
		b.errs = append(b.errs, ErrNoCurrentNode)
		return
	}
	net := b.study.Network(b.curNet)
	node, ok := net.Node(b.curNode)
	if !ok {
		b.errs = append(b.errs, ErrNoCurrentNode)
		return
	}
	if err := fn(&node); err != nil {
		b.errs = append(b.errs, err)
		return
	}
	net.AddNode(node)
}
