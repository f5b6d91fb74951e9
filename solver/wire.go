package solver

import (
	"bytes"
	"encoding/gob"

	"github.com/hadar-solver/hadar-go/domain"
)

// The wire* types are the exported mirrors of domain's structures
// (whose Network/Study/OutputNetwork/Result hold unexported indexes),
// gob-encoded for the remote backend (spec §6.2: "binary-serialized
// Study" / Result, stable across versions, IEEE-754 doubles — which is
// exactly how gob already encodes float64).

type wireStudy struct {
	Horizon  int
	NbScn    int
	Networks []wireNetwork
}

type wireNetwork struct {
	Name  string
	Nodes []domain.Node
}

type wireResult struct {
	Horizon  int
	NbScn    int
	Networks []wireOutputNetwork
}

type wireOutputNetwork struct {
	Name  string
	Nodes []domain.OutputNode
}

func toWireStudy(study *domain.Study) wireStudy {
	w := wireStudy{Horizon: study.Horizon, NbScn: study.NbScn}
	for _, net := range study.Networks() {
		nodes := append([]domain.Node(nil), net.Nodes()...)
		w.Networks = append(w.Networks, wireNetwork{Name: net.Name, Nodes: nodes})
	}
	return w
}

func fromWireStudy(w wireStudy) *domain.Study {
	study := domain.NewStudy(w.Horizon, w.NbScn)
	for _, wn := range w.Networks {
		net := study.Network(wn.Name)
		for _, node := range wn.Nodes {
			net.AddNode(node)
		}
	}
	return study
}

func toWireResult(result *domain.Result) wireResult {
	w := wireResult{Horizon: result.Horizon, NbScn: result.NbScn}
	for _, net := range result.Networks() {
		nodes := append([]domain.OutputNode(nil), net.Nodes()...)
		w.Networks = append(w.Networks, wireOutputNetwork{Name: net.Name, Nodes: nodes})
	}
	return w
}

func fromWireResult(w wireResult) *domain.Result {
	result := domain.NewResult(w.Horizon, w.NbScn)
	for _, wn := range w.Networks {
		net := result.Network(wn.Name)
		for _, node := range wn.Nodes {
			net.AddNode(node)
		}
	}
	return result
}

func encodeStudy(study *domain.Study) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(toWireStudy(study)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeStudy(data []byte) (*domain.Study, error) {
	var w wireStudy
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&w); err != nil {
		return nil, err
	}
	return fromWireStudy(w), nil
}

func encodeResult(result *domain.Result) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(toWireResult(result)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeResult(data []byte) (*domain.Result, error) {
	var w wireResult
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&w); err != nil {
		return nil, err
	}
	return fromWireResult(w), nil
}
