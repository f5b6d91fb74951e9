package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hadar-solver/hadar-go/domain"
)

func TestNetwork_AddNodeReplacesInPlace(t *testing.T) {
	require := require.New(t)

	net := domain.NewNetwork("default")
	net.AddNode(domain.Node{Name: "a"})
	net.AddNode(domain.Node{Name: "b"})
	net.AddNode(domain.Node{Name: "a", Consumptions: []domain.Consumption{{Name: "load"}}})

	require.Len(net.Nodes(), 2, "replacing node a should not grow the network")
	require.Equal([]string{"a", "b"}, nodeNames(net), "insertion order must be preserved across replacement")

	a, ok := net.Node("a")
	require.True(ok)
	require.Len(a.Consumptions, 1, "replacement should carry the new attachments")
}

func TestStudy_NetworkLazyCreate(t *testing.T) {
	require := require.New(t)

	study := domain.NewStudy(3, 1)
	require.False(study.HasNetwork("default"))

	net := study.Network("default")
	require.True(study.HasNetwork("default"))
	require.Same(net, study.Network("default"), "repeated lookups must return the same network")
}

func TestMatrix_AtOutOfRangeIsZero(t *testing.T) {
	m := domain.NewMatrix(2, 3)
	m[1][2] = 42
	require.Equal(t, 42.0, m.At(1, 2))
	require.Equal(t, 0.0, m.At(5, 5), "out-of-range At should return 0, not panic")
}

func TestMatrix_Min(t *testing.T) {
	require := require.New(t)

	m := domain.NewMatrix(2, 2)
	m[0][0], m[0][1], m[1][0], m[1][1] = 5, -3, 10, 2
	require.Equal(-3.0, m.Min())

	require.Equal(0.0, domain.NewMatrix(0, 0).Min(), "an empty matrix has no negative cells")
}

func TestOutputNetwork_AddNodeReplacesInPlace(t *testing.T) {
	require := require.New(t)

	net := domain.NewOutputNetwork("default")
	net.AddNode(domain.OutputNode{Name: "a"})
	net.AddNode(domain.OutputNode{Name: "b"})
	net.AddNode(domain.OutputNode{Name: "a", Productions: []domain.OutputProduction{{Name: "prod"}}})

	require.Len(net.Nodes(), 2, "replacing node a should not grow the network")

	a, ok := net.Node("a")
	require.True(ok)
	require.Len(a.Productions, 1, "replacement should carry the new attachments")
}

func nodeNames(net *domain.Network) []string {
	names := make([]string, 0, len(net.Nodes()))
	for _, n := range net.Nodes() {
		names = append(names, n.Name)
	}
	return names
}
