package builder_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hadar-solver/hadar-go/builder"
	"github.com/hadar-solver/hadar-go/domain"
)

func TestBuilder_S1SingleNodeSufficientProduction(t *testing.T) {
	require := require.New(t)

	study, err := builder.Study(3, 1).
		Network("default").
		Node("a").
		Consumption("load", 1e6, []float64{100, 100, 100}).
		Production("prod", 10.0, []float64{200, 200, 200}).
		Build()
	require.NoError(err)

	node, ok := study.Network("default").Node("a")
	require.True(ok)
	require.Len(node.Consumptions, 1)
	require.Len(node.Productions, 1)
	require.Equal(100.0, node.Consumptions[0].Quantity.At(0, 0))
	require.Equal(200.0, node.Productions[0].Quantity.At(0, 2))
}

func TestBuilder_DuplicateNameIsRejected(t *testing.T) {
	_, err := builder.Study(2, 1).
		Network("default").
		Node("a").
		Consumption("load", 1.0, 1.0).
		Consumption("load", 1.0, 1.0).
		Build()

	var dup domain.DuplicateNameError
	require.True(t, errors.As(err, &dup), "expected a DuplicateNameError, got %v", err)
	require.Equal(t, "load", dup.Name)
}

func TestBuilder_UnknownLinkDestinationFailsAtBuild(t *testing.T) {
	_, err := builder.Study(2, 1).
		Network("default").
		Node("a").
		Link("a", "ghost", 10.0, 1.0).
		Build()

	var unknown domain.UnknownNodeError
	require.True(t, errors.As(err, &unknown), "expected an UnknownNodeError, got %v", err)
	require.Equal(t, "ghost", unknown.Node)
}

func TestBuilder_MissingDefaultNetwork(t *testing.T) {
	_, err := builder.Study(2, 1).Network("other").Node("a").Build()
	require.ErrorIs(t, err, builder.ErrNoDefaultNetwork)
}

func TestBuilder_ShapeMismatchRaisesShapeError(t *testing.T) {
	_, err := builder.Study(3, 1).
		Network("default").
		Node("a").
		Consumption("load", 1.0, []float64{1, 2}).
		Build()

	var shapeErr domain.ShapeError
	require.True(t, errors.As(err, &shapeErr), "expected a ShapeError, got %v", err)
}

func TestBuilder_StorageDefaults(t *testing.T) {
	require := require.New(t)

	study, err := builder.Study(1, 1).
		Network("default").
		Node("a").
		Storage("batt", 100.0, 50.0, 50.0, 0.0, 0.0).
		Build()
	require.NoError(err)

	node, _ := study.Network("default").Node("a")
	require.Equal(1.0, node.Storages[0].Efficiency, "efficiency must default to 1.0 per the open question")
	require.Equal(0.0, node.Storages[0].InitCapacity, "init_capacity must default to 0")
}

func TestBuilder_StorageOptionsOverrideDefaults(t *testing.T) {
	require := require.New(t)

	study, err := builder.Study(1, 1).
		Network("default").
		Node("a").
		Storage("batt", 100.0, 50.0, 50.0, 0.0, 0.0,
			builder.WithEfficiency(0.9), builder.WithInitCapacity(20)).
		Build()
	require.NoError(err)

	node, _ := study.Network("default").Node("a")
	require.Equal(0.9, node.Storages[0].Efficiency)
	require.Equal(20.0, node.Storages[0].InitCapacity)
}

func TestBuilder_NegativeQuantityRaisesValueError(t *testing.T) {
	_, err := builder.Study(2, 1).
		Network("default").
		Node("a").
		Consumption("load", 1.0, -5.0).
		Build()

	var valErr domain.ValueError
	require.True(t, errors.As(err, &valErr), "expected a ValueError, got %v", err)
}

func TestBuilder_NegativeCostRaisesValueError(t *testing.T) {
	_, err := builder.Study(2, 1).
		Network("default").
		Node("a").
		Production("prod", -1.0, 5.0).
		Build()

	var valErr domain.ValueError
	require.True(t, errors.As(err, &valErr), "expected a ValueError, got %v", err)
}

func TestBuilder_NegativeLinkQuantityRaisesValueError(t *testing.T) {
	_, err := builder.Study(2, 1).
		Network("default").
		Node("a").
		Link("a", "b", -10.0, 1.0).
		Build()

	var valErr domain.ValueError
	require.True(t, errors.As(err, &valErr), "expected a ValueError, got %v", err)
}

func TestBuilder_StorageEfficiencyOutOfRangeIsRejected(t *testing.T) {
	require := require.New(t)

	_, errZero := builder.Study(1, 1).
		Network("default").
		Node("a").
		Storage("batt", 100.0, 50.0, 50.0, 0.0, 0.0, builder.WithEfficiency(0)).
		Build()
	var valErr domain.ValueError
	require.True(errors.As(errZero, &valErr), "eff=0 must be rejected, got %v", errZero)

	_, errOver := builder.Study(1, 1).
		Network("default").
		Node("a").
		Storage("batt", 100.0, 50.0, 50.0, 0.0, 0.0, builder.WithEfficiency(1.5)).
		Build()
	require.True(errors.As(errOver, &valErr), "eff=1.5 must be rejected, got %v", errOver)
}

func TestBuilder_StorageInitCapacityOutOfRangeIsRejected(t *testing.T) {
	require := require.New(t)

	_, err := builder.Study(1, 1).
		Network("default").
		Node("a").
		Storage("batt", 100.0, 50.0, 50.0, 0.0, 0.0, builder.WithInitCapacity(150)).
		Build()

	var valErr domain.ValueError
	require.True(errors.As(err, &valErr), "init_capacity > capacity must be rejected, got %v", err)
}
