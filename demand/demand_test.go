package demand

import (
	"testing"

	"github.com/katalvlaran/cargoflow/cargo"
	"github.com/katalvlaran/cargoflow/config"
	"github.com/stretchr/testify/require"
)

func buildComponent(t *testing.T, shape config.Shape, modSize, modDistance, accuracy uint32) *cargo.Component {
	t.Helper()
	settings := config.Snapshot{
		Shape:       shape,
		Accuracy:    accuracy,
		ModSize:     modSize,
		ModDistance: modDistance,
	}
	c := cargo.NewComponent(0, 3, settings)
	a := c.AddNode(1, 100, 0)
	b := c.AddNode(2, 0, 0)
	cc := c.AddNode(3, 50, 0)
	c.GetNode(b).Accepts = true
	c.GetNode(cc).Accepts = true

	require.NoError(t, c.AddEdge(a, b, 100))
	require.NoError(t, c.AddEdge(b, a, 100))
	require.NoError(t, c.AddEdge(a, cc, 100))
	require.NoError(t, c.AddEdge(cc, a, 100))
	require.NoError(t, c.AddEdge(b, cc, 100))
	require.NoError(t, c.AddEdge(cc, b, 100))

	c.CalculateDistances(func(x, y cargo.StationID) uint32 {
		if x > y {
			x, y = y, x
		}
		return uint32(y - x)
	})
	return c
}

func TestCalculateSymmetricAssignsForwardAndBackwardDemand(t *testing.T) {
	c := buildComponent(t, config.ShapeSymmetric, 100, 50, 16)
	Calculate(c)

	require.Greater(t, c.GetEdge(0, 1).Demand, uint32(0), "expected forward demand toward accepting node")
	require.LessOrEqual(t, c.GetEdge(0, 1).Demand, c.GetNode(0).Supply)
}

func TestCalculateAntisymmetricSkipsBackwardDemand(t *testing.T) {
	c := buildComponent(t, config.ShapeAntisymmetric, 100, 50, 16)
	Calculate(c)

	require.Zero(t, c.GetEdge(1, 0).Demand, "antisymmetric distribution must not enforce return flow")
}

func TestCalculateManualIsNoop(t *testing.T) {
	c := buildComponent(t, config.ShapeManual, 100, 50, 16)
	Calculate(c)

	require.Zero(t, c.GetEdge(0, 1).Demand)
	require.Zero(t, c.GetEdge(0, 2).Demand)
}

func TestCalculateNoDemandNodesIsNoop(t *testing.T) {
	settings := config.Snapshot{Shape: config.ShapeSymmetric, Accuracy: 16, ModSize: 100, ModDistance: 50}
	c := cargo.NewComponent(0, 2, settings)
	a := c.AddNode(1, 10, 0)
	b := c.AddNode(2, 10, 0)
	require.NoError(t, c.AddEdge(a, b, 5))
	Calculate(c)
	require.Zero(t, c.GetEdge(a, b).Demand)
}

func TestCalculateKeepsUndeliveredWithinSupply(t *testing.T) {
	c := buildComponent(t, config.ShapeSymmetric, 100, 50, 16)
	Calculate(c)

	// assigning demand only ever drains undelivered supply, so it can
	// never exceed the node's original supply.
	require.LessOrEqual(t, c.GetNode(0).UndeliveredSupply, c.GetNode(0).Supply)
}
