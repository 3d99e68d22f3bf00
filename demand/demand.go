// Package demand assigns edge.demand across a component's nodes, the way
// the teacher's flow package derives residual capacities from a graph's
// edge set before running a solver over it — here the "solver" is the
// round-robin supply/demand walk described for this cargo distribution
// engine rather than a max-flow algorithm.
package demand

import (
	"github.com/katalvlaran/cargoflow/cargo"
	"github.com/katalvlaran/cargoflow/config"
)

// Calculate assigns edge.demand and edge.unsatisfied_demand across every
// pair of nodes in c, following c.Settings().Shape. A manual/off shape is
// a no-op. If there is no supply or no demand node, Calculate returns
// without modifying anything.
func Calculate(c *cargo.Component) {
	settings := c.Settings()
	if settings.Shape == config.ShapeManual {
		return
	}

	modSize := settings.ModSize
	if settings.Shape == config.ShapeAntisymmetric {
		modSize = 0
	}

	size := c.Size()
	var supplies, demands []int
	var supplySum uint32
	for i := 0; i < size; i++ {
		n := c.GetNode(i)
		if n.Supply > 0 {
			supplies = append(supplies, i)
			supplySum += n.Supply
		}
		if n.Accepts {
			demands = append(demands, i)
		}
	}
	if supplySum == 0 || len(demands) == 0 {
		return
	}

	maxDistance := c.MaxDistance()
	if maxDistance == 0 {
		maxDistance = 1
	}

	demandPerNode := supplySum / uint32(len(demands))
	if demandPerNode < 1 {
		demandPerNode = 1
	}

	// A distance modifier above 100 has its excess squared to sharpen the
	// falloff.
	modDistance := int64(settings.ModDistance)
	if modDistance > 100 {
		over100 := modDistance - 100
		modDistance = 100 + over100*over100
	}

	numSupplies := uint32(len(supplies))
	numDemands := uint32(len(demands))
	var chance uint32

	for len(supplies) > 0 && len(demands) > 0 {
		node1 := supplies[0]
		supplies = supplies[1:]
		from := c.GetNode(node1)

		for i := 0; i < len(demands); i++ {
			node2 := demands[0]
			demands = demands[1:]

			if node1 == node2 {
				if len(demands) == 0 && len(supplies) == 0 {
					return
				}
				demands = append(demands, node2)
				continue
			}

			to := c.GetNode(node2)
			forward := c.GetEdge(node1, node2)
			backward := c.GetEdge(node2, node1)

			supply := int64(from.Supply)
			if modSize > 0 {
				supply = int64(supply) * int64(to.Supply) * int64(modSize) / 100 / int64(demandPerNode)
				if supply < 1 {
					supply = 1
				}
			}

			distance := int64(maxDistance) - (int64(maxDistance)-int64(forward.Distance))*modDistance/100
			divisor := int64(settings.Accuracy)*(modDistance-50)/100 + int64(settings.Accuracy)*distance/int64(maxDistance) + 1
			if divisor < 1 {
				divisor = 1
			}

			var demandForw uint32
			if divisor < supply {
				demandForw = uint32(supply / divisor)
			} else {
				chance++
				if chance > settings.Accuracy*numDemands*numSupplies {
					demandForw = 1
				}
			}
			if demandForw > from.UndeliveredSupply {
				demandForw = from.UndeliveredSupply
			}

			if modSize > 0 && from.Accepts {
				demandBack := demandForw * modSize / 100
				if demandBack > to.UndeliveredSupply {
					demandBack = to.UndeliveredSupply
					demandForw = demandBack * 100 / modSize
				}
				backward.Demand += demandBack
				backward.UnsatisfiedDemand += demandBack
				to.UndeliveredSupply -= demandBack
			}

			forward.Demand += demandForw
			forward.UnsatisfiedDemand += demandForw
			from.UndeliveredSupply -= demandForw

			if modSize == 0 || to.UndeliveredSupply > 0 {
				demands = append(demands, node2)
			} else {
				numDemands--
			}

			if from.UndeliveredSupply == 0 {
				break
			}
		}
		if from.UndeliveredSupply != 0 {
			supplies = append(supplies, node1)
		}
	}

	aggregateNodeDemand(c)
}

// aggregateNodeDemand sums every edge's demand into the destination
// node's Demand field, for introspection and persistence; the solver
// itself only ever reads edge.demand.
func aggregateNodeDemand(c *cargo.Component) {
	size := c.Size()
	for from := 0; from < size; from++ {
		for to := c.FirstEdge(from); to != cargo.NoEdge; to = c.GetEdge(from, to).NextEdge {
			if d := c.GetEdge(from, to).Demand; d > 0 {
				c.GetNode(to).Demand += d
			}
		}
	}
}
