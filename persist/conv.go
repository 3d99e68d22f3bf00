package persist

import (
	"github.com/katalvlaran/cargoflow/cargo"
	"github.com/katalvlaran/cargoflow/config"
)

func snapshotToRow(s config.Snapshot) SnapshotRow {
	return SnapshotRow{
		Shape:               int(s.Shape),
		Accuracy:            s.Accuracy,
		ModSize:             s.ModSize,
		ModDistance:         s.ModDistance,
		ShortPathSaturation: s.ShortPathSaturation,
		RecalcInterval:      s.RecalcInterval,
		MovingAverageLength: s.MovingAverageLength,
	}
}

func rowToSnapshot(r SnapshotRow) config.Snapshot {
	return config.Snapshot{
		Shape:               config.Shape(r.Shape),
		Accuracy:            r.Accuracy,
		ModSize:             r.ModSize,
		ModDistance:         r.ModDistance,
		ShortPathSaturation: r.ShortPathSaturation,
		RecalcInterval:      r.RecalcInterval,
		MovingAverageLength: r.MovingAverageLength,
	}
}

// ToRecord flattens a live component into the dense, positionally-ordered
// rows the schema stores, in the same "nodes then edges, in index order"
// sequence linkgraph_sl.cpp writes.
func ToRecord(comp *cargo.Component) ComponentRecord {
	size := comp.Size()
	rec := ComponentRecord{
		Cargo:       comp.Cargo(),
		ComponentID: comp.ID(),
		Size:        size,
		JoinDate:    comp.JoinDate(),
		Settings:    snapshotToRow(comp.Settings()),
		Nodes:       make([]NodeRow, size),
	}

	for idx := 0; idx < size; idx++ {
		node := comp.GetNode(idx)
		row := NodeRow{
			Station:           node.Station,
			Supply:            node.Supply,
			UndeliveredSupply: node.UndeliveredSupply,
			Demand:            node.Demand,
			Accepts:           node.Accepts,
		}
		for origin, viaMap := range node.Flows {
			for via, amount := range viaMap {
				if amount == 0 {
					continue
				}
				row.Flows = append(row.Flows, FlowRow{
					Origin: NewStationRef(origin),
					Via:    NewStationRef(via),
					Amount: amount,
				})
			}
		}
		rec.Nodes[idx] = row
	}

	for from := 0; from < size; from++ {
		for to := 0; to < size; to++ {
			if from == to {
				continue
			}
			edge := comp.GetEdge(from, to)
			if edge.Capacity == 0 {
				continue
			}
			rec.Edges = append(rec.Edges, EdgeRow{
				From:              from,
				To:                to,
				Distance:          edge.Distance,
				Capacity:          edge.Capacity,
				Demand:            edge.Demand,
				UnsatisfiedDemand: edge.UnsatisfiedDemand,
				Flow:              edge.Flow,
			})
		}
	}

	return rec
}

// FromRecord rebuilds a *cargo.Component from a persisted record, failing
// fast with ErrDanglingDestination if any flow row's origin or via
// station is no longer among the component's own nodes — the Go
// expression of ExportNewFlows's "reject destinations that no longer
// exist" load-time check.
func FromRecord(rec ComponentRecord) (*cargo.Component, error) {
	comp := cargo.NewComponent(rec.Cargo, rec.Size, rowToSnapshot(rec.Settings))
	comp.SetID(rec.ComponentID)
	comp.SetJoinDate(rec.JoinDate)

	known := make(map[cargo.StationID]struct{}, rec.Size)
	for _, nr := range rec.Nodes {
		idx := comp.AddNode(nr.Station, nr.Supply, nr.Demand)
		node := comp.GetNode(idx)
		node.UndeliveredSupply = nr.UndeliveredSupply
		node.Accepts = nr.Accepts
		known[nr.Station] = struct{}{}
	}

	for _, er := range rec.Edges {
		if err := comp.AddEdge(er.From, er.To, er.Capacity); err != nil {
			return nil, err
		}
		edge := comp.GetEdge(er.From, er.To)
		edge.Distance = er.Distance
		edge.Demand = er.Demand
		edge.UnsatisfiedDemand = er.UnsatisfiedDemand
		edge.Flow = er.Flow
	}

	for idx, nr := range rec.Nodes {
		node := comp.GetNode(idx)
		for _, fr := range nr.Flows {
			origin, ok := fr.Origin.Station()
			if !ok {
				return nil, ErrDanglingDestination
			}
			via, ok := fr.Via.Station()
			if !ok {
				return nil, ErrDanglingDestination
			}
			if _, ok := known[origin]; !ok {
				return nil, ErrDanglingDestination
			}
			if _, ok := known[via]; !ok {
				return nil, ErrDanglingDestination
			}
			node.AddFlow(origin, via, fr.Amount)
		}
	}

	return comp, nil
}
