package workload

import (
	"fmt"

	"github.com/Hakuto4838/islist-go/islist"
	"github.com/Hakuto4838/islist-go/islstats"
)

// Replay applies ops in order to a fresh list spanning [domainMin,
// domainMax), measuring the tower-descent cost of locating each op's
// start index against the live structure immediately before the op is
// applied.
func Replay(domainMin, domainMax int64, ops []Op) ([]CostSample, error) {
	return ReplayWithProb(domainMin, domainMax, ops, 0)
}

// ReplayWithProb is Replay with an explicit tower promotion probability
// p, for sweeping the one real tuning knob the list exposes. p <= 0
// leaves the list's own default in place.
func ReplayWithProb(domainMin, domainMax int64, ops []Op, p float64) ([]CostSample, error) {
	list := islist.NewWithSeed[int64, int64](domainMin, domainMax, 1)
	if p > 0 {
		list.SetPromoteProb(p)
	}
	samples := make([]CostSample, 0, len(ops))

	for i, op := range ops {
		switch op.Kind {
		case OpInsert:
			total, _ := islstats.CountSteps[int64](list, op.Start)
			if err := list.Insert(op.Marker, op.Start, op.End); err != nil {
				return nil, fmt.Errorf("workload: replay insert %d: %w", i, err)
			}
			samples = append(samples, CostSample{OpIndex: i, Kind: op.Kind, Marker: op.Marker, Steps: total})

		case OpRemove:
			start, _, ok := list.IntervalByMarker(op.Marker)
			if !ok {
				return nil, fmt.Errorf("workload: replay remove %d: marker %d not present", i, op.Marker)
			}
			total, _ := islstats.CountSteps[int64](list, start)
			if err := list.Remove(op.Marker); err != nil {
				return nil, fmt.Errorf("workload: replay remove %d: %w", i, err)
			}
			samples = append(samples, CostSample{OpIndex: i, Kind: op.Kind, Marker: op.Marker, Steps: total})

		default:
			return nil, fmt.Errorf("workload: replay %d: unknown op kind %d", i, op.Kind)
		}
	}

	return samples, nil
}
