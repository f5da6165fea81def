package workload

import (
	"encoding/csv"
	"fmt"
	"io"
)

// CostSample is one measured operation's descent cost, as produced by
// Replay.
type CostSample struct {
	OpIndex int
	Kind    OpKind
	Marker  int64
	Steps   int
}

// WriteCostCSV writes one header row followed by one row per sample,
// using a plain encoding/csv.Writer over pre-formatted string fields.
func WriteCostCSV(w io.Writer, samples []CostSample) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"op_index", "kind", "marker", "steps"}); err != nil {
		return err
	}
	for _, s := range samples {
		kind := "insert"
		if s.Kind == OpRemove {
			kind = "remove"
		}
		row := []string{
			fmt.Sprintf("%d", s.OpIndex),
			kind,
			fmt.Sprintf("%d", s.Marker),
			fmt.Sprintf("%d", s.Steps),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
