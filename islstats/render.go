package islstats

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/Hakuto4838/islist-go/islist"
)

// RenderTower writes a table of every occupied index against its
// height, starting/ending markers and per-level marker occupancy.
func RenderTower[K any, M comparable](w io.Writer, nodes []islist.NodeSnapshot[K, M]) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Index", "Height", "Starting", "Ending", "Markers by level"})
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetAutoWrapText(false)

	rows := make([][]string, 0, len(nodes))
	for _, n := range nodes {
		rows = append(rows, []string{
			fmt.Sprintf("%v", n.Index),
			fmt.Sprintf("%d", n.Height),
			fmt.Sprintf("%v", n.Starting),
			fmt.Sprintf("%v", n.Ending),
			fmt.Sprintf("%v", n.Markers),
		})
	}
	table.AppendBulk(rows)
	table.Render()
}
