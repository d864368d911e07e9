package bvh

import (
	"bytes"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
)

// Statistics collected while building a BVH.
type Stats struct {
	Shapes int
	Nodes  int
	Leaves int

	// Depth of the deepest leaf; the root is at depth 0.
	MaxDepth int

	// Number of nodes where the SAH split left one side empty and the
	// builder had to fall back to a median split.
	MedianSplits int

	BuildTime time.Duration
}

// Number of interior nodes.
func (s Stats) Interior() int {
	return s.Nodes - s.Leaves
}

// Build a tabular representation of the tree statistics.
func (s Stats) Table() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Metric", "Value"})
	table.Append([]string{"Shapes", fmt.Sprint(s.Shapes)})
	table.Append([]string{"Nodes", fmt.Sprint(s.Nodes)})
	table.Append([]string{"Interior nodes", fmt.Sprint(s.Interior())})
	table.Append([]string{"Leaves", fmt.Sprint(s.Leaves)})
	table.Append([]string{"Max depth", fmt.Sprint(s.MaxDepth)})
	table.Append([]string{"Median splits", fmt.Sprint(s.MedianSplits)})
	table.SetFooter([]string{"Build time", s.BuildTime.String()})
	table.Render()
	return buf.String()
}
