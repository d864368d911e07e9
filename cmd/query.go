package cmd

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
	"github.com/zhzh2001/litewq/types"
)

// Find the triangles of each scene object whose bounds overlap a query box.
func QueryScene(ctx *cli.Context) error {
	setupLogging(ctx)

	minPoint, err := vecFlag(ctx.String("min"), "min")
	if err != nil {
		return err
	}
	maxPoint, err := vecFlag(ctx.String("max"), "max")
	if err != nil {
		return err
	}
	box := types.BoundsFromPoints(minPoint, maxPoint)

	sc, err := sceneArg(ctx)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Object", "Intersects", "Overlapping triangles"})

	collides := false
	for _, obj := range sc.Objects {
		tree := obj.BVH()
		hit := tree.Intersect(box)
		collides = collides || hit
		table.Append([]string{obj.Name, fmt.Sprint(hit), fmt.Sprint(tree.Overlapping(box))})
	}
	table.SetFooter([]string{"Scene", fmt.Sprint(collides), ""})
	table.Render()

	logger.Noticef("query results for %s:\n%s", box, buf.String())
	return nil
}
