package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
	"github.com/zhzh2001/litewq/asset/compiler"
	"github.com/zhzh2001/litewq/asset/reader"
	"github.com/zhzh2001/litewq/bvh"
	"github.com/zhzh2001/litewq/scene"
)

// Parse and compile a scene file.
func loadScene(sceneFile string) (*scene.Scene, error) {
	logger.Noticef("parsing and compiling scene: %s", sceneFile)
	parsedScene, err := reader.ReadScene(sceneFile)
	if err != nil {
		return nil, err
	}

	return compiler.Compile(parsedScene)
}

// Load the single scene file passed as a command argument.
func sceneArg(ctx *cli.Context) (*scene.Scene, error) {
	if ctx.NArg() != 1 {
		return nil, errors.New("missing scene file")
	}
	return loadScene(ctx.Args().First())
}

// Build the BVH trees for each object in the supplied scene files and display
// their statistics.
func BuildScene(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() == 0 {
		return errors.New("missing scene file(s)")
	}

	for idx := 0; idx < ctx.NArg(); idx++ {
		sceneFile := ctx.Args().Get(idx)
		if !strings.HasSuffix(sceneFile, ".obj") {
			logger.Warningf("skipping unsupported file %s", sceneFile)
			continue
		}

		sc, err := loadScene(sceneFile)
		if err != nil {
			return err
		}

		logger.Noticef("scene information:\n%s", sceneTable(sc))
		for _, obj := range sc.Objects {
			logger.Infof("object '%s' BVH statistics:\n%s", obj.Name, obj.BVH().Stats().Table())
			if ctx.Bool("dump") {
				logger.Noticef("object '%s' BVH tree:\n%s", obj.Name, dumpTree(obj.BVH()))
			}
		}
	}

	return nil
}

// Summarize the objects of a compiled scene.
func sceneTable(sc *scene.Scene) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Object", "Triangles", "Nodes", "Max depth", "World bounds"})

	triangles, nodes := 0, 0
	for _, obj := range sc.Objects {
		stats := obj.BVH().Stats()
		triangles += stats.Shapes
		nodes += stats.Nodes
		table.Append([]string{
			obj.Name,
			fmt.Sprint(stats.Shapes),
			fmt.Sprint(stats.Nodes),
			fmt.Sprint(stats.MaxDepth),
			obj.BVH().WorldBound().String(),
		})
	}

	table.SetFooter([]string{"Total", fmt.Sprint(triangles), fmt.Sprint(nodes), "", sc.WorldBound().String()})
	table.Render()
	return buf.String()
}

// Render an indented listing of the tree nodes in preorder.
func dumpTree(tree *bvh.BVH) string {
	var buf bytes.Buffer
	tree.Visit(func(index bvh.NodeIndex, node bvh.Node, depth int) bool {
		buf.WriteString(strings.Repeat("  ", depth))
		if node.IsLeaf() {
			fmt.Fprintf(&buf, "[%d] leaf shape %d %s\n", index, node.Shape, node.Bounds)
		} else {
			fmt.Fprintf(&buf, "[%d] node %s\n", index, node.Bounds)
		}
		return true
	})
	return buf.String()
}
