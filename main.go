package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
	"github.com/zhzh2001/litewq/cmd"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "litewq"
	app.Usage = "build bounding volume hierarchies for scene collision tests"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "build",
			Usage: "build object BVH trees and display their statistics",
			Description: `
Parse a scene definition from a wavefront obj file, create an object for each
mesh instance and build a BVH tree over the object triangles using the surface
area heuristic.`,
			ArgsUsage: "scene_file1.obj scene_file2.obj ...",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "dump",
					Usage: "dump the nodes of each BVH tree",
				},
			},
			Action: cmd.BuildScene,
		},
		{
			Name:        "query",
			Usage:       "list scene triangles overlapping a box",
			Description: `Test an axis-aligned box against the BVH of every scene object.`,
			ArgsUsage:   "scene_file.obj",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "min",
					Usage: "box min corner as x,y,z",
				},
				cli.StringFlag{
					Name:  "max",
					Usage: "box max corner as x,y,z",
				},
			},
			Action: cmd.QueryScene,
		},
		{
			Name:  "move",
			Usage: "check whether a camera move collides with the scene",
			Description: `
Sweep a box between two camera positions, with the end position projected on
the ground plane, and report whether the move is blocked by scene geometry.`,
			ArgsUsage: "scene_file.obj",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "from",
					Usage: "start position as x,y,z",
				},
				cli.StringFlag{
					Name:  "to",
					Usage: "target position as x,y,z",
				},
			},
			Action: cmd.MoveCamera,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err.Error())
		os.Exit(1)
	}
}
