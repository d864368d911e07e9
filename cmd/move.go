package cmd

import (
	"github.com/urfave/cli"
)

// Resolve a camera move against the scene geometry.
func MoveCamera(ctx *cli.Context) error {
	setupLogging(ctx)

	from, err := vecFlag(ctx.String("from"), "from")
	if err != nil {
		return err
	}
	to, err := vecFlag(ctx.String("to"), "to")
	if err != nil {
		return err
	}

	sc, err := sceneArg(ctx)
	if err != nil {
		return err
	}

	if sc.MoveBlocked(from, to) {
		logger.Noticef("move from %v to %v blocked by scene geometry", from, to)
	} else {
		logger.Noticef("move from %v to %v allowed", from, to)
	}
	return nil
}
