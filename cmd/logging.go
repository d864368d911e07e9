package cmd

import (
	"github.com/urfave/cli"
	"github.com/zhzh2001/litewq/log"
)

var logger = log.New("litewq")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
