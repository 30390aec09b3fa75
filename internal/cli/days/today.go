package days

import (
	"github.com/julianstephens/stillday/internal/cli"
)

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *cli.Context) error {
	cli.PrintEntry(ctx.Planner.Today())
	return nil
}
