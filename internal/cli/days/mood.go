package days

import (
	"fmt"

	"github.com/julianstephens/stillday/internal/cli"
	"github.com/julianstephens/stillday/internal/validation"
)

type MoodCmd struct {
	Level int `arg:"" help:"Mood level from 1 (struggling) to 5 (great)."`
}

func (c *MoodCmd) Run(ctx *cli.Context) error {
	mood, err := validation.ParseMood(c.Level)
	if err != nil {
		return err
	}
	ctx.Planner.SetMood(mood)
	fmt.Printf("Mood recorded: %s\n", cli.FormatMood(&mood))
	return nil
}
